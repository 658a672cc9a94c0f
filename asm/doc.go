// Package asm implements the RISC8B eMCU assembler.
//
// Source text is parsed line by line into statements (Parse, ParseLine).
// The Assembler splices INCLUDE files into the statement sequence, resolves
// EQU definitions and ORG relative labels against a symbol table (Resolve),
// and emits one instruction word per instruction statement.
//
// Syntax summary:
//
//	NAME EQU expr           ; define a constant or alias
//	ORG expr                ; set the current byte address
//	INCLUDE path            ; splice in another source file
//	[label] MNEMONIC [a[, b]]
//	END                     ; ignore the remainder of the source
//
// An expression is a numeric literal, a symbol, or (internally) a symbol
// plus a constant byte offset. Numeric literals may be written as 0b1010,
// b'1010', 0d42, d'42', 0o52, 0x2A, h'2A', 'c' or a signed decimal.
package asm
