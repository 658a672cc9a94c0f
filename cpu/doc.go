// Package cpu implements the instruction word codec for the RISC8B eMCU
// programmable I/O core.
//
// The core executes fixed 16-bit instruction words. Each operation occupies a
// disjoint region of the opcode space, selected by a base pattern, with its
// operands packed into fields of 1, 2, 3, 7, 8, 9, 10 or 12 bits. Inst.Word
// packs an instruction into its word and Decode unpacks any word back into an
// instruction. Decode is total: words matching no operation decode as the
// opaque DW form.
//
// Program holds a word image and renders it as a disassembly listing.
package cpu
