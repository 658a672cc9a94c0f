package cpu

import (
	"errors"

	"github.com/ezrec/pioc/translate"
)

var f = translate.From

var (
	// Image errors
	ErrImageOdd = errors.New(f("image has an odd byte count"))
)

// ErrRange is returned when a value does not fit an instruction field.
type ErrRange struct {
	Value int64
	Bits  uint
}

func (err ErrRange) Error() string {
	return f("%d does not fit in %d bits", err.Value, err.Bits)
}

// ErrAddress is returned when a jump target is not word aligned.
type ErrAddress int64

func (err ErrAddress) Error() string {
	return f("jump target %#x is not word aligned", int64(err))
}

// ErrPage is a jump target outside the page an instruction can reach.
type ErrPage struct {
	Target int64
	From   int64
}

func (err ErrPage) Error() string {
	return f("jump target %#x is out of the page of %#x", err.Target, err.From)
}
