package bfvm

import (
	"errors"
	"fmt"

	"github.com/reusee/bf/bflang"
)

var (
	ErrTapeUnderflow   = errors.New("tape underflow: cursor moved left of cell 0")
	ErrInput           = errors.New("read input")
	ErrOutput          = errors.New("write output")
	ErrBadJump         = errors.New("jump target out of range")
	ErrBadInstruction  = errors.New("invalid instruction")
	ErrExecutionHalted = errors.New("execution already halted")
)

// RuntimeError is a fault raised while executing an instruction. Side effects
// of the instructions before it, output included, are not undone.
type RuntimeError struct {
	Err    error
	IP     int
	Cursor int
	Op     bflang.Op
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("runtime error @ IP %d cursor %d: %s: %v", e.IP, e.Cursor, e.Op.Name(), e.Err)
}

func (e *RuntimeError) Unwrap() error {
	return e.Err
}
