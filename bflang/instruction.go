package bflang

import "strconv"

// Instruction is one executable unit. Target is only set for jumps: for
// OpJumpIfZero it is the index just past the matching OpJumpIfNonZero, for
// OpJumpIfNonZero it is the index of the matching OpJumpIfZero.
type Instruction struct {
	Op     Op
	Target int
}

func (i Instruction) String() string {
	if i.Op.IsJump() {
		return i.Op.Name() + " -> " + strconv.Itoa(i.Target)
	}
	return i.Op.Name()
}
