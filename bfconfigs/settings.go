package bfconfigs

import (
	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/vars"
)

// DefaultTapeSize matches the memory size of the classic implementation.
const DefaultTapeSize = 32768

type EOFMode string

var eofFlag = cmds.Var[string]("-eof")

func init() {
	cmds.Describe("-eof", "value stored by ',' at end of input: zero, unchanged or max")
}

func (Module) EOFMode(
	loader configs.Loader,
) EOFMode {
	return EOFMode(vars.FirstNonZero(
		*eofFlag,
		configs.First[string](loader, "eof"),
		"zero",
	))
}

type TapeSize int

var tapeSizeFlag = cmds.Var[int]("-tape-size")

func init() {
	cmds.Describe("-tape-size", "cells preallocated for the tape")
}

func (Module) TapeSize(
	loader configs.Loader,
) TapeSize {
	return TapeSize(vars.FirstNonZero(
		*tapeSizeFlag,
		configs.First[int](loader, "tape_size"),
		DefaultTapeSize,
	))
}

type Trace bool

var traceFlag = cmds.Switch("-trace")

func init() {
	cmds.Describe("-trace", "log every executed instruction, at debug level")
}

func (Module) Trace(
	loader configs.Loader,
) Trace {
	return Trace(*traceFlag || configs.First[bool](loader, "trace"))
}
