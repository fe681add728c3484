package bfvm

import (
	"io"

	"github.com/reusee/bf/bfconfigs"
	"github.com/reusee/bf/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs bfconfigs.Module
	Logs    logs.Module
}

// New returns an Interpreter configured from flags and config files.
type New func(input io.Reader, output io.Writer) *Interpreter

func (Module) New(
	eofMode bfconfigs.EOFMode,
	tapeSize bfconfigs.TapeSize,
	logger logs.Logger,
) New {
	eof, err := ParseEOFPolicy(string(eofMode))
	if err != nil {
		logger.Warn("bad eof mode, using zero",
			"error", err,
		)
		eof = EOFZero
	}
	return func(input io.Reader, output io.Writer) *Interpreter {
		return NewInterpreter(input, output).
			WithEOF(eof).
			WithTapeSize(int(tapeSize)).
			WithLogger(logger)
	}
}
