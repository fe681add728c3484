package main

import (
	"context"
	"fmt"
	"io"

	"github.com/reusee/bf/bflang"
	"github.com/reusee/bf/logs"
)

// Check parses source and reports the instruction count.
type Check func(ctx context.Context, name string, source []byte, output io.Writer) error

func (Module) Check(
	logger logs.Logger,
) Check {
	return func(ctx context.Context, name string, source []byte, output io.Writer) error {
		program, err := bflang.ParseBytes(source)
		if err != nil {
			logger.DebugContext(ctx, "check failed",
				"name", name,
				"error", err,
			)
			return parseError(err, source)
		}
		if _, err := fmt.Fprintf(output, "%s: ok, %d instructions\n", name, program.Len()); err != nil {
			return wrap(err)
		}
		return nil
	}
}

// Dump prints the instruction listing of source.
type Dump func(ctx context.Context, name string, source []byte, output io.Writer) error

func (Module) Dump(
	logger logs.Logger,
) Dump {
	return func(ctx context.Context, name string, source []byte, output io.Writer) error {
		program, err := bflang.ParseBytes(source)
		if err != nil {
			return parseError(err, source)
		}
		n, err := program.Disassemble(output)
		if err != nil {
			return wrap(err)
		}
		logger.DebugContext(ctx, "dump",
			"name", name,
			"instructions", program.Len(),
			"bytes", n,
		)
		return nil
	}
}
