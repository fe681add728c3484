package main

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/reusee/bf/bfconfigs"
	"github.com/reusee/bf/bflang"
	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/debugs"
	"github.com/reusee/bf/logs"
	"golang.org/x/term"
)

var (
	tapFlag       = cmds.Switch("-tap")
	dumpStatePath = cmds.Var[string]("-dump-state")
)

func init() {
	cmds.Describe("-tap", "open a starlark repl on the session state after the run")
	cmds.Describe("-dump-state", "write the session state as yaml to the file after the run")
}

// Run executes source as the program name, reading ',' from input and
// writing '.' to output.
type Run func(ctx context.Context, name string, source []byte, input io.Reader, output io.Writer) error

func (Module) Run(
	newInterpreter bfvm.New,
	newSpan logs.NewSpan,
	logger logs.Logger,
	trace bfconfigs.Trace,
	tap debugs.Tap,
) Run {
	return func(ctx context.Context, name string, source []byte, input io.Reader, output io.Writer) (err error) {
		ctx, _ = newSpan(ctx, "run")
		defer func() {
			err = logs.WrapSpan(ctx, err)
		}()
		logger.InfoContext(ctx, "run",
			"name", name,
			"size", len(source),
		)

		if output == nil {
			output = io.Discard
		}
		out := bufio.NewWriter(output)
		interpreter := newInterpreter(input, out)
		if err := interpreter.FeedBytes(source); err != nil {
			return parseError(err, source)
		}
		if _, err := interpreter.Program(); err != nil {
			return parseError(err, source)
		}

		var runErr error
		for step, err := range interpreter.Steps {
			if err != nil {
				runErr = err
				break
			}
			if trace {
				logger.DebugContext(ctx, "step",
					"ip", step.IP,
					"op", step.Op.Name(),
					"cursor", step.Cursor,
					"cell", step.Cell,
				)
			}
			if step.Op == bflang.OpInput {
				// prompts must be visible before blocking on input
				if err := out.Flush(); err != nil {
					runErr = wrap(err)
					break
				}
			}
		}
		if err := out.Flush(); err != nil && runErr == nil {
			runErr = wrap(err)
		}

		if *dumpStatePath != "" {
			if err := writeStateDump(*dumpStatePath, interpreter); err != nil {
				return err
			}
		}

		if *tapFlag {
			if term.IsTerminal(int(os.Stdin.Fd())) {
				tap(ctx, name, tapGlobals(interpreter))
			} else {
				logger.WarnContext(ctx, "stdin is not a terminal, tap skipped")
			}
		}

		return runErr
	}
}

func writeStateDump(path string, interpreter *bfvm.Interpreter) error {
	f, err := os.Create(path)
	if err != nil {
		return wrap(err)
	}
	if err := interpreter.DumpState(f); err != nil {
		f.Close()
		return wrap(err)
	}
	if err := f.Close(); err != nil {
		return wrap(err)
	}
	return nil
}

func tapGlobals(interpreter *bfvm.Interpreter) map[string]any {
	tape := interpreter.Tape()
	return map[string]any{
		"tape":   tape.Bytes(),
		"cursor": interpreter.Cursor(),
		"ip":     interpreter.IP(),
		"state":  interpreter.State(),
		"cell": func(i int) int {
			return int(tape.Get(i))
		},
	}
}
