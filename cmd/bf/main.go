package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/reusee/bf/bflang"
	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/modes"
	"github.com/reusee/dscope"
)

type job func(ctx context.Context, scope dscope.Scope) error

var jobs []job

func init() {
	cmds.Define("run", cmds.Func(func(path string) {
		jobs = append(jobs, func(ctx context.Context, scope dscope.Scope) error {
			source, err := readSource(path)
			if err != nil {
				return err
			}
			scope.Call(func(run Run) {
				err = run(ctx, path, source, os.Stdin, os.Stdout)
			})
			return err
		})
	}).Desc("execute a brainfuck file").Args("file"))

	cmds.Define("eval", cmds.Func(func(code string) {
		jobs = append(jobs, func(ctx context.Context, scope dscope.Scope) error {
			var err error
			scope.Call(func(run Run) {
				err = run(ctx, "eval", []byte(code), os.Stdin, os.Stdout)
			})
			return err
		})
	}).Desc("execute inline brainfuck code").Args("code"))

	cmds.Define("check", cmds.Func(func(path string) {
		jobs = append(jobs, func(ctx context.Context, scope dscope.Scope) error {
			source, err := readSource(path)
			if err != nil {
				return err
			}
			scope.Call(func(check Check) {
				err = check(ctx, path, source, os.Stdout)
			})
			return err
		})
	}).Desc("parse a file and report loop structure errors").Args("file"))

	cmds.Define("dump", cmds.Func(func(path string) {
		jobs = append(jobs, func(ctx context.Context, scope dscope.Scope) error {
			source, err := readSource(path)
			if err != nil {
				return err
			}
			scope.Call(func(dump Dump) {
				err = dump(ctx, path, source, os.Stdout)
			})
			return err
		})
	}).Desc("print the instruction listing of a file").Args("file"))
}

func main() {
	cmds.Execute(os.Args[1:])
	if len(jobs) == 0 {
		cmds.GlobalExecutor.PrintUsage()
		os.Exit(2)
	}

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	ctx := context.Background()
	for _, job := range jobs {
		if err := job(ctx, scope); err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
	}
}

func readSource(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, wrap(err)
	}
	return content, nil
}

// renderedError prints the offending source line under the message.
type renderedError struct {
	*bflang.BadExpressionError
	text string
}

func (r renderedError) Error() string {
	return r.text
}

func (r renderedError) Unwrap() error {
	return r.BadExpressionError
}

func parseError(err error, source []byte) error {
	var badExpr *bflang.BadExpressionError
	if errors.As(err, &badExpr) {
		return renderedError{
			BadExpressionError: badExpr,
			text:               strings.TrimSuffix(badExpr.Render(string(source)), "\n"),
		}
	}
	return err
}
