package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/bf/bflang"
	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/modes"
	"github.com/reusee/dscope"
	"gopkg.in/yaml.v3"
)

func newScope(t *testing.T) dscope.Scope {
	return dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() configs.Loader {
			return configs.NewLoader(nil, "")
		},
	)
}

func readTestdata(t *testing.T, name string) []byte {
	source, err := readSource(filepath.Join("testdata", name))
	if err != nil {
		t.Fatal(err)
	}
	return source
}

func TestRun(t *testing.T) {
	source := readTestdata(t, "hello.bf")
	newScope(t).Call(func(
		run Run,
	) {
		out := new(bytes.Buffer)
		if err := run(context.Background(), "hello.bf", source, nil, out); err != nil {
			t.Fatal(err)
		}
		if out.String() != "Hello World!\n" {
			t.Fatalf("got %q", out.String())
		}
	})
}

func TestRunInput(t *testing.T) {
	source := readTestdata(t, "cat.bf")
	newScope(t).Call(func(
		run Run,
	) {
		out := new(bytes.Buffer)
		if err := run(context.Background(), "cat.bf", source, strings.NewReader("meow"), out); err != nil {
			t.Fatal(err)
		}
		if out.String() != "meow" {
			t.Fatalf("got %q", out.String())
		}
	})
}

func TestRunFaultFlushesOutput(t *testing.T) {
	newScope(t).Call(func(
		run Run,
	) {
		out := new(bytes.Buffer)
		err := run(context.Background(), "eval", []byte("+++.<"), nil, out)
		if !errors.Is(err, bfvm.ErrTapeUnderflow) {
			t.Fatalf("got %v", err)
		}
		if !strings.Contains(err.Error(), "span: ") {
			t.Fatalf("got %v", err)
		}
		if !bytes.Equal(out.Bytes(), []byte{3}) {
			t.Fatalf("got %v", out.Bytes())
		}
	})
}

func TestRunParseError(t *testing.T) {
	source := readTestdata(t, "open.bf")
	newScope(t).Call(func(
		run Run,
	) {
		out := new(bytes.Buffer)
		err := run(context.Background(), "open.bf", source, nil, out)
		if !errors.Is(err, bflang.ErrUnmatchedOpen) {
			t.Fatalf("got %v", err)
		}
		var badExpr *bflang.BadExpressionError
		if !errors.As(err, &badExpr) {
			t.Fatal()
		}
		if !strings.Contains(err.Error(), "at 2:4\n  -[>+<\n   ^") {
			t.Fatalf("got %q", err.Error())
		}
		if out.Len() != 0 {
			t.Fatalf("got %q", out.String())
		}
	})
}

func TestRunDumpState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.yaml")
	*dumpStatePath = path
	defer func() {
		*dumpStatePath = ""
	}()

	newScope(t).Call(func(
		run Run,
	) {
		if err := run(context.Background(), "eval", []byte("++>+"), nil, nil); err != nil {
			t.Fatal(err)
		}
	})

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var dump bfvm.StateDump
	if err := yaml.Unmarshal(content, &dump); err != nil {
		t.Fatal(err)
	}
	if dump.State != "halted" || dump.Cursor != 1 || len(dump.Tape) != 2 {
		t.Fatalf("got %+v", dump)
	}
}

func TestCheck(t *testing.T) {
	newScope(t).Call(func(
		check Check,
	) {
		out := new(bytes.Buffer)
		if err := check(context.Background(), "hello.bf", readTestdata(t, "hello.bf"), out); err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(out.String(), "hello.bf: ok, ") {
			t.Fatalf("got %q", out.String())
		}

		out.Reset()
		err := check(context.Background(), "close", []byte("+]"), out)
		if !errors.Is(err, bflang.ErrUnmatchedClose) {
			t.Fatalf("got %v", err)
		}
		if err.Error() != "unmatched ']' symbol at 1:2\n+]\n ^" {
			t.Fatalf("got %q", err.Error())
		}
	})
}

func TestDump(t *testing.T) {
	newScope(t).Call(func(
		dump Dump,
	) {
		out := new(bytes.Buffer)
		if err := dump(context.Background(), "loop", []byte("+[-]"), out); err != nil {
			t.Fatal(err)
		}
		want := new(bytes.Buffer)
		program, err := bflang.Parse("+[-]")
		if err != nil {
			t.Fatal(err)
		}
		if _, err := program.Disassemble(want); err != nil {
			t.Fatal(err)
		}
		if out.String() != want.String() {
			t.Fatalf("got %q", out.String())
		}
	})
}

func TestTapGlobals(t *testing.T) {
	interpreter := bfvm.NewInterpreter(nil, nil)
	if err := interpreter.Feed("+>++"); err != nil {
		t.Fatal(err)
	}
	if err := interpreter.Execute(); err != nil {
		t.Fatal(err)
	}
	globals := tapGlobals(interpreter)
	if globals["cursor"] != 1 {
		t.Fatalf("got %v", globals["cursor"])
	}
	if globals["state"] != bfvm.StateHalted {
		t.Fatalf("got %v", globals["state"])
	}
	cell := globals["cell"].(func(int) int)
	if cell(1) != 2 || cell(5) != 0 {
		t.Fatal()
	}
}
