package cmds

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var a int
	executor.Define("+a", Func(func() {
		a = 42
	}))
	executor.Define("a", Func(func(i int) {
		a = i
	}))

	if err := executor.Execute([]string{
		"+a",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 42 {
		t.Fatal()
	}

	if err := executor.Execute([]string{
		"a", "1",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 1 {
		t.Fatal()
	}

	err := executor.Execute([]string{
		"foo",
	})
	if !strings.Contains(err.Error(), "unknown command: foo") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{
		"a", "x",
	})
	if !strings.Contains(err.Error(), "a: convert x to int") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{
		"a",
	})
	if !strings.Contains(err.Error(), "expecting argument") {
		t.Fatalf("got %v", err)
	}
}

func TestCommandError(t *testing.T) {
	executor := NewExecutor()
	boom := errors.New("boom")
	var after bool
	executor.Define("fail", Func(func() error {
		return boom
	}))
	executor.Define("after", Func(func() {
		after = true
	}))
	executor.Define("ok", Func(func() error {
		return nil
	}))

	if err := executor.Execute([]string{"ok", "after"}); err != nil {
		t.Fatal(err)
	}
	if !after {
		t.Fatal()
	}

	after = false
	err := executor.Execute([]string{"fail", "after"})
	if !errors.Is(err, boom) {
		t.Fatalf("got %v", err)
	}
	if after {
		t.Fatal("should stop at the failing command")
	}
}

func TestOptionalArgument(t *testing.T) {
	executor := NewExecutor()
	var n int
	var s string
	executor.Define("foo", Func(func(arg *int, arg2 *string) {
		n = *arg
		s = *arg2
	}))

	err := executor.Execute([]string{"foo", "42", "foo"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 42 {
		t.Fatal()
	}
	if s != "foo" {
		t.Fatal()
	}

	err = executor.Execute([]string{"foo", "99"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 99 {
		t.Fatal()
	}
	if s != "" {
		t.Fatal()
	}
}

func TestDuplicatedCommand(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Func(func() {}))
	defer func() {
		if p := recover(); p == nil {
			t.Fatal("should panic")
		}
	}()
	executor.Define("foo", Func(func() {}))
}

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	buf := new(bytes.Buffer)
	executor.output = buf
	executor.Define("run", Func(func(string) {}).Args("file").Desc("run a program"))
	executor.Define("-trace", Func(func() {}).Desc("trace"))
	executor.PrintUsage()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %q", buf.String())
	}
	if !strings.Contains(lines[0], "-h") || !strings.Contains(lines[0], "(help, -help, --help)") {
		t.Fatalf("got %v", lines[0])
	}
	if !strings.Contains(lines[1], "-trace") {
		t.Fatalf("got %v", lines[1])
	}
	if !strings.Contains(lines[2], "run <file>") || !strings.Contains(lines[2], "run a program") {
		t.Fatalf("got %v", lines[2])
	}
}
