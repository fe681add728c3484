package cmds

import (
	"fmt"
	"reflect"
)

// Command is one word of the command line. Its function arguments are taken
// from the words that follow it; pointer arguments are optional.
type Command struct {
	Func        reflect.Value
	Description string
	ArgNames    []string
	Aliases     []string
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

// Args names the arguments in usage output.
func (c *Command) Args(names ...string) *Command {
	c.ArgNames = append(c.ArgNames, names...)
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

func Func(fn any) *Command {
	fnValue := reflect.ValueOf(fn)

	if fnValue.Kind() != reflect.Func {
		panic(fmt.Errorf("must be function, got %T", fn))
	}

	numRets := fnValue.Type().NumOut()
	if numRets >= 2 {
		panic(fmt.Errorf("must return 0 or 1 value"))
	}
	if numRets == 1 && fnValue.Type().Out(0) != errorType {
		panic(fmt.Errorf("must return error"))
	}

	return &Command{
		Func: fnValue,
	}
}
