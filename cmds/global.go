package cmds

import (
	"fmt"
	"os"
)

var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

// Execute runs args on GlobalExecutor and exits the process on error.
func Execute(args []string) {
	if err := GlobalExecutor.Execute(args); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}
}

// Describe sets the usage description of a command defined on
// GlobalExecutor, typically one created by Var or Switch.
func Describe(name string, desc string) {
	GlobalExecutor.Describe(name, desc)
}
