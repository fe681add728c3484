package bfvm

import "io"

// Evaluate parses and runs source in a fresh session.
func Evaluate(source string, input io.Reader, output io.Writer) error {
	interpreter := NewInterpreter(input, output)
	if err := interpreter.Feed(source); err != nil {
		return err
	}
	return interpreter.Execute()
}
