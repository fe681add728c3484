// Package bfvm executes bflang programs.
//
// An Interpreter owns everything a run touches: the program fed so far, a
// byte tape that grows to the right, the cursor, the instruction pointer and
// the injected input and output. Cells wrap modulo 256. Moving the cursor
// left of cell 0 faults with ErrTapeUnderflow. At end of input the ','
// instruction applies the configured EOFPolicy, EOFZero by default.
//
// A run goes Ready -> Running -> Halted or Faulted. Halted and Faulted are
// terminal; Reset returns the session to Ready with a fresh zeroed tape, so
// re-running a program reproduces its output.
package bfvm
