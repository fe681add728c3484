package bfvm

import (
	"errors"
	"fmt"
	"io"

	"github.com/reusee/bf/bflang"
)

// Step describes the instruction about to execute.
type Step struct {
	IP     int
	Op     bflang.Op
	Cursor int
	Cell   byte
}

// Execute runs the session program until it halts or faults.
func (i *Interpreter) Execute() error {
	for _, err := range i.Steps {
		if err != nil {
			return err
		}
	}
	return nil
}

// Steps runs the session program, yielding each step before it executes.
// A fault is yielded once as a non-nil error and ends the iteration. If the
// caller stops early the session stays in StateRunning and a later Steps or
// Execute call continues from the next instruction.
func (i *Interpreter) Steps(yield func(Step, error) bool) {
	if err := i.start(); err != nil {
		yield(Step{IP: i.ip, Cursor: i.cursor}, err)
		return
	}

	for i.ip < i.program.Len() {
		inst := i.program.At(i.ip)
		step := Step{
			IP:     i.ip,
			Op:     inst.Op,
			Cursor: i.cursor,
			Cell:   i.tape.Get(i.cursor),
		}
		if !yield(step, nil) {
			return
		}
		if err := i.exec(inst); err != nil {
			i.state = StateFaulted
			if i.logger != nil {
				i.logger.Debug("faulted", "ip", i.ip, "cursor", i.cursor, "error", err)
			}
			yield(step, err)
			return
		}
	}

	i.state = StateHalted
	if i.logger != nil {
		i.logger.Debug("halted", "ip", i.ip, "cursor", i.cursor, "tape", i.tape.Len())
	}
}

func (i *Interpreter) start() error {
	switch i.state {
	case StateRunning:
		return nil
	case StateHalted, StateFaulted:
		return ErrExecutionHalted
	}
	program, err := i.parser.Program()
	if err != nil {
		return err
	}
	i.program = program
	i.state = StateRunning
	if i.logger != nil {
		i.logger.Debug("running", "instructions", program.Len(), "eof", i.eof)
	}
	return nil
}

func (i *Interpreter) exec(inst bflang.Instruction) error {
	next := i.ip + 1

	switch inst.Op {

	case bflang.OpMoveRight:
		i.cursor++
		i.tape.Grow(i.cursor)

	case bflang.OpMoveLeft:
		if i.cursor == 0 {
			return i.fault(inst, ErrTapeUnderflow)
		}
		i.cursor--

	case bflang.OpIncrement:
		i.tape.cells[i.cursor]++

	case bflang.OpDecrement:
		i.tape.cells[i.cursor]--

	case bflang.OpOutput:
		i.outBuf[0] = i.tape.cells[i.cursor]
		if _, err := i.output.Write(i.outBuf[:]); err != nil {
			return i.fault(inst, fmt.Errorf("%w: %w", ErrOutput, err))
		}

	case bflang.OpInput:
		if i.input == nil {
			i.tape.cells[i.cursor] = i.eof.apply(i.tape.cells[i.cursor])
			break
		}
		b, err := i.input.ReadByte()
		if errors.Is(err, io.EOF) {
			i.tape.cells[i.cursor] = i.eof.apply(i.tape.cells[i.cursor])
		} else if err != nil {
			return i.fault(inst, fmt.Errorf("%w: %w", ErrInput, err))
		} else {
			i.tape.cells[i.cursor] = b
		}

	case bflang.OpJumpIfZero:
		if inst.Target < 0 || inst.Target > i.program.Len() {
			return i.fault(inst, ErrBadJump)
		}
		if i.tape.cells[i.cursor] == 0 {
			next = inst.Target
		}

	case bflang.OpJumpIfNonZero:
		if inst.Target < 0 || inst.Target >= i.program.Len() {
			return i.fault(inst, ErrBadJump)
		}
		if i.tape.cells[i.cursor] != 0 {
			next = inst.Target
		}

	default:
		return i.fault(inst, ErrBadInstruction)
	}

	i.ip = next
	return nil
}

func (i *Interpreter) fault(inst bflang.Instruction, err error) error {
	return &RuntimeError{
		Err:    err,
		IP:     i.ip,
		Cursor: i.cursor,
		Op:     inst.Op,
	}
}
