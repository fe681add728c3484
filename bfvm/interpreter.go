package bfvm

import (
	"bufio"
	"io"

	"github.com/reusee/bf/bflang"
	"github.com/reusee/bf/logs"
)

// Interpreter is a brainfuck session. It is not safe for concurrent use.
type Interpreter struct {
	eof      EOFPolicy
	tapeSize int
	logger   logs.Logger

	parser  *bflang.Parser
	program *bflang.Program

	tape   *Tape
	cursor int
	ip     int
	state  State

	input  io.ByteReader
	output io.Writer
	outBuf [1]byte
}

// NewInterpreter returns an empty session reading ',' from input and writing
// '.' to output. A nil input is always at end of input; a nil output
// discards.
func NewInterpreter(input io.Reader, output io.Writer) *Interpreter {
	if output == nil {
		output = io.Discard
	}
	i := &Interpreter{
		tapeSize: DefaultTapeSize,
		parser:   bflang.NewParser(),
		output:   output,
	}
	if input != nil {
		if br, ok := input.(io.ByteReader); ok {
			i.input = br
		} else {
			i.input = bufio.NewReader(input)
		}
	}
	i.Reset()
	return i
}

func (i *Interpreter) WithEOF(policy EOFPolicy) *Interpreter {
	i.eof = policy
	return i
}

// WithTapeSize sets the capacity preallocated for the tape and resets the
// session.
func (i *Interpreter) WithTapeSize(n int) *Interpreter {
	i.tapeSize = n
	i.Reset()
	return i
}

func (i *Interpreter) WithLogger(logger logs.Logger) *Interpreter {
	i.logger = logger
	return i
}

// Feed appends source to the session program. See bflang.Parser.Feed.
func (i *Interpreter) Feed(source string) error {
	return i.parser.Feed(source)
}

func (i *Interpreter) FeedBytes(source []byte) error {
	return i.parser.FeedBytes(source)
}

// Program returns the program fed so far.
func (i *Interpreter) Program() (*bflang.Program, error) {
	return i.parser.Program()
}

// Reset prepares a new run: cursor and instruction pointer at 0, a fresh
// zeroed tape, StateReady. The fed program is kept.
func (i *Interpreter) Reset() {
	i.program = nil
	i.tape = NewTape(i.tapeSize)
	i.cursor = 0
	i.ip = 0
	i.state = StateReady
}

// Clear drops the fed program and resets the session.
func (i *Interpreter) Clear() {
	i.parser.Reset()
	i.Reset()
}

func (i *Interpreter) State() State {
	return i.state
}

func (i *Interpreter) Cursor() int {
	return i.cursor
}

func (i *Interpreter) IP() int {
	return i.ip
}

func (i *Interpreter) Tape() *Tape {
	return i.tape
}

func (i *Interpreter) EOF() EOFPolicy {
	return i.eof
}
