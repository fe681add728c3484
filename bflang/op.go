package bflang

type Op uint8

const (
	OpInvalid Op = iota
	OpMoveRight
	OpMoveLeft
	OpIncrement
	OpDecrement
	OpOutput
	OpInput
	OpJumpIfZero
	OpJumpIfNonZero
)

var opTokens = [...]byte{
	OpMoveRight:     '>',
	OpMoveLeft:      '<',
	OpIncrement:     '+',
	OpDecrement:     '-',
	OpOutput:        '.',
	OpInput:         ',',
	OpJumpIfZero:    '[',
	OpJumpIfNonZero: ']',
}

var opNames = [...]string{
	OpInvalid:       "INVALID",
	OpMoveRight:     "RIGHT",
	OpMoveLeft:      "LEFT",
	OpIncrement:     "INC",
	OpDecrement:     "DEC",
	OpOutput:        "OUT",
	OpInput:         "IN",
	OpJumpIfZero:    "JZ",
	OpJumpIfNonZero: "JNZ",
}

// OpOf maps a source byte to its op. ok is false for comment bytes.
func OpOf(b byte) (op Op, ok bool) {
	switch b {
	case '>':
		return OpMoveRight, true
	case '<':
		return OpMoveLeft, true
	case '+':
		return OpIncrement, true
	case '-':
		return OpDecrement, true
	case '.':
		return OpOutput, true
	case ',':
		return OpInput, true
	case '[':
		return OpJumpIfZero, true
	case ']':
		return OpJumpIfNonZero, true
	}
	return OpInvalid, false
}

// Token returns the source byte of the op, or 0 for OpInvalid.
func (o Op) Token() byte {
	if int(o) >= len(opTokens) {
		return 0
	}
	return opTokens[o]
}

// String returns the source token.
func (o Op) String() string {
	if t := o.Token(); t != 0 {
		return string(t)
	}
	return "?"
}

// Name returns the mnemonic used in disassembly listings.
func (o Op) Name() string {
	if int(o) >= len(opNames) {
		return opNames[OpInvalid]
	}
	return opNames[o]
}

func (o Op) IsJump() bool {
	return o == OpJumpIfZero || o == OpJumpIfNonZero
}
