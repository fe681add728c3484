package bflang

import "slices"

// Parser builds a Program from source fed in one or more chunks. Open loops
// may span chunks: feeding A then B produces the same Program as feeding
// A+B at once.
type Parser struct {
	code  []Instruction
	opens []pendingOpen
	pos   Pos
}

type pendingOpen struct {
	index int
	pos   Pos
}

func NewParser() *Parser {
	return &Parser{
		pos: startPos,
	}
}

// Parse parses a complete source text.
func Parse(source string) (*Program, error) {
	return ParseBytes([]byte(source))
}

func ParseBytes(source []byte) (*Program, error) {
	parser := NewParser()
	if err := parser.FeedBytes(source); err != nil {
		return nil, err
	}
	return parser.Program()
}

func (p *Parser) Feed(chunk string) error {
	return p.FeedBytes([]byte(chunk))
}

// FeedBytes appends chunk to the source. A chunk containing an unmatched ']'
// is rejected as a whole with an UnmatchedClose error and the parser is left
// as it was before the call. Unmatched '[' are kept pending for later chunks.
func (p *Parser) FeedBytes(chunk []byte) error {
	codeLen := len(p.code)
	opens := slices.Clone(p.opens)
	pos := p.pos

	for _, b := range chunk {
		here := p.pos
		p.pos = p.pos.next(b)

		op, ok := OpOf(b)
		if !ok {
			continue
		}
		inst := Instruction{
			Op: op,
		}

		switch op {

		case OpJumpIfZero:
			p.opens = append(p.opens, pendingOpen{
				index: len(p.code),
				pos:   here,
			})

		case OpJumpIfNonZero:
			if len(p.opens) == 0 {
				p.rollback(codeLen, opens, pos)
				return &BadExpressionError{
					Kind: UnmatchedClose,
					Pos:  here,
				}
			}
			open := p.opens[len(p.opens)-1]
			p.opens = p.opens[:len(p.opens)-1]
			inst.Target = open.index
			p.code[open.index].Target = len(p.code) + 1

		}

		p.code = append(p.code, inst)
	}

	return nil
}

func (p *Parser) rollback(codeLen int, opens []pendingOpen, pos Pos) {
	p.code = p.code[:codeLen]
	for _, open := range opens {
		p.code[open.index].Target = 0
	}
	p.opens = opens
	p.pos = pos
}

// Pending reports the number of '[' still waiting for a ']'.
func (p *Parser) Pending() int {
	return len(p.opens)
}

// Len reports the number of instructions parsed so far.
func (p *Parser) Len() int {
	return len(p.code)
}

// Pos returns the position of the next byte to be fed.
func (p *Parser) Pos() Pos {
	return p.pos
}

// Program returns the instructions parsed so far. It fails with
// UnmatchedOpen while any loop is still open.
func (p *Parser) Program() (*Program, error) {
	if len(p.opens) > 0 {
		err := &BadExpressionError{
			Kind: UnmatchedOpen,
			Pos:  p.opens[len(p.opens)-1].pos,
		}
		for _, open := range p.opens {
			err.Opens = append(err.Opens, open.pos)
		}
		return nil, err
	}
	return &Program{
		code: slices.Clone(p.code),
	}, nil
}

// Reset drops everything fed so far.
func (p *Parser) Reset() {
	p.code = p.code[:0]
	p.opens = p.opens[:0]
	p.pos = startPos
}
