package bflang

import "fmt"

// Pos is a location in the source fed to a Parser. Offset counts bytes from
// the start of the first feed; Line and Column are 1-based.
type Pos struct {
	Offset int
	Line   int
	Column int
}

var startPos = Pos{
	Line:   1,
	Column: 1,
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

func (p Pos) next(b byte) Pos {
	p.Offset++
	if b == '\n' {
		p.Line++
		p.Column = 1
	} else {
		p.Column++
	}
	return p
}
