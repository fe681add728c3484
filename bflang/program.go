package bflang

import (
	"bytes"
	"fmt"
	"io"
	"slices"
)

// Program is a validated instruction sequence. Programs are only built by a
// Parser and are never modified afterwards.
type Program struct {
	code []Instruction
}

func (p *Program) Len() int {
	return len(p.code)
}

func (p *Program) At(i int) Instruction {
	return p.code[i]
}

// Instructions returns a copy of the instruction sequence.
func (p *Program) Instructions() []Instruction {
	return slices.Clone(p.code)
}

// String returns the canonical source of the program, comments stripped.
func (p *Program) String() string {
	buf := make([]byte, 0, len(p.code))
	for _, inst := range p.code {
		buf = append(buf, inst.Op.Token())
	}
	return string(buf)
}

// Disassemble writes one line per instruction to w, jumps annotated with
// their resolved targets. It returns the number of bytes written.
func (p *Program) Disassemble(w io.Writer) (int, error) {
	var buf bytes.Buffer
	var total int

	flush := func() error {
		n, err := w.Write(buf.Bytes())
		total += n
		buf.Reset()
		return err
	}

	width := len(fmt.Sprint(len(p.code)))
	for i, inst := range p.code {
		fmt.Fprintf(&buf, "%0*d  %s", width, i, inst)
		buf.WriteByte('\n')
		if buf.Len() >= 4096 {
			if err := flush(); err != nil {
				return total, err
			}
		}
	}
	if err := flush(); err != nil {
		return total, err
	}

	return total, nil
}
