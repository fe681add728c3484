package bflang

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	ErrUnmatchedOpen  = errors.New("'[' was never closed")
	ErrUnmatchedClose = errors.New("unmatched ']' symbol")
)

type ErrorKind uint8

const (
	UnmatchedOpen ErrorKind = iota + 1
	UnmatchedClose
)

func (k ErrorKind) String() string {
	switch k {
	case UnmatchedOpen:
		return "UnmatchedOpen"
	case UnmatchedClose:
		return "UnmatchedClose"
	}
	return fmt.Sprintf("ErrorKind(%d)", k)
}

func (k ErrorKind) err() error {
	switch k {
	case UnmatchedOpen:
		return ErrUnmatchedOpen
	case UnmatchedClose:
		return ErrUnmatchedClose
	}
	return errors.New("bad expression")
}

// BadExpressionError reports malformed loop structure.
//
// For UnmatchedClose, Pos is the offending ']'. For UnmatchedOpen, Pos is the
// innermost '[' left open and Opens holds every unclosed '[' in source order.
type BadExpressionError struct {
	Kind  ErrorKind
	Pos   Pos
	Opens []Pos
}

func (e *BadExpressionError) Error() string {
	return fmt.Sprintf("%s at %s", e.Kind.err(), e.Pos)
}

func (e *BadExpressionError) Unwrap() error {
	return e.Kind.err()
}

// Render formats the error with the offending source line and a caret under
// the bracket. source must be the full text fed to the parser.
func (e *BadExpressionError) Render(source string) string {
	var sb strings.Builder
	sb.WriteString(e.Error())
	sb.WriteString("\n")

	lines := strings.Split(source, "\n")
	idx := e.Pos.Line - 1
	if idx < 0 || idx >= len(lines) {
		return sb.String()
	}
	line := strings.TrimSuffix(lines[idx], "\r")
	sb.WriteString(line)
	sb.WriteString("\n")

	prefix := line
	if n := e.Pos.Column - 1; n < len(prefix) {
		prefix = prefix[:n]
	}
	for len(prefix) > 0 {
		r, size := utf8.DecodeRuneInString(prefix)
		prefix = prefix[size:]
		if r == '\t' {
			sb.WriteString("\t")
			continue
		}
		for range runeWidth(r) {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("^\n")

	return sb.String()
}

func runeWidth(r rune) int {
	if r == 0 {
		return 0
	}
	if r >= 0x1100 &&
		(r <= 0x115f || r == 0x2329 || r == 0x232a ||
			(r >= 0x2e80 && r <= 0xa4cf && r != 0x303f) ||
			(r >= 0xac00 && r <= 0xd7a3) ||
			(r >= 0xf900 && r <= 0xfaff) ||
			(r >= 0xfe10 && r <= 0xfe19) ||
			(r >= 0xfe30 && r <= 0xfe6f) ||
			(r >= 0xff00 && r <= 0xff60) ||
			(r >= 0xffe0 && r <= 0xffe6)) {
		return 2
	}
	return 1
}
