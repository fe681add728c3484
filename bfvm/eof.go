package bfvm

import "fmt"

// EOFPolicy decides what ',' stores when the input is exhausted.
type EOFPolicy uint8

const (
	// EOFZero stores 0.
	EOFZero EOFPolicy = iota
	// EOFUnchanged leaves the cell as it was.
	EOFUnchanged
	// EOFMax stores 255.
	EOFMax
)

func ParseEOFPolicy(str string) (EOFPolicy, error) {
	switch str {
	case "zero", "":
		return EOFZero, nil
	case "unchanged":
		return EOFUnchanged, nil
	case "max":
		return EOFMax, nil
	}
	return 0, fmt.Errorf("unknown eof policy: %q", str)
}

func (p EOFPolicy) String() string {
	switch p {
	case EOFZero:
		return "zero"
	case EOFUnchanged:
		return "unchanged"
	case EOFMax:
		return "max"
	}
	return fmt.Sprintf("EOFPolicy(%d)", p)
}

func (p EOFPolicy) apply(cell byte) byte {
	switch p {
	case EOFUnchanged:
		return cell
	case EOFMax:
		return 255
	}
	return 0
}
