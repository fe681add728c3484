package bfvm

// DefaultTapeSize is the number of cells preallocated by NewTape when no
// capacity is given. It is a capacity hint, not a limit.
const DefaultTapeSize = 32768

// Tape is a sequence of byte cells, unbounded to the right. Cells past the
// end read as zero and are materialized by Grow.
type Tape struct {
	cells []byte
}

func NewTape(capacity int) *Tape {
	if capacity <= 0 {
		capacity = DefaultTapeSize
	}
	return &Tape{
		cells: make([]byte, 1, capacity),
	}
}

// Len returns the number of materialized cells.
func (t *Tape) Len() int {
	return len(t.cells)
}

func (t *Tape) Get(i int) byte {
	if i < 0 || i >= len(t.cells) {
		return 0
	}
	return t.cells[i]
}

func (t *Tape) Set(i int, b byte) {
	t.Grow(i)
	t.cells[i] = b
}

// Grow appends zero cells until index i exists.
func (t *Tape) Grow(i int) {
	if n := i + 1 - len(t.cells); n > 0 {
		t.cells = append(t.cells, make([]byte, n)...)
	}
}

// Bytes returns a copy of the materialized cells.
func (t *Tape) Bytes() []byte {
	ret := make([]byte, len(t.cells))
	copy(ret, t.cells)
	return ret
}
