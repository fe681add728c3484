package bfvm

import (
	"io"

	"gopkg.in/yaml.v3"
)

// StateDump is the post-mortem view of a session written by DumpState.
type StateDump struct {
	State   string `yaml:"state"`
	IP      int    `yaml:"ip"`
	Cursor  int    `yaml:"cursor"`
	Cell    int    `yaml:"cell"`
	TapeLen int    `yaml:"tape_len"`
	Tape    []int  `yaml:"tape,flow"`
}

func (i *Interpreter) Dump() StateDump {
	cells := make([]int, i.tape.Len())
	for idx, b := range i.tape.cells {
		cells[idx] = int(b)
	}
	return StateDump{
		State:   i.state.String(),
		IP:      i.ip,
		Cursor:  i.cursor,
		Cell:    int(i.tape.Get(i.cursor)),
		TapeLen: i.tape.Len(),
		Tape:    cells,
	}
}

// DumpState writes Dump as a YAML document.
func (i *Interpreter) DumpState(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(i.Dump()); err != nil {
		return err
	}
	return enc.Close()
}
