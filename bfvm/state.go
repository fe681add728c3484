package bfvm

import "fmt"

type State uint8

const (
	StateReady State = iota
	StateRunning
	StateHalted
	StateFaulted
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	case StateHalted:
		return "halted"
	case StateFaulted:
		return "faulted"
	}
	return fmt.Sprintf("State(%d)", s)
}

// Done reports whether the run is over and a Reset is needed.
func (s State) Done() bool {
	return s == StateHalted || s == StateFaulted
}
