package core

import "fmt"

// Kind selects the factor of a qubit register an operator acts on.
type Kind int

const (
	ChannelA Kind = iota // lower sublevel a
	ChannelB             // upper sublevel b
	ChannelE             // excited sublevel e
	CommLine             // shared communication mode c
)

func (k Kind) String() string {
	switch k {
	case ChannelA:
		return "a"
	case ChannelB:
		return "b"
	case ChannelE:
		return "e"
	case CommLine:
		return "c"
	default:
		return "unknown"
	}
}

// SublevelIndex is the position of a sublevel kind inside a qubit block.
func (k Kind) SublevelIndex() (int, bool) {
	switch k {
	case ChannelA:
		return 0, true
	case ChannelB:
		return 1, true
	case ChannelE:
		return 2, true
	default:
		return 0, false
	}
}

func ParseKind(s string) (Kind, error) {
	switch s {
	case "a":
		return ChannelA, nil
	case "b":
		return ChannelB, nil
	case "e":
		return ChannelE, nil
	case "c":
		return CommLine, nil
	default:
		return 0, fmt.Errorf("unknown kind: %s", s)
	}
}
