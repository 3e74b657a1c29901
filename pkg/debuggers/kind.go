package debuggers

import (
	"fmt"
	"strings"
)

type Kind int

const (
	Gdb Kind = iota
	Cdb
	Lldb
	Mock
)

// AllKinds lists every supported debugger kind in declaration order.
var AllKinds = []Kind{Gdb, Cdb, Lldb, Mock}

func (k Kind) String() string {
	switch k {
	case Gdb:
		return "gdb"
	case Cdb:
		return "cdb"
	case Lldb:
		return "lldb"
	case Mock:
		return "mock"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func ParseKind(s string) (Kind, error) {
	name := strings.TrimSpace(s)
	for _, k := range AllKinds {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("Unknown debugger kind %q", name)
}
