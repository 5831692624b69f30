// Package trace decodes valgrind-style memory traces.
//
// Each line of a trace holds one access in the form
//
//	<op> <hex address>,<decimal size>
//
// where op is L (load), S (store) or M (modify, a load followed by a store).
// Lines starting with any other operation, such as the I lines valgrind emits
// for instruction fetches, decode as records of kind Other.
package trace

import "fmt"

// OpKind is the operation of a trace record.
type OpKind int

// All the operations a record can carry.
const (
	Other OpKind = iota
	Load
	Store
	Modify
)

// OpKindOf classifies an operation character.
func OpKindOf(c byte) OpKind {
	switch c {
	case 'L':
		return Load
	case 'S':
		return Store
	case 'M':
		return Modify
	default:
		return Other
	}
}

func (k OpKind) String() string {
	switch k {
	case Load:
		return "L"
	case Store:
		return "S"
	case Modify:
		return "M"
	default:
		return "?"
	}
}

// NumAccesses returns how many cache accesses the operation performs.
func (k OpKind) NumAccesses() int {
	switch k {
	case Load, Store:
		return 1
	case Modify:
		return 2
	default:
		return 0
	}
}

// A Record is one decoded trace line.
type Record struct {
	Op      OpKind
	OpChar  byte
	Address uint64
	Size    int
}

// String renders the record in the trace format, without leading spaces.
func (r Record) String() string {
	op := r.OpChar
	if op == 0 {
		op = r.Op.String()[0]
	}

	return fmt.Sprintf("%c %x,%d", op, r.Address, r.Size)
}
