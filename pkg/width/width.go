// Package width implements the width selector: given a bounded 128 bit
// integer value it picks the narrowest fixed width representation that holds
// the value without overflow. Selection is a pure total function, it has no
// error path for in-domain input.
package width

import (
	"fmt"
	"reflect"

	"github.com/Manu343726/autosized/pkg/utils"
)

// Represents one rung of the fixed width ladder
type Width uint

const (
	Width_8 Width = iota
	Width_16
	Width_32
	Width_64
	Width_128
)

// Returns the size in bits of the width
func (w Width) Bits() int {
	switch w {
	case Width_8:
		return 8
	case Width_16:
		return 16
	case Width_32:
		return 32
	case Width_64:
		return 64
	case Width_128:
		return 128
	}

	panic("unreachable")
}

// Returns the size in bytes of the width
func (w Width) Bytes() int {
	return w.Bits() / utils.BitsPerByte
}

func (w Width) String() string {
	return fmt.Sprint(w.Bits())
}

// Represents whether a fixed width representation is signed or unsigned
type Signedness uint

const (
	Signedness_Unsigned Signedness = iota
	Signedness_Signed
)

func (s Signedness) String() string {
	switch s {
	case Signedness_Unsigned:
		return "Unsigned"
	case Signedness_Signed:
		return "Signed"
	}

	panic("unreachable")
}

// Returns the one character prefix used in type designators ("u" or "i")
func (s Signedness) Prefix() string {
	switch s {
	case Signedness_Unsigned:
		return "u"
	case Signedness_Signed:
		return "i"
	}

	panic("unreachable")
}

// Identifies the minimal fitting representation of a value: a bit width plus
// its signedness. Descriptors are immutable output data returned from a
// single selection call
type Descriptor struct {
	Signedness Signedness
	Width      Width
}

// Returns the type designator of the descriptor (u8, u16, ..., i128)
func (d Descriptor) String() string {
	return d.Signedness.Prefix() + d.Width.String()
}

// Returns the golang equivalent of the descriptor, or false for the 128 bit
// widths, which have no native golang counterpart
func (d Descriptor) GoType() (reflect.Type, bool) {
	switch d.Signedness {
	case Signedness_Unsigned:
		switch d.Width {
		case Width_8:
			return reflect.TypeFor[uint8](), true
		case Width_16:
			return reflect.TypeFor[uint16](), true
		case Width_32:
			return reflect.TypeFor[uint32](), true
		case Width_64:
			return reflect.TypeFor[uint64](), true
		case Width_128:
			return nil, false
		}
	case Signedness_Signed:
		switch d.Width {
		case Width_8:
			return reflect.TypeFor[int8](), true
		case Width_16:
			return reflect.TypeFor[int16](), true
		case Width_32:
			return reflect.TypeFor[int32](), true
		case Width_64:
			return reflect.TypeFor[int64](), true
		case Width_128:
			return nil, false
		}
	}

	panic("unreachable")
}
