// Package emit renders width descriptors as text. It carries no selection
// logic: the descriptor is computed by the width package, emit only formats
// it as a bare type designator or as a cast expression.
package emit

import (
	"errors"
	"fmt"

	"github.com/Manu343726/autosized/pkg/utils"
	"github.com/Manu343726/autosized/pkg/width"
)

// Represents the rendering mode of a selection result
type Mode uint

const (
	// Emit the descriptor alone, as a type designator (u16)
	Mode_Type Mode = iota
	// Emit the literal as a value of the selected width, as a cast expression (u16(300))
	Mode_Value
)

func (m Mode) String() string {
	switch m {
	case Mode_Type:
		return "type"
	case Mode_Value:
		return "value"
	}

	panic("unreachable")
}

var ErrInvalidMode = errors.New("invalid emit mode")

// Parses an emit mode name as spelled by Mode.String()
func ParseMode(name string) (Mode, error) {
	switch name {
	case "type":
		return Mode_Type, nil
	case "value":
		return Mode_Value, nil
	}

	return 0, utils.MakeError(ErrInvalidMode, "'%v' (supported: type, value)", name)
}

// Renders a selection result. The value is the normalized base 10 spelling of
// the parsed literal and is only used by Mode_Value
func Render(descriptor width.Descriptor, value string, mode Mode) string {
	switch mode {
	case Mode_Type:
		return descriptor.String()
	case Mode_Value:
		return fmt.Sprintf("%v(%v)", descriptor, value)
	}

	panic("unreachable")
}
