package width

import (
	"fmt"
	"strings"

	"github.com/Manu343726/autosized/pkg/utils"
)

// Read only view of one ladder rung: its width and the representable range
type RungInfo struct {
	Width Width
	Min   string
	Max   string
}

// Returns the rungs of the ladder of the given signedness, from the smallest
// width up
func Rungs(signedness Signedness) []RungInfo {
	switch signedness {
	case Signedness_Unsigned:
		return utils.Map(unsignedLadder, func(rung unsignedRung) RungInfo {
			return RungInfo{
				Width: rung.width,
				Min:   "0",
				Max:   rung.max.String(),
			}
		})
	case Signedness_Signed:
		return utils.Map(signedLadder, func(rung signedRung) RungInfo {
			return RungInfo{
				Width: rung.width,
				Min:   rung.min.String(),
				Max:   rung.max.String(),
			}
		})
	}

	panic("unreachable")
}

// Contains implementation information about the width ladders
type LadderSet struct {
	Signednesses []Signedness
}

// Dumps the ladder description as one big multiline string
func (l *LadderSet) Documentation(leftpad int) string {
	leftpadStr := strings.Repeat(" ", leftpad)

	var builder strings.Builder

	builder.WriteString(leftpadStr)
	builder.WriteString(fmt.Sprintf("widths (bits): %v\n", utils.FormatSlice(utils.Map(Rungs(Signedness_Unsigned), func(rung RungInfo) Width { return rung.Width }), ", ")))
	builder.WriteString(leftpadStr)
	builder.WriteString(fmt.Sprintf("total rungs per ladder: %v\n\n", len(Rungs(Signedness_Unsigned))))

	for _, signedness := range l.Signednesses {
		builder.WriteString(leftpadStr)
		builder.WriteString(fmt.Sprintf("%v ladder:\n\n", strings.ToLower(signedness.String())))

		for _, rung := range Rungs(signedness) {
			designator := Descriptor{Signedness: signedness, Width: rung.Width}
			builder.WriteString(leftpadStr)
			builder.WriteString(fmt.Sprintf(" - %v: [%v, %v]\n", designator, rung.Min, rung.Max))
		}

		builder.WriteString("\n")
	}

	return builder.String()
}

// Like Documentation(), but with zero leftpad
func (l *LadderSet) DocString() string {
	return l.Documentation(0)
}

// Contains implementation information about the width ladders
var Ladders = LadderSet{
	Signednesses: []Signedness{Signedness_Unsigned, Signedness_Signed},
}
