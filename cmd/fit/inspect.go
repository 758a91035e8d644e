package fit

import (
	"fmt"
	"os"
	"strings"

	"github.com/Manu343726/autosized/pkg/num"
	"github.com/Manu343726/autosized/pkg/utils"
	"github.com/Manu343726/autosized/pkg/width"
	"github.com/Manu343726/autosized/pkg/width/emit"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	colorLabel = color.New(color.FgHiBlack)
	colorType  = color.New(color.FgCyan, color.Bold)
	colorNum   = color.New(color.FgYellow)
	colorHex   = color.New(color.FgMagenta)
)

var inspectPolicy string

var inspectCmd = &cobra.Command{
	Use:   "inspect <literal>",
	Short: "Show the full width selection report for an integer literal",
	Long: `Runs the width selector on the given integer literal and dumps everything
about the selected representation: the type designator, the representable
range of the selected rung, the equivalent go type, the encoded bits and a
diagram of the bit layout.

Examples:
  autosized fit inspect 300
  autosized fit inspect --policy signed -- -200`,
	Args: cobra.ExactArgs(1),
	Run:  runInspect,
}

func init() {
	inspectCmd.Flags().StringVarP(&inspectPolicy, "policy", "p", policyAuto, "selection policy: unsigned, signed or auto")
}

// Returns the low 64 bits of the literal's two's complement encoding,
// truncated to the given width. Only meaningful for widths up to 64 bits
func encodedBits(descriptor width.Descriptor, literal string) uint64 {
	mask := utils.AllOnes[uint64](descriptor.Width.Bits())

	if descriptor.Signedness == width.Signedness_Signed {
		value, _ := num.ParseInt128(literal)
		return value.Lo() & mask
	}

	magnitude, _ := num.ParseUint128(literal)
	return magnitude.Lo() & mask
}

func runInspect(cmd *cobra.Command, args []string) {
	literal := args[0]

	descriptor, value, err := fitLiteral(inspectPolicy, literal)

	if err != nil {
		fmt.Fprintf(os.Stderr, "fit inspect: %v\n", err)
		os.Exit(1)
	}

	var rung width.RungInfo

	for _, candidate := range width.Rungs(descriptor.Signedness) {
		if candidate.Width == descriptor.Width {
			rung = candidate
			break
		}
	}

	bits := descriptor.Width.Bits()

	fmt.Printf("%v %v\n", colorLabel.Sprint("literal: "), literal)
	fmt.Printf("%v %v\n", colorLabel.Sprint("value:   "), colorNum.Sprint(value))
	fmt.Printf("%v %v (%v bits, %v)\n", colorLabel.Sprint("fits:    "), colorType.Sprint(descriptor), bits, strings.ToLower(descriptor.Signedness.String()))
	fmt.Printf("%v [%v, %v]\n", colorLabel.Sprint("range:   "), rung.Min, rung.Max)

	if goType, ok := descriptor.GoType(); ok {
		fmt.Printf("%v %v\n", colorLabel.Sprint("go type: "), goType)
	} else {
		fmt.Printf("%v (none)\n", colorLabel.Sprint("go type: "))
	}

	if bits <= 64 {
		encoded := encodedBits(descriptor, literal)
		fmt.Printf("%v %v\n", colorLabel.Sprint("hex:     "), colorHex.Sprint(utils.FormatUintHex(encoded, bits/4)))
		fmt.Printf("%v %v\n", colorLabel.Sprint("binary:  "), utils.FormatUintBinary(encoded, bits))
	}

	fields := []utils.BitFrameField{
		{Name: "value", Begin: 0, Width: bits},
	}

	if descriptor.Signedness == width.Signedness_Signed {
		fields = []utils.BitFrameField{
			{Name: "value", Begin: 0, Width: bits - 1},
			{Name: "s", Begin: bits - 1, Width: 1},
		}
	}

	fmt.Println()
	fmt.Print(utils.BitFrame(fields, bits, 2))
	fmt.Println()
	fmt.Println(emit.Highlight(emit.Render(descriptor, value, emit.Mode_Value)))
}
