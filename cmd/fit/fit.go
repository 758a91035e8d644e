package fit

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/Manu343726/autosized/pkg/num"
	"github.com/Manu343726/autosized/pkg/utils"
	"github.com/Manu343726/autosized/pkg/width"
	"github.com/Manu343726/autosized/pkg/width/emit"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// FitCmd represents the fit command group
var FitCmd = &cobra.Command{
	Use:   "fit",
	Short: "Fit integer literals into the smallest fixed width type",
}

var emitValue bool

func init() {
	FitCmd.PersistentFlags().BoolVar(&emitValue, "val", false, "emit the literal as a value of the selected type instead of the bare type designator")

	FitCmd.AddCommand(unsignedCmd, signedCmd, intCmd, inspectCmd, batchCmd, exploreCmd)
}

// Selection policy names as accepted by 'fit inspect --policy' and batch requests
const (
	policyUnsigned = "unsigned"
	policySigned   = "signed"
	policyAuto     = "auto"
)

var ErrInvalidPolicy = errors.New("invalid selection policy")

// Parses the literal in the domain of the given policy and runs the width
// selector on it. Returns the selected descriptor plus the normalized base 10
// spelling of the value
func fitLiteral(policy string, literal string) (width.Descriptor, string, error) {
	switch policy {
	case policyUnsigned:
		magnitude, err := num.ParseUint128(literal)

		if err != nil {
			return width.Descriptor{}, "", err
		}

		return width.Descriptor{
			Signedness: width.Signedness_Unsigned,
			Width:      width.SelectUnsigned(magnitude),
		}, magnitude.String(), nil
	case policySigned:
		value, err := num.ParseInt128(literal)

		if err != nil {
			return width.Descriptor{}, "", err
		}

		return width.Descriptor{
			Signedness: width.Signedness_Signed,
			Width:      width.SelectSigned(value),
		}, value.String(), nil
	case policyAuto:
		value, err := num.ParseInt128(literal)

		if err != nil {
			return width.Descriptor{}, "", err
		}

		return width.SelectAuto(value), value.String(), nil
	}

	return width.Descriptor{}, "", utils.MakeError(ErrInvalidPolicy, "'%v' (supported: %v, %v, %v)", policy, policyUnsigned, policySigned, policyAuto)
}

// Shared run implementation of the unsigned/signed/int subcommands
func runFit(entryPoint string, policy string) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		literal := args[0]

		descriptor, value, err := fitLiteral(policy, literal)

		if err != nil {
			fmt.Fprintf(os.Stderr, "fit %v: %v\n", entryPoint, err)
			os.Exit(1)
		}

		mode := emit.Mode_Type

		if emitValue || viper.GetBool("emit.value") {
			mode = emit.Mode_Value
		}

		slog.Debug("selected representation",
			"literal", literal,
			"policy", policy,
			"descriptor", descriptor.String(),
			"bits", descriptor.Width.Bits())

		fmt.Println(emit.Highlight(emit.Render(descriptor, value, mode)))
	}
}
