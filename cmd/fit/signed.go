package fit

import (
	"github.com/spf13/cobra"
)

var signedCmd = &cobra.Command{
	Use:   "signed <literal>",
	Short: "Pick the smallest signed type that holds an integer literal",
	Long: `Picks the smallest signed type (i8, i16, i32, i64 or i128) whose two's
complement range can represent the given integer literal.

The literal must fit in the signed 128 bit domain [-2^127, 2^127 - 1]. Use
'--' before negative literals so they are not parsed as flags.

Examples:
  # expands to i16
  autosized fit signed -- -200

  # expands to i16(-200)
  autosized fit signed --val -- -200

  # expands to i16 (129 is one above the i8 upper bound)
  autosized fit signed 129`,
	Args: cobra.ExactArgs(1),
	Run:  runFit("signed", policySigned),
}
