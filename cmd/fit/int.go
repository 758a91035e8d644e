package fit

import (
	"github.com/spf13/cobra"
)

var intCmd = &cobra.Command{
	Use:   "int <literal>",
	Short: "Pick the smallest integer type, signed or unsigned, that holds an integer literal",
	Long: `Picks the smallest integer type that can represent the given integer literal,
inferring signedness from its sign: negative literals get a signed type,
non negative literals get an unsigned type.

The accepted input range is the full signed 128 bit domain [-2^127, 2^127 - 1],
not the unsigned one. Use '--' before negative literals so they are not parsed
as flags.

Examples:
  # expands to u8
  autosized fit int 10

  # expands to i8
  autosized fit int -- -10

  # expands to u32
  autosized fit int 1_000_000_000

  # expands to i32(-100000000)
  autosized fit int --val -- -100_000_000`,
	Args: cobra.ExactArgs(1),
	Run:  runFit("int", policyAuto),
}
