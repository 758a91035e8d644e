package fit

import (
	"github.com/spf13/cobra"
)

var unsignedCmd = &cobra.Command{
	Use:   "unsigned <literal>",
	Short: "Pick the smallest unsigned type that holds an integer literal",
	Long: `Picks the smallest unsigned type (u8, u16, u32, u64 or u128) that can
represent the given integer literal.

The literal must fit in the unsigned 128 bit domain [0, 2^128 - 1]. Base
prefixes (0x, 0o, 0b) and underscore digit separators are accepted.

Examples:
  # expands to u16
  autosized fit unsigned 300

  # expands to u16(300)
  autosized fit unsigned --val 300

  # expands to u8
  autosized fit unsigned 0xFF`,
	Args: cobra.ExactArgs(1),
	Run:  runFit("unsigned", policyUnsigned),
}
