package width

import (
	"github.com/Manu343726/autosized/pkg/num"
)

// The ladders are small ordered tables of (bounds, width) pairs searched from
// the smallest rung up. The last rung covers the whole 128 bit domain, so
// lookups always hit.

type unsignedRung struct {
	max   num.Uint128
	width Width
}

var unsignedLadder = []unsignedRung{
	{num.MaxUintForBits(8), Width_8},
	{num.MaxUintForBits(16), Width_16},
	{num.MaxUintForBits(32), Width_32},
	{num.MaxUintForBits(64), Width_64},
	{num.MaxUint128, Width_128},
}

type signedRung struct {
	min   num.Int128
	max   num.Int128
	width Width
}

// Two's complement bounds: the negative bound sits one further from zero than
// the positive bound at every rung
var signedLadder = []signedRung{
	{num.MinIntForBits(8), num.MaxIntForBits(8), Width_8},
	{num.MinIntForBits(16), num.MaxIntForBits(16), Width_16},
	{num.MinIntForBits(32), num.MaxIntForBits(32), Width_32},
	{num.MinIntForBits(64), num.MaxIntForBits(64), Width_64},
	{num.MinInt128, num.MaxInt128, Width_128},
}

// Returns the smallest width from the unsigned ladder that holds the given
// magnitude, that is, the first rung with magnitude <= 2^width - 1
func SelectUnsigned(magnitude num.Uint128) Width {
	for _, rung := range unsignedLadder {
		if magnitude.Cmp(rung.max) <= 0 {
			return rung.width
		}
	}

	panic("unreachable")
}

// Returns the smallest width from the signed ladder whose two's complement
// range contains the given value, that is, the first rung with
// -2^(width-1) <= value <= 2^(width-1) - 1
func SelectSigned(value num.Int128) Width {
	for _, rung := range signedLadder {
		if value.Cmp(rung.min) >= 0 && value.Cmp(rung.max) <= 0 {
			return rung.width
		}
	}

	panic("unreachable")
}

// Picks the signedness from the sign of the value and then the smallest width
// from the corresponding ladder: negative values go through the signed
// ladder, non negative values are reinterpreted as magnitudes and go through
// the unsigned ladder. The returned descriptor always carries the chosen
// signedness, never an ambiguous bare width
func SelectAuto(value num.Int128) Descriptor {
	if value.IsNegative() {
		return Descriptor{
			Signedness: Signedness_Signed,
			Width:      SelectSigned(value),
		}
	}

	return Descriptor{
		Signedness: Signedness_Unsigned,
		Width:      SelectUnsigned(value.Magnitude()),
	}
}
