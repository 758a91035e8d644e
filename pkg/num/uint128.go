// Package num implements the bounded 128 bit integer values consumed by the
// width selector. Values are immutable scalars; math/big is only used to
// parse and print them at the boundary.
package num

import (
	"math"
	"math/big"

	"github.com/Manu343726/autosized/pkg/utils"
)

// Represents an unsigned 128 bit magnitude
type Uint128 struct {
	hi uint64
	lo uint64
}

// The biggest magnitude representable in the unsigned 128 bit domain (2^128 - 1)
var MaxUint128 = U128(math.MaxUint64, math.MaxUint64)

// Builds an unsigned 128 bit magnitude from its two 64 bit halves
func U128(hi uint64, lo uint64) Uint128 {
	return Uint128{
		hi: hi,
		lo: lo,
	}
}

// Builds an unsigned 128 bit magnitude from an uint64 value
func Uint128FromUint64(value uint64) Uint128 {
	return U128(0, value)
}

func (v Uint128) Hi() uint64 {
	return v.hi
}

func (v Uint128) Lo() uint64 {
	return v.lo
}

func (v Uint128) IsZero() bool {
	return v.hi == 0 && v.lo == 0
}

// Compares two magnitudes, returning -1, 0 or +1 like big.Int.Cmp
func (v Uint128) Cmp(other Uint128) int {
	switch {
	case v.hi < other.hi:
		return -1
	case v.hi > other.hi:
		return 1
	case v.lo < other.lo:
		return -1
	case v.lo > other.lo:
		return 1
	}

	return 0
}

// Returns the magnitude as a big.Int
func (v Uint128) Big() *big.Int {
	result := new(big.Int).SetUint64(v.hi)
	result.Lsh(result, 64)

	return result.Add(result, new(big.Int).SetUint64(v.lo))
}

// Returns the magnitude formatted in base 10
func (v Uint128) String() string {
	return v.Big().String()
}

// Returns the biggest magnitude representable in the given number of bits (2^bits - 1)
func MaxUintForBits(bits int) Uint128 {
	if bits <= 64 {
		return U128(0, utils.AllOnes[uint64](bits))
	}

	return U128(utils.AllOnes[uint64](bits-64), math.MaxUint64)
}
