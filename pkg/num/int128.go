package num

import (
	"math"
	"math/big"

	"github.com/Manu343726/autosized/pkg/utils"
)

// Represents a signed two's complement 128 bit value. The high half carries
// the sign, the low half is a plain unsigned word, so the numeric value is
// hi * 2^64 + lo.
type Int128 struct {
	hi int64
	lo uint64
}

var (
	// The smallest value representable in the signed 128 bit domain (-2^127)
	MinInt128 = I128(math.MinInt64, 0)
	// The biggest value representable in the signed 128 bit domain (2^127 - 1)
	MaxInt128 = I128(math.MaxInt64, math.MaxUint64)
)

// Builds a signed 128 bit value from its two 64 bit halves
func I128(hi int64, lo uint64) Int128 {
	return Int128{
		hi: hi,
		lo: lo,
	}
}

// Builds a signed 128 bit value from an int64 value, sign extending it
func Int128FromInt64(value int64) Int128 {
	return I128(value>>63, uint64(value))
}

func (v Int128) Hi() int64 {
	return v.hi
}

func (v Int128) Lo() uint64 {
	return v.lo
}

func (v Int128) IsNegative() bool {
	return v.hi < 0
}

// Returns the sign of the value: -1 if negative, 0 if zero, +1 if positive
func (v Int128) Sign() int {
	if v.IsNegative() {
		return -1
	}

	if v.hi == 0 && v.lo == 0 {
		return 0
	}

	return 1
}

// Compares two signed values, returning -1, 0 or +1 like big.Int.Cmp
func (v Int128) Cmp(other Int128) int {
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

// Reinterprets a non negative value as an unsigned magnitude of the same
// numeric value
func (v Int128) Magnitude() Uint128 {
	if v.IsNegative() {
		panic("cannot reinterpret a negative value as a magnitude")
	}

	return U128(uint64(v.hi), v.lo)
}

// Returns the value as a big.Int
func (v Int128) Big() *big.Int {
	result := big.NewInt(v.hi)
	result.Lsh(result, 64)

	return result.Add(result, new(big.Int).SetUint64(v.lo))
}

// Returns the value formatted in base 10
func (v Int128) String() string {
	return v.Big().String()
}

// Returns the smallest value representable in the given number of two's complement bits (-2^(bits-1))
func MinIntForBits(bits int) Int128 {
	if bits <= 64 {
		return Int128FromInt64(int64(-1) << (bits - 1))
	}

	return I128(int64(-1)<<(bits-65), 0)
}

// Returns the biggest value representable in the given number of two's complement bits (2^(bits-1) - 1)
func MaxIntForBits(bits int) Int128 {
	if bits <= 64 {
		return Int128FromInt64(int64(1)<<(bits-1) - 1)
	}

	return I128(int64(utils.AllOnes[uint64](bits-65)), math.MaxUint64)
}
