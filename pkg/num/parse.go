package num

import (
	"errors"
	"math"
	"math/big"
	"strings"

	"github.com/Manu343726/autosized/pkg/utils"
)

// The literal is not parseable as an integer at all (floats, garbage, etc)
var ErrNotAnInteger = errors.New("not an integer literal")

// The literal parses as an integer but does not fit in the requested 128 bit domain
var ErrOutOfRange = errors.New("integer literal out of range")

var (
	maxUint64Big = new(big.Int).SetUint64(math.MaxUint64)

	maxUint128Big = func() *big.Int {
		max := big.NewInt(1)
		max.Lsh(max, 128)
		return max.Sub(max, big.NewInt(1))
	}()

	minInt128Big = func() *big.Int {
		min := big.NewInt(-1)
		return min.Lsh(min, 127)
	}()

	maxInt128Big = func() *big.Int {
		max := big.NewInt(1)
		max.Lsh(max, 127)
		return max.Sub(max, big.NewInt(1))
	}()

	two128Big = func() *big.Int {
		mod := big.NewInt(1)
		return mod.Lsh(mod, 128)
	}()
)

// Parses the literal with Go integer literal syntax: optional sign, optional
// 0b/0o/0x base prefix, underscore digit separators
func parseBig(literal string) (*big.Int, error) {
	value, ok := new(big.Int).SetString(strings.TrimSpace(literal), 0)

	if !ok {
		return nil, utils.MakeError(ErrNotAnInteger, "'%v'", literal)
	}

	return value, nil
}

func uint128FromBig(value *big.Int) Uint128 {
	lo := new(big.Int).And(value, maxUint64Big).Uint64()
	hi := new(big.Int).Rsh(value, 64).Uint64()

	return U128(hi, lo)
}

// Parses an integer literal in the unsigned 128 bit domain [0, 2^128 - 1]
func ParseUint128(literal string) (Uint128, error) {
	value, err := parseBig(literal)

	if err != nil {
		return Uint128{}, err
	}

	if value.Sign() < 0 || value.Cmp(maxUint128Big) > 0 {
		return Uint128{}, utils.MakeError(ErrOutOfRange, "'%v' does not fit in [0, %v]", literal, maxUint128Big)
	}

	return uint128FromBig(value), nil
}

// Parses an integer literal in the signed 128 bit domain [-2^127, 2^127 - 1]
func ParseInt128(literal string) (Int128, error) {
	value, err := parseBig(literal)

	if err != nil {
		return Int128{}, err
	}

	if value.Cmp(minInt128Big) < 0 || value.Cmp(maxInt128Big) > 0 {
		return Int128{}, utils.MakeError(ErrOutOfRange, "'%v' does not fit in [%v, %v]", literal, minInt128Big, maxInt128Big)
	}

	// Negative values are stored as their two's complement residue mod 2^128
	twosComplement := uint128FromBig(new(big.Int).Mod(value, two128Big))

	return I128(int64(twosComplement.Hi()), twosComplement.Lo()), nil
}
