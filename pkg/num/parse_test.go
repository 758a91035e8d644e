package num

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseUint128(t *testing.T) {
	cases := []struct {
		literal  string
		expected Uint128
	}{
		{"0", Uint128FromUint64(0)},
		{"300", Uint128FromUint64(300)},
		{"0xFF", Uint128FromUint64(255)},
		{"0o17", Uint128FromUint64(15)},
		{"0b1010_1010", Uint128FromUint64(170)},
		{"1_000_000_000", Uint128FromUint64(1000000000)},
		{"18446744073709551615", Uint128FromUint64(0xFFFFFFFFFFFFFFFF)},
		{"18446744073709551616", U128(1, 0)},
		{"340282366920938463463374607431768211455", MaxUint128},
		{" 42 ", Uint128FromUint64(42)},
	}

	for _, c := range cases {
		actual, err := ParseUint128(c.literal)

		assert.NoError(t, err, c.literal)
		assert.Equal(t, c.expected, actual, c.literal)
	}
}

func TestParseUint128Rejections(t *testing.T) {
	notAnInteger := []string{"", "abc", "1.5", "1e10", "10 apples", "--1"}

	for _, literal := range notAnInteger {
		_, err := ParseUint128(literal)
		assert.ErrorIs(t, err, ErrNotAnInteger, literal)
	}

	outOfRange := []string{"-1", "-200", "340282366920938463463374607431768211456"}

	for _, literal := range outOfRange {
		_, err := ParseUint128(literal)
		assert.ErrorIs(t, err, ErrOutOfRange, literal)
	}
}

func TestParseInt128(t *testing.T) {
	cases := []struct {
		literal  string
		expected Int128
	}{
		{"0", Int128FromInt64(0)},
		{"-200", Int128FromInt64(-200)},
		{"+200", Int128FromInt64(200)},
		{"-0x80", Int128FromInt64(-128)},
		{"-100_000_000", Int128FromInt64(-100000000)},
		{"-9223372036854775808", Int128FromInt64(-9223372036854775808)},
		{"-9223372036854775809", I128(-1, 0x7FFFFFFFFFFFFFFF)},
		{"-170141183460469231731687303715884105728", MinInt128},
		{"170141183460469231731687303715884105727", MaxInt128},
	}

	for _, c := range cases {
		actual, err := ParseInt128(c.literal)

		assert.NoError(t, err, c.literal)
		assert.Equal(t, c.expected, actual, c.literal)
	}
}

func TestParseInt128Rejections(t *testing.T) {
	notAnInteger := []string{"", "ten", "3.14", "0x", "0b2"}

	for _, literal := range notAnInteger {
		_, err := ParseInt128(literal)
		assert.ErrorIs(t, err, ErrNotAnInteger, literal)
	}

	outOfRange := []string{
		"170141183460469231731687303715884105728",
		"-170141183460469231731687303715884105729",
		"340282366920938463463374607431768211455",
	}

	for _, literal := range outOfRange {
		_, err := ParseInt128(literal)
		assert.ErrorIs(t, err, ErrOutOfRange, literal)
	}
}

func TestParseNormalizesSpelling(t *testing.T) {
	magnitude, err := ParseUint128("0xFF")
	assert.NoError(t, err)
	assert.Equal(t, "255", magnitude.String())

	value, err := ParseInt128("-0b1000_0000")
	assert.NoError(t, err)
	assert.Equal(t, "-128", value.String())
}
