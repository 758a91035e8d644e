package width

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWidthBits(t *testing.T) {
	assert.Equal(t, 8, Width_8.Bits())
	assert.Equal(t, 16, Width_16.Bits())
	assert.Equal(t, 32, Width_32.Bits())
	assert.Equal(t, 64, Width_64.Bits())
	assert.Equal(t, 128, Width_128.Bits())

	assert.Equal(t, 2, Width_16.Bytes())
	assert.Equal(t, 16, Width_128.Bytes())
}

func TestDescriptorString(t *testing.T) {
	assert.Equal(t, "u8", Descriptor{Signedness_Unsigned, Width_8}.String())
	assert.Equal(t, "u16", Descriptor{Signedness_Unsigned, Width_16}.String())
	assert.Equal(t, "i16", Descriptor{Signedness_Signed, Width_16}.String())
	assert.Equal(t, "i128", Descriptor{Signedness_Signed, Width_128}.String())
}

func TestDescriptorGoType(t *testing.T) {
	goType, ok := Descriptor{Signedness_Unsigned, Width_16}.GoType()
	assert.True(t, ok)
	assert.Equal(t, reflect.TypeFor[uint16](), goType)

	goType, ok = Descriptor{Signedness_Signed, Width_64}.GoType()
	assert.True(t, ok)
	assert.Equal(t, reflect.TypeFor[int64](), goType)

	_, ok = Descriptor{Signedness_Unsigned, Width_128}.GoType()
	assert.False(t, ok)

	_, ok = Descriptor{Signedness_Signed, Width_128}.GoType()
	assert.False(t, ok)
}

func TestRungs(t *testing.T) {
	unsigned := Rungs(Signedness_Unsigned)
	signed := Rungs(Signedness_Signed)

	assert.Len(t, unsigned, 5)
	assert.Len(t, signed, 5)

	assert.Equal(t, RungInfo{Width_8, "0", "255"}, unsigned[0])
	assert.Equal(t, RungInfo{Width_8, "-128", "127"}, signed[0])
	assert.Equal(t, "340282366920938463463374607431768211455", unsigned[4].Max)
	assert.Equal(t, "-170141183460469231731687303715884105728", signed[4].Min)
}

func TestLaddersDocumentation(t *testing.T) {
	doc := Ladders.DocString()

	t.Logf("\n%v", doc)

	assert.Contains(t, doc, "unsigned ladder:")
	assert.Contains(t, doc, "signed ladder:")
	assert.Contains(t, doc, " - u8: [0, 255]")
	assert.Contains(t, doc, " - i8: [-128, 127]")
	assert.Contains(t, doc, "widths (bits): 8, 16, 32, 64, 128")

	leftpadded := Ladders.Documentation(2)

	for _, line := range strings.Split(leftpadded, "\n") {
		if line != "" {
			assert.True(t, strings.HasPrefix(line, "  "), line)
		}
	}
}
