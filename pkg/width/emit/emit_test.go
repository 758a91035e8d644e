package emit

import (
	"testing"

	"github.com/Manu343726/autosized/pkg/width"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestRenderType(t *testing.T) {
	u16 := width.Descriptor{Signedness: width.Signedness_Unsigned, Width: width.Width_16}
	i128 := width.Descriptor{Signedness: width.Signedness_Signed, Width: width.Width_128}

	assert.Equal(t, "u16", Render(u16, "300", Mode_Type))
	assert.Equal(t, "i128", Render(i128, "-170141183460469231731687303715884105728", Mode_Type))
}

func TestRenderValue(t *testing.T) {
	u16 := width.Descriptor{Signedness: width.Signedness_Unsigned, Width: width.Width_16}
	i16 := width.Descriptor{Signedness: width.Signedness_Signed, Width: width.Width_16}
	u128 := width.Descriptor{Signedness: width.Signedness_Unsigned, Width: width.Width_128}

	assert.Equal(t, "u16(300)", Render(u16, "300", Mode_Value))
	assert.Equal(t, "i16(-200)", Render(i16, "-200", Mode_Value))
	assert.Equal(t, "u128(340282366920938463463374607431768211455)", Render(u128, "340282366920938463463374607431768211455", Mode_Value))
}

func TestParseMode(t *testing.T) {
	mode, err := ParseMode("type")
	assert.NoError(t, err)
	assert.Equal(t, Mode_Type, mode)

	mode, err = ParseMode("value")
	assert.NoError(t, err)
	assert.Equal(t, Mode_Value, mode)

	_, err = ParseMode("cast")
	assert.ErrorIs(t, err, ErrInvalidMode)
}

func TestHighlightWithoutColors(t *testing.T) {
	previous := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = previous }()

	// With colors disabled highlighting must be the identity over rendered output
	assert.Equal(t, "u16", Highlight("u16"))
	assert.Equal(t, "i16(-200)", Highlight("i16(-200)"))

	// Text that does not look like rendered output passes through untouched
	assert.Equal(t, "hello", Highlight("hello"))
	assert.Equal(t, "u16 and more", Highlight("u16 and more"))
}
