package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitFrame_SingleField(t *testing.T) {
	fields := []BitFrameField{
		{
			Name:  "value",
			Begin: 0,
			Width: 8,
		},
	}

	assert.Equal(t, ""+
		`7            0
+------------+
|   value    |
+------------+
 <- 8 bits ->
`,
		BitFrame(fields, 8, 0))
}

func TestBitFrame_SignAndValueFields(t *testing.T) {
	fields := []BitFrameField{
		{
			Name:  "value",
			Begin: 0,
			Width: 15,
		},
		{
			Name:  "s",
			Begin: 15,
			Width: 1,
		},
	}

	assert.Equal(t, ""+
		`15           14            0
+------------+-------------+
|     s      |    value    |
+------------+-------------+
 <- 1 bits -> <- 15 bits ->
`,
		BitFrame(fields, 16, 0))
}

func TestBitFrame_GapsAreDrawnAsUnused(t *testing.T) {
	fields := []BitFrameField{
		{
			Name:  "value",
			Begin: 0,
			Width: 8,
		},
	}

	actual := BitFrame(fields, 16, 0)

	assert.Contains(t, actual, "(unused)")
	assert.Contains(t, actual, "value")
}

func TestBitFrame_Leftpad(t *testing.T) {
	fields := []BitFrameField{
		{
			Name:  "value",
			Begin: 0,
			Width: 8,
		},
	}

	assert.Equal(t, ""+
		"  "+`7            0
  +------------+
  |   value    |
  +------------+
   <- 8 bits ->
`,
		BitFrame(fields, 8, 2))
}

func TestBitFrame_UnsortedFieldsPanic(t *testing.T) {
	fields := []BitFrameField{
		{
			Name:  "high",
			Begin: 8,
			Width: 8,
		},
		{
			Name:  "low",
			Begin: 0,
			Width: 8,
		},
	}

	assert.Panics(t, func() {
		BitFrame(fields, 16, 0)
	})
}
