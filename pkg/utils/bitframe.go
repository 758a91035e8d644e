package utils

import (
	"fmt"
	"strings"
)

type BitFrameField struct {
	// Name of the field
	Name string

	// First (least significant) bit of the field
	Begin int

	// Field width in bits
	Width int
}

// The last (most significant) bit used by this field
func (f *BitFrameField) TopBit() int {
	return f.PastTopBit() - 1
}

// The first bit past the end of this field
func (f *BitFrameField) PastTopBit() int {
	return f.Begin + f.Width
}

func centerText(text string, length int, filler string) string {
	if len(text) > length {
		panic(fmt.Errorf("text '%v' is %v chars long but target length is only %v chars", text, len(text), length))
	}

	leftpad := (length - len(text)) / 2
	rightpad := length - len(text) - leftpad

	return strings.Repeat(filler, leftpad) + text + strings.Repeat(filler, rightpad)
}

func fillBitFrameGaps(fields []BitFrameField, frameBits int) []BitFrameField {
	result := make([]BitFrameField, 0, len(fields))
	currentBit := 0

	for _, field := range fields {
		if field.Begin > currentBit {
			result = append(result, BitFrameField{
				Name:  "(unused)",
				Begin: currentBit,
				Width: field.Begin - currentBit,
			})
		} else if field.Begin < currentBit {
			panic("make sure fields are sorted by position and are not overlapping")
		}

		result = append(result, field)

		currentBit = field.PastTopBit()
	}

	if currentBit < frameBits {
		result = append(result, BitFrameField{
			Name:  "(unused)",
			Begin: currentBit,
			Width: frameBits - currentBit,
		})
	}

	return result
}

// Prints an ascii diagram of a fixed width binary representation composed of
// contiguous bit fields, with the least significant bit on the right.
// Fields must be sorted by position and must not overlap; bits not covered by
// any field are drawn as unused.
func BitFrame(fields []BitFrameField, frameBits int, leftpad int) string {
	const (
		bodySplitter   = "|"
		borderSplitter = "+"
		borderBody     = "-"
		arrowTipLeft   = "<-"
		arrowTipRight  = "->"
	)

	allFields := fillBitFrameGaps(fields, frameBits)
	leftpadStr := strings.Repeat(" ", leftpad)

	type cell struct {
		index string
		name  string
		width string
		size  int
	}

	cells := make([]cell, len(allFields))

	// Most significant field drawn first (leftmost)
	for i := range cells {
		field := &allFields[len(allFields)-i-1]

		cells[i].index = fmt.Sprint(field.TopBit())
		cells[i].name = field.Name
		cells[i].width = fmt.Sprintf(" %v bits ", field.Width)
		cells[i].size = max(
			len(cells[i].name)+2,
			len(cells[i].width)+len(arrowTipLeft)+len(arrowTipRight),
			len(cells[i].index))
	}

	var indicesRow strings.Builder
	var borderRow strings.Builder
	var bodyRow strings.Builder
	var widthsRow strings.Builder

	widthsRow.WriteString(" ")

	for _, c := range cells {
		indicesRow.WriteString(c.index)
		indicesRow.WriteString(strings.Repeat(" ", c.size+1-len(c.index)))
		borderRow.WriteString(borderSplitter)
		borderRow.WriteString(strings.Repeat(borderBody, c.size))
		bodyRow.WriteString(bodySplitter)
		bodyRow.WriteString(centerText(c.name, c.size, " "))
		widthsRow.WriteString(arrowTipLeft)
		widthsRow.WriteString(centerText(c.width, c.size-len(arrowTipLeft)-len(arrowTipRight), borderBody))
		widthsRow.WriteString(arrowTipRight)
		widthsRow.WriteString(" ")
	}

	indicesRow.WriteString("0")
	borderRow.WriteString(borderSplitter)
	bodyRow.WriteString(bodySplitter)

	var result strings.Builder

	for _, row := range []string{indicesRow.String(), borderRow.String(), bodyRow.String(), borderRow.String(), strings.TrimRight(widthsRow.String(), " ")} {
		result.WriteString(leftpadStr)
		result.WriteString(row)
		result.WriteString("\n")
	}

	return result.String()
}
