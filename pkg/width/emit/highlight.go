package emit

import (
	"regexp"
	"strings"

	"github.com/fatih/color"
)

// Rendered expression colors
var (
	typeColor   = color.New(color.FgCyan)
	numberColor = color.New(color.FgYellow)
	punctColor  = color.New(color.FgWhite)
)

// Matches a type designator at the beginning of a rendered expression
var designatorPattern = regexp.MustCompile(`^[ui](?:8|16|32|64|128)`)

// Returns the rendered expression with terminal colors applied: type
// designators in cyan, values in yellow. Expressions that do not look like
// rendered output are returned untouched
func Highlight(expr string) string {
	designator := designatorPattern.FindString(expr)

	if designator == "" {
		return expr
	}

	rest := expr[len(designator):]

	if rest == "" {
		return typeColor.Sprint(designator)
	}

	if !strings.HasPrefix(rest, "(") || !strings.HasSuffix(rest, ")") {
		return expr
	}

	value := strings.TrimSuffix(strings.TrimPrefix(rest, "("), ")")

	return typeColor.Sprint(designator) + punctColor.Sprint("(") + numberColor.Sprint(value) + punctColor.Sprint(")")
}
