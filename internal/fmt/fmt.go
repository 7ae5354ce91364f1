package fmt

import (
	"fmt"
	"strings"
)

// SprintFloat formats a float with up to the given number of decimal
// digits, trimming trailing zeros and a trailing point. Meant for display,
// not for G-code output, which requires fixed precision.
func SprintFloat(value float64, decimal uint) string {
	if decimal == 0 {
		return fmt.Sprintf("%.0f", value)
	}
	floatStr := fmt.Sprintf(fmt.Sprintf("%%.%df", decimal), value)
	return strings.TrimRight(strings.TrimRight(floatStr, "0"), ".")
}
