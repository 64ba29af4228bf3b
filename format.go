package uz

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// formatBinary renders raw as 0b followed by exactly width binary digits.
func formatBinary(raw uint64, width int) string {
	return "0b" + pad(strconv.FormatUint(raw, 2), width)
}

// formatHex renders raw as 0x followed by at least digits hex digits.
func formatHex(raw uint64, digits int) string {
	return "0x" + pad(strconv.FormatUint(raw, 16), digits)
}

func formatDecimal(raw uint64) string {
	return strconv.FormatUint(raw, 10)
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

// formatValue implements fmt.Formatter for every generated type.
// %#v prints the debug rendering; %v and %s print decimal; every other
// verb is handed to the backing integer's own formatter with the
// caller's flags, width and precision intact.
func formatValue[B Unsigned](f fmt.State, verb rune, raw B, debug func() string) {
	switch {
	case verb == 'v' && f.Flag('#'):
		io.WriteString(f, debug())
	case verb == 'v' || verb == 's':
		// The + of %+v asks for field names, not a sign.
		fmt.Fprintf(f, strings.Replace(fmt.FormatString(f, 'd'), "+", "", 1), raw)
	default:
		fmt.Fprintf(f, fmt.FormatString(f, verb), raw)
	}
}
