package gcode

import (
	"strconv"
	"strings"
	"unicode"
)

// FormatLinear builds a G1 command moving from start to end. In absolute
// mode the end coordinates are emitted, otherwise the difference from
// start. Unset end axes are omitted entirely. Values are formatted with a
// fixed number of decimal digits.
func FormatLinear(start, end Point3, absolute bool, precision int) string {
	var sb strings.Builder
	sb.WriteString("G1")

	appendAxis := func(letter byte, from, to Axis) {
		if !to.Valid {
			return
		}
		value := to.Value
		if !absolute {
			value -= from.Value
		}
		sb.WriteByte(letter)
		sb.WriteString(strconv.FormatFloat(value, 'f', precision, 64))
	}

	appendAxis('X', start.X, end.X)
	appendAxis('Y', start.Y, end.Y)
	appendAxis('Z', start.Z, end.Z)

	return sb.String()
}

// OverrideSpeed rewrites the first feed rate word of a command to the given
// percentage of its original value, so that all feed rates become a ratio
// of the programmed speed. Commands without a feed rate are returned
// unchanged.
func OverrideSpeed(command string, percent float64) string {
	for i := 0; i < len(command); i++ {
		if command[i] != 'F' && command[i] != 'f' {
			continue
		}
		j := i + 1
		for j < len(command) && (isDigit(command[j]) || command[j] == '.') {
			j++
		}
		if j == i+1 {
			continue
		}
		value, err := strconv.ParseFloat(command[i+1:j], 64)
		if err != nil {
			continue
		}
		return command[:i+1] + strconv.FormatFloat(value/100*percent, 'f', -1, 64) + command[j:]
	}
	return command
}

// TruncateDecimals rewrites every decimal numeral on the command to exactly
// the given number of fractional digits. Numbers without a decimal point
// are left alone.
func TruncateDecimals(digits int, command string) string {
	var sb strings.Builder
	for i := 0; i < len(command); {
		c := command[i]
		if !isDigit(c) && c != '.' {
			sb.WriteByte(c)
			i++
			continue
		}

		j := i
		decimal := false
		for j < len(command) && (isDigit(command[j]) || (command[j] == '.' && !decimal)) {
			if command[j] == '.' {
				decimal = true
			}
			j++
		}

		number := command[i:j]
		if decimal {
			if value, err := strconv.ParseFloat(number, 64); err == nil {
				number = strconv.FormatFloat(value, 'f', digits, 64)
			}
		}
		sb.WriteString(number)
		i = j
	}
	return sb.String()
}

// RemoveWhitespace removes every whitespace character from the command.
func RemoveWhitespace(command string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, command)
}
