package gcode

import (
	"strconv"
	"unicode"
)

// CodesWithAddress returns the value of every word whose letter matches the
// given address, in command order.
func CodesWithAddress(words []Word, address rune) []string {
	var values []string
	for _, w := range words {
		if w.HasAddress(address) {
			values = append(values, w.Value())
		}
	}
	return values
}

// GCodes returns the number of every G code on the command, in order.
// Leading zeros are stripped, so "G01" yields 1. The whole string is
// scanned, as one line may carry multiple codes.
func GCodes(command string) []int {
	return codes(command, 'G')
}

// MCodes returns the number of every M code on the command, in order, with
// the same semantics as GCodes.
func MCodes(command string) []int {
	return codes(command, 'M')
}

func codes(command string, address rune) []int {
	upper := byte(unicode.ToUpper(address))
	lower := byte(unicode.ToLower(address))
	var numbers []int
	for i := 0; i < len(command); i++ {
		if command[i] != upper && command[i] != lower {
			continue
		}
		j := i + 1
		for j < len(command) && isDigit(command[j]) {
			j++
		}
		if j == i+1 {
			continue
		}
		number, err := strconv.Atoi(command[i+1 : j])
		if err != nil {
			continue
		}
		numbers = append(numbers, number)
		i = j - 1
	}
	return numbers
}

// Coordinate returns the value of the first word matching the given axis
// address. When the same address appears more than once on a line the first
// occurrence wins and later ones are ignored. The unset Axis is returned
// when no word matches or the matching value does not parse as a number.
func Coordinate(words []Word, address rune) Axis {
	for _, w := range words {
		if !w.HasAddress(address) {
			continue
		}
		value, err := w.Float()
		if err != nil {
			return Axis{}
		}
		return NewAxis(value)
	}
	return Axis{}
}
