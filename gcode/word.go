package gcode

import (
	"strconv"
	"unicode"
)

// Word is a single address within a command line: one letter immediately
// followed by an optional numeric value, e.g. "X10.5", "G1" or a bare "T".
// Words only exist as the output of SplitCommand for one command.
type Word struct {
	letter rune
	value  string
}

// NewWord creates a Word from a letter and its raw value string.
func NewWord(letter rune, value string) Word {
	return Word{letter: letter, value: value}
}

func (w Word) Letter() rune {
	return w.letter
}

// Value returns the raw value string, without the letter. It is empty for a
// bare letter word.
func (w Word) Value() string {
	return w.value
}

// Float parses the word value as a float64.
func (w Word) Float() (float64, error) {
	return strconv.ParseFloat(w.value, 64)
}

// HasAddress returns true when the word letter matches the given address,
// ignoring case.
func (w Word) HasAddress(address rune) bool {
	return unicode.ToUpper(w.letter) == unicode.ToUpper(address)
}

func (w Word) String() string {
	return string(w.letter) + w.value
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// SplitCommand splits a command line into its words with a single
// left-to-right scan. A word is one letter followed by an unbroken run of
// digits and decimal points, with an optional minus sign right after the
// letter. A letter followed by no digits yields a bare letter word.
// Whitespace and any other characters separate words silently: this
// function never fails, malformed input gives a best effort word sequence.
func SplitCommand(command string) []Word {
	var words []Word
	for i := 0; i < len(command); {
		c := command[i]
		if !isLetter(c) {
			i++
			continue
		}
		j := i + 1
		if j < len(command) && command[j] == '-' {
			j++
		}
		for j < len(command) && (isDigit(command[j]) || command[j] == '.') {
			j++
		}
		value := command[i+1 : j]
		if value == "-" {
			// A minus with no digits is a separator, not a value.
			value = ""
			j = i + 1
		}
		words = append(words, Word{letter: rune(c), value: value})
		i = j
	}
	return words
}
