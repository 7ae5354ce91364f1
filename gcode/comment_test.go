package gcode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStripComments(t *testing.T) {
	testCases := []struct {
		command  string
		expected string
	}{
		{"G1 X1 (move right) Y2 ;comment", "G1 X1  Y2"},
		{"G1 X1 Y2", "G1 X1 Y2"},
		{"(full line comment)", ""},
		{";full line comment", ""},
		{"G1 (a) X1 (b) Y2", "G1  X1  Y2"},
		{"G1 X1 ; trailing", "G1 X1"},
		{"  G1 X1  ", "G1 X1"},
		{"G1 (unclosed X1", "G1 (unclosed X1"},
		{"G1 (a;b) X1", "G1  X1"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.command, func(t *testing.T) {
			require.Equal(t, tc.expected, StripComments(tc.command))
		})
	}
}

func TestComment(t *testing.T) {
	testCases := []struct {
		command  string
		expected string
	}{
		{"G1 X1 (move right) Y2 ;comment", "move right"},
		{"G1 X1 ;comment (not this)", "comment (not this)"},
		{"G1 X1 Y2", ""},
		{"(first)(second)", "first"},
		{";", ""},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.command, func(t *testing.T) {
			require.Equal(t, tc.expected, Comment(tc.command))
		})
	}
}
