package gcode

import "strings"

// StripComments removes every parenthesized comment and everything from the
// first semicolon to the end of the line, then trims surrounding
// whitespace. Parentheses do not nest: each comment runs from a "(" to the
// next ")". An unclosed "(" is left in place.
func StripComments(command string) string {
	for {
		open := strings.IndexByte(command, '(')
		if open < 0 {
			break
		}
		length := strings.IndexByte(command[open:], ')')
		if length < 0 {
			break
		}
		command = command[:open] + command[open+length+1:]
	}
	if i := strings.IndexByte(command, ';'); i >= 0 {
		command = command[:i]
	}
	return strings.TrimSpace(command)
}

// Comment returns the inner text of the first comment on the command, in
// either the parenthesized or the semicolon form, without the delimiters.
// It returns an empty string when the command has no comment.
func Comment(command string) string {
	for i := 0; i < len(command); i++ {
		switch command[i] {
		case '(':
			rest := command[i+1:]
			if length := strings.IndexByte(rest, ')'); length >= 0 {
				return rest[:length]
			}
			return rest
		case ';':
			return command[i+1:]
		}
	}
	return ""
}
