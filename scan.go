package inifile

import (
	"bufio"
	"bytes"
)

// eolChars terminate a line. ^Z is included for files written in DOS text
// mode.
const eolChars = "\n\r\x1a"

func isEOL(c byte) bool {
	return c == '\n' || c == '\r' || c == '\x1a'
}

// isWhite matches the blanks that may indent or trail a line.
func isWhite(c byte) bool {
	return c == ' ' || c == '\t' || c == '\f'
}

// isSpace matches C isspace, used when trimming names and values.
func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\v' || c == '\f' || c == '\r'
}

// scanLines is a bufio.SplitFunc that yields runs of bytes between line
// terminators. Consecutive terminators collapse, so no empty tokens are
// produced for blank lines.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) && isEOL(data[start]) {
		start++
	}
	if i := bytes.IndexAny(data[start:], eolChars); i >= 0 {
		return start + i + 1, data[start : start+i], nil
	}
	if atEOF && start < len(data) {
		return len(data), data[start:], nil
	}
	return start, nil, nil
}

// newLineScanner returns a scanner over the lines of data with trailing
// blanks still attached. The buffer is sized so no line is too long.
func newLineScanner(data []byte) *bufio.Scanner {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64), len(data)+1)
	scanner.Split(scanLines)
	return scanner
}

// equalFold reports whether a and b are equal, ignoring the case of ASCII
// letters only.
func equalFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if lower(a[i]) != lower(b[i]) {
			return false
		}
	}
	return true
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

func trimWhiteRight(line []byte) []byte {
	for len(line) > 0 && isWhite(line[len(line)-1]) {
		line = line[:len(line)-1]
	}
	return line
}

func trimSpaceRight(s string) string {
	for len(s) > 0 && isSpace(s[len(s)-1]) {
		s = s[:len(s)-1]
	}
	return s
}

func skipWhite(s string) string {
	for len(s) > 0 && isWhite(s[0]) {
		s = s[1:]
	}
	return s
}
