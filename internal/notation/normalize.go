package notation

import "strings"

// Normalize prepares hand-written notation for the parser: CRLF and bare CR
// become LF, and every line is trimmed of surrounding spaces and tabs.
// Body lines are trimmed too, so callers with significant body whitespace
// should not use it.
func Normalize(input string) string {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	input = strings.ReplaceAll(input, "\r", "\n")

	lines := strings.Split(input, "\n")
	for i, line := range lines {
		lines[i] = strings.Trim(line, " \t")
	}
	return strings.Join(lines, "\n")
}
