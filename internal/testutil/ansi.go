// Package testutil provides shared testing utilities used across the project.
package testutil

import "regexp"

// ansiRegex matches ANSI Control Sequence Introducer sequences, which start
// with ESC [ and end with a letter.
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// StripAnsiCodes removes ANSI escape codes from a string, so that tests can
// assert on console output without color codes interfering.
func StripAnsiCodes(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}
