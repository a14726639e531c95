// Package jsonc handles the JSON-superset dialect used by editor default
// settings files: strict JSON extended with // line comments and trailing
// commas.
package jsonc

import (
	"regexp"
	"strings"
)

// trailingComma matches a comma that directly precedes a closing bracket or
// brace, possibly across whitespace and newlines.
var trailingComma = regexp.MustCompile(`,(\s*[}\]])`)

// StripComments converts dialect text to strict JSON by dropping // line
// comments and trailing commas.
//
// The filter is line-based, not a tokenizer. A line containing // is kept
// whole when it also contains http:// or https://, so URLs in string values
// survive; a // inside any other string literal still truncates the line.
// That limitation is deliberate and matches the source format this tool
// targets.
func StripComments(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if !strings.Contains(line, "//") {
			continue
		}
		if strings.Contains(line, "http://") || strings.Contains(line, "https://") {
			continue
		}
		lines[i] = line[:strings.Index(line, "//")]
	}
	return trailingComma.ReplaceAllString(strings.Join(lines, "\n"), "${1}")
}

// Decode strips comments and trailing commas, then parses the result.
func Decode(text string) (Value, error) {
	return Parse(StripComments(text))
}
