package telemetry

import (
	"strings"
	"unicode/utf8"
)

// TextFeatures holds basic size features of a tool payload. Emitted with
// tool_exec events instead of the payload itself to avoid leaking content.
type TextFeatures struct {
	Bytes int
	Runes int
	Lines int
}

// Features computes byte, rune, and line counts for s.
// Line count is 0 for an empty string, otherwise 1 plus the newline count.
func Features(s string) TextFeatures {
	f := TextFeatures{
		Bytes: len(s),
		Runes: utf8.RuneCountInString(s),
	}
	if s != "" {
		f.Lines = 1 + strings.Count(s, "\n")
	}
	return f
}
