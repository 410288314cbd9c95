package ecudump

import (
	"regexp"
)

const (
	SectionStart = "=== CRDT State Dump ==="
	SectionEnd   = "=== End CRDT State Dump ==="
)

var sectionPattern = regexp.MustCompile(`(?s)` + regexp.QuoteMeta(SectionStart) + `(.*?)` + regexp.QuoteMeta(SectionEnd))

// FindSection returns the text strictly between the first start marker and
// the first end marker after it.
func FindSection(text string) (string, bool) {
	m := sectionPattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}
