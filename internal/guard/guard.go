// Package guard rejects user input before it reaches any remote call.
// Moderation is deliberately a substring denylist; the Guard type is the
// seam to swap in a real classifier without touching callers.
package guard

import (
	"strings"
	"unicode/utf8"
)

// DefaultDenylist is the static set of disallowed-content keywords.
var DefaultDenylist = []string{
	"hack", "exploit", "malware", "virus", "illegal",
}

const DefaultMaxInputLength = 2000

type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

type Guard struct {
	maxLength int
	denylist  []string
}

func New(maxLength int, denylist []string) *Guard {
	if maxLength <= 0 {
		maxLength = DefaultMaxInputLength
	}
	if len(denylist) == 0 {
		denylist = DefaultDenylist
	}
	return &Guard{maxLength: maxLength, denylist: denylist}
}

// Validate checks the rules in order; the first failure wins. It is a pure
// function of the input and the configured limits.
func (g *Guard) Validate(text string) (bool, string) {
	if strings.TrimSpace(text) == "" {
		return false, "Please enter a message before sending."
	}
	if utf8.RuneCountInString(text) > g.maxLength {
		return false, "Your message is too long. Please keep it shorter."
	}
	lower := strings.ToLower(text)
	for _, keyword := range g.denylist {
		if strings.Contains(lower, keyword) {
			return false, "Please keep your questions educational and appropriate."
		}
	}
	return true, ""
}
