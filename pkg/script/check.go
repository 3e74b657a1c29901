package script

import "strings"

// Wildcard matches any run of characters inside a check pattern.
const Wildcard = "[...]"

// CheckPattern is the expectation of a #check line. It matches an output line that
// contains its literal parts in order, with anything in place of each wildcard.
type CheckPattern struct {
	Source string
	parts  []string
}

func NewCheckPattern(src string) CheckPattern {
	src = strings.TrimSpace(src)
	var parts []string
	for _, p := range strings.Split(src, Wildcard) {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return CheckPattern{Source: src, parts: parts}
}

func (p CheckPattern) Matches(line string) bool {
	rest := line
	for _, part := range p.parts {
		i := strings.Index(rest, part)
		if i < 0 {
			return false
		}
		rest = rest[i+len(part):]
	}
	return true
}
