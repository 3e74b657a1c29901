package dbt

import (
	"fmt"
	"strings"

	"github.com/solo-io/dbt/pkg/debuggers"
	"github.com/solo-io/dbt/pkg/script"
)

// spanMatch walks the output lines of one span against its checks.
// Checks must be satisfied in order; lines that match nothing are skipped.
type spanMatch struct {
	checks []script.Statement
	pos    int
	block  *unorderedMatch
}

func matchSpan(checks []script.Statement, lines []string) *spanMatch {
	m := &spanMatch{checks: checks}
	for _, line := range lines {
		if m.done() {
			break
		}
		m.offer(line)
	}
	return m
}

func (m *spanMatch) done() bool {
	return m.pos == len(m.checks)
}

func (m *spanMatch) offer(line string) {
	switch c := m.checks[m.pos].(type) {
	case *script.Check:
		if c.Pattern.Matches(line) {
			m.pos++
		}
	case *script.CheckUnorderedBlock:
		if m.block == nil {
			m.block = newUnorderedMatch(c.Patterns)
		}
		m.block.offer(line)
		if m.block.complete() {
			m.pos++
			m.block = nil
		}
	default:
		panic(fmt.Sprintf("not a check statement: %v", c))
	}
}

// expected describes the first check that is not satisfied.
func (m *spanMatch) expected() string {
	switch c := m.checks[m.pos].(type) {
	case *script.Check:
		return c.Pattern.Source
	case *script.CheckUnorderedBlock:
		block := m.block
		if block == nil {
			block = newUnorderedMatch(c.Patterns)
		}
		return strings.Join(block.missing(), "', '")
	default:
		return c.String()
	}
}

// unorderedMatch assigns output lines to the patterns of a #check-unordered block.
// Each line satisfies at most one pattern. A new line may take over a pattern from an
// earlier line if that earlier line can move to another pattern, so the outcome does
// not depend on the order the patterns are written in.
type unorderedMatch struct {
	patterns []script.CheckPattern
	// owner[p] is the index into lines that satisfies pattern p, or -1
	owner   []int
	lines   []string
	matched int
}

func newUnorderedMatch(patterns []script.CheckPattern) *unorderedMatch {
	owner := make([]int, len(patterns))
	for i := range owner {
		owner[i] = -1
	}
	return &unorderedMatch{patterns: patterns, owner: owner}
}

func (u *unorderedMatch) offer(line string) {
	u.lines = append(u.lines, line)
	if u.assign(len(u.lines)-1, make([]bool, len(u.patterns))) {
		u.matched++
	}
}

func (u *unorderedMatch) assign(l int, visited []bool) bool {
	for p, pattern := range u.patterns {
		if visited[p] || !pattern.Matches(u.lines[l]) {
			continue
		}
		visited[p] = true
		if u.owner[p] < 0 || u.assign(u.owner[p], visited) {
			u.owner[p] = l
			return true
		}
	}
	return false
}

func (u *unorderedMatch) complete() bool {
	return u.matched == len(u.patterns)
}

func (u *unorderedMatch) missing() []string {
	var res []string
	for p, pattern := range u.patterns {
		if u.owner[p] < 0 {
			res = append(res, pattern.Source)
		}
	}
	return res
}

func mismatchMessage(expected string, lines []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Could not find '%s' in debugger output. Expected to find it "+
		"within the following lines:\n\n", expected)
	for _, line := range lines {
		if strings.Contains(line, debuggers.BeginMarker) || strings.Contains(line, debuggers.EndMarker) {
			continue
		}
		fmt.Fprintf(&b, "> %s\n", line)
	}
	return b.String()
}
