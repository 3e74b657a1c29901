package dbt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/solo-io/dbt/pkg/debuggers"
	"github.com/solo-io/dbt/pkg/script"
)

// MalformedOutputError means the debugger's output does not have properly nested
// correlation markers, so it can't be attributed to script commands.
type MalformedOutputError struct {
	// Line is 1-based, 0 if the problem is at the end of the output
	Line int
	Msg  string
}

func (e *MalformedOutputError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("malformed debugger output: %s", e.Msg)
	}
	return fmt.Sprintf("malformed debugger output at line %d: %s", e.Line, e.Msg)
}

// Partition splits stdout into the lines printed within each correlation span.
// Lines outside of any span (banners, prompts) are dropped.
func Partition(stdout string) (map[script.CorrelationID][]string, error) {
	result := make(map[script.CorrelationID][]string)

	var (
		current *script.CorrelationID
		lines   []string
	)
	for i, line := range splitLines(stdout) {
		lineno := i + 1
		switch {
		case strings.HasPrefix(line, debuggers.BeginMarker):
			if current != nil {
				return nil, &MalformedOutputError{Line: lineno,
					Msg: fmt.Sprintf("span opened while span %d is still open", *current)}
			}
			id, err := parseID(line, debuggers.BeginMarker)
			if err != nil {
				return nil, &MalformedOutputError{Line: lineno, Msg: err.Error()}
			}
			current = &id
			lines = nil
		case strings.HasPrefix(line, debuggers.EndMarker):
			if current == nil {
				return nil, &MalformedOutputError{Line: lineno, Msg: "span closed but none is open"}
			}
			id, err := parseID(line, debuggers.EndMarker)
			if err != nil {
				return nil, &MalformedOutputError{Line: lineno, Msg: err.Error()}
			}
			if id != *current {
				return nil, &MalformedOutputError{Line: lineno,
					Msg: fmt.Sprintf("span %d closed while span %d is open", id, *current)}
			}
			result[id] = append(result[id], lines...)
			current = nil
		case current != nil:
			lines = append(lines, line)
		}
	}

	if current != nil {
		return nil, &MalformedOutputError{Msg: fmt.Sprintf("span %d is never closed", *current)}
	}
	return result, nil
}

func parseID(line, marker string) (script.CorrelationID, error) {
	digits := strings.TrimSpace(strings.TrimPrefix(line, marker))
	id, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid correlation id %q", digits)
	}
	return script.CorrelationID(id), nil
}
