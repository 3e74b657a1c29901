package dbt

import (
	"fmt"
	"sort"

	log "github.com/sirupsen/logrus"
	"github.com/solo-io/dbt/pkg/debuggers"
	"github.com/solo-io/dbt/pkg/script"
	"github.com/solo-io/dbt/pkg/testdef"
)

// ProcessOutput checks the debugger's output against the checks of def.
// Malformed output yields Errored, output that does not satisfy a check yields Failed.
func ProcessOutput(d *Debugger, def *testdef.Definition, out *debuggers.Output) *Result {
	s := def.Script.Clone()
	result := NewResult(def, d, Passed)
	result.Warnings = AssignCorrelationIDs(s, d.evalContext)

	checks := make(map[script.CorrelationID][]script.Statement)
	s.WalkApplicableLeaves(d.evalContext, func(stmt script.Statement) bool {
		var id *script.CorrelationID
		switch stmt := stmt.(type) {
		case *script.Check:
			id = stmt.ID
		case *script.CheckUnorderedBlock:
			id = stmt.ID
		}
		if id != nil {
			checks[*id] = append(checks[*id], stmt)
		}
		return true
	})

	spans, err := Partition(out.Stdout)
	if err != nil {
		log.WithFields(log.Fields{"test": def.Name, "debugger": d.String(), "err": err}).Warn("malformed debugger output")
		return result.errored(err.Error(), out)
	}

	ids := make([]script.CorrelationID, 0, len(checks))
	for id := range checks {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		lines, ok := spans[id]
		if !ok {
			return result.fail(fmt.Sprintf("check %s failed: the debugger printed no output for span %d",
				checks[id][0], id), out)
		}
		m := matchSpan(checks[id], lines)
		if !m.done() {
			return result.fail(mismatchMessage(m.expected(), lines), out)
		}
	}

	return result
}
