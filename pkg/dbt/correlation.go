package dbt

import (
	log "github.com/sirupsen/logrus"
	"github.com/solo-io/dbt/pkg/script"
)

// Warning is a non-fatal finding about a script, e.g. a check that can never see output.
type Warning struct {
	Statement string `json:"statement" yaml:"statement"`
	Msg       string `json:"msg" yaml:"msg"`
}

func (w Warning) String() string {
	return w.Statement + ": " + w.Msg
}

// AssignCorrelationIDs fills the id slot of every applicable leaf of s.
//
// A command gets a fresh id unless the previous command's id has not been checked yet,
// in which case it shares that id. A check takes the id of the most recent command.
// A check with no command before it has nothing to look at; it is reported as a
// warning and its slot stays empty.
//
// s must be a private clone: the walk writes into its slots.
func AssignCorrelationIDs(s *script.Script, ctx script.EvaluationContext) []Warning {
	var (
		warnings    []Warning
		checked     = make(map[script.CorrelationID]bool)
		next        script.CorrelationID
		lastEmitted *script.CorrelationID
	)

	s.WalkApplicableLeaves(ctx, func(stmt script.Statement) bool {
		switch stmt := stmt.(type) {
		case *script.Exec:
			if stmt.ID != nil {
				panic("correlation id assigned twice; scripts must be cloned before assignment")
			}
			id := next
			if lastEmitted != nil && !checked[*lastEmitted] {
				id = *lastEmitted
			} else {
				next++
			}
			stmt.ID = &id
			lastEmitted = &id
		case *script.Check:
			stmt.ID = checkID(stmt, lastEmitted, next, checked, &warnings)
		case *script.CheckUnorderedBlock:
			stmt.ID = checkID(stmt, lastEmitted, next, checked, &warnings)
		}
		return true
	})

	return warnings
}

func checkID(stmt script.Statement, lastEmitted *script.CorrelationID, next script.CorrelationID,
	checked map[script.CorrelationID]bool, warnings *[]Warning) *script.CorrelationID {
	if lastEmitted == nil {
		log.WithField("statement", stmt.String()).Warn("check has no output to check")
		*warnings = append(*warnings, Warning{Statement: stmt.String(), Msg: "has no output to check"})
		return nil
	}
	if *lastEmitted != next-1 {
		panic("correlation ids out of order")
	}
	id := *lastEmitted
	checked[id] = true
	return &id
}
