// Package script holds the directive tree of a debugger test: commands to execute,
// checks against their output and the conditions that select them per debugger.
package script

import (
	"fmt"
	"strings"
)

// CorrelationID ties one or more commands to the span of output they produce.
type CorrelationID uint32

func (c CorrelationID) String() string {
	return fmt.Sprintf("#%d", uint32(c))
}

// EvaluationContext holds the values conditions are evaluated against,
// e.g. "debugger" and "version".
type EvaluationContext struct {
	Values map[string]interface{}
}

// Statement is one node of the tree. Leaves are *Exec, *Check and *CheckUnorderedBlock;
// *IfBlock and *IgnoreTest are structural.
type Statement interface {
	fmt.Stringer
	clone() Statement
}

type Exec struct {
	Command string
	ID      *CorrelationID
}

type Check struct {
	Pattern CheckPattern
	ID      *CorrelationID
}

type CheckUnorderedBlock struct {
	Patterns []CheckPattern
	ID       *CorrelationID
}

type IfBlock struct {
	Condition *Condition
	Body      []Statement
	Else      []Statement
}

// IgnoreTest marks the whole test as not applicable. A nil Condition always applies.
type IgnoreTest struct {
	Condition *Condition
}

func (s *Exec) String() string  { return s.Command }
func (s *Check) String() string { return "#check " + s.Pattern.Source }
func (s *CheckUnorderedBlock) String() string {
	srcs := make([]string, len(s.Patterns))
	for i, p := range s.Patterns {
		srcs[i] = p.Source
	}
	return "#check-unordered [" + strings.Join(srcs, ", ") + "]"
}
func (s *IfBlock) String() string { return "#if " + s.Condition.Source }
func (s *IgnoreTest) String() string {
	if s.Condition == nil {
		return "#ignore-test"
	}
	return "#ignore-test " + s.Condition.Source
}

func (s *Exec) clone() Statement {
	return &Exec{Command: s.Command, ID: cloneID(s.ID)}
}

func (s *Check) clone() Statement {
	return &Check{Pattern: s.Pattern, ID: cloneID(s.ID)}
}

func (s *CheckUnorderedBlock) clone() Statement {
	patterns := make([]CheckPattern, len(s.Patterns))
	copy(patterns, s.Patterns)
	return &CheckUnorderedBlock{Patterns: patterns, ID: cloneID(s.ID)}
}

func (s *IfBlock) clone() Statement {
	return &IfBlock{Condition: s.Condition, Body: cloneAll(s.Body), Else: cloneAll(s.Else)}
}

func (s *IgnoreTest) clone() Statement {
	return &IgnoreTest{Condition: s.Condition}
}

func cloneID(id *CorrelationID) *CorrelationID {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}

func cloneAll(stmts []Statement) []Statement {
	if stmts == nil {
		return nil
	}
	res := make([]Statement, len(stmts))
	for i, s := range stmts {
		res[i] = s.clone()
	}
	return res
}

// Script is the root of a directive tree.
type Script struct {
	Statements []Statement
}

// Clone returns a deep copy. Correlation id slots of the copy are independent of the original,
// so a copy can be annotated without affecting other users of the same script.
// Compiled conditions are immutable and shared.
func (s *Script) Clone() *Script {
	return &Script{Statements: cloneAll(s.Statements)}
}

// WalkApplicableLeaves calls visit for every leaf whose enclosing conditions hold in ctx,
// in document order. Leaves are passed as pointers so visit may fill their ID slots.
// The walk stops as soon as visit returns false.
func (s *Script) WalkApplicableLeaves(ctx EvaluationContext, visit func(Statement) bool) {
	walk(s.Statements, ctx, visit)
}

func walk(stmts []Statement, ctx EvaluationContext, visit func(Statement) bool) bool {
	for _, stmt := range stmts {
		switch stmt := stmt.(type) {
		case *IfBlock:
			branch := stmt.Else
			if stmt.Condition.Holds(ctx) {
				branch = stmt.Body
			}
			if !walk(branch, ctx, visit) {
				return false
			}
		case *IgnoreTest:
		default:
			if !visit(stmt) {
				return false
			}
		}
	}
	return true
}

// IgnoreTest reports whether an applicable #ignore-test directive is present.
func (s *Script) IgnoreTest(ctx EvaluationContext) bool {
	return ignored(s.Statements, ctx)
}

func ignored(stmts []Statement, ctx EvaluationContext) bool {
	for _, stmt := range stmts {
		switch stmt := stmt.(type) {
		case *IfBlock:
			branch := stmt.Else
			if stmt.Condition.Holds(ctx) {
				branch = stmt.Body
			}
			if ignored(branch, ctx) {
				return true
			}
		case *IgnoreTest:
			if stmt.Condition == nil || stmt.Condition.Holds(ctx) {
				return true
			}
		}
	}
	return false
}
