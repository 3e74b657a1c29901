package dbt

import (
	"github.com/solo-io/dbt/pkg/debuggers"
	"github.com/solo-io/dbt/pkg/testdef"
)

type Status int

const (
	Passed Status = iota
	Failed
	Errored
	Ignored
)

func (s Status) String() string {
	switch s {
	case Passed:
		return "PASSED"
	case Failed:
		return "FAILED"
	case Errored:
		return "ERRORED"
	case Ignored:
		return "IGNORED"
	default:
		return "UNKNOWN"
	}
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Result is the verdict for one test run against one debugger.
// Failed and Errored results carry a message and the captured debugger output.
type Result struct {
	Test     string            `json:"test" yaml:"test"`
	Path     string            `json:"path" yaml:"path"`
	Debugger string            `json:"debugger" yaml:"debugger"`
	Kind     debuggers.Kind    `json:"-" yaml:"-"`
	Version  string            `json:"version" yaml:"version"`
	Status   Status            `json:"status" yaml:"status"`
	Message  string            `json:"message,omitempty" yaml:"message,omitempty"`
	Output   *debuggers.Output `json:"output,omitempty" yaml:"output,omitempty"`
	Warnings []Warning         `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

func NewResult(def *testdef.Definition, d *Debugger, status Status) *Result {
	return &Result{
		Test:     def.Name,
		Path:     def.Path,
		Debugger: d.Command,
		Kind:     d.Kind,
		Version:  d.Version,
		Status:   status,
	}
}

func (r *Result) fail(msg string, out *debuggers.Output) *Result {
	r.Status = Failed
	r.Message = msg
	r.Output = out
	return r
}

func (r *Result) errored(msg string, out *debuggers.Output) *Result {
	r.Status = Errored
	r.Message = msg
	r.Output = out
	return r
}
