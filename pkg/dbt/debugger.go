// Package dbt runs debugger test scripts and verifies the debugger's output.
//
// One test run against one debugger goes through
//
//	GenerateScript -> Backend.Run -> Partition -> ProcessOutput
//
// and ends in a Passed, Failed or Errored result. Correlation ids link script commands
// to the spans of output they produce; they are assigned by the same deterministic walk
// when the script is generated and when its output is verified.
package dbt

import (
	"fmt"

	goversion "github.com/hashicorp/go-version"
	"github.com/pkg/errors"
	"github.com/solo-io/dbt/pkg/debuggers"
	"github.com/solo-io/dbt/pkg/debuggers/cdb"
	"github.com/solo-io/dbt/pkg/debuggers/gdb"
	"github.com/solo-io/dbt/pkg/debuggers/lldb"
	"github.com/solo-io/dbt/pkg/debuggers/mock"
	"github.com/solo-io/dbt/pkg/script"
	"github.com/solo-io/dbt/pkg/testdef"
)

// GetParticularBackend returns the backend implementation for kind.
func GetParticularBackend(kind debuggers.Kind) (debuggers.Backend, error) {
	switch kind {
	case debuggers.Gdb:
		return &gdb.GdbInterface{}, nil
	case debuggers.Cdb:
		return &cdb.CdbInterface{}, nil
	case debuggers.Lldb:
		return &lldb.LldbInterface{}, nil
	case debuggers.Mock:
		return &mock.MockInterface{}, nil
	default:
		return nil, fmt.Errorf("no backend for debugger kind %v", kind)
	}
}

// Debugger is one configured debugger executable. It is read-only after construction
// and safe to share between concurrent test runs.
type Debugger struct {
	Kind    debuggers.Kind
	Version string
	Command string

	backend     debuggers.Backend
	evalContext script.EvaluationContext
	prelude     []string
}

func NewDebugger(kind debuggers.Kind, version, command string, prelude []string) (*Debugger, error) {
	backend, err := GetParticularBackend(kind)
	if err != nil {
		return nil, err
	}

	values := map[string]interface{}{
		"debugger": kind.String(),
		"version":  version,
	}
	for _, k := range debuggers.AllKinds {
		values[k.String()] = k == kind
	}
	// version stays a string; major and minor compare as numbers
	if v, err := goversion.NewVersion(version); err == nil {
		if segments := v.Segments(); len(segments) >= 2 {
			values["major"] = segments[0]
			values["minor"] = segments[1]
		}
	}

	return &Debugger{
		Kind:        kind,
		Version:     version,
		Command:     command,
		backend:     backend,
		evalContext: script.EvaluationContext{Values: values},
		prelude:     append([]string(nil), prelude...),
	}, nil
}

// Mock returns a debugger that echoes its script back instead of running a process.
func Mock() *Debugger {
	d, err := NewDebugger(debuggers.Mock, "1.0", mock.Command, nil)
	if err != nil {
		panic(err)
	}
	return d
}

func (d *Debugger) String() string {
	return fmt.Sprintf("%v - %s (%s)", d.Kind, d.Version, d.Command)
}

func (d *Debugger) Backend() debuggers.Backend {
	return d.backend
}

func (d *Debugger) EvaluationContext() script.EvaluationContext {
	return d.evalContext
}

func (d *Debugger) Prelude() []string {
	return d.prelude
}

// IgnoreTest reports whether def does not apply to this debugger.
func (d *Debugger) IgnoreTest(def *testdef.Definition) bool {
	return def.Script.IgnoreTest(d.evalContext)
}

func (d *Debugger) marker(marker string, id script.CorrelationID) (string, error) {
	line, err := d.backend.Marker(marker, uint32(id))
	return line, errors.Wrapf(err, "%v correlation marker", d.Kind)
}
