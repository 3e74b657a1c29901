package dbt

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/solo-io/dbt/pkg/debuggers"
	"github.com/solo-io/dbt/pkg/script"
	"github.com/solo-io/dbt/pkg/testdef"
)

type scriptWriter struct {
	strings.Builder
}

func (w *scriptWriter) line(s string) {
	w.WriteString(s)
	w.WriteByte('\n')
}

// GenerateScript produces the debugger script for def: prelude, breakpoints, then the
// applicable commands wrapped in correlation markers.
func GenerateScript(d *Debugger, def *testdef.Definition) (string, []Warning, error) {
	var w scriptWriter

	if err := d.emitPrelude(&w); err != nil {
		return "", nil, err
	}
	if err := d.emitBreakpoints(def, &w); err != nil {
		return "", nil, err
	}

	s := def.Script.Clone()
	warnings := AssignCorrelationIDs(s, d.evalContext)

	var (
		last *script.CorrelationID
		err  error
	)
	s.WalkApplicableLeaves(d.evalContext, func(stmt script.Statement) bool {
		exec, ok := stmt.(*script.Exec)
		if !ok {
			return true
		}
		if !sameID(last, exec.ID) {
			if err = d.emitMarker(&w, debuggers.EndMarker, last); err != nil {
				return false
			}
			if err = d.emitMarker(&w, debuggers.BeginMarker, exec.ID); err != nil {
				return false
			}
			last = exec.ID
		}
		w.line(exec.Command)
		return true
	})
	if err != nil {
		return "", nil, err
	}

	if err := d.emitMarker(&w, debuggers.EndMarker, last); err != nil {
		return "", nil, err
	}

	return w.String(), warnings, nil
}

func sameID(a, b *script.CorrelationID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func (d *Debugger) emitPrelude(w *scriptWriter) error {
	lines, err := d.backend.Prelude()
	if err != nil {
		return errors.Wrapf(err, "%v prelude", d.Kind)
	}
	for _, l := range lines {
		w.line(l)
	}
	for _, l := range d.prelude {
		w.line(l)
	}
	return nil
}

func (d *Debugger) emitBreakpoints(def *testdef.Definition, w *scriptWriter) error {
	for _, bp := range def.Breakpoints {
		l, err := d.backend.Breakpoint(def.FileName(), bp.LineIndex+1)
		if err != nil {
			return errors.Wrapf(err, "%v breakpoint", d.Kind)
		}
		w.line(l)
	}
	return nil
}

// emitMarker does nothing for a nil id, i.e. when no span is open.
func (d *Debugger) emitMarker(w *scriptWriter, marker string, id *script.CorrelationID) error {
	if id == nil {
		return nil
	}
	l, err := d.marker(marker, *id)
	if err != nil {
		return err
	}
	w.line(l)
	return nil
}
