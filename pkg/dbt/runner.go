package dbt

import (
	"context"
	"fmt"
	"io/ioutil"
	"os"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/solo-io/dbt/pkg/testdef"
	"golang.org/x/sync/errgroup"
)

// RunTest generates the script for def, runs d on debuggee with it and checks the output.
// An error means the debugger could not be run at all; check outcomes are in the Result.
func RunTest(ctx context.Context, d *Debugger, def *testdef.Definition, debuggee, workDir string) (*Result, error) {
	logger := log.WithFields(log.Fields{"test": def.Name, "debugger": d.String()})

	if d.IgnoreTest(def) {
		logger.Info("test ignored")
		return NewResult(def, d, Ignored), nil
	}

	script, _, err := GenerateScript(d, def)
	if err != nil {
		return nil, errors.Wrapf(err, "generating script for %s", def.Name)
	}
	logger.WithField("script", script).Debug("generated debugger script")

	f, err := ioutil.TempFile(workDir, fmt.Sprintf("dbt-%v-*.script", d.Kind))
	if err != nil {
		return nil, errors.Wrap(err, "creating debugger script file")
	}
	defer os.Remove(f.Name())
	if _, err := f.WriteString(script); err != nil {
		f.Close()
		return nil, errors.Wrap(err, "writing debugger script file")
	}
	if err := f.Close(); err != nil {
		return nil, errors.Wrap(err, "writing debugger script file")
	}

	out, err := d.backend.Run(ctx, d.Command, f.Name(), debuggee)
	if err != nil {
		logger.WithField("err", err).Error("can't run debugger")
		return nil, errors.Wrapf(err, "running %s for %s", d.Command, def.Name)
	}
	if log.IsLevelEnabled(log.DebugLevel) {
		logger.WithField("output", spew.Sdump(out)).Debug("debugger finished")
	}

	result := ProcessOutput(d, def, out)
	logger.WithField("status", result.Status).Info("test finished")
	return result, nil
}

// Job is one test to run against every debugger.
type Job struct {
	Definition *testdef.Definition
	// Debuggee is the compiled program the debugger is started on.
	Debuggee string
}

// Runner runs every (debugger, job) pair independently.
type Runner struct {
	// Jobs limits the number of debuggers running at the same time; <= 0 means no limit.
	Jobs int
	// Timeout bounds a single debugger run; 0 means no timeout.
	Timeout time.Duration
	// WorkDir receives the generated scripts; empty means the system temp dir.
	WorkDir string
}

// RunError is a pair that could not be run.
type RunError struct {
	Test     string
	Debugger string
	Err      error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("%s with %s: %v", e.Test, e.Debugger, e.Err)
}

func (e *RunError) Cause() error { return e.Err }

// Run returns one entry per pair, ordered by job then debugger. Each entry holds either a
// result or the error that prevented running it; one failing pair does not stop the others.
// Only cancellation of ctx is returned as an error.
func (r *Runner) Run(ctx context.Context, dbgs []*Debugger, jobs []Job) ([]*Result, []error, error) {
	results := make([]*Result, len(dbgs)*len(jobs))
	errs := make([]error, len(results))

	g, ctx := errgroup.WithContext(ctx)
	if r.Jobs > 0 {
		g.SetLimit(r.Jobs)
	}

	for i, job := range jobs {
		for j, d := range dbgs {
			idx := i*len(dbgs) + j
			job, d := job, d
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				runCtx := ctx
				if r.Timeout > 0 {
					var cancel context.CancelFunc
					runCtx, cancel = context.WithTimeout(ctx, r.Timeout)
					defer cancel()
				}
				res, err := RunTest(runCtx, d, job.Definition, job.Debuggee, r.WorkDir)
				if err != nil {
					errs[idx] = &RunError{Test: job.Definition.Name, Debugger: d.String(), Err: err}
					return nil
				}
				results[idx] = res
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return results, errs, nil
}
