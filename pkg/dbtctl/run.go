package dbtctl

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/solo-io/dbt/pkg/dbt"
	"github.com/solo-io/dbt/pkg/report"
	"github.com/solo-io/dbt/pkg/testdef"
	"github.com/spf13/cobra"
)

const runLong = `Run the debugger tests found in the given files and directories.

Directories are searched recursively for files with one of the --ext extensions.
Every test is run against every --debugger. Tests run against the program at
--debuggee, or, when that is not set, against the test's path without extension
(foo/bar.rs runs against foo/bar).

Exits non zero when a test failed, errored or could not be run.`

func RunCmd(o *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "run TESTS...",
		Short: "run debugger tests against every configured debugger",
		Long:  runLong,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.runTests(cmd.OutOrStdout(), args)
		},
	}
}

func (o *Options) runTests(w io.Writer, paths []string) error {
	if err := report.CheckFormat(o.Dbt.Output); err != nil {
		return err
	}

	defs, err := o.discoverTests(paths)
	if err != nil {
		return err
	}
	if len(defs) == 0 {
		return errors.Errorf("no tests found in %s", strings.Join(paths, ", "))
	}

	dbgs, err := o.probe.InitDebuggers(o.ctx, o.Dbt.Debuggers, o.Dbt.Preludes)
	if err != nil {
		return errors.Wrap(err, "setting up debuggers")
	}

	jobs := make([]dbt.Job, 0, len(defs))
	for _, def := range defs {
		jobs = append(jobs, dbt.Job{Definition: def, Debuggee: o.debuggeeFor(def)})
	}

	runner := &dbt.Runner{
		Jobs:    o.Dbt.Jobs,
		Timeout: o.Dbt.Timeout(),
		WorkDir: o.Dbt.WorkDir,
	}
	log.WithFields(log.Fields{"tests": len(jobs), "debuggers": len(dbgs)}).Info("running tests")
	results, errs, err := runner.Run(o.ctx, dbgs, jobs)
	if err != nil {
		return err
	}

	if err := report.Write(w, o.Dbt.Output, results, errs); err != nil {
		return errors.Wrap(err, "writing report")
	}
	if summary := report.Summarize(results, errs); !summary.OK() {
		return errors.New(summary.String())
	}
	return nil
}

func (o *Options) discoverTests(paths []string) ([]*testdef.Definition, error) {
	var defs []*testdef.Definition
	for _, p := range paths {
		found, err := testdef.Discover(p, o.Dbt.Extensions)
		if err != nil {
			return nil, errors.Wrapf(err, "loading tests from %s", p)
		}
		defs = append(defs, found...)
	}
	return defs, nil
}

func (o *Options) debuggeeFor(def *testdef.Definition) string {
	if o.Dbt.Debuggee != "" {
		return o.Dbt.Debuggee
	}
	return strings.TrimSuffix(def.Path, filepath.Ext(def.Path))
}
