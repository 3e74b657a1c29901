package dbtctl

import (
	"runtime"

	"github.com/solo-io/dbt/pkg/config"
	"github.com/solo-io/dbt/pkg/options"
	"github.com/spf13/pflag"
)

// config file key for each flag; a flag set on the command line wins over the file
var flagKeys = map[string]string{
	"debugger": "debuggers",
	"prelude":  "preludes",
	"jobs":     "jobs",
	"timeout":  "timeout_seconds",
	"work-dir": "work_dir",
	"ext":      "extensions",
	"debuggee": "debuggee",
	"output":   "output",
	"verbose":  "verbose",
}

func applyDbtFlags(cfg *config.Dbt, f *pflag.FlagSet) {
	f.StringSliceVar(&cfg.Debuggers, "debugger", options.DefaultDebuggers, "debugger command to test with, may be repeated")
	// commands may contain commas, so these are not split
	f.StringArrayVar(&cfg.Preludes, "prelude", nil, "command run before the breakpoints are set, as <debugger kind>:<command>")
	f.IntVarP(&cfg.Jobs, "jobs", "j", runtime.NumCPU(), "number of debuggers to run at the same time")
	f.IntVar(&cfg.TimeoutSeconds, "timeout", options.DefaultTimeoutSeconds, "timeout in seconds for a single debugger run, 0 to disable")
	f.StringVar(&cfg.WorkDir, "work-dir", "", "directory for generated debugger scripts (defaults to the system temp dir)")
	f.StringSliceVar(&cfg.Extensions, "ext", options.DefaultExtensions, "source file extensions to pick up when a directory is given")
	f.StringVar(&cfg.Debuggee, "debuggee", "", "program every test runs against (defaults to the test source path without extension)")
	f.StringVarP(&cfg.Output, "output", "o", options.DefaultOutput, "report format: text, json or yaml")
	f.BoolVarP(&cfg.Verbose, "verbose", "v", false, "log debug output")
}
