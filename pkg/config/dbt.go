package config

import "time"

// Dbt holds the settings of a test run. Values come from flags, the config file and defaults.
type Dbt struct {
	// Debugger commands to probe, e.g. "gdb", "/opt/cdb/cdb.exe" or "mockdbg"
	Debuggers []string
	// Prelude commands in the form "<debugger kind>:<command>"
	Preludes []string

	Jobs           int
	TimeoutSeconds int
	WorkDir        string

	// Extensions of test sources picked up when a directory is given
	Extensions []string
	// Debuggee overrides the program every test runs against.
	// When empty, a test runs against its source path without extension.
	Debuggee string

	Output  string
	Verbose bool
}

func (c *Dbt) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
