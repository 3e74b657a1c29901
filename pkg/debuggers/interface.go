package debuggers

import (
	"context"
	"errors"
)

// ErrUnsupported is returned by backends for capabilities that have no command mapping yet.
var ErrUnsupported = errors.New("not supported by this debugger")

/// Backend interface. implement this to add support for a new debugger to dbt.
/// Every method that emits script text returns a single line without the trailing newline.
type Backend interface {
	Kind() Kind

	/// Lines written to the top of every script, before user supplied prelude commands.
	Prelude() ([]string, error)

	/// Command that sets a breakpoint at file:line. file is a base name, line is 1-based.
	Breakpoint(file string, line int) (string, error)

	/// Command that makes the debugger print marker immediately followed by id.
	/// The printed text must contain marker and the decimal id unbroken.
	Marker(marker string, id uint32) (string, error)

	/// Run the debugger non-interactively with the script against debuggee.
	/// A non-zero exit code is reported through Output, not as an error.
	Run(ctx context.Context, command, scriptPath, debuggee string) (*Output, error)
}
