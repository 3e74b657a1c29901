// Package mock is a debugger backend that never starts a process.
// Running it returns the script itself as stdout, which makes the
// synthesize/partition/match pipeline testable without a real debugger.
package mock

import (
	"context"
	"fmt"
	"io/ioutil"

	"github.com/pkg/errors"
	"github.com/solo-io/dbt/pkg/debuggers"
)

// Command is the debugger command that selects this backend without probing.
const Command = "mockdbg"

type MockInterface struct{}

func (m *MockInterface) Kind() debuggers.Kind { return debuggers.Mock }

func (m *MockInterface) Prelude() ([]string, error) {
	return nil, nil
}

func (m *MockInterface) Breakpoint(file string, line int) (string, error) {
	return fmt.Sprintf("bp `%s:%d`", file, line), nil
}

func (m *MockInterface) Marker(marker string, id uint32) (string, error) {
	return fmt.Sprintf("%s%d", marker, id), nil
}

func (m *MockInterface) Run(ctx context.Context, command, scriptPath, debuggee string) (*debuggers.Output, error) {
	script, err := ioutil.ReadFile(scriptPath)
	if err != nil {
		return nil, errors.Wrap(err, "reading mock debugger script")
	}
	return &debuggers.Output{
		Stdout:     string(script),
		ExitStatus: debuggers.ExitSuccess,
	}, nil
}
