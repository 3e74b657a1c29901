package lldb

import (
	"context"

	"github.com/pkg/errors"
	"github.com/solo-io/dbt/pkg/debuggers"
)

// LldbInterface is a placeholder: none of the lldb command mappings exist yet,
// so every capability reports debuggers.ErrUnsupported.
type LldbInterface struct{}

func (l *LldbInterface) Kind() debuggers.Kind { return debuggers.Lldb }

func (l *LldbInterface) Prelude() ([]string, error) {
	return nil, unsupported("prelude")
}

func (l *LldbInterface) Breakpoint(file string, line int) (string, error) {
	return "", unsupported("breakpoints")
}

func (l *LldbInterface) Marker(marker string, id uint32) (string, error) {
	return "", unsupported("correlation markers")
}

func (l *LldbInterface) Run(ctx context.Context, command, scriptPath, debuggee string) (*debuggers.Output, error) {
	return nil, unsupported("running scripts")
}

func unsupported(what string) error {
	return errors.Wrapf(debuggers.ErrUnsupported, "lldb %s", what)
}
