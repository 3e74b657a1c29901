package gdb

import (
	"context"
	"fmt"

	"github.com/solo-io/dbt/pkg/debuggers"
)

type GdbInterface struct{}

func (g *GdbInterface) Kind() debuggers.Kind { return debuggers.Gdb }

func (g *GdbInterface) Prelude() ([]string, error) {
	return nil, nil
}

func (g *GdbInterface) Breakpoint(file string, line int) (string, error) {
	return fmt.Sprintf("break '%s:%d'", file, line), nil
}

func (g *GdbInterface) Marker(marker string, id uint32) (string, error) {
	return fmt.Sprintf("python print('%s%d')", marker, id), nil
}

func (g *GdbInterface) Run(ctx context.Context, command, scriptPath, debuggee string) (*debuggers.Output, error) {
	return debuggers.Exec(ctx, command,
		"--batch",
		"--quiet",
		"--command", scriptPath,
		debuggee,
	)
}
