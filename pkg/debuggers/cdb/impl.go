package cdb

import (
	"context"
	"fmt"

	"github.com/solo-io/dbt/pkg/debuggers"
)

// CdbInterface drives the Windows console debugger.
type CdbInterface struct{}

func (c *CdbInterface) Kind() debuggers.Kind { return debuggers.Cdb }

func (c *CdbInterface) Prelude() ([]string, error) {
	// report source line numbers
	return []string{".lines -e"}, nil
}

func (c *CdbInterface) Breakpoint(file string, line int) (string, error) {
	return fmt.Sprintf("bp `%s:%d`", file, line), nil
}

func (c *CdbInterface) Marker(marker string, id uint32) (string, error) {
	return fmt.Sprintf(".echo %s%d", marker, id), nil
}

func (c *CdbInterface) Run(ctx context.Context, command, scriptPath, debuggee string) (*debuggers.Output, error) {
	return debuggers.Exec(ctx, command, "-cf", scriptPath, debuggee)
}
