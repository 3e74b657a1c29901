package dbtctl

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/solo-io/dbt/pkg/dbt"
	"github.com/solo-io/dbt/pkg/debuggers"
	"github.com/spf13/cobra"
)

// ScriptCmd prints the script a debugger would be run with, without running it.
func ScriptCmd(o *Options) *cobra.Command {
	var kindName string
	scriptCmd := &cobra.Command{
		Use:   "script TEST",
		Short: "prints the debugger script generated for a test",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := debuggers.ParseKind(kindName)
			if err != nil {
				return err
			}
			return o.printScript(cmd.OutOrStdout(), kind, args[0])
		},
	}
	scriptCmd.Flags().StringVar(&kindName, "kind", debuggers.Gdb.String(), "debugger kind to generate the script for: gdb, cdb, lldb or mock")
	return scriptCmd
}

func (o *Options) printScript(w io.Writer, kind debuggers.Kind, path string) error {
	defs, err := o.discoverTests([]string{path})
	if err != nil {
		return err
	}

	d, err := dbt.NewDebugger(kind, "", kind.String(), dbt.ParsePreludes(o.Dbt.Preludes)[kind])
	if err != nil {
		return err
	}
	for _, def := range defs {
		text, warnings, err := dbt.GenerateScript(d, def)
		if err != nil {
			return errors.Wrapf(err, "generating script for %s", def.Name)
		}
		for _, warning := range warnings {
			log.WithField("test", def.Name).Warn(warning.String())
		}
		if len(defs) > 1 {
			fmt.Fprintf(w, "# %s\n", def.Name)
		}
		if _, err := io.WriteString(w, text); err != nil {
			return err
		}
	}
	return nil
}
