package dbtctl

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/solo-io/dbt/pkg/dbt"
	"github.com/spf13/cobra"
)

func DebuggersCmd(o *Options) *cobra.Command {
	debuggersCmd := &cobra.Command{
		Use:     "debuggers",
		Short:   "probes the configured debugger commands and lists what they are",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dbgs, err := o.probe.InitDebuggers(o.ctx, o.Dbt.Debuggers, o.Dbt.Preludes)
			if err != nil {
				return errors.Wrap(err, "setting up debuggers")
			}
			if o.Json {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(toListing(dbgs))
			}
			printDebuggers(cmd.OutOrStdout(), dbgs)
			return nil
		},
	}
	return debuggersCmd
}

type debuggerListing struct {
	Kind    string   `json:"kind"`
	Version string   `json:"version"`
	Command string   `json:"command"`
	Prelude []string `json:"prelude,omitempty"`
}

func toListing(dbgs []*dbt.Debugger) []debuggerListing {
	res := make([]debuggerListing, 0, len(dbgs))
	for _, d := range dbgs {
		res = append(res, debuggerListing{
			Kind:    d.Kind.String(),
			Version: d.Version,
			Command: d.Command,
			Prelude: d.Prelude(),
		})
	}
	return res
}

func printDebuggers(out io.Writer, dbgs []*dbt.Debugger) {
	table := []string{"Kind\tVersion\tCommand\tPrelude\n"}
	for _, d := range dbgs {
		table = append(table, fmt.Sprintf("%v\t%s\t%s\t%d commands\n", d.Kind, d.Version, d.Command, len(d.Prelude())))
	}

	w := tabwriter.NewWriter(out, 0, 0, 1, ' ', tabwriter.Debug)
	for _, r := range table {
		w.Write([]byte(r))
	}
	w.Flush()
}
