package dbtctl

import (
	"context"

	"github.com/solo-io/dbt/pkg/dbt"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

/*
Notes on CLI design

An options struct is populated by a combination of:
- user input args
- user input flags
- config file
- defaults

Flags set on the command line win over the config file, which wins over the flag defaults.
Sub commands should only read the options; the blending happens once in PersistentPreRun.
*/

const descriptionUsage = `dbt runs debugger tests.
A debugger test is a source file with breakpoints marked by #break comments and a
debugger script in /*** ... ***/ blocks. The script's commands are run at the
breakpoints by every configured debugger and the output is checked with #check.
Find more information with dbt run --help.
`

func App(version string) (*cobra.Command, error) {
	opts := &Options{}
	app := &cobra.Command{
		Use:          "dbt",
		Short:        "run debugger tests against gdb, cdb and friends",
		Long:         descriptionUsage,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.readConfigValues(cmd.Flags()); err != nil {
				return err
			}
			opts.setupLogging()
			opts.logCmd(cmd, args)
			return nil
		},
	}

	initializeOptions(opts)

	app.SuggestionsMinimumDistance = 1
	app.AddCommand(
		RunCmd(opts),
		DebuggersCmd(opts),
		ScriptCmd(opts),
		completionCmd(),
	)

	app.PersistentFlags().BoolVar(&opts.Json, "json", false, "output json format")
	app.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "config file (defaults to ~/.dbt/config.yaml)")
	applyDbtFlags(&opts.Dbt, app.PersistentFlags())

	return app, nil
}

func initializeOptions(o *Options) {
	o.ctx = context.Background()
	o.probe = dbt.NewVersionProbe()
	o.viper = viper.New()
}
