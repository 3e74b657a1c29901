package dbtctl

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	completionLong = `
	Output shell completion code for the specified shell (bash or zsh).
	The shell code must be evaluated to provide interactive
	completion of dbt commands.  This can be done by sourcing it from
	the .bash_profile.
	Note for zsh users: [1] zsh completions are only supported in versions of zsh >= 5.2`

	completionExample = `
	# Installing bash completion on macOS using homebrew
	## If running Bash 3.2 included with macOS
	  	brew install bash-completion
	## or, if running Bash 4.1+
	    brew install bash-completion@2
	## You may need add the completion to your completion directory
	    dbt completion bash > $(brew --prefix)/etc/bash_completion.d/dbt
	# Installing bash completion on Linux
	## Load the dbt completion code for bash into the current shell
	    source <(dbt completion bash)
	## Write bash completion code to a file and source if from .bash_profile
	    dbt completion bash > ~/.dbt/completion.bash.inc
	    printf "
 	     # dbt shell completion
	      source '$HOME/.dbt/completion.bash.inc'
	      " >> $HOME/.bash_profile
	    source $HOME/.bash_profile
	# Load the dbt completion code for zsh[1] into the current shell
	    source <(dbt completion zsh)
	# Set the dbt completion code for zsh[1] to autoload on startup
	    dbt completion zsh > "${fpath[1]}/_dbt"`
)

func completionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "completion SHELL",
		Short:     "generate auto completion for your shell",
		Long:      completionLong,
		Example:   completionExample,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"bash", "zsh"},
		RunE: func(c *cobra.Command, a []string) error {
			switch strings.ToLower(a[0]) {
			case "bash":
				return errors.Wrap(c.Root().GenBashCompletion(c.OutOrStdout()), "Unable to generate bash completion")
			case "zsh":
				return errors.Wrap(c.Root().GenZshCompletion(c.OutOrStdout()), "Unable to generate zsh completion")
			default:
				return errors.Errorf("Unsupported shell %s", a[0])
			}
		},
	}
	return cmd
}
