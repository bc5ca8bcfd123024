package completion

import (
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/birdayz/cxxd/pkg/app"
)

const long = `Print a shell completion script for cxxd.

Besides subcommands and flag names, the script completes values that cxxd
knows at run time:

  --profile, config use-profile, config remove-profile
      profile names from the config file (~/.cxxd/config or --config)
  --color
      auto, always, never
  --output
      default, json, json-each-row

Load the script once in the current shell:

  bash:        source <(cxxd completion bash)
  zsh:         source <(cxxd completion zsh)
  fish:        cxxd completion fish | source
  powershell:  cxxd completion powershell | Out-String | Invoke-Expression

or install it for every new session, e.g.

  cxxd completion bash > /etc/bash_completion.d/cxxd
  cxxd completion zsh > "${fpath[1]}/_cxxd"
  cxxd completion fish > ~/.config/fish/completions/cxxd.fish
`

// generators writes the completion script of each supported shell, with
// descriptions for profile names and flag values where the shell shows them.
var generators = map[string]func(root *cobra.Command, w io.Writer) error{
	"bash": func(root *cobra.Command, w io.Writer) error {
		return root.GenBashCompletionV2(w, true)
	},
	"zsh": func(root *cobra.Command, w io.Writer) error {
		return root.GenZshCompletion(w)
	},
	"fish": func(root *cobra.Command, w io.Writer) error {
		return root.GenFishCompletion(w, true)
	},
	"powershell": func(root *cobra.Command, w io.Writer) error {
		return root.GenPowerShellCompletionWithDesc(w)
	},
}

// Shells lists the shells "cxxd completion" supports, sorted.
func Shells() []string {
	shells := make([]string, 0, len(generators))
	for shell := range generators {
		shells = append(shells, shell)
	}
	slices.Sort(shells)
	return shells
}

// NewCommand returns the "cxxd completion SHELL" command for the tree under root.
func NewCommand(root *cobra.Command, a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:                   "completion SHELL",
		Short:                 "Print the shell completion script for cxxd",
		Long:                  long,
		DisableFlagsInUseLine: true,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs:             Shells(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := generators[args[0]](root, a.OutWriter); err != nil {
				return fmt.Errorf("generate %s completion: %w", args[0], err)
			}
			return nil
		},
	}
}
