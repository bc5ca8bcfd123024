package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/birdayz/cxxd/pkg/app"
	"github.com/birdayz/cxxd/pkg/cmd/completion"
	cxxdconfig "github.com/birdayz/cxxd/pkg/cmd/config"
	"github.com/birdayz/cxxd/pkg/cmd/dump"
)

// Execute is the single entry point for the CLI.
func Execute(version, commit string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := NewRootCommand(app.New(), fmt.Sprintf("%s (%s)", version, commit))
	return root.ExecuteContext(ctx)
}

// NewRootCommand builds the command tree around a.
func NewRootCommand(a *app.App, version string) *cobra.Command {
	opts := &dump.Options{}

	root := &cobra.Command{
		Use:          "cxxd [FILE] [OUTFILE]",
		Short:        "Make a hex dump or do the reverse",
		Long:         dump.Long,
		Example:      dump.Example,
		Version:      version,
		SilenceUsage: true,
		Args:         cobra.RangeArgs(0, 2),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.OutWriter = cmd.OutOrStdout()
			a.ErrWriter = cmd.ErrOrStderr()
			a.InReader = cmd.InOrStdin()

			if a.OutWriter != os.Stdout {
				a.ColorableOut = a.OutWriter
			}

			return a.InitConfig()
		},
		RunE: dump.RunE(a, opts),
	}

	root.PersistentFlags().StringVar(&a.CfgFile, "config", "", "config file (default is $HOME/.cxxd/config)")
	root.PersistentFlags().StringVarP(&a.ProfileOverride, "profile", "p", "", "set a temporary current profile")
	root.PersistentFlags().BoolVarP(&a.Verbose, "verbose", "v", false, "print diagnostics to stderr")
	opts.AddFlags(root)
	opts.AddRunFlags(root)

	if err := root.RegisterFlagCompletionFunc("profile", a.ValidProfileArgs); err != nil {
		panic(fmt.Sprintf("Failed to register flag completion: %v", err))
	}

	root.AddCommand(
		cxxdconfig.NewCommand(a),
		completion.NewCommand(root, a),
	)

	a.Root = root
	return root
}
