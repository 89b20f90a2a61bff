package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/descry-dev/descry/internal/app"
	"github.com/descry-dev/descry/internal/infrastructure/cli/commands"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, err
	}
	return newRootCommand(container), nil
}

// newRootCommand assembles the command tree around an existing container.
// Bare positional arguments run the decode flow directly: the root cannot
// hand off to the decode subcommand at execute time, because a child's
// Execute re-enters the root and would recurse.
func newRootCommand(container *app.Container) *cobra.Command {
	var (
		encoding string
		shift    int
	)

	root := &cobra.Command{
		Use:   "descry [text]",
		Short: "descry - classical encoding detector and decoder",
		Long:  "descry recovers plaintext from decimal escapes, hex, base64, caesar, rot13 and percent-encoded input, guessing the encoding when asked to.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runDecode(cmd, container, strings.Join(args, " "), encoding, shift, cmd.Flags().Changed("shift"))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	addDecodeFlags(root, container, &encoding, &shift)

	root.AddCommand(newDecodeCommand(container))
	root.AddCommand(newFileCommand(container))
	root.AddCommand(commands.NewHistoryCommand(container))
	root.AddCommand(commands.NewConfigCommand(container))
	root.AddCommand(commands.NewVersionCommand())
	return root
}
