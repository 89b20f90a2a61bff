package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/descry-dev/descry/internal/app"
	"github.com/descry-dev/descry/internal/domain"
)

func newDecodeCommand(container *app.Container) *cobra.Command {
	var (
		encoding string
		shift    int
	)

	cmd := &cobra.Command{
		Use:   "decode [text]",
		Short: "Decode a string, guessing the encoding unless one is named",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(cmd, container, strings.Join(args, " "), encoding, shift, cmd.Flags().Changed("shift"))
		},
	}

	addDecodeFlags(cmd, container, &encoding, &shift)
	return cmd
}

func newFileCommand(container *app.Container) *cobra.Command {
	var (
		encoding string
		shift    int
	)

	cmd := &cobra.Command{
		Use:   "file <path>",
		Short: "Decode the content of a small text file (.txt, .log, .dat)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := container.FileIntake.Read(args[0])
			if err != nil {
				return err
			}
			return runDecode(cmd, container, text, encoding, shift, cmd.Flags().Changed("shift"))
		},
	}

	addDecodeFlags(cmd, container, &encoding, &shift)
	return cmd
}

func addDecodeFlags(cmd *cobra.Command, container *app.Container, encoding *string, shift *int) {
	cmd.Flags().StringVarP(encoding, "encoding", "e", string(container.Config.ResolvedDefaultMode()),
		"Encoding mode: auto, decimal, hex, base64, caesar, rot13, url")
	cmd.Flags().IntVarP(shift, "shift", "s", container.Config.ResolvedDefaultShift(),
		"Caesar shift to undo (caesar mode only)")
}

// runDecode is the shared decode flow behind the root, decode, and file
// commands: validate the boundary inputs, run the service, render.
func runDecode(cmd *cobra.Command, container *app.Container, text, encoding string, shift int, shiftSet bool) error {
	req, err := buildRequest(text, encoding, shift, shiftSet)
	if err != nil {
		return err
	}
	outcome, err := container.DecodeService.Run(cmd.Context(), req)
	if err != nil {
		return err
	}
	RenderOutcome(cmd.OutOrStdout(), outcome)
	return nil
}

// buildRequest validates the mode literal at the boundary and only carries a
// shift when the flag was given, so the configured default stays in charge.
func buildRequest(text, encoding string, shift int, shiftSet bool) (domain.DecodeRequest, error) {
	kind, ok := domain.ParseKind(encoding)
	if !ok {
		return domain.DecodeRequest{}, &domain.ValidationError{
			Field:  "encoding mode",
			Reason: fmt.Sprintf("%q is not one of auto, decimal, hex, base64, caesar, rot13, url", encoding),
		}
	}
	req := domain.DecodeRequest{Text: text, Kind: kind}
	if shiftSet {
		req.Shift = &shift
	}
	return req, nil
}
