package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/descry-dev/descry/internal/app"
)

// NewHistoryCommand creates the history command with all subcommands
func NewHistoryCommand(container *app.Container) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect past decode operations",
	}

	historyCmd.AddCommand(
		newHistoryListCommand(container),
		newHistorySearchCommand(container),
		newHistoryClearCommand(container),
		newHistoryExportCommand(container),
		newHistoryStatsCommand(container),
	)

	return historyCmd
}

func newHistoryListCommand(container *app.Container) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent decodes, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listHistoryEntries(cmd.OutOrStdout(), container, limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", container.Config.ResolvedHistoryLimit(), "Max entries to show")
	return cmd
}

func newHistorySearchCommand(container *app.Container) *cobra.Command {
	var query string
	var searchLimit int

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search history for a keyword",
		RunE: func(cmd *cobra.Command, args []string) error {
			if query == "" {
				return fmt.Errorf(ErrQueryRequired)
			}
			return searchHistoryEntries(cmd.OutOrStdout(), container, query, searchLimit)
		},
	}

	cmd.Flags().StringVar(&query, "query", "", "Search keyword")
	cmd.Flags().IntVar(&searchLimit, "limit", container.Config.ResolvedHistoryLimit(), "Limit search results")
	return cmd
}

func newHistoryClearCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded decodes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.HistoryStore == nil {
				return fmt.Errorf(ErrHistoryStoreUnavailable)
			}
			if err := container.HistoryStore.Clear(); err != nil {
				return fmt.Errorf("failed to clear history: %w", err)
			}
			return nil
		},
	}
}

func newHistoryExportCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "export <path>",
		Short: "Export history to JSONL file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.HistoryStore == nil {
				return fmt.Errorf(ErrHistoryStoreUnavailable)
			}
			if err := container.HistoryStore.ExportJSON(args[0]); err != nil {
				return fmt.Errorf("failed to export history to %s: %w", args[0], err)
			}
			return nil
		},
	}
}

func newHistoryStatsCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show per-encoding counts and length deltas",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showHistoryStats(cmd.OutOrStdout(), container)
		},
	}
}

func listHistoryEntries(out io.Writer, container *app.Container, limit int) error {
	store := container.HistoryStore
	if store == nil {
		return fmt.Errorf(ErrHistoryStoreUnavailable)
	}

	entries, err := store.Records(limit, "")
	if err != nil {
		return fmt.Errorf("failed to retrieve history: %w", err)
	}
	if len(entries) == 0 {
		fmt.Fprintln(out, MsgNoHistoryRecorded)
		return nil
	}

	for _, entry := range entries {
		fmt.Fprintf(out, "%s | %-7s | %4d -> %4d | %s\n",
			entry.CreatedAt.Local().Format(TimestampFormat),
			entry.ResolvedKind,
			entry.OriginalLength,
			entry.DecodedLength,
			entry.DecodedText)
	}
	return nil
}

func searchHistoryEntries(out io.Writer, container *app.Container, query string, limit int) error {
	store := container.HistoryStore
	if store == nil {
		return fmt.Errorf(ErrHistoryStoreUnavailable)
	}

	entries, err := store.Records(limit, query)
	if err != nil {
		return fmt.Errorf("failed to search history: %w", err)
	}
	for _, entry := range entries {
		fmt.Fprintf(out, "%s | %s | %s\n",
			entry.CreatedAt.Local().Format(TimestampFormat),
			entry.ResolvedKind,
			entry.DecodedText)
	}
	return nil
}

func showHistoryStats(out io.Writer, container *app.Container) error {
	store := container.HistoryStore
	if store == nil {
		return fmt.Errorf(ErrHistoryStoreUnavailable)
	}

	entries, err := store.Records(0, "")
	if err != nil {
		return fmt.Errorf("failed to retrieve history: %w", err)
	}
	if len(entries) == 0 {
		fmt.Fprintln(out, MsgNoHistoryRecorded)
		return nil
	}

	stats := CalculateKindStats(entries)
	fmt.Fprintf(out, "Total decodes: %d\n", len(entries))
	for _, stat := range stats {
		fmt.Fprintf(out, "  %-7s %4d  avg length delta %+.1f\n", stat.Kind, stat.Count, stat.AvgLengthDelta)
	}
	return nil
}
