// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdfpages/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect past conversion runs",
	Long: `History manages the local database of past conversion runs. Use
subcommands to list recent runs, export them as YAML or JSON, or clear
the database.`,
}

// --- list subcommand ---

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent conversion runs, newest first",
	RunE:  runHistoryList,
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.List(context.Background(), limit)
	if err != nil {
		return err
	}
	formatRunTable(runs)
	return nil
}

func formatRunTable(runs []history.Run) {
	if len(runs) == 0 {
		fmt.Println("No runs recorded.")
		return
	}

	fmt.Fprintf(os.Stdout, "%-5s  %-19s  %-7s  %-5s  %-9s  %-21s  %s\n",
		"ID", "Started", "Status", "Pages", "Duration", "Error", "Source")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 100))

	for _, r := range runs {
		source := r.Source
		if len(source) > 40 {
			source = source[:37] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-5d  %-19s  %-7s  %-5d  %-9s  %-21s  %s\n",
			r.ID, r.StartedAt.Local().Format("2006-01-02 15:04:05"),
			r.Status, r.Pages, fmt.Sprintf("%dms", r.DurationMS),
			r.ErrorKind, source)
	}

	fmt.Fprintf(os.Stdout, "\n%d run(s)\n", len(runs))
}

// --- export subcommand ---

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export recorded runs to YAML or JSON on stdout",
	RunE:  runHistoryExport,
}

func runHistoryExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	limit, _ := cmd.Flags().GetInt("limit")

	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.List(context.Background(), limit)
	if err != nil {
		return err
	}

	switch format {
	case "yaml", "":
		return history.ExportYAML(os.Stdout, runs)
	case "json":
		return history.ExportJSON(os.Stdout, runs)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
}

// --- clear subcommand ---

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded runs",
	RunE:  runHistoryClear,
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := store.Clear(context.Background())
	if err != nil {
		return err
	}
	fmt.Printf("Cleared %d run(s).\n", n)
	return nil
}

// --- shared helpers ---

// openHistory opens the history database at the configured path, falling
// back to the per-user default location.
func openHistory() (*history.Store, error) {
	path := viper.GetString("history_db")
	if path == "" {
		var err error
		path, err = history.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return history.Open(path)
}

func init() {
	historyCmd.PersistentFlags().String("db", "", "history database path (default: ~/.config/pdfpages/history.db)")
	viper.BindPFlag("history_db", historyCmd.PersistentFlags().Lookup("db"))

	historyListCmd.Flags().Int("limit", 20, "maximum runs to list (0 = all)")

	historyExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	historyExportCmd.Flags().Int("limit", 0, "maximum runs to export (0 = all)")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyExportCmd)
	historyCmd.AddCommand(historyClearCmd)

	rootCmd.AddCommand(historyCmd)
}
