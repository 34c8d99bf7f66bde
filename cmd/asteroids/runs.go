package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

var flagRunsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded runs",
	Long: `Display the most recent runs in the run journal.

Examples:
  asteroids runs
  asteroids runs --limit 50
  asteroids runs delete 3`,
	Args: cobra.NoArgs,
	RunE: runRuns,
}

var runsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a recorded run",
	Args:  cobra.ExactArgs(1),
	RunE:  runRunsDelete,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Maximum number of runs to show")
	runsCmd.AddCommand(runsDeleteCmd)
}

func runRuns(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.Runs(flagRunsLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'asteroids sim --record' or 'asteroids play --record' to record one.")
		return nil
	}

	// Print header
	fmt.Fprintf(out, "  %-5s  %-20s  %-8s  %-6s  %-6s  %s\n", "ID", "Seed", "Ticks", "Games", "Best", "Date")
	fmt.Fprintf(out, "  %-5s  %-20s  %-8s  %-6s  %-6s  %s\n", "--", "----", "-----", "-----", "----", "----")

	for _, r := range runs {
		fmt.Fprintf(out, "  %-5d  %-20d  %-8d  %-6d  %-6d  %s\n",
			r.ID, r.Seed, r.Ticks, r.Games, r.BestScore, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func runRunsDelete(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid run id %q", args[0])
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.DeleteRun(id); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted run %d\n", id)
	return nil
}
