package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-screp-view/internal/report"
	"github.com/pable/go-screp-view/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all cached replays",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	reps, err := db.List()
	if err != nil {
		return fmt.Errorf("list reps: %w", err)
	}
	if len(reps) == 0 {
		fmt.Fprintln(os.Stdout, "No replays cached yet. Run 'screpview view <replay.rep>' to add one.")
		return nil
	}

	report.PrintRepList(os.Stdout, reps)
	return nil
}
