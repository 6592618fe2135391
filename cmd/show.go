package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-screp-view/internal/report"
)

var showCmd = &cobra.Command{
	Use:   "show <replay.rep>",
	Short: "Show full details for a single replay",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	version, err := screpVersion(ctx)
	if err != nil {
		return err
	}

	db, err := openCache()
	if err != nil {
		return err
	}
	defer db.Close()

	m, file, err := loadModel(ctx, db, version, args[0])
	if err != nil {
		return err
	}
	if len(m.Teams) == 0 {
		fmt.Fprintf(os.Stderr, "No usable data in %s\n", args[0])
		return nil
	}

	report.PrintMatchSummary(os.Stdout, m, file)
	report.PrintMatchupRow(os.Stdout, m)
	fmt.Fprintln(os.Stdout)
	report.PrintPlayerTable(os.Stdout, m)
	fmt.Fprintln(os.Stdout)
	report.PrintMapInfo(os.Stdout, m)
	report.PrintSpawns(os.Stdout, m)
	report.PrintChat(os.Stdout, m)
	return nil
}
