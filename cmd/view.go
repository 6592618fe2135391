package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-screp-view/internal/model"
	"github.com/pable/go-screp-view/internal/terminal"
)

var viewCmd = &cobra.Command{
	Use:   "view <replay.rep> [more.rep...]",
	Short: "Show a column-aligned matchup table for one or more replays",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runView,
}

func runView(cmd *cobra.Command, args []string) error {
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

	type line struct {
		m   *model.MatchModel
		row model.MatchRow
	}

	var lines []line
	for _, path := range args {
		m, _, err := loadModel(ctx, db, version, path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "skipping %s: %v\n", path, err)
			continue
		}
		cells := terminal.BuildTeamCells(m.Teams, m.IsMultiplayerFFA, nil)
		lines = append(lines, line{m: m, row: terminal.LayoutOne(cells, m.WinningTeam)})
	}
	if len(lines) == 0 {
		return fmt.Errorf("no readable replays")
	}

	// All rows must exist before the batch is re-padded; this is the only
	// cross-match step.
	rows := make([]model.MatchRow, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, l.row)
	}
	rows = terminal.ReconcileBatch(rows)

	matchupWidth := 0
	for _, l := range lines {
		if len(l.m.MatchupSorted) > matchupWidth {
			matchupWidth = len(l.m.MatchupSorted)
		}
	}

	for i, l := range lines {
		fmt.Fprintf(os.Stdout, "%s  %-*s  %s  %s\n",
			l.m.Match.Date.Format("2006-01-02 15:04"),
			matchupWidth, l.m.MatchupSorted,
			terminal.RenderRow(rows[i]),
			l.m.Map.NameData.CleanNameVersioned,
		)
	}
	return nil
}
