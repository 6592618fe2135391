// Package report prints match models and cache listings to a terminal.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/pable/go-screp-view/internal/model"
	"github.com/pable/go-screp-view/internal/terminal"
)

// newTable returns a tablewriter with right-aligned rows and centered
// headers.
func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// PrintMatchSummary prints a one-line summary header for the match.
func PrintMatchSummary(w io.Writer, m *model.MatchModel, file model.RepFile) {
	fmt.Fprintf(w, "\nMap: %s  |  Date: %s  |  Type: %s  |  Duration: %s  |  File: %s (%s)\n\n",
		m.Map.NameData.CleanNameVersioned,
		m.Match.Date.Format("2006-01-02 15:04"),
		m.Match.Type,
		m.Match.DurationFormatted,
		file.Filename,
		humanize.Bytes(uint64(file.Size)),
	)
}

// PrintMatchupRow prints the colorized matchup line for a single match.
func PrintMatchupRow(w io.Writer, m *model.MatchModel) {
	cells := terminal.BuildTeamCells(m.Teams, m.IsMultiplayerFFA, nil)
	row := terminal.LayoutOne(cells, m.WinningTeam)
	fmt.Fprintf(w, "%s   %s\n", terminal.MatchupSummary(m.TeamRaces), terminal.RenderRow(row))
}

// PrintPlayerTable prints one row per player with their team and stats.
func PrintPlayerTable(w io.Writer, m *model.MatchModel) {
	table := newTable(w)
	table.Header(" ", "NAME", "RACE", "TEAM", "APM", "EAPM", "COLOR")

	for _, team := range m.Teams {
		for _, p := range team.Players {
			marker := " "
			if team.IsWinningTeam {
				marker = ">"
			}
			name := p.Name
			if p.IsCPU {
				name += " (CPU)"
			}
			table.Append(
				marker,
				name,
				p.Race,
				strconv.Itoa(team.CanonicalID),
				strconv.Itoa(p.APM),
				strconv.Itoa(p.EAPM),
				p.ColorSwatch,
			)
		}
	}
	table.Render()
}

// PrintMapInfo prints the map identity with the raw name colorized the way
// the game renders it.
func PrintMapInfo(w io.Writer, m *model.MatchModel) {
	conv := terminal.Converter()
	fmt.Fprintf(w, "Map name:     %s\n", conv.Convert(m.Map.NameRaw))
	fmt.Fprintf(w, "Clean name:   %s\n", m.Map.NameData.CleanNameVersioned)
	if len(m.Map.NameData.Tags) > 0 {
		fmt.Fprintf(w, "Tags:         %v\n", m.Map.NameData.Tags)
	}
	fmt.Fprintf(w, "Tileset:      %s\n", m.Map.Tileset)
	fmt.Fprintf(w, "Dimensions:   %d×%d\n", m.Map.Width, m.Map.Height)
	if m.Map.Description != "" {
		fmt.Fprintf(w, "Description:  %s\n", conv.Convert(m.Map.DescriptionRaw))
	}
}

// spawnLabel describes a spawn classification in words.
func spawnLabel(s *model.SpawnInfo) string {
	switch {
	case s.IsTLBRSpawns:
		return "cross (top-left vs bottom-right)"
	case s.IsBLTRSpawns:
		return "cross (bottom-left vs top-right)"
	case s.IsTopSpawns:
		return "close (both top)"
	case s.IsBottomSpawns:
		return "close (both bottom)"
	case s.IsLeftSpawns:
		return "close (both left)"
	case s.IsRightSpawns:
		return "close (both right)"
	case s.IsCrossSpawns:
		return "cross"
	default:
		return "close"
	}
}

// PrintSpawns prints the spawn classification when one applies.
func PrintSpawns(w io.Writer, m *model.MatchModel) {
	if m.Spawns == nil {
		return
	}
	fmt.Fprintf(w, "Spawns:       %s\n", spawnLabel(m.Spawns))
}

// PrintChat prints the chat timeline, sender names in team colors.
func PrintChat(w io.Writer, m *model.MatchModel) {
	if len(m.Chat) == 0 {
		return
	}
	fmt.Fprintln(w, "\nChat:")
	for _, entry := range m.Chat {
		fmt.Fprintf(w, "  [%s] %s\n", entry.TimeFormatted, terminal.FormatChatMessage(entry))
	}
}

// PrintRepList prints the cached replay listing.
func PrintRepList(w io.Writer, reps []model.CachedRep) {
	table := newTable(w)
	table.Header("HASH", "FILE", "SIZE", "MAP", "MATCHUP", "DATE", "ADDED")

	for _, r := range reps {
		hash := r.Hash
		if len(hash) > 12 {
			hash = hash[:12]
		}
		table.Append(
			hash,
			r.Filename,
			humanize.Bytes(uint64(r.Size)),
			r.MapName,
			r.Matchup,
			r.MatchDate,
			r.AddedAt,
		)
	}
	table.Render()
}
