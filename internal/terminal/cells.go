// Package terminal turns a match model into colorized, alignment-tagged
// cells and lays them out as column-aligned rows for terminal output.
package terminal

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/fatih/color"

	"github.com/pable/go-screp-view/internal/model"
	"github.com/pable/go-screp-view/internal/scdata"
)

// opposite flips a horizontal side.
func opposite(a model.Align) model.Align {
	if a == model.AlignLeft {
		return model.AlignRight
	}
	return model.AlignLeft
}

// glyphSide decides where the race indicator goes relative to the name:
// on the left for the first team of a 1v1, for a player in the first half of
// a multi-player team, and for every player of a free-for-all; on the right
// otherwise.
func glyphSide(teamN, teamCount, playerN, teamSize int, isFFA bool) model.Align {
	switch {
	case teamN == 0 && teamCount == 2 && playerN == 0 && teamSize == 1:
		return model.AlignLeft
	case teamSize > 1 && float64(playerN) < float64(teamSize)/2:
		return model.AlignLeft
	case isFFA:
		return model.AlignLeft
	}
	return model.AlignRight
}

// buildCell renders one player as a colorized cell. The race glyph sits on a
// background of the player's team color with a contrast-picked foreground;
// the name is colored in the team color itself.
func buildCell(p model.Player, teamN, teamCount, playerN, teamSize int, highlighted, isFFA bool) model.TerminalCell {
	r, g, b := scdata.ToRGB(scdata.ColorFromSwatch(p.ColorSwatch))
	fr, fg, fb := scdata.PickForegroundRGB(r, g, b)

	glyph := color.RGB(fr, fg, fb).AddBgRGB(r, g, b).Sprintf(" %s ", p.Race)

	nameColor := color.RGB(r, g, b)
	if highlighted {
		nameColor = nameColor.Add(color.Underline, color.Bold)
	}
	name := nameColor.Sprint(strings.TrimSpace(p.Name))

	align := glyphSide(teamN, teamCount, playerN, teamSize, isFFA)
	text := name + " " + glyph
	if align == model.AlignLeft {
		text = glyph + " " + name
	}

	// In a free-for-all the padding goes on the side opposite the glyph so
	// names hang toward the center; otherwise it follows the glyph.
	padSide := align
	if isFFA {
		padSide = opposite(align)
	}

	return model.TerminalCell{
		Text:    text,
		Align:   align,
		PadSide: padSide,
		Width:   ansi.StringWidth(text),
	}
}

// BuildTeamCells converts the match's teams into per-player cells tagged
// with each team's canonical id. Players whose id is in highlightIDs are
// underlined.
func BuildTeamCells(teams []model.Team, isFFA bool, highlightIDs []int) []model.TeamCells {
	highlighted := make(map[int]bool, len(highlightIDs))
	for _, id := range highlightIDs {
		highlighted[id] = true
	}

	out := make([]model.TeamCells, 0, len(teams))
	for teamN, team := range teams {
		cells := make([]model.TerminalCell, 0, len(team.Players))
		for playerN, p := range team.Players {
			cells = append(cells, buildCell(p, teamN, len(teams), playerN, len(team.Players), highlighted[p.ID], isFFA))
		}
		out = append(out, model.TeamCells{CanonicalID: team.CanonicalID, Cells: cells})
	}
	return out
}

// MatchupSummary returns the matchup label with each race letter colorized.
func MatchupSummary(teamRaces [][]string) string {
	sides := make([]string, 0, len(teamRaces))
	for _, races := range teamRaces {
		var side strings.Builder
		for _, letter := range races {
			side.WriteString(color.New(scdata.RaceColor(letter)).Sprint(letter))
		}
		sides = append(sides, side.String())
	}
	return strings.Join(sides, "v")
}

// FormatChatMessage renders one chat entry with the sender's name in their
// team color and in-game control codes in the message converted to terminal
// escapes.
func FormatChatMessage(entry model.ChatEntry) string {
	r, g, b := scdata.ToRGB(scdata.ColorFromSwatch(entry.SenderColor))
	sender := color.RGB(r, g, b).Sprint(entry.SenderName)
	return sender + ": " + Converter().Convert(entry.Message)
}

// converter colorizes in-game control codes for the terminal. Invalid codes
// render as pure black, like the game does; codes with no color meaning pass
// text through unchanged.
var converter = scdata.NewTextConverter(func(code scdata.StyleCode) scdata.Wrapper {
	var c *color.Color
	switch code.Type {
	case scdata.CodeInvalid:
		c = color.RGB(0, 0, 0)
	case scdata.CodeColor:
		r, g, b := scdata.ToRGB(code.Color)
		c = color.RGB(r, g, b)
	default:
		return nil
	}
	return func(s string) string { return c.Sprint(s) }
})

// Converter returns the terminal text converter for in-game style codes.
func Converter() *scdata.TextConverter {
	return converter
}
