package terminal

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/pable/go-screp-view/internal/model"
)

// sepPadding is the number of spaces on each side of a separator token.
const sepPadding = 2

// padToken pads a separator token on both sides.
func padToken(tok string) string {
	pad := strings.Repeat(" ", sepPadding)
	return pad + tok + pad
}

var (
	sepWinner  = padToken(">")
	sepLoser   = padToken("<")
	sepNeutral = padToken("•")
	sepAllies  = padToken("&")
)

// JoinAllies collapses a team's player cells into one composite cell, joined
// with the allies token. Column-width accounting operates on the joined
// string, so the composite carries its own visual width. The composite pads
// on its first player's side.
func JoinAllies(cells []model.TerminalCell) model.TerminalCell {
	if len(cells) == 0 {
		return model.TerminalCell{}
	}
	parts := make([]string, 0, len(cells))
	for _, c := range cells {
		parts = append(parts, c.Text)
	}
	text := strings.Join(parts, sepAllies)
	return model.TerminalCell{
		Text:    text,
		Align:   cells[0].Align,
		PadSide: cells[0].PadSide,
		Width:   ansi.StringWidth(text),
	}
}

// LayoutOne arranges one match's team cells into a row: composite team
// cells interleaved with separator tokens, one between each adjacent pair —
// never before the first or after the last team.
//
// For each adjacent pair, the separator points at the winner: a winner arrow
// after the current team if it won, a loser arrow if the next team won, and
// a neutral bullet when neither did. Winner comparison is by canonical id
// against winningTeam.
func LayoutOne(teams []model.TeamCells, winningTeam int) model.MatchRow {
	var row model.MatchRow
	for i, team := range teams {
		composite := JoinAllies(team.Cells)
		row.Items = append(row.Items, model.RowItem{Cell: &composite})

		if i == len(teams)-1 {
			break
		}
		next := teams[i+1]
		var sep string
		switch {
		case team.CanonicalID == winningTeam:
			sep = sepWinner
		case next.CanonicalID == winningTeam:
			sep = sepLoser
		default:
			sep = sepNeutral
		}
		row.Items = append(row.Items, model.RowItem{Sep: sep})
	}
	return row
}

// ColumnWidths tracks, per team slot position, the maximum composite cell
// width observed across a batch of rows.
type ColumnWidths []int

// Observe folds one row's cell widths into the profile.
func (cw *ColumnWidths) Observe(row model.MatchRow) {
	col := 0
	for _, item := range row.Items {
		if item.Cell == nil {
			continue
		}
		for len(*cw) <= col {
			*cw = append(*cw, 0)
		}
		if item.Cell.Width > (*cw)[col] {
			(*cw)[col] = item.Cell.Width
		}
		col++
	}
}

// Merge combines two partial profiles by per-column max. The fold over a
// batch is commutative and associative, so partial profiles computed in
// parallel can be merged in any order.
func (cw ColumnWidths) Merge(other ColumnWidths) ColumnWidths {
	merged := make(ColumnWidths, 0, max(len(cw), len(other)))
	merged = append(merged, cw...)
	for i, w := range other {
		if i < len(merged) {
			if w > merged[i] {
				merged[i] = w
			}
			continue
		}
		merged = append(merged, w)
	}
	return merged
}

// padCell pads a cell with spaces on its designated padding side up to
// width. Cells already at or beyond the width pass through unchanged.
func padCell(c model.TerminalCell, width int) model.TerminalCell {
	diff := width - c.Width
	if diff <= 0 {
		return c
	}
	padding := strings.Repeat(" ", diff)
	if c.PadSide == model.AlignLeft {
		c.Text = padding + c.Text
	} else {
		c.Text += padding
	}
	c.Width = width
	return c
}

// padRow re-pads every cell of a row to its column's width. Separators pass
// through unchanged.
func padRow(row model.MatchRow, cw ColumnWidths) model.MatchRow {
	var out model.MatchRow
	col := 0
	for _, item := range row.Items {
		if item.Cell == nil {
			out.Items = append(out.Items, item)
			continue
		}
		width := 0
		if col < len(cw) {
			width = cw[col]
		}
		padded := padCell(*item.Cell, width)
		out.Items = append(out.Items, model.RowItem{Cell: &padded})
		col++
	}
	return out
}

// ReconcileBatch re-pads every row of a batch so that team slot columns
// align across all rows. The profile is accumulated over the whole batch
// first; reconciling an already-reconciled batch is a no-op (fixed point).
func ReconcileBatch(rows []model.MatchRow) []model.MatchRow {
	var cw ColumnWidths
	for _, row := range rows {
		cw.Observe(row)
	}
	out := make([]model.MatchRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, padRow(row, cw))
	}
	return out
}

// RenderRow joins a row's cells and separators into the final line.
func RenderRow(row model.MatchRow) string {
	var b strings.Builder
	for _, item := range row.Items {
		if item.Cell != nil {
			b.WriteString(item.Cell.Text)
			continue
		}
		b.WriteString(item.Sep)
	}
	return b.String()
}
