package terminal

import (
	"reflect"
	"strings"
	"testing"

	"github.com/pable/go-screp-view/internal/model"
)

// cell builds a plain test cell whose width equals its text length.
func cell(text string, padSide model.Align) model.TerminalCell {
	return model.TerminalCell{Text: text, Align: padSide, PadSide: padSide, Width: len(text)}
}

func teamOf(canonicalID int, cells ...model.TerminalCell) model.TeamCells {
	return model.TeamCells{CanonicalID: canonicalID, Cells: cells}
}

func TestJoinAllies(t *testing.T) {
	joined := JoinAllies([]model.TerminalCell{
		cell("alice", model.AlignLeft),
		cell("bob", model.AlignRight),
	})
	if joined.Text != "alice  &  bob" {
		t.Errorf("Text = %q", joined.Text)
	}
	if joined.Width != len("alice  &  bob") {
		t.Errorf("Width = %d, want %d", joined.Width, len("alice  &  bob"))
	}
	if joined.PadSide != model.AlignLeft {
		t.Error("composite must pad on its first player's side")
	}
}

func TestJoinAlliesSingle(t *testing.T) {
	joined := JoinAllies([]model.TerminalCell{cell("solo", model.AlignRight)})
	if joined.Text != "solo" || joined.Width != 4 {
		t.Errorf("joined = %+v", joined)
	}
}

func TestJoinAlliesEmpty(t *testing.T) {
	joined := JoinAllies(nil)
	if joined.Text != "" || joined.Width != 0 {
		t.Errorf("joined = %+v", joined)
	}
}

func TestLayoutOneSeparatorDirection(t *testing.T) {
	a := teamOf(1, cell("alice", model.AlignLeft))
	b := teamOf(2, cell("bob", model.AlignRight))

	row := LayoutOne([]model.TeamCells{a, b}, 1)
	if got := RenderRow(row); got != "alice  >  bob" {
		t.Errorf("winner first: %q", got)
	}

	row = LayoutOne([]model.TeamCells{a, b}, 2)
	if got := RenderRow(row); got != "alice  <  bob" {
		t.Errorf("winner second: %q", got)
	}

	row = LayoutOne([]model.TeamCells{a, b}, 9)
	if got := RenderRow(row); got != "alice  •  bob" {
		t.Errorf("no winner: %q", got)
	}
}

// The winner arrow opens toward the winning side only for the pairs the
// winner touches; elsewhere the bullet applies.
func TestLayoutOneThreeTeams(t *testing.T) {
	teams := []model.TeamCells{
		teamOf(1, cell("a", model.AlignLeft)),
		teamOf(2, cell("b", model.AlignLeft)),
		teamOf(3, cell("c", model.AlignLeft)),
	}
	row := LayoutOne(teams, 2)
	if got := RenderRow(row); got != "a  <  b  >  c" {
		t.Errorf("middle winner: %q", got)
	}
}

func TestLayoutOneSeparatorCount(t *testing.T) {
	for n := 0; n <= 4; n++ {
		teams := make([]model.TeamCells, 0, n)
		for i := 0; i < n; i++ {
			teams = append(teams, teamOf(i, cell("x", model.AlignLeft)))
		}
		row := LayoutOne(teams, -1)
		cells, seps := 0, 0
		for _, item := range row.Items {
			if item.Cell != nil {
				cells++
			} else {
				seps++
			}
		}
		if cells != n {
			t.Errorf("n=%d: %d cells", n, cells)
		}
		wantSeps := 0
		if n > 0 {
			wantSeps = n - 1
		}
		if seps != wantSeps {
			t.Errorf("n=%d: %d separators, want %d", n, seps, wantSeps)
		}
	}
}

func TestColumnWidthsObserve(t *testing.T) {
	var cw ColumnWidths
	cw.Observe(LayoutOne([]model.TeamCells{
		teamOf(1, cell("alice", model.AlignLeft)),
		teamOf(2, cell("bo", model.AlignRight)),
	}, -1))
	cw.Observe(LayoutOne([]model.TeamCells{
		teamOf(1, cell("zz", model.AlignLeft)),
		teamOf(2, cell("bernard", model.AlignRight)),
	}, -1))
	want := ColumnWidths{5, 7}
	if !reflect.DeepEqual(cw, want) {
		t.Errorf("profile = %v, want %v", cw, want)
	}
}

func TestColumnWidthsMerge(t *testing.T) {
	a := ColumnWidths{5, 2}
	b := ColumnWidths{3, 8, 4}
	want := ColumnWidths{5, 8, 4}
	if got := a.Merge(b); !reflect.DeepEqual(got, want) {
		t.Errorf("a.Merge(b) = %v, want %v", got, want)
	}
	if got := b.Merge(a); !reflect.DeepEqual(got, want) {
		t.Errorf("b.Merge(a) = %v, want %v", got, want)
	}
}

func TestReconcileBatchAligns(t *testing.T) {
	rows := []model.MatchRow{
		LayoutOne([]model.TeamCells{
			teamOf(1, cell("alice", model.AlignRight)),
			teamOf(2, cell("bo", model.AlignLeft)),
		}, 1),
		LayoutOne([]model.TeamCells{
			teamOf(3, cell("zz", model.AlignRight)),
			teamOf(4, cell("bernard", model.AlignLeft)),
		}, 4),
	}
	out := ReconcileBatch(rows)

	if got := RenderRow(out[0]); got != "alice  >       bo" {
		t.Errorf("row 0: %q", got)
	}
	if got := RenderRow(out[1]); got != "zz     <  bernard" {
		t.Errorf("row 1: %q", got)
	}
	if len(RenderRow(out[0])) != len(RenderRow(out[1])) {
		t.Error("reconciled rows must have equal rendered length")
	}
}

// Reconciling an already-reconciled batch changes nothing.
func TestReconcileBatchFixedPoint(t *testing.T) {
	rows := []model.MatchRow{
		LayoutOne([]model.TeamCells{
			teamOf(1, cell("a", model.AlignLeft)),
			teamOf(2, cell("longer", model.AlignRight)),
		}, 1),
		LayoutOne([]model.TeamCells{
			teamOf(1, cell("medium", model.AlignLeft)),
			teamOf(2, cell("b", model.AlignRight)),
		}, 2),
	}
	once := ReconcileBatch(rows)
	twice := ReconcileBatch(once)
	for i := range once {
		if RenderRow(once[i]) != RenderRow(twice[i]) {
			t.Errorf("row %d drifted: %q -> %q", i, RenderRow(once[i]), RenderRow(twice[i]))
		}
	}
}

func TestPadCellSides(t *testing.T) {
	left := padCell(cell("x", model.AlignLeft), 3)
	if left.Text != "  x" || left.Width != 3 {
		t.Errorf("left pad: %+v", left)
	}
	right := padCell(cell("x", model.AlignRight), 3)
	if right.Text != "x  " || right.Width != 3 {
		t.Errorf("right pad: %+v", right)
	}
	wide := padCell(cell("wide", model.AlignLeft), 2)
	if wide.Text != "wide" {
		t.Error("cells beyond the column width pass through unchanged")
	}
}

func TestSeparatorTokens(t *testing.T) {
	for _, sep := range []string{sepWinner, sepLoser, sepNeutral, sepAllies} {
		if !strings.HasPrefix(sep, "  ") || !strings.HasSuffix(sep, "  ") {
			t.Errorf("separator %q must carry two spaces on each side", sep)
		}
	}
}
