package screp

import (
	"context"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/pable/go-screp-view/internal/model"
)

func TestDefaultArgs(t *testing.T) {
	got := DefaultOptions().args("/reps/game.rep")
	want := []string{"-cmds", "-computed", "-header", "-map", "-indent=0", "/reps/game.rep"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("args = %v, want %v", got, want)
	}
}

func TestMinimalArgs(t *testing.T) {
	got := Options{}.args("game.rep")
	want := []string{"-indent=0", "game.rep"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("args = %v, want %v", got, want)
	}
}

func TestAllSectionArgs(t *testing.T) {
	opts := Options{
		UseCmds: true, UseComputed: true, UseHeader: true,
		UseMap: true, UseMapRes: true, UseMapTiles: true,
	}
	got := opts.args("game.rep")
	want := []string{"-cmds", "-computed", "-header", "-map", "-mapres", "-maptiles", "-indent=0", "game.rep"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("args = %v, want %v", got, want)
	}
}

func TestBinaryDefault(t *testing.T) {
	if got := (Options{}).binary(); got != DefaultBinary {
		t.Errorf("binary = %q", got)
	}
	if got := (Options{Binary: "/opt/screp"}).binary(); got != "/opt/screp" {
		t.Errorf("binary = %q", got)
	}
}

func testRaw() *model.RawMatch {
	return &model.RawMatch{
		Header: model.RawHeader{
			Engine:    model.IDValue{ID: 1},
			Frames:    10000,
			StartTime: time.Date(2024, 3, 1, 20, 0, 0, 0, time.UTC),
			Title:     "game",
			Map:       "Fighting Spirit",
			Speed:     model.IDValue{ID: 6},
			Type:      model.MatchType{ID: 2},
			Players: []model.RawPlayer{
				{ID: 0, Name: "alice", Race: model.IDValue{ID: 1}},
				{ID: 1, Name: "bob", Race: model.IDValue{ID: 2}},
			},
		},
	}
}

func TestHeaderHashStable(t *testing.T) {
	a := HeaderHash(testRaw())
	b := HeaderHash(testRaw())
	if a == "" || a != b {
		t.Errorf("hash not stable: %q vs %q", a, b)
	}
	if len(a) != 40 {
		t.Errorf("hash length = %d, want 40 hex chars", len(a))
	}
}

func TestHeaderHashSensitivity(t *testing.T) {
	base := HeaderHash(testRaw())

	changed := testRaw()
	changed.Header.Frames = 10001
	if HeaderHash(changed) == base {
		t.Error("frame count change must change the hash")
	}

	changed = testRaw()
	changed.Header.Players[1].Name = "carol"
	if HeaderHash(changed) == base {
		t.Error("player name change must change the hash")
	}
}

func TestHeaderHashEmpty(t *testing.T) {
	if got := HeaderHash(&model.RawMatch{}); got != "" {
		t.Errorf("empty record hash = %q, want empty", got)
	}
}

func TestSource(t *testing.T) {
	cases := map[string]string{
		"/reps/LastReplay.rep": "LastReplay",
		"game.rep":             "game",
		"noext":                "noext",
		"/a/b.c/two.dots.rep":  "two.dots",
	}
	for in, want := range cases {
		if got := Source(in); got != want {
			t.Errorf("Source(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestErrorMessage(t *testing.T) {
	err := &Error{Output: "Decoding error: not a replay file"}
	if !strings.Contains(err.Error(), "not a replay file") {
		t.Errorf("message lost: %q", err.Error())
	}
}

func TestVersionString(t *testing.T) {
	v := Version{Screp: "v1.12.0", Parser: "5.6.0", EAPM: "1.0.4", BuiltWith: "go1.22"}
	if got := v.String(); got != "v1.12.0/5.6.0/1.0.4" {
		t.Errorf("String() = %q", got)
	}
}

func TestParseMissingFile(t *testing.T) {
	_, err := Parse(context.Background(), "/nonexistent/game.rep", DefaultOptions())
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
