package mapname

import (
	"reflect"
	"testing"
)

func TestParseVersionOnly(t *testing.T) {
	p := Parse("Fighting Spirit 2.1")
	if p.CleanName != "Fighting Spirit" {
		t.Errorf("CleanName = %q, want %q", p.CleanName, "Fighting Spirit")
	}
	if p.Version != "2.1" {
		t.Errorf("Version = %q, want %q", p.Version, "2.1")
	}
	if p.CleanNameVersioned != "Fighting Spirit 2.1" {
		t.Errorf("CleanNameVersioned = %q, want %q", p.CleanNameVersioned, "Fighting Spirit 2.1")
	}
	if len(p.Tags) != 0 {
		t.Errorf("Tags = %v, want empty", p.Tags)
	}
}

func TestParsePlayersTagAndVersion(t *testing.T) {
	p := Parse("(2)Destination [ESV] 1.1")
	if !reflect.DeepEqual(p.Players, []string{"2"}) {
		t.Errorf("Players = %v, want [2]", p.Players)
	}
	if !reflect.DeepEqual(p.Tags, []string{"ESV"}) {
		t.Errorf("Tags = %v, want [ESV]", p.Tags)
	}
	if p.Version != "1.1" {
		t.Errorf("Version = %q, want %q", p.Version, "1.1")
	}
	if p.CleanName != "Destination" {
		t.Errorf("CleanName = %q, want %q", p.CleanName, "Destination")
	}
}

// A version hidden behind a trailing tag is found by the second version
// pass.
func TestParseVersionBehindTag(t *testing.T) {
	p := Parse("Polypoid 1.65 (Ob)")
	if p.CleanName != "Polypoid" {
		t.Errorf("CleanName = %q, want %q", p.CleanName, "Polypoid")
	}
	if p.Version != "1.65" {
		t.Errorf("Version = %q, want %q", p.Version, "1.65")
	}
	if !reflect.DeepEqual(p.Tags, []string{"Ob"}) {
		t.Errorf("Tags = %v, want [Ob]", p.Tags)
	}
}

// The first-found version wins when both passes match.
func TestParseFirstVersionWins(t *testing.T) {
	p := Parse("Circuit Breaker 2.0 <obs> 1.0")
	if p.Version != "1.0" {
		t.Errorf("Version = %q, want %q (trailing pass runs first)", p.Version, "1.0")
	}
	if p.CleanName != "Circuit Breaker" {
		t.Errorf("CleanName = %q, want %q", p.CleanName, "Circuit Breaker")
	}
}

func TestParseIccupPrefix(t *testing.T) {
	p := Parse("| iCCup | Outsider")
	if !p.IsIccup {
		t.Error("expected IsIccup=true")
	}
	if p.CleanName != "Outsider" {
		t.Errorf("CleanName = %q, want %q", p.CleanName, "Outsider")
	}
}

// Tags never come back nil, even for plain names.
func TestParseNoDelimiters(t *testing.T) {
	p := Parse("Lost Temple")
	if p.Tags == nil || p.Players == nil {
		t.Error("expected empty, non-nil Tags and Players")
	}
	if len(p.Tags) != 0 || len(p.Players) != 0 {
		t.Errorf("Tags = %v, Players = %v, want empty", p.Tags, p.Players)
	}
	if p.CleanNameVersioned != "Lost Temple" {
		t.Errorf("CleanNameVersioned = %q, want %q", p.CleanNameVersioned, "Lost Temple")
	}
}

// A tag containing digits is not a tag: the digit exclusion in the segment
// regex keeps version-like content out.
func TestParseDigitsNotTags(t *testing.T) {
	p := Parse("Neo Sylphid (4.0)")
	if len(p.Tags) != 0 {
		t.Errorf("Tags = %v, want none for digit content", p.Tags)
	}
}

func TestParseMultipleTagGroupOrder(t *testing.T) {
	p := Parse("(4)Python <obs> [SCL] 1.3")
	want := []string{"SCL", "obs"}
	if !reflect.DeepEqual(p.Tags, want) {
		t.Errorf("Tags = %v, want %v (parens, brackets, arrows order)", p.Tags, want)
	}
	if p.CleanName != "Python" {
		t.Errorf("CleanName = %q, want %q", p.CleanName, "Python")
	}
	if p.CleanNameVersioned != "Python 1.3" {
		t.Errorf("CleanNameVersioned = %q", p.CleanNameVersioned)
	}
}
