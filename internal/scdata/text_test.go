package scdata

import (
	"fmt"
	"testing"
)

func TestStripCodes(t *testing.T) {
	in := "\x04Fighting \x06Spirit"
	if got := StripCodes(in); got != "Fighting Spirit" {
		t.Errorf("StripCodes = %q", got)
	}
	// Ordinary whitespace controls are literal text.
	if got := StripCodes("a\tb\nc"); got != "a\tb\nc" {
		t.Errorf("whitespace stripped: %q", got)
	}
	if got := StripCodes("plain"); got != "plain" {
		t.Errorf("plain text changed: %q", got)
	}
}

// markerFactory tags segments with their style name so conversion can be
// asserted without terminal escapes.
func markerFactory(code StyleCode) Wrapper {
	if code.Type == CodeInvalid {
		return func(s string) string { return "[black]" + s + "[/]" }
	}
	if code.Type != CodeColor {
		return nil
	}
	name := code.Name
	return func(s string) string { return fmt.Sprintf("[%s]%s[/]", name, s) }
}

func TestConvertAppliesWrappers(t *testing.T) {
	c := NewTextConverter(markerFactory)
	got := c.Convert("\x04White\x06Red")
	want := "[white]White[/][red]Red[/]"
	if got != want {
		t.Errorf("Convert = %q, want %q", got, want)
	}
}

// Text before any control code passes through unstyled.
func TestConvertLeadingPlainText(t *testing.T) {
	c := NewTextConverter(markerFactory)
	got := c.Convert("plain \x07green")
	want := "plain [green]green[/]"
	if got != want {
		t.Errorf("Convert = %q, want %q", got, want)
	}
}

// Unknown control codes are identity: the following text renders unchanged.
func TestConvertUnknownCodeIsNoop(t *testing.T) {
	c := NewTextConverter(markerFactory)
	got := c.Convert("\x1atext")
	if got != "text" {
		t.Errorf("Convert = %q, want %q", got, "text")
	}
}

// Invisible codes are invalid colors and render as pure black.
func TestConvertInvalidRendersBlack(t *testing.T) {
	c := NewTextConverter(markerFactory)
	got := c.Convert("\x0bhidden")
	want := "[black]hidden[/]"
	if got != want {
		t.Errorf("Convert = %q, want %q", got, want)
	}
}
