package scdata

import "github.com/fatih/color"

// RaceLetter returns the single-letter form of a race name (T, P, Z, R).
func RaceLetter(race string) string {
	if race == "" {
		return "?"
	}
	letter := race[:1]
	if letter[0] >= 'a' && letter[0] <= 'z' {
		letter = string(letter[0] - 'a' + 'A')
	}
	return letter
}

// racePairs holds the preferred orderings for 1v1 matchup labels. The
// canonical non-mirror set is {PvT, TvZ, ZvP}; note the order is cyclic, not
// alphabetic.
var racePairs = map[string]bool{
	"PT": true,
	"TZ": true,
	"ZP": true,
}

// RacesOrdered reports whether race letter a canonically precedes b in a 1v1
// matchup label. Mirrors and unknown pairs are considered already ordered.
func RacesOrdered(a, b string) bool {
	if a == b {
		return true
	}
	return racePairs[a+b]
}

// raceColors maps a race letter to its terminal display color.
var raceColors = map[string]color.Attribute{
	"P": color.FgGreen,
	"T": color.FgBlue,
	"Z": color.FgRed,
	"R": color.FgCyan,
}

// RaceColor returns the terminal color attribute for a race letter.
// Unknown letters render in the default color.
func RaceColor(letter string) color.Attribute {
	if attr, ok := raceColors[letter]; ok {
		return attr
	}
	return color.Reset
}
