// Package mapname decomposes raw map titles into a canonical name plus
// structured metadata (version, player-count hint, bracketed tags).
package mapname

import (
	"regexp"
	"strings"
)

// iccupPrefix is the community-tournament marker some map packs carry.
const iccupPrefix = "| iCCup |"

var (
	reVersion = regexp.MustCompile(`([0-9]+\.[0-9]+)$`)
	rePlayers = regexp.MustCompile(`^\(([1-9])\)`)

	// One regex per delimiter pair, anchored at the end of the string.
	// Segment content may not contain digits or the closing delimiter, so a
	// trailing version number is never mistaken for a tag.
	reParens   = regexp.MustCompile(`\(([^0-9()]+?)\)$`)
	reBrackets = regexp.MustCompile(`\[([^0-9\[\]]+?)\]$`)
	reArrows   = regexp.MustCompile(`<([^0-9<>]+?)>$`)
)

// Parsed is the result of breaking down a map title.
type Parsed struct {
	CleanName          string
	CleanNameVersioned string
	Version            string
	Players            []string
	Tags               []string
	IsIccup            bool
}

// extractVersion strips a trailing "N.N" version token.
func extractVersion(name string) (string, string) {
	m := reVersion.FindStringSubmatch(name)
	if m == nil {
		return strings.TrimSpace(name), ""
	}
	return strings.TrimSpace(reVersion.ReplaceAllString(name, "")), m[1]
}

// extractPlayers strips a leading "(N)" player-count token.
func extractPlayers(name string) (string, []string) {
	players := []string{}
	m := rePlayers.FindStringSubmatch(name)
	if m == nil {
		return strings.TrimSpace(name), players
	}
	players = append(players, m[1])
	return strings.TrimSpace(rePlayers.ReplaceAllString(name, "")), players
}

// extractSegments strips enclosed segments matching re from the end of the
// string, innermost-last first, and returns their contents in extraction
// order.
func extractSegments(name string, re *regexp.Regexp) (string, []string) {
	tags := []string{}
	for {
		m := re.FindStringSubmatch(name)
		if m == nil {
			break
		}
		tags = append(tags, m[1])
		name = strings.TrimSpace(re.ReplaceAllString(name, ""))
	}
	return name, tags
}

// extractIccup strips the community tag prefix, recording its presence.
func extractIccup(name string) (string, bool) {
	if !strings.HasPrefix(name, iccupPrefix) {
		return strings.TrimSpace(name), false
	}
	return strings.TrimSpace(strings.TrimPrefix(name, iccupPrefix)), true
}

// Parse breaks a raw map title down into a cleaned name and metadata.
//
// The strip passes run in a fixed order, each operating on the previous
// pass's remainder: trailing version, leading player count, then segments
// enclosed in parentheses, brackets and angle brackets (end-anchored only),
// then a second version pass for versions that were hidden behind a tag, and
// finally the community tag prefix. Tag and player lists are empty, never
// nil, when nothing matches.
func Parse(raw string) Parsed {
	name := strings.TrimSpace(raw)

	name, version := extractVersion(name)
	name, players := extractPlayers(name)
	name, parens := extractSegments(name, reParens)
	name, brackets := extractSegments(name, reBrackets)
	name, arrows := extractSegments(name, reArrows)
	name, version2 := extractVersion(name)
	name, isIccup := extractIccup(name)

	if version == "" {
		version = version2
	}

	tags := []string{}
	tags = append(tags, parens...)
	tags = append(tags, brackets...)
	tags = append(tags, arrows...)

	versioned := name
	if version != "" {
		versioned = name + " " + version
	}

	return Parsed{
		CleanName:          name,
		CleanNameVersioned: versioned,
		Version:            version,
		Players:            players,
		Tags:               tags,
		IsIccup:            isIccup,
	}
}
