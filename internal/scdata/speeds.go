package scdata

import (
	"fmt"
	"strings"
	"unicode"
)

// msPerFrame maps a game speed slug to the wall-clock duration of one frame
// in milliseconds.
var msPerFrame = map[string]int{
	"slowest": 167,
	"slower":  111,
	"slow":    83,
	"normal":  67,
	"fast":    56,
	"faster":  48,
	"fastest": 42,
}

// defaultMsPerFrame is the competitive standard ("fastest").
const defaultMsPerFrame = 42

// FramesToMs converts a frame count to elapsed milliseconds for the given
// game speed slug.
func FramesToMs(frames int, speed string) int {
	ms, ok := msPerFrame[speed]
	if !ok {
		ms = defaultMsPerFrame
	}
	return frames * ms
}

// FormatDuration formats elapsed milliseconds as "M:SS", or "H:MM:SS" once
// the duration reaches an hour.
func FormatDuration(ms int) string {
	totalSec := ms / 1000
	h := totalSec / 3600
	m := (totalSec % 3600) / 60
	s := totalSec % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// Slugify lowercases a display name and collapses it to [a-z0-9_.-],
// replacing whitespace runs with underscores.
func Slugify(s string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range strings.TrimSpace(strings.ToLower(s)) {
		switch {
		case unicode.IsSpace(r):
			if !lastUnderscore {
				b.WriteRune('_')
				lastUnderscore = true
			}
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '.' || r == '-':
			b.WriteRune(r)
			lastUnderscore = false
		}
	}
	return strings.Trim(b.String(), "_")
}
