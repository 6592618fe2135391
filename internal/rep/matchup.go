package rep

import (
	"strings"

	"github.com/pable/go-screp-view/internal/scdata"
)

// summarizeMatchup builds the "v"-joined race matchup label from each team's
// race letters, plus a canonicalized variant.
//
// Canonicalization only applies to matches of exactly two one-player teams:
// the two letters are put in the fixed pair order so non-mirror labels come
// out as one of PvT, TvZ, ZvP regardless of team order. Any other team shape
// keeps the display order unchanged.
func summarizeMatchup(teamRaces [][]string) (raw, canonical string) {
	sides := make([]string, 0, len(teamRaces))
	for _, races := range teamRaces {
		sides = append(sides, strings.Join(races, ""))
	}
	raw = strings.Join(sides, "v")

	is1v1 := len(teamRaces) == 2 && len(teamRaces[0]) == 1 && len(teamRaces[1]) == 1
	if !is1v1 {
		return raw, raw
	}

	a, b := sides[0], sides[1]
	if !scdata.RacesOrdered(a, b) {
		a, b = b, a
	}
	return raw, a + "v" + b
}
