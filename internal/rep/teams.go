package rep

import (
	"github.com/pable/go-screp-view/internal/model"
	"github.com/pable/go-screp-view/internal/scdata"
)

// groupIntoTeams groups non-observer players into teams, in first-seen
// order. When every player carries the same raw team id the match is not a
// team game and each player becomes their own group, keyed by player id.
func groupIntoTeams(players []model.RawPlayer) (groups [][]model.RawPlayer, isTeamGame bool) {
	distinct := map[int]bool{}
	for _, p := range players {
		distinct[p.Team] = true
	}
	isTeamGame = len(distinct) > 1

	key := func(p model.RawPlayer) int {
		if isTeamGame {
			return p.Team
		}
		return p.ID
	}

	index := map[int]int{}
	for _, p := range players {
		k := key(p)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], p)
	}
	return groups, isTeamGame
}

// buildPlayer projects a raw player slot onto the display model.
func buildPlayer(p model.RawPlayer, descs map[int]model.RawPlayerDesc, canonicalID int) model.Player {
	desc := descs[p.ID]
	return model.Player{
		ID:             p.ID,
		Slot:           p.SlotID,
		Name:           p.Name,
		Race:           scdata.RaceLetter(p.Race.Name),
		APM:            desc.APM,
		EAPM:           desc.EAPM,
		TeamID:         canonicalID,
		ColorSwatch:    scdata.SwatchFromSlotID(p.Color.ID),
		StartDirection: desc.StartDirection,
		IsCPU:          p.IsCPU(),
		IsObserver:     p.Observer,
	}
}

// buildTeams assigns players to teams and gives every team a canonical id.
//
// The raw team id is not display-safe: some game modes tag every player with
// the same team id even when they are opponents. In that degenerate case
// the canonical id falls back to each team's first player's raw player id;
// otherwise it is the raw team id. Downstream winner comparison and display
// grouping use the canonical id only.
func buildTeams(groups [][]model.RawPlayer, descs map[int]model.RawPlayerDesc, winningTeam int) []model.Team {
	if len(groups) == 0 {
		return nil
	}

	sharedID := true
	for _, g := range groups {
		if g[0].Team != groups[0][0].Team {
			sharedID = false
			break
		}
	}

	teams := make([]model.Team, 0, len(groups))
	for _, g := range groups {
		id := g[0].Team
		canonicalID := id
		if sharedID {
			canonicalID = g[0].ID
		}

		onlyCPUs, onlyHumans := true, true
		for _, p := range g {
			if p.IsCPU() {
				onlyHumans = false
			} else {
				onlyCPUs = false
			}
		}

		players := make([]model.Player, 0, len(g))
		for _, p := range g {
			players = append(players, buildPlayer(p, descs, canonicalID))
		}

		teams = append(teams, model.Team{
			ID:            id,
			CanonicalID:   canonicalID,
			IsWinningTeam: id == winningTeam,
			IsOnlyCPUs:    onlyCPUs,
			IsOnlyHumans:  onlyHumans,
			Players:       players,
		})
	}
	return teams
}
