// Package rep derives the display-ready match model from a decoded replay:
// team assignment, matchup labels, spawn classification, the chat timeline
// and match/map metadata.
package rep

import (
	"strings"

	"github.com/pable/go-screp-view/internal/mapname"
	"github.com/pable/go-screp-view/internal/model"
	"github.com/pable/go-screp-view/internal/scdata"
)

// Build computes the match model for a decoded replay. The source string is
// a caller-side identifier (usually the replay's filename without extension)
// included in the model's search terms.
//
// Build is total: an empty raw record yields an empty sentinel model so
// rendering degrades gracefully instead of failing.
func Build(raw *model.RawMatch, source string) *model.MatchModel {
	if raw.IsEmpty() {
		return &model.MatchModel{}
	}

	header := raw.Header
	matchSpeed := scdata.Slugify(header.Speed.Name)
	durationMs := scdata.FramesToMs(header.Frames, matchSpeed)

	descs := make(map[int]model.RawPlayerDesc, len(raw.Computed.PlayerDescs))
	for _, d := range raw.Computed.PlayerDescs {
		descs[d.PlayerID] = d
	}

	// Only players that were actually playing count toward teams.
	var playing []model.RawPlayer
	for _, p := range header.Players {
		if !p.Observer {
			playing = append(playing, p)
		}
	}

	groups, isTeamGame := groupIntoTeams(playing)
	teams := buildTeams(groups, descs, raw.Computed.WinnerTeam)

	teamRaces := make([][]string, 0, len(teams))
	for _, team := range teams {
		races := make([]string, 0, len(team.Players))
		for _, p := range team.Players {
			races = append(races, p.Race)
		}
		teamRaces = append(teamRaces, races)
	}
	matchupSummary, matchupSorted := summarizeMatchup(teamRaces)

	canonicalByPlayer := make(map[int]int)
	for _, team := range teams {
		for _, p := range team.Players {
			canonicalByPlayer[p.ID] = team.CanonicalID
		}
	}

	// All slots, observers included, for the chat sender lookup. Observers
	// belong to no team and get canonical id -1.
	allPlayers := make([]model.Player, 0, len(header.Players))
	var playingPlayers []model.Player
	for _, p := range header.Players {
		canonicalID, ok := canonicalByPlayer[p.ID]
		if !ok {
			canonicalID = -1
		}
		derived := buildPlayer(p, descs, canonicalID)
		allPlayers = append(allPlayers, derived)
		if !p.Observer {
			playingPlayers = append(playingPlayers, derived)
		}
	}

	var humans, cpus int
	var searchTerms []string
	for _, p := range playing {
		if p.IsCPU() {
			cpus++
			continue
		}
		humans++
		searchTerms = append(searchTerms, p.Name)
	}
	if source != "" {
		searchTerms = append(searchTerms, source)
	}

	mapNameClean := strings.TrimSpace(scdata.StripCodes(raw.MapData.Name))
	parsed := mapname.Parse(mapNameClean)

	allTeamsOfOne := true
	for _, team := range teams {
		if len(team.Players) != 1 {
			allTeamsOfOne = false
		}
	}

	sameRawID := len(teams) == 2
	for _, team := range teams {
		if team.ID != teams[0].ID {
			sameRawID = false
		}
	}

	return &model.MatchModel{
		MatchupSummary: matchupSummary,
		MatchupSorted:  matchupSorted,
		WinningTeam:    raw.Computed.WinnerTeam,
		TeamRaces:      teamRaces,
		Teams:          teams,
		Map: model.MapInfo{
			Name: mapNameClean,
			NameData: model.MapNameData{
				CleanName:          parsed.CleanName,
				CleanNameVersioned: parsed.CleanNameVersioned,
				Version:            parsed.Version,
				Players:            parsed.Players,
				Tags:               parsed.Tags,
				IsIccup:            parsed.IsIccup,
			},
			Description:    strings.TrimSpace(scdata.StripCodes(raw.MapData.Description)),
			Tileset:        scdata.Slugify(raw.MapData.TileSet.Name),
			Width:          header.MapWidth,
			Height:         header.MapHeight,
			NameRaw:        raw.MapData.Name,
			DescriptionRaw: raw.MapData.Description,
		},
		Match: model.MatchInfo{
			Game:              scdata.Slugify(header.Engine.Name),
			Type:              scdata.Slugify(header.Type.ShortName),
			Speed:             matchSpeed,
			Frames:            header.Frames,
			DurationMs:        durationMs,
			DurationFormatted: scdata.FormatDuration(durationMs),
			Date:              header.StartTime,
			Title:             header.Title,
			Host:              header.Host,
		},
		Chat:        buildChat(raw.Computed.ChatCmds, allPlayers, matchSpeed),
		Spawns:      classifySpawns(header.MapWidth, header.MapHeight, raw.MapData.StartLocations, playingPlayers, defaultTileSize),
		SearchTerms: searchTerms,

		Is1v1:                 len(playing) == 2,
		IsTeamGame:            isTeamGame,
		IsMultiplayerFFA:      len(teams) > 2 && allTeamsOfOne,
		IsSameTeam1v1:         sameRawID,
		IsSoloVsCPU:           humans == 1 && cpus > 0,
		IsMultipleHumansVsCPU: humans > 1 && cpus > 0,
		IsHumanVsHuman:        humans > 1 && cpus == 0,
		IsSoloVsNobody:        humans == 1 && cpus == 0,
	}
}
