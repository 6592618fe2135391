package rep

import "github.com/pable/go-screp-view/internal/model"

// defaultTileSize is the world-unit size of one map tile.
const defaultTileSize = 32

// quadrant records which side of the map center a start location is on.
type quadrant struct {
	onLeftSide bool
	onTopSide  bool
}

// classifySpawns classifies the geometric relationship between the two
// players' spawn points on a four-start-location map.
//
// Returns nil unless exactly two non-observer players are present and the
// map defines exactly four start locations (or a player's slot has no start
// location). When non-nil, exactly one of IsCrossSpawns/IsCloseSpawns holds.
func classifySpawns(mapWidth, mapHeight int, startLocations []model.RawStartLocation, players []model.Player, tileSize int) *model.SpawnInfo {
	if len(players) != 2 || len(startLocations) != 4 {
		return nil
	}

	hCenter := mapWidth * tileSize / 2
	vCenter := mapHeight * tileSize / 2

	bySlot := make(map[int]quadrant, len(startLocations))
	for _, loc := range startLocations {
		bySlot[loc.SlotID] = quadrant{
			onLeftSide: loc.X < hCenter,
			onTopSide:  loc.Y < vCenter,
		}
	}

	a, ok := bySlot[players[0].Slot]
	if !ok {
		return nil
	}
	b, ok := bySlot[players[1].Slot]
	if !ok {
		return nil
	}

	sameHorizontal := a.onLeftSide == b.onLeftSide
	sameVertical := a.onTopSide == b.onTopSide
	cross := !sameHorizontal && !sameVertical

	return &model.SpawnInfo{
		IsCrossSpawns:  cross,
		IsTLBRSpawns:   cross && a.onTopSide,
		IsBLTRSpawns:   cross && !a.onTopSide,
		IsCloseSpawns:  sameHorizontal || sameVertical,
		IsTopSpawns:    sameVertical && a.onTopSide,
		IsBottomSpawns: sameVertical && !a.onTopSide,
		IsLeftSpawns:   sameHorizontal && a.onLeftSide,
		IsRightSpawns:  sameHorizontal && !a.onLeftSide,
	}
}
