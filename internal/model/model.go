package model

import "time"

// ---- Raw replay data as decoded by screp ----

// IDValue is screp's {ID, Name} pair used for engines, speeds, tilesets etc.
type IDValue struct {
	ID   int    `json:"ID"`
	Name string `json:"Name"`
}

// MatchType additionally carries a short name ("1v1", "TvB", "UMS", ...).
type MatchType struct {
	ID        int    `json:"ID"`
	Name      string `json:"Name"`
	ShortName string `json:"ShortName"`
}

// RawPlayer is one player slot from the replay header.
type RawPlayer struct {
	ID       int     `json:"ID"`
	SlotID   int     `json:"SlotID"`
	Name     string  `json:"Name"`
	Race     IDValue `json:"Race"`
	Color    IDValue `json:"Color"`
	Team     int     `json:"Team"`
	Observer bool    `json:"Observer"`
}

// CPUPlayerID is the raw player ID screp assigns to computer players.
const CPUPlayerID = 255

// IsCPU reports whether this slot is computer controlled.
func (p *RawPlayer) IsCPU() bool {
	return p.ID == CPUPlayerID
}

// RawHeader holds the replay header fields we consume.
type RawHeader struct {
	Engine    IDValue     `json:"Engine"`
	Frames    int         `json:"Frames"`
	StartTime time.Time   `json:"StartTime"`
	Title     string      `json:"Title"`
	Map       string      `json:"Map"`
	MapWidth  int         `json:"MapWidth"`
	MapHeight int         `json:"MapHeight"`
	Type      MatchType   `json:"Type"`
	SubType   int         `json:"SubType"`
	Speed     IDValue     `json:"Speed"`
	Host      string      `json:"Host"`
	Players   []RawPlayer `json:"Players"`
}

// RawStartLocation is one start location from the map data section.
type RawStartLocation struct {
	X      int `json:"X"`
	Y      int `json:"Y"`
	SlotID int `json:"SlotID"`
}

// RawMapData holds the map data section. Name and Description may contain
// in-game control codes.
type RawMapData struct {
	Name           string             `json:"Name"`
	Description    string             `json:"Description"`
	TileSet        IDValue            `json:"TileSet"`
	StartLocations []RawStartLocation `json:"StartLocations"`
}

// RawChatCmd is one in-game chat command.
type RawChatCmd struct {
	Frame        int    `json:"Frame"`
	SenderSlotID int    `json:"SenderSlotID"`
	Message      string `json:"Message"`
}

// RawPlayerDesc is one row of screp's computed per-player stats.
type RawPlayerDesc struct {
	PlayerID       int `json:"PlayerID"`
	APM            int `json:"APM"`
	EAPM           int `json:"EAPM"`
	StartDirection int `json:"StartDirection"`
	LastCmdFrame   int `json:"LastCmdFrame"`
}

// RawComputed holds screp's computed section.
type RawComputed struct {
	WinnerTeam  int             `json:"WinnerTeam"`
	ChatCmds    []RawChatCmd    `json:"ChatCmds"`
	PlayerDescs []RawPlayerDesc `json:"PlayerDescs"`
}

// RawMatch is the full decoded replay as produced by the external parser.
type RawMatch struct {
	Header   RawHeader   `json:"Header"`
	Computed RawComputed `json:"Computed"`
	MapData  RawMapData  `json:"MapData"`
}

// IsEmpty reports whether the record carries no usable data. This is what the
// parser boundary hands us when screp could not read the file.
func (r *RawMatch) IsEmpty() bool {
	return r == nil || (len(r.Header.Players) == 0 && r.Header.Frames == 0)
}

// ---- Computed match model ----

// Player is the display-ready projection of a raw player slot.
type Player struct {
	ID             int
	Slot           int
	Name           string
	Race           string // single letter: T, P, Z, R
	APM            int
	EAPM           int
	TeamID         int // canonical team id
	ColorSwatch    string
	StartDirection int
	IsCPU          bool
	IsObserver     bool
}

// Team groups the players competing together.
type Team struct {
	ID            int // raw grouping key
	CanonicalID   int // id used for display and winner comparison
	IsWinningTeam bool
	IsOnlyCPUs    bool
	IsOnlyHumans  bool
	Players       []Player
}

// SpawnInfo classifies the spawn geometry of a two-player match on a
// four-start-location map. Exactly one of IsCrossSpawns/IsCloseSpawns holds.
type SpawnInfo struct {
	IsCrossSpawns  bool
	IsTLBRSpawns   bool
	IsBLTRSpawns   bool
	IsCloseSpawns  bool
	IsTopSpawns    bool
	IsBottomSpawns bool
	IsLeftSpawns   bool
	IsRightSpawns  bool
}

// ChatEntry is one display-ready chat message.
type ChatEntry struct {
	TimeMs        int
	TimeFormatted string
	SenderName    string
	SenderColor   string
	SenderRace    string
	Message       string
}

// MapNameData is the structured breakdown of a map title.
type MapNameData struct {
	CleanName          string
	CleanNameVersioned string
	Version            string
	Players            []string
	Tags               []string
	IsIccup            bool
}

// MapInfo is the replay's map identity.
type MapInfo struct {
	Name           string // control codes stripped
	NameData       MapNameData
	Description    string
	Tileset        string
	Width          int
	Height         int
	NameRaw        string
	DescriptionRaw string
}

// MatchInfo is the match-level metadata.
type MatchInfo struct {
	Game              string
	Type              string
	Speed             string
	Frames            int
	DurationMs        int
	DurationFormatted string
	Date              time.Time
	Title             string
	Host              string
}

// MatchModel is the computed match artifact. It is built once per raw match
// and never mutated afterwards.
type MatchModel struct {
	MatchupSummary string
	MatchupSorted  string
	WinningTeam    int
	TeamRaces      [][]string
	Teams          []Team

	Map   MapInfo
	Match MatchInfo

	Chat        []ChatEntry
	Spawns      *SpawnInfo
	SearchTerms []string

	Is1v1                 bool
	IsTeamGame            bool
	IsMultiplayerFFA      bool
	IsSameTeam1v1         bool
	IsSoloVsCPU           bool
	IsMultipleHumansVsCPU bool
	IsHumanVsHuman        bool
	IsSoloVsNobody        bool
}

// ---- Terminal layout model ----

// Align is a horizontal side.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// TerminalCell is one colorized cell of the matchup table. Width is the
// rendered glyph count excluding color escape sequences.
type TerminalCell struct {
	Text    string
	Align   Align
	PadSide Align
	Width   int
}

// TeamCells is one team's cells plus the id used for winner comparison.
type TeamCells struct {
	CanonicalID int
	Cells       []TerminalCell
}

// RowItem is either a composite team cell (even positions) or a separator
// token (odd positions).
type RowItem struct {
	Cell *TerminalCell
	Sep  string
}

// MatchRow is one match's alternating sequence of team cells and separators.
type MatchRow struct {
	Items []RowItem
}

// RepFile is the file-system identity of a replay file.
type RepFile struct {
	Filename string
	Dir      string
	Path     string
	Size     int64
}

// CachedRep is one row of the raw-output cache, for list output.
type CachedRep struct {
	Hash         string
	Filename     string
	Path         string
	Size         int64
	MapName      string
	Matchup      string
	MatchDate    string
	ScrepVersion string
	AddedAt      string
}
