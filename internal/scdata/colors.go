// Package scdata holds static game data: player color swatches, race
// letters and ordering, game speed timing, and the in-game text control code
// converter.
package scdata

// Swatch is one player color: its display name and packed 24-bit RGB value.
type Swatch struct {
	Name  string
	Color int
}

// swatches maps a color slot ID to its swatch, in the game's slot order.
var swatches = []Swatch{
	{"red", 0xf40404},
	{"blue", 0x0c48cc},
	{"teal", 0x2cb494},
	{"purple", 0x88409c},
	{"orange", 0xf88c14},
	{"brown", 0x703014},
	{"white", 0xcce0d0},
	{"yellow", 0xfcfc38},
	{"green", 0x088008},
	{"pale-yellow", 0xfcfc7c},
	{"tan", 0xecc4b0},
	{"dark-aqua", 0x4068d4},
	{"pale-green", 0x74a47c},
	{"blueish-grey", 0x9090b8},
	{"pale-yellow-2", 0xfcfc7c},
	{"cyan", 0x00e4fc},
	{"pink", 0xffc4e4},
	{"olive", 0x787878},
	{"lime", 0xd2f53c},
	{"navy", 0x0000e6},
	{"magenta", 0xf032e6},
	{"grey", 0x808080},
	{"black", 0x3c3c3c},
}

// fallbackSwatch is used for color IDs outside the known table. The game
// renders unknown colors as black.
var fallbackSwatch = Swatch{"black", 0x000000}

// SwatchFromSlotID returns the swatch name for a color slot ID.
func SwatchFromSlotID(id int) string {
	if id < 0 || id >= len(swatches) {
		return fallbackSwatch.Name
	}
	return swatches[id].Name
}

// ColorFromSwatch returns the packed RGB value for a swatch name.
func ColorFromSwatch(name string) int {
	for _, s := range swatches {
		if s.Name == name {
			return s.Color
		}
	}
	return fallbackSwatch.Color
}

// ToRGB splits a packed 24-bit color into its R, G, B bytes.
func ToRGB(color int) (r, g, b int) {
	return (color >> 16) & 0xff, (color >> 8) & 0xff, color & 0xff
}

// Brightness returns the perceptual brightness of an RGB color, weighted per
// channel per ITU-R BT.709 and averaged over the three channels.
func Brightness(r, g, b int) float64 {
	return (float64(r)*0.2126 + float64(g)*0.7152 + float64(b)*0.0722) / 3
}

// foregroundThreshold was picked visually: swatches brighter than this get
// black text, darker ones get white.
const foregroundThreshold = 50

// PickForegroundRGB returns black or white, whichever stays legible on top
// of the given background color.
func PickForegroundRGB(r, g, b int) (fr, fg, fb int) {
	if Brightness(r, g, b) > foregroundThreshold {
		return 0, 0, 0
	}
	return 255, 255, 255
}
