package scdata

import "strings"

// CodeType classifies an in-game text control code.
type CodeType int

const (
	// CodeNoop is a recognized code with no color meaning (or an unknown
	// code): the following text renders unchanged.
	CodeNoop CodeType = iota
	// CodeColor switches the following text to a fixed color.
	CodeColor
	// CodeInvalid is a code the game renders as pure black.
	CodeInvalid
)

// StyleCode describes one control code's rendering instruction.
type StyleCode struct {
	Type  CodeType
	Name  string
	Color int // packed RGB, valid when Type == CodeColor
}

// codeTable maps the in-game control bytes used in map names and chat to
// rendering instructions. Codes absent from the table are no-ops.
var codeTable = map[byte]StyleCode{
	0x02: {CodeColor, "pale-blue", 0xb8b8e8},
	0x03: {CodeColor, "yellow", 0xdcdc3c},
	0x04: {CodeColor, "white", 0xffffff},
	0x05: {CodeColor, "grey", 0x747474},
	0x06: {CodeColor, "red", 0xc81818},
	0x07: {CodeColor, "green", 0x10fc18},
	0x08: {CodeColor, "red-p1", 0xf40404},
	0x0b: {CodeInvalid, "invisible", 0},
	0x0e: {CodeColor, "blue", 0x0c48cc},
	0x0f: {CodeColor, "teal", 0x2cb494},
	0x10: {CodeColor, "purple", 0x88409c},
	0x11: {CodeColor, "orange", 0xf88c14},
	0x14: {CodeInvalid, "invisible", 0},
	0x15: {CodeColor, "brown", 0x703014},
	0x16: {CodeColor, "pale-white", 0xcce0d0},
	0x17: {CodeColor, "bright-yellow", 0xfcfc38},
	0x18: {CodeColor, "dark-green", 0x088008},
	0x19: {CodeColor, "pale-yellow", 0xfcfc7c},
	0x1c: {CodeColor, "dark-aqua", 0x4068d4},
	0x1d: {CodeColor, "pale-green", 0x74a47c},
	0x1e: {CodeColor, "blueish-grey", 0x9090b8},
	0x1f: {CodeColor, "cyan", 0x00e4fc},
}

// isControlByte reports whether b is a style control byte. Ordinary
// whitespace controls are literal text.
func isControlByte(b byte) bool {
	if b == '\t' || b == '\n' || b == '\r' {
		return false
	}
	return b < 0x20
}

// StripCodes removes all style control bytes from a string, leaving the
// readable text.
func StripCodes(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if isControlByte(s[i]) {
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// Wrapper renders one text segment according to a style instruction.
type Wrapper func(string) string

// WrapperFactory produces a Wrapper for a style instruction. Implementations
// decide the output medium (terminal escapes, HTML, plain text).
type WrapperFactory func(code StyleCode) Wrapper

// identity passes text through unchanged; the fallback for unknown codes.
func identity(s string) string { return s }

// TextConverter rewrites strings containing in-game control codes using
// wrappers from a caller-supplied factory.
type TextConverter struct {
	factory WrapperFactory
}

// NewTextConverter returns a converter backed by the given factory.
func NewTextConverter(factory WrapperFactory) *TextConverter {
	return &TextConverter{factory: factory}
}

// wrapperFor resolves the wrapper for a control byte. Unknown control codes
// map to the identity wrapper.
func (c *TextConverter) wrapperFor(b byte) Wrapper {
	code, ok := codeTable[b]
	if !ok {
		return identity
	}
	w := c.factory(code)
	if w == nil {
		return identity
	}
	return w
}

// Convert rewrites s, applying each control code's wrapper to the text that
// follows it, up to the next control code.
func (c *TextConverter) Convert(s string) string {
	var b strings.Builder
	wrap := identity
	segStart := 0
	for i := 0; i < len(s); i++ {
		if !isControlByte(s[i]) {
			continue
		}
		if i > segStart {
			b.WriteString(wrap(s[segStart:i]))
		}
		wrap = c.wrapperFor(s[i])
		segStart = i + 1
	}
	if segStart < len(s) {
		b.WriteString(wrap(s[segStart:]))
	}
	return b.String()
}
