package terminal

// Standard colour indices shared by all backends. In 8-colour mode these
// combine directly into device colour flags; in extended mode they pass
// through to the capability-resolved sequences unchanged.
const (
	ColourBlack = iota
	ColourRed
	ColourGreen
	ColourYellow
	ColourBlue
	ColourMagenta
	ColourCyan
	ColourWhite
)

// Cell attributes. Values are stable for compatibility with existing
// consumers; AttrNormal is an explicit "reset" rather than a zero value.
const (
	AttrBold      = 1
	AttrNormal    = 2
	AttrReverse   = 3
	AttrUnderline = 4
)
