package domain

// ColorPair names one entry of the fixed terminal palette.
type ColorPair int

const (
	ColorDefault ColorPair = iota
	ColorPlain
	ColorAffirmative
	ColorInverse
	ColorActive
	ColorMuted
	ColorError
)

func (c ColorPair) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorPlain:
		return "plain"
	case ColorAffirmative:
		return "affirmative"
	case ColorInverse:
		return "inverse"
	case ColorActive:
		return "active"
	case ColorMuted:
		return "muted"
	case ColorError:
		return "error"
	default:
		return "unknown"
	}
}

// Style is the attribute set applied to a run of text appended to a buffer.
type Style struct {
	Bold  bool
	Dim   bool
	Color ColorPair
}

var (
	StylePlain     = Style{}
	StyleBold      = Style{Bold: true}
	StyleDim       = Style{Dim: true}
	StyleMuted     = Style{Color: ColorMuted}
	StyleGood      = Style{Bold: true, Color: ColorAffirmative}
	StyleBad       = Style{Bold: true, Color: ColorError}
	StyleIncoming  = Style{Bold: true, Color: ColorAffirmative}
	StyleOutgoing  = Style{Bold: true}
	StyleHighlight = Style{Bold: true}
)
