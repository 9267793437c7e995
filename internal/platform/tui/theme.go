package tui

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/colorguess/internal/core"
)

// Swatch block size in terminal cells (content, without border).
const (
	swatchWidth  = 12
	swatchHeight = 3
)

// fadeAmount is how far a wrong swatch is blended toward the background.
const fadeAmount = 0.75

var (
	black = core.RGB{}
	white = core.RGB{R: 255, G: 255, B: 255}
)

// Theme contains all visual styles for the board.
// Styles are created from a lipgloss renderer so SSH sessions get
// their own color profile.
type Theme struct {
	// Background is the color faded swatches blend toward.
	Background core.RGB

	// Header styles
	Header      lipgloss.Style
	Title       lipgloss.Style
	Target      lipgloss.Style
	TargetEmph  lipgloss.Style
	HeaderMuted lipgloss.Style

	// Control row
	Button         lipgloss.Style
	ButtonSelected lipgloss.Style

	// Board
	Message lipgloss.Style
	Swatch  lipgloss.Style
	Empty   lipgloss.Style
	Streak  lipgloss.Style
	Value   lipgloss.Style

	// Overlays
	Modal      lipgloss.Style
	ModalTitle lipgloss.Style
	Help       lipgloss.Style

	cursorBorder    lipgloss.Color
	highlightBorder lipgloss.Border
}

// NewTheme builds the default theme on the given renderer.
// A nil renderer uses lipgloss's default renderer.
func NewTheme(r *lipgloss.Renderer) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	bg := core.RGB{R: 35, G: 35, B: 35}

	return Theme{
		Background: bg,

		Header:      r.NewStyle().Padding(1, 2).Align(lipgloss.Center).Background(lipgloss.Color("#4682b4")),
		Title:       r.NewStyle().Foreground(lipgloss.Color("#ffffff")),
		Target:      r.NewStyle().Foreground(lipgloss.Color("#ffffff")),
		TargetEmph:  r.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true),
		HeaderMuted: r.NewStyle().Foreground(lipgloss.Color("#dddddd")),

		Button:         r.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("245")),
		ButtonSelected: r.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#ffffff")).Bold(true),

		Message: r.NewStyle().Bold(true),
		Swatch:  r.NewStyle().Width(swatchWidth).Height(swatchHeight).Align(lipgloss.Center, lipgloss.Center),
		Empty:   r.NewStyle().Foreground(lipgloss.Color("240")).Italic(true),
		Streak:  r.NewStyle().Foreground(lipgloss.Color("245")),
		Value:   r.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),

		Modal: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("255")).
			Padding(1, 3),
		ModalTitle: r.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Help:       r.NewStyle().Foreground(lipgloss.Color("241")),

		cursorBorder:    lipgloss.Color("250"),
		highlightBorder: lipgloss.ThickBorder(),
	}
}

// SwatchStyle returns the block style for one swatch slot.
func (t Theme) SwatchStyle(s SwatchView, cursor bool) lipgloss.Style {
	fill := s.Color
	if s.Faded {
		fill = blend(s.Color, t.Background, fadeAmount)
	}

	style := t.Swatch.
		Background(lipgloss.Color(fill.Hex())).
		Foreground(lipgloss.Color(contrast(fill).Hex()))

	switch {
	case s.Highlight:
		style = style.Border(t.highlightBorder).BorderForeground(lipgloss.Color(s.HighlightColor.Hex()))
	case cursor && s.Enabled:
		style = style.Border(lipgloss.RoundedBorder()).BorderForeground(t.cursorBorder)
	default:
		style = style.Border(lipgloss.HiddenBorder())
	}
	return style
}

// ToneStyle returns a message style in the given tone.
func (t Theme) ToneStyle(tone core.RGB) lipgloss.Style {
	return t.Message.Foreground(lipgloss.Color(tone.Hex()))
}

// HeaderStyle returns the header bar, tinted with the accent when set.
func (t Theme) HeaderStyle(accent core.RGB, ok bool) lipgloss.Style {
	if !ok {
		return t.Header
	}
	return t.Header.Background(lipgloss.Color(accent.Hex()))
}

// ModeStyle returns the style for a difficulty button.
func (t Theme) ModeStyle(selected bool, accent core.RGB) lipgloss.Style {
	if !selected {
		return t.Button
	}
	return t.ButtonSelected.Background(lipgloss.Color(accent.Hex()))
}

func toColorful(c core.RGB) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(c colorful.Color) core.RGB {
	r, g, b := c.Clamped().RGB255()
	return core.RGB{R: r, G: g, B: b}
}

// blend mixes c toward bg by amount in [0,1].
func blend(c, bg core.RGB, amount float64) core.RGB {
	return fromColorful(toColorful(c).BlendRgb(toColorful(bg), amount))
}

// contrast picks black or white text for a swatch background.
func contrast(bg core.RGB) core.RGB {
	l, _, _ := toColorful(bg).Lab()
	if l > 0.6 {
		return black
	}
	return white
}
