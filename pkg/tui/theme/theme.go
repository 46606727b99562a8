// Package theme holds the Lip Gloss styles of the sidebar.
package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Title  lipgloss.Style
	List   ListTheme
	Footer FooterTheme
}

// ListTheme styles list headers and item rows.
type ListTheme struct {
	Header    lipgloss.Style
	Count     lipgloss.Style
	Marker    lipgloss.Style
	Item      lipgloss.Style
	Alternate lipgloss.Style
	Link      lipgloss.Style
	Divider   lipgloss.Style
	Cursor    lipgloss.Style
	Dragging  lipgloss.Style
	Empty     lipgloss.Style
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
	Prompt lipgloss.Style
}

// Palette is the pair of backgrounds rows alternate between.
type Palette struct {
	Base      string
	Alternate string
	Accent    string
}

// DetectPalette picks row backgrounds for the terminal's background.
func DetectPalette() Palette {
	return NewPalette(termenv.HasDarkBackground())
}

// NewPalette derives the alternate row shade by blending the base background
// a little towards the foreground.
func NewPalette(dark bool) Palette {
	base, fg, accent := "#ffffff", "#1f2335", "#2e7de9"
	if dark {
		base, fg, accent = "#1a1b26", "#c0caf5", "#7aa2f7"
	}
	b, _ := colorful.Hex(base)
	f, _ := colorful.Hex(fg)
	return Palette{
		Base:      base,
		Alternate: b.BlendLab(f, 0.08).Clamped().Hex(),
		Accent:    accent,
	}
}

// Default returns the built-in theme for p.
func Default(p Palette) Theme {
	accent := lipgloss.Color(p.Accent)
	faint := lipgloss.Color("244")

	return Theme{
		Title: lipgloss.NewStyle().Bold(true).Foreground(accent),
		List: ListTheme{
			Header:    lipgloss.NewStyle().Bold(true),
			Count:     lipgloss.NewStyle().Foreground(faint),
			Marker:    lipgloss.NewStyle().Foreground(faint),
			Item:      lipgloss.NewStyle(),
			Alternate: lipgloss.NewStyle().Background(lipgloss.Color(p.Alternate)),
			Link:      lipgloss.NewStyle().Foreground(accent).Underline(true),
			Divider:   lipgloss.NewStyle().Underline(true).UnderlineSpaces(true),
			Cursor:    lipgloss.NewStyle().Reverse(true),
			Dragging:  lipgloss.NewStyle().Bold(true).Foreground(accent).Reverse(true),
			Empty:     lipgloss.NewStyle().Foreground(faint).Italic(true),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(faint),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
			Prompt: lipgloss.NewStyle().Foreground(accent),
		},
	}
}
