package host

import "github.com/gdamore/tcell/v2"

// Theme holds the styles the grid draws with
type Theme struct {
	Cell      tcell.Style
	Header    tcell.Style
	Separator tcell.Style
	Badge     tcell.Style
	Band      tcell.Style
	Status    tcell.Style
}

// DefaultTheme returns the built-in styles
func DefaultTheme() Theme {
	base := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorSilver)
	return Theme{
		Cell:      base,
		Header:    base.Foreground(tcell.ColorWhite).Bold(true),
		Separator: base.Foreground(tcell.ColorGray),
		Badge:     base.Foreground(tcell.ColorRed),
		Band:      base.Foreground(tcell.ColorYellow).Bold(true),
		Status:    tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite),
	}
}
