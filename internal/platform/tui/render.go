package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/farmtofeast/harvest-hustle/internal/core"
)

// The 128x64 device display maps onto a character grid: each cell covers
// 2 display units horizontally and 4 vertically.
const (
	cellW = 2
	cellH = 4

	// ViewW and ViewH are the playfield dimensions in terminal cells.
	ViewW = core.DeviceW / cellW
	ViewH = core.DeviceH / cellH
)

// glyphs maps sprite kinds to their terminal representation. The device
// draws 8x8 bitmaps; a single rune stands in for each.
var glyphs = map[core.SpriteKind]rune{
	core.SpritePlayer: '@',
	core.SpriteBasket: 'U',
	core.SpriteTree:   'T',
	core.SpriteWave:   '~',

	"egg":       'o',
	"milk":      'i',
	"wheat":     'w',
	"dough":     'd',
	"bacon":     'b',
	"tomato":    '0',
	"berry":     '*',
	"honey":     'h',
	"chicken":   'c',
	"duck":      'u',
	"fish":      'f',
	"lemon":     'l',
	"carrot":    'v',
	"potato":    'p',
	"cheese":    'C',
	"turkey":    'k',
	"cranberry": 'r',
	"shell":     's',
	"seaweed":   'z',
	"lamb":      'L',
	"herbs":     'y',
	"garlic":    'g',
	"grapes":    '8',
	"cow":       'M',
	"pig":       'P',
	"bee":       'B',
	"shark":     '^',
}

// Rasterize draws a scene into the screen buffer. Sprites go down first,
// then bars, then labels, so text always stays readable.
func Rasterize(scene core.Scene, s *core.Screen) {
	s.Clear()

	switch scene.Background {
	case core.BackgroundSide:
		// Ground line just below the catch zone.
		s.DrawHLine(0, 13, s.Width(), '=')
	case core.BackgroundTopDown:
		// Arena border around the roaming bounds.
		s.DrawBox(4, 3, s.Width()-8, 10)
	}

	for _, sp := range scene.Sprites {
		g, ok := glyphs[sp.Kind]
		if !ok {
			g = '?'
		}
		s.Set(int(sp.X)/cellW, int(sp.Y)/cellH, g)
	}

	for _, b := range scene.Bars {
		x := b.X / cellW
		y := b.Y / cellH
		w := core.Max(1, b.W/cellW)
		filled := int(b.Progress * float64(w))
		for i := 0; i < w; i++ {
			r := '░'
			if i < filled {
				r = '█'
			}
			s.Set(x+i, y, r)
		}
	}

	for _, l := range scene.Labels {
		s.DrawText(l.X/cellW, l.Y/cellH, l.Text)
	}
}

var (
	screenStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("70")).
			Foreground(lipgloss.Color("15"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	cueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Bold(true)
)

// RenderScreen converts a Screen buffer to a framed string for display.
func RenderScreen(s *core.Screen) string {
	return screenStyle.Render(s.String())
}
