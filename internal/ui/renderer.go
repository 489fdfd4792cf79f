package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/cavern/internal/entity"
	"github.com/samdwyer/cavern/internal/world"
)

// regionPalette colors floor regions in region view.
var regionPalette = []tcell.Color{
	tcell.ColorTeal,
	tcell.ColorOlive,
	tcell.ColorPurple,
	tcell.ColorNavy,
	tcell.ColorMaroon,
	tcell.ColorGreen,
}

// Theme holds the colors used for cave tiles.
type Theme struct {
	Wall  tcell.Color
	Floor tcell.Color
}

// DefaultTheme is used when no preset colors are available.
var DefaultTheme = Theme{Wall: tcell.ColorDarkGray, Floor: tcell.ColorGray}

// View describes what to draw in one frame.
type View struct {
	Cave     *world.Cave
	Explorer *entity.Explorer
	// ShowRegions tints each surviving floor region with its own color.
	ShowRegions bool
	Status      string
}

// Renderer handles drawing the cave to a canvas.
type Renderer struct {
	canvas Canvas
	theme  Theme
}

// NewRenderer creates a new renderer for the given canvas.
func NewRenderer(canvas Canvas, theme Theme) *Renderer {
	return &Renderer{canvas: canvas, theme: theme}
}

// SetTheme replaces the tile colors.
func (r *Renderer) SetTheme(theme Theme) {
	r.theme = theme
}

// Render draws the cave, the explorer and the status line.
// The view is offset so the explorer stays visible on small terminals.
func (r *Renderer) Render(v View) {
	r.canvas.Clear()

	width, height := r.canvas.Size()
	mapHeight := height - 1 // last line is the status bar
	offX, offY := viewportOffset(v, width, mapHeight)

	grid := v.Cave.Grid
	for sy := 0; sy < mapHeight; sy++ {
		for sx := 0; sx < width; sx++ {
			x, y := sx+offX, sy+offY
			if !grid.InBounds(x, y) {
				continue
			}
			tile := grid.At(x, y)
			style := r.tileStyle(tile)
			if v.ShowRegions {
				if idx := v.Cave.RegionIndexAt(x, y); idx >= 0 {
					style = style.Foreground(regionPalette[idx%len(regionPalette)])
				}
			}
			r.canvas.SetContent(sx, sy, tile.Rune(), style)
		}
	}

	if v.Explorer != nil {
		explorerStyle := tcell.StyleDefault.
			Foreground(tcell.ColorYellow).
			Bold(true)
		ex, ey := v.Explorer.Position()
		r.canvas.SetContent(ex-offX, ey-offY, v.Explorer.Symbol, explorerStyle)
	}

	r.renderMessage(v.Status, height-1)
	r.canvas.Show()
}

// viewportOffset centres the explorer when the cave is larger than the screen.
func viewportOffset(v View, width, height int) (int, int) {
	if v.Explorer == nil {
		return 0, 0
	}
	size := v.Cave.Size()
	ex, ey := v.Explorer.Position()
	return axisOffset(ex, size, width), axisOffset(ey, size, height)
}

func axisOffset(pos, size, span int) int {
	if span <= 0 || size <= span {
		return 0
	}
	off := pos - span/2
	return max(0, min(off, size-span))
}

// tileStyle returns the appropriate style for a tile type.
func (r *Renderer) tileStyle(tile world.Tile) tcell.Style {
	switch tile {
	case world.TileWall:
		return tcell.StyleDefault.Foreground(r.theme.Wall)
	case world.TileFloor:
		return tcell.StyleDefault.Foreground(r.theme.Floor)
	default:
		return tcell.StyleDefault
	}
}

// renderMessage draws msg on line y.
func (r *Renderer) renderMessage(msg string, y int) {
	if y < 0 {
		return
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range []rune(msg) {
		r.canvas.SetContent(i, y, ch, style)
	}
}
