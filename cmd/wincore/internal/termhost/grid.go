package termhost

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/wincore/pkg/geometry"
	"github.com/go-drift/wincore/pkg/theme"
)

// CellWidth and CellHeight are the physical pixels covered by one terminal
// cell.
const (
	CellWidth  = 8
	CellHeight = 16
)

type cell struct {
	ch rune
	fg color.RGBA
	bg color.RGBA
}

// Grid is a canvas that rasterizes drawing calls into terminal cells.
type Grid struct {
	cols, rows int
	cells      []cell
	clips      []geometry.Rect
}

// NewGrid returns a cols by rows grid cleared to background.
func NewGrid(cols, rows int, background color.RGBA) *Grid {
	g := &Grid{cols: cols, rows: rows, cells: make([]cell, cols*rows)}
	for i := range g.cells {
		g.cells[i] = cell{ch: ' ', fg: background, bg: background}
	}
	return g
}

// Size returns the grid dimensions in cells.
func (g *Grid) Size() (cols, rows int) {
	return g.cols, g.rows
}

// Cell returns the rune at column x and row y.
func (g *Grid) Cell(x, y int) rune {
	if x < 0 || y < 0 || x >= g.cols || y >= g.rows {
		return 0
	}
	return g.cells[y*g.cols+x].ch
}

// Row returns the text of row y without styling.
func (g *Grid) Row(y int) string {
	if y < 0 || y >= g.rows {
		return ""
	}
	runes := make([]rune, g.cols)
	for x := range g.cols {
		runes[x] = g.cells[y*g.cols+x].ch
	}
	return string(runes)
}

func (g *Grid) clip() geometry.Rect {
	if len(g.clips) == 0 {
		return geometry.RectXYWH(0, 0, geometry.UPx(g.cols*CellWidth), geometry.UPx(g.rows*CellHeight))
	}
	return g.clips[len(g.clips)-1]
}

// cellSpan converts a pixel rectangle to the half-open cell range it
// touches, limited to the grid.
func (g *Grid) cellSpan(rect geometry.Rect) (x0, y0, x1, y1 int) {
	x0 = max(0, int(rect.Origin.X)/CellWidth)
	y0 = max(0, int(rect.Origin.Y)/CellHeight)
	x1 = min(g.cols, (int(rect.Right())+CellWidth-1)/CellWidth)
	y1 = min(g.rows, (int(rect.Bottom())+CellHeight-1)/CellHeight)
	return x0, y0, x1, y1
}

func (g *Grid) visible(x, y int) bool {
	cx0, cy0, cx1, cy1 := g.cellSpan(g.clip())
	return x >= cx0 && x < cx1 && y >= cy0 && y < cy1
}

func (g *Grid) FillRect(rect geometry.Rect, c color.Color) {
	bg := toRGBA(c)
	x0, y0, x1, y1 := g.cellSpan(rect.Intersect(g.clip()))
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			g.cells[y*g.cols+x] = cell{ch: ' ', fg: bg, bg: bg}
		}
	}
}

func (g *Grid) StrokeRect(rect geometry.Rect, c color.Color) {
	fg := toRGBA(c)
	x0, y0, x1, y1 := g.cellSpan(rect)
	if x1-x0 < 2 || y1 <= y0 {
		return
	}
	if y1-y0 == 1 {
		g.put(x0, y0, '[', fg)
		g.put(x1-1, y0, ']', fg)
		return
	}
	for x := x0 + 1; x < x1-1; x++ {
		g.put(x, y0, '─', fg)
		g.put(x, y1-1, '─', fg)
	}
	for y := y0 + 1; y < y1-1; y++ {
		g.put(x0, y, '│', fg)
		g.put(x1-1, y, '│', fg)
	}
	g.put(x0, y0, '┌', fg)
	g.put(x1-1, y0, '┐', fg)
	g.put(x0, y1-1, '└', fg)
	g.put(x1-1, y1-1, '┘', fg)
}

func (g *Grid) DrawText(text string, origin geometry.Point, c color.Color) {
	fg := toRGBA(c)
	x, y := int(origin.X)/CellWidth, int(origin.Y)/CellHeight
	for _, r := range text {
		g.put(x, y, r, fg)
		x++
	}
}

func (g *Grid) PushClip(rect geometry.Rect) {
	g.clips = append(g.clips, rect.Intersect(g.clip()))
}

func (g *Grid) PopClip() {
	if len(g.clips) > 0 {
		g.clips = g.clips[:len(g.clips)-1]
	}
}

func (g *Grid) put(x, y int, r rune, fg color.RGBA) {
	if x < 0 || y < 0 || x >= g.cols || y >= g.rows || !g.visible(x, y) {
		return
	}
	current := &g.cells[y*g.cols+x]
	current.ch = r
	current.fg = fg
}

// String renders the grid with terminal colors. Adjacent cells sharing
// colors are styled as one run.
func (g *Grid) String() string {
	var out strings.Builder
	for y := range g.rows {
		if y > 0 {
			out.WriteByte('\n')
		}
		row := g.cells[y*g.cols : (y+1)*g.cols]
		for start := 0; start < len(row); {
			end := start + 1
			for end < len(row) && row[end].fg == row[start].fg && row[end].bg == row[start].bg {
				end++
			}
			runes := make([]rune, 0, end-start)
			for _, c := range row[start:end] {
				runes = append(runes, c.ch)
			}
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(opaqueHex(row[start].fg))).
				Background(lipgloss.Color(opaqueHex(row[start].bg)))
			out.WriteString(style.Render(string(runes)))
			start = end
		}
	}
	return out.String()
}

func toRGBA(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

func opaqueHex(c color.RGBA) string {
	c.A = 0xFF
	return theme.Hex(c)
}
