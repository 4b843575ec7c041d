package core

import "math"

// Glyphs used for shapes too small to cover a whole cell.
const (
	GlyphDot  = '·'
	GlyphStar = '*'
)

// Canvas is a Surface that rasterises playfield pixel space onto a Screen.
// A cell is painted when its centre lies inside a shape. Shapes that miss
// every cell centre still paint the cell containing their own centre, so
// small sprites never vanish between frames.
type Canvas struct {
	screen *Screen
	width  float64
	height float64
}

// NewCanvas maps a playfield of width x height pixels onto screen.
func NewCanvas(screen *Screen, width, height float64) *Canvas {
	return &Canvas{screen: screen, width: width, height: height}
}

// Screen returns the underlying cell buffer.
func (c *Canvas) Screen() *Screen {
	return c.screen
}

// cellSize returns the pixel extent of one cell.
func (c *Canvas) cellSize() (float64, float64) {
	cols := math.Max(float64(c.screen.Width()), 1)
	rows := math.Max(float64(c.screen.Height()), 1)
	return c.width / cols, c.height / rows
}

// CellAt returns the cell containing the pixel (x, y).
func (c *Canvas) CellAt(x, y float64) (int, int) {
	cw, ch := c.cellSize()
	return int(math.Floor(x / cw)), int(math.Floor(y / ch))
}

// cellSpan returns the half-open range of cell indices whose centres lie in [lo, hi).
func cellSpan(lo, hi, size float64, limit int) (int, int) {
	first := int(math.Ceil(lo/size - 0.5))
	last := int(math.Ceil(hi/size - 0.5))
	return Clamp(first, 0, limit), Clamp(last, 0, limit)
}

// FillRect paints an axis-aligned rectangle.
func (c *Canvas) FillRect(x, y, w, h float64, col Color) {
	if w <= 0 || h <= 0 {
		return
	}
	cw, ch := c.cellSize()
	x0, x1 := cellSpan(x, x+w, cw, c.screen.Width())
	y0, y1 := cellSpan(y, y+h, ch, c.screen.Height())
	if x0 >= x1 || y0 >= y1 {
		cx, cy := c.CellAt(x+w/2, y+h/2)
		c.screen.Paint(cx, cy, col)
		return
	}
	c.screen.FillCells(x0, y0, x1-x0, y1-y0, col)
}

// FillEllipse paints an axis-aligned ellipse centred on (cx, cy).
func (c *Canvas) FillEllipse(cx, cy, rx, ry float64, col Color) {
	if !c.fillEllipse(cx, cy, rx, ry, col) {
		x, y := c.CellAt(cx, cy)
		c.screen.Paint(x, y, col)
	}
}

// FillArc paints a full circle. Circles smaller than a cell become a
// glyph drawn over the existing background.
func (c *Canvas) FillArc(cx, cy, radius float64, col Color) {
	if c.fillEllipse(cx, cy, radius, radius, col) {
		return
	}
	glyph := GlyphDot
	if radius >= 1 {
		glyph = GlyphStar
	}
	x, y := c.CellAt(cx, cy)
	cell := c.screen.GetCell(x, y)
	cell.Rune = glyph
	cell.FG = col.Over(cell.BG)
	c.screen.SetCell(x, y, cell)
}

// fillEllipse reports whether any cell centre was covered.
func (c *Canvas) fillEllipse(cx, cy, rx, ry float64, col Color) bool {
	if rx <= 0 || ry <= 0 {
		return false
	}
	cw, ch := c.cellSize()
	x0, x1 := cellSpan(cx-rx, cx+rx, cw, c.screen.Width())
	y0, y1 := cellSpan(cy-ry, cy+ry, ch, c.screen.Height())

	painted := false
	for y := y0; y < y1; y++ {
		py := (float64(y) + 0.5) * ch
		dy := (py - cy) / ry
		for x := x0; x < x1; x++ {
			px := (float64(x) + 0.5) * cw
			dx := (px - cx) / rx
			if dx*dx+dy*dy <= 1 {
				c.screen.Paint(x, y, col)
				painted = true
			}
		}
	}
	return painted
}

// DrawText places text with its first character in the cell containing (x, y).
func (c *Canvas) DrawText(x, y float64, text string, col Color) {
	cx, cy := c.CellAt(x, y)
	c.screen.DrawText(cx, cy, text, col)
}

// TextWidth returns the pixel width text occupies on this canvas.
func (c *Canvas) TextWidth(text string) float64 {
	cw, _ := c.cellSize()
	return float64(len([]rune(text))) * cw
}

var (
	_ Surface      = (*Canvas)(nil)
	_ TextMeasurer = (*Canvas)(nil)
)
