package core

// Surface is the abstract 2D drawing target the game renders onto.
// All coordinates are in playfield pixel space with the origin at the
// top-left corner.
type Surface interface {
	FillRect(x, y, w, h float64, c Color)
	FillEllipse(cx, cy, rx, ry float64, c Color)
	FillArc(cx, cy, radius float64, c Color)
	DrawText(x, y float64, text string, c Color)
}

// TextMeasurer is implemented by surfaces that know how wide text renders.
type TextMeasurer interface {
	TextWidth(text string) float64
}
