package skydodge

import (
	"github.com/vovakirdan/skydodge/internal/config"
	"github.com/vovakirdan/skydodge/internal/core"
)

// Regime is one of the three background visual modes.
type Regime int

const (
	RegimeDay   Regime = iota // Clear sky with clouds
	RegimeDusk                // Sky fading to black, clouds still drawn
	RegimeSpace               // Starfield with a galactic band
)

// String returns a human-readable name for the regime.
func (r Regime) String() string {
	switch r {
	case RegimeDay:
		return "day"
	case RegimeDusk:
		return "dusk"
	case RegimeSpace:
		return "space"
	default:
		return "unknown"
	}
}

// cloud is a decorative shape made of three overlapping ellipses.
type cloud struct {
	x, y, scale float64
}

// clouds sit at fixed playfield positions.
var clouds = []cloud{
	{100, 100, 1},
	{300, 150, 0.7},
	{200, 50, 0.5},
}

// Background repaints the whole playfield for a given score.
type Background struct {
	cfg    config.BackgroundConfig
	width  float64
	height float64
	rng    core.Random
}

// NewBackground creates a background renderer. rng drives the starfield.
func NewBackground(cfg config.BackgroundConfig, field config.PlayfieldConfig, rng core.Random) *Background {
	return &Background{
		cfg:    cfg,
		width:  field.Width,
		height: field.Height,
		rng:    rng,
	}
}

// RegimeFor selects the visual regime for score.
func (b *Background) RegimeFor(score int) Regime {
	switch {
	case score >= b.cfg.SpaceStart:
		return RegimeSpace
	case score >= b.cfg.DuskStart:
		return RegimeDusk
	default:
		return RegimeDay
	}
}

// SkyRatio returns how far the sky has faded towards black, in [0, 1].
func (b *Background) SkyRatio(score int) float64 {
	span := float64(b.cfg.SpaceStart - b.cfg.DuskStart)
	return core.ClampF(float64(score-b.cfg.DuskStart)/span, 0, 1)
}

// SkyColor returns the fill colour used outside the starfield regime.
func (b *Background) SkyColor(score int) core.Color {
	if b.RegimeFor(score) == RegimeDay {
		return colorSky
	}
	return core.Lerp(colorSky, colorSpace, b.SkyRatio(score))
}

// DrawsClouds reports whether clouds are part of the frame for score.
func (b *Background) DrawsClouds(score int) bool {
	return score < b.cfg.SpaceStart
}

// Draw fully repaints the playfield.
func (b *Background) Draw(dst core.Surface, score int) {
	if b.RegimeFor(score) == RegimeSpace {
		b.drawStarfield(dst)
		return
	}

	dst.FillRect(0, 0, b.width, b.height, b.SkyColor(score))
	if b.DrawsClouds(score) {
		for _, c := range clouds {
			drawCloud(dst, c)
		}
	}
}

func drawCloud(dst core.Surface, c cloud) {
	rx, ry := 50*c.scale, 30*c.scale
	offset := 40 * c.scale
	dst.FillEllipse(c.x, c.y, rx, ry, colorCloud)
	dst.FillEllipse(c.x+offset, c.y, rx, ry, colorCloud)
	dst.FillEllipse(c.x-offset, c.y, rx, ry, colorCloud)
}

// drawStarfield paints black space, freshly randomised stars and the
// galactic band.
func (b *Background) drawStarfield(dst core.Surface) {
	dst.FillRect(0, 0, b.width, b.height, colorSpace)

	for i := 0; i < b.cfg.Stars; i++ {
		x := b.rng.Float64() * b.width
		y := b.rng.Float64() * b.height
		r := b.rng.Float64() * b.cfg.MaxStarRadius
		dst.FillArc(x, y, r, colorStar)
	}

	dst.FillEllipse(b.width/2, b.height/2, 100, 30, colorBand)
}
