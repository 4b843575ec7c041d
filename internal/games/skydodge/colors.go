package skydodge

import "github.com/vovakirdan/skydodge/internal/core"

// Palette.
var (
	colorSky      = core.ColorSky
	colorSpace    = core.ColorBlack
	colorCloud    = core.ColorWhite
	colorStar     = core.ColorWhite
	colorBand     = core.RGBA(255, 255, 255, 0.3)
	colorPlayer   = core.ColorRed
	colorObstacle = core.ColorGreen
	colorPanel    = core.RGBA(0, 0, 0, 0.75)
	colorTitle    = core.ColorRed
	colorText     = core.ColorWhite
)
