package skydodge

import (
	"github.com/vovakirdan/skydodge/internal/config"
	"github.com/vovakirdan/skydodge/internal/core"
)

// Player is the laterally moving sprite. Y never changes after creation.
type Player struct {
	X, Y  float64
	W, H  float64
	Speed float64
}

// newPlayer centres the player horizontally near the bottom of the playfield.
func newPlayer(field config.PlayfieldConfig, cfg config.PlayerConfig) Player {
	return Player{
		X:     field.Width/2 - cfg.Width/2,
		Y:     field.Height - cfg.BottomOffset,
		W:     cfg.Width,
		H:     cfg.Height,
		Speed: cfg.Speed,
	}
}

// Rect returns the player's collision rectangle.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Move applies held directions, right before left, wrapping at the
// playfield edges. A sprite leaving on the right re-enters at x = -W;
// one leaving on the left re-enters at x = fieldW.
func (p *Player) Move(in core.InputState, fieldW float64) {
	if in.Right {
		p.X += p.Speed
		if p.X > fieldW {
			p.X = -p.W
		}
	}
	if in.Left {
		p.X -= p.Speed
		if p.X+p.W < 0 {
			p.X = fieldW
		}
	}
}

// Draw renders the player sprite.
func (p Player) Draw(dst core.Surface) {
	dst.FillRect(p.X, p.Y, p.W, p.H, colorPlayer)
}
