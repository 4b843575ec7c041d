package skydodge

import (
	"github.com/vovakirdan/skydodge/internal/config"
	"github.com/vovakirdan/skydodge/internal/core"
)

// Obstacle is a falling block. Size is shared by the whole field.
type Obstacle struct {
	X, Y float64
}

// ObstacleField owns the live obstacles in insertion order.
type ObstacleField struct {
	obstacles []Obstacle
	w, h      float64
	fieldW    float64
	fieldH    float64
}

// newObstacleField creates an empty field for the given playfield.
func newObstacleField(field config.PlayfieldConfig, cfg config.ObstacleConfig) *ObstacleField {
	return &ObstacleField{
		obstacles: make([]Obstacle, 0, 16),
		w:         cfg.Width,
		h:         cfg.Height,
		fieldW:    field.Width,
		fieldH:    field.Height,
	}
}

// Rect returns the collision rectangle of o.
func (f *ObstacleField) Rect(o Obstacle) core.Rect {
	return core.NewRect(o.X, o.Y, f.w, f.h)
}

// Spawn appends one obstacle just above the visible area at a random
// x in [0, fieldW - w).
func (f *ObstacleField) Spawn(rng core.Random) {
	x := rng.Float64() * (f.fieldW - f.w)
	f.obstacles = append(f.obstacles, Obstacle{X: x, Y: -f.h})
}

// Advance moves every obstacle down by speed.
func (f *ObstacleField) Advance(speed float64) {
	for i := range f.obstacles {
		f.obstacles[i].Y += speed
	}
}

// Prune removes obstacles that have fallen off the bottom edge.
// An obstacle whose top reaches the bottom edge is no longer visible.
func (f *ObstacleField) Prune() {
	kept := f.obstacles[:0]
	for _, o := range f.obstacles {
		if o.Y < f.fieldH {
			kept = append(kept, o)
		}
	}
	f.obstacles = kept
}

// Collides reports whether any obstacle strictly overlaps r.
// Every obstacle is tested.
func (f *ObstacleField) Collides(r core.Rect) bool {
	hit := false
	for _, o := range f.obstacles {
		if f.Rect(o).Intersects(r) {
			hit = true
		}
	}
	return hit
}

// Draw renders every obstacle.
func (f *ObstacleField) Draw(dst core.Surface) {
	for _, o := range f.obstacles {
		dst.FillRect(o.X, o.Y, f.w, f.h, colorObstacle)
	}
}

// Obstacles returns the live obstacles.
func (f *ObstacleField) Obstacles() []Obstacle {
	return f.obstacles
}

// Len returns the live obstacle count.
func (f *ObstacleField) Len() int {
	return len(f.obstacles)
}
