package skydodge

import (
	"github.com/vovakirdan/skydodge/internal/config"
	"github.com/vovakirdan/skydodge/internal/core"
)

// Autopilot is an InputSource that steers away from obstacles falling
// towards the player. It holds at most one direction at a time.
type Autopilot struct {
	cfg      config.Config
	lookout  float64 // Vertical distance above the player that counts as a threat
	listener core.InputListener
	held     core.Direction
	holding  bool
}

// NewAutopilot creates an autopilot for the given configuration.
func NewAutopilot(cfg config.Config) *Autopilot {
	return &Autopilot{cfg: cfg, lookout: cfg.Player.Height * 5}
}

// Attach routes steering to l.
func (a *Autopilot) Attach(l core.InputListener) {
	a.listener = l
	a.holding = false
}

// Steer picks a direction for the next tick from the current player and
// obstacle positions.
func (a *Autopilot) Steer(p Player, obstacles []Obstacle) {
	threat, ok := a.nearestThreat(p, obstacles)
	if !ok {
		a.release()
		return
	}

	pc, _ := p.Rect().Center()
	oc, _ := core.NewRect(threat.X, threat.Y, a.cfg.Obstacles.Width, a.cfg.Obstacles.Height).Center()
	dir := core.DirRight
	if pc < oc {
		dir = core.DirLeft
	}
	a.hold(dir)
}

// nearestThreat returns the lowest obstacle that overlaps the player's
// column inside the lookout band.
func (a *Autopilot) nearestThreat(p Player, obstacles []Obstacle) (Obstacle, bool) {
	var (
		best  Obstacle
		found bool
	)
	ow, oh := a.cfg.Obstacles.Width, a.cfg.Obstacles.Height
	for _, o := range obstacles {
		bottom := o.Y + oh
		if bottom < p.Y-a.lookout || o.Y > p.Y+p.H {
			continue
		}
		if o.X+ow+p.Speed <= p.X || o.X-p.Speed >= p.X+p.W {
			continue
		}
		if !found || o.Y > best.Y {
			best, found = o, true
		}
	}
	return best, found
}

func (a *Autopilot) hold(d core.Direction) {
	if a.holding && a.held == d {
		return
	}
	a.release()
	a.held, a.holding = d, true
	if a.listener != nil {
		a.listener.KeyDown(d)
	}
}

func (a *Autopilot) release() {
	if !a.holding {
		return
	}
	a.holding = false
	if a.listener != nil {
		a.listener.KeyUp(a.held)
	}
}

var _ core.InputSource = (*Autopilot)(nil)
