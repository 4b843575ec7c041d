// Package skydodge implements an avoidance game: the player slides left and
// right at the bottom of the playfield while blocks fall from the sky.
// The score grows with every tick survived and the sky darkens into space
// as it climbs.
package skydodge

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skydodge/internal/config"
	"github.com/vovakirdan/skydodge/internal/core"
	"github.com/vovakirdan/skydodge/internal/storage"
)

// Game identity used for run history and display.
const (
	GameID    = "skydodge"
	GameTitle = "Sky Dodge"
)

// Options wires an Engine to its collaborators. Every field except Config
// may be left zero. A Config that fails validation is replaced by the
// defaults.
type Options struct {
	Config config.Config
	Store  core.IntStore    // Best score persistence; nil disables it
	Input  core.InputSource // Attached at construction
	Status core.StatusSink  // Live score display
	Random core.Random      // Spawn positions and stars; defaults to a Seed-based source
	Seed   int64
	Logger *log.Logger
}

// Engine is one game session. It owns all mutable state and is advanced
// by calling Tick once per frame. Once over, a session stays over.
type Engine struct {
	cfg        config.Config
	store      core.IntStore
	status     core.StatusSink
	logger     *log.Logger
	rng        core.Random
	difficulty *config.DifficultyManager
	background *Background

	input     core.InputState
	player    Player
	obstacles *ObstacleField

	frame int
	speed float64
	score int
	best  int
	over  bool
}

// New creates a running session and loads the best score from the store.
func New(opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rng := opts.Random
	if rng == nil {
		rng = rand.New(rand.NewSource(opts.Seed))
	}
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		logger.Warn("invalid config, using defaults", "error", err)
		cfg = config.DefaultConfig()
	}

	e := &Engine{
		cfg:        cfg,
		store:      opts.Store,
		status:     opts.Status,
		logger:     logger,
		rng:        rng,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		background: NewBackground(cfg.Background, cfg.Playfield, rng),
		player:     newPlayer(cfg.Playfield, cfg.Player),
		obstacles:  newObstacleField(cfg.Playfield, cfg.Obstacles),
	}
	e.speed = e.difficulty.BaseSpeed()
	e.best = e.loadBest()

	if opts.Input != nil {
		opts.Input.Attach(e)
	}
	if e.status != nil {
		e.status.SetBest(e.best)
		e.status.SetScore(e.score)
		e.status.SetGameOver(false)
	}
	return e
}

// loadBest reads the persisted best score. Any failure counts as 0.
func (e *Engine) loadBest() int {
	if e.store == nil {
		return 0
	}
	key := e.cfg.Storage.BestScoreKey
	best, err := e.store.GetInt(key)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return 0
	case err != nil:
		e.logger.Warn("best score unavailable, starting from 0", "key", key, "error", err)
		return 0
	case best < 0:
		e.logger.Warn("ignoring negative best score", "key", key, "value", best)
		return 0
	}
	return best
}

// KeyDown marks a direction as held.
func (e *Engine) KeyDown(d core.Direction) {
	e.input.KeyDown(d)
}

// KeyUp releases a direction.
func (e *Engine) KeyUp(d core.Direction) {
	e.input.KeyUp(d)
}

// Tick runs one frame. While running it repaints dst completely, steps the
// simulation and asks for another tick. Once over it draws the game-over
// panel and asks for no further ticks.
func (e *Engine) Tick(dst core.Surface) core.TickResult {
	if e.over {
		e.drawGameOver(dst)
		return core.TickResult{State: e.State(), Continue: false}
	}

	e.background.Draw(dst, e.score)
	e.moveStage()
	e.spawnStage()
	e.obstacles.Draw(dst)
	e.advanceStage()
	e.player.Draw(dst)
	e.collisionStage()
	e.obstacles.Prune()
	e.scoreStage()
	e.frame++

	return core.TickResult{State: e.State(), Continue: true}
}

// Redraw repaints the current frame on dst without advancing the session.
// A finished session gets its game-over panel on top.
func (e *Engine) Redraw(dst core.Surface) {
	e.background.Draw(dst, e.score)
	e.obstacles.Draw(dst)
	e.player.Draw(dst)
	if e.over {
		e.drawGameOver(dst)
	}
}

// moveStage applies the held directions to the player.
func (e *Engine) moveStage() {
	if e.over {
		return
	}
	e.player.Move(e.input, e.cfg.Playfield.Width)
}

// spawnStage adds an obstacle every SpawnEvery ticks, frame 0 included.
func (e *Engine) spawnStage() {
	if e.over || e.frame%e.cfg.Obstacles.SpawnEvery != 0 {
		return
	}
	e.obstacles.Spawn(e.rng)
}

// advanceStage moves obstacles at the current speed, then applies the
// difficulty step for this frame.
func (e *Engine) advanceStage() {
	if e.over {
		return
	}
	e.obstacles.Advance(e.speed)
	e.speed = e.difficulty.Step(e.speed, e.frame)
}

// collisionStage ends the session on any strict overlap and records a new
// best score at most once.
func (e *Engine) collisionStage() {
	if !e.obstacles.Collides(e.player.Rect()) || e.over {
		return
	}
	e.over = true
	e.logger.Info("game over", "score", e.score, "frame", e.frame, "speed", e.speed)
	e.recordBest()
	if e.status != nil {
		e.status.SetGameOver(true)
	}
}

// recordBest persists the score when it beats the best. Other sessions may
// share the store, so the write never lowers what is already stored and a
// higher stored value is adopted instead. Store failures are logged and
// otherwise ignored.
func (e *Engine) recordBest() {
	if e.score <= e.best {
		return
	}
	e.best = e.score
	if e.store != nil {
		if stored, err := e.persistBest(); err != nil {
			e.logger.Error("cannot persist best score",
				"key", e.cfg.Storage.BestScoreKey, "value", e.score, "error", err)
		} else if stored > e.best {
			e.best = stored
		}
	}
	if e.status != nil {
		e.status.SetBest(e.best)
	}
}

// persistBest writes the score unless the store already holds a value at
// least as high, and returns the value left in the store.
func (e *Engine) persistBest() (int, error) {
	key := e.cfg.Storage.BestScoreKey
	if ms, ok := e.store.(core.MaxIntStore); ok {
		return ms.MaxInt(key, e.score)
	}
	if stored, err := e.store.GetInt(key); err == nil && stored >= e.score {
		return stored, nil
	}
	return e.score, e.store.SetInt(key, e.score)
}

// scoreStage adds one point per tick survived.
func (e *Engine) scoreStage() {
	if e.over {
		return
	}
	e.score++
	if e.status != nil {
		e.status.SetScore(e.score)
	}
}

// drawGameOver paints the game-over panel over the last frame.
func (e *Engine) drawGameOver(dst core.Surface) {
	w, h := e.cfg.Playfield.Width, e.cfg.Playfield.Height
	panelW, panelH := w*0.6, h/5
	panelX, panelY := (w-panelW)/2, (h-panelH)/2
	dst.FillRect(panelX, panelY, panelW, panelH, colorPanel)

	lines := []struct {
		text  string
		color core.Color
	}{
		{"GAME OVER", colorTitle},
		{fmt.Sprintf("Score: %d", e.score), colorText},
		{fmt.Sprintf("Best: %d", e.best), colorText},
	}
	lineH := panelH / float64(len(lines)+1)
	for i, l := range lines {
		x := (w - textWidth(dst, l.text)) / 2
		dst.DrawText(x, panelY+lineH*float64(i+1)-lineH/2, l.text, l.color)
	}
}

// textWidth measures text on surfaces that support it and estimates
// 8px per character elsewhere.
func textWidth(dst core.Surface, text string) float64 {
	if m, ok := dst.(core.TextMeasurer); ok {
		return m.TextWidth(text)
	}
	return float64(len([]rune(text))) * 8
}

// State returns the current session snapshot.
func (e *Engine) State() core.GameState {
	return core.GameState{
		Frame:     e.frame,
		Score:     e.score,
		BestScore: e.best,
		Speed:     e.speed,
		Obstacles: e.obstacles.Len(),
		GameOver:  e.over,
	}
}

// Config returns the configuration the session runs with.
func (e *Engine) Config() config.Config {
	return e.cfg
}

// Player returns a copy of the player sprite.
func (e *Engine) Player() Player {
	return e.player
}

// Obstacles returns the live obstacles in insertion order.
func (e *Engine) Obstacles() []Obstacle {
	return e.obstacles.Obstacles()
}

var _ core.InputListener = (*Engine)(nil)
