package skydodge

import (
	"bytes"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skydodge/internal/config"
	"github.com/vovakirdan/skydodge/internal/core"
	"github.com/vovakirdan/skydodge/internal/storage"
)

func TestNewInitialState(t *testing.T) {
	e := newTestEngine(Options{})
	cfg := e.Config()

	st := e.State()
	if st.Frame != 0 || st.Score != 0 || st.GameOver || st.Obstacles != 0 {
		t.Errorf("unexpected initial state %+v", st)
	}
	if st.Speed != cfg.Difficulty.BaseSpeed {
		t.Errorf("initial speed = %v, expected %v", st.Speed, cfg.Difficulty.BaseSpeed)
	}

	p := e.Player()
	if p.X != 185 || p.Y != 540 || p.W != 30 || p.H != 30 {
		t.Errorf("unexpected player %+v", p)
	}
}

func TestMoveWrapRight(t *testing.T) {
	e := newTestEngine(Options{})
	w := e.Config().Playfield.Width

	e.player.X = w - 1
	e.KeyDown(core.DirRight)
	e.moveStage()

	if e.player.X != -e.player.W {
		t.Errorf("x = %v, expected %v", e.player.X, -e.player.W)
	}
}

func TestMoveWrapLeft(t *testing.T) {
	e := newTestEngine(Options{})
	w := e.Config().Playfield.Width
	e.KeyDown(core.DirLeft)

	// Still partly visible: no wrap yet.
	e.player.X = 0
	e.moveStage()
	if e.player.X != -e.player.Speed {
		t.Errorf("x = %v, expected %v", e.player.X, -e.player.Speed)
	}

	// Fully past the left edge: re-enter from the right.
	e.player.X = -e.player.W + 1
	e.moveStage()
	if e.player.X != w {
		t.Errorf("x = %v, expected %v", e.player.X, w)
	}
}

func TestMoveBothDirections(t *testing.T) {
	e := newTestEngine(Options{})
	start := e.player.X

	e.KeyDown(core.DirRight)
	e.KeyDown(core.DirLeft)
	e.moveStage()
	if e.player.X != start {
		t.Errorf("both held should cancel out, x = %v, expected %v", e.player.X, start)
	}

	e.KeyUp(core.DirLeft)
	e.moveStage()
	if e.player.X != start+e.player.Speed {
		t.Errorf("after releasing left, x = %v, expected %v", e.player.X, start+e.player.Speed)
	}
}

func TestMoveKeepsVerticalPosition(t *testing.T) {
	e := newTestEngine(Options{})
	y := e.player.Y
	e.KeyDown(core.DirRight)
	for i := 0; i < 500; i++ {
		e.moveStage()
		if e.player.Y != y {
			t.Fatalf("y changed to %v", e.player.Y)
		}
	}
}

func TestSpawnCadence(t *testing.T) {
	e := newTestEngine(Options{Random: rand.New(rand.NewSource(7))})
	cfg := e.Config()

	for frame := 0; frame < 1000; frame++ {
		e.frame = frame
		e.spawnStage()
	}

	// Ticks 0, 90, ..., 990.
	if got := e.obstacles.Len(); got != 12 {
		t.Fatalf("spawned %d obstacles, expected 12", got)
	}
	maxX := cfg.Playfield.Width - cfg.Obstacles.Width
	for i, o := range e.Obstacles() {
		if o.X < 0 || o.X >= maxX {
			t.Errorf("obstacle %d x = %v outside [0, %v)", i, o.X, maxX)
		}
		if o.Y != -cfg.Obstacles.Height {
			t.Errorf("obstacle %d y = %v, expected %v", i, o.Y, -cfg.Obstacles.Height)
		}
	}
}

func TestSpawnBoundsAtExtremes(t *testing.T) {
	e := newTestEngine(Options{Random: &seqRandom{vals: []float64{0, 0.999999}}})
	cfg := e.Config()

	e.obstacles.Spawn(e.rng)
	e.obstacles.Spawn(e.rng)

	obs := e.Obstacles()
	if obs[0].X != 0 {
		t.Errorf("lowest sample should give x = 0, got %v", obs[0].X)
	}
	if obs[1].X >= cfg.Playfield.Width-cfg.Obstacles.Width {
		t.Errorf("highest sample should stay below %v, got %v", cfg.Playfield.Width-cfg.Obstacles.Width, obs[1].X)
	}
}

func TestDifficultyAtTick900(t *testing.T) {
	e := newTestEngine(Options{})
	cfg := e.Config()

	for frame := 0; frame < 900; frame++ {
		e.frame = frame
		e.advanceStage()
	}

	want := cfg.Difficulty.BaseSpeed + 3*cfg.Difficulty.Increment
	if e.speed != want {
		t.Errorf("speed during tick 900 = %v, expected %v", e.speed, want)
	}
}

func TestAdvanceUsesSpeedBeforeStep(t *testing.T) {
	e := newTestEngine(Options{})
	e.obstacles.Spawn(e.rng)

	e.frame = 0
	e.advanceStage()
	if y := e.Obstacles()[0].Y; y != -20+2 {
		t.Errorf("tick 0 should advance by base speed, y = %v", y)
	}
	if e.speed != 2.5 {
		t.Errorf("speed after tick 0 = %v, expected 2.5", e.speed)
	}
}

func TestPruneRemovesFallenObstacles(t *testing.T) {
	e := newTestEngine(Options{})
	h := e.Config().Playfield.Height
	e.obstacles.obstacles = []Obstacle{{X: 0, Y: h - 1}, {X: 10, Y: h}, {X: 20, Y: h + 5}, {X: 30, Y: 0}}

	e.obstacles.Prune()

	obs := e.Obstacles()
	if len(obs) != 2 || obs[0].X != 0 || obs[1].X != 30 {
		t.Errorf("unexpected survivors %+v", obs)
	}
}

func TestCollisionOverlap(t *testing.T) {
	e := newTestEngine(Options{})
	p := e.player
	e.obstacles.obstacles = []Obstacle{{X: p.X + p.W - 1, Y: p.Y + p.H - 1}}

	e.collisionStage()
	if !e.State().GameOver {
		t.Error("strict overlap should end the game")
	}
}

func TestCollisionEdgeContact(t *testing.T) {
	e := newTestEngine(Options{})
	p := e.player
	cfg := e.Config()
	e.obstacles.obstacles = []Obstacle{
		{X: p.X + p.W, Y: p.Y},                  // touching right edge
		{X: p.X - cfg.Obstacles.Width, Y: p.Y},  // touching left edge
		{X: p.X, Y: p.Y - cfg.Obstacles.Height}, // touching top edge
		{X: p.X, Y: p.Y + p.H},                  // touching bottom edge
	}

	e.collisionStage()
	if e.State().GameOver {
		t.Error("edge contact must not count as a collision")
	}
}

func TestHighScorePersistence(t *testing.T) {
	store := newRecordingStore()
	store.values["highScore"] = 50
	status := &recordingStatus{}
	e := newTestEngine(Options{Store: store, Status: status})

	if e.State().BestScore != 50 || status.best != 50 {
		t.Fatalf("best should load as 50, state=%d status=%d", e.State().BestScore, status.best)
	}

	p := e.player
	e.score = 75
	e.obstacles.obstacles = []Obstacle{{X: p.X, Y: p.Y}, {X: p.X + 1, Y: p.Y + 1}}
	e.collisionStage()
	e.collisionStage()

	if e.State().BestScore != 75 {
		t.Errorf("best = %d, expected 75", e.State().BestScore)
	}
	if len(store.sets) != 1 || store.sets[0] != 75 {
		t.Errorf("SetInt calls = %v, expected exactly [75]", store.sets)
	}
	if status.best != 75 || status.overUpdates != 2 || !status.over {
		t.Errorf("status = %+v", status)
	}
}

func TestHighScoreNotLowered(t *testing.T) {
	store := newRecordingStore()
	store.values["highScore"] = 500
	e := newTestEngine(Options{Store: store})

	e.score = 100
	e.obstacles.obstacles = []Obstacle{{X: e.player.X, Y: e.player.Y}}
	e.collisionStage()

	if len(store.sets) != 0 {
		t.Errorf("lower score should not be persisted, got %v", store.sets)
	}
	if e.State().BestScore != 500 {
		t.Errorf("best = %d, expected 500", e.State().BestScore)
	}
}

func TestBestScoreLoadFailures(t *testing.T) {
	tests := []struct {
		name  string
		store core.IntStore
	}{
		{"nil store", nil},
		{"missing", func() core.IntStore {
			s := newRecordingStore()
			s.raw["highScore"] = storage.ErrNotFound
			return s
		}()},
		{"malformed", func() core.IntStore {
			s := newRecordingStore()
			s.raw["highScore"] = storage.ErrMalformed
			return s
		}()},
		{"unavailable", func() core.IntStore {
			s := newRecordingStore()
			s.raw["highScore"] = errors.New("disk on fire")
			return s
		}()},
		{"negative", func() core.IntStore {
			s := newRecordingStore()
			s.values["highScore"] = -3
			return s
		}()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEngine(Options{Store: tc.store})
			if best := e.State().BestScore; best != 0 {
				t.Errorf("best = %d, expected 0", best)
			}
		})
	}
}

func TestPersistFailureDoesNotStopSession(t *testing.T) {
	store := newRecordingStore()
	store.setErr = errors.New("read-only")
	e := newTestEngine(Options{Store: store})

	e.score = 10
	e.obstacles.obstacles = []Obstacle{{X: e.player.X, Y: e.player.Y}}
	e.collisionStage()

	if e.State().BestScore != 10 || !e.State().GameOver {
		t.Errorf("state = %+v", e.State())
	}
}

func TestTickOrderAndScoring(t *testing.T) {
	status := &recordingStatus{}
	e := newTestEngine(Options{Status: status})
	cfg := e.Config()
	dst := &recordingSurface{}

	res := e.Tick(dst)
	if !res.Continue {
		t.Fatal("running tick should request another")
	}
	first := dst.calls[0]
	if first.kind != "rect" || first.x != 0 || first.y != 0 ||
		first.a != cfg.Playfield.Width || first.b != cfg.Playfield.Height {
		t.Errorf("first draw must repaint the playfield, got %+v", first)
	}
	last := dst.calls[len(dst.calls)-1]
	if last.color != colorPlayer {
		t.Errorf("player should be drawn last, got %+v", last)
	}

	st := res.State
	if st.Frame != 1 || st.Score != 1 || st.Obstacles != 1 {
		t.Errorf("after one tick: %+v", st)
	}
	if status.score != 1 {
		t.Errorf("status score = %d, expected 1", status.score)
	}
}

func TestRunUntilCollision(t *testing.T) {
	store := newRecordingStore()
	status := &recordingStatus{}
	// Every obstacle spawns at x = 160, straight onto the centred player.
	e := newTestEngine(Options{Store: store, Status: status, Random: &seqRandom{vals: []float64{0.5}}})
	dst := &recordingSurface{}

	var res core.TickResult
	for i := 0; i < 1000; i++ {
		dst.reset()
		res = e.Tick(dst)
		if res.State.GameOver {
			break
		}
	}

	st := res.State
	if !st.GameOver {
		t.Fatal("player standing still under the spawn point should be hit")
	}
	if !res.Continue {
		t.Error("the collision tick still requests the next tick")
	}
	if st.Frame != st.Score+1 {
		t.Errorf("collision tick must not score: frame=%d score=%d", st.Frame, st.Score)
	}
	if st.BestScore != st.Score || len(store.sets) != 1 || store.sets[0] != st.Score {
		t.Errorf("best=%d sets=%v score=%d", st.BestScore, store.sets, st.Score)
	}

	dst.reset()
	res = e.Tick(dst)
	if res.Continue {
		t.Error("tick after game over must halt scheduling")
	}
	found := false
	for _, c := range dst.calls {
		if c.kind == "text" && c.text == "GAME OVER" {
			found = true
		}
	}
	if !found {
		t.Error("game-over overlay should be drawn")
	}
}

func TestTerminalIdempotence(t *testing.T) {
	e := newTestEngine(Options{})
	dst := &recordingSurface{}
	for i := 0; i < 120; i++ {
		e.Tick(dst)
	}
	e.obstacles.obstacles = append(e.obstacles.obstacles, Obstacle{X: e.player.X, Y: e.player.Y})
	e.collisionStage()

	before := e.State()
	playerBefore := e.Player()
	obstaclesBefore := append([]Obstacle(nil), e.Obstacles()...)

	e.KeyDown(core.DirRight)
	for i := 0; i < 400; i++ {
		if res := e.Tick(dst); res.Continue {
			t.Fatal("over session must not continue")
		}
	}

	if after := e.State(); after != before {
		t.Errorf("state changed after game over: %+v -> %+v", before, after)
	}
	if e.Player() != playerBefore {
		t.Error("player moved after game over")
	}
	after := e.Obstacles()
	if len(after) != len(obstaclesBefore) {
		t.Fatalf("obstacle count changed: %d -> %d", len(obstaclesBefore), len(after))
	}
	for i := range after {
		if after[i] != obstaclesBefore[i] {
			t.Errorf("obstacle %d moved: %+v -> %+v", i, obstaclesBefore[i], after[i])
		}
	}
}

func TestInputSourceAttachment(t *testing.T) {
	src := &fakeSource{}
	e := newTestEngine(Options{Input: src})

	if src.listener == nil {
		t.Fatal("engine should attach to the input source")
	}
	start := e.player.X
	src.listener.KeyDown(core.DirLeft)
	e.Tick(&recordingSurface{})
	if e.player.X != start-e.player.Speed {
		t.Errorf("x = %v, expected %v", e.player.X, start-e.player.Speed)
	}
}

func TestDeterminism(t *testing.T) {
	run := func() core.GameState {
		e := New(Options{Config: config.DefaultConfig(), Seed: 12345})
		dst := &recordingSurface{}
		var st core.GameState
		for i := 0; i < 3000; i++ {
			if i%40 == 0 {
				e.KeyDown(core.DirRight)
			}
			if i%40 == 20 {
				e.KeyUp(core.DirRight)
			}
			dst.reset()
			res := e.Tick(dst)
			st = res.State
			if !res.Continue {
				break
			}
		}
		return st
	}

	if a, b := run(), run(); a != b {
		t.Errorf("same seed and inputs diverged: %+v vs %+v", a, b)
	}
}

// collideAt ends the session with the given score.
func collideAt(e *Engine, score int) {
	e.score = score
	e.obstacles.obstacles = []Obstacle{{X: e.player.X, Y: e.player.Y}}
	e.collisionStage()
}

func TestSharedStoreBestNeverDrops(t *testing.T) {
	tests := []struct {
		name  string
		store core.IntStore
	}{
		{"atomic store", storage.NewMemoryStore()},
		{"plain store", newRecordingStore()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Both sessions start before either has finished.
			a := newTestEngine(Options{Store: tt.store})
			b := newTestEngine(Options{Store: tt.store})

			collideAt(b, 216)
			collideAt(a, 26)

			best, err := tt.store.GetInt("highScore")
			if err != nil || best != 216 {
				t.Errorf("stored best = %d, %v; expected 216", best, err)
			}
			if a.State().BestScore != 216 {
				t.Errorf("later session best = %d, expected the stored 216", a.State().BestScore)
			}
			if rs, ok := tt.store.(*recordingStore); ok && len(rs.sets) != 1 {
				t.Errorf("SetInt calls = %v, expected only [216]", rs.sets)
			}
		})
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.DefaultConfig()
	cfg.Obstacles.SpawnEvery = 0

	e := newTestEngine(Options{Config: cfg, Logger: log.New(&buf)})
	if got := e.Config().Obstacles.SpawnEvery; got != 90 {
		t.Errorf("SpawnEvery = %d, expected the default 90", got)
	}
	if !strings.Contains(buf.String(), "invalid config") {
		t.Errorf("fallback not logged: %q", buf.String())
	}

	dst := &recordingSurface{}
	for range 3 {
		e.Tick(dst)
	}
	if e.State().Obstacles != 1 {
		t.Errorf("obstacles = %d, expected the frame 0 spawn", e.State().Obstacles)
	}
}

func TestRedrawLeavesSessionUntouched(t *testing.T) {
	e := newTestEngine(Options{})
	dst := &recordingSurface{}
	for range 5 {
		e.Tick(dst)
	}
	collideAt(e, 5)
	before := e.State()

	dst.reset()
	e.Redraw(dst)
	e.Redraw(dst)
	if e.State() != before {
		t.Errorf("Redraw changed state: %+v -> %+v", before, e.State())
	}
	if got := dst.count("text"); got != 6 {
		t.Errorf("text calls = %d, expected the panel drawn twice", got)
	}
}
