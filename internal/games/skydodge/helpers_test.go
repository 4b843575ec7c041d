package skydodge

import (
	"errors"

	"github.com/vovakirdan/skydodge/internal/config"
	"github.com/vovakirdan/skydodge/internal/core"
)

// drawCall records one call made on a recordingSurface.
type drawCall struct {
	kind       string // "rect", "ellipse", "arc", "text"
	x, y, a, b float64
	text       string
	color      core.Color
}

// recordingSurface captures drawing calls instead of rasterising them.
type recordingSurface struct {
	calls []drawCall
}

func (s *recordingSurface) FillRect(x, y, w, h float64, c core.Color) {
	s.calls = append(s.calls, drawCall{kind: "rect", x: x, y: y, a: w, b: h, color: c})
}

func (s *recordingSurface) FillEllipse(cx, cy, rx, ry float64, c core.Color) {
	s.calls = append(s.calls, drawCall{kind: "ellipse", x: cx, y: cy, a: rx, b: ry, color: c})
}

func (s *recordingSurface) FillArc(cx, cy, r float64, c core.Color) {
	s.calls = append(s.calls, drawCall{kind: "arc", x: cx, y: cy, a: r, color: c})
}

func (s *recordingSurface) DrawText(x, y float64, text string, c core.Color) {
	s.calls = append(s.calls, drawCall{kind: "text", x: x, y: y, text: text, color: c})
}

func (s *recordingSurface) count(kind string) int {
	n := 0
	for _, c := range s.calls {
		if c.kind == kind {
			n++
		}
	}
	return n
}

func (s *recordingSurface) reset() {
	s.calls = s.calls[:0]
}

// seqRandom replays a fixed sequence of values in [0, 1).
type seqRandom struct {
	vals []float64
	i    int
}

func (r *seqRandom) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

// recordingStore is an IntStore that counts writes and can fail on demand.
type recordingStore struct {
	values map[string]int
	raw    map[string]error // GetInt error per key
	setErr error
	sets   []int
}

func newRecordingStore() *recordingStore {
	return &recordingStore{values: map[string]int{}, raw: map[string]error{}}
}

func (s *recordingStore) GetInt(key string) (int, error) {
	if err, ok := s.raw[key]; ok {
		return 0, err
	}
	v, ok := s.values[key]
	if !ok {
		return 0, errors.New("absent")
	}
	return v, nil
}

func (s *recordingStore) SetInt(key string, value int) error {
	s.sets = append(s.sets, value)
	if s.setErr != nil {
		return s.setErr
	}
	s.values[key] = value
	return nil
}

// recordingStatus captures StatusSink notifications.
type recordingStatus struct {
	score, best  int
	over         bool
	scoreUpdates int
	bestUpdates  int
	overUpdates  int
}

func (s *recordingStatus) SetScore(v int)     { s.score = v; s.scoreUpdates++ }
func (s *recordingStatus) SetBest(v int)      { s.best = v; s.bestUpdates++ }
func (s *recordingStatus) SetGameOver(v bool) { s.over = v; s.overUpdates++ }

// fakeSource records the listener it was attached to.
type fakeSource struct {
	listener core.InputListener
}

func (f *fakeSource) Attach(l core.InputListener) { f.listener = l }

// newTestEngine builds an engine on the default config with deterministic randomness.
func newTestEngine(opts Options) *Engine {
	if opts.Config == (config.Config{}) {
		opts.Config = config.DefaultConfig()
	}
	if opts.Random == nil {
		opts.Random = &seqRandom{vals: []float64{0.1, 0.9, 0.4}}
	}
	return New(opts)
}
