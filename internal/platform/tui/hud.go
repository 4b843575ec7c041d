package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/skydodge/internal/core"
)

var (
	hudLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	hudValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	hudOverStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	hudTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#b0e0e6")).Bold(true)
)

// HUD is the status line above the playfield. It receives the live score,
// the best score and the game-over indicator from the engine.
type HUD struct {
	title string
	score int
	best  int
	over  bool
}

// NewHUD creates a status line headed by title.
func NewHUD(title string) *HUD {
	return &HUD{title: title}
}

func (h *HUD) SetScore(score int)    { h.score = score }
func (h *HUD) SetBest(best int)      { h.best = best }
func (h *HUD) SetGameOver(over bool) { h.over = over }

// Score returns the last score displayed.
func (h *HUD) Score() int { return h.score }

// Best returns the last best score displayed.
func (h *HUD) Best() int { return h.best }

// GameOver reports whether the game-over indicator is shown.
func (h *HUD) GameOver() bool { return h.over }

// View renders the status line for the given terminal width.
func (h *HUD) View(width int) string {
	left := hudTitleStyle.Render(h.title) + "  " +
		hudLabelStyle.Render("Score ") + hudValueStyle.Render(humanize.Comma(int64(h.score))) + "  " +
		hudLabelStyle.Render("Best ") + hudValueStyle.Render(humanize.Comma(int64(h.best)))

	right := ""
	if h.over {
		right = hudOverStyle.Render("GAME OVER")
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + lipgloss.NewStyle().Width(gap).Render("") + right
}

var _ core.StatusSink = (*HUD)(nil)
