package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fchimpan/gh-kusa-pong/internal/game"
	"github.com/fchimpan/gh-kusa-pong/internal/store"
)

var t0 = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

type countingSounder struct{ pings int }

func (c *countingSounder) Ping() { c.pings++ }

func newTestModel(t *testing.T, st store.Store) (*Model, *countingSounder) {
	t.Helper()
	snd := &countingSounder{}
	m := NewModel(Options{
		Config: game.DefaultConfig(),
		Seed:   7,
		Store:  st,
		Sound:  snd,
		Now:    func() time.Time { return t0 },
	})
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m, snd
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_EnterStartsMatch(t *testing.T) {
	t.Parallel()

	st := store.NewMemoryStore()
	m, _ := newTestModel(t, st)
	if m.screen != screenMenu {
		t.Fatalf("expected menu screen, got %v", m.screen)
	}
	m.Update(key("enter"))
	if m.screen != screenMatch {
		t.Fatalf("expected match screen, got %v", m.screen)
	}
	if m.match.Status() != game.StatusRunning {
		t.Fatalf("expected running match, got %s", m.match.Status())
	}

	// Starting a match remembers the menu settings.
	got, ok, err := store.LoadSettings(context.Background(), st)
	if err != nil || !ok {
		t.Fatalf("expected saved settings, ok=%v err=%v", ok, err)
	}
	if got.Difficulty != "medium" || got.GameMode != "standard" || got.MaxPoints != 5 {
		t.Fatalf("unexpected settings: %+v", got)
	}
}

func TestModel_MenuChangesMode(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, nil)
	m.menu.cursor = itemMode
	m.Update(key("right"))
	if m.menu.cfg.Mode != game.ModeSurvival {
		t.Fatalf("expected survival, got %s", m.menu.cfg.Mode)
	}
	m.Update(key("right"))
	if m.menu.cfg.Mode != game.ModeStandard {
		t.Fatalf("expected wrap to standard, got %s", m.menu.cfg.Mode)
	}

	m.menu.cursor = itemMaxPoints
	m.menu.cfg.MaxPoints = 0
	m.menu.change(-1)
	if m.menu.cfg.MaxPoints != maxPointsLimit {
		t.Fatalf("expected wrap to %d, got %d", maxPointsLimit, m.menu.cfg.MaxPoints)
	}
}

func TestModel_InvalidConfigStaysInMenu(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, nil)
	m.menu.cfg.Difficulty = "impossible"
	m.Update(key("enter"))
	if m.screen != screenMenu {
		t.Fatalf("expected to stay in menu, got %v", m.screen)
	}
	if m.menu.err == "" {
		t.Fatalf("expected menu error")
	}
	if !strings.Contains(m.View(), "impossible") {
		t.Fatalf("expected error in view")
	}
}

func TestModel_AbortShowsEndScreen(t *testing.T) {
	t.Parallel()

	st := store.NewMemoryStore()
	m, _ := newTestModel(t, st)
	m.Update(key("enter"))
	m.Update(key("esc"))

	if m.screen != screenEnd {
		t.Fatalf("expected end screen, got %v", m.screen)
	}
	if m.end.outcome != game.OutcomeAborted {
		t.Fatalf("expected aborted, got %s", m.end.outcome)
	}
	if !strings.Contains(m.end.summary, "cancelled") {
		t.Fatalf("unexpected summary %q", m.end.summary)
	}
	if _, err := st.Get(context.Background(), store.KeyStandardHighScore); err == nil {
		t.Fatalf("aborted match must not write a high score")
	}

	m.Update(key("enter"))
	if m.screen != screenMenu || m.match != nil {
		t.Fatalf("expected menu after end screen")
	}
}

func TestModel_PauseToggle(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, nil)
	m.Update(key("enter"))
	m.Update(key("p"))
	if m.match.Status() != game.StatusPaused {
		t.Fatalf("expected paused, got %s", m.match.Status())
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Fatalf("expected pause overlay in view")
	}
	m.Update(key("p"))
	if m.match.Status() != game.StatusRunning {
		t.Fatalf("expected running, got %s", m.match.Status())
	}
}

func TestModel_HighScoreEventIsStored(t *testing.T) {
	t.Parallel()

	st := store.NewMemoryStore()
	m, _ := newTestModel(t, st)
	m.Update(key("enter"))

	m.handle([]game.Event{
		game.MatchEnded{Mode: game.ModeSurvival, Outcome: game.OutcomeLoss, Summary: "You survived 42 seconds.", Result: 42},
		game.HighScoreBeaten{Mode: game.ModeSurvival, Value: 42},
	})

	if m.screen != screenEnd {
		t.Fatalf("expected end screen, got %v", m.screen)
	}
	if !m.end.newBest || m.end.best != 42 {
		t.Fatalf("expected new best 42, got %+v", m.end)
	}
	raw, err := st.Get(context.Background(), store.KeySurvivalHighScore)
	if err != nil {
		t.Fatalf("expected stored high score: %v", err)
	}
	if raw != "42" {
		t.Fatalf("stored value mismatch: got %q", raw)
	}
	if !strings.Contains(m.View(), "new high score") {
		t.Fatalf("expected new high score banner")
	}
}

func TestModel_SoundEventsPing(t *testing.T) {
	t.Parallel()

	m, snd := newTestModel(t, nil)
	m.handle([]game.Event{
		game.SoundEvent{Kind: game.SoundWall},
		game.SoundEvent{Kind: game.SoundPaddle},
	})
	if snd.pings != 2 {
		t.Fatalf("expected 2 pings, got %d", snd.pings)
	}
}

func TestModel_KeyHoldExpires(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, nil)
	m.Update(key("enter"))
	m.Update(key("up"))
	if got := m.match.Input().Sample(); got.Kind != game.IntentUp {
		t.Fatalf("expected up intent, got %v", got.Kind)
	}

	m.tick(t0.Add(keyHold / 2))
	if got := m.match.Input().Sample(); got.Kind != game.IntentUp {
		t.Fatalf("expected intent held, got %v", got.Kind)
	}
	m.tick(t0.Add(2 * keyHold))
	if got := m.match.Input().Sample(); got.Kind != game.IntentStop {
		t.Fatalf("expected stop after hold, got %v", got.Kind)
	}
}

func TestModel_MouseSetsTarget(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, nil)
	m.Update(key("enter"))
	_ = m.View()

	row := m.view.Rows - 1
	m.Update(tea.MouseMsg{X: m.fieldLeft + 1, Y: m.fieldTop + row, Action: tea.MouseActionMotion})

	got := m.match.Input().Sample()
	if got.Kind != game.IntentTarget {
		t.Fatalf("expected target intent, got %v", got.Kind)
	}
	if got.TargetY < game.BoardHeight/2 {
		t.Fatalf("bottom row should target the lower half, got %v", got.TargetY)
	}

	// Outside the field is ignored.
	m.match.Input().Set(game.Stop())
	m.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion})
	if got := m.match.Input().Sample(); got.Kind != game.IntentStop {
		t.Fatalf("expected no change outside field, got %v", got.Kind)
	}
}

func TestModel_ViewRendersEachScreen(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, nil)
	if v := m.View(); !strings.Contains(v, "start") {
		t.Fatalf("menu view missing start item")
	}

	m.Update(key("enter"))
	m.tick(t0.Add(time.Second / 60))
	v := m.View()
	if !strings.Contains(v, "first to 5") || !strings.Contains(v, "you") {
		t.Fatalf("match view missing HUD: %q", v)
	}

	m.Update(key("esc"))
	if v := m.View(); !strings.Contains(v, "CANCELLED") {
		t.Fatalf("end view missing title")
	}
}

func TestModel_SurvivalHUD(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, nil)
	m.menu.cfg.Mode = game.ModeSurvival
	m.Update(key("enter"))
	v := m.View()
	if !strings.Contains(v, "lives") || !strings.Contains(v, "♥♥♥") {
		t.Fatalf("survival HUD missing lives: %q", v)
	}
}

func TestModel_QuitKeys(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, nil)
	if _, cmd := m.Update(key("q")); cmd == nil {
		t.Fatalf("expected quit command from menu")
	}
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC}); cmd == nil {
		t.Fatalf("expected quit command on ctrl+c")
	}
}
