package tui

import (
	"bytes"
	"context"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fchimpan/gh-kusa-pong/internal/game"
	"github.com/fchimpan/gh-kusa-pong/internal/mapping"
	"github.com/fchimpan/gh-kusa-pong/internal/store"
)

// Sounder plays the collision ping.
type Sounder interface {
	Ping()
}

type Options struct {
	// Config prefills the menu. FreezeTimersOnPause is carried into every match.
	Config game.Config
	Seed   uint64
	Store  store.Store
	Sound  Sounder
	Now    func() time.Time
}

type screen int

const (
	screenMenu screen = iota
	screenMatch
	screenEnd
)

// keyHold is how long one key press keeps the paddle moving. Terminals
// deliver repeats but no key-up events.
const keyHold = 150 * time.Millisecond

type endState struct {
	outcome game.Outcome
	summary string
	mode    game.Mode
	result  int
	best    int
	newBest bool
}

type Model struct {
	opts   Options
	ctx    context.Context
	scores *store.HighScores
	seed   uint64

	screen screen
	menu   menuState
	match  *game.Match
	frame  game.Frame
	end    endState

	heldUntil time.Time

	ready bool
	w     int
	h     int

	view      mapping.Viewport
	fieldTop  int
	fieldLeft int

	viewBuf bytes.Buffer
	canvas  canvasBuf
}

func NewModel(opts Options) *Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Store == nil {
		opts.Store = store.NewMemoryStore()
	}
	if opts.Sound == nil {
		opts.Sound = silent{}
	}
	return &Model{
		opts:   opts,
		ctx:    context.Background(),
		scores: store.NewHighScores(opts.Store),
		seed:   opts.Seed,
		menu:   menuState{cursor: itemStart, cfg: opts.Config},
	}
}

type silent struct{}

func (silent) Ping() {}

type tickMsg time.Time

func tickCmd(d time.Duration) tea.Cmd {
	if d <= 0 {
		d = time.Second / 60
	}
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *Model) Init() tea.Cmd {
	return tickCmd(time.Second / 60)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.w = msg.Width
		m.h = msg.Height
		m.resize()
		return m, nil
	case tickMsg:
		m.tick(time.Time(msg))
		return m, tickCmd(m.frameDuration())
	case tea.MouseMsg:
		m.mouse(msg)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.screen {
		case screenMenu:
			return m, m.menuKey(msg.String())
		case screenMatch:
			return m, m.matchKey(msg.String())
		case screenEnd:
			return m, m.endKey(msg.String())
		}
	}
	return m, nil
}

// tick runs at most one simulation step. Skipped frames are not replayed;
// ramps and survival time follow the wall clock.
func (m *Model) tick(now time.Time) {
	if m.screen != screenMatch || m.match == nil {
		return
	}
	if !m.heldUntil.IsZero() && now.After(m.heldUntil) {
		m.match.Input().Set(game.Stop())
		m.heldUntil = time.Time{}
	}
	frame, events := m.match.Tick(now)
	m.frame = frame
	m.handle(events)
}

func (m *Model) frameDuration() time.Duration {
	if m.screen == screenMatch && m.match != nil && m.match.Status() == game.StatusRunning {
		return time.Second / 60
	}
	return time.Second / 15
}

func (m *Model) menuKey(key string) tea.Cmd {
	switch key {
	case "q":
		return tea.Quit
	case "up", "k", "w":
		m.menu.up()
	case "down", "j", "s", "tab":
		m.menu.down()
	case "left", "h", "a", "-":
		m.menu.change(-1)
	case "right", "l", "d", "+", " ":
		m.menu.change(1)
	case "enter":
		m.startMatch()
	}
	return nil
}

func (m *Model) matchKey(key string) tea.Cmd {
	now := m.opts.Now()
	switch key {
	case "q":
		return tea.Quit
	case "up", "k", "w":
		m.hold(game.Up(), now)
	case "down", "j", "s":
		m.hold(game.Down(), now)
	case "p", " ":
		if err := m.match.TogglePause(now); err != nil {
			log.Printf("tui: %v", err)
		}
		m.frame = m.match.Frame(now)
	case "esc", "x":
		events, err := m.match.Abort(now)
		if err != nil {
			log.Printf("tui: %v", err)
			return nil
		}
		m.handle(events)
	}
	return nil
}

func (m *Model) endKey(key string) tea.Cmd {
	switch key {
	case "q":
		return tea.Quit
	case "enter", "r", "esc":
		// Back to the menu; the finished match is dropped.
		m.match = nil
		m.frame = game.Frame{}
		m.screen = screenMenu
	}
	return nil
}

func (m *Model) hold(in game.Intent, now time.Time) {
	m.match.Input().Set(in)
	m.heldUntil = now.Add(keyHold)
}

// mouse maps the pointer row to an absolute paddle target, the terminal
// stand-in for touch input.
func (m *Model) mouse(msg tea.MouseMsg) {
	if m.screen != screenMatch || m.match == nil || !m.ready {
		return
	}
	row := msg.Y - m.fieldTop
	if row < 0 || row >= m.view.Rows {
		return
	}
	m.match.Input().Set(game.Target(m.view.BoardY(row)))
	m.heldUntil = time.Time{}
}

func (m *Model) startMatch() {
	cfg := m.menu.cfg
	cfg.FreezeTimersOnPause = m.opts.Config.FreezeTimersOnPause
	cfg.HighScore = m.scores.Load(m.ctx, string(cfg.Mode))

	m.seed++
	match, err := game.NewMatch(cfg, m.seed)
	if err != nil {
		m.menu.err = err.Error()
		return
	}
	now := m.opts.Now()
	if err := match.Start(now); err != nil {
		m.menu.err = err.Error()
		return
	}

	if err := store.SaveSettings(m.ctx, m.opts.Store, settingsFrom(cfg)); err != nil {
		log.Printf("tui: save settings: %v", err)
	}
	log.Printf("tui: match started mode=%s difficulty=%s max=%d side=%s", cfg.Mode, cfg.Difficulty, cfg.MaxPoints, cfg.UserSide)

	m.menu.err = ""
	m.match = match
	m.frame = match.Frame(now)
	m.heldUntil = time.Time{}
	m.screen = screenMatch
}

func (m *Model) handle(events []game.Event) {
	for _, ev := range events {
		switch e := ev.(type) {
		case game.SoundEvent:
			m.opts.Sound.Ping()
		case game.PointScored:
			log.Printf("tui: point for %s (%d:%d)", e.Player, e.UserScore, e.OpponentScore)
		case game.LifeLost:
			log.Printf("tui: life lost, %d left", e.Remaining)
		case game.MatchEnded:
			log.Printf("tui: match ended %s: %s", e.Outcome, e.Summary)
			m.end = endState{
				outcome: e.Outcome,
				summary: e.Summary,
				mode:    e.Mode,
				result:  e.Result,
				best:    m.scores.Load(m.ctx, string(e.Mode)),
			}
			m.screen = screenEnd
		case game.HighScoreBeaten:
			beaten, err := m.scores.Submit(m.ctx, string(e.Mode), e.Value)
			if err != nil {
				log.Printf("tui: %v", err)
			}
			m.end.newBest = beaten
			m.end.best = m.scores.Load(m.ctx, string(e.Mode))
		}
	}
}

func (m *Model) resize() {
	rows := m.h - 5
	if rows < 10 {
		rows = 10
	}
	cols := m.w - 2
	// Board is 2:1 and cells are roughly 1:2, so 4 columns per row keeps
	// the court proportions.
	if cols > rows*4 {
		cols = rows * 4
	}
	if cols < 20 {
		cols = 20
	}
	m.view = mapping.NewViewport(game.BoardWidth, game.BoardHeight, cols, rows)
	m.canvas.Reset()
	m.ready = true
}

func settingsFrom(cfg game.Config) store.Settings {
	return store.Settings{
		Difficulty: string(cfg.Difficulty),
		MaxPoints:  cfg.MaxPoints,
		SoundOn:    cfg.Sound,
		UserSide:   string(cfg.UserSide),
		GameMode:   string(cfg.Mode),
	}
}
