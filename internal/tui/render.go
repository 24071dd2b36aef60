package tui

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/fchimpan/gh-kusa-pong/internal/game"
	"github.com/fchimpan/gh-kusa-pong/internal/mapping"
)

// flashBright is the number of remaining ticks an exit flash renders at
// full intensity before it dims.
const flashBright = 10

func (m *Model) View() string {
	if !m.ready {
		return "loading...\n"
	}
	switch m.screen {
	case screenMatch:
		return m.viewMatch()
	case screenEnd:
		return m.viewEnd()
	default:
		return m.viewMenu()
	}
}

func (m *Model) viewMenu() string {
	lines := []string{styleTitle.Render("P O N G"), ""}
	for item := menuItem(0); item < menuItemCount; item++ {
		cursor := "  "
		if item == m.menu.cursor {
			cursor = styleCursor.Render("▸ ")
		}
		if item == itemStart {
			lines = append(lines, "", cursor+styleStart.Render("[ start ]"))
			continue
		}
		name, value := m.menu.label(item)
		lines = append(lines, cursor+styleHudLabel.Render(fmt.Sprintf("%-11s", name))+styleHudValue.Render(value))
	}

	std := m.scores.Load(m.ctx, string(game.ModeStandard))
	surv := m.scores.Load(m.ctx, string(game.ModeSurvival))
	lines = append(lines, "",
		styleHudLabel.Render("best  ")+
			styleHudLabel.Render("standard ")+styleHudScore.Render(fmt.Sprintf("%d", std))+
			styleHudDim.Render("  |  ")+
			styleHudLabel.Render("survival ")+styleHudScore.Render(formatSeconds(surv)),
	)
	if m.menu.err != "" {
		lines = append(lines, "", styleError.Render(m.menu.err))
	}
	lines = append(lines, "", styleHudDim.Render("↑/↓ select  ←/→ change  enter start  q quit"))

	box := stylePanel.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(m.w, m.h, lipgloss.Center, lipgloss.Center, box)
}

func (m *Model) viewEnd() string {
	title := "YOU WIN!"
	titleStyle := styleWin
	switch m.end.outcome {
	case game.OutcomeLoss:
		title = "YOU LOSE!"
		if m.end.mode == game.ModeSurvival {
			title = "GAME OVER"
		}
		titleStyle = styleLoss
	case game.OutcomeAborted:
		title = "CANCELLED"
		titleStyle = styleHudValue
	}

	best := fmt.Sprintf("best score: %d", m.end.best)
	if m.end.mode == game.ModeSurvival {
		best = "best time: " + formatSeconds(m.end.best)
	}

	lines := []string{
		titleStyle.Render(title),
		"",
		styleHudValue.Render(m.end.summary),
		styleHudLabel.Render(best),
	}
	if m.end.newBest {
		lines = append(lines, styleHudScore.Render("new high score!"))
	}
	lines = append(lines, "", styleHudDim.Render("enter menu  q quit"))

	box := stylePanel.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(m.w, m.h, lipgloss.Center, lipgloss.Center, box)
}

func (m *Model) viewMatch() string {
	m.viewBuf.Reset()
	b := &m.viewBuf

	cfg := m.match.Config()
	hud := renderHUD(m.frame, cfg)
	info := styleHudDim.Render("↑/↓ w/s move, mouse aim, p pause, esc abort, q quit")
	var overlay *fieldOverlay
	if m.frame.Status == game.StatusPaused {
		info = styleHudScore.Render("paused")
		overlay = &fieldOverlay{
			Title:  "PAUSED",
			Lines:  []string{fmt.Sprintf("%s / %s", cfg.Mode, cfg.Difficulty)},
			Footer: "p resume, esc abort",
		}
	}

	contentW := m.view.Cols
	if w := lipgloss.Width(hud); w > contentW {
		contentW = w
	}
	leftPad := 0
	if m.w > contentW {
		leftPad = (m.w - contentW) / 2
	}
	leftPadStr := strings.Repeat(" ", leftPad)

	// Lines: HUD(1) + info(1) + border(1) + field(rows) + border(1)
	contentH := 1 + 1 + 1 + m.view.Rows + 1
	topPad := 0
	if m.h > contentH {
		topPad = (m.h - contentH) / 2
	}
	for i := 0; i < topPad; i++ {
		b.WriteString("\n")
	}

	b.WriteString(leftPadStr)
	b.WriteString(hud)
	b.WriteString("\n")
	b.WriteString(leftPadStr)
	b.WriteString(info)
	b.WriteString("\n")

	m.fieldTop = topPad + 3
	m.fieldLeft = leftPad

	border := styleBorder.Render(strings.Repeat("─", m.view.Cols))
	b.WriteString(leftPadStr)
	b.WriteString(border)
	b.WriteString("\n")
	renderFieldTo(b, m.frame, m.view, leftPadStr, overlay, &m.canvas)
	b.WriteString(leftPadStr)
	b.WriteString(border)
	b.WriteString("\n")
	return b.String()
}

func renderHUD(f game.Frame, cfg game.Config) string {
	sep := styleHudDim.Render("  |  ")

	if f.Mode == game.ModeSurvival {
		hearts := strings.Repeat("♥", max(f.Lives, 0)) + strings.Repeat("♡", max(game.SurvivalLives-f.Lives, 0))
		return strings.Join([]string{
			styleHudLabel.Render("lives ") + styleLoss.Render(hearts),
			sep,
			styleHudLabel.Render("returns ") + styleHudScore.Render(fmt.Sprintf("%d", f.UserScore)),
			sep,
			styleHudLabel.Render("time ") + styleHudValue.Render(formatDuration(f.Elapsed)),
			sep,
			styleHudLabel.Render("speed ") + styleHudValue.Render(fmt.Sprintf("%.2fx", f.Multiplier)),
		}, "")
	}

	you := styleHudLabel.Render("you ") + styleHudScore.Render(fmt.Sprintf("%2d", f.UserScore))
	cpu := styleHudValue.Render(fmt.Sprintf("%2d", f.OpponentScore)) + styleHudLabel.Render(" cpu")
	score := you + styleHudDim.Render(" : ") + cpu
	if f.UserSide == game.SideRight {
		score = styleHudLabel.Render("cpu ") + styleHudValue.Render(fmt.Sprintf("%2d", f.OpponentScore)) +
			styleHudDim.Render(" : ") +
			styleHudScore.Render(fmt.Sprintf("%2d", f.UserScore)) + styleHudLabel.Render(" you")
	}
	target := "endless"
	if cfg.MaxPoints > 0 {
		target = fmt.Sprintf("first to %d", cfg.MaxPoints)
	}
	return strings.Join([]string{
		score,
		sep,
		styleHudValue.Render(target),
		sep,
		styleHudLabel.Render("level ") + styleHudValue.Render(string(cfg.Difficulty)),
		sep,
		styleHudLabel.Render("time ") + styleHudValue.Render(formatDuration(f.Elapsed)),
	}, "")
}

func formatDuration(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

func formatSeconds(n int) string {
	return fmt.Sprintf("%ds", n)
}

// ===== Render helpers (cached styles) =====

var (
	styleHudLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("#8b949e"))
	styleHudValue = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#d0d7de"))
	styleHudScore = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffd33d"))
	styleHudDim   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6e7681"))
	styleBorder   = lipgloss.NewStyle().Foreground(lipgloss.Color("#30363d"))

	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7ee787"))
	styleCursor = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffd33d"))
	styleStart  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7ee787"))
	styleError  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff7b72"))
	styleWin    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7ee787"))
	styleLoss   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff7b72"))

	stylePanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#30363d")).
			Padding(1, 3)

	userCell   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7ee787")).Render("█")
	cpuCell    = lipgloss.NewStyle().Foreground(lipgloss.Color("#d0d7de")).Render("█")
	ballCell   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffd33d")).Render("●")
	netCell    = lipgloss.NewStyle().Foreground(lipgloss.Color("#30363d")).Render("┊")
	flashCell  = lipgloss.NewStyle().Background(lipgloss.Color("#ff7b72")).Render(" ")
	flashFaded = lipgloss.NewStyle().Background(lipgloss.Color("#6e2b2b")).Render(" ")
)

type fieldOverlay struct {
	Title  string
	Lines  []string
	Footer string
}

func renderFieldTo(out *bytes.Buffer, f game.Frame, v mapping.Viewport, leftPad string, overlay *fieldOverlay, canvas *canvasBuf) {
	w := v.Cols
	h := v.Rows
	if w <= 0 || h <= 0 {
		return
	}

	canvas.Resize(w, h)
	canvas.Fill(" ")

	// Net.
	mid := w / 2
	for y := 0; y < h; y += 2 {
		canvas.Set(mid, y, netCell)
	}

	// Exit flashes under everything else.
	for _, fl := range f.Flashes {
		cell := flashFaded
		if fl.Remaining > flashBright {
			cell = flashCell
		}
		fillRect(canvas, v, fl.Rect, cell)
	}

	fillRect(canvas, v, f.User, userCell)
	fillRect(canvas, v, f.Opponent, cpuCell)

	// Ball: one cell at its center.
	canvas.Set(v.Col(f.Ball.X+f.Ball.W/2), v.Row(f.Ball.Y+f.Ball.H/2), ballCell)

	if overlay != nil {
		applyOverlay(canvas, overlay)
	}

	for y := 0; y < h; y++ {
		if leftPad != "" {
			out.WriteString(leftPad)
		}
		rowOff := y * w
		for x := 0; x < w; x++ {
			out.WriteString(canvas.cells[rowOff+x])
		}
		out.WriteByte('\n')
	}
}

func fillRect(canvas *canvasBuf, v mapping.Viewport, r game.Rect, cell string) {
	cols := v.ColSpan(r.X, r.W)
	rows := v.RowSpan(r.Y, r.H)
	for y := rows.From; y < rows.To; y++ {
		for x := cols.From; x < cols.To; x++ {
			canvas.Set(x, y, cell)
		}
	}
}

type canvasBuf struct {
	w     int
	h     int
	cells []string // flat: y*w + x
}

func (c *canvasBuf) Reset() {
	c.w = 0
	c.h = 0
	c.cells = nil
}

func (c *canvasBuf) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		c.Reset()
		return
	}
	n := w * h
	if c.w == w && c.h == h && cap(c.cells) >= n {
		c.cells = c.cells[:n]
		return
	}
	c.w = w
	c.h = h
	c.cells = make([]string, n)
}

func (c *canvasBuf) Fill(cell string) {
	for i := range c.cells {
		c.cells[i] = cell
	}
}

func (c *canvasBuf) Set(x, y int, cell string) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y*c.w+x] = cell
}

func applyOverlay(canvas *canvasBuf, ov *fieldOverlay) {
	w, h := canvas.w, canvas.h
	if w == 0 || h == 0 {
		return
	}

	lines := make([]string, 0, 2+len(ov.Lines))
	if ov.Title != "" {
		lines = append(lines, ov.Title)
	}
	lines = append(lines, ov.Lines...)
	if ov.Footer != "" {
		lines = append(lines, ov.Footer)
	}

	innerW := 0
	for _, s := range lines {
		innerW = max(innerW, len(s))
	}
	// Padding 1 and a border on each side.
	boxW := min(innerW+4, w)
	boxH := min(len(lines)+4, h)
	x0 := (w - boxW) / 2
	y0 := (h - boxH) / 2

	borderStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#30363d"))
	panelStyle := lipgloss.NewStyle().Background(lipgloss.Color("#161b22"))

	bgCell := panelStyle.Render(" ")
	for y := y0; y < y0+boxH; y++ {
		for x := x0; x < x0+boxW; x++ {
			canvas.Set(x, y, bgCell)
		}
	}

	hLine := borderStyle.Render("─")
	vLine := borderStyle.Render("│")
	for x := x0 + 1; x < x0+boxW-1; x++ {
		canvas.Set(x, y0, hLine)
		canvas.Set(x, y0+boxH-1, hLine)
	}
	for y := y0 + 1; y < y0+boxH-1; y++ {
		canvas.Set(x0, y, vLine)
		canvas.Set(x0+boxW-1, y, vLine)
	}
	canvas.Set(x0, y0, borderStyle.Render("╭"))
	canvas.Set(x0+boxW-1, y0, borderStyle.Render("╮"))
	canvas.Set(x0, y0+boxH-1, borderStyle.Render("╰"))
	canvas.Set(x0+boxW-1, y0+boxH-1, borderStyle.Render("╯"))

	for i, line := range lines {
		y := y0 + 2 + i
		if y >= y0+boxH-2 {
			break
		}
		if len(line) > innerW {
			line = line[:innerW]
		}
		startX := x0 + 2 + (innerW-len(line))/2

		var st lipgloss.Style
		switch {
		case i == 0 && ov.Title != "":
			st = styleHudScore
		case i == len(lines)-1 && ov.Footer != "":
			st = styleHudLabel
		default:
			st = styleHudValue
		}
		for j := 0; j < len(line); j++ {
			x := startX + j
			if x >= x0+boxW-2 {
				break
			}
			canvas.Set(x, y, panelStyle.Foreground(st.GetForeground()).Render(string(line[j])))
		}
	}
}
