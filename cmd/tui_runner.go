package cmd

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fchimpan/gh-kusa-pong/internal/audio"
	"github.com/fchimpan/gh-kusa-pong/internal/tui"
)

func defaultRunTUI(opts tui.Options) error {
	player := audio.NewPlayer()
	if err := player.Init(); err != nil {
		log.Printf("audio: %v (pings disabled)", err)
	}
	defer player.Close()
	opts.Sound = player

	p := tea.NewProgram(
		tui.NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
