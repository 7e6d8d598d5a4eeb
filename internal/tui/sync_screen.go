package tui

import "github.com/charmbracelet/bubbles/spinner"

type syncIndicator struct {
	spinner spinner.Model
}

func newSyncIndicator() syncIndicator {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return syncIndicator{spinner: s}
}

func (m syncIndicator) View() string {
	return m.spinner.View() + " Синхронизация..."
}
