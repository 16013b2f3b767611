package watch

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"
)

type tickMsg time.Time

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.opts.Interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) Init() tea.Cmd {
	if m.err != nil {
		return tea.Quit
	}

	return m.tick()
}

// handleTick refreshes the view and fires the low-lifetime warning and the
// expiry hooks, each at most once.
func (m *Model) handleTick() (tea.Model, tea.Cmd) {
	m.refresh()

	if m.err != nil {
		return m, tea.Quit
	}

	if !m.sess.Valid() {
		m.expired = true

		if err := m.notify(
			"Session expired",
			fmt.Sprintf("The access token for %s has expired", m.sess.Key()),
		); err != nil {
			slog.Warn("notification failed", slog.Any("error", err))
		}

		if err := m.runExpireCmd(); err != nil {
			slog.Error("expire command failed", slog.Any("error", err))
		}

		return m, tea.Quit
	}

	if !m.warned && m.percent <= m.opts.WarnPercent {
		m.warned = true

		slog.Info(
			"session lifetime low",
			slog.String("session", m.sess.Key()),
			slog.Int("percent", m.percent),
		)

		if err := m.notify(
			"Session expiring soon",
			fmt.Sprintf("%d%% of the access lifetime is left", m.percent),
		); err != nil {
			slog.Warn("notification failed", slog.Any("error", err))
		}
	}

	return m, m.tick()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m.handleTick()

	case tea.KeyMsg:
		if key.Matches(msg, defaultKeymap.quit) {
			return m, tea.Quit
		}

		return m, nil

	case tea.WindowSizeMsg:
		m.progress.Width = min(msg.Width-padding*2-4, maxWidth)

		return m, nil

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress, _ = progressModel.(progress.Model)

		return m, cmd
	}

	slog.Debug(spew.Sdump(msg))

	return m, nil
}
