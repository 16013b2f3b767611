// Package watch renders a live view of a stored session in the terminal and
// alerts the user when its access credential is about to expire
package watch

import (
	"os/exec"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/tanss/internal/session"
)

const (
	padding  = 2
	maxWidth = 80
)

// Notifier shows a desktop notification.
type Notifier func(title, msg, icon string) error

// Runner executes an external command.
type Runner func(name string, args ...string) error

// Options configures a watch Model.
type Options struct {
	Notify      Notifier
	Run         Runner
	Icon        string
	ExpireCmd   string
	WarnPercent int
	// Notifications are skipped when false
	NotifyEnabled  bool
	TwentyFourHour bool
	DarkTheme      bool
	// Interval between refreshes; one second when zero
	Interval time.Duration
}

// Model is the bubbletea model of the watch view.
type Model struct {
	sess     *session.Session
	opts     Options
	style    style
	progress progress.Model
	help     help.Model
	err      error
	percent  int
	warned   bool
	expired  bool
}

type style struct {
	base      lipgloss.Style
	main      lipgloss.Style
	secondary lipgloss.Style
	hint      lipgloss.Style
	warning   lipgloss.Style
}

func newStyle(dark bool) style {
	fg := lipgloss.Color("#1C1C1C")
	if dark {
		fg = lipgloss.Color("#FAFAFA")
	}

	return style{
		base:      lipgloss.NewStyle().Padding(1, padding),
		main:      lipgloss.NewStyle().Bold(true).Foreground(fg),
		secondary: lipgloss.NewStyle().Foreground(lipgloss.Color("#12EAEA")),
		hint:      lipgloss.NewStyle().Foreground(lipgloss.Color("#7D7D7D")),
		warning:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E84855")),
	}
}

// New returns a model watching sess. Nil hooks fall back to desktop
// notifications via beeep and os/exec.
func New(sess *session.Session, opts Options) *Model {
	if opts.Notify == nil {
		opts.Notify = func(title, msg, icon string) error {
			return beeep.Notify(title, msg, icon)
		}
	}

	if opts.Run == nil {
		opts.Run = func(name string, args ...string) error {
			return exec.Command(name, args...).Run()
		}
	}

	if opts.Interval <= 0 {
		opts.Interval = time.Second
	}

	m := &Model{
		sess:     sess,
		opts:     opts,
		style:    newStyle(opts.DarkTheme),
		progress: progress.New(progress.WithDefaultGradient()),
		help:     help.New(),
	}

	m.refresh()

	return m
}

// Err returns the error that stopped the program, if any.
func (m *Model) Err() error {
	return m.err
}

// Expired reports whether the view observed the session expire.
func (m *Model) Expired() bool {
	return m.expired
}

// refresh recomputes the displayed percentage from the session.
func (m *Model) refresh() {
	percent, err := m.sess.PercentRemaining()
	if err != nil {
		m.err = err
		return
	}

	m.percent = percent
}

// runExpireCmd executes the configured command once the session expires.
func (m *Model) runExpireCmd() error {
	if m.opts.ExpireCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(m.opts.ExpireCmd)
	if err != nil {
		return errParseExpireCmd.Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	return m.opts.Run(cmdSlice[0], cmdSlice[1:]...)
}

func (m *Model) notify(title, msg string) error {
	if !m.opts.NotifyEnabled {
		return nil
	}

	return m.opts.Notify(title, msg, m.opts.Icon)
}

// Run starts the interactive view and blocks until it exits.
func Run(sess *session.Session, opts Options) (*Model, error) {
	m := New(sess, opts)

	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return nil, err
	}

	return m, m.err
}
