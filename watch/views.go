package watch

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ayoisaiah/tanss/internal/timeutil"
)

func (m *Model) timeFormat() string {
	if m.opts.TwentyFourHour {
		return "15:04:05"
	}

	return "03:04:05 PM"
}

func (m *Model) View() string {
	if m.err != nil {
		return ""
	}

	var s strings.Builder

	s.WriteString(m.style.main.SetString(m.sess.Server).String())
	s.WriteString(" " + m.style.secondary.SetString(m.sess.Username).String())

	if m.sess.Expires != nil {
		s.WriteString(" " + strings.TrimSpace(
			m.style.hint.SetString(
				"until " + m.sess.Expires.Local().Format(m.timeFormat()),
			).String()),
		)
	}

	s.WriteString("\n\n")

	if m.expired {
		s.WriteString(m.style.warning.SetString("[Expired]").String())
		return m.style.base.Render(s.String())
	}

	remaining := timeutil.FormatSpan(m.sess.TimeRemaining())

	if m.warned {
		s.WriteString(m.style.warning.SetString(remaining).String())
	} else {
		s.WriteString(m.style.main.SetString(remaining).String())
	}

	s.WriteString(m.style.hint.SetString(fmt.Sprintf(" (%d%%)", m.percent)).String())
	s.WriteString("\n\n")
	s.WriteString(m.progress.ViewAs(float64(m.percent) / 100))
	s.WriteString("\n\n" + m.help.ShortHelpView([]key.Binding{
		defaultKeymap.quit,
	}))

	return m.style.base.Render(s.String())
}
