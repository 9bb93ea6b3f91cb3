// Package notice provides the blocking notice modal.
//
// While a notice is active it swallows every key except the dismiss
// binding, so the user must acknowledge it before doing anything else.
package notice

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bidassist/bidassist-cli/internal/adapters/driving/tui/keymap"
	"github.com/bidassist/bidassist-cli/internal/adapters/driving/tui/messages"
	"github.com/bidassist/bidassist-cli/internal/adapters/driving/tui/styles"
)

// Modal shows one notice at a time.
type Modal struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	notice messages.Notice
	active bool
	width  int
	height int
}

// NewModal creates an inactive modal.
func NewModal(s *styles.Styles, km *keymap.KeyMap) *Modal {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &Modal{styles: s, keymap: km}
}

// Show activates the modal with n, replacing any notice already shown.
func (m *Modal) Show(n messages.Notice) {
	m.notice = n
	m.active = true
}

// Dismiss closes the modal.
func (m *Modal) Dismiss() {
	m.active = false
}

// Active reports whether a notice is being shown.
func (m *Modal) Active() bool {
	return m.active
}

// Notice returns the current or last shown notice.
func (m *Modal) Notice() messages.Notice {
	return m.notice
}

// Update consumes key presses while active.
func (m *Modal) Update(msg tea.Msg) (*Modal, tea.Cmd) {
	if !m.active {
		return m, nil
	}
	if k, ok := msg.(tea.KeyMsg); ok && keymap.Matches(k.String(), m.keymap.Dismiss) {
		m.Dismiss()
	}
	return m, nil
}

// SetDimensions sets the area the modal is centred in.
func (m *Modal) SetDimensions(width, height int) {
	m.width = width
	m.height = height
}

// View renders the modal centred in the available area.
func (m *Modal) View() string {
	if !m.active {
		return ""
	}

	var text string
	switch m.notice.Kind {
	case messages.NoticeSuccess:
		text = m.styles.Success.Render(m.notice.Text)
	case messages.NoticeError:
		text = m.styles.Error.Render(m.notice.Text)
	default:
		text = m.styles.Normal.Render(m.notice.Text)
	}

	hint := m.keymap.Dismiss.Help()
	box := m.styles.Modal.Render(lipgloss.JoinVertical(lipgloss.Center,
		text,
		"",
		m.styles.Help.Render("["+hint.Key+"] "+hint.Desc),
	))

	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
