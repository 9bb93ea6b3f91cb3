// Package status provides the dashboard status bar.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bidassist/bidassist-cli/internal/adapters/driving/tui/keymap"
	"github.com/bidassist/bidassist-cli/internal/adapters/driving/tui/styles"
)

// State represents the overall dashboard state for display.
type State string

const (
	StateLoading   State = "loading"
	StateReady     State = "ready"
	StateUploading State = "uploading"
	StateError     State = "error"
)

// Bar displays the backend origin, panel progress and keybinding hints.
type Bar struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	state   State
	origin  string
	message string
	loaded  int
	failed  int
	total   int
	width   int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateLoading,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(msg tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders origin and progress.
func (s *Bar) renderLeft() string {
	parts := make([]string, 0, 3)
	if s.origin != "" {
		parts = append(parts, s.styles.Normal.Render(s.origin))
	}

	progress := fmt.Sprintf("panels %d/%d", s.loaded, s.total)
	if s.failed > 0 {
		progress += fmt.Sprintf(" (%d failed)", s.failed)
	}

	switch s.state {
	case StateUploading:
		parts = append(parts, s.styles.Warning.Render("Uploading..."))
	case StateError:
		parts = append(parts, s.styles.Error.Render(progress))
	case StateLoading:
		parts = append(parts, s.styles.Muted.Render(progress))
	case StateReady:
		parts = append(parts, s.styles.Success.Render(progress))
	}

	if s.message != "" {
		parts = append(parts, s.styles.Muted.Render(s.message))
	}
	return strings.Join(parts, "  ")
}

// renderRight renders keybinding hints.
func (s *Bar) renderRight() string {
	bindings := s.keymap.ShortHelp()
	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Help.Render(strings.Join(hints, " | "))
}

// SetProgress records how many of total panels have settled.
// The state is derived unless an upload is in flight.
func (s *Bar) SetProgress(loaded, failed, total int) {
	s.loaded = loaded
	s.failed = failed
	s.total = total
	if s.state == StateUploading {
		return
	}
	s.state = s.progressState()
}

func (s *Bar) progressState() State {
	switch {
	case s.failed > 0:
		return StateError
	case s.loaded < s.total:
		return StateLoading
	default:
		return StateReady
	}
}

// SetUploading toggles the uploading indicator.
func (s *Bar) SetUploading(uploading bool) {
	if uploading {
		s.state = StateUploading
		return
	}
	s.state = s.progressState()
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetOrigin sets the backend origin shown on the left.
func (s *Bar) SetOrigin(origin string) {
	s.origin = origin
}

// Origin returns the backend origin.
func (s *Bar) Origin() string {
	return s.origin
}

// SetMessage sets a transient message, usually the last notice.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// Progress returns loaded, failed and total panel counts.
func (s *Bar) Progress() (loaded, failed, total int) {
	return s.loaded, s.failed, s.total
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Bindings exposes the hint bindings for tests.
func (s *Bar) Bindings() []key.Binding {
	return s.keymap.ShortHelp()
}
