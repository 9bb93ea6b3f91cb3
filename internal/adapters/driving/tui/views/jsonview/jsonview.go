// Package jsonview provides the read-only panels that render an opaque
// JSON payload: technical summary, scope of supply and OEM recommendations.
package jsonview

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bidassist/bidassist-cli/internal/adapters/driving/tui/messages"
	"github.com/bidassist/bidassist-cli/internal/adapters/driving/tui/styles"
	"github.com/bidassist/bidassist-cli/internal/core/domain"
	"github.com/bidassist/bidassist-cli/internal/core/ports/driving"
)

// Loader fetches the payload for one panel.
type Loader func(ctx context.Context) (any, error)

// loadState is the lifecycle of one mount.
type loadState int

const (
	stateLoading loadState = iota
	stateLoaded
	stateFailed
)

// View renders one JSON payload with scrolling.
type View struct {
	styles *styles.Styles
	panel  messages.PanelID
	load   Loader
	ctx    context.Context

	generation   int
	state        loadState
	payload      any
	lines        []string
	err          error
	scrollOffset int
	focused      bool
	width        int
	height       int
}

// NewView creates a panel that fetches with load on every mount.
func NewView(s *styles.Styles, panel messages.PanelID, load Loader) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles: s,
		panel:  panel,
		load:   load,
		ctx:    context.Background(),
	}
}

// NewTechnicalSummary creates the technical summary panel.
func NewTechnicalSummary(s *styles.Styles, svc driving.DashboardService) *View {
	return NewView(s, messages.PanelTechnicalSummary, func(ctx context.Context) (any, error) {
		if svc == nil {
			return nil, domain.ErrNotImplemented
		}
		return svc.TechnicalSummary(ctx)
	})
}

// NewScopeOfSupply creates the scope-of-supply panel.
func NewScopeOfSupply(s *styles.Styles, svc driving.DashboardService) *View {
	return NewView(s, messages.PanelScopeOfSupply, func(ctx context.Context) (any, error) {
		if svc == nil {
			return nil, domain.ErrNotImplemented
		}
		return svc.ScopeOfSupply(ctx)
	})
}

// NewOEMRecommendations creates the OEM recommendations panel.
func NewOEMRecommendations(s *styles.Styles, svc driving.DashboardService) *View {
	return NewView(s, messages.PanelOEMRecommendations, func(ctx context.Context) (any, error) {
		if svc == nil {
			return nil, domain.ErrNotImplemented
		}
		recs, err := svc.OEMRecommendations(ctx)
		if err != nil {
			return nil, err
		}
		return recs.Data(), nil
	})
}

// WithContext sets the context passed to the loader.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init mounts the panel: prior state is dropped and exactly one fetch is issued.
func (v *View) Init() tea.Cmd {
	v.generation++
	v.state = stateLoading
	v.payload = nil
	v.lines = nil
	v.err = nil
	v.scrollOffset = 0

	gen := v.generation
	panel := v.panel
	load := v.load
	ctx := v.ctx
	return func() tea.Msg {
		if load == nil {
			return messages.PayloadLoaded{Panel: panel, Generation: gen, Err: domain.ErrNotImplemented}
		}
		payload, err := load(ctx)
		return messages.PayloadLoaded{Panel: panel, Generation: gen, Payload: payload, Err: err}
	}
}

// Update handles messages for the panel.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)

	case messages.PayloadLoaded:
		if msg.Panel != v.panel || msg.Generation != v.generation {
			return v, nil
		}
		if msg.Err != nil {
			v.state = stateFailed
			v.err = msg.Err
			v.payload = nil
			v.lines = nil
			return v, nil
		}
		v.state = stateLoaded
		v.payload = msg.Payload
		v.lines = strings.Split(domain.IndentJSON(msg.Payload), "\n")
		v.scrollOffset = 0

	case tea.KeyMsg:
		if v.focused {
			v.handleKeyMsg(msg)
		}
	}
	return v, nil
}

// handleKeyMsg scrolls the payload.
func (v *View) handleKeyMsg(msg tea.KeyMsg) {
	switch msg.String() {
	case "up", "k":
		if v.scrollOffset > 0 {
			v.scrollOffset--
		}
	case "down", "j":
		if v.scrollOffset < v.maxScrollOffset() {
			v.scrollOffset++
		}
	case "home", "g":
		v.scrollOffset = 0
	case "end", "G":
		v.scrollOffset = v.maxScrollOffset()
	}
}

// visibleLines returns how many payload lines fit below the title.
func (v *View) visibleLines() int {
	if v.height <= 0 {
		return len(v.lines)
	}
	available := v.height - 2
	if available < 1 {
		available = 1
	}
	return available
}

func (v *View) maxScrollOffset() int {
	maxOffset := len(v.lines) - v.visibleLines()
	if maxOffset < 0 {
		maxOffset = 0
	}
	return maxOffset
}

// View renders the panel body.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.PanelTitle.Render(v.panel.Title()))
	b.WriteString("\n")

	switch v.state {
	case stateLoading:
		b.WriteString(v.styles.Muted.Render("Loading..."))
		return b.String()
	case stateFailed:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err)))
		return b.String()
	case stateLoaded:
	}

	if isEmptyPayload(v.payload) {
		b.WriteString(v.styles.Muted.Render("(empty)"))
		return b.String()
	}

	end := v.scrollOffset + v.visibleLines()
	if end > len(v.lines) {
		end = len(v.lines)
	}
	b.WriteString(v.styles.Normal.Render(strings.Join(v.lines[v.scrollOffset:end], "\n")))
	return b.String()
}

func isEmptyPayload(p any) bool {
	switch val := p.(type) {
	case nil:
		return true
	case map[string]any:
		return len(val) == 0
	case domain.TechnicalSummary:
		return len(val) == 0
	case domain.ScopeOfSupply:
		return len(val) == 0
	case []any:
		return len(val) == 0
	}
	return false
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	if v.scrollOffset > v.maxScrollOffset() {
		v.scrollOffset = v.maxScrollOffset()
	}
}

// SetFocused marks the panel as the scroll target.
func (v *View) SetFocused(focused bool) {
	v.focused = focused
}

// Focused reports whether the panel receives scroll keys.
func (v *View) Focused() bool {
	return v.focused
}

// Panel returns the panel identifier.
func (v *View) Panel() messages.PanelID {
	return v.panel
}

// Generation returns the current mount number.
func (v *View) Generation() int {
	return v.generation
}

// Loading reports whether the current mount is still waiting.
func (v *View) Loading() bool {
	return v.state == stateLoading
}

// Loaded reports whether the current mount succeeded.
func (v *View) Loaded() bool {
	return v.state == stateLoaded
}

// Payload returns the held payload, nil unless loaded.
func (v *View) Payload() any {
	return v.payload
}

// Content returns the full rendered payload regardless of scroll.
func (v *View) Content() string {
	return strings.Join(v.lines, "\n")
}

// Err returns the error of the current mount.
func (v *View) Err() error {
	return v.err
}

// ScrollOffset returns the first visible payload line.
func (v *View) ScrollOffset() int {
	return v.scrollOffset
}
