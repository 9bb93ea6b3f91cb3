// Package specmatch provides the spec-match table panel.
package specmatch

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bidassist/bidassist-cli/internal/adapters/driving/tui/messages"
	"github.com/bidassist/bidassist-cli/internal/adapters/driving/tui/styles"
	"github.com/bidassist/bidassist-cli/internal/core/domain"
	"github.com/bidassist/bidassist-cli/internal/core/ports/driving"
)

// Headers are the fixed column titles.
var Headers = []string{"RFP Item", "OEM SKU", "Spec Match %"}

// View renders spec-match rows in backend order.
type View struct {
	styles  *styles.Styles
	service driving.DashboardService
	ctx     context.Context

	generation   int
	loading      bool
	rows         []domain.SpecMatchRow
	err          error
	scrollOffset int
	focused      bool
	width        int
	height       int
}

// NewView creates a new spec-match view.
func NewView(s *styles.Styles, service driving.DashboardService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:  s,
		service: service,
		ctx:     context.Background(),
	}
}

// WithContext sets the context passed to the service.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init mounts the table: prior rows are dropped and one fetch is issued.
func (v *View) Init() tea.Cmd {
	v.generation++
	v.loading = true
	v.rows = nil
	v.err = nil
	v.scrollOffset = 0

	gen := v.generation
	svc := v.service
	ctx := v.ctx
	return func() tea.Msg {
		if svc == nil {
			return messages.SpecMatchLoaded{Generation: gen, Err: domain.ErrNotImplemented}
		}
		rows, err := svc.SpecMatch(ctx)
		return messages.SpecMatchLoaded{Generation: gen, Rows: rows, Err: err}
	}
}

// Update handles messages for the table.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)

	case messages.SpecMatchLoaded:
		if msg.Generation != v.generation {
			return v, nil
		}
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
			v.rows = nil
			return v, nil
		}
		v.rows = msg.Rows
		if v.rows == nil {
			v.rows = []domain.SpecMatchRow{}
		}

	case tea.KeyMsg:
		if !v.focused {
			return v, nil
		}
		switch msg.String() {
		case "up", "k":
			if v.scrollOffset > 0 {
				v.scrollOffset--
			}
		case "down", "j":
			if v.scrollOffset < v.maxScrollOffset() {
				v.scrollOffset++
			}
		}
	}
	return v, nil
}

// TableRows returns the header followed by one row per match, unstyled.
func (v *View) TableRows() [][]string {
	out := make([][]string, 0, len(v.rows)+1)
	out = append(out, Headers)
	for _, r := range v.rows {
		out = append(out, []string{r.RFPItem, r.OEMSKU, r.FormattedMatch()})
	}
	return out
}

// visibleRows returns how many data rows fit in the panel.
func (v *View) visibleRows() int {
	if v.height <= 0 {
		return len(v.rows)
	}
	// title, top border, header, header separator, bottom border
	available := v.height - 5
	if available < 1 {
		available = 1
	}
	return available
}

func (v *View) maxScrollOffset() int {
	maxOffset := len(v.rows) - v.visibleRows()
	if maxOffset < 0 {
		maxOffset = 0
	}
	return maxOffset
}

// View renders the table.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.PanelTitle.Render(messages.PanelSpecMatch.Title()))
	b.WriteString("\n")

	if v.loading {
		b.WriteString(v.styles.Muted.Render("Loading..."))
		return b.String()
	}
	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err)))
		return b.String()
	}

	end := v.scrollOffset + v.visibleRows()
	if end > len(v.rows) {
		end = len(v.rows)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(v.styles.Theme().Border)).
		Headers(Headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return v.styles.TableHeader
			}
			return v.styles.TableCell
		})
	for _, r := range v.rows[v.scrollOffset:end] {
		t.Row(r.RFPItem, r.OEMSKU, r.FormattedMatch())
	}

	b.WriteString(t.Render())
	if len(v.rows) > end-v.scrollOffset {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("rows %d-%d of %d",
			v.scrollOffset+1, end, len(v.rows))))
	}
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	if v.scrollOffset > v.maxScrollOffset() {
		v.scrollOffset = v.maxScrollOffset()
	}
}

// SetFocused marks the table as the scroll target.
func (v *View) SetFocused(focused bool) {
	v.focused = focused
}

// Panel returns the panel identifier.
func (v *View) Panel() messages.PanelID {
	return messages.PanelSpecMatch
}

// Generation returns the current mount number.
func (v *View) Generation() int {
	return v.generation
}

// Loading reports whether the current mount is still waiting.
func (v *View) Loading() bool {
	return v.loading
}

// Loaded reports whether the current mount succeeded.
func (v *View) Loaded() bool {
	return v.generation > 0 && !v.loading && v.err == nil
}

// Rows returns the held rows.
func (v *View) Rows() []domain.SpecMatchRow {
	return v.rows
}

// Err returns the error of the current mount.
func (v *View) Err() error {
	return v.err
}
