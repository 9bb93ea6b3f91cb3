package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bidassist/bidassist-cli/internal/adapters/driving/tui/components/notice"
	"github.com/bidassist/bidassist-cli/internal/adapters/driving/tui/components/status"
	"github.com/bidassist/bidassist-cli/internal/adapters/driving/tui/keymap"
	"github.com/bidassist/bidassist-cli/internal/adapters/driving/tui/messages"
	"github.com/bidassist/bidassist-cli/internal/adapters/driving/tui/styles"
	"github.com/bidassist/bidassist-cli/internal/adapters/driving/tui/views/jsonview"
	"github.com/bidassist/bidassist-cli/internal/adapters/driving/tui/views/specmatch"
	"github.com/bidassist/bidassist-cli/internal/adapters/driving/tui/views/upload"
	"github.com/bidassist/bidassist-cli/internal/logger"
)

// WindowTitle is the terminal title set on start.
const WindowTitle = "RFP BidAssist AI - Dashboard"

// focusOrder is the tab cycle across panels.
var focusOrder = []messages.PanelID{
	messages.PanelUpload,
	messages.PanelTechnicalSummary,
	messages.PanelScopeOfSupply,
	messages.PanelSpecMatch,
	messages.PanelOEMRecommendations,
}

// App is the dashboard root model following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	cancel context.CancelFunc

	styles *styles.Styles
	keymap *keymap.KeyMap

	uploadView    *upload.View
	summaryView   *jsonview.View
	scopeView     *jsonview.View
	specMatchView *specmatch.View
	oemView       *jsonview.View

	statusBar *status.Bar
	modal     *notice.Modal

	focus  int
	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates the dashboard with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	a := &App{
		ports:         ports,
		styles:        s,
		keymap:        km,
		uploadView:    upload.NewView(s, km, ports.Upload, ports.StartDir),
		summaryView:   jsonview.NewTechnicalSummary(s, ports.Dashboard),
		scopeView:     jsonview.NewScopeOfSupply(s, ports.Dashboard),
		specMatchView: specmatch.NewView(s, ports.Dashboard),
		oemView:       jsonview.NewOEMRecommendations(s, ports.Dashboard),
		statusBar:     status.NewBar(s, km),
		modal:         notice.NewModal(s, km),
	}
	a.statusBar.SetOrigin(ports.Dashboard.Origin())
	a.WithContext(context.Background())
	a.applyFocus()
	return a, nil
}

// WithContext sets the context for the app and every panel.
// The context is cancelled when the user quits.
func (a *App) WithContext(ctx context.Context) *App {
	if a.cancel != nil {
		a.cancel()
	}
	a.ctx, a.cancel = context.WithCancel(ctx)
	a.uploadView.WithContext(a.ctx)
	a.summaryView.WithContext(a.ctx)
	a.scopeView.WithContext(a.ctx)
	a.specMatchView.WithContext(a.ctx)
	a.oemView.WithContext(a.ctx)
	return a
}

// Init implements tea.Model.
// Each read-only panel issues its fetch exactly once per mount.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(WindowTitle),
		a.uploadView.Init(),
		a.mountPanels(),
	)
}

// mountPanels starts a fresh fetch for every read-only panel.
func (a *App) mountPanels() tea.Cmd {
	logger.Debug("tui: mounting read-only panels")
	cmds := []tea.Cmd{
		a.summaryView.Init(),
		a.scopeView.Init(),
		a.specMatchView.Init(),
		a.oemView.Init(),
	}
	a.syncProgress()
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a, a.handleKeyMsg(msg)

	case messages.PayloadLoaded:
		switch msg.Panel {
		case messages.PanelTechnicalSummary:
			a.summaryView, cmd = a.summaryView.Update(msg)
		case messages.PanelScopeOfSupply:
			a.scopeView, cmd = a.scopeView.Update(msg)
		case messages.PanelOEMRecommendations:
			a.oemView, cmd = a.oemView.Update(msg)
		case messages.PanelUpload, messages.PanelSpecMatch:
		}
		if msg.Err != nil {
			logger.Warn("%s: %v", msg.Panel.Title(), msg.Err)
		}
		a.syncProgress()
		return a, cmd

	case messages.SpecMatchLoaded:
		a.specMatchView, cmd = a.specMatchView.Update(msg)
		if msg.Err != nil {
			logger.Warn("%s: %v", messages.PanelSpecMatch.Title(), msg.Err)
		}
		a.syncProgress()
		return a, cmd

	case messages.UploadCompleted:
		a.uploadView, cmd = a.uploadView.Update(msg)
		a.statusBar.SetUploading(false)
		return a, cmd

	case messages.NoticeRequested:
		a.modal.Show(msg.Notice)
		return a, nil

	case messages.RefreshRequested:
		return a, a.mountPanels()

	case messages.Quit:
		return a, a.quit()
	}

	// Picker directory reads, spinner ticks and anything else.
	a.uploadView, cmd = a.uploadView.Update(msg)
	return a, cmd
}

func (a *App) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return a.quit()
	}

	if a.modal.Active() {
		var cmd tea.Cmd
		a.modal, cmd = a.modal.Update(msg)
		return cmd
	}

	var cmd tea.Cmd
	if a.uploadView.Picking() {
		a.uploadView, cmd = a.uploadView.Update(msg)
		return cmd
	}

	key := msg.String()
	switch {
	case keymap.Matches(key, a.keymap.Quit):
		return a.quit()

	case keymap.Matches(key, a.keymap.NextPanel):
		a.focus = (a.focus + 1) % len(focusOrder)
		a.applyFocus()
		return nil

	case keymap.Matches(key, a.keymap.PrevPanel):
		a.focus = (a.focus + len(focusOrder) - 1) % len(focusOrder)
		a.applyFocus()
		return nil

	case keymap.Matches(key, a.keymap.Refresh):
		return a.mountPanels()

	case keymap.Matches(key, a.keymap.Open), keymap.Matches(key, a.keymap.Submit):
		a.uploadView, cmd = a.uploadView.Update(msg)
		a.statusBar.SetUploading(a.uploadView.Uploading())
		return cmd
	}

	switch a.FocusedPanel() {
	case messages.PanelTechnicalSummary:
		a.summaryView, cmd = a.summaryView.Update(msg)
	case messages.PanelScopeOfSupply:
		a.scopeView, cmd = a.scopeView.Update(msg)
	case messages.PanelSpecMatch:
		a.specMatchView, cmd = a.specMatchView.Update(msg)
	case messages.PanelOEMRecommendations:
		a.oemView, cmd = a.oemView.Update(msg)
	case messages.PanelUpload:
	}
	return cmd
}

func (a *App) quit() tea.Cmd {
	if a.cancel != nil {
		a.cancel()
	}
	return tea.Quit
}

func (a *App) applyFocus() {
	focused := a.FocusedPanel()
	a.uploadView.SetFocused(focused == messages.PanelUpload)
	a.summaryView.SetFocused(focused == messages.PanelTechnicalSummary)
	a.scopeView.SetFocused(focused == messages.PanelScopeOfSupply)
	a.specMatchView.SetFocused(focused == messages.PanelSpecMatch)
	a.oemView.SetFocused(focused == messages.PanelOEMRecommendations)
}

// syncProgress pushes panel load counts into the status bar.
func (a *App) syncProgress() {
	loaded, failed := 0, 0
	for _, p := range []interface {
		Loaded() bool
		Err() error
	}{a.summaryView, a.scopeView, a.specMatchView, a.oemView} {
		switch {
		case p.Loaded():
			loaded++
		case p.Err() != nil:
			failed++
		}
	}
	a.statusBar.SetProgress(loaded, failed, len(messages.ReadPanels()))
}

// View implements tea.Model.
func (a *App) View() string {
	if a.modal.Active() {
		return a.modal.View()
	}

	header := a.styles.Title.Render(WindowTitle)

	col := a.columnWidth()
	top := a.panel(messages.PanelUpload, a.uploadView.View(), a.width-2)
	row1 := lipgloss.JoinHorizontal(lipgloss.Top,
		a.panel(messages.PanelTechnicalSummary, a.summaryView.View(), col),
		a.panel(messages.PanelScopeOfSupply, a.scopeView.View(), col),
	)
	row2 := lipgloss.JoinHorizontal(lipgloss.Top,
		a.panel(messages.PanelSpecMatch, a.specMatchView.View(), col),
		a.panel(messages.PanelOEMRecommendations, a.oemView.View(), col),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		header, top, row1, row2, a.statusBar.View())
}

func (a *App) panel(id messages.PanelID, body string, width int) string {
	style := a.styles.Panel
	if id == a.FocusedPanel() {
		style = a.styles.FocusedPanel
	}
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(body)
}

func (a *App) columnWidth() int {
	if a.width <= 0 {
		return 0
	}
	// two bordered panels side by side
	return a.width/2 - 2
}

// panelHeight is the body height of one grid panel.
func (a *App) panelHeight() int {
	if a.height <= 0 {
		return 0
	}
	// header, upload panel with borders, status bar, grid borders
	h := (a.height-1-6-1)/2 - 2
	if h < 3 {
		h = 3
	}
	return h
}

// SetDimensions sets the terminal dimensions and resizes every panel.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true

	col := a.columnWidth() - 2
	h := a.panelHeight()
	a.uploadView.SetDimensions(width-4, height-4)
	a.summaryView.SetDimensions(col, h)
	a.scopeView.SetDimensions(col, h)
	a.specMatchView.SetDimensions(col, h)
	a.oemView.SetDimensions(col, h)
	a.statusBar.SetWidth(width)
	a.modal.SetDimensions(width, height)
}

// Run starts the dashboard.
func (a *App) Run() error {
	defer a.cancel()
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// FocusedPanel returns the panel receiving scroll keys.
func (a *App) FocusedPanel() messages.PanelID {
	return focusOrder[a.focus]
}

// Ready reports whether the first window size has arrived.
func (a *App) Ready() bool {
	return a.ready
}

// Context returns the app context.
func (a *App) Context() context.Context {
	return a.ctx
}

// Modal returns the notice modal.
func (a *App) Modal() *notice.Modal {
	return a.modal
}

// StatusBar returns the status bar.
func (a *App) StatusBar() *status.Bar {
	return a.statusBar
}

// UploadView returns the upload panel.
func (a *App) UploadView() *upload.View {
	return a.uploadView
}

// SummaryView returns the technical summary panel.
func (a *App) SummaryView() *jsonview.View {
	return a.summaryView
}

// ScopeView returns the scope of supply panel.
func (a *App) ScopeView() *jsonview.View {
	return a.scopeView
}

// SpecMatchView returns the spec-match table.
func (a *App) SpecMatchView() *specmatch.View {
	return a.specMatchView
}

// OEMView returns the OEM recommendations panel.
func (a *App) OEMView() *jsonview.View {
	return a.oemView
}
