// Package upload provides the RFP upload panel.
//
// The panel holds at most one selected file. Submitting without a
// selection asks for a notice and never contacts the backend.
package upload

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bidassist/bidassist-cli/internal/adapters/driving/tui/keymap"
	"github.com/bidassist/bidassist-cli/internal/adapters/driving/tui/messages"
	"github.com/bidassist/bidassist-cli/internal/adapters/driving/tui/styles"
	"github.com/bidassist/bidassist-cli/internal/core/domain"
	"github.com/bidassist/bidassist-cli/internal/core/ports/driving"
	"github.com/bidassist/bidassist-cli/internal/logger"
)

// Notice texts shown after a submit.
const (
	NoFileText      = "Select a PDF file first."
	SuccessText     = "RFP uploaded & processed."
	FailurePrefix   = "Upload failed: "
	NotAllowedText  = "Only PDF files can be selected."
	pickerMaxHeight = 12
)

// View is the upload panel.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	service driving.UploadService
	ctx     context.Context

	picker    filepicker.Model
	picking   bool
	spinner   spinner.Model
	selected  string
	uploading bool

	focused bool
	width   int
	height  int
}

// NewView creates the upload panel rooted at startDir.
// An empty startDir uses the working directory.
func NewView(s *styles.Styles, km *keymap.KeyMap, service driving.UploadService, startDir string) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	if startDir == "" {
		if wd, err := os.Getwd(); err == nil {
			startDir = wd
		} else {
			startDir = "."
		}
	}

	fp := filepicker.New()
	fp.AllowedTypes = []string{".pdf"}
	fp.CurrentDirectory = startDir
	fp.ShowPermissions = false
	fp.AutoHeight = false
	fp.Height = pickerMaxHeight

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = s.Warning

	return &View{
		styles:  s,
		keymap:  km,
		service: service,
		ctx:     context.Background(),
		picker:  fp,
		spinner: sp,
	}
}

// WithContext sets the context passed to the upload service.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init reads the starting directory for the picker.
func (v *View) Init() tea.Cmd {
	return v.picker.Init()
}

// Update handles messages for the upload panel.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.UploadCompleted:
		return v, v.complete(msg)

	case spinner.TickMsg:
		if !v.uploading {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd

	case tea.KeyMsg:
		return v, v.handleKeyMsg(msg)
	}

	// Directory listings and window sizes belong to the picker.
	var cmd tea.Cmd
	v.picker, cmd = v.picker.Update(msg)
	return v, cmd
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if v.picking {
		if keymap.Matches(msg.String(), v.keymap.Cancel) {
			v.picking = false
			return nil
		}

		var cmd tea.Cmd
		v.picker, cmd = v.picker.Update(msg)

		if ok, path := v.picker.DidSelectFile(msg); ok {
			v.Select(path)
			v.picking = false
			return cmd
		}
		if ok, _ := v.picker.DidSelectDisabledFile(msg); ok {
			return tea.Batch(cmd, noticeCmd(messages.NoticeInfo, NotAllowedText))
		}
		return cmd
	}

	switch {
	case keymap.Matches(msg.String(), v.keymap.Open):
		return v.OpenPicker()
	case keymap.Matches(msg.String(), v.keymap.Submit):
		return v.Submit()
	}
	return nil
}

// OpenPicker shows the file browser and refreshes its listing.
func (v *View) OpenPicker() tea.Cmd {
	if v.uploading {
		return nil
	}
	v.picking = true
	return v.picker.Init()
}

// Select replaces the selection with path.
func (v *View) Select(path string) {
	v.selected = path
	logger.Debug("upload: selected %s", path)
}

// Submit uploads the selected file once.
// Submits while an upload is in flight are ignored.
func (v *View) Submit() tea.Cmd {
	if v.uploading {
		return nil
	}
	if v.selected == "" {
		return noticeCmd(messages.NoticeInfo, NoFileText)
	}

	v.uploading = true
	path := v.selected
	svc := v.service
	ctx := v.ctx
	upload := func() tea.Msg {
		if svc == nil {
			return messages.UploadCompleted{Path: path, Err: domain.ErrNotImplemented}
		}
		receipt, err := svc.Upload(ctx, path)
		return messages.UploadCompleted{Path: path, Receipt: receipt, Err: err}
	}
	return tea.Batch(v.spinner.Tick, upload)
}

func (v *View) complete(msg messages.UploadCompleted) tea.Cmd {
	v.uploading = false
	if msg.Err != nil {
		logger.Warn("upload of %s failed: %v", msg.Path, msg.Err)
		return noticeCmd(messages.NoticeError, FailurePrefix+msg.Err.Error())
	}
	if msg.Path == v.selected {
		v.selected = ""
	}
	return noticeCmd(messages.NoticeSuccess, SuccessText)
}

func noticeCmd(kind messages.NoticeKind, text string) tea.Cmd {
	return func() tea.Msg {
		return messages.NoticeRequested{Notice: messages.Notice{Kind: kind, Text: text}}
	}
}

// View renders the panel.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.PanelTitle.Render(messages.PanelUpload.Title()))
	b.WriteString("\n")

	if v.picking {
		b.WriteString(v.styles.Muted.Render("Choose a PDF (enter select, esc cancel)"))
		b.WriteString("\n")
		b.WriteString(v.picker.View())
		return b.String()
	}

	if v.selected == "" {
		b.WriteString(v.styles.Muted.Render("No file selected"))
	} else {
		b.WriteString("File: ")
		b.WriteString(v.styles.Normal.Render(filepath.Base(v.selected)))
	}
	b.WriteString("\n")

	if v.uploading {
		b.WriteString(fmt.Sprintf("%s %s", v.spinner.View(), v.styles.Warning.Render("Uploading...")))
	} else {
		b.WriteString(v.styles.Help.Render("o choose file  u upload"))
	}
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	h := height - 3
	if h > pickerMaxHeight {
		h = pickerMaxHeight
	}
	if h > 0 {
		v.picker.Height = h
	}
}

// SetFocused marks the panel as the key target.
func (v *View) SetFocused(focused bool) {
	v.focused = focused
}

// Picking reports whether the file browser is open.
func (v *View) Picking() bool {
	return v.picking
}

// Uploading reports whether a submit is in flight.
func (v *View) Uploading() bool {
	return v.uploading
}

// Selected returns the selected path, or "" if none.
func (v *View) Selected() string {
	return v.selected
}
