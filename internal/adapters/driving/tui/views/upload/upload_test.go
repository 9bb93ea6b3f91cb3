package upload

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bidassist/bidassist-cli/internal/adapters/driving/tui/messages"
	"github.com/bidassist/bidassist-cli/internal/core/domain"
)

// MockUploadService implements driving.UploadService for testing.
type MockUploadService struct {
	UploadFunc func(ctx context.Context, path string) (*domain.UploadReceipt, error)
	paths      []string
}

func (m *MockUploadService) Upload(ctx context.Context, path string) (*domain.UploadReceipt, error) {
	m.paths = append(m.paths, path)
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, path)
	}
	return &domain.UploadReceipt{Body: map[string]any{"status": "ok"}}, nil
}

func (m *MockUploadService) UploadFile(_ context.Context, _ domain.UploadedFile) (*domain.UploadReceipt, error) {
	return nil, domain.ErrNotImplemented
}

func (m *MockUploadService) History(_ context.Context, _ int) ([]domain.UploadRecord, error) {
	return []domain.UploadRecord{}, nil
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// collect runs cmd and returns the non-batch messages it produces.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func findNotice(t *testing.T, msgs []tea.Msg) messages.Notice {
	t.Helper()
	for _, m := range msgs {
		if n, ok := m.(messages.NoticeRequested); ok {
			return n.Notice
		}
	}
	t.Fatalf("no notice in %v", msgs)
	return messages.Notice{}
}

func findCompleted(t *testing.T, msgs []tea.Msg) messages.UploadCompleted {
	t.Helper()
	for _, m := range msgs {
		if c, ok := m.(messages.UploadCompleted); ok {
			return c
		}
	}
	t.Fatalf("no upload result in %v", msgs)
	return messages.UploadCompleted{}
}

func TestView_InitialState(t *testing.T) {
	v := NewView(nil, nil, &MockUploadService{}, t.TempDir())

	assert.Empty(t, v.Selected())
	assert.False(t, v.Uploading())
	assert.False(t, v.Picking())
	assert.Contains(t, v.View(), "Upload RFP")
	assert.Contains(t, v.View(), "No file selected")
}

func TestView_SubmitWithoutFile(t *testing.T) {
	svc := &MockUploadService{}
	v := NewView(nil, nil, svc, t.TempDir())

	_, cmd := v.Update(keyRunes("u"))

	n := findNotice(t, collect(cmd))
	assert.Equal(t, messages.NoticeInfo, n.Kind)
	assert.Equal(t, "Select a PDF file first.", n.Text)
	assert.Empty(t, svc.paths)
	assert.False(t, v.Uploading())
}

func TestView_SubmitSuccess(t *testing.T) {
	svc := &MockUploadService{}
	v := NewView(nil, nil, svc, t.TempDir())
	v.Select("/tmp/rfp.pdf")

	_, cmd := v.Update(keyRunes("u"))
	require.True(t, v.Uploading())
	assert.Contains(t, v.View(), "Uploading...")

	done := findCompleted(t, collect(cmd))
	assert.Equal(t, []string{"/tmp/rfp.pdf"}, svc.paths)
	assert.NoError(t, done.Err)

	_, cmd = v.Update(done)
	n := findNotice(t, collect(cmd))
	assert.Equal(t, messages.NoticeSuccess, n.Kind)
	assert.Equal(t, "RFP uploaded & processed.", n.Text)
	assert.False(t, v.Uploading())
	assert.Empty(t, v.Selected())
}

func TestView_SubmitFailureKeepsSelection(t *testing.T) {
	svc := &MockUploadService{
		UploadFunc: func(_ context.Context, path string) (*domain.UploadReceipt, error) {
			return nil, fmt.Errorf("upload %s: %w", filepath.Base(path), domain.ErrTransport)
		},
	}
	v := NewView(nil, nil, svc, t.TempDir())
	v.Select("/tmp/rfp.pdf")

	_, cmd := v.Update(keyRunes("u"))
	done := findCompleted(t, collect(cmd))
	_, cmd = v.Update(done)

	n := findNotice(t, collect(cmd))
	assert.Equal(t, messages.NoticeError, n.Kind)
	assert.Equal(t, "Upload failed: upload rfp.pdf: backend unreachable", n.Text)
	assert.Equal(t, "/tmp/rfp.pdf", v.Selected())
	assert.False(t, v.Uploading())
}

func TestView_SubmitIgnoredWhileInFlight(t *testing.T) {
	svc := &MockUploadService{}
	v := NewView(nil, nil, svc, t.TempDir())
	v.Select("/tmp/rfp.pdf")

	_, first := v.Update(keyRunes("u"))
	_, second := v.Update(keyRunes("u"))

	assert.NotNil(t, first)
	assert.Nil(t, second)
	collect(first)
	assert.Len(t, svc.paths, 1)
}

func TestView_NilService(t *testing.T) {
	v := NewView(nil, nil, nil, t.TempDir())
	v.Select("/tmp/rfp.pdf")

	done := findCompleted(t, collect(v.Submit()))

	assert.ErrorIs(t, done.Err, domain.ErrNotImplemented)
}

func TestView_SelectReplaces(t *testing.T) {
	v := NewView(nil, nil, &MockUploadService{}, t.TempDir())

	v.Select("/a/first.pdf")
	v.Select("/b/second.pdf")

	assert.Equal(t, "/b/second.pdf", v.Selected())
	assert.Contains(t, v.View(), "second.pdf")
}

func TestView_OpenAndCancelPicker(t *testing.T) {
	v := NewView(nil, nil, &MockUploadService{}, t.TempDir())

	_, cmd := v.Update(keyRunes("o"))
	assert.NotNil(t, cmd)
	assert.True(t, v.Picking())
	assert.Contains(t, v.View(), "Choose a PDF")

	v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, v.Picking())
}

func TestView_PickerKeysDoNotSubmit(t *testing.T) {
	svc := &MockUploadService{}
	v := NewView(nil, nil, svc, t.TempDir())
	v.Select("/tmp/rfp.pdf")
	v.Update(keyRunes("o"))

	v.Update(keyRunes("u"))

	assert.False(t, v.Uploading())
	assert.Empty(t, svc.paths)
}

func TestView_PickFile(t *testing.T) {
	dir := t.TempDir()
	pdf := filepath.Join(dir, "tender.pdf")
	require.NoError(t, os.WriteFile(pdf, []byte("%PDF-1.4"), 0o600))

	v := NewView(nil, nil, &MockUploadService{}, dir)
	_, cmd := v.Update(keyRunes("o"))
	for _, msg := range collect(cmd) {
		v.Update(msg)
	}

	v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, pdf, v.Selected())
	assert.False(t, v.Picking())
}
