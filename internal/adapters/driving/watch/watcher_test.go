package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bidassist/bidassist-cli/internal/core/domain"
)

// mockUploadService records upload paths.
type mockUploadService struct {
	mu    sync.Mutex
	paths []string
	err   error
}

func (m *mockUploadService) Upload(_ context.Context, path string) (*domain.UploadReceipt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.paths = append(m.paths, path)
	if m.err != nil {
		return nil, m.err
	}
	return &domain.UploadReceipt{}, nil
}

func (m *mockUploadService) UploadFile(_ context.Context, _ domain.UploadedFile) (*domain.UploadReceipt, error) {
	return nil, domain.ErrNotImplemented
}

func (m *mockUploadService) History(_ context.Context, _ int) ([]domain.UploadRecord, error) {
	return nil, nil
}

func (m *mockUploadService) Paths() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.paths...)
}

func TestNewWatcher_Validation(t *testing.T) {
	dir := t.TempDir()

	_, err := NewWatcher(dir, nil)
	assert.ErrorIs(t, err, ErrMissingUploadService)

	_, err = NewWatcher(filepath.Join(dir, "missing"), &mockUploadService{})
	assert.ErrorIs(t, err, os.ErrNotExist)

	file := filepath.Join(dir, "file.pdf")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))
	_, err = NewWatcher(file, &mockUploadService{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestIsCandidate(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"/in/rfp.pdf", true},
		{"/in/RFP.PDF", true},
		{"/in/notes.txt", false},
		{"/in/.hidden.pdf", false},
		{"/in/archive.pdf.zip", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isCandidate(tt.name))
		})
	}
}

func TestHandleEvent(t *testing.T) {
	dir := t.TempDir()
	pdf := filepath.Join(dir, "rfp.pdf")
	require.NoError(t, os.WriteFile(pdf, []byte("%PDF"), 0o600))
	txt := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(txt, []byte("notes"), 0o600))
	sub := filepath.Join(dir, "folder.pdf")
	require.NoError(t, os.Mkdir(sub, 0o755))

	w, err := NewWatcher(dir, &mockUploadService{})
	require.NoError(t, err)
	now := time.Now()

	assert.False(t, w.handleEvent(fsnotify.Event{Name: pdf, Op: fsnotify.Write}, now),
		"write without create is ignored")
	assert.False(t, w.handleEvent(fsnotify.Event{Name: txt, Op: fsnotify.Create}, now))
	assert.False(t, w.handleEvent(fsnotify.Event{Name: sub, Op: fsnotify.Create}, now))
	assert.False(t, w.handleEvent(fsnotify.Event{Name: pdf, Op: fsnotify.Chmod}, now))

	assert.True(t, w.handleEvent(fsnotify.Event{Name: pdf, Op: fsnotify.Create}, now))
	later := now.Add(time.Second)
	assert.True(t, w.handleEvent(fsnotify.Event{Name: pdf, Op: fsnotify.Write}, later))
	assert.Equal(t, later, w.pending[pdf])

	w.handleEvent(fsnotify.Event{Name: pdf, Op: fsnotify.Remove}, later)
	assert.Empty(t, w.pending)
}

func TestDue(t *testing.T) {
	w, err := NewWatcher(t.TempDir(), &mockUploadService{}, WithSettle(time.Second))
	require.NoError(t, err)
	base := time.Now()
	w.pending["/in/b.pdf"] = base
	w.pending["/in/a.pdf"] = base.Add(100 * time.Millisecond)
	w.pending["/in/fresh.pdf"] = base.Add(900 * time.Millisecond)

	got := w.due(base.Add(1200 * time.Millisecond))

	assert.Equal(t, []string{"/in/b.pdf", "/in/a.pdf"}, got)
	assert.Len(t, w.pending, 1)
	assert.Contains(t, w.pending, "/in/fresh.pdf")
}

func TestWatcher_UploadsNewPDFOnce(t *testing.T) {
	dir := t.TempDir()
	svc := &mockUploadService{}
	results := make(chan Result, 10)

	w, err := NewWatcher(dir, svc,
		WithInterval(10*time.Millisecond),
		WithSettle(50*time.Millisecond),
		WithResultHandler(func(r Result) { results <- r }),
	)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	select {
	case <-w.Ready():
	case <-time.After(5 * time.Second):
		t.Fatal("watcher not ready")
	}

	pdf := filepath.Join(dir, "tender.pdf")
	require.NoError(t, os.WriteFile(pdf, []byte("%PDF-1.4"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".draft.pdf"), []byte("x"), 0o600))

	select {
	case r := <-results:
		assert.Equal(t, pdf, r.Path)
		assert.NoError(t, r.Err)
	case <-time.After(5 * time.Second):
		t.Fatal("no upload")
	}

	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, []string{pdf}, svc.Paths())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatcher_ReportsFailure(t *testing.T) {
	dir := t.TempDir()
	svc := &mockUploadService{err: errors.New("backend unreachable")}
	results := make(chan Result, 1)

	w, err := NewWatcher(dir, svc,
		WithInterval(10*time.Millisecond),
		WithSettle(20*time.Millisecond),
		WithResultHandler(func(r Result) { results <- r }),
	)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()
	<-w.Ready()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.pdf"), []byte("x"), 0o600))

	select {
	case r := <-results:
		assert.EqualError(t, r.Err, "backend unreachable")
	case <-time.After(5 * time.Second):
		t.Fatal("no result")
	}
}
