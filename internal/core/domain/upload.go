package domain

import (
	"io"
	"path/filepath"
	"strings"
	"time"
)

// UploadedFile is a user-selected RFP document ready to send to the backend.
// It lives only until the upload attempt finishes.
type UploadedFile struct {
	// Name is the base filename sent in the multipart part.
	Name string

	// Size is the content length in bytes, or 0 when unknown.
	Size int64

	// Content is read once by the transport.
	Content io.Reader
}

// IsPDF reports whether the filename carries a .pdf extension.
func (f UploadedFile) IsPDF() bool {
	return IsPDFPath(f.Name)
}

// IsPDFPath reports whether a path has a .pdf extension, ignoring case.
func IsPDFPath(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".pdf")
}

// UploadStatus is the outcome of one upload attempt.
type UploadStatus string

const (
	// UploadSucceeded means the backend accepted the RFP.
	UploadSucceeded UploadStatus = "succeeded"

	// UploadFailed means the transport or the backend rejected the RFP.
	UploadFailed UploadStatus = "failed"
)

// UploadRecord is the persisted history entry for one upload attempt.
// It holds metadata only, never the file or the backend response.
type UploadRecord struct {
	ID         string
	FileName   string
	Size       int64
	Status     UploadStatus
	Error      string
	UploadedAt time.Time
}

// Succeeded reports whether the attempt was accepted by the backend.
func (r UploadRecord) Succeeded() bool {
	return r.Status == UploadSucceeded
}
