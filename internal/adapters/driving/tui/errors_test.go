package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_AreDistinct(t *testing.T) {
	errors := []error{
		ErrMissingDashboardService,
		ErrMissingUploadService,
		ErrInvalidPorts,
	}

	seen := make(map[string]bool)
	for _, err := range errors {
		msg := err.Error()
		assert.False(t, seen[msg], "duplicate error message: %s", msg)
		seen[msg] = true
	}
}

func TestErrMissingDashboardService_Message(t *testing.T) {
	assert.Contains(t, ErrMissingDashboardService.Error(), "dashboard service")
}

func TestErrMissingUploadService_Message(t *testing.T) {
	assert.Contains(t, ErrMissingUploadService.Error(), "upload service")
}

func TestErrInvalidPorts_Message(t *testing.T) {
	assert.Contains(t, ErrInvalidPorts.Error(), "invalid ports")
}
