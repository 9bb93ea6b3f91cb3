// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/bidassist/bidassist-cli/internal/core/domain"
)

// PanelID identifies one dashboard panel.
type PanelID int

const (
	// PanelUpload is the RFP upload panel.
	PanelUpload PanelID = iota
	// PanelTechnicalSummary shows the technical summary.
	PanelTechnicalSummary
	// PanelScopeOfSupply shows the scope of supply.
	PanelScopeOfSupply
	// PanelSpecMatch shows the spec-match table.
	PanelSpecMatch
	// PanelOEMRecommendations shows the OEM recommendations.
	PanelOEMRecommendations
)

// String returns the string representation of the panel.
func (p PanelID) String() string {
	switch p {
	case PanelUpload:
		return "upload"
	case PanelTechnicalSummary:
		return "technical_summary"
	case PanelScopeOfSupply:
		return "scope_of_supply"
	case PanelSpecMatch:
		return "spec_match"
	case PanelOEMRecommendations:
		return "oem_recommendations"
	default:
		return "unknown"
	}
}

// Title returns the heading shown above the panel.
func (p PanelID) Title() string {
	switch p {
	case PanelUpload:
		return "Upload RFP"
	case PanelTechnicalSummary:
		return "Technical Summary"
	case PanelScopeOfSupply:
		return "Scope of Supply"
	case PanelSpecMatch:
		return "Spec Match"
	case PanelOEMRecommendations:
		return "OEM Recommendations"
	default:
		return "Unknown"
	}
}

// ReadPanels lists the four read-only panels in layout order.
func ReadPanels() []PanelID {
	return []PanelID{
		PanelTechnicalSummary,
		PanelScopeOfSupply,
		PanelSpecMatch,
		PanelOEMRecommendations,
	}
}

// PayloadLoaded carries a JSON panel payload back to its view.
// Generation ties the result to the mount that requested it.
type PayloadLoaded struct {
	Panel      PanelID
	Generation int
	Payload    any
	Err        error
}

// SpecMatchLoaded carries spec-match rows back to the table view.
type SpecMatchLoaded struct {
	Generation int
	Rows       []domain.SpecMatchRow
	Err        error
}

// UploadCompleted reports the outcome of one upload submit.
type UploadCompleted struct {
	Path    string
	Receipt *domain.UploadReceipt
	Err     error
}

// NoticeKind classifies a blocking notice.
type NoticeKind int

const (
	// NoticeInfo is a neutral prompt.
	NoticeInfo NoticeKind = iota
	// NoticeSuccess reports a completed action.
	NoticeSuccess
	// NoticeError reports a failed action.
	NoticeError
)

// Notice is a blocking, user-facing message.
type Notice struct {
	Kind NoticeKind
	Text string
}

// NoticeRequested asks the root model to show a blocking notice.
type NoticeRequested struct {
	Notice Notice
}

// RefreshRequested asks the root model to remount the read-only panels.
type RefreshRequested struct{}

// Quit signals the application should exit.
type Quit struct{}
