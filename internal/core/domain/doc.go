// Package domain defines the core entities of the BidAssist dashboard.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - TechnicalSummary, ScopeOfSupply: opaque JSON objects from the backend
//   - SpecMatchRow: one RFP line item matched to an OEM SKU
//   - OEMRecommendations: opaque JSON object or array from the backend
//   - UploadedFile, UploadReceipt, UploadRecord: the RFP upload flow
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
