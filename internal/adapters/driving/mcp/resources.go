package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/bidassist/bidassist-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for BidAssist resources.
	uriScheme = "bidassist://"

	// historyResourceLimit caps the uploads resource.
	historyResourceLimit = 50
)

// Panel names addressable through bidassist://panels/{panel}.
const (
	panelTechnicalSummary   = "technical-summary"
	panelScopeOfSupply      = "scope-of-supply"
	panelSpecMatch          = "spec-match"
	panelOEMRecommendations = "oem-recommendations"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "uploads",
		Name:        "uploads",
		Description: "Recent RFP upload attempts",
		MIMEType:    "application/json",
	}, s.handleUploadsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "panels/{panel}",
		Name:        "panel",
		Description: "One dashboard view: technical-summary, scope-of-supply, spec-match or oem-recommendations",
		MIMEType:    "application/json",
	}, s.handlePanelResource)
}

// handleUploadsResource returns recent upload attempts.
func (s *Server) handleUploadsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	records, err := s.ports.Upload.History(ctx, historyResourceLimit)
	if err != nil {
		return nil, fmt.Errorf("listing uploads: %w", err)
	}

	out := make([]UploadRecordOutput, len(records))
	for i := range records {
		out[i] = toRecordOutput(records[i])
	}
	return jsonResource(req.Params.URI, out)
}

// handlePanelResource returns the payload of one dashboard view.
func (s *Server) handlePanelResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	var (
		payload any
		err     error
	)

	switch extractPanel(req.Params.URI) {
	case panelTechnicalSummary:
		payload, err = s.ports.Dashboard.TechnicalSummary(ctx)
	case panelScopeOfSupply:
		payload, err = s.ports.Dashboard.ScopeOfSupply(ctx)
	case panelSpecMatch:
		payload, err = s.ports.Dashboard.SpecMatch(ctx)
	case panelOEMRecommendations:
		var recs *domain.OEMRecommendations
		recs, err = s.ports.Dashboard.OEMRecommendations(ctx)
		payload = recs.Data()
	default:
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", extractPanel(req.Params.URI), err)
	}

	return jsonResource(req.Params.URI, payload)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractPanel extracts the panel name from a URI like bidassist://panels/{panel}.
func extractPanel(uri string) string {
	const prefix = uriScheme + "panels/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
