package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/bidassist/bidassist-cli/internal/core/domain"
)

// defaultHistoryLimit caps upload_history when no limit is given.
const defaultHistoryLimit = 20

// UploadInput is the input schema for the upload_rfp tool.
type UploadInput struct {
	Path string `json:"path" jsonschema:"absolute path of the RFP PDF to upload"`
}

// UploadOutput is the output schema for the upload_rfp tool.
type UploadOutput struct {
	Path    string `json:"path"`
	Receipt any    `json:"receipt,omitempty"`
}

// EmptyInput is the input schema for tools without arguments.
type EmptyInput struct{}

// ObjectOutput wraps a JSON object view.
type ObjectOutput struct {
	Data map[string]any `json:"data"`
}

// ValueOutput wraps a view that may be an object or an array.
type ValueOutput struct {
	Data any `json:"data"`
}

// SpecMatchOutput is the output schema for the spec_match tool.
type SpecMatchOutput struct {
	Rows  []domain.SpecMatchRow `json:"rows"`
	Count int                   `json:"count"`
}

// HistoryInput is the input schema for the upload_history tool.
type HistoryInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"maximum number of records to return (default 20)"`
}

// HistoryOutput is the output schema for the upload_history tool.
type HistoryOutput struct {
	Records []UploadRecordOutput `json:"records"`
	Count   int                  `json:"count"`
}

// UploadRecordOutput represents one upload attempt.
type UploadRecordOutput struct {
	ID         string `json:"id"`
	FileName   string `json:"file_name"`
	Size       int64  `json:"size"`
	Status     string `json:"status"`
	Error      string `json:"error,omitempty"`
	UploadedAt string `json:"uploaded_at"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "upload_rfp",
		Description: "Upload an RFP PDF to the analysis backend",
	}, s.handleUpload)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "technical_summary",
		Description: "Technical summary extracted from the last uploaded RFP",
	}, s.handleTechnicalSummary)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "scope_of_supply",
		Description: "Scope of supply extracted from the last uploaded RFP",
	}, s.handleScopeOfSupply)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "spec_match",
		Description: "RFP items matched to OEM SKUs with a match percentage",
	}, s.handleSpecMatch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "oem_recommendations",
		Description: "OEM recommendations for the last uploaded RFP",
	}, s.handleOEMRecommendations)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "upload_history",
		Description: "Recent RFP upload attempts, newest first",
	}, s.handleHistory)
}

func (s *Server) handleUpload(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input UploadInput,
) (*mcp.CallToolResult, UploadOutput, error) {
	receipt, err := s.ports.Upload.Upload(ctx, input.Path)
	if err != nil {
		return nil, UploadOutput{}, err
	}

	output := UploadOutput{Path: input.Path}
	if receipt != nil {
		output.Receipt = receipt.Body
	}
	return nil, output, nil
}

func (s *Server) handleTechnicalSummary(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ EmptyInput,
) (*mcp.CallToolResult, ObjectOutput, error) {
	summary, err := s.ports.Dashboard.TechnicalSummary(ctx)
	if err != nil {
		return nil, ObjectOutput{}, err
	}
	return nil, ObjectOutput{Data: summary}, nil
}

func (s *Server) handleScopeOfSupply(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ EmptyInput,
) (*mcp.CallToolResult, ObjectOutput, error) {
	scope, err := s.ports.Dashboard.ScopeOfSupply(ctx)
	if err != nil {
		return nil, ObjectOutput{}, err
	}
	return nil, ObjectOutput{Data: scope}, nil
}

func (s *Server) handleSpecMatch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ EmptyInput,
) (*mcp.CallToolResult, SpecMatchOutput, error) {
	rows, err := s.ports.Dashboard.SpecMatch(ctx)
	if err != nil {
		return nil, SpecMatchOutput{}, err
	}
	if rows == nil {
		rows = []domain.SpecMatchRow{}
	}
	return nil, SpecMatchOutput{Rows: rows, Count: len(rows)}, nil
}

func (s *Server) handleOEMRecommendations(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ EmptyInput,
) (*mcp.CallToolResult, ValueOutput, error) {
	recs, err := s.ports.Dashboard.OEMRecommendations(ctx)
	if err != nil {
		return nil, ValueOutput{}, err
	}
	return nil, ValueOutput{Data: recs.Data()}, nil
}

func (s *Server) handleHistory(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input HistoryInput,
) (*mcp.CallToolResult, HistoryOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	records, err := s.ports.Upload.History(ctx, limit)
	if err != nil {
		return nil, HistoryOutput{}, err
	}

	output := HistoryOutput{
		Records: make([]UploadRecordOutput, len(records)),
		Count:   len(records),
	}
	for i := range records {
		output.Records[i] = toRecordOutput(records[i])
	}
	return nil, output, nil
}

func toRecordOutput(r domain.UploadRecord) UploadRecordOutput {
	return UploadRecordOutput{
		ID:         r.ID,
		FileName:   r.FileName,
		Size:       r.Size,
		Status:     string(r.Status),
		Error:      r.Error,
		UploadedAt: r.UploadedAt.UTC().Format(time.RFC3339),
	}
}
