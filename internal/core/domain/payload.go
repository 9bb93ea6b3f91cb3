package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// TechnicalSummary is the backend's technical summary of the current RFP.
// Keys and values are defined by the backend and passed through untouched.
type TechnicalSummary map[string]any

// ScopeOfSupply is the backend's scope-of-supply breakdown of the current RFP.
type ScopeOfSupply map[string]any

// SpecMatchRow pairs one RFP line item with the OEM SKU it was matched to.
type SpecMatchRow struct {
	RFPItem      string  `json:"rfp_item"`
	OEMSKU       string  `json:"oem_sku"`
	MatchPercent float64 `json:"match_percent"`
}

// FormattedMatch renders the match percentage with a trailing percent sign,
// using the shortest decimal form (87 -> "87%", 92.5 -> "92.5%").
func (r SpecMatchRow) FormattedMatch() string {
	return strconv.FormatFloat(r.MatchPercent, 'f', -1, 64) + "%"
}

// OEMRecommendations holds the backend's OEM recommendations.
// The backend may answer with either a JSON object or a JSON array.
type OEMRecommendations struct {
	Value any
}

// Data returns the wrapped value, or nil when o is nil.
func (o *OEMRecommendations) Data() any {
	if o == nil {
		return nil
	}
	return o.Value
}

// MarshalJSON encodes the wrapped value as-is.
func (o OEMRecommendations) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Value)
}

// UnmarshalJSON accepts a JSON object or array and rejects anything else.
func (o *OEMRecommendations) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	switch v.(type) {
	case map[string]any, []any:
		o.Value = v
		return nil
	default:
		return fmt.Errorf("%w: oem recommendations must be a JSON object or array", ErrMalformedResponse)
	}
}

// UploadReceipt is the backend's acknowledgement of an uploaded RFP.
// The body is opaque; callers only care that the upload succeeded.
type UploadReceipt struct {
	Body any
}

// IndentJSON renders a payload as two-space indented JSON with sorted object keys.
// Payloads that cannot be encoded fall back to their Go representation.
// Text is not HTML-escaped.
func IndentJSON(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Sprintf("%v", v)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
