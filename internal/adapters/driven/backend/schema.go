package backend

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/bidassist/bidassist-cli/internal/core/domain"
)

// specMatchSchema describes the /spec-match response body.
const specMatchSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["rfp_item", "oem_sku", "match_percent"],
    "properties": {
      "rfp_item": {"type": "string"},
      "oem_sku": {"type": "string"},
      "match_percent": {"type": "number", "minimum": 0, "maximum": 100}
    }
  }
}`

// compiledSpecMatch is built once; the schema literal is constant.
var compiledSpecMatch = mustSchema(specMatchSchema)

func mustSchema(raw string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(raw))
	if err != nil {
		panic(fmt.Sprintf("backend: invalid built-in schema: %v", err))
	}
	return schema
}

// validateSpecMatch checks body against the spec-match schema.
func validateSpecMatch(body []byte) error {
	result, err := compiledSpecMatch.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("%w: spec match: %s", domain.ErrMalformedResponse, strings.Join(errs, "; "))
	}
	return nil
}
