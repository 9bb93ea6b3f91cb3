// Package backend implements driven.Backend over HTTP.
//
// The RFP analysis service exposes five endpoints relative to its origin:
//
//	POST /upload-rfp           multipart form, single "file" part
//	GET  /technical-summary    JSON object
//	GET  /scope-of-supply      JSON object
//	GET  /spec-match           JSON array of {rfp_item, oem_sku, match_percent}
//	GET  /oem-recommendations  JSON object or array
//
// No authentication, retries or caching are performed. Every call is a
// single request bounded by the caller's context and the optional client
// timeout.
package backend
