package handlers

import (
	"github.com/nfrund/vep/internal/seo"
)

// ErrorResponse is the standard format for API error responses.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MetadataResponse is the DTO for the metadata endpoint: everything the page
// puts in its head and JSON-LD block.
type MetadataResponse struct {
	Metadata       seo.Metadata     `json:"metadata"`
	StructuredData seo.Organization `json:"structuredData"`
}

// NewMetadataResponse builds the DTO.
func NewMetadataResponse(meta seo.Metadata, org seo.Organization) *MetadataResponse {
	return &MetadataResponse{Metadata: meta, StructuredData: org}
}
