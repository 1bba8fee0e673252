package cloudflare

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Zone is a DNS zone under management, as returned by the zones listing.
type Zone struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Record is a DNS record exchanged with the control plane. It is used both
// for records returned by listings and records proposed for creation.
type Record struct {
	ID      string `json:"id,omitempty"`
	Type    string `json:"type"`
	Name    string `json:"name"`
	Content string `json:"content"`
	TTL     int    `json:"ttl,omitempty"`
	Proxied bool   `json:"proxied,omitempty"`
}

// RecordFilter narrows a record listing by type and/or name.
type RecordFilter struct {
	Type string
	Name string
}

// ErrorDetail is a single error entry of the v4 response envelope.
type ErrorDetail struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// envelope is the generic v4 API response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Errors  []ErrorDetail   `json:"errors"`
	Result  json.RawMessage `json:"result"`
}

// APIError is a request the control plane rejected.
type APIError struct {
	StatusCode int
	Errors     []ErrorDetail
}

func (e *APIError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("API error (status %d)", e.StatusCode)
	}

	parts := make([]string, 0, len(e.Errors))
	for _, detail := range e.Errors {
		parts = append(parts, fmt.Sprintf("%d: %s", detail.Code, detail.Message))
	}

	return strings.Join(parts, "; ")
}
