package request

import (
	"fmt"

	"github.com/kailas-cloud/reasoner/internal/domain"
)

// MaxQueryLength is the maximum allowed query length in bytes.
const MaxQueryLength = 4096

// ModeAuto lets the planner pick the retrieval strategy. It is the only
// mode a host may request.
const ModeAuto = "auto"

// Request is a validated reasoning query received from a host.
type Request struct {
	query string
	mode  string
}

// New validates host parameters. An empty mode defaults to auto.
// An empty query is valid: the engine answers it with the empty-result sentinel.
func New(query, mode string) (Request, error) {
	if len(query) > MaxQueryLength {
		return Request{}, fmt.Errorf("%w: query too long (max %d chars)", domain.ErrInvalidQuery, MaxQueryLength)
	}
	if mode == "" {
		mode = ModeAuto
	}
	if mode != ModeAuto {
		return Request{}, fmt.Errorf("%w: %q", domain.ErrUnsupportedMode, mode)
	}
	return Request{query: query, mode: mode}, nil
}

// Query returns the query text.
func (r *Request) Query() string { return r.query }

// Mode returns the requested mode.
func (r *Request) Mode() string { return r.mode }
