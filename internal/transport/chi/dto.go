package chi

import "github.com/kailas-cloud/reasoner/internal/domain/answer"

// ErrorCode is a machine-readable error identifier.
type ErrorCode string

// Error codes returned by the API.
const (
	ErrorCodeBadRequest       ErrorCode = "bad_request"
	ErrorCodeUnauthorized     ErrorCode = "unauthorized"
	ErrorCodeValidationFailed ErrorCode = "validation_failed"
	ErrorCodeUnsupportedMode  ErrorCode = "unsupported_mode"
	ErrorCodeBatchTooLarge    ErrorCode = "batch_too_large"
	ErrorCodeEmptyBatch       ErrorCode = "empty_batch"
	ErrorCodeCanceled         ErrorCode = "canceled"
	ErrorCodeInternalError    ErrorCode = "internal_error"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ReasonRequest is the body of POST /reason.
type ReasonRequest struct {
	Query string `json:"query"`
	Mode  string `json:"mode,omitempty"`
}

// BatchReasonRequest is the body of POST /reason/batch.
type BatchReasonRequest struct {
	Items []BatchReasonItem `json:"items" validate:"dive"`
}

// BatchReasonItem is one query of a batch.
type BatchReasonItem struct {
	ID    string `json:"id,omitempty" validate:"omitempty,max=128,printascii"`
	Query string `json:"query"`
}

// BatchReasonResponse is the body of a batch response.
type BatchReasonResponse struct {
	Items     []BatchResultItem `json:"items"`
	Succeeded int               `json:"succeeded"`
	Failed    int               `json:"failed"`
}

// BatchResultItem is the outcome of one batch item.
type BatchResultItem struct {
	ID     string         `json:"id"`
	Status string         `json:"status"`
	Result *answer.Result `json:"result,omitempty"`
	Error  *ErrorResponse `json:"error,omitempty"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status         string            `json:"status"`
	Checks         map[string]string `json:"checks"`
	Documents      int               `json:"documents"`
	VocabularySize int               `json:"vocabulary_size"`
}
