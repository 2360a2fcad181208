package reasoner

import "github.com/kailas-cloud/reasoner/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrInvalidQuery  = domain.ErrInvalidQuery
	ErrBatchTooLarge = domain.ErrBatchTooLarge
	ErrEmptyBatch    = domain.ErrEmptyBatch
	ErrCorpusInvalid = domain.ErrCorpusInvalid
)
