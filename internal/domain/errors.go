package domain

import "errors"

var (
	// ErrInvalidQuery signals a query the host refuses to forward to the engine.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrUnsupportedMode signals a request mode other than "auto".
	ErrUnsupportedMode = errors.New("unsupported mode")
	// ErrBatchTooLarge signals a batch above the configured size limit.
	ErrBatchTooLarge = errors.New("batch too large")
	// ErrEmptyBatch signals a batch request without items.
	ErrEmptyBatch = errors.New("empty batch")
	// ErrCorpusInvalid signals an unreadable or malformed corpus source.
	ErrCorpusInvalid = errors.New("invalid corpus")
)
