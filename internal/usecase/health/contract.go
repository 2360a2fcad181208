package health

import "context"

// CorpusReporter reports the size of the loaded corpus.
type CorpusReporter interface {
	DocumentCount(ctx context.Context) int
}

// VocabularyReporter reports the size of the semantic vocabulary.
type VocabularyReporter interface {
	VocabularySize(ctx context.Context) int
}
