package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates the engine answers but cannot rank anything.
	Degraded Status = "degraded"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckEmpty indicates a component with nothing loaded.
	CheckEmpty CheckResult = "empty"
)

// Report aggregates health check results.
type Report struct {
	Status         Status
	Checks         map[string]CheckResult
	Documents      int
	VocabularySize int
}

// Service coordinates health checks.
type Service struct {
	corpus     CorpusReporter
	vocabulary VocabularyReporter
}

// New creates a Service.
func New(corpus CorpusReporter, vocabulary VocabularyReporter) *Service {
	return &Service{corpus: corpus, vocabulary: vocabulary}
}

// Check reports corpus and vocabulary state. An empty corpus is valid but
// every query then resolves to the no-results sentinel, so it is degraded.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult, 2)

	docs := s.corpus.DocumentCount(ctx)
	checks["corpus"] = checkCount(docs)

	terms := s.vocabulary.VocabularySize(ctx)
	checks["vocabulary"] = checkCount(terms)

	status := Healthy
	for _, v := range checks {
		if v != CheckOK {
			status = Degraded
			break
		}
	}

	return Report{Status: status, Checks: checks, Documents: docs, VocabularySize: terms}
}

func checkCount(n int) CheckResult {
	if n > 0 {
		return CheckOK
	}
	return CheckEmpty
}
