package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/reasoner/internal/domain"
	"github.com/kailas-cloud/reasoner/internal/domain/answer"
	dombatch "github.com/kailas-cloud/reasoner/internal/domain/batch"
	"github.com/kailas-cloud/reasoner/internal/domain/search/request"
	batchuc "github.com/kailas-cloud/reasoner/internal/usecase/batch"
	healthuc "github.com/kailas-cloud/reasoner/internal/usecase/health"
)

// maxBodyBytes caps request bodies; a full batch of maximum-length queries fits.
const maxBodyBytes = 1 << 20

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Reasoner answers a single query.
type Reasoner interface {
	Reason(ctx context.Context, query string) answer.Result
}

// Server is the HTTP host of the reasoning engine.
type Server struct {
	reasoner      Reasoner
	batch         *batchuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	reasoner Reasoner,
	batch *batchuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		reasoner: reasoner,
		batch:    batch,
		health:   health,
		logger:   logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidQuery, http.StatusBadRequest, ErrorCodeValidationFailed),
		sentinelHandler(domain.ErrUnsupportedMode, http.StatusBadRequest, ErrorCodeUnsupportedMode),
		sentinelHandler(domain.ErrBatchTooLarge, http.StatusBadRequest, ErrorCodeBatchTooLarge),
		sentinelHandler(domain.ErrEmptyBatch, http.StatusBadRequest, ErrorCodeEmptyBatch),
	}
	return s
}

// Routes registers the API on r.
func (s *Server) Routes(r chi.Router) {
	r.Post("/reason", s.Reason)
	r.Post("/reason/batch", s.ReasonBatch)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// Reason handles POST /reason.
func (s *Server) Reason(w http.ResponseWriter, r *http.Request) {
	var req ReasonRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	q, err := request.New(req.Query, req.Mode)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, s.reasoner.Reason(r.Context(), q.Query()))
}

// ReasonBatch handles POST /reason/batch.
func (s *Server) ReasonBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchReasonRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := validateStruct(req); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeValidationFailed, err.Error())
		return
	}

	items := make([]dombatch.Item, len(req.Items))
	for i, it := range req.Items {
		items[i] = dombatch.Item{ID: it.ID, Query: it.Query}
	}

	results, err := s.batch.Reason(r.Context(), items)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	resp := BatchReasonResponse{Items: make([]BatchResultItem, len(results))}
	for i, res := range results {
		resp.Items[i] = batchResultToDTO(res)
		if res.Status() == dombatch.StatusOK {
			resp.Succeeded++
		} else {
			resp.Failed++
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// HealthCheck handles GET /health. A degraded engine still answers queries,
// so the status code stays 200.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:         string(report.Status),
		Checks:         checks,
		Documents:      report.Documents,
		VocabularySize: report.VocabularySize,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(v) //nolint:wrapcheck // message is returned to the client as is
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrInvalidQuery,
		domain.ErrUnsupportedMode,
		domain.ErrBatchTooLarge,
		domain.ErrEmptyBatch,
		context.Canceled,
		context.DeadlineExceeded,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, ErrorCodeInternalError, "internal error")
}

func batchResultToDTO(r dombatch.Result) BatchResultItem {
	item := BatchResultItem{
		ID:     r.ID(),
		Status: string(r.Status()),
	}
	if r.Err() != nil {
		item.Error = &ErrorResponse{
			Code:    batchErrorCode(r.Err()),
			Message: safeDomainMessage(r.Err()),
		}
		return item
	}
	a := r.Answer()
	item.Result = &a
	return item
}

func batchErrorCode(err error) ErrorCode {
	switch {
	case errors.Is(err, domain.ErrInvalidQuery):
		return ErrorCodeValidationFailed
	case errors.Is(err, domain.ErrBatchTooLarge):
		return ErrorCodeBatchTooLarge
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ErrorCodeCanceled
	default:
		return ErrorCodeInternalError
	}
}
