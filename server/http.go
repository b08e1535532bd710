// Package server exposes the rate-limit service over HTTP and gRPC.
// Both transports call the same service; a request is admitted on one
// exactly when it is admitted on the other.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/ratewall/ratewall"
)

// checkRequest is the JSON body of POST /check.
type checkRequest struct {
	ClientID string  `json:"clientId"`
	Resource string  `json:"resource"`
	Cost     float64 `json:"cost"`
}

// checkResponse mirrors bucket.Decision on the wire.
type checkResponse struct {
	Allowed    bool  `json:"allowed"`
	Remaining  int   `json:"remaining"`
	Limit      int   `json:"limit"`
	ResetAt    int64 `json:"resetAt"`
	RetryAfter int   `json:"retryAfter"`
}

type healthResponse struct {
	Status    string  `json:"status"`
	Timestamp string  `json:"timestamp"`
	Uptime    float64 `json:"uptime"` // seconds
}

// HTTPHandler serves the REST surface of the rate limiter.
type HTTPHandler struct {
	service  *ratewall.Service
	logger   *zap.Logger
	started  time.Time
	gatherer prometheus.Gatherer
}

// NewHTTPHandler wires the service into a chi router. The gatherer may be
// nil to disable the /metrics endpoint.
func NewHTTPHandler(service *ratewall.Service, logger *zap.Logger, gatherer prometheus.Gatherer) *HTTPHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPHandler{
		service:  service,
		logger:   logger,
		started:  time.Now(),
		gatherer: gatherer,
	}
}

// Router builds the chi router with all routes mounted.
func (h *HTTPHandler) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Post("/check", h.handleCheck)
	r.Get("/health", h.handleHealth)
	r.Get("/health/live", h.handleLiveness)
	if h.gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// handleCheck runs one rate-limit decision. A malformed or invalid
// request gets the zero-valued decision body rather than an HTTP error:
// callers treat allowed=false uniformly and never need a second parser.
func (h *HTTPHandler) handleCheck(w http.ResponseWriter, r *http.Request) {
	var req checkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("malformed check request body", zap.Error(err))
		writeJSON(w, http.StatusOK, checkResponse{})
		return
	}

	decision, err := h.service.Check(r.Context(), ratewall.Request{
		ClientID: req.ClientID,
		Resource: req.Resource,
		Cost:     req.Cost,
	})
	if err != nil {
		if errors.Is(err, ratewall.ErrInvalidRequest) {
			h.logger.Warn("invalid check request",
				zap.String("client_id", req.ClientID),
				zap.String("resource", req.Resource),
				zap.Error(err))
			writeJSON(w, http.StatusOK, checkResponse{})
			return
		}
		h.logger.Error("check failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, checkResponse{})
		return
	}

	writeJSON(w, http.StatusOK, checkResponse{
		Allowed:    decision.Allowed,
		Remaining:  decision.Remaining,
		Limit:      decision.Limit,
		ResetAt:    decision.ResetAt,
		RetryAfter: decision.RetryAfter,
	})
}

func (h *HTTPHandler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(h.started).Seconds(),
	})
}

func (h *HTTPHandler) handleLiveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "alive",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(h.started).Seconds(),
	})
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}
