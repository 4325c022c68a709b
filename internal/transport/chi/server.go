// Package chi exposes the discovery and packaging engine over HTTP.
package chi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/renolab/quotient/internal/domain"
	"github.com/renolab/quotient/internal/logger"
	discoveryuc "github.com/renolab/quotient/internal/usecase/discovery"
	healthuc "github.com/renolab/quotient/internal/usecase/health"
	packagesuc "github.com/renolab/quotient/internal/usecase/packages"
)

const defaultK = 10

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// Server wires the use case services into chi routes.
type Server struct {
	discovery     *discoveryuc.Service
	packages      *packagesuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	discovery *discoveryuc.Service,
	packages *packagesuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		discovery: discovery,
		packages:  packages,
		health:    health,
		logger:    logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrServiceNotFound, http.StatusNotFound, codeServiceNotFound),
		sentinelHandler(domain.ErrCatalogUnavailable, http.StatusServiceUnavailable, codeCatalogUnavailable),
		sentinelHandler(domain.ErrInvalidService, http.StatusBadRequest, codeValidationFailed),
	}
	return s
}

// Mount registers all API routes on r.
func (s *Server) Mount(r chi.Router) {
	r.Get("/api/v1/services", s.handleListServices)
	r.Get("/api/v1/services/search", s.handleSearch)
	r.Get("/api/v1/services/{id}/estimate", s.handleEstimate)
	r.Get("/api/v1/packages", s.handleListPackages)
	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
}

// handleSearch handles GET /api/v1/services/search?q=...&k=...
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	k := defaultK
	if raw := r.URL.Query().Get("k"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, codeBadRequest, "k must be an integer")
			return
		}
		k = parsed // out-of-range values are clamped downstream
	}

	results, err := s.discovery.Search(r.Context(), query, k)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	logger.FromContext(r.Context()).Debug("search served",
		zap.String("query", query),
		zap.Int("k", k),
		zap.Int("results", len(results)),
	)
	writeJSON(w, http.StatusOK, searchResponseFromDomain(results))
}

// handleListServices handles GET /api/v1/services.
func (s *Server) handleListServices(w http.ResponseWriter, r *http.Request) {
	priced, err := s.discovery.List(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	items := make([]serviceDTO, len(priced))
	for i, p := range priced {
		items[i] = serviceFromDomain(p)
	}
	writeJSON(w, http.StatusOK, servicesResponse{Services: items})
}

// handleEstimate handles GET /api/v1/services/{id}/estimate.
func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	priced, err := s.discovery.Estimate(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, serviceFromDomain(priced))
}

// handleListPackages handles GET /api/v1/packages.
func (s *Server) handleListPackages(w http.ResponseWriter, r *http.Request) {
	pkgs, err := s.packages.List(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, packagesResponse{Packages: packagesFromDomain(pkgs)})
}

// handleHealth handles GET /health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, healthResponseFromDomain(report))
}

// handleDomainError walks the error handler chain; unmatched errors become 500s.
func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	for _, h := range s.errorHandlers {
		if h(w, err) {
			return
		}
	}
	logger.FromContext(r.Context()).Error("unhandled error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
