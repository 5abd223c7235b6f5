// Package server exposes the planning engine over HTTP. All endpoints are
// stateless; every request recomputes from the catalog.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/agrovista/farmplan-cli/internal/agridata"
	"github.com/agrovista/farmplan-cli/internal/engine"
)

// Server routes plan, compare, and sensitivity requests to the engine.
type Server struct {
	catalog *agridata.Catalog
	limiter *rate.Limiter
	router  chi.Router
}

// New builds a server around the given catalog. rps and burst bound the
// request rate across all clients; rps <= 0 disables limiting.
func New(catalog *agridata.Catalog, rps float64, burst int) *Server {
	s := &Server{catalog: catalog}
	if rps > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	r.Use(s.requestID)
	r.Use(s.logRequests)
	r.Use(s.throttle)

	r.Get("/health", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/crops", s.handleCrops)
		r.Get("/regions", s.handleRegions)
		r.Post("/plan", s.handlePlan)
		r.Post("/compare", s.handleCompare)
		r.Post("/sensitivity", s.handleSensitivity)
	})

	s.router = r
	return s
}

// Handler returns the configured router.
func (s *Server) Handler() http.Handler {
	return s.router
}

type ctxKey string

const requestIDKey ctxKey = "request_id"

func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(contextWithRequestID(r.Context(), id)))
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r)
		zap.L().Debug("request handled",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("request_id", requestIDFrom(r.Context())),
		)
	})
}

func (s *Server) throttle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.limiter != nil && !s.limiter.Allow() {
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type cropInfo struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	OptimalYield   float64 `json:"optimal_yield_tons_per_ha"`
	FarmgatePerKg  float64 `json:"farmgate_price_per_kg"`
	SeasonsPerYear int     `json:"seasons_per_year"`
}

func (s *Server) handleCrops(w http.ResponseWriter, r *http.Request) {
	ids := s.catalog.CropIDs()
	crops := make([]cropInfo, 0, len(ids))
	for _, id := range ids {
		c, err := s.catalog.Crop(id)
		if err != nil {
			continue
		}
		crops = append(crops, cropInfo{
			ID:             c.ID,
			Name:           c.Name,
			OptimalYield:   c.OptimalYield,
			FarmgatePerKg:  c.FarmgatePerKg,
			SeasonsPerYear: c.SeasonsPerYear,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"crops": crops})
}

func (s *Server) handleRegions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"regions": s.catalog.RegionNames()})
}

func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	var req engine.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Strategy == "" {
		req.Strategy = engine.StrategyBalanced
	}

	res, err := engine.Plan(s.catalog, req)
	if err != nil {
		writeEngineError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type compareRequest struct {
	Crop     string  `json:"crop"`
	Hectares float64 `json:"hectares"`
	Region   string  `json:"region,omitempty"`
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cmp, err := engine.CompareStrategies(s.catalog, req.Crop, req.Hectares, req.Region)
	if err != nil {
		writeEngineError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cmp)
}

type sensitivityRequest struct {
	Crop     string  `json:"crop"`
	Hectares float64 `json:"hectares"`
	Region   string  `json:"region,omitempty"`
	Levels   []int   `json:"levels,omitempty"`
}

func (s *Server) handleSensitivity(w http.ResponseWriter, r *http.Request) {
	var req sensitivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sw, err := engine.SensitivitySweep(s.catalog, req.Crop, req.Hectares, req.Region, req.Levels)
	if err != nil {
		writeEngineError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sw)
}

func writeEngineError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case eris.Is(err, engine.ErrUnknownCrop):
		writeError(w, http.StatusNotFound, err.Error())
	case eris.Is(err, engine.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		zap.L().Error("request failed",
			zap.String("path", r.URL.Path),
			zap.String("request_id", requestIDFrom(r.Context())),
			zap.Error(err),
		)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
