package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/fibulaproject/fibulopedia/internal/catalog"
	"github.com/fibulaproject/fibulopedia/internal/config"
	"github.com/fibulaproject/fibulopedia/internal/handler"
	"github.com/fibulaproject/fibulopedia/internal/logger"
	"github.com/fibulaproject/fibulopedia/internal/metrics"
	"github.com/fibulaproject/fibulopedia/internal/search"
)

type Server struct {
	httpServer     *http.Server
	catalogService *catalog.Service
	searchService  *search.Service
}

// NewServer creates a new Server instance
func NewServer(cfg *config.Config, catalogService *catalog.Service, searchService *search.Service) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	monitor := NewRateMonitor()

	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(cfg.TrustedProxies, monitor))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(cfg.ContentDir))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/weapons", func(r chi.Router) {
			r.Get("/", handler.HandleListWeapons(catalogService))
			r.Get("/types", handler.HandleWeaponTypes(catalogService))
			r.Get("/{id}", handler.HandleGetWeapon(catalogService))
		})

		r.Route("/equipment", func(r chi.Router) {
			r.Get("/", handler.HandleListEquipment(catalogService))
			r.Get("/slots", handler.HandleEquipmentSlots(catalogService))
			r.Get("/{id}", handler.HandleGetEquipment(catalogService))
		})

		r.Route("/spells", func(r chi.Router) {
			r.Get("/", handler.HandleListSpells(catalogService))
			r.Get("/vocations", handler.HandleSpellVocations(catalogService))
			r.Get("/{id}", handler.HandleGetSpell(catalogService))
		})

		r.Route("/monsters", func(r chi.Router) {
			r.Get("/", handler.HandleListMonsters(catalogService))
			r.Get("/locations", handler.HandleMonsterLocations(catalogService))
			r.Get("/{id}", handler.HandleGetMonster(catalogService))
		})

		r.Route("/quests", func(r chi.Router) {
			r.Get("/", handler.HandleListQuests(catalogService))
			r.Get("/locations", handler.HandleQuestLocations(catalogService))
			r.Get("/{id}", handler.HandleGetQuest(catalogService))
		})

		r.Route("/server-info", func(r chi.Router) {
			r.Get("/", handler.HandleGetServerInfo(catalogService))
			r.Get("/rates/{name}", handler.HandleGetRate(catalogService))
		})

		r.Get("/search", handler.HandleSearch(searchService))
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		catalogService: catalogService,
		searchService:  searchService,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		// Use HasPrefix to catch potential variations (e.g. /healthz/)
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		// Generate unique request ID
		requestID := logger.GenerateRequestID()

		// Add request ID to context
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		// Get scoped logger
		log := logger.FromContext(ctx)

		// Log request start with details
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent())

		log.Debug(LogMsgRequestHeaders, "headers", r.Header)

		// Wrap response writer to capture status code
		rw := newResponseWriter(w)

		// Process request
		next.ServeHTTP(rw, r)

		// Log request completion with metrics
		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
