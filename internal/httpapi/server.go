package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pagerd/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	Bind(req types.BindRequest) (types.Instance, error)
	Unbind(id string) error
	Instances() []types.Instance
	Instance(id string) (types.Instance, error)
	SetCollectionLength(id string, n int) error
	SetTotalItems(id string, n int) error
	SetPage(id, label string) (types.PageResponse, error)
	Slice(id string, raw []byte, itemsPerPage any) (types.SliceResponse, error)
	Controls(id string, maxSize int) (types.ControlsView, error)
	Ready() bool
}

func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(MetricsMiddleware)
	r.Use(requestLogger)
	if requestTimeout > 0 {
		r.Use(middleware.Timeout(requestTimeout))
	}
	r.Use(middleware.Compress(5))
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: corsAllowedMethods,
			AllowedHeaders: corsAllowedHeaders,
			MaxAge:         300,
		}))
	}
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})

	h := &handlers{svc: svc}
	r.Route("/instances", func(r chi.Router) {
		r.Get("/", h.listInstances)
		r.Post("/", h.bind)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.getInstance)
			r.Delete("/", h.unbind)
			r.Put("/length", h.setLength)
			r.Put("/page", h.setPage)
			r.Post("/slice", h.slice)
			r.Get("/controls", h.controls)
		})
	})
	r.Get("/pages", h.pages)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if svc.Ready() {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("shutting down"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)
	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logError("encode response", err)
	}
}
