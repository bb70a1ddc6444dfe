package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	appanalysis "github.com/bryanwahyu/legal-doc-analyzer/internal/application/analysis"
	domain "github.com/bryanwahyu/legal-doc-analyzer/internal/domain/analysis"
	"github.com/bryanwahyu/legal-doc-analyzer/internal/infra/events"
	"github.com/bryanwahyu/legal-doc-analyzer/internal/middleware"
)

// Options wires the router.
type Options struct {
	Service        *appanalysis.Service
	Hub            *events.Hub
	Logger         *slog.Logger
	AllowedOrigins []string
	APIKeys        map[string]string
	RateCapacity   int
	RateRefill     int
	MaxUploadBytes int64
	HealthCheckers map[string]middleware.HealthChecker
}

type Router struct {
	svc       *appanalysis.Service
	hub       *events.Hub
	logger    *slog.Logger
	maxUpload int64
}

func NewRouter(o Options) http.Handler {
	logger := o.Logger
	if logger == nil {
		logger = slog.Default()
	}
	maxUpload := o.MaxUploadBytes
	if maxUpload <= 0 {
		maxUpload = 32 << 20
	}
	r := &Router{svc: o.Service, hub: o.Hub, logger: logger, maxUpload: maxUpload}

	mux := chi.NewRouter()
	mux.Use(chimw.RequestID)
	mux.Use(chimw.RealIP)
	mux.Use(middleware.Recoverer(logger))
	mux.Use(middleware.LoggingMiddleware(logger))
	mux.Use(middleware.MetricsMiddleware)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   o.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Content-Disposition", "X-Report-URL"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	mux.Use(middleware.APIKeyAuth(o.APIKeys))
	if o.RateCapacity > 0 {
		mux.Use(middleware.RateLimitMiddleware(o.RateCapacity, o.RateRefill))
	}

	mux.Get("/health", middleware.HealthHandler(o.HealthCheckers))
	mux.Get("/ready", middleware.ReadinessHandler)
	mux.Get("/live", middleware.LivenessHandler)
	mux.Get("/metrics", middleware.MetricsHandler)

	mux.Route("/v1", func(rt chi.Router) {
		rt.Get("/samples", r.wrap(r.handleSamples))
		rt.Get("/history", r.wrap(r.handleHistory))
		rt.Post("/sessions", r.wrap(r.handleCreateSession))

		rt.Route("/sessions/{id}", func(st chi.Router) {
			st.Use(validSession)
			st.Get("/", r.wrap(r.handleGetSession))
			st.Post("/files", r.wrap(r.handleUpload))
			st.Delete("/files/{fileID}", r.wrap(r.handleRemoveFile))
			st.Post("/samples/{key}", r.wrap(r.handleLoadSample))
			st.Put("/format", r.wrap(r.handleSelectFormat))
			st.Delete("/format", r.wrap(r.handleCancelCustom))
			st.Put("/template", r.wrap(r.handleConfirmTemplate))
			st.Post("/analysis", r.wrap(r.handleStartAnalysis))
			st.Get("/results", r.wrap(r.handleResults))
			st.Get("/report", r.wrap(r.handleReport))
			st.Post("/theme", r.wrap(r.handleToggleTheme))
			st.Put("/theme", r.wrap(r.handleSystemTheme))
			st.Post("/reset", r.wrap(r.handleReset))
			st.Get("/events", r.handleEvents)
		})
	})

	return mux
}

func validSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if err := middleware.ValidateSessionID(chi.URLParam(req, "id")); err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
			return
		}
		next.ServeHTTP(w, req)
	})
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

// badRequest marks malformed input that is not a domain validation failure.
type badRequest struct{ err error }

func (b badRequest) Error() string { return b.err.Error() }
func (b badRequest) Unwrap() error { return b.err }

func badRequestf(format string, args ...any) error {
	return badRequest{err: fmt.Errorf(format, args...)}
}

type errorBody struct {
	Error                string               `json:"error"`
	Notification         *domain.Notification `json:"notification,omitempty"`
	ReopenTemplatePicker bool                 `json:"reopenTemplatePicker,omitempty"`
}

func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		err := h(w, req)
		if err == nil {
			return
		}

		if msg := domain.UserMessage(err); msg != "" {
			status := http.StatusBadRequest
			if errors.Is(err, domain.ErrRunInProgress) {
				status = http.StatusConflict
			}
			writeJSON(w, status, errorBody{
				Error:                err.Error(),
				Notification:         &domain.Notification{Message: msg, Type: domain.NotifyWarning},
				ReopenTemplatePicker: errors.Is(err, domain.ErrTemplateRequired),
			})
			return
		}

		var br badRequest
		switch {
		case errors.Is(err, domain.ErrSessionNotFound),
			errors.Is(err, domain.ErrFileNotFound),
			errors.Is(err, domain.ErrUnknownSample):
			writeJSON(w, http.StatusNotFound, errorBody{Error: err.Error()})
		case errors.Is(err, domain.ErrUnknownFormat), errors.As(err, &br):
			writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
		default:
			r.logger.Error("request failed", "method", req.Method, "path", req.URL.Path, "error", err)
			writeJSON(w, http.StatusInternalServerError, errorBody{
				Error:        "internal error",
				Notification: &domain.Notification{Message: middleware.GenericErrorMessage, Type: domain.NotifyDanger},
			})
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func decodeJSON(req *http.Request, v any) error {
	if err := json.NewDecoder(req.Body).Decode(v); err != nil {
		return badRequestf("invalid JSON body: %v", err)
	}
	return nil
}
