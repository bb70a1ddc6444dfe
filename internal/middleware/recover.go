package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"runtime/debug"
)

// GenericErrorMessage is shown for any failure the handlers did not anticipate.
const GenericErrorMessage = "An error occurred. Please refresh the page and try again."

// Recoverer turns a handler panic into the generic danger notification.
func Recoverer(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.Error("panic in handler",
					"method", r.Method,
					"path", r.URL.Path,
					"panic", rec,
					"stack", string(debug.Stack()),
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(map[string]any{
					"notification": map[string]string{"message": GenericErrorMessage, "type": "danger"},
				})
			}()
			next.ServeHTTP(w, r)
		})
	}
}
