package middleware

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// HealthChecker defines interface for health checking
type HealthChecker interface {
	Check(ctx context.Context) error
}

// Describer is implemented by checkers that can say which backend they probe.
type Describer interface {
	Describe() map[string]string
}

// DatabaseHealthChecker pings the SQL history backend.
type DatabaseHealthChecker struct {
	DB     *sql.DB
	Driver string // mysql|postgres
}

func (d *DatabaseHealthChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return d.DB.PingContext(ctx)
}

func (d *DatabaseHealthChecker) Describe() map[string]string {
	st := d.DB.Stats()
	return map[string]string{
		"driver":           d.Driver,
		"open_connections": strconv.Itoa(st.OpenConnections),
		"in_use":           strconv.Itoa(st.InUse),
	}
}

// HistoryFileChecker verifies the JSON history file can still be written.
type HistoryFileChecker struct {
	Path string
}

func (h *HistoryFileChecker) Check(ctx context.Context) error {
	dir := filepath.Dir(h.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, ".health-*")
	if err != nil {
		return err
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}

func (h *HistoryFileChecker) Describe() map[string]string {
	d := map[string]string{"driver": "file", "path": h.Path}
	if info, err := os.Stat(h.Path); err == nil {
		d["size_bytes"] = strconv.FormatInt(info.Size(), 10)
	}
	return d
}

// StaticChecker always passes; it only reports its details.
type StaticChecker map[string]string

func (StaticChecker) Check(ctx context.Context) error { return nil }
func (s StaticChecker) Describe() map[string]string   { return s }

// HealthStatus represents the health status
type HealthStatus struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Checks    map[string]CheckStatus `json:"checks"`
}

// CheckStatus is the outcome of one checker.
type CheckStatus struct {
	Status    string            `json:"status"`
	Message   string            `json:"message,omitempty"`
	LatencyMS int64             `json:"latency_ms"`
	Details   map[string]string `json:"details,omitempty"`
}

func runCheck(ctx context.Context, checker HealthChecker) CheckStatus {
	start := time.Now()
	err := checker.Check(ctx)
	st := CheckStatus{Status: "healthy", LatencyMS: time.Since(start).Milliseconds()}
	if err != nil {
		st.Status = "unhealthy"
		st.Message = err.Error()
	}
	if d, ok := checker.(Describer); ok {
		st.Details = d.Describe()
	}
	return st
}

// HealthHandler runs every checker concurrently and answers 503 when any fails.
func HealthHandler(checkers map[string]HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		health := HealthStatus{
			Status:    "healthy",
			Timestamp: time.Now(),
			Checks:    make(map[string]CheckStatus, len(checkers)),
		}

		var (
			mu sync.Mutex
			g  errgroup.Group
		)
		for name, checker := range checkers {
			name, checker := name, checker
			g.Go(func() error {
				st := runCheck(ctx, checker)
				mu.Lock()
				health.Checks[name] = st
				if st.Status != "healthy" {
					health.Status = "unhealthy"
				}
				mu.Unlock()
				return nil
			})
		}
		_ = g.Wait()

		statusCode := http.StatusOK
		if health.Status == "unhealthy" {
			statusCode = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		_ = json.NewEncoder(w).Encode(health)
	}
}

// ReadinessHandler creates a readiness check handler (simpler than health)
func ReadinessHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":    "ready",
		"timestamp": time.Now(),
	})
}

// LivenessHandler creates a liveness check handler (simplest check)
func LivenessHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
