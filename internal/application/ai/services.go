package ai

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/bryanwahyu/legal-doc-analyzer/internal/domain/ai"
)

// DefaultTimeout bounds one backend call so a slow provider never stalls a run.
const DefaultTimeout = 20 * time.Second

// Service wraps an optional insights backend. Backend failures are never
// surfaced: an empty list tells the renderer to fall back to the static insights.
type Service struct {
	client  ai.Client
	logger  *slog.Logger
	timeout time.Duration
}

func NewService(client ai.Client, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{client: client, logger: logger, timeout: DefaultTimeout}
}

// Insights implements ai.Client.
func (s *Service) Insights(ctx context.Context, req ai.InsightRequest) ([]ai.Insight, error) {
	if s == nil || s.client == nil {
		return nil, nil
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	items, err := s.client.Insights(ctx, req)
	if err != nil {
		if errors.Is(err, ai.ErrQuotaExceeded) {
			s.logger.Warn("insights backend quota exceeded, using static insights")
		} else {
			s.logger.Warn("insights backend failed, using static insights", "error", err)
		}
		return nil, nil
	}
	return items, nil
}
