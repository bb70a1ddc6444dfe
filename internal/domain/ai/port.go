package ai

import "context"

// Insight is one recommendation shown in the AI insights section
type Insight struct {
	Title string `json:"title"`
	Icon  string `json:"icon"`
	Body  string `json:"body"`
}

// InsightRequest carries what the backend may look at: names only, never content.
type InsightRequest struct {
	FileNames []string
	Clauses   []string
	Format    string
}

// Client is a real insights backend that can replace the static insights.
type Client interface {
	Insights(ctx context.Context, req InsightRequest) ([]Insight, error)
}
