package simulated

import (
	"math/rand"
	"sync"
	"time"

	domain "github.com/bryanwahyu/legal-doc-analyzer/internal/domain/analysis"
	"github.com/bryanwahyu/legal-doc-analyzer/internal/domain/documents"
)

// Scorer draws the pseudo-random numbers of a run
type Scorer struct {
	mu         sync.Mutex
	randSource *rand.Rand
}

func NewScorer() *Scorer {
	// Create a dedicated random source to avoid contention
	return NewSeededScorer(time.Now().UnixNano())
}

func NewSeededScorer(seed int64) *Scorer {
	return &Scorer{randSource: rand.New(rand.NewSource(seed))}
}

func (s *Scorer) intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.randSource.Intn(n)
}

func (s *Scorer) float() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.randSource.Float64()
}

// Score counts clauses (fixed for samples with a clause list, random otherwise)
// and draws the risk and confidence scores.
func (s *Scorer) Score(files []documents.UploadedFile) domain.Scores {
	clauses := 0
	for _, f := range files {
		if fixed, ok := f.FixedClauses(); ok {
			clauses += len(fixed)
			continue
		}
		clauses += domain.RandomClausesMin + s.intn(domain.RandomClausesMax-domain.RandomClausesMin)
	}
	return domain.Scores{
		ClauseCount:     clauses,
		RiskScore:       domain.RiskScoreMin + s.intn(domain.RiskScoreMax-domain.RiskScoreMin),
		ConfidenceScore: domain.ConfidenceScoreMin + s.intn(domain.ConfidenceScoreMax-domain.ConfidenceScoreMin),
	}
}

// RiskRatings draws n ratings weighted 60/30/10 towards low risk.
func (s *Scorer) RiskRatings(n int) []domain.RiskRating {
	out := make([]domain.RiskRating, n)
	for i := range out {
		switch v := s.float(); {
		case v < 0.6:
			out[i] = domain.RiskLow
		case v < 0.9:
			out[i] = domain.RiskMedium
		default:
			out[i] = domain.RiskHigh
		}
	}
	return out
}
