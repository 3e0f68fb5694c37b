package council

import (
	"strings"

	"github.com/ppiankov/benkhawiya/internal/model"
)

// Scorer ranks aspects by keyword containment
type Scorer struct {
	frameworks []Framework
	fallback   model.Aspect
}

// Selection is the scorer's verdict on a question
type Selection struct {
	Primary  model.Aspect
	Scores   []model.AspectScore // Priority order
	Fallback bool                // No keyword matched
}

// NewScorer creates a scorer that answers with fallback when nothing matches
func NewScorer(frameworks []Framework, fallback model.Aspect) *Scorer {
	return &Scorer{
		frameworks: frameworks,
		fallback:   fallback,
	}
}

// Calculate scores every aspect and picks the primary one.
// Each distinct keyword contained in the lower-cased question adds one point.
// The highest score wins; ties go to the aspect earliest in priority order.
func (s *Scorer) Calculate(question string) Selection {
	lower := strings.ToLower(question)

	scores := make([]model.AspectScore, 0, len(s.frameworks))
	best := -1
	bestScore := 0

	for i, f := range s.frameworks {
		score := model.AspectScore{Aspect: f.Aspect}
		for _, kw := range f.Keywords {
			if strings.Contains(lower, kw) {
				score.Score++
				score.Keywords = append(score.Keywords, kw)
			}
		}
		scores = append(scores, score)

		// strict > keeps the earlier aspect on ties
		if score.Score > bestScore {
			best = i
			bestScore = score.Score
		}
	}

	if best < 0 {
		return Selection{
			Primary:  s.fallback,
			Scores:   scores,
			Fallback: true,
		}
	}

	return Selection{
		Primary: scores[best].Aspect,
		Scores:  scores,
	}
}
