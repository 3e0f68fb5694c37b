package council

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ppiankov/benkhawiya/internal/model"
)

func TestScorer_Calculate_Breakdown(t *testing.T) {
	s := NewScorer(Frameworks(), model.AspectSewu)

	sel := s.Calculate("How should we build TRUST and Integrity?")

	assert.Equal(t, model.AspectPelu, sel.Primary)
	assert.False(t, sel.Fallback)
	assert.Equal(t, 0, sel.Scores[0].Score)
	assert.Equal(t, 2, sel.Scores[1].Score)
	assert.ElementsMatch(t, []string{"trust", "integrity"}, sel.Scores[1].Keywords)
	assert.Equal(t, 1, sel.Scores[3].Score)
	assert.Equal(t, []string{"build"}, sel.Scores[3].Keywords)
}

func TestScorer_Calculate_TieBreakByPriority(t *testing.T) {
	s := NewScorer(Frameworks(), model.AspectTemu)

	tests := []struct {
		question string
		want     model.Aspect
	}{
		// one keyword each for every pair, earlier aspect wins
		{"love and truth", model.AspectSewu},
		{"truth and vision", model.AspectPelu},
		{"vision and structure", model.AspectRuwa},
		{"structure and love", model.AspectSewu},
		{"love truth vision structure", model.AspectSewu},
	}

	for _, tt := range tests {
		t.Run(tt.question, func(t *testing.T) {
			sel := s.Calculate(tt.question)
			assert.Equal(t, tt.want, sel.Primary)
			assert.False(t, sel.Fallback)
		})
	}
}

func TestScorer_Calculate_KeywordCountedOnce(t *testing.T) {
	s := NewScorer(Frameworks(), model.AspectSewu)

	sel := s.Calculate("truth truth truth about vision and imagination")
	// pelu: truth (1); ruwa: vision, imagin (2)
	assert.Equal(t, model.AspectRuwa, sel.Primary)
	assert.Equal(t, 1, sel.Scores[1].Score)
	assert.Equal(t, 2, sel.Scores[2].Score)
}

func TestScorer_Calculate_Fallback(t *testing.T) {
	s := NewScorer(Frameworks(), model.AspectRuwa)

	sel := s.Calculate("xyzzy")
	assert.True(t, sel.Fallback)
	assert.Equal(t, model.AspectRuwa, sel.Primary)
	for _, sc := range sel.Scores {
		assert.Zero(t, sc.Score)
		assert.Empty(t, sc.Keywords)
	}
}

func TestFrameworks_PriorityOrderAndLowerCase(t *testing.T) {
	fs := Frameworks()
	assert.Len(t, fs, 4)
	for i, f := range fs {
		assert.Equal(t, model.Aspects[i], f.Aspect)
		assert.NotEmpty(t, f.Keywords)
		assert.Len(t, f.Questions, 3)
		for _, kw := range f.Keywords {
			assert.Equal(t, kw, strings.ToLower(kw), "keyword %q must be lower-case", kw)
		}
	}
}
