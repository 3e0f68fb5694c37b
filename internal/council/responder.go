// Package council maps free-text questions to a council aspect and its
// principles, and generates golden-ratio progressions.
package council

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"text/template"
	"unicode/utf8"

	"github.com/ppiankov/benkhawiya/internal/catalog"
	"github.com/ppiankov/benkhawiya/internal/model"
)

//go:embed templates/response.tmpl
var responseTemplateText string

var responseTemplate = template.Must(template.New("response").
	Funcs(template.FuncMap{"join": strings.Join}).
	Parse(responseTemplateText))

// Options configures a Responder
type Options struct {
	MaxQuestionLength int          // In runes
	FallbackAspect    model.Aspect // Answer when no keyword matches
	MaxGoldenTerms    int
}

// OptionsFromConfig extracts responder options from the service config
func OptionsFromConfig(cfg model.Config) (Options, error) {
	fallback, err := model.ParseAspect(cfg.Council.FallbackAspect)
	if err != nil {
		return Options{}, fmt.Errorf("fallback aspect: %w", err)
	}
	return Options{
		MaxQuestionLength: cfg.Council.MaxQuestionLength,
		FallbackAspect:    fallback,
		MaxGoldenTerms:    cfg.Golden.MaxTerms,
	}, nil
}

// Responder answers council consultations.
// It holds no mutable state and is safe for concurrent use.
type Responder struct {
	scorer            *Scorer
	maxQuestionLength int
	maxGoldenTerms    int
}

// NewResponder creates a responder
func NewResponder(opts Options) (*Responder, error) {
	if !opts.FallbackAspect.Valid() {
		return nil, fmt.Errorf("unknown fallback aspect %q", opts.FallbackAspect)
	}
	if opts.MaxQuestionLength <= 0 {
		return nil, fmt.Errorf("max question length must be positive, got %d", opts.MaxQuestionLength)
	}
	if opts.MaxGoldenTerms <= 0 {
		return nil, fmt.Errorf("max golden terms must be positive, got %d", opts.MaxGoldenTerms)
	}

	return &Responder{
		scorer:            NewScorer(Frameworks(), opts.FallbackAspect),
		maxQuestionLength: opts.MaxQuestionLength,
		maxGoldenTerms:    opts.MaxGoldenTerms,
	}, nil
}

type responseData struct {
	Question  string
	Label     string
	Theme     string
	Names     []string
	Questions []string
	Fallback  bool
}

// Consult selects the primary aspect for a question and renders guidance.
// The same question always produces the same result.
func (r *Responder) Consult(question string) (*model.ConsultationResult, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, invalid("question", "must not be empty")
	}
	if n := utf8.RuneCountInString(question); n > r.maxQuestionLength {
		return nil, invalid("question", "must be at most %d characters, got %d", r.maxQuestionLength, n)
	}

	sel := r.scorer.Calculate(question)
	matched := catalog.ByAspect(sel.Primary)
	framework, _ := FrameworkFor(sel.Primary)

	var buf bytes.Buffer
	err := responseTemplate.Execute(&buf, responseData{
		Question:  question,
		Label:     sel.Primary.Label(),
		Theme:     sel.Primary.Theme(),
		Names:     catalog.Names(matched),
		Questions: framework.Questions,
		Fallback:  sel.Fallback,
	})
	if err != nil {
		return nil, fmt.Errorf("render response: %w", err)
	}

	return &model.ConsultationResult{
		Question:          question,
		PrimaryAspect:     sel.Primary,
		Theme:             sel.Primary.Theme(),
		MatchedPrinciples: matched,
		ResponseText:      buf.String(),
		Scores:            sel.Scores,
		Fallback:          sel.Fallback,
		Perspectives:      perspectives(),
	}, nil
}

// perspectives builds each aspect's standing view, applying its first two principles
func perspectives() []model.Perspective {
	out := make([]model.Perspective, 0, len(model.Aspects))
	for _, f := range Frameworks() {
		names := catalog.Names(catalog.ByAspect(f.Aspect))
		if len(names) > 2 {
			names = names[:2]
		}
		out = append(out, model.Perspective{
			Aspect:            f.Aspect,
			Focus:             f.Focus,
			Questions:         f.Questions,
			PrinciplesApplied: names,
		})
	}
	return out
}
