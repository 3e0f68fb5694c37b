package model

// ConsultationResult is the council's answer to a single question.
// It is built per request and never stored.
type ConsultationResult struct {
	Question          string        `json:"question"`           // Question as asked (trimmed)
	PrimaryAspect     Aspect        `json:"primary_aspect"`     // Winning aspect after scoring
	Theme             string        `json:"theme"`              // Theme of the primary aspect
	MatchedPrinciples []Principle   `json:"matched_principles"` // All principles of the primary aspect, catalog order
	ResponseText      string        `json:"response_text"`      // Rendered guidance text
	Scores            []AspectScore `json:"scores"`             // Transparent scoring breakdown, priority order
	Fallback          bool          `json:"fallback"`           // No keyword matched; fallback aspect used
	Perspectives      []Perspective `json:"perspectives"`       // Per-aspect council view, priority order
}

// AspectScore records how strongly a question matched one aspect
type AspectScore struct {
	Aspect   Aspect   `json:"aspect"`
	Score    int      `json:"score"`              // Number of distinct keywords contained
	Keywords []string `json:"keywords,omitempty"` // Keywords that matched
}

// Perspective is one aspect's standing view on any question
type Perspective struct {
	Aspect            Aspect   `json:"aspect"`
	Focus             []string `json:"focus"`
	Questions         []string `json:"questions"`
	PrinciplesApplied []string `json:"principles_applied"`
}
