package model

import (
	"fmt"
	"strings"
)

// Aspect is one of the four council aspects a principle belongs to
type Aspect string

const (
	AspectSewu Aspect = "sewu" // Nurturing, Connection, Community
	AspectPelu Aspect = "pelu" // Truth, Boundaries, Integrity
	AspectRuwa Aspect = "ruwa" // Vision, Possibility, Innovation
	AspectTemu Aspect = "temu" // Structure, Proportion, Manifestation
)

// Aspects lists every aspect in council priority order.
// Ties between aspects are always resolved in this order.
var Aspects = []Aspect{AspectSewu, AspectPelu, AspectRuwa, AspectTemu}

func (a Aspect) String() string {
	return string(a)
}

// Label returns the upper-case council name (e.g. "PELU")
func (a Aspect) Label() string {
	return strings.ToUpper(string(a))
}

// Theme returns the human-readable theme carried by the aspect
func (a Aspect) Theme() string {
	switch a {
	case AspectSewu:
		return "Nurturing, Connection, Community"
	case AspectPelu:
		return "Truth, Boundaries, Integrity"
	case AspectRuwa:
		return "Vision, Possibility, Innovation"
	case AspectTemu:
		return "Structure, Proportion, Manifestation"
	default:
		return ""
	}
}

// Valid reports whether a is one of the four known aspects
func (a Aspect) Valid() bool {
	switch a {
	case AspectSewu, AspectPelu, AspectRuwa, AspectTemu:
		return true
	default:
		return false
	}
}

// ParseAspect parses an aspect name case-insensitively
func ParseAspect(s string) (Aspect, error) {
	a := Aspect(strings.ToLower(strings.TrimSpace(s)))
	if !a.Valid() {
		return "", fmt.Errorf("unknown aspect %q (expected one of sewu, pelu, ruwa, temu)", s)
	}
	return a, nil
}

// Principle is one of the 42 static cosmic principles
type Principle struct {
	ID                         int    `json:"id"`                          // 1..42
	Name                       string `json:"name"`                        // Principle name (e.g., "DÁNÁ")
	Meaning                    string `json:"meaning"`                     // Short English meaning
	Description                string `json:"description"`                 // One-line description
	Aspect                     Aspect `json:"aspect"`                      // Council aspect it belongs to
	MathematicalRepresentation string `json:"mathematical_representation"` // Symbolic formula
	PracticalApplication       string `json:"practical_application"`       // Where it applies in practice
}
