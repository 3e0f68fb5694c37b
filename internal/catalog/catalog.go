// Package catalog holds the read-only table of the 42 cosmic principles.
package catalog

import (
	"slices"

	"github.com/samber/lo"

	"github.com/ppiankov/benkhawiya/internal/model"
)

// Size is the number of principles in the catalog
const Size = 42

// All returns every principle in id order.
// The returned slice is a copy; the catalog itself never changes.
func All() []model.Principle {
	return slices.Clone(principles)
}

// ByAspect returns the principles of one aspect in catalog order
func ByAspect(aspect model.Aspect) []model.Principle {
	return lo.Filter(principles, func(p model.Principle, _ int) bool {
		return p.Aspect == aspect
	})
}

// Get looks up a principle by id
func Get(id int) (model.Principle, bool) {
	if id < 1 || id > len(principles) {
		return model.Principle{}, false
	}
	// ids are dense and start at 1
	return principles[id-1], true
}

// Count returns the number of loaded principles
func Count() int {
	return len(principles)
}

// CountByAspect returns how many principles each aspect holds
func CountByAspect() map[model.Aspect]int {
	return lo.CountValuesBy(principles, func(p model.Principle) model.Aspect {
		return p.Aspect
	})
}

// Names maps principles to their names, preserving order
func Names(ps []model.Principle) []string {
	return lo.Map(ps, func(p model.Principle, _ int) string {
		return p.Name
	})
}
