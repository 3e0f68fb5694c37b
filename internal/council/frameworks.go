package council

import (
	"slices"

	"github.com/ppiankov/benkhawiya/internal/model"
)

// Framework is the fixed lens one aspect brings to every question
type Framework struct {
	Aspect    model.Aspect
	Focus     []string
	Questions []string
	// Keywords are lower-case fragments matched by substring containment,
	// so "boundar" catches both "boundary" and "boundaries".
	Keywords []string
}

var frameworks = map[model.Aspect]Framework{
	model.AspectSewu: {
		Aspect: model.AspectSewu,
		Focus:  []string{"nurturing", "connection", "emotional_intelligence", "community"},
		Questions: []string{
			"How does this nurture growth and relationships?",
			"What connections need cultivation?",
			"How does this affect communal harmony?",
		},
		Keywords: []string{
			"nurtur", "connect", "community", "love", "care", "empath", "heal",
			"relationship", "together", "shar", "peace", "joy", "emotion",
			"family", "friend", "support", "harmony", "grow",
		},
	},
	model.AspectPelu: {
		Aspect: model.AspectPelu,
		Focus:  []string{"truth", "boundaries", "integrity", "measurement"},
		Questions: []string{
			"What is the fundamental truth here?",
			"What boundaries ensure integrity?",
			"How do we measure accuracy and alignment?",
		},
		Keywords: []string{
			"truth", "trust", "boundar", "integrity", "honest", "measur",
			"clarity", "law", "ethic", "standard", "valid", "discern",
			"accura", "transparen", "verif",
		},
	},
	model.AspectRuwa: {
		Aspect: model.AspectRuwa,
		Focus:  []string{"vision", "possibility", "innovation", "perspective"},
		Questions: []string{
			"What future possibilities does this reveal?",
			"How can perspective be expanded?",
			"What visionary paths are available?",
		},
		Keywords: []string{
			"vision", "possib", "innovat", "perspective", "future", "creat",
			"imagin", "transform", "insight", "idea", "expand", "evolv",
			"change", "dream", "invent", "foresight",
		},
	},
	model.AspectTemu: {
		Aspect: model.AspectTemu,
		Focus:  []string{"structure", "proportion", "timing", "manifestation"},
		Questions: []string{
			"What structural integrity is needed?",
			"How is cosmic proportion maintained?",
			"What is the optimal timing for manifestation?",
		},
		Keywords: []string{
			"structur", "proportion", "timing", "manifest", "plan", "schedul",
			"architect", "foundation", "order", "hierarch", "resource",
			"geometr", "justice", "fair", "balance", "symmetr", "build", "organi",
		},
	},
}

// Frameworks returns a copy of every aspect framework in priority order
func Frameworks() []Framework {
	out := make([]Framework, 0, len(model.Aspects))
	for _, a := range model.Aspects {
		out = append(out, frameworks[a].clone())
	}
	return out
}

// FrameworkFor returns a copy of the framework of one aspect
func FrameworkFor(aspect model.Aspect) (Framework, bool) {
	f, ok := frameworks[aspect]
	if !ok {
		return Framework{}, false
	}
	return f.clone(), true
}

func (f Framework) clone() Framework {
	return Framework{
		Aspect:    f.Aspect,
		Focus:     slices.Clone(f.Focus),
		Questions: slices.Clone(f.Questions),
		Keywords:  slices.Clone(f.Keywords),
	}
}
