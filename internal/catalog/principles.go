package catalog

import "github.com/ppiankov/benkhawiya/internal/model"

// principles is the compiled-in table, in id order.
// PELU holds ids 1-11, TEMU 12-22, SEWU 23-32 and RUWA 33-42.
var principles = []model.Principle{
	// PELU: truth, boundaries, integrity
	{ID: 1, Name: "DÁNÁ", Meaning: "Truth Alignment", Aspect: model.AspectPelu,
		Description:                "Fundamental reality alignment and cosmic truth measurement",
		MathematicalRepresentation: "Â_truth = ∇·Ψ_cosmic",
		PracticalApplication:       "Reality verification and truth discernment"},
	{ID: 2, Name: "KÉLÚ", Meaning: "Boundary Clarity", Aspect: model.AspectPelu,
		Description:                "Clear delineation of sacred boundaries and limits",
		MathematicalRepresentation: "∂Ω/∂t = 0",
		PracticalApplication:       "Setting healthy boundaries and limits"},
	{ID: 3, Name: "SÉTÁ", Meaning: "Precision Measurement", Aspect: model.AspectPelu,
		Description:                "Accurate measurement and assessment of reality",
		MathematicalRepresentation: "ε_measure → 0",
		PracticalApplication:       "Data-driven decision making"},
	{ID: 4, Name: "WÉNÁ", Meaning: "Integrity Shield", Aspect: model.AspectPelu,
		Description:                "Protection and maintenance of wholeness and authenticity",
		MathematicalRepresentation: "∮ integrity·dl = 1",
		PracticalApplication:       "Maintaining ethical standards"},
	{ID: 5, Name: "PÉKÁ", Meaning: "Discernment Light", Aspect: model.AspectPelu,
		Description:                "Clear seeing and wise judgment of situations",
		MathematicalRepresentation: "L_discern = ∫clarity·dλ",
		PracticalApplication:       "Critical thinking and analysis"},
	{ID: 6, Name: "RÉNÁ", Meaning: "Truth Resonance", Aspect: model.AspectPelu,
		Description:                "Vibrational alignment with fundamental truth",
		MathematicalRepresentation: "ω_truth ≈ ω_reality",
		PracticalApplication:       "Authenticity in communication"},
	{ID: 7, Name: "TÉLÚ", Meaning: "Test Validation", Aspect: model.AspectPelu,
		Description:                "Verification through rigorous testing",
		MathematicalRepresentation: "P(valid|test) → 1",
		PracticalApplication:       "Quality assurance processes"},
	{ID: 8, Name: "MÉKÁ", Meaning: "Standard Calibration", Aspect: model.AspectPelu,
		Description:                "Alignment with universal standards and measures",
		MathematicalRepresentation: "x_actual = x_standard",
		PracticalApplication:       "Standardization and consistency"},
	{ID: 9, Name: "DÉWÁ", Meaning: "Honesty Core", Aspect: model.AspectPelu,
		Description:                "Foundation of truthful expression and transparency",
		MathematicalRepresentation: "H = -Σp·log(p)",
		PracticalApplication:       "Transparent communication"},
	{ID: 10, Name: "LÉNÁ", Meaning: "Law Harmony", Aspect: model.AspectPelu,
		Description:                "Alignment with natural and cosmic law",
		MathematicalRepresentation: "∇×E = -∂B/∂t",
		PracticalApplication:       "Legal and ethical compliance"},
	{ID: 11, Name: "NÉKÁ", Meaning: "Clarity Beacon", Aspect: model.AspectPelu,
		Description:                "Illumination of truth in darkness",
		MathematicalRepresentation: "I = I₀e^(-μx)",
		PracticalApplication:       "Clear documentation and teaching"},

	// TEMU: structure, proportion, timing
	{ID: 12, Name: "MÁTÁ", Meaning: "Justice Balance", Aspect: model.AspectTemu,
		Description:                "Right relationship and cosmic balance maintenance",
		MathematicalRepresentation: "Â_justice = ∫balance·dΩ",
		PracticalApplication:       "Fairness and equitable distribution"},
	{ID: 13, Name: "FÍSÁ", Meaning: "Golden Proportion", Aspect: model.AspectTemu,
		Description:                "Divine proportion and harmonic ratios in manifestation",
		MathematicalRepresentation: "φ = (1+√5)/2",
		PracticalApplication:       "Aesthetic and functional design"},
	{ID: 14, Name: "RÍTÁ", Meaning: "Sacred Timing", Aspect: model.AspectTemu,
		Description:                "Perfect timing and synchronization with cosmic cycles",
		MathematicalRepresentation: "t_optimal = Φ(cycle)",
		PracticalApplication:       "Project planning and scheduling"},
	{ID: 15, Name: "SÍMÁ", Meaning: "Symmetry Order", Aspect: model.AspectTemu,
		Description:                "Balanced structure and mirrored harmony",
		MathematicalRepresentation: "S(x) = S(-x)",
		PracticalApplication:       "Organizational structure design"},
	{ID: 16, Name: "KRÍÁ", Meaning: "Crystalline Matrix", Aspect: model.AspectTemu,
		Description:                "Perfect geometric structure and lattice formation",
		MathematicalRepresentation: "A·B = 0",
		PracticalApplication:       "Systems architecture"},
	{ID: 17, Name: "BÓNÁ", Meaning: "Foundation Strength", Aspect: model.AspectTemu,
		Description:                "Solid base and structural integrity",
		MathematicalRepresentation: "σ_max < σ_yield",
		PracticalApplication:       "Infrastructure development"},
	{ID: 18, Name: "DRÍÁ", Meaning: "Distribution Flow", Aspect: model.AspectTemu,
		Description:                "Optimal resource allocation and flow",
		MathematicalRepresentation: "∇·F = ρ",
		PracticalApplication:       "Resource management"},
	{ID: 19, Name: "KÓNÁ", Meaning: "Sacred Geometry", Aspect: model.AspectTemu,
		Description:                "Divine patterns in form and structure",
		MathematicalRepresentation: "V = ∫∫∫ dV",
		PracticalApplication:       "Spatial planning"},
	{ID: 20, Name: "TRÍÁ", Meaning: "Threefold Unity", Aspect: model.AspectTemu,
		Description:                "Trinity principle in manifestation",
		MathematicalRepresentation: "Ψ = ψ₁ + ψ₂ + ψ₃",
		PracticalApplication:       "Three-pillar frameworks"},
	{ID: 21, Name: "MÉNÁ", Meaning: "Measure Exactness", Aspect: model.AspectTemu,
		Description:                "Precise quantification and metrics",
		MathematicalRepresentation: "Δx·Δp ≥ ℏ/2",
		PracticalApplication:       "Performance measurement"},
	{ID: 22, Name: "ÁRÍÁ", Meaning: "Hierarchical Order", Aspect: model.AspectTemu,
		Description:                "Natural ordering and stratification",
		MathematicalRepresentation: "E₀ < E₁ < E₂ < ...",
		PracticalApplication:       "Organizational hierarchy"},

	// SEWU: nurturing, connection, community
	{ID: 23, Name: "HÓTÉ", Meaning: "Harmonic Integration", Aspect: model.AspectSewu,
		Description:                "Coherent integration of diverse elements into unified whole",
		MathematicalRepresentation: "Â_harmony = Σ(sin(ωt + φ))",
		PracticalApplication:       "Conflict resolution and relationship harmony"},
	{ID: 24, Name: "LÚVÁ", Meaning: "Love Resonance", Aspect: model.AspectSewu,
		Description:                "Vibrational frequency of unconditional love",
		MathematicalRepresentation: "L(r) = k/r²",
		PracticalApplication:       "Compassionate relationships"},
	{ID: 25, Name: "ÚNÍÁ", Meaning: "Unity Consciousness", Aspect: model.AspectSewu,
		Description:                "Recognition of interconnectedness of all being",
		MathematicalRepresentation: "Ψ_collective = ⨂Ψᵢ",
		PracticalApplication:       "Community building"},
	{ID: 26, Name: "KÁRÉ", Meaning: "Care Nurturing", Aspect: model.AspectSewu,
		Description:                "Tender attention and supportive growth",
		MathematicalRepresentation: "dG/dt = r·G·(1-G/K)",
		PracticalApplication:       "Mentorship and support"},
	{ID: 27, Name: "ÉMÚÁ", Meaning: "Empathy Bridge", Aspect: model.AspectSewu,
		Description:                "Deep understanding and emotional resonance",
		MathematicalRepresentation: "E_shared = ∫ψ₁*·ψ₂ dτ",
		PracticalApplication:       "Active listening"},
	{ID: 28, Name: "SHÁNÁ", Meaning: "Sharing Flow", Aspect: model.AspectSewu,
		Description:                "Generous circulation of resources and wisdom",
		MathematicalRepresentation: "∮ J·dA = 0",
		PracticalApplication:       "Knowledge sharing"},
	{ID: 29, Name: "HÍLÁ", Meaning: "Healing Presence", Aspect: model.AspectSewu,
		Description:                "Restorative energy and therapeutic power",
		MathematicalRepresentation: "H(t) = H₀·e^(-λt)",
		PracticalApplication:       "Healing practices"},
	{ID: 30, Name: "GRÁWÁ", Meaning: "Growth Cultivation", Aspect: model.AspectSewu,
		Description:                "Organic development and evolutionary progress",
		MathematicalRepresentation: "∂u/∂t = D∇²u",
		PracticalApplication:       "Personal development"},
	{ID: 31, Name: "PÉWÁ", Meaning: "Peace Stillness", Aspect: model.AspectSewu,
		Description:                "Tranquil center and harmonious equilibrium",
		MathematicalRepresentation: "∇V = 0",
		PracticalApplication:       "Meditation and calm"},
	{ID: 32, Name: "JÓYÁ", Meaning: "Joy Radiance", Aspect: model.AspectSewu,
		Description:                "Light emanation of happiness and celebration",
		MathematicalRepresentation: "J = σT⁴",
		PracticalApplication:       "Positive environment"},

	// RUWA: vision, possibility, innovation
	{ID: 33, Name: "VÍSÁ", Meaning: "Vision Sight", Aspect: model.AspectRuwa,
		Description:                "Clear perception of future possibilities",
		MathematicalRepresentation: "V(future) = ∫P(t)·dt",
		PracticalApplication:       "Strategic planning"},
	{ID: 34, Name: "CRÉÁ", Meaning: "Creative Force", Aspect: model.AspectRuwa,
		Description:                "Generative power of imagination and innovation",
		MathematicalRepresentation: "C = ∂Ψ/∂imagination",
		PracticalApplication:       "Innovation and creativity"},
	{ID: 35, Name: "ÉXPÁ", Meaning: "Expansion Wave", Aspect: model.AspectRuwa,
		Description:                "Outward growth and boundary transcendence",
		MathematicalRepresentation: "r(t) = r₀·e^(Ht)",
		PracticalApplication:       "Market expansion"},
	{ID: 36, Name: "TRÁNÁ", Meaning: "Transformation Alchemy", Aspect: model.AspectRuwa,
		Description:                "Fundamental change and metamorphosis",
		MathematicalRepresentation: "A → B: ΔG < 0",
		PracticalApplication:       "Change management"},
	{ID: 37, Name: "INSÁ", Meaning: "Insight Flash", Aspect: model.AspectRuwa,
		Description:                "Sudden illumination and epiphany",
		MathematicalRepresentation: "I(t) = I₀·δ(t-t₀)",
		PracticalApplication:       "Breakthrough thinking"},
	{ID: 38, Name: "PÓSSÁ", Meaning: "Possibility Field", Aspect: model.AspectRuwa,
		Description:                "Quantum potential and multiple futures",
		MathematicalRepresentation: "Ψ = Σcᵢ|ψᵢ⟩",
		PracticalApplication:       "Scenario planning"},
	{ID: 39, Name: "IMÁGÁ", Meaning: "Imagination Power", Aspect: model.AspectRuwa,
		Description:                "Mental creation and visualization strength",
		MathematicalRepresentation: "I·V = Reality",
		PracticalApplication:       "Visioning exercises"},
	{ID: 40, Name: "NÓVÁ", Meaning: "Innovation Spark", Aspect: model.AspectRuwa,
		Description:                "Novel combination and inventive solutions",
		MathematicalRepresentation: "N = recombine(A,B)",
		PracticalApplication:       "Product development"},
	{ID: 41, Name: "FÓRÉÁ", Meaning: "Foresight Wisdom", Aspect: model.AspectRuwa,
		Description:                "Anticipatory knowledge and prophetic vision",
		MathematicalRepresentation: "F(t+Δt) = f(state,t)",
		PracticalApplication:       "Risk assessment"},
	{ID: 42, Name: "ÉVÓÁ", Meaning: "Evolution Drive", Aspect: model.AspectRuwa,
		Description:                "Progressive development toward higher complexity",
		MathematicalRepresentation: "dΩ/dt > 0",
		PracticalApplication:       "Continuous improvement"},
}
