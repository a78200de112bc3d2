package scoring

// BuildingQuestionID is the question whose answer gates the AI Native rule.
const BuildingQuestionID = "building_vs_using"

var builderAnswers = []string{
	"I build AI agents/tools",
	"I customize and chain AI tools",
}

// ArchetypeProfile is the static description attached to an archetype.
type ArchetypeProfile struct {
	Name        Archetype `json:"name"`
	Description string    `json:"description"`
	Traits      []string  `json:"traits"`
	GrowthPath  []string  `json:"growthPath"`
}

var profiles = map[Archetype]ArchetypeProfile{
	ArchetypeAINative: {
		Name:        ArchetypeAINative,
		Description: "You live and breathe AI. Building agents, running local models, and pushing boundaries.",
		Traits: []string{
			"Builds AI agents and tools",
			"Deep technical understanding",
			"High trust and autonomy",
			"Privacy-aware but pragmatic",
			"Thinks long-term about AGI",
		},
		GrowthPath: []string{
			"Share your knowledge - write about your setup",
			"Contribute to open source AI projects",
			"Mentor others in AI adoption",
			"Experiment with multi-agent systems",
		},
	},
	ArchetypePowerUser: {
		Name:        ArchetypePowerUser,
		Description: "Multiple AI tools, high integration, but not building your own yet.",
		Traits: []string{
			"Uses many AI tools effectively",
			"Strong workflows and automation",
			"Comfortable with deep integration",
			"Still learning the technical side",
			"Excited about possibilities",
		},
		GrowthPath: []string{
			"Learn to use APIs directly",
			"Try building a simple agent",
			"Explore local models",
			"Automate more of your workflow",
		},
	},
	ArchetypePragmaticAdopter: {
		Name:        ArchetypePragmaticAdopter,
		Description: "Selective AI use. You adopt when it clearly adds value, cautious about downsides.",
		Traits: []string{
			"Uses AI strategically",
			"Privacy-conscious",
			"Validates outputs carefully",
			"Skeptical of hype",
			"Balanced perspective",
		},
		GrowthPath: []string{
			"Try one new AI tool this month",
			"Experiment with deeper integration",
			"Test autonomous workflows",
			"Consider where trust makes sense",
		},
	},
	ArchetypeAICurious: {
		Name:        ArchetypeAICurious,
		Description: "Exploring AI, learning what works. Still finding your comfort level.",
		Traits: []string{
			"Active learner",
			"Testing different tools",
			"Building understanding",
			"Developing workflows",
			"Open to possibilities",
		},
		GrowthPath: []string{
			"Commit to one AI tool for a month",
			"Join AI communities",
			"Learn prompt engineering basics",
			"Document what works for you",
		},
	},
	ArchetypeAISkeptic: {
		Name:        ArchetypeAISkeptic,
		Description: "Minimal AI use. Concerns about quality, privacy, or job impact limit adoption.",
		Traits: []string{
			"Prefers human judgment",
			"Concerned about privacy/security",
			"Questions AI reliability",
			"Values traditional methods",
			"Watching from sidelines",
		},
		GrowthPath: []string{
			"Try AI for low-stakes tasks",
			"Learn about privacy-preserving options",
			"Understand local models",
			"Connect with thoughtful AI users",
		},
	},
}

// Profile returns a copy of the static profile for a.
func Profile(a Archetype) (ArchetypeProfile, bool) {
	p, ok := profiles[a]
	if !ok {
		return ArchetypeProfile{}, false
	}
	p.Traits = append([]string(nil), p.Traits...)
	p.GrowthPath = append([]string(nil), p.GrowthPath...)
	return p, true
}

// Classify maps an unrounded overall score, the category scores and the raw
// answers to exactly one archetype. Rules are evaluated in order and the
// first match wins.
func Classify(overall float64, scores []CategoryScore, answers Answers) Archetype {
	sophistication := lookupScore(scores, CategorySophistication).Percentage
	autonomy := lookupScore(scores, CategoryAutonomy).Percentage
	habits := lookupScore(scores, CategoryHabits).Percentage

	switch {
	case sophistication >= 70 && autonomy >= 60 && isBuilder(answers):
		return ArchetypeAINative
	case habits >= 60 && overall >= 60 && sophistication < 70:
		return ArchetypePowerUser
	case overall < 30:
		return ArchetypeAISkeptic
	case overall < 50 && habits > 30:
		return ArchetypeAICurious
	default:
		return ArchetypePragmaticAdopter
	}
}

func isBuilder(answers Answers) bool {
	s, ok := answers[BuildingQuestionID].AsText()
	if !ok {
		return false
	}
	return indexOf(builderAnswers, s) >= 0
}
