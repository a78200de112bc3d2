// Package catalog holds the questionnaire definition, its file loader and
// validation, and the next-question flow over the active question set.
package catalog

import "github.com/ZanzyTHEbar/ai-adoption-score/internal/scoring"

// UserTypeQuestionID is the profiling question that gates coder-only questions.
const UserTypeQuestionID = "user_type"

var coderUserTypes = []string{
	"I write code professionally",
	"I code as a hobby or for personal projects",
}

func coderOnly() *scoring.Predicate {
	return scoring.WhenAnswerIn(UserTypeQuestionID, coderUserTypes...)
}

// Default returns a fresh copy of the built-in questionnaire.
func Default() []scoring.Question {
	return []scoring.Question{
		// Profiling
		{
			ID:       UserTypeQuestionID,
			Text:     "Which best describes your relationship with code?",
			Type:     scoring.TypeMultiple,
			Category: scoring.CategoryHabits,
			Options: []string{
				"I write code professionally",
				"I code as a hobby or for personal projects",
				"I can read code but rarely write it",
				"Code is alien to me",
			},
			Weight: 0,
		},

		// Daily habits
		{
			ID:       "search_behavior",
			Text:     "When you need information, your first instinct is to:",
			Type:     scoring.TypeMultiple,
			Category: scoring.CategoryHabits,
			Options: []string{
				"Ask an AI (ChatGPT, Claude, etc)",
				"Google it (traditional search)",
				"Check documentation/books",
				"Ask a human",
			},
			Weight: 1,
		},
		{
			ID:       "ai_tools_count",
			Text:     "How many different AI tools do you actively use?",
			Type:     scoring.TypeSlider,
			Category: scoring.CategoryHabits,
			Min:      scoring.Float(0),
			Max:      scoring.Float(20),
			Weight:   1.5,
		},
		{
			ID:       "daily_ai_time",
			Text:     "How many hours per day do you interact with AI?",
			Type:     scoring.TypeSlider,
			Category: scoring.CategoryHabits,
			Min:      scoring.Float(0),
			Max:      scoring.Float(16),
			Weight:   1.2,
		},

		// Work integration
		{
			ID:       "code_generation",
			Text:     "What percentage of your code is AI-generated?",
			Type:     scoring.TypeSlider,
			Category: scoring.CategoryWork,
			Min:      scoring.Float(0),
			Max:      scoring.Float(100),
			Weight:   2,
			ShowIf:   coderOnly(),
		},
		{
			ID:       "terminal_ai",
			Text:     "Do you have AI integrated into your terminal/CLI?",
			Type:     scoring.TypeBinary,
			Category: scoring.CategoryWork,
			Weight:   1.5,
			ShowIf:   coderOnly(),
		},
		{
			ID:       "ide_copilot",
			Text:     "Do you use AI pair programming tools (Copilot, Cursor, etc)?",
			Type:     scoring.TypeBinary,
			Category: scoring.CategoryWork,
			Weight:   1.3,
			ShowIf:   coderOnly(),
		},
		{
			ID:       "work_email_ai",
			Text:     "Do you use AI to help with emails?",
			Type:     scoring.TypeMultiple,
			Category: scoring.CategoryWork,
			Options: []string{
				"Yes, it drafts most of my emails",
				"Yes, occasionally for difficult ones",
				"No, but I would if I could",
				"No, I prefer writing my own",
			},
			Weight: 1,
		},
		{
			ID:       "meeting_notes_ai",
			Text:     "Do you use AI for meeting notes/transcription?",
			Type:     scoring.TypeBinary,
			Category: scoring.CategoryWork,
			Weight:   1,
		},

		// Privacy
		{
			ID:       "email_access",
			Text:     "Would you give AI full access to your email history?",
			Type:     scoring.TypeMultiple,
			Category: scoring.CategoryPrivacy,
			Options:  []string{"Already have", "Yes, I would", "Maybe with restrictions", "No way"},
			Weight:   2,
		},
		{
			ID:       "conversation_recording",
			Text:     "Would you let AI record and analyze all your conversations?",
			Type:     scoring.TypeMultiple,
			Category: scoring.CategoryPrivacy,
			Options:  []string{"Already doing this", "Yes, I would", "Only for work calls", "Never"},
			Weight:   2.5,
		},
		{
			ID:       "private_notes_access",
			Text:     "Would you give AI access to your private notes/journal?",
			Type:     scoring.TypeMultiple,
			Category: scoring.CategoryPrivacy,
			Options:  []string{"Already have", "Yes, it would be helpful", "Maybe sanitized versions", "No, too personal"},
			Weight:   2,
		},
		{
			ID:       "financial_access",
			Text:     "Have you given AI access to financial information?",
			Type:     scoring.TypeMultiple,
			Category: scoring.CategoryPrivacy,
			Options: []string{
				"Yes, including account access",
				"Yes, for analysis only",
				"No, but I would consider it",
				"No, that's too risky",
			},
			Weight: 2,
		},

		// Autonomy
		{
			ID:       "unreviewed_decisions",
			Text:     "Have you let AI make decisions without reviewing them first?",
			Type:     scoring.TypeBinary,
			Category: scoring.CategoryAutonomy,
			Weight:   2,
		},
		{
			ID:       "background_agents",
			Text:     "Do you have AI agents that work while you sleep?",
			Type:     scoring.TypeMultiple,
			Category: scoring.CategoryAutonomy,
			Options:  []string{"Yes, regularly", "I've tried it", "I want to but don't know how", "What's an agent?"},
			Weight:   2.5,
		},
		{
			ID:       "longest_unsupervised",
			Text:     "What's the longest you've let AI work completely unsupervised?",
			Type:     scoring.TypeMultiple,
			Category: scoring.CategoryAutonomy,
			Options:  []string{"Days or weeks", "Several hours", "Under an hour", "Never - I always monitor"},
			Weight:   2,
		},
		{
			ID:       "autonomous_purchases",
			Text:     "Would you let AI make purchases on your behalf?",
			Type:     scoring.TypeMultiple,
			Category: scoring.CategoryAutonomy,
			Options:  []string{"Already do", "For small amounts, yes", "With approval, maybe", "Absolutely not"},
			Weight:   2,
		},

		// Technical sophistication
		{
			ID:       scoring.BuildingQuestionID,
			Text:     "Which best describes you?",
			Type:     scoring.TypeMultiple,
			Category: scoring.CategorySophistication,
			Options: []string{
				"I build AI agents/tools",
				"I customize and chain AI tools",
				"I use AI tools as-is",
				"I'm just learning",
			},
			Weight: 2,
		},
		{
			ID:       "api_usage",
			Text:     "Do you use AI APIs directly (not through UIs)?",
			Type:     scoring.TypeBinary,
			Category: scoring.CategorySophistication,
			Weight:   1.5,
			ShowIf:   coderOnly(),
		},
		{
			ID:       "prompt_engineering",
			Text:     "How much effort do you put into prompt engineering?",
			Type:     scoring.TypeScale,
			Category: scoring.CategorySophistication,
			Min:      scoring.Float(1),
			Max:      scoring.Float(5),
			Weight:   1,
		},
		{
			ID:       "local_models",
			Text:     "Do you run AI models locally on your machine?",
			Type:     scoring.TypeBinary,
			Category: scoring.CategorySophistication,
			Weight:   2,
		},

		// Emotional relationship
		{
			ID:       "emotional_response",
			Text:     "How does AI make you feel? (Choose strongest)",
			Type:     scoring.TypeMultiple,
			Category: scoring.CategoryEmotional,
			Options: []string{
				"Excited about possibilities",
				"Anxious about job security",
				"Overwhelmed by pace of change",
				"Indifferent",
				"Skeptical of hype",
			},
			Weight: 1,
		},
		{
			ID:       "trust_level",
			Text:     "How much do you trust AI outputs?",
			Type:     scoring.TypeScale,
			Category: scoring.CategoryEmotional,
			Min:      scoring.Float(1),
			Max:      scoring.Float(5),
			Weight:   1.5,
		},

		// Budget
		{
			ID:       "monthly_spend",
			Text:     "How much do you spend monthly on AI tools/subscriptions?",
			Type:     scoring.TypeMultiple,
			Category: scoring.CategoryBudget,
			Options:  []string{"$0", "$1-20", "$21-50", "$51-100", "$100+"},
			Weight:   1.5,
		},

		// Philosophy
		{
			ID:       "future_ear_piece",
			Text:     "In 5 years, will you have an AI voice assistant in your ear 24/7?",
			Type:     scoring.TypeMultiple,
			Category: scoring.CategoryPhilosophy,
			Options:  []string{"Already do", "Definitely", "Probably", "Maybe", "No way"},
			Weight:   2,
		},
		{
			ID:       "job_replacement",
			Text:     "Will AI replace your job?",
			Type:     scoring.TypeMultiple,
			Category: scoring.CategoryPhilosophy,
			Options: []string{
				"I'm using AI to replace it myself",
				"Parts of it, and that's good",
				"Parts of it, and that worries me",
				"No, my job is safe",
				"I work in AI, so...",
			},
			Weight: 1.5,
		},
		{
			ID:       "agi_timeline",
			Text:     "When do you think we'll achieve AGI?",
			Type:     scoring.TypeMultiple,
			Category: scoring.CategoryPhilosophy,
			Options:  []string{"1-2 years", "3-5 years", "5-10 years", "10+ years", "Never / fundamentally impossible"},
			Weight:   1,
		},
		{
			ID:       "building_for_agi",
			Text:     "Are you building/preparing for AGI or just using current tools?",
			Type:     scoring.TypeMultiple,
			Category: scoring.CategoryPhilosophy,
			Options: []string{
				"Building for AGI future",
				"Both building and using",
				"Just using tools pragmatically",
				"Neither really",
				"Avoiding AI when possible",
			},
			Weight: 2,
		},
	}
}
