// Package progress implements the gamification engine: a pure state
// transition applied to a profile whenever a question is completed, plus the
// static badge catalog.
package progress

import "github.com/glasses-man/exampilot/internal/client/models"

// Badge is one entry of the static catalog: display data plus the predicate
// that earns it. Predicates are evaluated against the already-updated
// profile; a badge is awarded at most once and is never revoked, even if a
// later edit makes its predicate false again.
type Badge struct {
	ID          string
	Name        string
	Icon        string
	Description string
	Earned      func(p models.Profile) bool
}

// Catalog is the fixed badge catalog. Order matters: badges are evaluated
// and awarded in this sequence, which keeps award ordering deterministic.
var Catalog = []Badge{
	{
		ID: "first_question", Name: "First Steps", Icon: "🎯",
		Description: "Asked your first question",
		Earned:      func(p models.Profile) bool { return p.TotalQuestions == 1 },
	},
	{
		ID: "streak_3", Name: "On Fire", Icon: "🔥",
		Description: "3-day streak",
		Earned:      func(p models.Profile) bool { return p.Streak >= 3 },
	},
	{
		ID: "streak_7", Name: "Unstoppable", Icon: "⚡",
		Description: "7-day streak",
		Earned:      func(p models.Profile) bool { return p.Streak >= 7 },
	},
	{
		ID: "streak_30", Name: "Legend", Icon: "👑",
		Description: "30-day streak",
		Earned:      func(p models.Profile) bool { return p.Streak >= 30 },
	},
	{
		ID: "questions_10", Name: "Curious Mind", Icon: "🧠",
		Description: "Solved 10 questions",
		Earned:      func(p models.Profile) bool { return p.TotalQuestions >= 10 },
	},
	{
		ID: "questions_50", Name: "Scholar", Icon: "📚",
		Description: "Solved 50 questions",
		Earned:      func(p models.Profile) bool { return p.TotalQuestions >= 50 },
	},
	{
		ID: "questions_100", Name: "Master", Icon: "🏆",
		Description: "Solved 100 questions",
		Earned:      func(p models.Profile) bool { return p.TotalQuestions >= 100 },
	},
	{
		ID: "premium", Name: "VIP", Icon: "💎",
		Description: "Upgraded to Premium",
		Earned:      func(p models.Profile) bool { return p.Tier == models.TierPremium },
	},
}

// ByID looks a badge up in the catalog. The second return is false for
// unknown ids (e.g. a badge minted by a newer build).
func ByID(id string) (Badge, bool) {
	for _, b := range Catalog {
		if b.ID == id {
			return b, true
		}
	}
	return Badge{}, false
}
