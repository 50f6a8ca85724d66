package cli

import (
	"context"
	"fmt"

	"github.com/glasses-man/exampilot/internal/client/models"
)

// Stats prints the active profile's progress summary.
func (a *App) Stats(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Please login first")
		return nil
	}

	msgs := a.msgs()
	p := a.session.Profile

	printlnFn(fmt.Sprintf("%s %d (%d/%d %s)", msgs.Level, p.Level, p.XPIntoLevel(), models.XPPerLevel, msgs.XP))
	printlnFn(fmt.Sprintf("%s: %d", msgs.TotalSolved, p.TotalQuestions))
	printlnFn(fmt.Sprintf("%s: %d", msgs.Streak, p.Streak))

	if p.Tier == models.TierPremium {
		printlnFn(fmt.Sprintf("%s: %d", msgs.DailyQuestions, p.DailyQuestions))
	} else {
		printlnFn(fmt.Sprintf("%s: %d/%d (%d %s)", msgs.DailyQuestions, p.DailyQuestions, models.FreeDailyLimit, p.QuestionsLeft(), msgs.QuestionsLeft))
	}

	return nil
}
