package cli

import (
	"context"
	"fmt"

	"github.com/glasses-man/exampilot/internal/client/models"
)

// Leaderboard prints the demo standings with the active profile in its
// reserved row.
func (a *App) Leaderboard(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Please login first")
		return nil
	}

	msgs := a.msgs()

	printlnFn(msgs.Leaderboard)
	for _, e := range models.DemoLeaderboard(a.session.Profile) {
		marker := ""
		if e.You {
			marker = " <-"
		}
		printlnFn(fmt.Sprintf("%d. %-10s %5d %s  %s %d%s", e.Rank, e.Name, e.XP, msgs.XP, msgs.Level, e.Level, marker))
	}

	return nil
}
