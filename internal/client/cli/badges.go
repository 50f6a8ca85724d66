package cli

import (
	"context"
	"fmt"

	"github.com/glasses-man/exampilot/internal/client/progress"
)

// Badges prints the full badge catalog, marking the ones the active profile
// has earned.
func (a *App) Badges(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Please login first")
		return nil
	}

	msgs := a.msgs()
	p := a.session.Profile

	printlnFn(msgs.Badges)
	for _, b := range progress.Catalog {
		mark := " "
		if p.HasBadge(b.ID) {
			mark = "x"
		}
		printlnFn(fmt.Sprintf("[%s] %s %s - %s", mark, b.Icon, b.Name, b.Description))
	}

	return nil
}
