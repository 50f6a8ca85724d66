package cli

import (
	"context"

	"github.com/glasses-man/exampilot/internal/client/models"
)

// Upgrade switches the active account to the premium tier and persists the
// updated profile. The premium badge is awarded by the scoring engine on
// the next completed question. Already-premium accounts are a no-op.
func (a *App) Upgrade(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Please login first")
		return nil
	}

	msgs := a.msgs()

	if a.session.Profile.Tier == models.TierPremium {
		printlnFn(msgs.Upgrade)
		return nil
	}

	p := a.session.Profile.Clone()
	p.Tier = models.TierPremium

	if err := a.sessions.Update(ctx, p); err != nil {
		return err
	}
	a.session.Profile = p

	printlnFn(msgs.Upgrade)
	return nil
}
