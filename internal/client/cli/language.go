package cli

import (
	"context"

	"github.com/glasses-man/exampilot/internal/client/models"
)

// Language toggles the UI language between English and Arabic and persists
// the choice. When a session is active, the profile's preference follows.
func (a *App) Language(ctx context.Context) error {
	next := models.LanguageArabic
	if a.lang == models.LanguageArabic {
		next = models.LanguageEnglish
	}

	if err := a.sessions.SetLanguage(ctx, next); err != nil {
		return err
	}
	a.lang = next

	if a.isLoggedIn() {
		a.session.Profile.PreferredLanguage = next
		if err := a.sessions.Update(ctx, a.session.Profile); err != nil {
			return err
		}
	}

	printlnFn("Language:", string(next))
	return nil
}
