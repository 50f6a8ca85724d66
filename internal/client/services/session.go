package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/glasses-man/exampilot/internal/client/auth"
	"github.com/glasses-man/exampilot/internal/client/models"
	"github.com/glasses-man/exampilot/internal/client/repositories/state"
	"github.com/glasses-man/exampilot/internal/common"
	"github.com/glasses-man/exampilot/internal/dbx"
)

// SessionService holds the single active session and keeps the persisted
// token/profile pair consistent: every Start/End writes or clears both keys
// inside one transaction, so storage never carries a token without its
// profile or vice versa.
type SessionService interface {
	// Restore returns the persisted session, or nil when the token or
	// profile is absent, undecodable, or the token no longer validates.
	// Missing state is not an error.
	Restore(ctx context.Context) (*models.Session, error)
	// Start mints a fresh token for the profile and persists both.
	Start(ctx context.Context, profile models.Profile) (*models.Session, error)
	// Update overwrites the persisted profile snapshot; the token stays.
	Update(ctx context.Context, profile models.Profile) error
	// End clears the persisted session keys. Idempotent.
	End(ctx context.Context) error

	// Language returns the persisted UI language, defaulting to English.
	Language(ctx context.Context) (models.Language, error)
	// SetLanguage persists the UI language preference.
	SetLanguage(ctx context.Context, lang models.Language) error
}

type sessionService struct {
	db       *sql.DB
	tokenTTL time.Duration
}

// NewSessionService constructs a SessionService over the local state DB.
// tokenTTL bounds how long a persisted session survives restarts.
func NewSessionService(db *sql.DB, tokenTTL time.Duration) SessionService {
	return &sessionService{db: db, tokenTTL: tokenTTL}
}

func (s *sessionService) repo() state.Repository {
	return state.NewSQLiteRepository(s.db)
}

func (s *sessionService) Restore(ctx context.Context) (*models.Session, error) {
	repo := s.repo()

	token, err := repo.Get(ctx, state.KeyToken)
	if err != nil {
		return nil, err
	}
	rawProfile, err := repo.Get(ctx, state.KeyProfile)
	if err != nil {
		return nil, err
	}
	secret, err := repo.Get(ctx, state.KeySecret)
	if err != nil {
		return nil, err
	}

	// Partial state counts as "no session", never as a failure.
	if token == nil || rawProfile == nil || secret == nil {
		return nil, nil
	}

	if _, err := auth.GetProfileIDFromToken(string(token), secret); err != nil {
		return nil, nil
	}

	var profile models.Profile
	if err := json.Unmarshal(rawProfile, &profile); err != nil {
		return nil, nil
	}

	return &models.Session{Token: string(token), Profile: profile}, nil
}

func (s *sessionService) Start(ctx context.Context, profile models.Profile) (*models.Session, error) {
	secret, err := s.loadOrCreateSecret(ctx)
	if err != nil {
		return nil, err
	}

	token, err := auth.GenerateToken(profile.ID, secret, s.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to mint session token: %w", err)
	}

	rawProfile, err := json.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to encode profile: %w", err)
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := state.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, state.KeyToken, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, state.KeyProfile, rawProfile)
	})
	if err != nil {
		return nil, err
	}

	return &models.Session{Token: token, Profile: profile}, nil
}

func (s *sessionService) Update(ctx context.Context, profile models.Profile) error {
	rawProfile, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	return s.repo().Set(ctx, state.KeyProfile, rawProfile)
}

func (s *sessionService) End(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := state.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, state.KeyToken); err != nil {
			return err
		}
		return repo.Delete(ctx, state.KeyProfile)
	})
}

func (s *sessionService) Language(ctx context.Context) (models.Language, error) {
	raw, err := s.repo().Get(ctx, state.KeyLanguage)
	if err != nil {
		return models.LanguageEnglish, err
	}
	lang := models.Language(raw)
	if !lang.IsValid() {
		return models.LanguageEnglish, nil
	}
	return lang, nil
}

func (s *sessionService) SetLanguage(ctx context.Context, lang models.Language) error {
	if !lang.IsValid() {
		return fmt.Errorf("%w: unsupported language %q", common.ErrValidation, lang)
	}
	return s.repo().Set(ctx, state.KeyLanguage, []byte(lang))
}

// loadOrCreateSecret returns the per-install signing secret, generating and
// persisting one on first use.
func (s *sessionService) loadOrCreateSecret(ctx context.Context) ([]byte, error) {
	repo := s.repo()

	secret, err := repo.Get(ctx, state.KeySecret)
	if err != nil {
		return nil, err
	}
	if secret != nil {
		return secret, nil
	}

	secret = common.GenerateRandByteArray(32)
	if err := repo.Set(ctx, state.KeySecret, secret); err != nil {
		return nil, err
	}
	return secret, nil
}
