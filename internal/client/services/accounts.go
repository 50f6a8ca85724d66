// Package services contains the application services of the tutoring client:
// the account store, the session manager, the history log, and the question
// flow with its submission gate.
package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/glasses-man/exampilot/internal/client/models"
	"github.com/glasses-man/exampilot/internal/client/repositories/state"
	"github.com/glasses-man/exampilot/internal/common"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AccountService owns signup/login validation and the persisted accounts
// map. Credential records never leave it; only password-stripped profiles
// do. It deliberately exposes no update or delete: after login, profile
// edits flow through the session manager only.
type AccountService interface {
	SignUp(ctx context.Context, email, password, name string, lang models.Language) (models.Profile, error)
	Login(ctx context.Context, email, password string) (models.Profile, error)
}

type accountService struct {
	db       *sql.DB
	validate *validator.Validate
}

// NewAccountService constructs an AccountService over the local state DB.
func NewAccountService(db *sql.DB) AccountService {
	return &accountService{db: db, validate: validator.New()}
}

func (a *accountService) repo() state.Repository {
	return state.NewSQLiteRepository(a.db)
}

type signupInput struct {
	Email    string `validate:"required"`
	Password string `validate:"required,min=6"`
	Name     string `validate:"required"`
}

func (a *accountService) SignUp(ctx context.Context, email, password, name string, lang models.Language) (models.Profile, error) {
	in := signupInput{Email: email, Password: password, Name: name}
	if err := a.validate.Struct(in); err != nil {
		return models.Profile{}, fmt.Errorf("%w: %v", common.ErrValidation, err)
	}
	if !lang.IsValid() {
		lang = models.LanguageEnglish
	}

	accounts, err := a.loadAccounts(ctx)
	if err != nil {
		return models.Profile{}, err
	}
	if _, exists := accounts[email]; exists {
		return models.Profile{}, common.ErrDuplicateAccount
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.Profile{}, fmt.Errorf("failed to hash password: %w", err)
	}

	profile := models.Profile{
		ID:                uuid.NewString(),
		Email:             email,
		Name:              name,
		Tier:              models.TierFree,
		LastActive:        time.Now(),
		Level:             models.LevelForXP(0),
		Badges:            []string{},
		PreferredLanguage: lang,
	}

	accounts[email] = models.Credential{PasswordHash: string(hash), Profile: profile}
	if err := a.saveAccounts(ctx, accounts); err != nil {
		return models.Profile{}, err
	}

	return profile, nil
}

func (a *accountService) Login(ctx context.Context, email, password string) (models.Profile, error) {
	accounts, err := a.loadAccounts(ctx)
	if err != nil {
		return models.Profile{}, err
	}

	cred, exists := accounts[email]
	if !exists {
		return models.Profile{}, common.ErrAccountNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return models.Profile{}, common.ErrInvalidCredentials
	}

	return cred.Profile.Clone(), nil
}

func (a *accountService) loadAccounts(ctx context.Context) (models.Accounts, error) {
	raw, err := a.repo().Get(ctx, state.KeyAccounts)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	if raw == nil {
		return models.Accounts{}, nil
	}

	var accounts models.Accounts
	if err := json.Unmarshal(raw, &accounts); err != nil {
		return nil, fmt.Errorf("failed to decode accounts: %w", err)
	}
	return accounts, nil
}

func (a *accountService) saveAccounts(ctx context.Context, accounts models.Accounts) error {
	raw, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("failed to encode accounts: %w", err)
	}
	return a.repo().Set(ctx, state.KeyAccounts, raw)
}
