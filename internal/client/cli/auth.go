package cli

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/glasses-man/exampilot/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for email, name, and password and creates a new account.
// On success the new account is logged in immediately. The password byte
// slice is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	profile, err := a.accounts.SignUp(ctx, email, string(password), name, a.lang)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrValidation):
			log.Printf("Registration rejected: %s", err.Error())
		case errors.Is(err, common.ErrDuplicateAccount):
			log.Printf("An account with this email already exists")
		default:
			log.Printf("Registration unsuccessfull: %s", err.Error())
		}
		return err
	}

	session, err := a.sessions.Start(ctx, profile)
	if err != nil {
		return err
	}
	a.session = session

	printlnFn(a.msgs().AccountCreated)
	return nil
}

// Login prompts for credentials and authenticates against the local account
// store. On success a fresh session is persisted and becomes the active one.
// The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	profile, err := a.accounts.Login(ctx, email, string(password))
	if err != nil {
		switch {
		case errors.Is(err, common.ErrAccountNotFound):
			log.Printf("No account found for this email")
		case errors.Is(err, common.ErrInvalidCredentials):
			log.Printf("Wrong password")
		default:
			log.Printf("Login unsuccessfull: %s", err.Error())
		}
		return err
	}

	session, err := a.sessions.Start(ctx, profile)
	if err != nil {
		return err
	}
	a.session = session

	if profile.PreferredLanguage.IsValid() {
		a.lang = profile.PreferredLanguage
	}

	printlnFn(a.msgs().Welcome, profile.Name)
	return nil
}

// Logout clears the persisted session and the in-memory one. Accounts,
// history, and the language preference survive.
func (a *App) Logout(ctx context.Context) error {
	if err := a.sessions.End(ctx); err != nil {
		return err
	}
	a.session = nil
	printlnFn(a.msgs().LoggedOut)
	return nil
}
