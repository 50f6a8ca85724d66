package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/glasses-man/exampilot/internal/client/models"
	"github.com/glasses-man/exampilot/internal/client/services"
	"github.com/glasses-man/exampilot/internal/common"
)

func stubInputs(t *testing.T, lines []string, password []byte) func() {
	t.Helper()
	origST, origGP, origML, origPrint := getSimpleText, getPassword, getMultiline, printlnFn
	i := 0
	next := func() string {
		if i >= len(lines) {
			return ""
		}
		s := lines[i]
		i++
		return s
	}
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return next(), nil }
	getMultiline = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return next(), nil }
	getPassword = func(_ io.Writer) ([]byte, error) { return append([]byte(nil), password...), nil }
	printlnFn = func(...any) (int, error) { return 0, nil }
	return func() {
		getSimpleText = origST
		getPassword = origGP
		getMultiline = origML
		printlnFn = origPrint
	}
}

// ---- fake services ----

type fakeAccounts struct {
	signUpProfile models.Profile
	signUpErr     error
	lastSignUp    []string

	loginProfile models.Profile
	loginErr     error
	lastLogin    []string
}

func (f *fakeAccounts) SignUp(_ context.Context, email, password, name string, lang models.Language) (models.Profile, error) {
	f.lastSignUp = []string{email, password, name, string(lang)}
	return f.signUpProfile, f.signUpErr
}

func (f *fakeAccounts) Login(_ context.Context, email, password string) (models.Profile, error) {
	f.lastLogin = []string{email, password}
	return f.loginProfile, f.loginErr
}

type fakeSessions struct {
	restoreRet *models.Session
	restoreErr error

	startErr    error
	lastStarted *models.Profile

	updateErr   error
	lastUpdated *models.Profile

	endCalled bool
	endErr    error

	lang    models.Language
	langErr error
}

func (f *fakeSessions) Restore(context.Context) (*models.Session, error) {
	return f.restoreRet, f.restoreErr
}
func (f *fakeSessions) Start(_ context.Context, p models.Profile) (*models.Session, error) {
	f.lastStarted = &p
	if f.startErr != nil {
		return nil, f.startErr
	}
	return &models.Session{Token: "tok", Profile: p}, nil
}
func (f *fakeSessions) Update(_ context.Context, p models.Profile) error {
	f.lastUpdated = &p
	return f.updateErr
}
func (f *fakeSessions) End(context.Context) error {
	f.endCalled = true
	return f.endErr
}
func (f *fakeSessions) Language(context.Context) (models.Language, error) {
	if f.lang == "" {
		return models.LanguageEnglish, f.langErr
	}
	return f.lang, f.langErr
}
func (f *fakeSessions) SetLanguage(_ context.Context, lang models.Language) error {
	f.lang = lang
	return f.langErr
}

var (
	_ services.AccountService = (*fakeAccounts)(nil)
	_ services.SessionService = (*fakeSessions)(nil)
)

// ---- tests ----

func TestRegister_Success(t *testing.T) {
	acc := &fakeAccounts{signUpProfile: models.Profile{ID: "p-1", Name: "Amina"}}
	sess := &fakeSessions{}
	a := &App{accounts: acc, sessions: sess, lang: models.LanguageEnglish}

	restore := stubInputs(t, []string{"a@b.c", "Amina"}, []byte("secret1"))
	defer restore()

	if err := a.Register(context.Background()); err != nil {
		t.Fatalf("Register err: %v", err)
	}
	want := []string{"a@b.c", "secret1", "Amina", "en"}
	for i, w := range want {
		if acc.lastSignUp[i] != w {
			t.Fatalf("SignUp arg %d: got %q, want %q", i, acc.lastSignUp[i], w)
		}
	}
	if !a.isLoggedIn() {
		t.Fatalf("registration must log the account in")
	}
}

func TestRegister_ValidationErrorPropagates(t *testing.T) {
	acc := &fakeAccounts{signUpErr: common.ErrValidation}
	a := &App{accounts: acc, sessions: &fakeSessions{}, lang: models.LanguageEnglish}

	restore := stubInputs(t, []string{"a@b.c", "Amina"}, []byte("12345"))
	defer restore()

	if err := a.Register(context.Background()); !errors.Is(err, common.ErrValidation) {
		t.Fatalf("want ErrValidation, got %v", err)
	}
	if a.isLoggedIn() {
		t.Fatalf("failed registration must not create a session")
	}
}

func TestLogin_Success(t *testing.T) {
	acc := &fakeAccounts{loginProfile: models.Profile{ID: "p-1", Name: "Amina", PreferredLanguage: models.LanguageArabic}}
	sess := &fakeSessions{}
	a := &App{accounts: acc, sessions: sess, lang: models.LanguageEnglish}

	restore := stubInputs(t, []string{"a@b.c"}, []byte("secret1"))
	defer restore()

	if err := a.Login(context.Background()); err != nil {
		t.Fatalf("Login err: %v", err)
	}
	if !a.isLoggedIn() {
		t.Fatalf("login must create a session")
	}
	if sess.lastStarted == nil || sess.lastStarted.ID != "p-1" {
		t.Fatalf("session not started for the profile")
	}
	if a.lang != models.LanguageArabic {
		t.Fatalf("login must adopt the profile language, got %q", a.lang)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	acc := &fakeAccounts{loginErr: common.ErrInvalidCredentials}
	a := &App{accounts: acc, sessions: &fakeSessions{}, lang: models.LanguageEnglish}

	restore := stubInputs(t, []string{"a@b.c"}, []byte("wrong-1"))
	defer restore()

	if err := a.Login(context.Background()); !errors.Is(err, common.ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials, got %v", err)
	}
	if a.isLoggedIn() {
		t.Fatalf("failed login must not create a session")
	}
}

func TestLogout(t *testing.T) {
	sess := &fakeSessions{}
	a := &App{
		sessions: sess,
		session:  &models.Session{Token: "tok", Profile: models.Profile{ID: "p-1"}},
		lang:     models.LanguageEnglish,
	}

	restore := stubInputs(t, nil, nil)
	defer restore()

	if err := a.Logout(context.Background()); err != nil {
		t.Fatalf("Logout err: %v", err)
	}
	if !sess.endCalled {
		t.Fatalf("End not called")
	}
	if a.isLoggedIn() {
		t.Fatalf("session not cleared")
	}
}

func TestLogout_ErrorPropagates(t *testing.T) {
	sess := &fakeSessions{endErr: errors.New("clean-fail")}
	a := &App{sessions: sess, session: &models.Session{}, lang: models.LanguageEnglish}

	restore := stubInputs(t, nil, nil)
	defer restore()

	if err := a.Logout(context.Background()); err == nil {
		t.Fatalf("want error from End")
	}
}
