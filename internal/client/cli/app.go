package cli

import (
	"bufio"
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/glasses-man/exampilot/internal/client/client"
	"github.com/glasses-man/exampilot/internal/client/config"
	"github.com/glasses-man/exampilot/internal/client/i18n"
	"github.com/glasses-man/exampilot/internal/client/models"
	"github.com/glasses-man/exampilot/internal/client/services"
	"github.com/glasses-man/exampilot/internal/logging"

	_ "modernc.org/sqlite"
)

// App is the interactive ExamPilot client. It holds the wired services, the
// active session (nil when logged out), and the active UI language.
type App struct {
	config    *config.Config
	accounts  services.AccountService
	sessions  services.SessionService
	questions services.QuestionService
	history   services.HistoryService
	explainer client.Explainer

	session *models.Session
	lang    models.Language
	reader  *bufio.Reader
}

// offlineExplainer stands in when no API key is configured: every call
// reports the service as unavailable, so answers come from the generic
// template.
type offlineExplainer struct{}

func (offlineExplainer) Explain(context.Context, string, models.Subject, models.Language) (string, error) {
	return "", client.ErrUnavailable
}
func (offlineExplainer) Close() error { return nil }

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	db, err := client.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	var explainer client.Explainer
	explainer, err = client.NewHTTPExplainer(c.APIBaseURL, c.APIKey, c.RequestTimeout)
	if err != nil {
		log.Printf("no explanation service credential (%s unset), answers will use the generic template", config.EnvAPIKey)
		explainer = offlineExplainer{}
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	sessions := services.NewSessionService(db, c.SessionTTL)
	historySvc := services.NewHistoryService(db)

	return &App{
		config:    c,
		accounts:  services.NewAccountService(db),
		sessions:  sessions,
		questions: services.NewQuestionService(explainer, sessions, historySvc, logger),
		history:   historySvc,
		explainer: explainer,
		lang:      models.LanguageEnglish,
		reader:    bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

// msgs returns the message table for the active language.
func (a *App) msgs() i18n.Messages {
	return i18n.For(a.lang)
}

// Run restores any persisted state and blocks in the REPL until exit.
func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.explainer.Close() }()

	if lang, err := a.sessions.Language(ctx); err == nil {
		a.lang = lang
	}

	if sess, err := a.sessions.Restore(ctx); err == nil && sess != nil {
		a.session = sess
		if sess.Profile.PreferredLanguage.IsValid() {
			a.lang = sess.Profile.PreferredLanguage
		}
		printlnFn(a.msgs().Welcome, sess.Profile.Name)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) getStatus() string {
	if a.session == nil {
		return ""
	}
	p := a.session.Profile
	return p.Name
}
