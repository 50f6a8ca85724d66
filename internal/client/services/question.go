package services

import (
	"context"
	"errors"
	"time"

	"github.com/glasses-man/exampilot/internal/client/client"
	"github.com/glasses-man/exampilot/internal/client/i18n"
	"github.com/glasses-man/exampilot/internal/client/models"
	"github.com/glasses-man/exampilot/internal/client/progress"
	"github.com/glasses-man/exampilot/internal/common"
	"github.com/glasses-man/exampilot/internal/logging"
	"github.com/google/uuid"
)

// CanSubmit is the daily quota gate: premium accounts are unlimited, free
// accounts get models.FreeDailyLimit questions per day.
func CanSubmit(p models.Profile) bool {
	if p.Tier == models.TierPremium {
		return true
	}
	return p.DailyQuestions < models.FreeDailyLimit
}

// AskResult is everything one answered question produces: the history
// record, the rolled-forward profile, and any badges awarded on the way.
// Fallback marks explanations produced by the generic template because the
// explanation service was unreachable; they score exactly like real ones.
type AskResult struct {
	Record   models.QuestionRecord
	Profile  models.Profile
	Awarded  []progress.Badge
	Fallback bool
}

// QuestionService runs the full question flow: gate, explanation call,
// parse, scoring, and persistence of both the history record and the
// updated profile snapshot.
type QuestionService interface {
	Ask(ctx context.Context, profile models.Profile, question string, subject models.Subject) (*AskResult, error)
}

type questionService struct {
	explainer client.Explainer
	sessions  SessionService
	history   HistoryService
	logger    logging.Logger

	// pending rejects overlapping submissions. The client is single
	// threaded and event driven, so a plain bool is enough.
	pending bool
}

// NewQuestionService constructs the question flow over the given explainer
// and the session/history services that persist its outcome.
func NewQuestionService(explainer client.Explainer, sessions SessionService, history HistoryService, logger logging.Logger) QuestionService {
	return &questionService{explainer: explainer, sessions: sessions, history: history, logger: logger}
}

func (q *questionService) Ask(ctx context.Context, profile models.Profile, question string, subject models.Subject) (*AskResult, error) {
	if q.pending {
		return nil, common.ErrRequestPending
	}
	if question == "" {
		return nil, common.ErrEmptyQuestion
	}
	if !CanSubmit(profile) {
		return nil, common.ErrQuotaExceeded
	}

	q.pending = true
	defer func() { q.pending = false }()

	lang := profile.PreferredLanguage
	if !lang.IsValid() {
		lang = models.LanguageEnglish
	}

	var explanation models.Explanation
	fallback := false

	raw, err := q.explainer.Explain(ctx, question, subject, lang)
	switch {
	case err == nil:
		explanation = client.ParseExplanation(raw)
	case errors.Is(err, client.ErrUnavailable):
		// A generic template instead of a hard failure; it still counts
		// toward quota and scoring.
		q.logger.Warn(ctx, "explanation service unavailable, using template", "subject", subject)
		msgs := i18n.For(lang)
		explanation = models.Explanation{
			Steps:       append([]string{}, msgs.FallbackSteps...),
			FinalAnswer: msgs.FallbackAnswer,
		}
		fallback = true
	default:
		return nil, err
	}

	record := models.QuestionRecord{
		ID:          uuid.NewString(),
		Question:    question,
		Steps:       explanation.Steps,
		FinalAnswer: explanation.FinalAnswer,
		Subject:     subject,
		CreatedAt:   time.Now(),
	}

	updated, awarded := progress.Apply(profile, subject)
	updated.LastActive = record.CreatedAt

	if err := q.history.Append(ctx, record); err != nil {
		return nil, err
	}
	if err := q.sessions.Update(ctx, updated); err != nil {
		return nil, err
	}

	q.logger.Info(ctx, "question answered",
		"subject", subject, "fallback", fallback, "xp", updated.XP, "badges", len(awarded))

	return &AskResult{Record: record, Profile: updated, Awarded: awarded, Fallback: fallback}, nil
}
