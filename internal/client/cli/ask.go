package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/glasses-man/exampilot/internal/client/models"
	"github.com/glasses-man/exampilot/internal/common"
)

// getMultiline is an indirection over GetMultiline, swappable in tests.
var getMultiline = GetMultiline

// Ask prompts for a subject and a question, submits it through the question
// flow, and prints the step-by-step explanation. On success the active
// session profile is rolled forward and any newly earned badges are
// announced.
func (a *App) Ask(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Please login first")
		return nil
	}

	msgs := a.msgs()

	raw, err := getSimpleText(a.reader, "Subject (math/physics/chemistry)", os.Stdout)
	if err != nil {
		return err
	}
	subject := models.Subject(raw)
	if !subject.IsValid() {
		subject = models.SubjectMath
	}

	question, err := getMultiline(a.reader, msgs.AskQuestion, os.Stdout)
	if err != nil {
		return err
	}
	// "!image" marks a photographed question; there is no OCR, so the text
	// becomes the localized placeholder.
	if question == "!image" {
		question = msgs.ImageQuestion
	}

	printlnFn(msgs.Thinking)

	res, err := a.questions.Ask(ctx, a.session.Profile, question, subject)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrEmptyQuestion):
			printlnFn(msgs.EmptyQuestion)
		case errors.Is(err, common.ErrQuotaExceeded):
			printlnFn(msgs.UpgradeDesc)
		case errors.Is(err, common.ErrRequestPending):
			printlnFn(msgs.Thinking)
		default:
			log.Printf("%s: %s", msgs.SomethingWrong, err.Error())
		}
		return err
	}

	a.session.Profile = res.Profile

	printlnFn(msgs.ExplanationDone)
	printlnFn(msgs.Question, res.Record.Question)
	printlnFn(msgs.StepByStep)
	for i, step := range res.Record.Steps {
		printlnFn(fmt.Sprintf("  %d. %s", i+1, step))
	}
	if res.Record.FinalAnswer != "" {
		printlnFn(res.Record.FinalAnswer)
	}

	for _, b := range res.Awarded {
		printlnFn(msgs.NewBadge, b.Icon, b.Name)
	}

	left := res.Profile.QuestionsLeft()
	if res.Profile.Tier != models.TierPremium {
		printlnFn(fmt.Sprintf("%s: %d %s", msgs.DailyQuestions, left, msgs.QuestionsLeft))
	}

	return nil
}
