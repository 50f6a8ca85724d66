package cli

import (
	"context"
	"fmt"
	"log"
)

// History prints the question log, newest first.
func (a *App) History(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Please login first")
		return nil
	}

	msgs := a.msgs()

	records, err := a.history.All(ctx)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	if len(records) == 0 {
		printlnFn(msgs.NoQuestionsYet)
		return nil
	}

	for _, r := range records {
		printlnFn(fmt.Sprintf("[%s] %s", r.CreatedAt.Format("2006-01-02 15:04"), msgs.Subject(r.Subject)))
		printlnFn(msgs.Question, r.Question)
		for i, step := range r.Steps {
			printlnFn(fmt.Sprintf("  %d. %s", i+1, step))
		}
		if r.FinalAnswer != "" {
			printlnFn(r.FinalAnswer)
		}
	}

	return nil
}
