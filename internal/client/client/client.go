package client

import (
	"context"

	"github.com/glasses-man/exampilot/internal/client/models"
)

// Explainer is the transport-agnostic contract for the external explanation
// service: given a question, a subject, and the active locale, it returns
// the raw explanation text. Implementations map transport failures to
// ErrUnavailable so callers can fall back to the generic template.
type Explainer interface {
	Explain(ctx context.Context, question string, subject models.Subject, lang models.Language) (string, error)
	Close() error
}
