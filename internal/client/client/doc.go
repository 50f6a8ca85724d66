// Package client contains client-side building blocks for ExamPilot.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Explainer interface) for the
//     external explanation service.
//  2. A concrete HTTP implementation (see HTTPExplainer) against an
//     OpenAI-style chat-completions endpoint, with bearer authentication
//     and a configurable request timeout.
//  3. The tolerant response parser (ParseExplanation) for the line-oriented
//     STEP n: / FINAL ANSWER: convention.
//  4. Local persistence bootstrap utilities (InitDatabase, RunMigrations)
//     wiring an SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Transport failures and non-success responses surface as ErrUnavailable,
// matched with errors.Is. Callers are expected to substitute the localized
// fallback explanation rather than fail the user's question.
package client
