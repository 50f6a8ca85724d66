// Package cli provides the interactive ExamPilot command-line client.
//
// It wires configuration, local storage, the explanation client, and an
// interactive REPL. Typical flow: restore any persisted session, then
// execute user commands until exit.
//
// Key features:
//   - Register / Login / Logout against the local account store
//   - Ask questions and print step-by-step explanations
//   - History, stats, badges, and a demo leaderboard
//   - English/Arabic UI with a persisted preference
//   - Premium upgrade lifting the daily question limit
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
