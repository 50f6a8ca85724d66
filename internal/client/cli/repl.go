package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Ask(ctx context.Context) error
	History(ctx context.Context) error
	Stats(ctx context.Context) error
	Badges(ctx context.Context) error
	Leaderboard(ctx context.Context) error
	Language(ctx context.Context) error
	Upgrade(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the ExamPilot CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - lang           — switch language (en/ar)
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - ask            — submit a question for a step-by-step explanation
//	  - history        — show answered questions, newest first
//	  - stats          — show level, xp, quota, and streak
//	  - badges         — show the badge collection
//	  - board          — show the leaderboard
//	  - lang           — switch language (en/ar)
//	  - upgrade        — upgrade the account to premium
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("exampilot %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: ask, history, stats, badges, board, lang, upgrade, logout, exit")
			} else {
				printlnFn("Available commands: register, login, lang, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "ask":
			_ = a.Ask(ctx)

		case "h", "history":
			_ = a.History(ctx)

		case "stats":
			_ = a.Stats(ctx)

		case "badges":
			_ = a.Badges(ctx)

		case "board", "leaderboard":
			_ = a.Leaderboard(ctx)

		case "lang":
			_ = a.Language(ctx)

		case "upgrade":
			_ = a.Upgrade(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
