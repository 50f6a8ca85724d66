package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Ask(ctx context.Context) error { f.calls = append(f.calls, "ask"); return nil }
func (f *fakeExec) History(ctx context.Context) error {
	f.calls = append(f.calls, "history")
	return nil
}
func (f *fakeExec) Stats(ctx context.Context) error { f.calls = append(f.calls, "stats"); return nil }
func (f *fakeExec) Badges(ctx context.Context) error {
	f.calls = append(f.calls, "badges")
	return nil
}
func (f *fakeExec) Leaderboard(ctx context.Context) error {
	f.calls = append(f.calls, "board")
	return nil
}
func (f *fakeExec) Language(ctx context.Context) error {
	f.calls = append(f.calls, "lang")
	return nil
}
func (f *fakeExec) Upgrade(ctx context.Context) error {
	f.calls = append(f.calls, "upgrade")
	return nil
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"ask",
		"history",
		"stats",
		"badges",
		"board",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "ask", "history", "stats", "badges", "board"}
	if len(exec.calls) < len(wantOrder) {
		t.Fatalf("few calls: %+v", exec.calls)
	}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}

}

func TestRunREPL_AliasesAndQuit(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("h\nleaderboard\nquit\nask\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	// "ask" comes after quit and must never run.
	want := []string{"history", "board"}
	if len(exec.calls) != len(want) {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
	for i, c := range want {
		if exec.calls[i] != c {
			t.Fatalf("call %d: got %q, want %q", i, exec.calls[i], c)
		}
	}
}

func TestRunREPL_BlankLinesIgnored(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("\n   \nexit\n")
	exec := &fakeExec{}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
