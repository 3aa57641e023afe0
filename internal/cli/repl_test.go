package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  [][]string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Signup(ctx context.Context) error {
	f.calls = append(f.calls, "signup")
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
func (f *fakeExec) AddVisitor(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "add")
	f.args = append(f.args, args)
	return nil
}
func (f *fakeExec) AddVisitorDetails(ctx context.Context) error {
	f.calls = append(f.calls, "visitor")
	return nil
}
func (f *fakeExec) ListVisitors(ctx context.Context) error {
	f.calls = append(f.calls, "list")
	return nil
}
func (f *fakeExec) SetDate(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "date")
	f.args = append(f.args, args)
	return nil
}

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	out := captureOutput(t)

	input := strings.Join([]string{
		"help",
		"add Too Early",
		"signup",
		"login",
		"help",
		"add Mary Ann",
		"visitor",
		"",
		"l",
		"date 2026-01-02",
		"logout",
		"exit",
		"list",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewReader(strings.NewReader(input)))

	assert.Equal(t, []string{"signup", "login", "add", "visitor", "list", "date", "logout"}, exec.calls)
	assert.Equal(t, [][]string{{"Mary", "Ann"}, {"2026-01-02"}}, exec.args)

	assert.Contains(t, *out, "Available commands: login, signup, exit")
	assert.Contains(t, *out, "Available commands: add [name], visitor, (l)ist, date [YYYY-MM-DD], logout, exit")
	assert.Contains(t, *out, "Unknown command: add")
	assert.Contains(t, *out, "meetin status> ")
	assert.Equal(t, "Bye!", (*out)[len(*out)-1])
}

func TestRunREPL_StopsOnEOF(t *testing.T) {
	captureOutput(t)
	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("login")))
	assert.Equal(t, []string{"login"}, exec.calls)
}

func TestRunREPL_StopsOnCancelledContext(t *testing.T) {
	captureOutput(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &fakeExec{}
	runREPL(ctx, exec, func() string { return "" }, bufio.NewReader(strings.NewReader("login\n")))
	assert.Empty(t, exec.calls)
}
