package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for REPL output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	AddVisitor(ctx context.Context, args []string) error
	AddVisitorDetails(ctx context.Context) error
	ListVisitors(ctx context.Context) error
	SetDate(ctx context.Context, args []string) error
}

// runREPL reads commands line by line from reader and dispatches them to a.
// The loop exits on EOF, on a read error, on context cancellation or when
// the user types "exit" or "quit".
//
//	Welcome screen:
//	  - help               show available commands
//	  - login              log in (saved values are offered)
//	  - signup | register  create the account
//	  - exit | quit        leave the program
//
//	Dashboard:
//	  - help               show available commands
//	  - add [name]         add a visitor by name
//	  - visitor            fill in the visitor details form
//	  - list | l           list visitors, newest first
//	  - date [YYYY-MM-DD]  show or change the dashboard date
//	  - logout             log out and return to the login form
//	  - exit | quit        leave the program
//
// Command errors are ignored here; handlers print their own messages.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("meetin %s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}

		if a.isLoggedIn() {
			switch cmd {
			case "help":
				printlnFn("Available commands: add [name], visitor, (l)ist, date [YYYY-MM-DD], logout, exit")
			case "add":
				_ = a.AddVisitor(ctx, args)
			case "visitor":
				_ = a.AddVisitorDetails(ctx)
			case "l", "list":
				_ = a.ListVisitors(ctx)
			case "date":
				_ = a.SetDate(ctx, args)
			case "logout":
				_ = a.Logout(ctx)
			default:
				printlnFn("Unknown command:", cmd)
			}
			continue
		}

		switch cmd {
		case "help":
			printlnFn("Available commands: login, signup, exit")
		case "login":
			_ = a.Login(ctx)
		case "signup", "register":
			_ = a.Signup(ctx)
		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
