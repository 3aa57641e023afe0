// Package cli provides the interactive MeetIn terminal client.
//
// The welcome screen offers sign-up and login. Login pre-fills the form from
// the remember-me entries, and a successful login opens the dashboard, where
// the visitor roster is kept for as long as the user stays logged in.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits or
// input ends. See App and runREPL for details.
package cli
