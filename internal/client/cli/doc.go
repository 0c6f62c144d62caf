// Package cli provides the semant command-line client.
//
// It exposes the session and collection stores as cobra subcommands
// (login, logout, whoami, users, collections, create-collection, color,
// stats) and as an interactive REPL. Before any command runs, the session
// persisted by a previous invocation is restored and verified.
//
// The REPL is started via the "repl" subcommand and blocks until the user
// exits. See App, Command and runREPL for details.
package cli
