package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context, token string) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Users(ctx context.Context) error
	ListCollections(ctx context.Context, userID string) error
	CreateCollection(ctx context.Context, name string) error
	Color(ctx context.Context, colors []string) error
	Stats(ctx context.Context) error
}

// runREPL starts a read-eval-print loop over the CLI commands.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. The loop exits on scanner EOF
// or when the user types "exit" or "quit".
//
//	Not logged in:
//	  help, login [token], whoami, color <#RRGGBB>..., stats, exit | quit
//
//	Logged in, additionally:
//	  logout, users, (c)ollections [user-id], create <name>
//
// Prompts, messages and command errors go to w; errors do not end the loop.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner, w io.Writer) {
	say := func(args ...any) { fmt.Fprintln(w, args...) }
	for {
		fmt.Fprintf(w, "semant %s > ", statusFn())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				say("Available commands: whoami, users, (c)ollections [user-id], create <name>, color <#RRGGBB>..., stats, logout, exit")
			} else {
				say("Available commands: login [token], whoami, color <#RRGGBB>..., stats, exit")
			}

		case "login":
			err = a.Login(ctx, firstArg(args))

		case "logout":
			err = a.Logout(ctx)

		case "whoami":
			err = a.WhoAmI(ctx)

		case "users":
			err = a.Users(ctx)

		case "c", "collections":
			err = a.ListCollections(ctx, firstArg(args))

		case "create":
			if len(args) == 0 {
				say("Usage: create <name>")
				continue
			}
			err = a.CreateCollection(ctx, strings.Join(args, " "))

		case "color":
			if len(args) == 0 {
				say("Usage: color <#RRGGBB>...")
				continue
			}
			err = a.Color(ctx, args)

		case "stats":
			err = a.Stats(ctx)

		case "exit", "quit":
			say("Bye!")
			return

		default:
			say("Unknown command:", cmd)
		}

		if err != nil {
			say("Error:", err)
		}
	}
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
