package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/semant/internal/client/models"
)

var (
	ErrEmptyToken  = errors.New("empty token")
	ErrLoginFailed = errors.New("login failed")
)

// getSimpleText and getSecret are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getSecret = GetSecret

// Login records token (prompting for it without echo when empty) and waits
// for the backend to confirm the identity behind it.
//
// The session is treated as authorized while verification is in flight;
// Login only reports success once the state has settled on Authenticated.
func (a *App) Login(ctx context.Context, token string) error {
	if token == "" {
		var err error
		token, err = getSecret(a.reader, "Enter token", a.out)
		if err != nil {
			return err
		}
	}
	if token == "" {
		return ErrEmptyToken
	}

	if err := wait(ctx, a.session.RecordAuthToken(ctx, token)); err != nil {
		return err
	}

	snap := a.session.Snapshot()
	if snap.State != models.Authenticated || snap.User == nil {
		fmt.Fprintln(a.out, "Login unsuccessful")
		return ErrLoginFailed
	}

	a.log.Info(ctx, "login successful", "user_id", snap.User.ID)
	fmt.Fprintf(a.out, "Logged in as %s\n", snap.User.Username)
	return nil
}

// Logout signs out and wipes the locally stored session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.SignOut(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// WhoAmI prints the current identity, or the last known one when signed out.
func (a *App) WhoAmI(ctx context.Context) error {
	snap := a.session.Snapshot()
	if u := snap.User; u != nil {
		role := ""
		if a.session.IsAdmin() {
			role = " [admin]"
		}
		fmt.Fprintf(a.out, "%s (%s) %s%s\n", u.Username, u.ID, snap.State, role)
		return nil
	}

	last, err := a.session.LastKnownUser(ctx)
	if err != nil {
		return err
	}
	if last != nil {
		fmt.Fprintf(a.out, "Not logged in (last user: %s)\n", last.Username)
		return nil
	}
	fmt.Fprintf(a.out, "Not logged in (%s)\n", snap.State)
	return nil
}
