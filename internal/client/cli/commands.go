package cli

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/semant/internal/client/models"
	"github.com/dmitrijs2005/semant/internal/client/stores"
)

// Users prints every user known to the backend, sorted by username.
func (a *App) Users(ctx context.Context) error {
	byID, err := a.session.GetAllUsers(ctx)
	if err != nil {
		return err
	}

	users := make([]models.User, 0, len(byID))
	for _, u := range byID {
		users = append(users, u)
	}
	slices.SortFunc(users, func(x, y models.User) int {
		if c := strings.Compare(x.Username, y.Username); c != 0 {
			return c
		}
		return strings.Compare(x.ID, y.ID)
	})

	for _, u := range users {
		fmt.Fprintf(a.out, "%s\t%s\t%s\t%s\n", u.ID, u.Username, u.FullName, u.UserType)
	}
	return nil
}

// ListCollections refreshes and prints the collection cache. A non-empty
// userID first selects that user as the current one.
func (a *App) ListCollections(ctx context.Context, userID string) error {
	if userID != "" {
		a.session.SetUser(userID)
	}

	owner := a.collections.UserID()
	if owner == "" {
		return stores.ErrNoUser
	}
	if err := a.collections.FetchCollections(ctx, owner); err != nil {
		return err
	}

	cols := a.collections.Collections()
	if len(cols) == 0 {
		fmt.Fprintln(a.out, "No collections")
		return nil
	}
	for _, c := range cols {
		fmt.Fprintf(a.out, "%s\t%s\n", c.ID, c.Name)
	}
	return nil
}

// CreateCollection creates a collection for the current user, prompting for
// the name when none is given.
func (a *App) CreateCollection(ctx context.Context, name string) error {
	if name == "" {
		var err error
		name, err = getSimpleText(a.reader, "Enter collection name", a.out)
		if err != nil {
			return err
		}
	}
	if name == "" {
		return fmt.Errorf("collection name is required")
	}

	if _, err := a.collections.CreateCollection(ctx, name); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Created collection %s\n", name)
	return nil
}

// Color prints the legible text color for each background.
func (a *App) Color(ctx context.Context, colors []string) error {
	for _, c := range colors {
		label := a.classifier.Classify(ctx, c)
		fmt.Fprintf(a.out, "%s\t%s\t%s\n", c, label, label.Hex())
	}
	return nil
}

// Stats prints how many API requests this process made, per endpoint and status.
func (a *App) Stats(_ context.Context) error {
	rows, err := a.stats.Summary()
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Fprintln(a.out, "No requests")
		return nil
	}
	for _, r := range rows {
		fmt.Fprintf(a.out, "%s\t%s\t%s\t%d\n", r.Method, r.Path, r.Status, int(r.Count))
	}
	return nil
}
