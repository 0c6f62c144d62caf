package cli

import (
	"bufio"
	"context"
	"errors"
	"io"

	"github.com/dmitrijs2005/semant/internal/client/client"
	"github.com/dmitrijs2005/semant/internal/client/contrast"
	"github.com/dmitrijs2005/semant/internal/client/metrics"
	"github.com/dmitrijs2005/semant/internal/client/models"
	"github.com/dmitrijs2005/semant/internal/client/stores"
	"github.com/dmitrijs2005/semant/internal/logging"
)

// SessionStore is the part of stores.Session the CLI drives.
type SessionStore interface {
	Snapshot() stores.SessionSnapshot
	IsAdmin() bool
	RecordAuthToken(ctx context.Context, token string) <-chan struct{}
	RestoreSession(ctx context.Context) (<-chan struct{}, error)
	SignOut(ctx context.Context) error
	SetUser(userID string)
	GetAllUsers(ctx context.Context) (map[string]models.User, error)
	LastKnownUser(ctx context.Context) (*models.User, error)
}

// CollectionStore is the part of stores.Collections the CLI drives.
type CollectionStore interface {
	UserID() string
	Collections() []models.Collection
	FetchCollections(ctx context.Context, userID string) error
	CreateCollection(ctx context.Context, name string) (*models.CreateResponse, error)
}

// StatsSource reports per-endpoint request counts.
type StatsSource interface {
	Summary() ([]metrics.RequestCount, error)
}

type App struct {
	session     SessionStore
	collections CollectionStore
	classifier  *contrast.Classifier
	stats       StatsSource
	log         logging.Logger

	reader *bufio.Reader
	out    io.Writer
}

func NewApp(
	session SessionStore,
	collections CollectionStore,
	classifier *contrast.Classifier,
	stats StatsSource,
	log logging.Logger,
	in io.Reader,
	out io.Writer,
) *App {
	return &App{
		session:     session,
		collections: collections,
		classifier:  classifier,
		stats:       stats,
		log:         log.With("component", "cli"),
		reader:      bufio.NewReader(in),
		out:         out,
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.Snapshot().State.Authorized()
}

// status renders the REPL prompt suffix, e.g. "(alice authenticated)".
func (a *App) status() string {
	snap := a.session.Snapshot()
	s := snap.State.String()
	if snap.User != nil {
		name := snap.User.Username
		if name == "" {
			name = snap.User.ID
		}
		s = name + " " + s
	}
	return "(" + s + ")"
}

// Restore resumes the persisted session, if any, and waits for its
// verification to finish. A missing or expired token is not an error.
func (a *App) Restore(ctx context.Context) error {
	done, err := a.session.RestoreSession(ctx)
	if err != nil {
		if errors.Is(err, client.ErrLocalDataNotAvailable) || errors.Is(err, stores.ErrTokenExpired) {
			a.log.Debug(ctx, "no session restored", "reason", err.Error())
			return nil
		}
		return err
	}
	return wait(ctx, done)
}

func wait(ctx context.Context, done <-chan struct{}) error {
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
