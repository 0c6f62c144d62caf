package stores

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dmitrijs2005/semant/internal/client/client"
	"github.com/dmitrijs2005/semant/internal/client/models"
	"github.com/dmitrijs2005/semant/internal/client/notify"
	"github.com/dmitrijs2005/semant/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/semant/internal/logging"
)

var ErrTokenExpired = errors.New("stored token expired")

// Session holds the authentication state and the current user.
type Session struct {
	api         client.Client
	collections *Collections
	local       metadata.Repository
	reporter    notify.ErrorReporter
	notifier    notify.Notifier
	log         logging.Logger
	now         func() time.Time

	mu    sync.RWMutex
	state models.AuthState
	user  *models.User
}

func NewSession(
	api client.Client,
	collections *Collections,
	local metadata.Repository,
	reporter notify.ErrorReporter,
	notifier notify.Notifier,
	log logging.Logger,
) *Session {
	return &Session{
		api:         api,
		collections: collections,
		local:       local,
		reporter:    reporter,
		notifier:    notifier,
		log:         log.With("component", "session"),
		now:         time.Now,
	}
}

// SessionSnapshot is a consistent view of the session and the collection
// cache owner.
type SessionSnapshot struct {
	State             models.AuthState
	User              *models.User
	CollectionsUserID string
}

func (s *Session) State() models.AuthState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Authorized is true while verification is pending and once it succeeded.
func (s *Session) Authorized() bool {
	return s.State().Authorized()
}

// User returns a copy of the current user, or nil.
func (s *Session) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyUser(s.user)
}

func (s *Session) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user.IsAdmin()
}

func (s *Session) Snapshot() SessionSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return SessionSnapshot{
		State:             s.state,
		User:              copyUser(s.user),
		CollectionsUserID: s.collections.UserID(),
	}
}

// RecordAuthToken stores token, marks the session optimistically authorized
// and starts VerifyAuthentication in the background. The returned channel is
// closed when that verification has finished.
func (s *Session) RecordAuthToken(ctx context.Context, token string) <-chan struct{} {
	s.api.SetToken(token)
	if err := s.local.Set(ctx, metadata.KeyAuthToken, []byte(token)); err != nil {
		s.reporter.ReportError(ctx, notify.SeverityWarning, "Failed to persist auth token.", err)
	}

	s.mu.Lock()
	s.state = models.PendingVerification
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = s.VerifyAuthentication(ctx)
	}()
	return done
}

// VerifyAuthentication asks the backend who we are.
//
//   - identity returned: Authenticated with that user, id pushed to Collections;
//   - empty identity or 401: Unauthenticated and the stored token dropped, not an error;
//   - anything else: reported, Unauthenticated, error returned.
func (s *Session) VerifyAuthentication(ctx context.Context) error {
	user, err := s.api.Me(ctx)
	switch {
	case err == nil && user != nil:
		s.mu.Lock()
		s.state = models.Authenticated
		s.user = user
		s.collections.SetUser(user.ID)
		s.mu.Unlock()

		s.log.Info(ctx, "authenticated", "user_id", user.ID, "username", user.Username)
		if err := s.local.SetMany(ctx, map[string][]byte{
			metadata.KeyUserID:   []byte(user.ID),
			metadata.KeyUsername: []byte(user.Username),
		}); err != nil {
			s.reporter.ReportError(ctx, notify.SeverityWarning, "Failed to persist identity.", err)
		}
		return nil

	case err == nil, errors.Is(err, client.ErrUnauthorized):
		s.setUnauthenticated()
		s.log.Info(ctx, "not authenticated")
		// drop the rejected token so RestoreSession does not replay it
		if err := s.local.Delete(ctx, metadata.KeyAuthToken); err != nil {
			s.reporter.ReportError(ctx, notify.SeverityWarning, "Failed to drop rejected auth token.", err)
		}
		return nil

	default:
		s.reporter.ReportError(ctx, notify.SeverityError, "Failed authentication test.", err)
		s.setUnauthenticated()
		return err
	}
}

// SignOut drops the user and wipes every locally persisted session
// artifact. Signing out twice leaves the same state as once.
func (s *Session) SignOut(ctx context.Context) error {
	s.setUnauthenticated()
	s.api.SetToken("")

	if err := s.local.Clear(ctx); err != nil {
		s.reporter.ReportError(ctx, notify.SeverityError, "Failed to clear local session data.", err)
		return err
	}
	return nil
}

// SetUser installs a placeholder identity carrying only userID and pushes
// the id into Collections before returning.
func (s *Session) SetUser(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = models.PlaceholderUser(userID)
	s.collections.SetUser(userID)
}

// GetAllUsers fetches every known user keyed by id. On failure the error
// is reported and a nil map is returned with it.
func (s *Session) GetAllUsers(ctx context.Context) (map[string]models.User, error) {
	dismiss := s.notifier.Notify(ctx, notify.KindAction, "Fetching all users.")
	defer dismiss()

	users, err := s.api.ListUsers(ctx)
	if err != nil {
		s.reporter.ReportError(ctx, notify.SeverityError, "Failed to fetch all users.", err)
		return nil, err
	}
	return models.UsersByID(users), nil
}

// RestoreSession resumes a session from the token persisted by a previous
// run. It returns client.ErrLocalDataNotAvailable when nothing is stored and
// ErrTokenExpired (after wiping local data) when the token's exp has passed.
func (s *Session) RestoreSession(ctx context.Context) (<-chan struct{}, error) {
	token, err := s.local.Get(ctx, metadata.KeyAuthToken)
	if err != nil {
		return nil, err
	}
	if len(token) == 0 {
		return nil, client.ErrLocalDataNotAvailable
	}

	if tokenExpired(string(token), s.now()) {
		s.log.Warn(ctx, "stored token expired, clearing local session data")
		if err := s.local.Clear(ctx); err != nil {
			return nil, err
		}
		return nil, ErrTokenExpired
	}

	return s.RecordAuthToken(ctx, string(token)), nil
}

// LastKnownUser returns the identity persisted by the last successful
// verification, or nil.
func (s *Session) LastKnownUser(ctx context.Context) (*models.User, error) {
	id, err := s.local.Get(ctx, metadata.KeyUserID)
	if err != nil || len(id) == 0 {
		return nil, err
	}
	name, err := s.local.Get(ctx, metadata.KeyUsername)
	if err != nil {
		return nil, err
	}
	return &models.User{ID: string(id), Username: string(name)}, nil
}

func (s *Session) setUnauthenticated() {
	s.mu.Lock()
	s.state = models.Unauthenticated
	s.user = nil
	s.mu.Unlock()
}

func copyUser(u *models.User) *models.User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}
