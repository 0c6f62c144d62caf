package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/semant/internal/client/client"
	"github.com/dmitrijs2005/semant/internal/client/contrast"
	"github.com/dmitrijs2005/semant/internal/client/metrics"
	"github.com/dmitrijs2005/semant/internal/client/models"
	"github.com/dmitrijs2005/semant/internal/client/stores"
	"github.com/dmitrijs2005/semant/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ------------ fakes ------------

type fakeSession struct {
	snap     stores.SessionSnapshot
	admin    bool
	last     *models.User
	users    map[string]models.User
	usersErr error

	// what RecordAuthToken settles on
	verifyTo stores.SessionSnapshot

	restoreErr error
	signOutErr error

	recorded   []string
	restored   int
	signedOut  int
	selectedID string
}

func closed() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}

func (f *fakeSession) Snapshot() stores.SessionSnapshot { return f.snap }
func (f *fakeSession) IsAdmin() bool                    { return f.admin }
func (f *fakeSession) RecordAuthToken(_ context.Context, token string) <-chan struct{} {
	f.recorded = append(f.recorded, token)
	f.snap = f.verifyTo
	return closed()
}
func (f *fakeSession) RestoreSession(context.Context) (<-chan struct{}, error) {
	f.restored++
	if f.restoreErr != nil {
		return nil, f.restoreErr
	}
	return closed(), nil
}
func (f *fakeSession) SignOut(context.Context) error {
	f.signedOut++
	f.snap = stores.SessionSnapshot{}
	return f.signOutErr
}
func (f *fakeSession) SetUser(userID string) { f.selectedID = userID }
func (f *fakeSession) GetAllUsers(context.Context) (map[string]models.User, error) {
	return f.users, f.usersErr
}
func (f *fakeSession) LastKnownUser(context.Context) (*models.User, error) { return f.last, nil }

type fakeCollections struct {
	userID   string
	cols     []models.Collection
	fetchErr error
	createFn func(name string) (*models.CreateResponse, error)

	fetched []string
	created []string
}

func (f *fakeCollections) UserID() string                   { return f.userID }
func (f *fakeCollections) Collections() []models.Collection { return f.cols }
func (f *fakeCollections) FetchCollections(_ context.Context, userID string) error {
	f.fetched = append(f.fetched, userID)
	return f.fetchErr
}
func (f *fakeCollections) CreateCollection(_ context.Context, name string) (*models.CreateResponse, error) {
	f.created = append(f.created, name)
	if f.createFn != nil {
		return f.createFn(name)
	}
	return &models.CreateResponse{Created: true}, nil
}

type fakeStats struct {
	rows []metrics.RequestCount
	err  error
}

func (f fakeStats) Summary() ([]metrics.RequestCount, error) { return f.rows, f.err }

type harness struct {
	app         *App
	session     *fakeSession
	collections *fakeCollections
	out         *bytes.Buffer
}

func newHarness(input string) *harness {
	h := &harness{
		session:     &fakeSession{},
		collections: &fakeCollections{},
		out:         &bytes.Buffer{},
	}
	h.app = NewApp(h.session, h.collections, contrast.New(logging.Nop()), fakeStats{},
		logging.Nop(), strings.NewReader(input), h.out)
	return h
}

var alice = models.User{ID: "u1", Username: "alice", FullName: "Alice A", UserType: "user"}

func authenticatedAs(u models.User) stores.SessionSnapshot {
	return stores.SessionSnapshot{State: models.Authenticated, User: &u, CollectionsUserID: u.ID}
}

// ------------ login / logout / whoami ------------

func TestLogin_WithToken(t *testing.T) {
	h := newHarness("")
	h.session.verifyTo = authenticatedAs(alice)

	require.NoError(t, h.app.Login(context.Background(), "tok"))
	assert.Equal(t, []string{"tok"}, h.session.recorded)
	assert.Equal(t, "Logged in as alice\n", h.out.String())
}

func TestLogin_PromptsForToken(t *testing.T) {
	h := newHarness("")
	h.session.verifyTo = authenticatedAs(alice)

	orig := getSecret
	getSecret = func(_ *bufio.Reader, prompt string, _ io.Writer) (string, error) {
		assert.Equal(t, "Enter token", prompt)
		return "prompted", nil
	}
	t.Cleanup(func() { getSecret = orig })

	require.NoError(t, h.app.Login(context.Background(), ""))
	assert.Equal(t, []string{"prompted"}, h.session.recorded)
}

func TestLogin_EmptyPromptedToken(t *testing.T) {
	h := newHarness("")

	orig := getSecret
	getSecret = func(*bufio.Reader, string, io.Writer) (string, error) { return "", nil }
	t.Cleanup(func() { getSecret = orig })

	require.ErrorIs(t, h.app.Login(context.Background(), ""), ErrEmptyToken)
	assert.Empty(t, h.session.recorded)
}

func TestLogin_Rejected(t *testing.T) {
	h := newHarness("")
	h.session.verifyTo = stores.SessionSnapshot{State: models.Unauthenticated}

	require.ErrorIs(t, h.app.Login(context.Background(), "bad"), ErrLoginFailed)
	assert.Equal(t, "Login unsuccessful\n", h.out.String())
}

func TestLogout(t *testing.T) {
	h := newHarness("")
	h.session.snap = authenticatedAs(alice)

	require.NoError(t, h.app.Logout(context.Background()))
	assert.Equal(t, 1, h.session.signedOut)
	assert.False(t, h.app.isLoggedIn())

	h.session.signOutErr = errors.New("disk full")
	require.Error(t, h.app.Logout(context.Background()))
}

func TestWhoAmI(t *testing.T) {
	t.Run("authenticated admin", func(t *testing.T) {
		h := newHarness("")
		h.session.snap = authenticatedAs(alice)
		h.session.admin = true
		require.NoError(t, h.app.WhoAmI(context.Background()))
		assert.Equal(t, "alice (u1) authenticated [admin]\n", h.out.String())
	})

	t.Run("signed out with last known user", func(t *testing.T) {
		h := newHarness("")
		h.session.last = &models.User{ID: "u1", Username: "alice"}
		require.NoError(t, h.app.WhoAmI(context.Background()))
		assert.Equal(t, "Not logged in (last user: alice)\n", h.out.String())
	})

	t.Run("never logged in", func(t *testing.T) {
		h := newHarness("")
		require.NoError(t, h.app.WhoAmI(context.Background()))
		assert.Equal(t, "Not logged in (unauthenticated)\n", h.out.String())
	})
}

func TestStatus(t *testing.T) {
	h := newHarness("")
	assert.Equal(t, "(unauthenticated)", h.app.status())

	h.session.snap = stores.SessionSnapshot{State: models.PendingVerification}
	assert.Equal(t, "(pending)", h.app.status())
	assert.True(t, h.app.isLoggedIn())

	h.session.snap = stores.SessionSnapshot{State: models.Authenticated, User: models.PlaceholderUser("u9")}
	assert.Equal(t, "(u9 authenticated)", h.app.status())
}

// ------------ restore ------------

func TestRestore(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr bool
	}{
		{name: "restored"},
		{name: "nothing stored", err: client.ErrLocalDataNotAvailable},
		{name: "expired", err: stores.ErrTokenExpired},
		{name: "store failure", err: errors.New("db locked"), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness("")
			h.session.restoreErr = tt.err
			err := h.app.Restore(context.Background())
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, 1, h.session.restored)
		})
	}
}

// ------------ users / collections ------------

func TestUsers_SortedByUsername(t *testing.T) {
	h := newHarness("")
	h.session.users = map[string]models.User{
		"u2": {ID: "u2", Username: "bob", FullName: "Bob B", UserType: "user"},
		"u1": alice,
		"u0": {ID: "u0", Username: "admin", FullName: "Root", UserType: models.UserTypeAdmin},
	}

	require.NoError(t, h.app.Users(context.Background()))
	assert.Equal(t,
		"u0\tadmin\tRoot\tadmin\n"+
			"u1\talice\tAlice A\tuser\n"+
			"u2\tbob\tBob B\tuser\n",
		h.out.String())
}

func TestUsers_Error(t *testing.T) {
	h := newHarness("")
	h.session.usersErr = client.ErrUnauthorized
	require.ErrorIs(t, h.app.Users(context.Background()), client.ErrUnauthorized)
}

func TestListCollections(t *testing.T) {
	t.Run("no user", func(t *testing.T) {
		h := newHarness("")
		require.ErrorIs(t, h.app.ListCollections(context.Background(), ""), stores.ErrNoUser)
		assert.Empty(t, h.collections.fetched)
	})

	t.Run("current user", func(t *testing.T) {
		h := newHarness("")
		h.collections.userID = "u1"
		h.collections.cols = []models.Collection{{ID: "c1", Name: "letters"}, {ID: "c2", Name: "maps"}}

		require.NoError(t, h.app.ListCollections(context.Background(), ""))
		assert.Equal(t, []string{"u1"}, h.collections.fetched)
		assert.Equal(t, "c1\tletters\nc2\tmaps\n", h.out.String())
		assert.Empty(t, h.session.selectedID)
	})

	t.Run("selected user, empty", func(t *testing.T) {
		h := newHarness("")
		h.collections.userID = "u7"

		require.NoError(t, h.app.ListCollections(context.Background(), "u7"))
		assert.Equal(t, "u7", h.session.selectedID)
		assert.Equal(t, "No collections\n", h.out.String())
	})

	t.Run("fetch failure", func(t *testing.T) {
		h := newHarness("")
		h.collections.userID = "u1"
		h.collections.fetchErr = client.ErrUnavailable
		require.ErrorIs(t, h.app.ListCollections(context.Background(), ""), client.ErrUnavailable)
		assert.Empty(t, h.out.String())
	})
}

func TestCreateCollection(t *testing.T) {
	t.Run("named", func(t *testing.T) {
		h := newHarness("")
		require.NoError(t, h.app.CreateCollection(context.Background(), "letters"))
		assert.Equal(t, []string{"letters"}, h.collections.created)
		assert.Equal(t, "Created collection letters\n", h.out.String())
	})

	t.Run("prompted", func(t *testing.T) {
		h := newHarness("maps\n")
		require.NoError(t, h.app.CreateCollection(context.Background(), ""))
		assert.Equal(t, []string{"maps"}, h.collections.created)
	})

	t.Run("not created", func(t *testing.T) {
		h := newHarness("")
		h.collections.createFn = func(string) (*models.CreateResponse, error) {
			return &models.CreateResponse{Message: "exists"}, stores.ErrCollectionNotCreated
		}
		require.ErrorIs(t, h.app.CreateCollection(context.Background(), "letters"), stores.ErrCollectionNotCreated)
		assert.Empty(t, h.out.String())
	})
}

// ------------ color / stats ------------

func TestColor(t *testing.T) {
	h := newHarness("")
	require.NoError(t, h.app.Color(context.Background(), []string{"#FFFFFF", "#000000", "nope"}))
	assert.Equal(t,
		"#FFFFFF\tblack\t#000000\n"+
			"#000000\twhite\t#FFFFFF\n"+
			"nope\twhite\t#FFFFFF\n",
		h.out.String())
}

func TestStats(t *testing.T) {
	h := newHarness("")
	h.app.stats = fakeStats{rows: []metrics.RequestCount{
		{Method: "GET", Path: "/me", Status: "200", Count: 2},
	}}
	require.NoError(t, h.app.Stats(context.Background()))
	assert.Equal(t, "GET\t/me\t200\t2\n", h.out.String())

	h = newHarness("")
	require.NoError(t, h.app.Stats(context.Background()))
	assert.Equal(t, "No requests\n", h.out.String())
}
