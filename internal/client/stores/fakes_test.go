package stores

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/semant/internal/client/models"
	"github.com/dmitrijs2005/semant/internal/client/notify"
	"github.com/dmitrijs2005/semant/internal/logging"
)

// ---- fake client ----

type fakeClient struct {
	mu    sync.Mutex
	token string

	meFn               func(ctx context.Context) (*models.User, error)
	listUsersFn        func(ctx context.Context) ([]models.User, error)
	getCollectionsFn   func(ctx context.Context, userID string) (*models.GetUserCollectionsResponse, error)
	createCollectionFn func(ctx context.Context, req models.CollectionRequest) (*models.CreateResponse, error)

	getCollectionsCalls []string
	lastCreate          models.CollectionRequest
}

func (f *fakeClient) Me(ctx context.Context) (*models.User, error) {
	if f.meFn == nil {
		return nil, nil
	}
	return f.meFn(ctx)
}

func (f *fakeClient) ListUsers(ctx context.Context) ([]models.User, error) {
	if f.listUsersFn == nil {
		return nil, nil
	}
	return f.listUsersFn(ctx)
}

func (f *fakeClient) GetCollections(ctx context.Context, userID string) (*models.GetUserCollectionsResponse, error) {
	f.mu.Lock()
	f.getCollectionsCalls = append(f.getCollectionsCalls, userID)
	f.mu.Unlock()
	if f.getCollectionsFn == nil {
		return &models.GetUserCollectionsResponse{UserID: userID}, nil
	}
	return f.getCollectionsFn(ctx, userID)
}

func (f *fakeClient) CreateCollection(ctx context.Context, req models.CollectionRequest) (*models.CreateResponse, error) {
	f.mu.Lock()
	f.lastCreate = req
	f.mu.Unlock()
	if f.createCollectionFn == nil {
		return &models.CreateResponse{Created: true}, nil
	}
	return f.createCollectionFn(ctx, req)
}

func (f *fakeClient) SetToken(token string) {
	f.mu.Lock()
	f.token = token
	f.mu.Unlock()
}

func (f *fakeClient) currentToken() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token
}

func (f *fakeClient) collectionCalls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.getCollectionsCalls...)
}

func (f *fakeClient) Close() error { return nil }

// ---- fake local store ----

type fakeLocal struct {
	mu   sync.Mutex
	data map[string][]byte

	getErr    error
	setErr    error
	deleteErr error
	clearErr  error
}

func newFakeLocal() *fakeLocal {
	return &fakeLocal{data: map[string][]byte{}}
}

func (f *fakeLocal) Get(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.data[key], nil
}

func (f *fakeLocal) Set(_ context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setErr != nil {
		return f.setErr
	}
	f.data[key] = append([]byte(nil), value...)
	return nil
}

func (f *fakeLocal) SetMany(ctx context.Context, values map[string][]byte) error {
	for k, v := range values {
		if err := f.Set(ctx, k, v); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeLocal) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.data, key)
	return nil
}

func (f *fakeLocal) snapshot() map[string][]byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string][]byte, len(f.data))
	for k, v := range f.data {
		out[k] = v
	}
	return out
}

func (f *fakeLocal) Clear(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.clearErr != nil {
		return f.clearErr
	}
	f.data = map[string][]byte{}
	return nil
}

// ---- fake collaborators ----

type report struct {
	severity notify.Severity
	message  string
	err      error
}

type fakeReporter struct {
	mu      sync.Mutex
	reports []report
}

func (f *fakeReporter) ReportError(_ context.Context, severity notify.Severity, message string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reports = append(f.reports, report{severity: severity, message: message, err: err})
}

func (f *fakeReporter) all() []report {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]report(nil), f.reports...)
}

type fakeNotifier struct {
	mu        sync.Mutex
	messages  []string
	dismissed int
}

func (f *fakeNotifier) Notify(_ context.Context, _ notify.Kind, message string) notify.Dismiss {
	f.mu.Lock()
	f.messages = append(f.messages, message)
	f.mu.Unlock()
	return func() {
		f.mu.Lock()
		f.dismissed++
		f.mu.Unlock()
	}
}

// ---- fixture ----

type fixture struct {
	api         *fakeClient
	local       *fakeLocal
	reporter    *fakeReporter
	notifier    *fakeNotifier
	collections *Collections
	session     *Session
}

func newFixture() *fixture {
	f := &fixture{
		api:      &fakeClient{},
		local:    newFakeLocal(),
		reporter: &fakeReporter{},
		notifier: &fakeNotifier{},
	}
	f.collections = NewCollections(f.api, f.reporter, logging.Nop())
	f.session = NewSession(f.api, f.collections, f.local, f.reporter, f.notifier, logging.Nop())
	return f
}
