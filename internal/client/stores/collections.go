package stores

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/dmitrijs2005/semant/internal/client/client"
	"github.com/dmitrijs2005/semant/internal/client/models"
	"github.com/dmitrijs2005/semant/internal/client/notify"
	"github.com/dmitrijs2005/semant/internal/logging"
)

var (
	ErrNoUser               = errors.New("no user selected")
	ErrCollectionNotCreated = errors.New("collection not created")
)

// Collections caches the collections owned by one user.
type Collections struct {
	api      client.Client
	reporter notify.ErrorReporter
	log      logging.Logger

	mu          sync.RWMutex
	userID      string
	collections []models.Collection
}

func NewCollections(api client.Client, reporter notify.ErrorReporter, log logging.Logger) *Collections {
	return &Collections{
		api:         api,
		reporter:    reporter,
		log:         log.With("component", "collections"),
		collections: []models.Collection{},
	}
}

// SetUser records the owner for subsequent operations. No network effect.
func (c *Collections) SetUser(userID string) {
	c.mu.Lock()
	c.userID = userID
	c.mu.Unlock()
}

func (c *Collections) UserID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.userID
}

// Collections returns a copy of the cached sequence in server order.
func (c *Collections) Collections() []models.Collection {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.collections)
}

// IsEmpty reports whether the cache holds no collections.
func (c *Collections) IsEmpty() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.collections) == 0
}

// FetchCollections replaces the cache with the backend's list for userID.
// On failure the error is reported and the previous contents stay in place.
func (c *Collections) FetchCollections(ctx context.Context, userID string) error {
	resp, err := c.api.GetCollections(ctx, userID)
	if err != nil {
		c.reporter.ReportError(ctx, notify.SeverityError, "Failed to fetch collections.", err)
		return fmt.Errorf("fetch collections: %w", err)
	}

	fetched := slices.Clone(resp.Collections)
	if fetched == nil {
		fetched = []models.Collection{}
	}

	c.mu.Lock()
	c.collections = fetched
	c.mu.Unlock()

	c.log.Info(ctx, "collections fetched", "user_id", userID, "count", len(fetched))
	return nil
}

// CreateCollection asks the backend to create a collection named name for
// the current owner and refetches the cache when it was created.
func (c *Collections) CreateCollection(ctx context.Context, name string) (*models.CreateResponse, error) {
	userID := c.UserID()
	if userID == "" {
		return nil, ErrNoUser
	}

	resp, err := c.api.CreateCollection(ctx, models.CollectionRequest{CollectionName: name, UserID: userID})
	if err != nil {
		c.reporter.ReportError(ctx, notify.SeverityError, "Failed to create collection.", err)
		return nil, fmt.Errorf("create collection: %w", err)
	}
	if !resp.Created {
		c.reporter.ReportError(ctx, notify.SeverityWarning, resp.Message, nil)
		return resp, fmt.Errorf("%w: %s", ErrCollectionNotCreated, resp.Message)
	}

	return resp, c.FetchCollections(ctx, userID)
}
