package client

import (
	"context"

	"github.com/dmitrijs2005/semant/internal/client/models"
)

// Client is the backend API contract consumed by the stores.
type Client interface {
	// Me returns the current identity, or (nil, nil) when the backend answers
	// with an empty identity. A 401 is reported as ErrUnauthorized.
	Me(ctx context.Context) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	GetCollections(ctx context.Context, userID string) (*models.GetUserCollectionsResponse, error)
	CreateCollection(ctx context.Context, req models.CollectionRequest) (*models.CreateResponse, error)
	// SetToken replaces the auth token sent with subsequent requests.
	// An empty token sends none.
	SetToken(token string)
	Close() error
}
