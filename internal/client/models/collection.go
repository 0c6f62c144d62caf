package models

// Collection is a named grouping of documents owned by a user.
type Collection struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	UserID string `json:"user_id"`
}

// GetUserCollectionsResponse is the payload of GET /collections.
type GetUserCollectionsResponse struct {
	Collections []Collection `json:"collections"`
	UserID      string       `json:"user_id"`
}

// CollectionRequest is the body of POST /user_collection.
type CollectionRequest struct {
	CollectionName string `json:"collection_name"`
	UserID         string `json:"user_id"`
}

// CreateResponse is the generic create acknowledgement returned by the backend.
type CreateResponse struct {
	Created bool   `json:"created"`
	Message string `json:"message"`
}
