// Package client contains the transport layer of the semant client.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     the identity endpoint (/me), user listing (/user) and collections
//     (/collections, /user_collection).
//  2. A concrete HTTP/JSON implementation (see HTTPClient) that attaches the
//     auth token as the Authorization cookie, tags each request with an
//     X-Request-ID, optionally rate-limits outbound calls, and maps HTTP
//     status codes to sentinel errors.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) wiring an
//     SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match with
// errors.Is: ErrUnavailable, ErrUnauthorized, ErrUnexpectedStatus,
// ErrInvalidIdentity, ErrLocalDataNotAvailable.
//
// # Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept a
// context.Context and honor cancellation/timeouts.
package client
