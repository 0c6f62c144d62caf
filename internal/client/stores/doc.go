// Package stores holds the client's long-lived state containers.
//
// Session tracks authentication and the current user. Collections caches
// the collections owned by a user. Both are constructed explicitly and
// shared by reference; nothing here is a package-level global.
//
// # Synchronization
//
// Whenever Session establishes a user id (SetUser, or a successful
// VerifyAuthentication) it pushes the same id into Collections before
// releasing its own lock. Readers that need both values consistently use
// Session.Snapshot, which reads them under that lock.
//
// # Races
//
// Remote calls run without holding store locks, and their results are
// applied when they complete. Two overlapping fetches therefore resolve as
// "last response wins": a slow earlier response can overwrite a faster later
// one. The same holds for a verification racing SignOut. This is accepted
// behavior and is not corrected here.
package stores
