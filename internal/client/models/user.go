// Package models defines the client-side data shapes exchanged with the
// semant backend. Field names and JSON tags mirror the wire payloads exactly.
package models

// UserTypeAdmin marks a user with administrative privileges.
const UserTypeAdmin = "admin"

// User is the identity record returned by GET /me and GET /user.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	UserType string `json:"user_type"`
}

// IsAdmin reports whether the user carries administrative privileges.
func (u *User) IsAdmin() bool {
	return u != nil && u.UserType == UserTypeAdmin
}

// PlaceholderUser returns a minimal identity that carries only an id.
// It is not a fetched record; the remaining fields are empty.
func PlaceholderUser(id string) *User {
	return &User{ID: id}
}

// UsersByID indexes users by id. Later duplicates replace earlier ones, so
// the result has exactly one entry per distinct id.
func UsersByID(users []User) map[string]User {
	m := make(map[string]User, len(users))
	for _, u := range users {
		m[u.ID] = u
	}
	return m
}
