package models

// AuthState is the authentication phase of a session.
type AuthState int

const (
	// Unauthenticated: no user, not authorized.
	Unauthenticated AuthState = iota
	// PendingVerification: a token was recorded and optimistically treated as
	// authorized while the identity check is still in flight. The user may be nil.
	PendingVerification
	// Authenticated: the identity check succeeded and the user is known.
	Authenticated
)

func (s AuthState) String() string {
	switch s {
	case PendingVerification:
		return "pending"
	case Authenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// Authorized reports whether the state grants access. The pending state
// counts as authorized.
func (s AuthState) Authorized() bool {
	return s != Unauthenticated
}
