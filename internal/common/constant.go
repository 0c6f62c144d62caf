// Package common contains constants shared by the semant client packages.
package common

// AuthCookieName is the cookie that carries the auth token to the backend.
const AuthCookieName = "Authorization"

// RequestIDHeaderName tags every outbound request for log correlation.
const RequestIDHeaderName = "X-Request-ID"
