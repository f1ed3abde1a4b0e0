package session

import "errors"

var (
	// ErrInvalidCredentials means the login endpoint rejected the
	// email/password pair.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNoActiveSession means a token operation was attempted while
	// no session is installed.
	ErrNoActiveSession = errors.New("no active session")

	// ErrNoRefreshToken means the session cannot self-renew; it keeps
	// working until its access token expires.
	ErrNoRefreshToken = errors.New("session has no refresh token")

	// ErrRefreshRejected means the backend definitively refused the
	// refresh token. The session is destroyed and a new login is required.
	ErrRefreshRejected = errors.New("refresh token rejected")

	// ErrRefreshTransient means the refresh attempt failed for
	// infrastructure reasons. The session is left untouched and the next
	// periodic check retries.
	ErrRefreshTransient = errors.New("refresh failed, session unchanged")

	// ErrValidateFailed means the validate endpoint could not confirm the
	// token's expiry.
	ErrValidateFailed = errors.New("token validation failed")

	// ErrUnavailable means the backend could not be reached at all.
	ErrUnavailable = errors.New("backend unreachable")
)
