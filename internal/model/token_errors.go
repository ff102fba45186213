package model

import "errors"

var (
	// ErrAuthenticationRequired means no credential was presented.
	ErrAuthenticationRequired = errors.New("authentication required")
	// ErrTokenExpired means the access token is past its expiry; the client should refresh.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid means the access token failed signature or format checks.
	ErrTokenInvalid = errors.New("invalid token")
	// ErrRefreshRejected means the refresh token is absent, expired or revoked.
	ErrRefreshRejected = errors.New("invalid refresh token")
	// ErrForbidden means the identity is valid but its role is not allowed.
	ErrForbidden = errors.New("access denied")
	// ErrStoreUnavailable wraps backing-store transport failures.
	ErrStoreUnavailable = errors.New("store unavailable")
)
