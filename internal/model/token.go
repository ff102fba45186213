package model

import "time"

// TokenManager issues and verifies access tokens.
type TokenManager interface {
	IssueAccessToken(subject Subject) (string, error)
	VerifyAccessToken(token string) (Subject, error)
	TTL() time.Duration
}
