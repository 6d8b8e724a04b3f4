package auth

import "time"

// TokenManager abstracts session token issuance and verification.
type TokenManager interface {
	Generate(userID string) (string, error)
	Validate(token string) (string, error)
	Expiration() time.Duration
}
