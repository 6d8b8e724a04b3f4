package auth

import "context"

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	SetVerified(ctx context.Context, id string) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}

// OTPRepository defines persistence operations for one-time codes.
type OTPRepository interface {
	Create(ctx context.Context, otp *OTPCode) error
	Find(ctx context.Context, userID, code string, otpType OTPType) (*OTPCode, error)
	Delete(ctx context.Context, id string) error
}

// ProviderTokenRepository defines persistence operations for linked OAuth
// provider tokens. Upsert replaces the stored pair for a (user, provider).
type ProviderTokenRepository interface {
	Upsert(ctx context.Context, token *ProviderToken) error
	ListByUser(ctx context.Context, userID string) ([]*ProviderToken, error)
}
