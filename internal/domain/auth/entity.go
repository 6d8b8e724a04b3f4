package auth

import (
	"errors"
	"time"
)

var (
	// ErrEmailExists signals a duplicate email registration.
	ErrEmailExists = errors.New("email already in use")
	// ErrUsernameExists signals a duplicate username registration.
	ErrUsernameExists = errors.New("username already in use")
	// ErrUserNotFound indicates missing user.
	ErrUserNotFound = errors.New("user not found")
	// ErrOTPNotFound indicates no matching one-time code.
	ErrOTPNotFound = errors.New("otp code not found")
)

// OTPType identifies the purpose of a one-time code.
type OTPType string

const (
	// OTPEmailVerification marks codes issued to confirm an email address.
	OTPEmailVerification OTPType = "email_verification"
	// OTPPasswordReset marks codes issued for password recovery.
	OTPPasswordReset OTPType = "password_reset"
)

// User models the account entity persisted in storage. The password hash is
// never serialized; responses additionally go through sanitization so the
// field is empty by the time a User leaves the use case layer.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsVerified   bool      `json:"isVerified"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Credentials captures raw credential input for login.
type Credentials struct {
	Email    string
	Password string
}

// OTPCode is a short-lived one-time code bound to a user.
type OTPCode struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Code      string    `json:"code"`
	Type      OTPType   `json:"type"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}

// ProviderToken stores OAuth access/refresh tokens for a linked third-party
// provider. Token material is never serialized.
type ProviderToken struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	Provider     string    `json:"provider"`
	AccessToken  string    `json:"-"`
	RefreshToken string    `json:"-"`
	ExpiresAt    time.Time `json:"expiresAt"`
	CreatedAt    time.Time `json:"createdAt"`
}
