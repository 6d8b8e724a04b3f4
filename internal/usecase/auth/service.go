package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"taskhive/backend/internal/apperror"
	domain "taskhive/backend/internal/domain/auth"
	"taskhive/backend/internal/validate"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const otpTTL = 10 * time.Minute

// Service coordinates authentication workflows between domain and
// infrastructure.
type Service struct {
	users     domain.UserRepository
	otps      domain.OTPRepository
	providers domain.ProviderTokenRepository
	tokens    TokenManager
	nowFunc   func() time.Time
}

// NewService constructs an auth service.
func NewService(users domain.UserRepository, otps domain.OTPRepository, providers domain.ProviderTokenRepository, tokens TokenManager) *Service {
	return &Service{
		users:     users,
		otps:      otps,
		providers: providers,
		tokens:    tokens,
		nowFunc:   time.Now,
	}
}

// TokenExpiry returns the configured session token lifetime.
func (s *Service) TokenExpiry() time.Duration {
	return s.tokens.Expiration()
}

// SignupInput is the validated payload for account creation.
type SignupInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup creates a new user and returns the persisted entity without a
// password hash. Duplicate email/username produce Conflict errors whether
// caught by the pre-check or by the store's unique constraint on a race.
func (s *Service) Signup(ctx context.Context, input SignupInput) (*domain.User, error) {
	username, ok := validate.Username(input.Username)
	if !ok {
		return nil, apperror.Validation("Username must be at least 3 characters", map[string]any{"field": "username"})
	}
	email, ok := validate.Email(input.Email)
	if !ok {
		return nil, apperror.Validation("Invalid email format", map[string]any{"field": "email"})
	}
	if !validate.Password(input.Password) {
		return nil, apperror.Validation("Password must be at least 8 characters", map[string]any{"field": "password"})
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, apperror.Conflict("Email already in use")
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, apperror.Database("Failed to check existing email", nil).WithCause(err)
	}

	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return nil, apperror.Conflict("Username already in use")
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, apperror.Database("Failed to check existing username", nil).WithCause(err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal("Failed to hash password").WithCause(err)
	}

	now := s.nowFunc().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hashed),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailExists):
			return nil, apperror.Conflict("Email already in use")
		case errors.Is(err, domain.ErrUsernameExists):
			return nil, apperror.Conflict("Username already in use")
		default:
			return nil, apperror.Database("Failed to create user", nil).WithCause(err)
		}
	}

	return sanitizeUser(user), nil
}

// Login validates credentials and returns a session token plus the user.
func (s *Service) Login(ctx context.Context, creds domain.Credentials) (string, *domain.User, error) {
	email, _ := validate.Email(creds.Email)

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, apperror.Auth("Invalid email")
		}
		return "", nil, apperror.Database("Failed to look up user", nil).WithCause(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		return "", nil, apperror.Auth("Invalid password")
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return "", nil, apperror.Internal("Failed to issue session token").WithCause(err)
	}

	return token, sanitizeUser(user), nil
}

// VerifyToken validates a session token and resolves the embedded identity to
// a user record. Every failure maps to a 401 auth error.
func (s *Service) VerifyToken(ctx context.Context, token string) (*domain.User, error) {
	userID, err := s.tokens.Validate(token)
	if err != nil {
		return nil, apperror.Auth("Invalid or expired token")
	}
	if userID == "" {
		return nil, apperror.Auth("Invalid token payload")
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, apperror.Auth("Invalid token: user not found")
		}
		return nil, apperror.Database("Failed to look up user", nil).WithCause(err)
	}

	return sanitizeUser(user), nil
}

// RequestOTP generates a short-lived 6-digit code for the user. Delivery
// (mail, SMS) is out of scope; the code is returned to the caller.
func (s *Service) RequestOTP(ctx context.Context, userID string, otpType domain.OTPType) (*domain.OTPCode, error) {
	switch otpType {
	case domain.OTPEmailVerification, domain.OTPPasswordReset:
	default:
		return nil, apperror.Validation("Invalid OTP type", map[string]any{"field": "type"})
	}

	code, err := generateOTPCode()
	if err != nil {
		return nil, apperror.Internal("Failed to generate code").WithCause(err)
	}

	now := s.nowFunc().UTC()
	otp := &domain.OTPCode{
		ID:        uuid.NewString(),
		UserID:    userID,
		Code:      code,
		Type:      otpType,
		ExpiresAt: now.Add(otpTTL),
		CreatedAt: now,
	}

	if err := s.otps.Create(ctx, otp); err != nil {
		return nil, apperror.Database("Failed to store code", nil).WithCause(err)
	}
	return otp, nil
}

// VerifyOTP checks and consumes a one-time code. A successful email
// verification marks the user as verified.
func (s *Service) VerifyOTP(ctx context.Context, userID, code string, otpType domain.OTPType) error {
	otp, err := s.otps.Find(ctx, userID, strings.TrimSpace(code), otpType)
	if err != nil {
		if errors.Is(err, domain.ErrOTPNotFound) {
			return apperror.Auth("Invalid or expired code")
		}
		return apperror.Database("Failed to look up code", nil).WithCause(err)
	}
	if s.nowFunc().UTC().After(otp.ExpiresAt) {
		return apperror.Auth("Invalid or expired code")
	}

	if err := s.otps.Delete(ctx, otp.ID); err != nil {
		return apperror.Database("Failed to consume code", nil).WithCause(err)
	}

	if otpType == domain.OTPEmailVerification {
		if err := s.users.SetVerified(ctx, userID); err != nil {
			return apperror.Database("Failed to mark user verified", nil).WithCause(err)
		}
	}
	return nil
}

// ResetPassword consumes a password_reset code and replaces the stored
// credential hash. Existing sessions stay valid; tokens are stateless.
func (s *Service) ResetPassword(ctx context.Context, userID, code, newPassword string) error {
	if !validate.Password(newPassword) {
		return apperror.Validation("Password must be at least 8 characters", map[string]any{"field": "password"})
	}

	if err := s.VerifyOTP(ctx, userID, code, domain.OTPPasswordReset); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperror.Internal("Failed to hash password").WithCause(err)
	}

	if err := s.users.UpdatePassword(ctx, userID, string(hashed)); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return apperror.Auth("Invalid token: user not found")
		}
		return apperror.Database("Failed to update password", nil).WithCause(err)
	}
	return nil
}

// LinkProviderInput carries the OAuth token pair for a third-party provider.
type LinkProviderInput struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// LinkProvider stores (or replaces) the OAuth tokens for a provider.
func (s *Service) LinkProvider(ctx context.Context, userID, provider string, input LinkProviderInput) (*domain.ProviderToken, error) {
	provider = strings.ToLower(strings.TrimSpace(provider))
	if provider == "" {
		return nil, apperror.BadRequest("Provider is required")
	}
	if input.AccessToken == "" || input.RefreshToken == "" {
		return nil, apperror.BadRequest("Access and refresh tokens are required")
	}

	token := &domain.ProviderToken{
		ID:           uuid.NewString(),
		UserID:       userID,
		Provider:     provider,
		AccessToken:  input.AccessToken,
		RefreshToken: input.RefreshToken,
		ExpiresAt:    input.ExpiresAt.UTC(),
		CreatedAt:    s.nowFunc().UTC(),
	}

	if err := s.providers.Upsert(ctx, token); err != nil {
		return nil, apperror.Database("Failed to store provider tokens", nil).WithCause(err)
	}
	return token, nil
}

// Providers lists the user's linked providers. Token material stays internal;
// the entity omits it from serialization.
func (s *Service) Providers(ctx context.Context, userID string) ([]*domain.ProviderToken, error) {
	tokens, err := s.providers.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperror.Database("Failed to list providers", nil).WithCause(err)
	}
	return tokens, nil
}

func generateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func sanitizeUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	copy := *u
	copy.PasswordHash = ""
	return &copy
}
