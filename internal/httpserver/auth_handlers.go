package httpserver

import (
	"net/http"
	"time"

	authdomain "taskhive/backend/internal/domain/auth"
	authusecase "taskhive/backend/internal/usecase/auth"
)

// sessionCookieName is the cookie carrying the session JWT.
const sessionCookieName = "token"

func (s *Server) setSessionCookie(w http.ResponseWriter, token string, lifetime time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(lifetime),
		MaxAge:   int(lifetime.Seconds()),
		HttpOnly: true,
		Secure:   s.isProd,
		SameSite: http.SameSiteStrictMode,
	})
}

func (s *Server) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.isProd,
		SameSite: http.SameSiteStrictMode,
	})
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) error {
	if r.Method != http.MethodPost {
		return methodNotAllowed(w, http.MethodPost)
	}

	var payload authusecase.SignupInput
	if err := decodeJSON(r, &payload); err != nil {
		return err
	}

	user, err := s.authService.Signup(r.Context(), payload)
	if err != nil {
		return err
	}

	s.writeSuccess(w, http.StatusCreated, "User created successfully", user)
	return nil
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) error {
	if r.Method != http.MethodPost {
		return methodNotAllowed(w, http.MethodPost)
	}

	var payload struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &payload); err != nil {
		return err
	}

	token, user, err := s.authService.Login(r.Context(), authdomain.Credentials{
		Email:    payload.Email,
		Password: payload.Password,
	})
	if err != nil {
		return err
	}

	s.setSessionCookie(w, token, s.authService.TokenExpiry())
	s.writeSuccess(w, http.StatusOK, "Login successful", map[string]any{
		"token": token,
		"user":  user,
	})
	return nil
}

// handleLogout clears the session cookie. Tokens are stateless, so nothing is
// revoked server side; they simply age out.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) error {
	if r.Method != http.MethodPost {
		return methodNotAllowed(w, http.MethodPost)
	}

	s.clearSessionCookie(w)
	s.writeSuccess(w, http.StatusOK, "Logged out successfully", nil)
	return nil
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) error {
	if r.Method != http.MethodGet {
		return methodNotAllowed(w, http.MethodGet)
	}

	user, err := userFromContext(r.Context())
	if err != nil {
		return err
	}

	s.writeSuccess(w, http.StatusOK, "", map[string]any{"user": user})
	return nil
}

func (s *Server) handleOTPRequest(w http.ResponseWriter, r *http.Request) error {
	if r.Method != http.MethodPost {
		return methodNotAllowed(w, http.MethodPost)
	}

	user, err := userFromContext(r.Context())
	if err != nil {
		return err
	}

	var payload struct {
		Type string `json:"type"`
	}
	if err := decodeJSON(r, &payload); err != nil {
		return err
	}

	otp, err := s.authService.RequestOTP(r.Context(), user.ID, authdomain.OTPType(payload.Type))
	if err != nil {
		return err
	}

	s.writeSuccess(w, http.StatusCreated, "Code generated", map[string]any{"otp": otp})
	return nil
}

func (s *Server) handleOTPVerify(w http.ResponseWriter, r *http.Request) error {
	if r.Method != http.MethodPost {
		return methodNotAllowed(w, http.MethodPost)
	}

	user, err := userFromContext(r.Context())
	if err != nil {
		return err
	}

	var payload struct {
		Code string `json:"code"`
		Type string `json:"type"`
	}
	if err := decodeJSON(r, &payload); err != nil {
		return err
	}

	if err := s.authService.VerifyOTP(r.Context(), user.ID, payload.Code, authdomain.OTPType(payload.Type)); err != nil {
		return err
	}

	s.writeSuccess(w, http.StatusOK, "Code verified", nil)
	return nil
}

func (s *Server) handlePasswordReset(w http.ResponseWriter, r *http.Request) error {
	if r.Method != http.MethodPost {
		return methodNotAllowed(w, http.MethodPost)
	}

	user, err := userFromContext(r.Context())
	if err != nil {
		return err
	}

	var payload struct {
		Code        string `json:"code"`
		NewPassword string `json:"newPassword"`
	}
	if err := decodeJSON(r, &payload); err != nil {
		return err
	}

	if err := s.authService.ResetPassword(r.Context(), user.ID, payload.Code, payload.NewPassword); err != nil {
		return err
	}

	s.writeSuccess(w, http.StatusOK, "Password updated successfully", nil)
	return nil
}

func (s *Server) handleProviders(w http.ResponseWriter, r *http.Request) error {
	if r.Method != http.MethodGet {
		return methodNotAllowed(w, http.MethodGet)
	}

	user, err := userFromContext(r.Context())
	if err != nil {
		return err
	}

	tokens, err := s.authService.Providers(r.Context(), user.ID)
	if err != nil {
		return err
	}

	s.writeSuccess(w, http.StatusOK, "", map[string]any{"providers": tokens})
	return nil
}

func (s *Server) handleProviderByName(w http.ResponseWriter, r *http.Request) error {
	if r.Method != http.MethodPut {
		return methodNotAllowed(w, http.MethodPut)
	}

	user, err := userFromContext(r.Context())
	if err != nil {
		return err
	}

	provider, err := pathParam(r.URL.Path, "/api/auth/providers/")
	if err != nil {
		return err
	}

	var payload authusecase.LinkProviderInput
	if err := decodeJSON(r, &payload); err != nil {
		return err
	}

	token, err := s.authService.LinkProvider(r.Context(), user.ID, provider, payload)
	if err != nil {
		return err
	}

	s.writeSuccess(w, http.StatusOK, "Provider linked", map[string]any{"provider": token})
	return nil
}
