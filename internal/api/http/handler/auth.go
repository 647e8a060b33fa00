package handler

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/sentra-app/auth-server/internal/logger"
	"github.com/sentra-app/auth-server/internal/model"
)

const (
	accessTokenCookie  = "access_token"
	refreshTokenCookie = "refresh_token"
	oauthStateCookie   = "oauth_state"

	oauthStateTTL = 10 * time.Minute
)

// AuthService defines signup, verification, login and account operations.
type AuthService interface {
	Signup(ctx context.Context, email, password string) error
	ConfirmOTP(ctx context.Context, email, code string) error
	Login(ctx context.Context, email, password string) (model.TokenPair, error)
	FederatedLogin(ctx context.Context, code string) (model.TokenPair, error)
	FederationAuthURL(state string) string
	GetIdentity(ctx context.Context, id uuid.UUID) (model.Identity, error)
	DeleteAccount(ctx context.Context, id uuid.UUID) error
}

// CookieConfig controls how token cookies are written.
type CookieConfig struct {
	Secure     bool
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// Auth handles HTTP endpoints for authentication and account management.
type Auth struct {
	authService        AuthService
	contextManager     model.ContextManager
	cookies            CookieConfig
	frontendSuccessURL string
	logger             *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(
	authService AuthService,
	contextManager model.ContextManager,
	cookies CookieConfig,
	frontendSuccessURL string,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		authService:        authService,
		contextManager:     contextManager,
		cookies:            cookies,
		frontendSuccessURL: frontendSuccessURL,
		logger:             logger,
	}
}

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type verifyOTPRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type identityResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Provider string `json:"provider"`
	Verified bool   `json:"verified"`
}

// Signup registers a local identity and sends a verification code.
func (h *Auth) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	h.logger.Debug("Auth handler: processing signup request", "email", req.Email)

	if err := h.authService.Signup(r.Context(), req.Email, req.Password); err != nil {
		h.logger.Error("Auth handler: signup failed",
			"email", req.Email,
			"error", err.Error())
		handleError(w, err)
		return
	}

	h.logger.Info("Auth handler: signup completed", "email", req.Email)

	writeJSON(w, http.StatusCreated, messageResponse{Message: "verification code sent"})
}

// VerifyOTP confirms email ownership with a one-time passcode.
func (h *Auth) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req verifyOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Code == "" {
		writeError(w, http.StatusBadRequest, "email and code are required")
		return
	}

	h.logger.Debug("Auth handler: processing verification request", "email", req.Email)

	if err := h.authService.ConfirmOTP(r.Context(), req.Email, req.Code); err != nil {
		h.logger.Error("Auth handler: verification failed",
			"email", req.Email,
			"error", err.Error())
		handleError(w, err)
		return
	}

	h.logger.Info("Auth handler: verification completed", "email", req.Email)

	writeJSON(w, http.StatusOK, messageResponse{Message: "email verified"})
}

// Login authenticates a local identity and sets token cookies.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	h.logger.Debug("Auth handler: processing login request", "email", req.Email)

	pair, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Error("Auth handler: login failed",
			"email", req.Email,
			"error", err.Error())
		handleError(w, err)
		return
	}

	h.setTokenCookies(w, pair)

	h.logger.Info("Auth handler: login completed", "email", req.Email)

	writeJSON(w, http.StatusOK, messageResponse{Message: "logged in"})
}

// Logout clears token cookies. Tokens are stateless so there is nothing
// to revoke server-side.
func (h *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	h.clearTokenCookies(w)
	writeJSON(w, http.StatusOK, messageResponse{Message: "logged out"})
}

// GoogleLogin redirects the browser to the Google consent screen.
func (h *Auth) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	state, err := generateState()
	if err != nil {
		h.logger.Error("Auth handler: failed to generate oauth state", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Path:     "/",
		MaxAge:   int(oauthStateTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cookies.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, h.authService.FederationAuthURL(state), http.StatusFound)
}

// GoogleCallback completes the OAuth flow, sets token cookies and sends
// the browser back to the frontend.
func (h *Auth) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	stateCookie, err := r.Cookie(oauthStateCookie)
	if err != nil || stateCookie.Value == "" || stateCookie.Value != r.URL.Query().Get("state") {
		h.logger.Error("Auth handler: oauth state mismatch")
		writeError(w, http.StatusUnauthorized, "invalid oauth state")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookies.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	code := r.URL.Query().Get("code")
	if code == "" {
		writeError(w, http.StatusBadRequest, "authorization code is required")
		return
	}

	pair, err := h.authService.FederatedLogin(r.Context(), code)
	if err != nil {
		h.logger.Error("Auth handler: federated login failed", "error", err.Error())
		handleError(w, err)
		return
	}

	h.setTokenCookies(w, pair)

	h.logger.Info("Auth handler: federated login completed")

	http.Redirect(w, r, h.frontendSuccessURL, http.StatusFound)
}

// Me returns the authenticated identity.
func (h *Auth) Me(w http.ResponseWriter, r *http.Request) {
	id, ok := h.contextManager.GetIdentityIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	identity, err := h.authService.GetIdentity(r.Context(), id)
	if err != nil {
		h.logger.Error("Auth handler: failed to get identity",
			"id", id,
			"error", err.Error())
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, identityResponse{
		ID:       identity.ID.String(),
		Email:    identity.Email,
		Provider: string(identity.Provider),
		Verified: identity.Verified,
	})
}

// DeleteMe soft-deletes the authenticated identity and clears cookies.
func (h *Auth) DeleteMe(w http.ResponseWriter, r *http.Request) {
	id, ok := h.contextManager.GetIdentityIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.authService.DeleteAccount(r.Context(), id); err != nil {
		h.logger.Error("Auth handler: failed to delete account",
			"id", id,
			"error", err.Error())
		handleError(w, err)
		return
	}

	h.clearTokenCookies(w)

	h.logger.Info("Auth handler: account deleted", "id", id)

	w.WriteHeader(http.StatusNoContent)
}

// Health reports liveness.
func (h *Auth) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Auth) setTokenCookies(w http.ResponseWriter, pair model.TokenPair) {
	http.SetCookie(w, h.tokenCookie(accessTokenCookie, pair.AccessToken, int(h.cookies.AccessTTL.Seconds())))
	http.SetCookie(w, h.tokenCookie(refreshTokenCookie, pair.RefreshToken, int(h.cookies.RefreshTTL.Seconds())))
}

func (h *Auth) clearTokenCookies(w http.ResponseWriter) {
	http.SetCookie(w, h.tokenCookie(accessTokenCookie, "", -1))
	http.SetCookie(w, h.tokenCookie(refreshTokenCookie, "", -1))
}

func (h *Auth) tokenCookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookies.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func generateState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
