package service

import (
	"context"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/teerthankarjewels/storefront_api/internal/models"
	"github.com/teerthankarjewels/storefront_api/internal/utils"
	"github.com/teerthankarjewels/storefront_api/pkg/commerce"
)

// authAPI is the slice of the commerce client auth needs.
type authAPI interface {
	Login(ctx context.Context, email, password string) (*commerce.LoginResult, error)
	GoogleCallback(ctx context.Context, credential string) (*commerce.LoginResult, error)
	GetProfile(ctx context.Context, token string) (*commerce.Profile, error)
	Logout(ctx context.Context, token string) error
}

// sessionStore persists gateway sessions. Satisfied by cache.SessionCache.
type sessionStore interface {
	Save(ctx context.Context, session *models.Session) error
	Get(ctx context.Context, sessionID string) (*models.Session, error)
	Touch(ctx context.Context, sessionID string) error
	Delete(ctx context.Context, sessionID string) error
}

// googleVerifier checks Google ID tokens. Satisfied by *oidc.IDTokenVerifier.
type googleVerifier interface {
	Verify(ctx context.Context, rawIDToken string) (*oidc.IDToken, error)
}

// AuthResult is what a successful login returns to the client.
type AuthResult struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// AuthService exchanges backend credentials for gateway sessions. The
// backend token never leaves the server: the client gets a signed session
// JWT, and the session record in redis maps it back to the backend token
// plus the cached profile.
type AuthService struct {
	api        authAPI
	sessions   sessionStore
	verifier   googleVerifier
	jwtSecret  string
	sessionTTL time.Duration
}

// NewAuthService constructs an AuthService. verifier may be nil, which
// disables Google sign-in.
func NewAuthService(api authAPI, sessions sessionStore, verifier googleVerifier, jwtSecret string, sessionTTL time.Duration) *AuthService {
	return &AuthService{
		api:        api,
		sessions:   sessions,
		verifier:   verifier,
		jwtSecret:  jwtSecret,
		sessionTTL: sessionTTL,
	}
}

// Login authenticates with email and password against the backend.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	if email == "" || password == "" {
		return nil, &utils.ValidationError{Field: "credentials", Message: "email and password are required"}
	}
	result, err := s.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return s.createSession(ctx, result)
}

// LoginWithGoogle verifies a Google ID token credential and exchanges it
// with the backend.
func (s *AuthService) LoginWithGoogle(ctx context.Context, credential string) (*AuthResult, error) {
	if credential == "" {
		return nil, &utils.ValidationError{Field: "credential", Message: "is required"}
	}
	if s.verifier == nil {
		return nil, &utils.ValidationError{Field: "credential", Message: "google sign-in is not configured"}
	}
	if _, err := s.verifier.Verify(ctx, credential); err != nil {
		return nil, utils.ErrAuthRequired
	}
	result, err := s.api.GoogleCallback(ctx, credential)
	if err != nil {
		return nil, err
	}
	return s.createSession(ctx, result)
}

// createSession caches the backend token plus profile and issues the
// session JWT. A profile fetch failure does not fail the login; the bare
// user ID is cached instead and refreshed later.
func (s *AuthService) createSession(ctx context.Context, result *commerce.LoginResult) (*AuthResult, error) {
	user := models.User{ID: string(result.UserID)}
	if profile, err := s.api.GetProfile(ctx, result.Token); err == nil {
		user = toUser(profile)
		if user.ID == "" {
			user.ID = string(result.UserID)
		}
	} else {
		log.Warn().Err(err).Msg("profile fetch failed, using bare user id")
	}

	session := &models.Session{
		ID:           uuid.New().String(),
		UserID:       user.ID,
		BackendToken: result.Token,
		User:         user,
		CreatedAt:    time.Now(),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(s.jwtSecret, session.ID, user.ID, user.Email, s.sessionTTL)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}

// ResolveSession validates a session JWT and loads the session record.
// Used by the session middleware on every authenticated request.
func (s *AuthService) ResolveSession(ctx context.Context, tokenString string) (*models.Session, error) {
	claims, err := utils.ValidateSessionJWT(s.jwtSecret, tokenString)
	if err != nil {
		return nil, utils.ErrAuthRequired
	}
	session, err := s.sessions.Get(ctx, claims.SessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, utils.ErrSessionExpired
	}
	if err := s.sessions.Touch(ctx, session.ID); err != nil {
		log.Warn().Err(err).Msg("session touch failed")
	}
	return session, nil
}

// Me returns the cached user and silently refreshes the profile from the
// backend. A refresh failure keeps the cached copy; it never logs the
// user out.
func (s *AuthService) Me(ctx context.Context, session *models.Session) models.User {
	profile, err := s.api.GetProfile(ctx, session.BackendToken)
	if err != nil {
		log.Warn().Err(err).Msg("profile refresh failed, serving cached user")
		return session.User
	}
	user := toUser(profile)
	if user.ID == "" {
		user.ID = session.UserID
	}
	session.User = user
	if err := s.sessions.Save(ctx, session); err != nil {
		log.Warn().Err(err).Msg("session profile update failed")
	}
	return user
}

// Logout drops the gateway session and invalidates the backend token,
// best effort on the backend side.
func (s *AuthService) Logout(ctx context.Context, session *models.Session) error {
	if err := s.api.Logout(ctx, session.BackendToken); err != nil {
		log.Warn().Err(err).Msg("backend logout failed")
	}
	return s.sessions.Delete(ctx, session.ID)
}
