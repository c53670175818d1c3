package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/GlebRadaev/ordertrack/internal/domain"
)

const DefaultCookieName = "session"

type ContextKey string

const IdentityKey ContextKey = "identity"

// SessionManager stores the authenticated identity in a signed cookie.
// Expiry is bounded by the token lifetime.
type SessionManager struct {
	jwt        JWTServiceInterface
	cookieName string
	ttl        time.Duration
	secure     bool
}

func NewSessionManager(jwtService JWTServiceInterface, ttl time.Duration, secure bool) *SessionManager {
	return &SessionManager{
		jwt:        jwtService,
		cookieName: DefaultCookieName,
		ttl:        ttl,
		secure:     secure,
	}
}

// Establish writes user id, username and role as one signed value.
func (m *SessionManager) Establish(w http.ResponseWriter, identity domain.Identity) error {
	expiresAt := time.Now().Add(m.ttl)
	token, err := m.jwt.GenerateJWT(identity, expiresAt)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (m *SessionManager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Load decodes the session cookie. Missing, expired or tampered cookies
// yield no identity.
func (m *SessionManager) Load(r *http.Request) (domain.Identity, bool) {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil || cookie.Value == "" {
		return domain.Identity{}, false
	}
	claims, err := m.jwt.ValidateToken(cookie.Value)
	if err != nil {
		return domain.Identity{}, false
	}
	return claims.Identity(), true
}

func WithIdentity(ctx context.Context, identity domain.Identity) context.Context {
	return context.WithValue(ctx, IdentityKey, identity)
}

func IdentityFromContext(ctx context.Context) (domain.Identity, bool) {
	identity, ok := ctx.Value(IdentityKey).(domain.Identity)
	return identity, ok
}

func CurrentRole(ctx context.Context) (domain.Role, bool) {
	identity, ok := IdentityFromContext(ctx)
	if !ok {
		return "", false
	}
	return identity.Role, true
}

func CurrentName(ctx context.Context) (string, bool) {
	identity, ok := IdentityFromContext(ctx)
	if !ok {
		return "", false
	}
	return identity.Username, true
}
