package session

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the session cookie carried by the browser.
const CookieName = "blog_session"

// Manager issues and verifies signed session tokens. The token is a JWT
// (HS256) stored in an HttpOnly cookie. Logout clears the cookie only; a
// previously issued token stays valid until it expires, there is no
// server-side revocation list.
type Manager struct {
	Secret []byte
	TTL    time.Duration
}

func NewManager(secret []byte, ttl time.Duration) *Manager {
	return &Manager{Secret: secret, TTL: ttl}
}

// Issue returns a signed token identifying userID.
func (m *Manager) Issue(userID int) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(m.TTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.Secret)
}

// Parse verifies a token and returns the user id it identifies.
func (m *Manager) Parse(tokenStr string) (int, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		return m.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, jwt.ErrTokenInvalidClaims
	}
	id, ok := claims["user_id"].(float64)
	if !ok {
		return 0, jwt.ErrTokenInvalidClaims
	}
	return int(id), nil
}

// Resolve returns the user id carried by the request's session cookie.
// Any missing, malformed, or expired token resolves to anonymous (ok=false).
func (m *Manager) Resolve(r *http.Request) (int, bool) {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return 0, false
	}
	id, err := m.Parse(c.Value)
	if err != nil {
		return 0, false
	}
	return id, true
}

// SetCookie establishes the session on the response.
func (m *Manager) SetCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.TTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie tears down the session. Idempotent: clearing an absent
// session is fine.
func (m *Manager) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{Name: CookieName, Value: "", Path: "/", MaxAge: -1})
}
