package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	SessionIDKey      = "session_id"
	SessionCookieName = "photoprint_session"
	SessionHeader     = "X-Session-Token"
)

// SessionTokens signs and verifies visitor session tokens (HS256, sub = session id).
type SessionTokens struct {
	secret []byte
	maxAge time.Duration
	secure bool
	now    func() time.Time
}

func NewSessionTokens(secret string, maxAge time.Duration, secure bool) *SessionTokens {
	return &SessionTokens{secret: []byte(secret), maxAge: maxAge, secure: secure, now: time.Now}
}

// WithClock replaces the time source used to issue and verify tokens.
func (t *SessionTokens) WithClock(now func() time.Time) *SessionTokens {
	if now != nil {
		t.now = now
	}
	return t
}

// Issue returns a signed token for sessionID.
func (t *SessionTokens) Issue(sessionID string) (string, error) {
	now := t.now()
	claims := jwt.RegisteredClaims{
		Subject:  sessionID,
		IssuedAt: jwt.NewNumericDate(now),
	}
	if t.maxAge > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(t.maxAge))
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify returns the session id carried by token.
func (t *SessionTokens) Verify(token string) (string, error) {
	claims, err := t.parse(token)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// stale reports whether a verified token is past half its lifetime and should
// be re-issued so an active visitor keeps the same session.
func (t *SessionTokens) stale(claims *jwt.RegisteredClaims) bool {
	if t.maxAge <= 0 || claims.IssuedAt == nil {
		return false
	}
	return t.now().Sub(claims.IssuedAt.Time) >= t.maxAge/2
}

func (t *SessionTokens) parse(token string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return t.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithTimeFunc(t.now))
	if err != nil {
		return nil, err
	}
	if !parsed.Valid || claims.Subject == "" {
		return nil, jwt.ErrTokenInvalidClaims
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return nil, jwt.ErrTokenInvalidSubject
	}
	return claims, nil
}

// SessionMiddleware resolves the visitor session from the cookie or the
// X-Session-Token header. Missing or invalid tokens start a new session. A
// token past half its lifetime is re-issued for the same session, so the
// expiry slides with activity. Any new token is sent back as both cookie and
// header.
func SessionMiddleware(tokens *SessionTokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimSpace(c.GetHeader(SessionHeader))
		if token == "" {
			if cookie, err := c.Cookie(SessionCookieName); err == nil {
				token = cookie
			}
		}

		sessionID := ""
		reissue := true
		if token != "" {
			if claims, err := tokens.parse(token); err == nil {
				sessionID = claims.Subject
				reissue = tokens.stale(claims)
			}
		}
		if sessionID == "" {
			sessionID = uuid.NewString()
		}

		if reissue {
			signed, err := tokens.Issue(sessionID)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error":   "session_error",
					"message": "failed to start session",
				})
				return
			}
			maxAge := int(tokens.maxAge / time.Second)
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(SessionCookieName, signed, maxAge, "/", "", tokens.secure, true)
			c.Header(SessionHeader, signed)
		}

		c.Set(SessionIDKey, sessionID)
		c.Next()
	}
}
