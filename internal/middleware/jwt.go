package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"storeadmin/internal/common"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// SessionCookie is the cookie the hosted sign-in widget stores its session token in.
const SessionCookie = "__session"

// IdentityProvider resolves the caller behind a request. An empty userID means anonymous;
// rejecting anonymous callers is left to the operation being invoked.
type IdentityProvider interface {
	UserID(r *http.Request) string
}

type JWTOptions struct {
	// Secret verifies HS256 tokens. Used when JWKSURL is empty.
	Secret  string
	JWKSURL string
	Issuer  string
}

// JWTIdentity verifies session tokens and reads the subject claim as the user id.
type JWTIdentity struct {
	keyfunc jwt.Keyfunc
	methods []string
	issuer  string
	jwks    *keyfunc.JWKS
	logger  *zap.Logger
}

func NewJWTIdentity(opts JWTOptions, logger *zap.Logger) (*JWTIdentity, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	identity := &JWTIdentity{issuer: opts.Issuer, logger: logger}

	switch {
	case opts.JWKSURL != "":
		jwks, err := keyfunc.Get(opts.JWKSURL, keyfunc.Options{
			RefreshInterval:   time.Hour,
			RefreshRateLimit:  5 * time.Minute,
			RefreshTimeout:    10 * time.Second,
			RefreshUnknownKID: true,
			RefreshErrorHandler: func(err error) {
				logger.Warn("jwks refresh failed", zap.String("url", opts.JWKSURL), zap.Error(err))
			},
		})
		if err != nil {
			return nil, fmt.Errorf("load jwks: %w", err)
		}
		identity.jwks = jwks
		identity.keyfunc = jwks.Keyfunc
		identity.methods = []string{"RS256", "RS384", "RS512", "ES256", "EdDSA"}
	case opts.Secret != "":
		secret := []byte(opts.Secret)
		identity.keyfunc = func(*jwt.Token) (interface{}, error) { return secret, nil }
		identity.methods = []string{jwt.SigningMethodHS256.Alg()}
	default:
		return nil, errors.New("either a JWKS URL or a JWT secret is required")
	}
	return identity, nil
}

// Close stops the background JWKS refresh.
func (j *JWTIdentity) Close() {
	if j.jwks != nil {
		j.jwks.EndBackground()
	}
}

func (j *JWTIdentity) UserID(r *http.Request) string {
	tokenString := tokenFromRequest(r)
	if tokenString == "" {
		return ""
	}

	parserOpts := []jwt.ParserOption{jwt.WithValidMethods(j.methods), jwt.WithLeeway(30 * time.Second)}
	if j.issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(j.issuer))
	}
	token, err := jwt.Parse(tokenString, j.keyfunc, parserOpts...)
	if err != nil || !token.Valid {
		j.logger.Debug("session token rejected", zap.Error(err))
		return ""
	}

	sub, err := token.Claims.GetSubject()
	if err != nil {
		return ""
	}
	return sub
}

// tokenFromRequest prefers the Authorization header and falls back to the session cookie.
func tokenFromRequest(r *http.Request) string {
	if header := r.Header.Get(echo.HeaderAuthorization); header != "" {
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
		return ""
	}
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		return cookie.Value
	}
	return ""
}

// StaticIdentity maps bearer tokens straight to user ids. Local tooling and tests only.
type StaticIdentity map[string]string

func (s StaticIdentity) UserID(r *http.Request) string {
	return s[tokenFromRequest(r)]
}

// Identity resolves the caller once per request and stores it in the request context.
// It never rejects a request.
func Identity(provider IdentityProvider) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if userID := provider.UserID(c.Request()); userID != "" {
				ctx := common.WithUserID(c.Request().Context(), userID)
				c.SetRequest(c.Request().WithContext(ctx))
			}
			return next(c)
		}
	}
}

// UserIDFrom returns the caller resolved by Identity, or "" for anonymous requests.
func UserIDFrom(c echo.Context) string {
	userID, _ := common.GetUserIDFromContext(c.Request().Context())
	return userID
}
