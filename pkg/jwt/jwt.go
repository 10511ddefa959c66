package jwt

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"

	"logistics-service/pkg/apperr"
)

// Claims represents the signed token payload.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"` // "USER" or "ADMIN"
	gojwt.RegisteredClaims
}

type ctxKey string

const claimsCtxKey ctxKey = "jwt_claims"

// Codec signs and verifies tokens with a fixed symmetric secret and TTL.
// The clock is injectable so expiry behaviour is testable.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewCodec builds a Codec. The secret must be at least 32 bytes (HS256 keys
// below 256 bits weaken the signature) and the TTL positive.
func NewCodec(secret string, ttl time.Duration) (*Codec, error) {
	if len(secret) < 32 {
		return nil, errors.New("jwt: secret must be at least 32 bytes")
	}
	if ttl <= 0 {
		return nil, errors.New("jwt: ttl must be positive")
	}
	return &Codec{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Generate creates a signed token for the given user. Expiry is issue time
// plus the codec's TTL.
func (c *Codec) Generate(userID, email, role string) (string, error) {
	now := c.now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	return gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Validate parses and verifies a raw token string. Malformed, tampered and
// wrong-secret tokens all return apperr.ErrSignatureInvalid; a well-signed
// token past its expiry returns apperr.ErrExpired. A token presented exactly
// at its expiry instant is still valid.
func (c *Codec) Validate(raw string) (*Claims, error) {
	token, err := gojwt.ParseWithClaims(raw, &Claims{}, func(t *gojwt.Token) (any, error) {
		if _, ok := t.Method.(*gojwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return c.secret, nil
	}, gojwt.WithoutClaimsValidation())
	if err != nil || !token.Valid {
		return nil, apperr.ErrSignatureInvalid
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.ExpiresAt == nil {
		return nil, apperr.ErrSignatureInvalid
	}
	if c.now().After(claims.ExpiresAt.Time) {
		return nil, apperr.ErrExpired
	}
	return claims, nil
}

// ---- HTTP Middleware ----

// OptionalAuth extracts verified claims into context if a Bearer token is
// present. Requests without a token pass through (claims will be nil).
func (c *Codec) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
			if claims, err := c.Validate(auth[7:]); err == nil {
				r = r.WithContext(context.WithValue(r.Context(), claimsCtxKey, claims))
			}
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAuth rejects requests that have no valid claims in context.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if GetClaims(r.Context()) == nil {
			http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole rejects authenticated requests whose claims lack the given role.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := GetClaims(r.Context())
			if claims == nil {
				http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
				return
			}
			if claims.Role != role {
				http.Error(w, `{"error":"forbidden"}`, http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetClaims retrieves the parsed claims from context (nil if absent).
func GetClaims(ctx context.Context) *Claims {
	c, _ := ctx.Value(claimsCtxKey).(*Claims)
	return c
}
