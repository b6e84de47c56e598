package jwt

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/abalakin/userauth/pkg/auth"
)

// Verification failures, one per way a presented token can be bad.
var (
	ErrMalformed        = errors.New("malformed token")
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrExpired          = errors.New("token expired")
)

// Codec issues and verifies HS256-signed bearer tokens. It implements both
// auth.TokenGenerator and auth.TokenVerifier.
type Codec struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewCodec builds a Codec signing with secret for issuer, with tokens valid
// for ttl from issuance.
func NewCodec(secret, issuer string, ttl time.Duration) *Codec {
	return &Codec{secret: []byte(secret), issuer: issuer, ttl: ttl}
}

type claims struct {
	jwt.RegisteredClaims
}

// Generate signs a token whose subject is the user ID, stamped with the
// current time and expiring after the configured TTL.
func (c *Codec) Generate(ctx context.Context, user auth.User) (string, error) {
	now := time.Now().UTC()
	cl := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.issuer,
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, cl)
	return token.SignedString(c.secret)
}

// Verify parses and validates a token string and returns the embedded user ID.
// Failures are reported as ErrExpired, ErrMalformed or ErrInvalidSignature;
// an elapsed expiry is always ErrExpired, never anything else.
func (c *Codec) Verify(ctx context.Context, tokenStr string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSignature
		}
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return uuid.Nil, ErrExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return uuid.Nil, ErrMalformed
		default:
			return uuid.Nil, ErrInvalidSignature
		}
	}
	if !token.Valid {
		return uuid.Nil, ErrInvalidSignature
	}

	cl, ok := token.Claims.(*claims)
	if !ok {
		return uuid.Nil, ErrMalformed
	}
	userID, err := uuid.Parse(cl.Subject)
	if err != nil {
		return uuid.Nil, ErrMalformed
	}
	return userID, nil
}
