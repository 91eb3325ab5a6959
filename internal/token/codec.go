package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Claims carries the identity data embedded in a session token for the
// duration of one request.
type Claims struct {
	Email string
	Extra map[string]any
}

// Codec mints and verifies HS256 signed session tokens. The secret is
// process-wide and immutable, so a Codec is safe for concurrent use.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewCodec constructs a codec with the given signing secret and token
// lifetime.
func NewCodec(secret []byte, ttl time.Duration) *Codec {
	return &Codec{secret: secret, ttl: ttl, now: time.Now}
}

// Mint signs the claims into a token with a fixed expiry. Claim
// contents are embedded as supplied, without validation.
func (c *Codec) Mint(claims Claims) (string, error) {
	now := c.now()
	mapped := jwt.MapClaims{}
	for k, v := range claims.Extra {
		mapped[k] = v
	}
	mapped["email"] = claims.Email
	mapped["iat"] = now.Unix()
	mapped["exp"] = now.Add(c.ttl).Unix()
	return jwt.NewWithClaims(jwt.SigningMethodHS256, mapped).SignedString(c.secret)
}

// Verify checks the token signature and expiry and returns the embedded
// claims unchanged. A token past its expiry fails with ErrExpiredToken;
// any other defect fails with ErrInvalidToken.
func (c *Codec) Verify(tokenString string) (Claims, error) {
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(c.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrExpiredToken
		}
		return Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	mapped, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return Claims{}, ErrInvalidToken
	}

	claims := Claims{Extra: make(map[string]any)}
	for k, v := range mapped {
		switch k {
		case "email":
			claims.Email, _ = v.(string)
		case "iat", "exp":
		default:
			claims.Extra[k] = v
		}
	}
	return claims, nil
}
