package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is the token lifetime used when no override is given.
const DefaultTokenTTL = 7 * 24 * time.Hour

var (
	// ErrNoSecret means the codec was constructed without a signing secret.
	// This is a configuration failure and should abort startup.
	ErrNoSecret = errors.New("auth: signing secret is not configured")

	// ErrInvalidToken covers bad signature, wrong algorithm, malformed or
	// expired tokens, and payloads that do not decode to a claim object.
	ErrInvalidToken = errors.New("invalid token")
)

// Claims is the identity payload carried inside a signed token.
type Claims struct {
	UserID int64 `json:"userId"`
	Role   Role  `json:"role"`
	jwt.RegisteredClaims
}

// Codec issues and verifies HS256-signed identity tokens against a single
// process-wide secret. It is safe for concurrent use: the secret is set at
// construction and never mutated.
type Codec struct {
	secret     []byte
	defaultTTL time.Duration
}

func NewCodec(secret string, defaultTTL time.Duration) (*Codec, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}
	if defaultTTL <= 0 {
		defaultTTL = DefaultTokenTTL
	}
	return &Codec{secret: []byte(secret), defaultTTL: defaultTTL}, nil
}

// Issue signs a token for the given principal. A zero ttl means the codec's
// default lifetime.
func (c *Codec) Issue(userID int64, role Role, ttl time.Duration) (string, error) {
	if userID <= 0 || !role.Valid() {
		return "", fmt.Errorf("%w: incomplete claim", ErrInvalidToken)
	}
	if ttl <= 0 {
		ttl = c.defaultTTL
	}

	now := time.Now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify parses and validates a token. Signature, algorithm and expiry are
// all checked; a token whose payload is not a structured claim carrying a
// user id is rejected.
func (c *Codec) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", token.Method.Alg())
		}
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.UserID <= 0 {
		return nil, fmt.Errorf("%w: missing user id", ErrInvalidToken)
	}
	if !claims.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidToken, claims.Role)
	}
	return claims, nil
}
