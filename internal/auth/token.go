package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired = errors.New("token is expired")
	ErrTokenInvalid = errors.New("token is invalid")
)

// Claims is the signed identity attached to every issued token.
type Claims struct {
	jwt.RegisteredClaims
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
	ScopeID string `json:"scope_id"`
}

// Issuer signs and verifies bearer tokens. It is built once from config at
// startup and safe for concurrent use.
type Issuer struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
}

func NewIssuer(secret []byte, algorithm string, ttl time.Duration) (*Issuer, error) {
	method := jwt.GetSigningMethod(algorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unsupported jwt algorithm %q", algorithm)
	}
	return &Issuer{secret: secret, method: method, ttl: ttl}, nil
}

// Issue signs a token carrying the user's identity and tenant scope,
// expiring after the configured lifetime.
func (i *Issuer) Issue(userID, email, scopeID string) (string, error) {
	token := jwt.NewWithClaims(i.method, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(i.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID:  userID,
		Email:   email,
		ScopeID: scopeID,
	})

	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry. It returns ErrTokenExpired for a
// well-signed but stale token and ErrTokenInvalid for everything else.
// Only the configured signing method is accepted; the token header's alg
// claim is not trusted.
func (i *Issuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != i.method.Alg() {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return i.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
