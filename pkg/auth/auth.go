package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

type contextKey int

const identityKey contextKey = iota + 1

var (
	ErrNoIdentity   = errors.New("identity is missing")
	ErrTokenInvalid = errors.New("token is invalid")
	ErrTokenExpired = errors.New("token is expired")
)

type Config struct {
	JWTSecret string        `envconfig:"AUTH_JWT_SECRET" default:"library-desk-dev-secret"`
	Issuer    string        `envconfig:"AUTH_ISSUER" default:"library-desk"`
	TokenTTL  time.Duration `envconfig:"AUTH_TOKEN_TTL" default:"24h"`
}

// Identity is the authenticated caller as stated by the token issuer.
type Identity struct {
	ID    string
	Email string
}

type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func NewToken(cfg Config, ident Identity, now time.Time) (string, error) {
	claims := Claims{
		Email: ident.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   ident.ID,
			Issuer:    cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWTSecret))
}

func ParseToken(cfg Config, tokenStr string) (Identity, error) {
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil {
		var vErr *jwt.ValidationError
		if errors.As(err, &vErr) && vErr.Errors&jwt.ValidationErrorExpired != 0 {
			return Identity{}, ErrTokenExpired
		}
		return Identity{}, ErrTokenInvalid
	}
	if !token.Valid || claims.Subject == "" {
		return Identity{}, ErrTokenInvalid
	}
	return Identity{ID: claims.Subject, Email: claims.Email}, nil
}

func SetAuthContext(ctx context.Context, ident Identity) context.Context {
	return context.WithValue(ctx, identityKey, ident)
}

func FromContext(ctx context.Context) (Identity, error) {
	ident, ok := ctx.Value(identityKey).(Identity)
	if !ok || ident.ID == "" {
		return Identity{}, ErrNoIdentity
	}
	return ident, nil
}
