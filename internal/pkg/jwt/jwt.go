package jwt

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenInvalid  = errors.New("invalid token")
	ErrTokenExpired  = errors.New("token expired")
	ErrSecretMissing = errors.New("token secret not configured")
)

type Service struct {
	secret []byte
	ttl    time.Duration
}

// Claims carries the admin identifier; everything else comes from the
// registered claims.
type Claims struct {
	AdminID string `json:"id"`
	jwtlib.RegisteredClaims
}

func New(secret string, ttl time.Duration) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (s *Service) GenerateToken(adminID string) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrSecretMissing
	}

	now := time.Now()
	claims := Claims{
		AdminID: adminID,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwtlib.NewNumericDate(now),
		},
	}

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken checks signature and expiry. The returned error is one of
// ErrTokenInvalid, ErrTokenExpired or ErrSecretMissing.
func (s *Service) ValidateToken(tokenStr string) (*Claims, error) {
	if len(s.secret) == 0 {
		return nil, ErrSecretMissing
	}

	token, err := jwtlib.ParseWithClaims(tokenStr, &Claims{}, func(t *jwtlib.Token) (any, error) {
		return s.secret, nil
	}, jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.AdminID == "" {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
