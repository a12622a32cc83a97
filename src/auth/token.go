package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

const tokenIssuer = "pokeforge"

// ErrInvalidToken covers every verification failure: malformed input, wrong
// signing method, bad signature, expired claims. Callers treat them uniformly.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the signed session payload. It carries only the local user id;
// validity is proven by signature plus expiry, with no server-side session
// table.
type Claims struct {
	jwt.StandardClaims
	UserID int `json:"id"`
}

// TokenService issues and verifies session tokens with an injected HMAC
// secret. It holds no mutable state.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue signs a token embedding the given user id.
func (s *TokenService) Issue(userID int) (string, error) {
	now := time.Now()

	claims := &Claims{
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(s.ttl).Unix(),
			IssuedAt:  now.Unix(),
			Issuer:    tokenIssuer,
		},
		UserID: userID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(s.secret)
}

// Verify checks the signature and expiry and returns the embedded user id.
// Any failure, including malformed input, yields ErrInvalidToken.
func (s *TokenService) Verify(tokenString string) (int, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return 0, ErrInvalidToken
	}

	if !token.Valid {
		return 0, ErrInvalidToken
	}

	return claims.UserID, nil
}
