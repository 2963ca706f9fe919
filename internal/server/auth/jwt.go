package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/notevault/internal/common"
)

// Claims carries the standard registered claims plus the username, which is
// embedded on registration only.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username,omitempty"`
}

// TokenService issues and verifies HS256-signed bearer tokens. The secret
// and validity window are fixed at construction.
type TokenService struct {
	secret   []byte
	validity time.Duration
}

func NewTokenService(secret []byte, validity time.Duration) *TokenService {
	return &TokenService{secret: secret, validity: validity}
}

// Issue signs a token for the given user. username may be empty; it is then
// omitted from the payload.
func (s *TokenService) Issue(userID, username string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.validity)),
		},
		Username: username,
	})

	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Verify checks signature and expiry and returns the embedded claims.
// Failures map to exactly one of common.ErrorTokenExpired,
// common.ErrorTokenSignatureInvalid, or common.ErrorTokenMalformed. Only
// HS256 is accepted: tokens claiming "none" or any other algorithm are
// rejected regardless of their payload.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, common.ErrorTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, common.ErrorTokenSignatureInvalid
		default:
			return nil, common.ErrorTokenMalformed
		}
	}

	if !token.Valid {
		return nil, common.ErrorTokenMalformed
	}

	return claims, nil
}
