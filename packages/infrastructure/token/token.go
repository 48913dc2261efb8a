package token

import (
	"crypto/ed25519"
	"errors"
	"fmt"
	Error "quarry/packages/common/errors"
	"quarry/packages/common/logger"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var tokenLogger = logger.NewSource("TOKEN", logger.Default)

// Access tokens are issued by the identity service, this service only verifies them.
// Must match RFC 9068
// (https://datatracker.ietf.org/doc/rfc9068/)

type Claims struct {
	Roles []string `json:"roles"`
	Login string   `json:"login"`

	jwt.RegisteredClaims
}

var jwtParserOptions = []jwt.ParserOption{
	jwt.WithLeeway(5 * time.Second),
	jwt.WithExpirationRequired(),
	jwt.WithIssuedAt(),
}

func ed25519KeyFunc(key ed25519.PublicKey) func(token *jwt.Token) (any, error) {
	return func(token *jwt.Token) (any, error) {
		// RFC 9068 p2.1
		if _, ok := token.Method.(*jwt.SigningMethodEd25519); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return key, nil
	}
}

// Parses and validates given token.
// Token must be signed by key and issued for the given audience.
func ParseSignedToken(tokenStr string, key ed25519.PublicKey, audience string) (*Claims, *Error.Status) {
	claims := &Claims{}

	options := append(jwtParserOptions, jwt.WithAudience(audience))

	_, err := jwt.ParseWithClaims(tokenStr, claims, ed25519KeyFunc(key), options...)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, TokenMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, TokenExpired
		case errors.Is(err, jwt.ErrTokenNotValidYet), errors.Is(err, jwt.ErrTokenUsedBeforeIssued):
			return nil, TokenNotValidYet
		case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
			return nil, TokenInvalidSignature
		case errors.Is(err, jwt.ErrTokenInvalidAudience):
			return nil, TokenAudienceMismatch
		case errors.Is(err, jwt.ErrTokenRequiredClaimMissing):
			return nil, TokenMissingRequiredClaims
		default:
			tokenLogger.Error("Failed to parse signed token", err.Error(), nil)
			return nil, Error.StatusInternalError
		}
	}

	// RFC 9068 p2.2
	if claims.Issuer == "" ||
		claims.Subject == "" ||
		claims.IssuedAt == nil ||
		claims.ID == "" {
		return nil, TokenMissingRequiredClaims
	}

	return claims, nil
}
