package token

import (
	"net/http"
	Error "quarry/packages/common/errors"
)

var TokenMalformed = Error.NewStatusError(
	"Token is malformed or has invalid format",
	// According to RFC 7235 (https://datatracker.ietf.org/doc/html/rfc7235#section-3.1)
	// 401 response status code indicates that the request lacks VALID authentication credentials,
	// no matter if token was invalid, missing or auth creditinals is invalid.
	http.StatusUnauthorized,
)

var TokenExpired = Error.NewStatusError(
	"Token expired",
	http.StatusUnauthorized,
)

var TokenNotValidYet = Error.NewStatusError(
	"Token is not valid yet",
	http.StatusUnauthorized,
)

var TokenInvalidSignature = Error.NewStatusError(
	"Invalid Token Signature",
	http.StatusUnauthorized,
)

var TokenMissingRequiredClaims = Error.NewStatusError(
	"At least one of required token claims is missing",
	http.StatusUnauthorized,
)

var TokenAudienceMismatch = Error.NewStatusError(
	"Token not valid for this audience",
	http.StatusUnauthorized,
)

func IsTokenError(err *Error.Status) bool {
	return err == TokenMalformed ||
		err == TokenExpired ||
		err == TokenNotValidYet ||
		err == TokenInvalidSignature ||
		err == TokenMissingRequiredClaims ||
		err == TokenAudienceMismatch
}
