package middleware

import (
	"net/http"
	"quarry/packages/common/config"
	Error "quarry/packages/common/errors"
	"quarry/packages/common/util"
	"quarry/packages/infrastructure/token"
	"quarry/packages/presentation/api/http/request"
	"slices"
	"strings"

	"github.com/labstack/echo/v4"
)

const claimsKey = "access_token_claims"

var invalidAuthorizationHeaderFormat = echo.NewHTTPError(
	http.StatusUnauthorized,
	"Authorization header has invalid format. Expected token bearer format. ('Bearer <token>')",
)

var insufficientRoles = echo.NewHTTPError(
	http.StatusForbidden,
	"You don't have permission to perform this action",
)

func applyWWWAuthenticate(ctx echo.Context, errCode string, description string) {
	ctx.Response().Header().Set(
		"WWW-Authenticate",
		`Bearer realm="api", error="`+errCode+`", error_description="`+description+`"`,
	)
}

// Allows access only for requests with valid access token,
// issued for this service by the identity service.
func Secure(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		reqMeta := request.GetMetadata(ctx)

		log.Debug("Route "+ctx.Request().Method+" "+ctx.Path()+" is secured", reqMeta)
		log.Trace("Extracting access token from the request...", reqMeta)

		authHeader := ctx.Request().Header.Get("Authorization")
		if strings.TrimSpace(authHeader) == "" {
			applyWWWAuthenticate(ctx, "invalid_request", "No token provided")
			return Error.StatusUnauthorized
		}

		accessTokenStr, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || accessTokenStr == "" || strings.Contains(accessTokenStr, " ") {
			return invalidAuthorizationHeaderFormat
		}

		claims, err := token.ParseSignedToken(
			accessTokenStr,
			config.Secret.AccessTokenPublicKey,
			config.App.ServiceID,
		)
		if err != nil {
			log.Error("Failed to extract access token from the request", err.Error(), reqMeta)

			if token.IsTokenError(err) {
				applyWWWAuthenticate(
					ctx,
					util.Ternary(err == token.TokenExpired, "expired_token", "invalid_token"),
					err.Error(),
				)
			}
			return err
		}

		ctx.Set(claimsKey, claims)

		log.Trace("Extracting access token from the request: OK", reqMeta)

		return next(ctx)
	}
}

// Can be used only after Secure middleware, otherwise will cause panic.
func GetClaims(ctx echo.Context) *token.Claims {
	claims, ok := ctx.Get(claimsKey).(*token.Claims)
	if !ok {
		log.Panic(
			"Failed to get access token claims",
			"Claims weren't found in request context, check if Secure middleware applied correctly",
			request.GetMetadata(ctx),
		)
		return nil
	}
	return claims
}

// Allows access only if access token has at least one of the given roles.
// Must be applied after Secure middleware.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims := GetClaims(ctx)

			for _, role := range roles {
				if slices.Contains(claims.Roles, role) {
					return next(ctx)
				}
			}

			log.Warning("Access denied: '"+claims.Subject+"' lacks required role", request.GetMetadata(ctx))

			return insufficientRoles
		}
	}
}
