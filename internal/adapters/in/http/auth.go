package http

import (
	"errors"
	"fmt"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const actorContextKey = "actor"

// Claims is the token payload issued by the account service. The subject is
// the user id.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Authenticate verifies the HS256 bearer token and stores the caller as a
// kernel.Actor on the echo context. Requests without a valid token never
// reach the handlers.
func Authenticate(secret []byte) echo.MiddlewareFunc {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	keyFunc := func(*jwt.Token) (any, error) { return secret, nil }

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			raw, ok := bearerToken(ctx.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return errs.NewAccessDeniedError("authenticate", "request")
			}

			var claims Claims
			if _, err := parser.ParseWithClaims(raw, &claims, keyFunc); err != nil {
				return errs.NewAccessDeniedErrorWithCause("authenticate", "request", err)
			}

			actor, err := actorFromClaims(claims)
			if err != nil {
				return errs.NewAccessDeniedErrorWithCause("authenticate", "request", err)
			}

			ctx.Set(actorContextKey, actor)
			return next(ctx)
		}
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func actorFromClaims(claims Claims) (kernel.Actor, error) {
	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return kernel.Actor{}, fmt.Errorf("subject: %w", err)
	}
	role, err := kernel.ParseRole(claims.Role)
	if err != nil {
		return kernel.Actor{}, err
	}
	return kernel.NewActor(id, role)
}

func actorFrom(ctx echo.Context) (kernel.Actor, error) {
	actor, ok := ctx.Get(actorContextKey).(kernel.Actor)
	if !ok {
		return kernel.Actor{}, errs.NewAccessDeniedErrorWithCause("authenticate", "request",
			errors.New("no authenticated caller"))
	}
	return actor, nil
}
