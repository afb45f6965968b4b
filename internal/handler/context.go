package handler

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/openbid/auctiond/internal/auth"
	"github.com/openbid/auctiond/internal/errors"
)

// currentUserID extracts the authenticated user's 24-hex identifier from
// the verified token the JWT middleware stored on the request context.
func currentUserID(c echo.Context) (string, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return "", errors.Unauthorized("Missing or invalid authorization")
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok || claims.UserID == "" {
		return "", errors.Unauthorized("Invalid token: no user ID")
	}
	return claims.UserID, nil
}
