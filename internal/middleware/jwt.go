package middleware // middleware provides shared request processing for handlers

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// ContextEmailKey is the context key under which JWTAuth stores the
// authenticated caller's email. Role and self guards read identity from this
// key only, never from request parameters, so a client cannot spoof another
// user by editing the URL or body.
const ContextEmailKey = "email"

// JWTAuth returns an Echo middleware that validates a Bearer access token
// and injects the token's email claim into the request context. The provided
// secret must match the one used when issuing tokens. This middleware must
// wrap every protected route; role and self guards assume it has already run.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// A valid header starts with "Bearer " followed by the JWT.
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": true, "message": "unauthorized access"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			// Parse with HS256 and our secret. The callback pins the signing
			// algorithm; tokens signed with anything else are rejected.
			tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.ErrUnauthorized
				}
				return []byte(secret), nil
			})
			// Expired, tampered and malformed tokens all land here.
			if err != nil || !tok.Valid {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": true, "message": "unauthorized access"})
			}

			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": true, "message": "unauthorized access"})
			}
			email, _ := claims["email"].(string)
			if email == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": true, "message": "unauthorized access"})
			}

			c.Set(ContextEmailKey, email)
			return next(c)
		}
	}
}
