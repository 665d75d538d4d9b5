package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/creativecamper/creativecamper-server/internal/config"
	"github.com/creativecamper/creativecamper-server/internal/utils"
)

// AuthHandler issues access tokens. Identity verification happens in the
// front end's auth provider; this endpoint turns an asserted email into a
// short-lived signed token the API can check statelessly.
type AuthHandler struct {
	Cfg config.Config
}

func NewAuthHandler(cfg config.Config) *AuthHandler {
	return &AuthHandler{Cfg: cfg}
}

type tokenReq struct {
	Email string `json:"email"`
}

// IssueToken handles POST /jwt: bind the email, sign a token, return it.
func (h *AuthHandler) IssueToken(c echo.Context) error {
	var req tokenReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email required"})
	}

	access, err := utils.IssueToken(h.Cfg.JWTSecret, req.Email, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"token": access.Token})
}
