// Package auth serves the admin login and logout surface.
package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/diegoportaz91-dot/saludvalleuco/internal/handler"
	"github.com/diegoportaz91-dot/saludvalleuco/internal/middleware"
	authService "github.com/diegoportaz91-dot/saludvalleuco/internal/service/auth"
)

type Handler struct {
	service *authService.Service
	auth    *middleware.AuthMiddleware
	secure  bool
}

// NewHandler builds the login handler. secure controls the cookie's Secure
// flag and should be true in production.
func NewHandler(service *authService.Service, auth *middleware.AuthMiddleware, secure bool) *Handler {
	return &Handler{service: service, auth: auth, secure: secure}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/login", h.LoginPage)
	r.POST("/login", h.Login)
}

// RegisterAdminRoutes registers the routes behind the auth gate.
func (h *Handler) RegisterAdminRoutes(r *gin.RouterGroup) {
	r.GET("/logout", h.Logout)
}

// LoginPage redirects already-authenticated visitors straight to the
// dashboard.
func (h *Handler) LoginPage(c *gin.Context) {
	if h.auth.Authenticated(c) {
		c.Redirect(http.StatusFound, "/admin")
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"next": c.Query("next"),
	}))
}

type loginRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

func (h *Handler) Login(c *gin.Context) {
	if h.auth.Authenticated(c) {
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("usuario y contraseña son obligatorios"))
		return
	}

	token, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, authService.ErrInvalidCredentials) {
			// Same message for unknown user and wrong password.
			c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("Usuario o contraseña incorrectos"))
			return
		}
		handler.RespondError(c, err)
		return
	}

	maxAge := int(h.service.SessionExpiry().Seconds())
	c.SetCookie(middleware.SessionCookie, token, maxAge, "/", "", h.secure, true)
	c.Redirect(http.StatusFound, safeNext(c.Query("next")))
}

func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", h.secure, true)
	c.Redirect(http.StatusFound, "/")
}

// safeNext keeps post-login redirects on this site. Anything that is not a
// local path falls back to the dashboard.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/admin"
	}
	return next
}
