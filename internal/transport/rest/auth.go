package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"legalease/internal/domain"
)

// register godoc
// @Summary Register an account
// @Description Creates a lawyer or client account. Clients must provide a phone number.
// @Tags Auth
// @Accept json
// @Produce json
// @Param role path string true "lawyer or client"
// @Param input body domain.RegisterRequest true "Registration data"
// @Success 201 {object} domain.User
// @Failure 400 {object} errorResponseBody "Validation failed or email taken"
// @Failure 500 {object} errorResponseBody
// @Router /auth/{role}/register [post]
func (h *Handler) register(role domain.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input domain.RegisterRequest
		if err := c.ShouldBindJSON(&input); err != nil {
			h.logger.Warn("invalid registration payload", zap.Error(err))
			badRequestResponse(c, msgInvalidBody)
			return
		}

		user, err := h.services.Auth.Register(c.Request.Context(), role, input)
		if err != nil {
			h.handleError(c, err)
			return
		}

		createdResponse(c, user)
	}
}

// login godoc
// @Summary Log in
// @Description Authenticates a lawyer or client, sets the auth cookie and returns the token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param role path string true "lawyer or client"
// @Param input body domain.LoginRequest true "Credentials"
// @Success 200 {object} domain.Token
// @Failure 400 {object} errorResponseBody
// @Failure 401 {object} errorResponseBody "Invalid email or password"
// @Failure 500 {object} errorResponseBody
// @Router /auth/{role}/login [post]
func (h *Handler) login(role domain.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input domain.LoginRequest
		if err := c.ShouldBindJSON(&input); err != nil {
			h.logger.Warn("invalid login payload", zap.Error(err))
			badRequestResponse(c, msgInvalidBody)
			return
		}

		token, err := h.services.Auth.Login(c.Request.Context(), role, input)
		if err != nil {
			h.handleError(c, err)
			return
		}

		h.setAuthCookie(c, token.AccessToken, int(token.ExpiresIn))
		successResponse(c, http.StatusOK, token)
	}
}

// logout godoc
// @Summary Log out
// @Description Clears the auth cookie.
// @Tags Auth
// @Produce json
// @Success 200 {object} messageResponseType
// @Router /auth/logout [post]
func (h *Handler) logout(c *gin.Context) {
	h.setAuthCookie(c, "", -1)
	messageResponse(c, http.StatusOK, "logged out")
}

// verify godoc
// @Summary Current account
// @Description Returns the account behind the auth cookie or bearer token.
// @Tags Auth
// @Produce json
// @Param role path string true "lawyer or client"
// @Success 200 {object} domain.User
// @Failure 401 {object} errorResponseBody
// @Failure 403 {object} errorResponseBody "Wrong role"
// @Security ApiKeyAuth
// @Router /auth/{role}/verify [get]
func (h *Handler) verify(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		unauthorizedResponse(c)
		return
	}

	user, err := h.services.Auth.Me(c.Request.Context(), principal.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	successResponse(c, http.StatusOK, user)
}

func (h *Handler) setAuthCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.config.JWT.CookieName, value, maxAge, "/", "", h.config.JWT.CookieSecure, true)
}
