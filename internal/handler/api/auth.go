package api

import (
	"net/http"

	reqdto "grooming-salon/internal/handler/dto/request"
	resdto "grooming-salon/internal/handler/dto/response"
	"grooming-salon/internal/handler/httperr"
	"grooming-salon/internal/handler/middleware"
	"grooming-salon/internal/pkg/clock"
	"grooming-salon/internal/pkg/config"
	"grooming-salon/internal/pkg/cookie"
	"grooming-salon/internal/pkg/errs"
	"grooming-salon/internal/usecase/commands"
	"grooming-salon/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds      commands.AuthCommands
	users     queries.UserQueries
	cookieCfg config.CookieConfig
	clock     clock.Clock
}

func NewAuthHandler(cmds commands.AuthCommands, users queries.UserQueries, cookieCfg config.CookieConfig, clk clock.Clock) *AuthHandler {
	return &AuthHandler{cmds: cmds, users: users, cookieCfg: cookieCfg, clock: clk}
}

// @Summary User login
// @Description Login with email and password. The token is returned in the body and set as an HttpOnly cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req)
	if err != nil {
		if errs.Is(err, errs.ErrUnauthenticated) {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
			return
		}
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	u, err := h.users.GetCurrentUser(c.Request.Context(), result.UserID)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	if ttl := result.ExpiresAt.Sub(h.clock.Now()); ttl > 0 {
		cookie.SetAccessToken(c, h.cookieCfg, result.AccessToken, ttl)
	}
	c.JSON(http.StatusOK, resdto.NewLoginResponse(result.AccessToken, result.ExpiresAt, u))
}

// @Summary User logout
// @Description Clears the access token cookie
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAccessToken(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Get current authenticated user information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "User not authenticated", nil)
		return
	}

	u, err := h.users.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserView(u))
}
