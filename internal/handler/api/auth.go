package api

import (
	"net/http"

	reqdto "travel-booking/internal/handler/dto/request"
	resdto "travel-booking/internal/handler/dto/response"
	"travel-booking/internal/handler/httperr"
	"travel-booking/internal/handler/middleware"
	"travel-booking/internal/pkg/config"
	"travel-booking/internal/pkg/cookie"
	"travel-booking/internal/pkg/jwt"
	"travel-booking/internal/usecase/commands"
	"travel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds       commands.AuthCommands
	q          queries.UserQueries
	jwtService *jwt.Service
	cfg        config.Config
}

func NewAuthHandler(cmds commands.AuthCommands, q queries.UserQueries, jwtService *jwt.Service, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		cmds:       cmds,
		q:          q,
		jwtService: jwtService,
		cfg:        cfg,
	}
}

// @Summary User login
// @Description Login with email and password. Tokens are also set as HttpOnly cookies.
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
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	user, err := h.q.GetCurrentUser(c.Request.Context(), result.UserID)
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	h.setTokens(c, result.TokenPair)
	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.TokenPair.AccessToken,
		User:        user,
	})
}

// @Summary Refresh tokens
// @Description Exchange a refresh token (cookie or body) for a new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RefreshRequest false "Refresh request"
// @Success 200 {object} resdto.TokenResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	token := cookie.GetRefreshToken(c)
	if token == "" {
		var req reqdto.RefreshRequest
		// an empty body is fine here; a missing token is reported below
		_ = c.ShouldBindJSON(&req)
		token = req.RefreshToken
	}
	if token == "" {
		httperr.AbortWithError(c, http.StatusUnauthorized, httperr.ErrUnauthorized, "Refresh token required", nil)
		return
	}

	pair, err := h.cmds.RefreshToken(c.Request.Context(), token)
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	h.setTokens(c, pair)
	c.JSON(http.StatusOK, resdto.TokenResponse{AccessToken: pair.AccessToken})
}

// @Summary User logout
// @Description Clears the token cookies
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearTokenCookies(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Get current authenticated user information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.AuthorizedUserView
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, httperr.ErrUnauthorized, "User not authenticated", nil)
		return
	}

	user, err := h.q.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) setTokens(c *gin.Context, pair *commands.TokenPair) {
	cookie.SetTokenCookies(c, h.cfg.Cookie,
		pair.AccessToken, pair.RefreshToken,
		h.jwtService.AccessDuration(), h.jwtService.RefreshDuration())
}
