package api

import (
	"net/http"

	reqdto "hotel-frontdesk/internal/handler/dto/request"
	resdto "hotel-frontdesk/internal/handler/dto/response"
	"hotel-frontdesk/internal/handler/httperr"
	"hotel-frontdesk/internal/handler/middleware"
	"hotel-frontdesk/internal/pkg/config"
	"hotel-frontdesk/internal/pkg/cookie"
	"hotel-frontdesk/internal/pkg/errs"
	"hotel-frontdesk/internal/pkg/jwt"
	"hotel-frontdesk/internal/usecase/commands"
	"hotel-frontdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errNoStaffInContext = errs.New("staff id missing from context")

type AuthHandler struct {
	cmds       commands.AuthCommands
	q          queries.StaffQueries
	jwtService *jwt.Service
	cookies    config.CookieConfig
}

func NewAuthHandler(cmds commands.AuthCommands, q queries.StaffQueries, jwtService *jwt.Service, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		cmds:       cmds,
		q:          q,
		jwtService: jwtService,
		cookies:    cfg.Cookie,
	}
}

// @Summary Staff login
// @Description Login with email and password. Tokens are also set as cookies.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}

	credentials, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), credentials)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	h.setCookies(c, result.TokenPair)
	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.TokenPair.AccessToken,
		StaffID:     result.StaffID.String(),
		Role:        result.Role.String(),
	})
}

// @Summary Refresh tokens
// @Description Issue a new token pair from the refresh token cookie or body
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RefreshRequest false "Refresh token when no cookie is sent"
// @Success 200 {object} resdto.RefreshResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	token := cookie.GetRefreshToken(c)
	if token == "" {
		var req reqdto.RefreshRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			token = req.RefreshToken
		}
	}
	if token == "" {
		httperr.AbortWithError(c, http.StatusUnauthorized, commands.ErrTokenValidation, "Refresh token required", nil)
		return
	}

	pair, err := h.cmds.RefreshToken(c.Request.Context(), token)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	h.setCookies(c, pair)
	c.JSON(http.StatusOK, resdto.RefreshResponse{AccessToken: pair.AccessToken})
}

// @Summary Staff logout
// @Description Clear the session cookies
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearTokenCookies(c, h.cookies)
	c.Status(http.StatusNoContent)
}

// @Summary Current staff member
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.StaffResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	staffID, ok := middleware.GetStaffID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoStaffInContext, "Internal server error", nil)
		return
	}

	view, err := h.q.GetCurrentStaff(c.Request.Context(), staffID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromStaffView(view))
}

func (h *AuthHandler) setCookies(c *gin.Context, pair *commands.TokenPair) {
	accessTTL, refreshTTL := h.jwtService.AccessDuration(), h.jwtService.RefreshDuration()
	cookie.SetTokenCookies(c, h.cookies, pair.AccessToken, pair.RefreshToken, accessTTL, refreshTTL)
}
