package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vforit/ticktrack/internal/application/user/usecases"
	"github.com/vforit/ticktrack/internal/infrastructure/auth"
	"github.com/vforit/ticktrack/internal/shared/logger"
	"github.com/vforit/ticktrack/internal/shared/utils"
)

type AuthHandler struct {
	registerUC usecases.RegisterUserExecutor
	loginUC    usecases.LoginUserExecutor
	logoutUC   usecases.LogoutUserExecutor
	refreshUC  usecases.RefreshTokenExecutor
	logger     logger.Interface
}

func NewAuthHandler(
	registerUC usecases.RegisterUserExecutor,
	loginUC usecases.LoginUserExecutor,
	logoutUC usecases.LogoutUserExecutor,
	refreshUC usecases.RefreshTokenExecutor,
) *AuthHandler {
	return &AuthHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
		logoutUC:   logoutUC,
		refreshUC:  refreshUC,
		logger:     logger.NewLogger(),
	}
}

// Register handles POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for register", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "User registered successfully")
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for login", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginUserCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", result)
}

// Logout handles POST /logout. The access token presented on this request
// is revoked for the rest of its lifetime.
func (h *AuthHandler) Logout(c *gin.Context) {
	value, exists := c.Get("token_claims")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication context")
		return
	}
	claims, ok := value.(*auth.Claims)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authentication context")
		return
	}

	if err := h.logoutUC.Execute(c.Request.Context(), claims); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Logged out successfully", nil)
}

// Refresh handles POST /refresh. It exchanges a valid refresh token for a
// new non-fresh access token; the refresh token is consumed in the process.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for refresh", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.refreshUC.Execute(c.Request.Context(), req.RefreshToken)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Token refreshed successfully", result)
}
