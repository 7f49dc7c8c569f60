package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"autocrm/internal/application/user/usecases"
	"autocrm/internal/infrastructure/auth"
	"autocrm/internal/shared/config"
	"autocrm/internal/shared/constants"
	"autocrm/internal/shared/errors"
	"autocrm/internal/shared/logger"
	"autocrm/internal/shared/utils"
)

type AuthHandler struct {
	registerUC       usecases.RegisterUserExecutor
	loginUC          usecases.LoginUserExecutor
	getCurrentUserUC usecases.GetCurrentUserExecutor
	jwtService       *auth.JWTService
	cookieConfig     config.CookieConfig
	accessMaxAge     int
	refreshMaxAge    int
	logger           logger.Interface
}

func NewAuthHandler(
	registerUC usecases.RegisterUserExecutor,
	loginUC usecases.LoginUserExecutor,
	getCurrentUserUC usecases.GetCurrentUserExecutor,
	jwtService *auth.JWTService,
	authConfig config.AuthConfig,
) *AuthHandler {
	return &AuthHandler{
		registerUC:       registerUC,
		loginUC:          loginUC,
		getCurrentUserUC: getCurrentUserUC,
		jwtService:       jwtService,
		cookieConfig:     authConfig.Cookie,
		accessMaxAge:     authConfig.JWT.AccessExpMinutes * 60,
		refreshMaxAge:    authConfig.JWT.RefreshExpDays * 24 * 60 * 60,
		logger:           logger.NewLogger(),
	}
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required,max=100"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type PasswordResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// AuthResponse is the body returned on register, login and refresh. Tokens
// also travel as HttpOnly cookies; the body copy serves non-browser clients.
type AuthResponse struct {
	UserID      uint   `json:"user_id"`
	Email       string `json:"email"`
	Name        string `json:"name,omitempty"`
	Role        string `json:"role"`
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for register", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	cmd := usecases.RegisterUserCommand{
		Email:         req.Email,
		Password:      req.Password,
		Name:          req.Name,
		RequestedRole: req.Role,
	}

	result, err := h.registerUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SetAuthCookies(c, h.cookieConfig, result.AccessToken, result.RefreshToken, h.accessMaxAge, h.refreshMaxAge)

	utils.CreatedResponse(c, AuthResponse{
		UserID:      result.UserID,
		Email:       result.Email,
		Name:        result.Name,
		Role:        result.Role,
		AccessToken: result.AccessToken,
		ExpiresIn:   result.ExpiresIn,
	}, "User registered successfully")
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for login", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	cmd := usecases.LoginUserCommand{
		Email:    req.Email,
		Password: req.Password,
	}

	result, err := h.loginUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SetAuthCookies(c, h.cookieConfig, result.AccessToken, result.RefreshToken, h.accessMaxAge, h.refreshMaxAge)

	utils.SuccessResponse(c, http.StatusOK, "Login successful", AuthResponse{
		UserID:      result.UserID,
		Email:       result.Email,
		Name:        result.Name,
		Role:        result.Role,
		AccessToken: result.AccessToken,
		ExpiresIn:   result.ExpiresIn,
	})
}

// RefreshToken handles POST /auth/refresh. The refresh token is read from
// its cookie; a fresh pair is issued and both cookies are rotated.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	token := utils.GetTokenFromCookie(c, utils.RefreshTokenCookie)
	if token == "" {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing refresh token")
		return
	}

	claims, err := h.jwtService.Verify(token)
	if err != nil {
		h.logger.Warnw("failed to verify refresh token", "error", err)
		utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired refresh token")
		return
	}

	if claims.TokenType != auth.TokenTypeRefresh {
		utils.ErrorResponse(c, http.StatusUnauthorized, "invalid token type")
		return
	}

	pair, err := h.jwtService.Generate(claims.UserID, claims.Email, claims.Role)
	if err != nil {
		h.logger.Errorw("failed to generate tokens on refresh", "user_id", claims.UserID, "error", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "failed to refresh tokens")
		return
	}

	utils.SetAuthCookies(c, h.cookieConfig, pair.AccessToken, pair.RefreshToken, h.accessMaxAge, h.refreshMaxAge)

	utils.SuccessResponse(c, http.StatusOK, "Token refreshed", AuthResponse{
		UserID:      claims.UserID,
		Email:       claims.Email,
		Role:        string(claims.Role),
		AccessToken: pair.AccessToken,
		ExpiresIn:   pair.ExpiresIn,
	})
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.ClearAuthCookies(c, h.cookieConfig)
	utils.SuccessResponse(c, http.StatusOK, "Logged out successfully", nil)
}

// GetCurrentUser handles GET /auth/me
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	userID := c.GetUint(constants.ContextKeyUserID)

	result, err := h.getCurrentUserUC.Execute(c.Request.Context(), usecases.GetCurrentUserQuery{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// RequestPasswordReset handles POST /auth/password-reset. The response is
// the same whether or not the address exists, so it cannot be used to probe
// for accounts.
func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req PasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	h.logger.Infow("password reset requested", "email", req.Email)

	utils.SuccessResponse(c, http.StatusOK, "If the account exists, a password reset email has been sent", nil)
}
