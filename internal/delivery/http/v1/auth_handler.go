package v1

import (
	"net/http"
	"time"

	"go-skillmatch-backend/config"
	"go-skillmatch-backend/internal/delivery/http/middleware"
	"go-skillmatch-backend/internal/delivery/http/response"
	"go-skillmatch-backend/internal/domain"
	"go-skillmatch-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

func NewAuthHandler(public *gin.RouterGroup, authUC domain.AuthUsecase, cfg *config.Config) {
	handler := &AuthHandler{authUC: authUC}

	window := time.Duration(cfg.RateLimitWindowSeconds) * time.Second

	auth := public.Group("/auth")
	{
		auth.POST("/signup", middleware.RateLimitMiddleware(middleware.AuthRateLimitConfig(window)), handler.Signup)
		auth.POST("/login", middleware.RateLimitMiddleware(middleware.LoginRateLimitConfig(cfg.RateLimitLoginThreshold, window)), handler.Login)
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Signup godoc
// @Summary      User Registration
// @Description  Register a new user. Returns a bearer token; any prior token for the same user is invalidated.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        signup  body      domain.SignupInput  true  "Registration details"
// @Success      201     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Failure      409     {object}  response.Response
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var input domain.SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	key, err := h.authUC.Signup(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Signup successful", gin.H{"token": key})
}

// Login godoc
// @Summary      User Login
// @Description  Login with username and password. Returns a fresh bearer token and invalidates the previous one.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login  body      LoginRequest  true  "Login credentials"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	key, err := h.authUC.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Login successful", gin.H{"token": key})
}
