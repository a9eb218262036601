package v1

import (
	"net/http"
	"time"

	"go-skillmatch-backend/config"
	"go-skillmatch-backend/internal/delivery/http/middleware"
	"go-skillmatch-backend/internal/delivery/http/response"
	"go-skillmatch-backend/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC     domain.AuthUsecase
	ProfileUC  domain.ProfileUsecase
	EmployerUC domain.EmployerProfileUsecase
	ResumeUC   domain.ResumeUsecase
	CourseUC   domain.CourseUsecase
	SkillUC    domain.SkillUsecase
	Config     *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RequestID())
	r.Use(middleware.GlobalRateLimitMiddleware(
		deps.Config.RateLimitGlobalThreshold,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
	))
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.AuthUC))
	{
		NewAuthHandler(v1, deps.AuthUC, deps.Config)
		NewDashboardHandler(protected, deps.AuthUC, deps.ResumeUC)
		NewProfileHandler(v1, protected, deps.ProfileUC, deps.ResumeUC)
		NewEmployerHandler(v1, protected, deps.EmployerUC)
		NewCourseHandler(v1, protected, deps.CourseUC)
		NewSkillHandler(v1, protected, deps.SkillUC)
	}

	return r
}
