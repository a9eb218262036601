package v1

import (
	"net/http"

	"go-skillmatch-backend/internal/delivery/http/response"
	"go-skillmatch-backend/internal/domain"
	"go-skillmatch-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	authUC   domain.AuthUsecase
	resumeUC domain.ResumeUsecase
}

func NewDashboardHandler(protected *gin.RouterGroup, authUC domain.AuthUsecase, resumeUC domain.ResumeUsecase) {
	handler := &DashboardHandler{authUC: authUC, resumeUC: resumeUC}

	dashboard := protected.Group("/dashboard")
	{
		dashboard.GET("/me", handler.Me)
	}
}

// Me godoc
// @Summary      Current user summary
// @Description  Returns the authenticated user's account data and resume reference.
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /dashboard/me [get]
func (h *DashboardHandler) Me(c *gin.Context) {
	userID, ok := domain.UserIDFromContext(c.Request.Context())
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	user, err := h.authUC.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	resume, err := h.resumeUC.Get(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User details", gin.H{
		"user":   user,
		"resume": resume,
	})
}
