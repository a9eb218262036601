package v1

import (
	"net/http"

	"go-skillmatch-backend/internal/delivery/http/response"
	"go-skillmatch-backend/internal/domain"
	"go-skillmatch-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type EmployerHandler struct {
	employerUC domain.EmployerProfileUsecase
}

func NewEmployerHandler(public *gin.RouterGroup, protected *gin.RouterGroup, employerUC domain.EmployerProfileUsecase) {
	handler := &EmployerHandler{employerUC: employerUC}

	public.GET("/employer/profile/:username", handler.PublicProfile)

	employer := protected.Group("/employer/profile")
	{
		employer.GET("/me", handler.Me)
		employer.PUT("/me", handler.Update)
	}
}

// Me godoc
// @Summary      My employer profile
// @Tags         employer
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /employer/profile/me [get]
func (h *EmployerHandler) Me(c *gin.Context) {
	profile, err := h.employerUC.GetMyProfile(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Employer profile details", profile)
}

// Update godoc
// @Summary      Update my employer profile
// @Tags         employer
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        profile  body      domain.EmployerProfileInput  true  "Employer profile fields"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /employer/profile/me [put]
func (h *EmployerHandler) Update(c *gin.Context) {
	var input domain.EmployerProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile, err := h.employerUC.UpdateMyProfile(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Employer profile updated", profile)
}

// PublicProfile godoc
// @Summary      Public employer profile
// @Tags         employer
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Router       /employer/profile/{username} [get]
func (h *EmployerHandler) PublicProfile(c *gin.Context) {
	profile, err := h.employerUC.GetPublicProfile(c.Request.Context(), c.Param("username"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Employer profile details", profile)
}
