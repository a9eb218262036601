package v1

import (
	"net/http"

	"go-skillmatch-backend/internal/delivery/http/response"
	"go-skillmatch-backend/internal/domain"
	"go-skillmatch-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SkillHandler struct {
	skillUC domain.SkillUsecase
}

func NewSkillHandler(public *gin.RouterGroup, protected *gin.RouterGroup, skillUC domain.SkillUsecase) {
	handler := &SkillHandler{skillUC: skillUC}

	skills := public.Group("/skills")
	{
		skills.GET("/", handler.List)
		skills.POST("/filtered_user", handler.FilteredUsers)
	}

	// Catalogue management, admin only (enforced in the usecase)
	protected.POST("/skills/", handler.Create)
}

// List godoc
// @Summary      Skill catalogue
// @Tags         skills
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /skills/ [get]
func (h *SkillHandler) List(c *gin.Context) {
	skills, err := h.skillUC.ListSkills(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skill list", skills)
}

// FilteredUsers godoc
// @Summary      Seekers ranked by verified-skill match
// @Description  Ranks seeker profiles by overlap between their verified skills and the requested skill IDs. An empty skill set returns all seeker profiles unranked.
// @Tags         skills
// @Accept       json
// @Produce      json
// @Param        filter  body      SkillFilterRequest  true  "Skill IDs to match against"
// @Success      200     {object}  response.Response
// @Router       /skills/filtered_user [post]
func (h *SkillHandler) FilteredUsers(c *gin.Context) {
	var req SkillFilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	matches, err := h.skillUC.FilterUsers(c.Request.Context(), req.Skills)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Filtered users", matches)
}

func (h *SkillHandler) Create(c *gin.Context) {
	var input domain.SkillInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	skill, err := h.skillUC.CreateSkill(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Skill created", skill)
}
