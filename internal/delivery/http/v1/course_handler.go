package v1

import (
	"net/http"
	"strconv"

	"go-skillmatch-backend/internal/delivery/http/response"
	"go-skillmatch-backend/internal/domain"
	"go-skillmatch-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CourseHandler struct {
	courseUC domain.CourseUsecase
}

func NewCourseHandler(public *gin.RouterGroup, protected *gin.RouterGroup, courseUC domain.CourseUsecase) {
	handler := &CourseHandler{courseUC: courseUC}

	course := public.Group("/course")
	{
		course.GET("/list", handler.List)
		course.GET("/:id", handler.Detail)
		course.POST("/filtered", handler.Filtered)
	}

	protectedCourse := protected.Group("/course")
	{
		protectedCourse.POST("/mark_completed", handler.MarkCompleted)

		// Catalogue management, admin only (enforced in the usecase)
		protectedCourse.POST("", handler.Create)
		protectedCourse.DELETE("/:id", handler.Delete)
		protectedCourse.POST("/:id/lessons", handler.AddLesson)
	}
}

type SkillFilterRequest struct {
	Skills []int64 `json:"skills"`
}

type MarkCompletedRequest struct {
	CourseID int64 `json:"course_id" binding:"required"`
}

// List godoc
// @Summary      Course catalogue
// @Description  All courses with their tagged skills, in ID order.
// @Tags         course
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /course/list [get]
func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.courseUC.ListCourses(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Course list", courses)
}

// Detail godoc
// @Summary      Course detail
// @Description  Course with its tagged skills and lessons.
// @Tags         course
// @Produce      json
// @Param        id   path      int  true  "Course ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /course/{id} [get]
func (h *CourseHandler) Detail(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.Error(apperror.BadRequest("Invalid course ID"))
		return
	}

	course, err := h.courseUC.GetCourse(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Course details", course)
}

// Filtered godoc
// @Summary      Courses ranked by skill match
// @Description  Ranks courses by overlap with the requested skill IDs. An empty skill set returns the full catalogue unranked.
// @Tags         course
// @Accept       json
// @Produce      json
// @Param        filter  body      SkillFilterRequest  true  "Skill IDs to match against"
// @Success      200     {object}  response.Response
// @Router       /course/filtered [post]
func (h *CourseHandler) Filtered(c *gin.Context) {
	var req SkillFilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	matches, err := h.courseUC.FilterCourses(c.Request.Context(), req.Skills)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Filtered courses", matches)
}

// MarkCompleted godoc
// @Summary      Mark a course as completed
// @Description  Adds the course to the caller's completed set and its skills to the verified set. Idempotent.
// @Tags         course
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        completion  body      MarkCompletedRequest  true  "Course to complete"
// @Success      200         {object}  response.Response
// @Failure      404         {object}  response.Response
// @Router       /course/mark_completed [post]
func (h *CourseHandler) MarkCompleted(c *gin.Context) {
	var req MarkCompletedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	course, err := h.courseUC.MarkCompleted(c.Request.Context(), req.CourseID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Course marked as completed", course)
}

func (h *CourseHandler) Create(c *gin.Context) {
	var input domain.CourseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	course, err := h.courseUC.CreateCourse(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Course created", course)
}

func (h *CourseHandler) Delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.Error(apperror.BadRequest("Invalid course ID"))
		return
	}

	if err := h.courseUC.DeleteCourse(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Course deleted", nil)
}

func (h *CourseHandler) AddLesson(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.Error(apperror.BadRequest("Invalid course ID"))
		return
	}

	var input domain.LessonInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	lesson, err := h.courseUC.AddLesson(c.Request.Context(), id, input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Lesson added", lesson)
}

func parseID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}
