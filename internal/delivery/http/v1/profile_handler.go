package v1

import (
	"io"
	"net/http"

	"go-skillmatch-backend/internal/delivery/http/middleware"
	"go-skillmatch-backend/internal/delivery/http/response"
	"go-skillmatch-backend/internal/domain"
	"go-skillmatch-backend/pkg/apperror"
	"go-skillmatch-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
	resumeUC  domain.ResumeUsecase
}

func NewProfileHandler(public *gin.RouterGroup, protected *gin.RouterGroup, profileUC domain.ProfileUsecase, resumeUC domain.ResumeUsecase) {
	handler := &ProfileHandler{profileUC: profileUC, resumeUC: resumeUC}

	// Public seeker profile lookup
	public.GET("/profile/:username", handler.PublicProfile)

	profile := protected.Group("/profile")
	{
		profile.GET("/me", handler.Me)
		profile.PUT("/me", handler.UpdateBio)
		profile.POST("/settype", handler.SetType)
		profile.GET("/cv", handler.GetResume)
		profile.POST("/cv", middleware.RateLimitMiddleware(middleware.UploadRateLimitConfig()), handler.UploadResume)
	}
}

type UpdateBioRequest struct {
	Bio string `json:"bio"`
}

type SetTypeRequest struct {
	UserType string `json:"user_type" binding:"required"`
}

// Me godoc
// @Summary      My profile
// @Description  Returns the seeker profile with completed courses and verified skills.
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /profile/me [get]
func (h *ProfileHandler) Me(c *gin.Context) {
	profile, err := h.profileUC.GetMyProfile(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile details", profile)
}

// UpdateBio godoc
// @Summary      Update my bio
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        profile  body      UpdateBioRequest  true  "Profile fields"
// @Success      200      {object}  response.Response
// @Router       /profile/me [put]
func (h *ProfileHandler) UpdateBio(c *gin.Context) {
	var req UpdateBioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile, err := h.profileUC.UpdateBio(c.Request.Context(), req.Bio)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated", profile)
}

// SetType godoc
// @Summary      Set account type
// @Description  Switches the account between seeker and employer.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        settype  body      SetTypeRequest  true  "seeker or employer"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /profile/settype [post]
func (h *ProfileHandler) SetType(c *gin.Context) {
	var req SetTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.profileUC.SetType(c.Request.Context(), req.UserType); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User type updated", gin.H{"user_type": req.UserType})
}

// PublicProfile godoc
// @Summary      Public seeker profile
// @Description  Looks up a seeker profile by username. Employers and unknown usernames yield 404.
// @Tags         profile
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Router       /profile/{username} [get]
func (h *ProfileHandler) PublicProfile(c *gin.Context) {
	profile, err := h.profileUC.GetPublicProfile(c.Request.Context(), c.Param("username"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile details", profile)
}

// GetResume returns the caller's resume reference, or null when nothing
// has been uploaded yet.
func (h *ProfileHandler) GetResume(c *gin.Context) {
	userID, ok := domain.UserIDFromContext(c.Request.Context())
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	resume, err := h.resumeUC.Get(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume details", resume)
}

// UploadResume godoc
// @Summary      Upload resume
// @Description  Uploads a resume file (pdf, doc, docx, txt). Replaces any previous upload.
// @Tags         profile
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "Resume file"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /profile/cv [post]
func (h *ProfileHandler) UploadResume(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.BadRequest("No file uploaded. Use multipart field 'file'."))
		return
	}

	if fileHeader.Size > security.MaxFileSize {
		c.Error(apperror.BadRequest("File exceeds the maximum allowed size"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, security.MaxFileSize+1))
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	resume, err := h.resumeUC.Upload(c.Request.Context(), fileHeader.Filename, data)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume uploaded", resume)
}
