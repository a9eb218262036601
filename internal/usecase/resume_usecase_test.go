package usecase_test

import (
	"context"
	"testing"

	"go-skillmatch-backend/internal/domain"
	"go-skillmatch-backend/internal/usecase"
	"go-skillmatch-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func pdfBytes() []byte {
	return []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\ntrailer\n%%EOF")
}

func TestResumeUploadStoresFileAndRow(t *testing.T) {
	resumeRepo := new(MockResumeRepo)
	store := new(MockFileStore)
	uc := usecase.NewResumeUsecase(resumeRepo, store)

	store.On("Put", mock.Anything, mock.AnythingOfType("string"), "application/pdf", pdfBytes()).Return(nil)
	store.On("URL", mock.AnythingOfType("string")).Return("https://files.example.com/cv.pdf")
	resumeRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(r *domain.Resume) bool {
		return r.UserID == 3 && r.FileKey != ""
	})).Return(nil)

	resume, err := uc.Upload(authedContext(3, domain.UserTypeSeeker), "cv.pdf", pdfBytes())

	assert.NoError(t, err)
	assert.Contains(t, resume.FileKey, "resumes/3/")
	assert.Equal(t, "https://files.example.com/cv.pdf", resume.URL)
	store.AssertExpectations(t)
	resumeRepo.AssertExpectations(t)
}

func TestResumeReuploadReplacesFileKey(t *testing.T) {
	resumeRepo := new(MockResumeRepo)
	store := new(MockFileStore)
	uc := usecase.NewResumeUsecase(resumeRepo, store)

	store.On("Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	store.On("URL", mock.Anything).Return("")
	resumeRepo.On("Upsert", mock.Anything, mock.Anything).Return(nil)

	first, err := uc.Upload(authedContext(3, domain.UserTypeSeeker), "cv.pdf", pdfBytes())
	assert.NoError(t, err)
	second, err := uc.Upload(authedContext(3, domain.UserTypeSeeker), "cv.pdf", pdfBytes())
	assert.NoError(t, err)

	// The row only ever references the newest object.
	assert.NotEqual(t, first.FileKey, second.FileKey)
	resumeRepo.AssertNumberOfCalls(t, "Upsert", 2)
}

func TestResumeUploadRejectsDisallowedTypes(t *testing.T) {
	uc := usecase.NewResumeUsecase(new(MockResumeRepo), new(MockFileStore))

	_, err := uc.Upload(authedContext(3, domain.UserTypeSeeker), "virus.exe", []byte("MZ\x90\x00"))

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
}

func TestResumeUploadRejectsMismatchedContent(t *testing.T) {
	uc := usecase.NewResumeUsecase(new(MockResumeRepo), new(MockFileStore))

	// Claims to be a PDF but isn't one.
	_, err := uc.Upload(authedContext(3, domain.UserTypeSeeker), "cv.pdf", []byte("just plain text"))

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
}

func TestResumeUploadRequiresAuth(t *testing.T) {
	uc := usecase.NewResumeUsecase(new(MockResumeRepo), new(MockFileStore))

	_, err := uc.Upload(context.Background(), "cv.pdf", pdfBytes())

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 401, appErr.Code)
}

func TestResumeGetWithoutUpload(t *testing.T) {
	resumeRepo := new(MockResumeRepo)
	uc := usecase.NewResumeUsecase(resumeRepo, new(MockFileStore))

	resumeRepo.On("GetByUserID", mock.Anything, int64(3)).Return(nil, nil)

	resume, err := uc.Get(context.Background(), 3)

	assert.NoError(t, err)
	assert.Nil(t, resume)
}
