package usecase

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"go-skillmatch-backend/internal/domain"
	"go-skillmatch-backend/pkg/apperror"
	"go-skillmatch-backend/pkg/security"

	"github.com/google/uuid"
)

type resumeUsecase struct {
	resumeRepo domain.ResumeRepository
	store      domain.FileStore
}

func NewResumeUsecase(resumeRepo domain.ResumeRepository, store domain.FileStore) domain.ResumeUsecase {
	return &resumeUsecase{
		resumeRepo: resumeRepo,
		store:      store,
	}
}

func (u *resumeUsecase) Upload(ctx context.Context, filename string, data []byte) (*domain.Resume, error) {
	userID, ok := domain.UserIDFromContext(ctx)
	if !ok {
		return nil, apperror.Unauthorized("User not authenticated")
	}

	detectedMIME := http.DetectContentType(data)
	result := security.ValidateFile(filename, data, detectedMIME)
	if !result.Valid {
		return nil, apperror.BadRequest(result.Error)
	}

	// Random object key per upload; the row only ever points at the latest
	// one, which gives replace-not-version semantics.
	ext := strings.ToLower(filepath.Ext(filename))
	key := fmt.Sprintf("resumes/%d/%s%s", userID, uuid.NewString(), ext)

	if err := u.store.Put(ctx, key, result.DetectedMIME, data); err != nil {
		return nil, apperror.Internal(err)
	}

	resume := &domain.Resume{UserID: userID, FileKey: key}
	if err := u.resumeRepo.Upsert(ctx, resume); err != nil {
		return nil, apperror.Internal(err)
	}
	resume.URL = u.store.URL(resume.FileKey)
	return resume, nil
}

func (u *resumeUsecase) Get(ctx context.Context, userID int64) (*domain.Resume, error) {
	resume, err := u.resumeRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if resume != nil {
		resume.URL = u.store.URL(resume.FileKey)
	}
	return resume, nil
}
