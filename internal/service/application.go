package service

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"strconv"
	"time"

	"fieldforce/internal/core"
	"fieldforce/internal/database/mongodb/model"
	mongoRepo "fieldforce/internal/database/mongodb/repository"
	"fieldforce/internal/dto"
	cErr "fieldforce/internal/pkg/error"
	"fieldforce/internal/pkg/request"
	"fieldforce/internal/storage"
	"fieldforce/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type applicationStore interface {
	Create(contextValue context.Context, application *model.Application) (*model.Application, error)
	ListByJob(contextValue context.Context, jobIdentifier primitive.ObjectID) ([]*model.Application, error)
	CountByJob(contextValue context.Context, jobIdentifier primitive.ObjectID) (int64, error)
}

type jobFinder interface {
	GetByID(contextValue context.Context, jobIdentifier primitive.ObjectID) (*model.Job, error)
}

type ApplicationService struct {
	trace           *telemetry.Trace
	applicationRepo applicationStore
	jobRepo         jobFinder
	resumeStore     storage.ResumeStore
}

func NewApplicationService(trace *telemetry.Trace, applicationRepo *mongoRepo.ApplicationRepository, jobRepo *mongoRepo.JobRepository, resumeStore storage.ResumeStore) *ApplicationService {
	return &ApplicationService{
		trace:           trace,
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		resumeStore:     resumeStore,
	}
}

// SubmitApplication 求職表單：先驗證業務規則，有附件就先上傳，
// 上傳失敗整筆失敗，不會留下沒有履歷的 application 文件
func (s *ApplicationService) SubmitApplication(ctx context.Context, submitDto *dto.SubmitApplicationDto) (_ *model.Application, returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	if !submitDto.ConfirmInfo {
		returnedError = request.FieldError("confirmInfo", "you must confirm the information is accurate")
		return nil, returnedError
	}
	if !submitDto.AgreeTerms {
		returnedError = request.FieldError("agreeTerms", "you must agree to the terms")
		return nil, returnedError
	}

	jobID, parseError := primitive.ObjectIDFromHex(submitDto.JobID)
	if parseError != nil {
		returnedError = request.FieldError("jobId", "job id is invalid")
		return nil, returnedError
	}

	if _, getJobError := s.jobRepo.GetByID(ctx, jobID); getJobError != nil {
		if errors.Is(getJobError, mongo.ErrNoDocuments) {
			returnedError = cErr.NotFound("job not found")
			return nil, returnedError
		}
		returnedError = cErr.DatabaseError("database SubmitApplication error")
		return nil, returnedError
	}

	// binding 已確認 numeric，這裡解析不會失敗
	graduationYear, _ := strconv.Atoi(submitDto.GraduationYear)
	experienceYears, _ := strconv.Atoi(submitDto.ExperienceYrs)

	application := &model.Application{
		JobID:          jobID,
		FullName:       submitDto.FullName,
		Email:          submitDto.Email,
		Mobile:         submitDto.Mobile,
		HighestDegree:  submitDto.HighestDegree,
		Institution:    submitDto.Institution,
		GraduationYear: graduationYear,
		ExperienceYrs:  experienceYears,
		CurrentCompany: submitDto.CurrentCompany,
		Skills:         submitDto.Skills,
		Languages:      submitDto.Languages,
		ConfirmInfo:    submitDto.ConfirmInfo,
		AgreeTerms:     submitDto.AgreeTerms,
		SubmittedAt:    time.Now().UTC(),
	}

	if submitDto.Resume != nil && submitDto.Resume.Size > 0 {
		resumeURL, uploadError := s.uploadResume(ctx, submitDto.JobID, submitDto.Resume)
		if uploadError != nil {
			returnedError = uploadError
			return nil, returnedError
		}
		application.ResumeURL = resumeURL
		s.trace.ApplyTraceAttributes(span, core.TraceSubmissionMeta{
			Form:        "application",
			JobID:       submitDto.JobID,
			ResumeBytes: submitDto.Resume.Size,
		})
	}

	created, createError := s.applicationRepo.Create(ctx, application)
	if createError != nil {
		returnedError = cErr.DatabaseError("database SubmitApplication error")
		return nil, returnedError
	}
	return created, nil
}

func (s *ApplicationService) uploadResume(ctx context.Context, jobID string, fileHeader *multipart.FileHeader) (string, error) {
	file, openError := fileHeader.Open()
	if openError != nil {
		return "", cErr.UploadError("failed to read resume file")
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	resumeURL, uploadError := s.resumeStore.Upload(ctx, jobID, fileHeader.Filename, contentType, io.Reader(file))
	if uploadError != nil {
		return "", cErr.UploadError("failed to store resume")
	}
	return resumeURL, nil
}

// ListByJob 後台依職缺檢視應徵，submittedAt desc
func (s *ApplicationService) ListByJob(ctx context.Context, jobID primitive.ObjectID) (_ []*model.Application, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	applications, listError := s.applicationRepo.ListByJob(ctx, jobID)
	if listError != nil {
		returnedError = cErr.DatabaseError("database ListByJob error")
		return nil, returnedError
	}
	return applications, nil
}

func (s *ApplicationService) CountByJob(ctx context.Context, jobID primitive.ObjectID) (_ int64, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	count, countError := s.applicationRepo.CountByJob(ctx, jobID)
	if countError != nil {
		returnedError = cErr.DatabaseError("database CountByJob error")
		return 0, returnedError
	}
	return count, nil
}
