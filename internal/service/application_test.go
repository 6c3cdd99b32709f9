package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"testing"

	"fieldforce/internal/database/mongodb/model"
	"fieldforce/internal/dto"
	cErr "fieldforce/internal/pkg/error"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeApplicationStore struct {
	created []*model.Application
}

func (s *fakeApplicationStore) Create(contextValue context.Context, application *model.Application) (*model.Application, error) {
	s.created = append(s.created, application)
	return application, nil
}

func (s *fakeApplicationStore) ListByJob(contextValue context.Context, jobIdentifier primitive.ObjectID) ([]*model.Application, error) {
	return nil, nil
}

func (s *fakeApplicationStore) CountByJob(contextValue context.Context, jobIdentifier primitive.ObjectID) (int64, error) {
	return int64(len(s.created)), nil
}

type fakeJobFinder struct {
	job *model.Job
}

func (s *fakeJobFinder) GetByID(contextValue context.Context, jobIdentifier primitive.ObjectID) (*model.Job, error) {
	if s.job == nil {
		return nil, mongo.ErrNoDocuments
	}
	return s.job, nil
}

type fakeResumeStore struct {
	uploadError error
	uploads     int
}

func (s *fakeResumeStore) Upload(contextValue context.Context, jobID string, filename string, contentType string, content io.Reader) (string, error) {
	if s.uploadError != nil {
		return "", s.uploadError
	}
	s.uploads++
	return "https://storage.example.com/resumes/" + jobID + "/" + filename, nil
}

func submitApplicationDto(jobID string) *dto.SubmitApplicationDto {
	return &dto.SubmitApplicationDto{
		JobID:          jobID,
		FullName:       "Ravi Kumar",
		Email:          "ravi@example.com",
		Mobile:         "9876543210",
		HighestDegree:  "B.Tech",
		Institution:    "IIT",
		GraduationYear: "2020",
		ExperienceYrs:  "3",
		Skills:         []string{"sales"},
		Languages:      []string{"hindi"},
		ConfirmInfo:    true,
		AgreeTerms:     true,
	}
}

// 用真的 multipart 編碼出一個可 Open 的 FileHeader
func resumeFileHeader(t *testing.T) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("resume", "resume.pdf")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte("%PDF-1.4 fake resume")); err != nil {
		t.Fatalf("write part: %v", err)
	}
	writer.Close()

	form, err := multipart.NewReader(&body, writer.Boundary()).ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("read form: %v", err)
	}
	return form.File["resume"][0]
}

func TestSubmitApplicationRequiresConfirmations(t *testing.T) {
	store := &fakeApplicationStore{}
	svc := &ApplicationService{
		trace:           newTestTrace(),
		applicationRepo: store,
		jobRepo:         &fakeJobFinder{job: &model.Job{}},
		resumeStore:     &fakeResumeStore{},
	}

	submitDto := submitApplicationDto(primitive.NewObjectID().Hex())
	submitDto.ConfirmInfo = false
	if _, err := svc.SubmitApplication(context.Background(), submitDto); err == nil {
		t.Fatalf("expected confirmInfo error")
	}

	submitDto = submitApplicationDto(primitive.NewObjectID().Hex())
	submitDto.AgreeTerms = false
	if _, err := svc.SubmitApplication(context.Background(), submitDto); err == nil {
		t.Fatalf("expected agreeTerms error")
	}
	if len(store.created) != 0 {
		t.Fatalf("no application expected without confirmations")
	}
}

func TestSubmitApplicationUnknownJob(t *testing.T) {
	svc := &ApplicationService{
		trace:           newTestTrace(),
		applicationRepo: &fakeApplicationStore{},
		jobRepo:         &fakeJobFinder{},
		resumeStore:     &fakeResumeStore{},
	}

	_, err := svc.SubmitApplication(context.Background(), submitApplicationDto(primitive.NewObjectID().Hex()))
	appErr, ok := err.(*cErr.Error)
	if !ok || appErr.ErrorCode() != cErr.NOT_FOUND {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestSubmitApplicationParsesNumericFields(t *testing.T) {
	store := &fakeApplicationStore{}
	svc := &ApplicationService{
		trace:           newTestTrace(),
		applicationRepo: store,
		jobRepo:         &fakeJobFinder{job: &model.Job{}},
		resumeStore:     &fakeResumeStore{},
	}

	application, err := svc.SubmitApplication(context.Background(), submitApplicationDto(primitive.NewObjectID().Hex()))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if application.GraduationYear != 2020 || application.ExperienceYrs != 3 {
		t.Fatalf("unexpected parsed fields: %+v", application)
	}
	if application.ResumeURL != "" {
		t.Fatalf("no resume expected")
	}
}

// 履歷上傳失敗整筆失敗，不留下沒有履歷的 application
func TestSubmitApplicationUploadFailureWritesNothing(t *testing.T) {
	store := &fakeApplicationStore{}
	svc := &ApplicationService{
		trace:           newTestTrace(),
		applicationRepo: store,
		jobRepo:         &fakeJobFinder{job: &model.Job{}},
		resumeStore:     &fakeResumeStore{uploadError: errors.New("bucket unavailable")},
	}

	submitDto := submitApplicationDto(primitive.NewObjectID().Hex())
	submitDto.Resume = resumeFileHeader(t)

	_, err := svc.SubmitApplication(context.Background(), submitDto)
	appErr, ok := err.(*cErr.Error)
	if !ok || appErr.ErrorCode() != cErr.UPLOAD_ERROR {
		t.Fatalf("expected UPLOAD_ERROR, got %v", err)
	}
	if len(store.created) != 0 {
		t.Fatalf("application must not be written when upload fails")
	}
}

func TestSubmitApplicationStoresResumeURL(t *testing.T) {
	store := &fakeApplicationStore{}
	resumes := &fakeResumeStore{}
	svc := &ApplicationService{
		trace:           newTestTrace(),
		applicationRepo: store,
		jobRepo:         &fakeJobFinder{job: &model.Job{}},
		resumeStore:     resumes,
	}

	submitDto := submitApplicationDto(primitive.NewObjectID().Hex())
	submitDto.Resume = resumeFileHeader(t)

	application, err := svc.SubmitApplication(context.Background(), submitDto)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if resumes.uploads != 1 {
		t.Fatalf("expected one upload, got %d", resumes.uploads)
	}
	if application.ResumeURL == "" {
		t.Fatalf("expected resume url on the application")
	}
}
