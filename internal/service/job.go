package service

import (
	"context"
	"errors"
	"time"

	"fieldforce/config"
	"fieldforce/internal/core"
	"fieldforce/internal/database/mongodb/model"
	mongoRepo "fieldforce/internal/database/mongodb/repository"
	redisRepo "fieldforce/internal/database/redis/repository"
	"fieldforce/internal/dto"
	cErr "fieldforce/internal/pkg/error"
	"fieldforce/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type jobStore interface {
	Create(contextValue context.Context, job *model.Job) (*model.Job, error)
	GetByID(contextValue context.Context, jobIdentifier primitive.ObjectID) (*model.Job, error)
	List(contextValue context.Context, listOptions core.ListOptions) ([]*model.Job, error)
}

type listingCache interface {
	Get(contextValue context.Context, key core.RedisKey, destination interface{}) (bool, error)
	Set(contextValue context.Context, key core.RedisKey, value interface{}, timeToLive time.Duration) error
	Invalidate(contextValue context.Context, keys ...core.RedisKey) error
}

type JobService struct {
	trace      *telemetry.Trace
	jobRepo    jobStore
	cache      listingCache
	listingTTL time.Duration
}

func NewJobService(trace *telemetry.Trace, conf *config.Configuration, jobRepo *mongoRepo.JobRepository, cache *redisRepo.ListingCacheRepository) *JobService {
	listingTTL := 60 * time.Second
	if conf != nil && conf.FormLimit.ListingTTLSeconds > 0 {
		listingTTL = time.Duration(conf.FormLimit.ListingTTLSeconds) * time.Second
	}
	return &JobService{trace: trace, jobRepo: jobRepo, cache: cache, listingTTL: listingTTL}
}

// CreateJob 刊登職缺，成功後使列表快取失效
func (s *JobService) CreateJob(ctx context.Context, createDto *dto.CreateJobDto) (_ *model.Job, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	job := &model.Job{
		Title:         createDto.Title,
		Company:       createDto.Company,
		Location:      createDto.Location,
		Type:          createDto.JobType(),
		WorkMode:      createDto.JobWorkMode(),
		ExperienceMin: createDto.ExperienceMin,
		ExperienceMax: createDto.ExperienceMax,
		SalaryMin:     createDto.SalaryMin,
		SalaryMax:     createDto.SalaryMax,
		Department:    createDto.Department,
		Tags:          createDto.Tags,
		Description:   createDto.Description,
		PostedAt:      time.Now().UTC(),
	}

	created, createError := s.jobRepo.Create(ctx, job)
	if createError != nil {
		returnedError = cErr.DatabaseError("database CreateJob error")
		return nil, returnedError
	}

	// 快取失效失敗不影響主流程
	_ = s.cache.Invalidate(ctx, core.RedisKeyListingJobs)

	return created, nil
}

// ListJobs 公開列表，postedAt desc；第一頁走快取
func (s *JobService) ListJobs(ctx context.Context, page, size int64) (_ []*model.Job, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	cacheable := page == 1

	if cacheable {
		var cached []*model.Job
		if hit, _ := s.cache.Get(ctx, core.RedisKeyListingJobs, &cached); hit {
			return cached, nil
		}
	}

	jobs, listError := s.jobRepo.List(ctx, core.ListOptions{Page: page, Size: size})
	if listError != nil {
		returnedError = cErr.DatabaseError("database ListJobs error")
		return nil, returnedError
	}

	if cacheable {
		_ = s.cache.Set(ctx, core.RedisKeyListingJobs, jobs, s.listingTTL)
	}

	return jobs, nil
}

func (s *JobService) GetJob(ctx context.Context, jobID primitive.ObjectID) (_ *model.Job, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	job, getError := s.jobRepo.GetByID(ctx, jobID)
	if getError != nil {
		if errors.Is(getError, mongo.ErrNoDocuments) {
			returnedError = cErr.NotFound("job not found")
			return nil, returnedError
		}
		returnedError = cErr.DatabaseError("database GetJob error")
		return nil, returnedError
	}
	return job, nil
}
