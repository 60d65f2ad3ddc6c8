package jobs_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adeolu-ojo/applytrack/constants"
	"github.com/adeolu-ojo/applytrack/internal/common"
	"github.com/adeolu-ojo/applytrack/internal/entity"
	"github.com/adeolu-ojo/applytrack/internal/jobs"
	"github.com/adeolu-ojo/applytrack/internal/repository"
)

type memRepo struct {
	mu        sync.Mutex
	jobs      map[uuid.UUID]*entity.Job
	platforms map[uuid.UUID]*entity.Platform
}

func newMemRepo() *memRepo {
	return &memRepo{
		jobs:      make(map[uuid.UUID]*entity.Job),
		platforms: make(map[uuid.UUID]*entity.Platform),
	}
}

type memJobs struct{ *memRepo }

func (m memJobs) GetForUser(ctx context.Context, userID, jobID uuid.UUID) (*entity.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	j, ok := m.jobs[jobID]
	if !ok || j.UserID != userID {
		return nil, common.ErrNotFound
	}
	cp := *j
	return &cp, nil
}

func (m memJobs) GetManyForUser(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]*entity.Job, error) {
	out := make([]*entity.Job, 0, len(ids))
	for _, id := range ids {
		j, err := m.GetForUser(ctx, userID, id)
		if err != nil {
			continue
		}
		out = append(out, j)
	}
	return out, nil
}

func (m memJobs) ListActiveExcluding(ctx context.Context, userID, excludeID uuid.UUID) ([]*entity.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Job
	for _, j := range m.jobs {
		if j.UserID == userID && j.ID != excludeID && !j.IsDuplicate {
			cp := *j
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m memJobs) ListForUser(ctx context.Context, userID uuid.UUID, fromDate, toDate *time.Time) ([]*entity.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Job
	for _, j := range m.jobs {
		if j.UserID != userID {
			continue
		}
		if fromDate != nil && (j.AppliedAt == nil || j.AppliedAt.Before(*fromDate)) {
			continue
		}
		if toDate != nil && (j.AppliedAt == nil || j.AppliedAt.After(*toDate)) {
			continue
		}
		cp := *j
		out = append(out, &cp)
	}
	return out, nil
}

func (m memJobs) Create(ctx context.Context, req *repository.CreateJobRequest) (*entity.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	j := &entity.Job{
		ID:        uuid.New(),
		UserID:    req.UserID,
		Company:   req.Company,
		Title:     req.Title,
		AppliedAt: req.AppliedAt,
		Status:    string(req.Status),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.City != "" {
		city := req.City
		j.City = &city
	}
	m.jobs[j.ID] = j
	cp := *j
	return &cp, nil
}

func (m memJobs) Update(ctx context.Context, userID, jobID uuid.UUID, req *repository.UpdateJobRequest) (*entity.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	j, ok := m.jobs[jobID]
	if !ok || j.UserID != userID {
		return nil, common.ErrNotFound
	}
	if req.Company != nil {
		j.Company = *req.Company
	}
	if req.Title != nil {
		j.Title = *req.Title
	}
	if req.Status != nil {
		j.Status = *req.Status
	}
	if req.Notes != nil {
		j.Notes = req.Notes
	}
	j.UpdatedAt = time.Now().UTC()
	cp := *j
	return &cp, nil
}

func (m memJobs) MarkMerged(ctx context.Context, jobID, masterJobID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	j, ok := m.jobs[jobID]
	if !ok {
		return common.ErrNotFound
	}
	j.IsDuplicate = true
	master := masterJobID
	j.MergedIntoJobID = &master
	return nil
}

func (m memJobs) SetPlatformCount(ctx context.Context, jobID uuid.UUID, count int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	j, ok := m.jobs[jobID]
	if !ok {
		return common.ErrNotFound
	}
	j.PlatformCount = count
	return nil
}

type memPlatforms struct{ *memRepo }

func (m memPlatforms) ListByJob(ctx context.Context, jobID uuid.UUID) ([]*entity.Platform, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Platform
	for _, p := range m.platforms {
		if p.JobID == jobID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m memPlatforms) ExistsForJob(ctx context.Context, jobID uuid.UUID, platform string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.platforms {
		if p.JobID == jobID && p.Platform == platform {
			return true, nil
		}
	}
	return false, nil
}

func (m memPlatforms) Create(ctx context.Context, req *repository.CreatePlatformRequest) (*entity.Platform, error) {
	exists, _ := m.ExistsForJob(ctx, req.JobID, req.Platform)
	if exists {
		return nil, fmt.Errorf("%w: platform %s already attached", common.ErrConflict, req.Platform)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	p := &entity.Platform{
		ID:       uuid.New(),
		JobID:    req.JobID,
		Platform: req.Platform,
	}
	if req.URL != "" {
		url := req.URL
		p.URL = &url
	}
	m.platforms[p.ID] = p
	cp := *p
	return &cp, nil
}

func (m memPlatforms) Reparent(ctx context.Context, platformID, newJobID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.platforms[platformID]
	if !ok {
		return common.ErrNotFound
	}
	p.JobID = newJobID
	return nil
}

func (m memPlatforms) Delete(ctx context.Context, platformID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.platforms, platformID)
	return nil
}

func (m memPlatforms) CountByJob(ctx context.Context, jobID uuid.UUID) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, p := range m.platforms {
		if p.JobID == jobID {
			count++
		}
	}
	return count, nil
}

type recordingFinder struct {
	calls []uuid.UUID
	err   error
}

func (f *recordingFinder) FindPotentialDuplicates(ctx context.Context, userID, jobID uuid.UUID) ([]*entity.ScoredJob, error) {
	f.calls = append(f.calls, jobID)
	return nil, f.err
}

func newService(repo *memRepo, finder jobs.DuplicateFinder) *jobs.Service {
	return jobs.NewService(memJobs{repo}, memPlatforms{repo}, finder, nil)
}

func TestCreateJob_TriggersDuplicateScan(t *testing.T) {
	repo := newMemRepo()
	finder := &recordingFinder{}
	svc := newService(repo, finder)

	job, err := svc.CreateJob(context.Background(), jobs.CreateJobRequest{
		UserID:  uuid.New(),
		Company: "Google",
		Title:   "Software Engineer",
	})
	require.NoError(t, err)
	assert.Equal(t, string(constants.StatusApplied), job.Status)
	require.Len(t, finder.calls, 1)
	assert.Equal(t, job.ID, finder.calls[0])
}

func TestCreateJob_ScanFailureIsNonFatal(t *testing.T) {
	repo := newMemRepo()
	finder := &recordingFinder{err: errors.New("scan backend down")}
	svc := newService(repo, finder)

	job, err := svc.CreateJob(context.Background(), jobs.CreateJobRequest{
		UserID:  uuid.New(),
		Company: "Google",
		Title:   "Software Engineer",
	})
	require.NoError(t, err)
	assert.NotNil(t, repo.jobs[job.ID])
}

func TestCreateJob_Validation(t *testing.T) {
	svc := newService(newMemRepo(), nil)

	for name, req := range map[string]jobs.CreateJobRequest{
		"missing company": {UserID: uuid.New(), Title: "SWE"},
		"missing title":   {UserID: uuid.New(), Company: "Google"},
		"bad status":      {UserID: uuid.New(), Company: "Google", Title: "SWE", Status: "HIRED"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.CreateJob(context.Background(), req)
			assert.ErrorIs(t, err, common.ErrValidation)
		})
	}
}

func TestUpdateJob(t *testing.T) {
	repo := newMemRepo()
	svc := newService(repo, nil)
	userID := uuid.New()

	job, err := svc.CreateJob(context.Background(), jobs.CreateJobRequest{
		UserID: userID, Company: "Google", Title: "SWE",
	})
	require.NoError(t, err)

	newStatus := string(constants.StatusInterview)
	updated, err := svc.UpdateJob(context.Background(), userID, job.ID, jobs.UpdateJobRequest{Status: &newStatus})
	require.NoError(t, err)
	assert.Equal(t, newStatus, updated.Status)
	assert.Equal(t, "Google", updated.Company)

	empty := ""
	_, err = svc.UpdateJob(context.Background(), userID, job.ID, jobs.UpdateJobRequest{Company: &empty})
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = svc.UpdateJob(context.Background(), uuid.New(), job.ID, jobs.UpdateJobRequest{Status: &newStatus})
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestAttachPlatform(t *testing.T) {
	repo := newMemRepo()
	svc := newService(repo, nil)
	userID := uuid.New()

	job, err := svc.CreateJob(context.Background(), jobs.CreateJobRequest{
		UserID: userID, Company: "Google", Title: "SWE",
	})
	require.NoError(t, err)

	p, err := svc.AttachPlatform(context.Background(), jobs.AttachPlatformRequest{
		UserID: userID, JobID: job.ID, Platform: "LinkedIn",
	})
	require.NoError(t, err)
	assert.Equal(t, "linkedin", p.Platform)
	assert.Equal(t, 1, repo.jobs[job.ID].PlatformCount)

	// Same platform again, even under a synonym, is a conflict.
	_, err = svc.AttachPlatform(context.Background(), jobs.AttachPlatformRequest{
		UserID: userID, JobID: job.ID, Platform: "linked in",
	})
	assert.ErrorIs(t, err, common.ErrConflict)
	assert.Equal(t, 1, repo.jobs[job.ID].PlatformCount)

	_, err = svc.AttachPlatform(context.Background(), jobs.AttachPlatformRequest{
		UserID: userID, JobID: job.ID, Platform: "Indeed",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, repo.jobs[job.ID].PlatformCount)
}

func TestAttachPlatform_UnknownPlatform(t *testing.T) {
	svc := newService(newMemRepo(), nil)
	_, err := svc.AttachPlatform(context.Background(), jobs.AttachPlatformRequest{
		UserID: uuid.New(), JobID: uuid.New(), Platform: "myspace",
	})
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestAttachPlatform_MergedJobIsConflict(t *testing.T) {
	repo := newMemRepo()
	svc := newService(repo, nil)
	userID := uuid.New()

	job, err := svc.CreateJob(context.Background(), jobs.CreateJobRequest{
		UserID: userID, Company: "Google", Title: "SWE",
	})
	require.NoError(t, err)
	require.NoError(t, memJobs{repo}.MarkMerged(context.Background(), job.ID, uuid.New()))

	_, err = svc.AttachPlatform(context.Background(), jobs.AttachPlatformRequest{
		UserID: userID, JobID: job.ID, Platform: "indeed",
	})
	assert.ErrorIs(t, err, common.ErrConflict)
}

func TestListPlatforms(t *testing.T) {
	repo := newMemRepo()
	svc := newService(repo, nil)
	userID := uuid.New()

	job, err := svc.CreateJob(context.Background(), jobs.CreateJobRequest{
		UserID: userID, Company: "Google", Title: "SWE",
	})
	require.NoError(t, err)
	for _, name := range []string{"linkedin", "indeed"} {
		_, err := svc.AttachPlatform(context.Background(), jobs.AttachPlatformRequest{
			UserID: userID, JobID: job.ID, Platform: name,
		})
		require.NoError(t, err)
	}

	listed, err := svc.ListPlatforms(context.Background(), userID, job.ID)
	require.NoError(t, err)
	assert.Len(t, listed, 2)

	_, err = svc.ListPlatforms(context.Background(), uuid.New(), job.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}
