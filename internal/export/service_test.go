package export_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/adeolu-ojo/applytrack/internal/common"
	"github.com/adeolu-ojo/applytrack/internal/entity"
	"github.com/adeolu-ojo/applytrack/internal/export"
	"github.com/adeolu-ojo/applytrack/internal/repository"
)

type stubJobRepo struct {
	jobs []*entity.Job
}

func (s *stubJobRepo) GetForUser(ctx context.Context, userID, jobID uuid.UUID) (*entity.Job, error) {
	return nil, common.ErrNotFound
}

func (s *stubJobRepo) GetManyForUser(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]*entity.Job, error) {
	return nil, nil
}

func (s *stubJobRepo) ListActiveExcluding(ctx context.Context, userID, excludeID uuid.UUID) ([]*entity.Job, error) {
	return nil, nil
}

func (s *stubJobRepo) ListForUser(ctx context.Context, userID uuid.UUID, fromDate, toDate *time.Time) ([]*entity.Job, error) {
	return s.jobs, nil
}

func (s *stubJobRepo) Create(ctx context.Context, req *repository.CreateJobRequest) (*entity.Job, error) {
	return nil, nil
}

func (s *stubJobRepo) Update(ctx context.Context, userID, jobID uuid.UUID, req *repository.UpdateJobRequest) (*entity.Job, error) {
	return nil, common.ErrNotFound
}

func (s *stubJobRepo) MarkMerged(ctx context.Context, jobID, masterJobID uuid.UUID) error {
	return nil
}

func (s *stubJobRepo) SetPlatformCount(ctx context.Context, jobID uuid.UUID, count int) error {
	return nil
}

func TestExportJobsXLSX(t *testing.T) {
	applied := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	city := "Mountain View"
	master := uuid.New()
	repo := &stubJobRepo{jobs: []*entity.Job{
		{
			ID:            uuid.New(),
			Company:       "Google",
			Title:         "Software Engineer",
			City:          &city,
			AppliedAt:     &applied,
			Status:        "APPLIED",
			PlatformCount: 2,
		},
		{
			ID:              uuid.New(),
			Company:         "Google Inc",
			Title:           "Software Engineer",
			Status:          "APPLIED",
			IsDuplicate:     true,
			MergedIntoJobID: &master,
		},
	}}
	svc := export.NewService(repo, nil)

	data, err := svc.ExportJobsXLSX(context.Background(), uuid.New(), nil, nil)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("Applications")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Company", rows[0][0])
	assert.Equal(t, "Applied Date", rows[0][4])

	assert.Equal(t, "Google", rows[1][0])
	assert.Equal(t, "Mountain View", rows[1][2])
	assert.Equal(t, "2026-08-20", rows[1][4])
	assert.Equal(t, "2", rows[1][5])

	assert.Equal(t, master.String(), rows[2][6])
}

func TestExportJobsXLSX_Empty(t *testing.T) {
	svc := export.NewService(&stubJobRepo{}, nil)

	data, err := svc.ExportJobsXLSX(context.Background(), uuid.New(), nil, nil)
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("Applications")
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
