package imports_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adeolu-ojo/applytrack/internal/common"
	"github.com/adeolu-ojo/applytrack/internal/entity"
	"github.com/adeolu-ojo/applytrack/internal/imports"
	"github.com/adeolu-ojo/applytrack/internal/jobs"
)

type fakeWriter struct {
	created   []jobs.CreateJobRequest
	platforms []jobs.AttachPlatformRequest
}

func (f *fakeWriter) CreateJob(ctx context.Context, req jobs.CreateJobRequest) (*entity.Job, error) {
	f.created = append(f.created, req)
	return &entity.Job{ID: uuid.New(), UserID: req.UserID, Company: req.Company, Title: req.Title}, nil
}

func (f *fakeWriter) AttachPlatform(ctx context.Context, req jobs.AttachPlatformRequest) (*entity.Platform, error) {
	f.platforms = append(f.platforms, req)
	return &entity.Platform{ID: uuid.New(), JobID: req.JobID, Platform: req.Platform}, nil
}

func newImporter(t *testing.T, w imports.JobWriter) *imports.Service {
	t.Helper()
	svc, err := imports.NewService(w, nil)
	require.NoError(t, err)
	return svc
}

func TestImportJobs_ValidRows(t *testing.T) {
	w := &fakeWriter{}
	svc := newImporter(t, w)

	payload := []byte(`[
		{"company": "Google", "title": "Software Engineer", "applied_at": "2026-08-20", "platform": "linkedin"},
		{"company": "Stripe", "title": "Backend Engineer", "status": "SCREENING"}
	]`)

	result, err := svc.ImportJobs(context.Background(), uuid.New(), payload)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Empty(t, result.Errors)
	require.Len(t, w.created, 2)
	require.NotNil(t, w.created[0].AppliedAt)
	assert.Equal(t, "2026-08-20", w.created[0].AppliedAt.Format("2006-01-02"))
	require.Len(t, w.platforms, 1)
	assert.Equal(t, "linkedin", w.platforms[0].Platform)
}

func TestImportJobs_InvalidRowsReportedByIndex(t *testing.T) {
	w := &fakeWriter{}
	svc := newImporter(t, w)

	payload := []byte(`[
		{"company": "Google", "title": "SWE"},
		{"company": "Missing Title"},
		{"company": "Bad Date", "title": "SWE", "applied_at": "20-08-2026"},
		{"company": "Bad Status", "title": "SWE", "status": "HIRED"},
		{"company": "Unknown Field", "title": "SWE", "salary": 100000}
	]`)

	result, err := svc.ImportJobs(context.Background(), uuid.New(), payload)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	require.Len(t, result.Errors, 4)
	assert.Equal(t, []int{1, 2, 3, 4}, []int{
		result.Errors[0].Index,
		result.Errors[1].Index,
		result.Errors[2].Index,
		result.Errors[3].Index,
	})
	assert.Len(t, w.created, 1)
}

func TestImportJobs_NonArrayPayload(t *testing.T) {
	svc := newImporter(t, &fakeWriter{})
	_, err := svc.ImportJobs(context.Background(), uuid.New(), []byte(`{"company": "Google"}`))
	assert.ErrorIs(t, err, common.ErrValidation)
}
