package dedup_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/adeolu-ojo/applytrack/constants"
	"github.com/adeolu-ojo/applytrack/internal/common"
	"github.com/adeolu-ojo/applytrack/internal/entity"
	"github.com/adeolu-ojo/applytrack/internal/repository"
)

// fakeStore is an in-memory implementation of the repository interfaces
// used by the dedup services. It supports snapshot/restore so the fake
// TxRunner can model rollback, and per-method error injection.
type fakeStore struct {
	mu          sync.Mutex
	jobs        map[uuid.UUID]*entity.Job
	platforms   map[uuid.UUID]*entity.Platform
	suggestions map[uuid.UUID]*entity.Suggestion

	failSetPlatformCount error
	failReparent         error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		jobs:        make(map[uuid.UUID]*entity.Job),
		platforms:   make(map[uuid.UUID]*entity.Platform),
		suggestions: make(map[uuid.UUID]*entity.Suggestion),
	}
}

func copyJob(j *entity.Job) *entity.Job {
	c := *j
	return &c
}

func copyPlatform(p *entity.Platform) *entity.Platform {
	c := *p
	return &c
}

func copySuggestion(s *entity.Suggestion) *entity.Suggestion {
	c := *s
	return &c
}

func (f *fakeStore) snapshot() *fakeStore {
	f.mu.Lock()
	defer f.mu.Unlock()
	snap := newFakeStore()
	for id, j := range f.jobs {
		snap.jobs[id] = copyJob(j)
	}
	for id, p := range f.platforms {
		snap.platforms[id] = copyPlatform(p)
	}
	for id, s := range f.suggestions {
		snap.suggestions[id] = copySuggestion(s)
	}
	return snap
}

func (f *fakeStore) restore(snap *fakeStore) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.jobs = snap.jobs
	f.platforms = snap.platforms
	f.suggestions = snap.suggestions
}

func (f *fakeStore) addJob(j *entity.Job) *entity.Job {
	f.mu.Lock()
	defer f.mu.Unlock()
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	f.jobs[j.ID] = copyJob(j)
	return j
}

func (f *fakeStore) addPlatform(jobID uuid.UUID, platform string) *entity.Platform {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := &entity.Platform{ID: uuid.New(), JobID: jobID, Platform: platform}
	f.platforms[p.ID] = p
	return copyPlatform(p)
}

func (f *fakeStore) suggestionCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.suggestions)
}

func (f *fakeStore) suggestionByPair(id1, id2 uuid.UUID) *entity.Suggestion {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.suggestions {
		if s.JobID1 == id1 && s.JobID2 == id2 {
			return copySuggestion(s)
		}
	}
	return nil
}

func (f *fakeStore) job(id uuid.UUID) *entity.Job {
	f.mu.Lock()
	defer f.mu.Unlock()
	return copyJob(f.jobs[id])
}

func (f *fakeStore) platformsOf(jobID uuid.UUID) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var names []string
	for _, p := range f.platforms {
		if p.JobID == jobID {
			names = append(names, p.Platform)
		}
	}
	sort.Strings(names)
	return names
}

// --- repository.JobRepository ---

func (f *fakeStore) GetForUser(ctx context.Context, userID, jobID uuid.UUID) (*entity.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.jobs[jobID]
	if !ok || j.UserID != userID {
		return nil, common.ErrNotFound
	}
	return copyJob(j), nil
}

func (f *fakeStore) GetManyForUser(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]*entity.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Job
	for _, id := range ids {
		if j, ok := f.jobs[id]; ok && j.UserID == userID {
			out = append(out, copyJob(j))
		}
	}
	return out, nil
}

func (f *fakeStore) ListActiveExcluding(ctx context.Context, userID, excludeID uuid.UUID) ([]*entity.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Job
	for _, j := range f.jobs {
		if j.UserID == userID && !j.IsDuplicate && j.ID != excludeID {
			out = append(out, copyJob(j))
		}
	}
	return out, nil
}

func (f *fakeStore) ListForUser(ctx context.Context, userID uuid.UUID, fromDate, toDate *time.Time) ([]*entity.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Job
	for _, j := range f.jobs {
		if j.UserID == userID {
			out = append(out, copyJob(j))
		}
	}
	return out, nil
}

// fakeJobs and fakePlatforms wrap the store because both repository
// interfaces declare a Create method with different signatures.
type fakeJobs struct{ *fakeStore }

func (f fakeJobs) Create(ctx context.Context, req *repository.CreateJobRequest) (*entity.Job, error) {
	j := &entity.Job{
		ID:        uuid.New(),
		UserID:    req.UserID,
		Company:   req.Company,
		Title:     req.Title,
		AppliedAt: req.AppliedAt,
		Status:    string(req.Status),
	}
	f.addJob(j)
	return copyJob(j), nil
}

type fakePlatforms struct{ *fakeStore }

func (f fakePlatforms) Create(ctx context.Context, req *repository.CreatePlatformRequest) (*entity.Platform, error) {
	return f.addPlatform(req.JobID, req.Platform), nil
}

func (f *fakeStore) Update(ctx context.Context, userID, jobID uuid.UUID, req *repository.UpdateJobRequest) (*entity.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.jobs[jobID]
	if !ok || j.UserID != userID {
		return nil, common.ErrNotFound
	}
	if req.Company != nil {
		j.Company = *req.Company
	}
	if req.Title != nil {
		j.Title = *req.Title
	}
	return copyJob(j), nil
}

func (f *fakeStore) MarkMerged(ctx context.Context, jobID, masterJobID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.jobs[jobID]
	if !ok {
		return common.ErrNotFound
	}
	master := masterJobID
	j.IsDuplicate = true
	j.MergedIntoJobID = &master
	return nil
}

func (f *fakeStore) SetPlatformCount(ctx context.Context, jobID uuid.UUID, count int) error {
	if f.failSetPlatformCount != nil {
		return f.failSetPlatformCount
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.jobs[jobID]
	if !ok {
		return common.ErrNotFound
	}
	j.PlatformCount = count
	return nil
}

// --- repository.PlatformRepository ---

func (f *fakeStore) ListByJob(ctx context.Context, jobID uuid.UUID) ([]*entity.Platform, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Platform
	for _, p := range f.platforms {
		if p.JobID == jobID {
			out = append(out, copyPlatform(p))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Platform < out[j].Platform })
	return out, nil
}

func (f *fakeStore) ExistsForJob(ctx context.Context, jobID uuid.UUID, platform string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.platforms {
		if p.JobID == jobID && p.Platform == platform {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) Reparent(ctx context.Context, platformID, newJobID uuid.UUID) error {
	if f.failReparent != nil {
		return f.failReparent
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.platforms[platformID]
	if !ok {
		return common.ErrNotFound
	}
	p.JobID = newJobID
	return nil
}

func (f *fakeStore) Delete(ctx context.Context, platformID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.platforms[platformID]; !ok {
		return common.ErrNotFound
	}
	delete(f.platforms, platformID)
	return nil
}

func (f *fakeStore) CountByJob(ctx context.Context, jobID uuid.UUID) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, p := range f.platforms {
		if p.JobID == jobID {
			n++
		}
	}
	return n, nil
}

// --- repository.SuggestionRepository ---

func (f *fakeStore) GetByPair(ctx context.Context, jobID1, jobID2 uuid.UUID) (*entity.Suggestion, error) {
	if s := f.suggestionByPair(jobID1, jobID2); s != nil {
		return s, nil
	}
	return nil, common.ErrNotFound
}

func (f *fakeStore) GetByID(ctx context.Context, id uuid.UUID) (*entity.Suggestion, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.suggestions[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return copySuggestion(s), nil
}

func (f *fakeStore) InsertPending(ctx context.Context, req *repository.InsertSuggestionRequest) (*entity.Suggestion, error) {
	if s := f.suggestionByPair(req.JobID1, req.JobID2); s != nil {
		return nil, common.ErrConflict
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	s := &entity.Suggestion{
		ID:              uuid.New(),
		JobID1:          req.JobID1,
		JobID2:          req.JobID2,
		CompanyScore:    req.CompanyScore,
		TitleScore:      req.TitleScore,
		LocationScore:   req.LocationScore,
		DateScore:       req.DateScore,
		SimilarityScore: req.SimilarityScore,
		Status:          string(constants.SuggestionPending),
	}
	f.suggestions[s.ID] = s
	return copySuggestion(s), nil
}

func (f *fakeStore) ListPendingForUser(ctx context.Context, userID uuid.UUID) ([]*entity.Suggestion, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Suggestion
	for _, s := range f.suggestions {
		if s.Status != string(constants.SuggestionPending) {
			continue
		}
		if j, ok := f.jobs[s.JobID1]; ok && j.UserID == userID {
			out = append(out, copySuggestion(s))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SimilarityScore > out[j].SimilarityScore })
	return out, nil
}

func (f *fakeStore) Resolve(ctx context.Context, id uuid.UUID, status constants.SuggestionStatus, resolvedAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.suggestions[id]
	if !ok {
		return common.ErrNotFound
	}
	if s.Status != string(constants.SuggestionPending) {
		return common.ErrConflict
	}
	s.Status = string(status)
	at := resolvedAt
	s.ResolvedAt = &at
	return nil
}

func (f *fakeStore) ResolveAllForJob(ctx context.Context, jobID uuid.UUID, status constants.SuggestionStatus, resolvedAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.suggestions {
		if s.JobID1 == jobID || s.JobID2 == jobID {
			s.Status = string(status)
			at := resolvedAt
			s.ResolvedAt = &at
		}
	}
	return nil
}

// --- repository.TxRunner ---

// fakeTxRunner snapshots the store before running fn and restores the
// snapshot if fn fails, modelling a rolled-back transaction.
type fakeTxRunner struct {
	store *fakeStore
}

func (r *fakeTxRunner) RunInTx(ctx context.Context, fn func(repository.Repos) error) error {
	snap := r.store.snapshot()
	repos := repository.Repos{
		Jobs:        fakeJobs{r.store},
		Platforms:   fakePlatforms{r.store},
		Suggestions: r.store,
	}
	if err := fn(repos); err != nil {
		r.store.restore(snap)
		return err
	}
	return nil
}
