package dedup_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adeolu-ojo/applytrack/constants"
	"github.com/adeolu-ojo/applytrack/internal/common"
	"github.com/adeolu-ojo/applytrack/internal/dedup"
	"github.com/adeolu-ojo/applytrack/internal/entity"
	"github.com/adeolu-ojo/applytrack/internal/match"
)

func appliedOn(day int) *time.Time {
	t := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, day)
	return &t
}

func strptr(s string) *string { return &s }

func newJob(userID uuid.UUID, company, title, city string, day int) *entity.Job {
	j := &entity.Job{
		ID:        uuid.New(),
		UserID:    userID,
		Company:   company,
		Title:     title,
		AppliedAt: appliedOn(day),
		Status:    string(constants.StatusApplied),
	}
	if city != "" {
		j.City = strptr(city)
	}
	return j
}

func newDetector(store *fakeStore) *dedup.Detector {
	return dedup.NewDetector(fakeJobs{store}, store, nil, nil)
}

func TestFindPotentialDuplicates_TriggerNotFound(t *testing.T) {
	store := newFakeStore()
	d := newDetector(store)

	_, err := d.FindPotentialDuplicates(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestFindPotentialDuplicates_WrongOwner(t *testing.T) {
	store := newFakeStore()
	owner := uuid.New()
	job := newJob(owner, "Google", "SWE", "", 0)
	store.addJob(job)
	d := newDetector(store)

	_, err := d.FindPotentialDuplicates(context.Background(), uuid.New(), job.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestFindPotentialDuplicates_NoCandidates(t *testing.T) {
	store := newFakeStore()
	userID := uuid.New()
	trigger := newJob(userID, "Google", "SWE", "", 0)
	store.addJob(trigger)
	d := newDetector(store)

	got, err := d.FindPotentialDuplicates(context.Background(), userID, trigger.ID)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Zero(t, store.suggestionCount())
}

func TestFindPotentialDuplicates_FlagsNearDuplicates(t *testing.T) {
	store := newFakeStore()
	userID := uuid.New()
	trigger := newJob(userID, "Google Inc", "Software Engineer", "Mountain View", 0)
	near := newJob(userID, "Google", "Software Engineer", "Mountain View", 2)
	unrelated := newJob(userID, "Netflix", "Product Manager", "Los Gatos", 40)
	store.addJob(trigger)
	store.addJob(near)
	store.addJob(unrelated)
	d := newDetector(store)

	got, err := d.FindPotentialDuplicates(context.Background(), userID, trigger.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, near.ID, got[0].Job.ID)
	assert.GreaterOrEqual(t, got[0].SimilarityScore, match.DuplicateThreshold)
	assert.Equal(t, 1.0, got[0].TitleScore)
	assert.InDelta(t, 1-2.0/30.0, got[0].DateScore, 1e-9)

	id1, id2 := dedup.CanonicalPair(trigger.ID, near.ID)
	s := store.suggestionByPair(id1, id2)
	require.NotNil(t, s)
	assert.Equal(t, string(constants.SuggestionPending), s.Status)
	assert.InDelta(t, got[0].SimilarityScore, s.SimilarityScore, 1e-9)
	assert.InDelta(t, got[0].CompanyScore, s.CompanyScore, 1e-9)
}

func TestFindPotentialDuplicates_SkipsMergedJobs(t *testing.T) {
	store := newFakeStore()
	userID := uuid.New()
	trigger := newJob(userID, "Google", "SWE", "", 0)
	merged := newJob(userID, "Google", "SWE", "", 0)
	master := uuid.New()
	merged.IsDuplicate = true
	merged.MergedIntoJobID = &master
	store.addJob(trigger)
	store.addJob(merged)
	d := newDetector(store)

	got, err := d.FindPotentialDuplicates(context.Background(), userID, trigger.ID)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFindPotentialDuplicates_NeverReturnsTrigger(t *testing.T) {
	store := newFakeStore()
	userID := uuid.New()
	trigger := newJob(userID, "Google", "SWE", "NYC", 0)
	twin := newJob(userID, "Google", "SWE", "NYC", 0)
	store.addJob(trigger)
	store.addJob(twin)
	d := newDetector(store)

	got, err := d.FindPotentialDuplicates(context.Background(), userID, trigger.ID)
	require.NoError(t, err)
	for _, s := range got {
		assert.NotEqual(t, trigger.ID, s.Job.ID)
		assert.False(t, s.Job.IsDuplicate)
		assert.GreaterOrEqual(t, s.SimilarityScore, match.DuplicateThreshold)
	}
}

func TestFindPotentialDuplicates_SortedByScoreDesc(t *testing.T) {
	store := newFakeStore()
	userID := uuid.New()
	trigger := newJob(userID, "Google Inc", "Software Engineer", "Mountain View", 0)
	exact := newJob(userID, "Google Inc", "Software Engineer", "Mountain View", 0)
	near := newJob(userID, "Google", "Software Engineer", "Mountain View", 6)
	store.addJob(trigger)
	store.addJob(exact)
	store.addJob(near)
	d := newDetector(store)

	got, err := d.FindPotentialDuplicates(context.Background(), userID, trigger.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, exact.ID, got[0].Job.ID)
	assert.GreaterOrEqual(t, got[0].SimilarityScore, got[1].SimilarityScore)
}

func TestFindPotentialDuplicates_RerunIsIdempotent(t *testing.T) {
	store := newFakeStore()
	userID := uuid.New()
	trigger := newJob(userID, "Google", "SWE", "NYC", 0)
	twin := newJob(userID, "Google", "SWE", "NYC", 1)
	store.addJob(trigger)
	store.addJob(twin)
	d := newDetector(store)

	first, err := d.FindPotentialDuplicates(context.Background(), userID, trigger.ID)
	require.NoError(t, err)
	require.Len(t, first, 1)
	require.Equal(t, 1, store.suggestionCount())

	second, err := d.FindPotentialDuplicates(context.Background(), userID, trigger.ID)
	require.NoError(t, err)
	assert.Len(t, second, 1)
	assert.Equal(t, 1, store.suggestionCount(), "rerun must not insert a second row")
}

func TestFindPotentialDuplicates_ReverseDirectionSharesPair(t *testing.T) {
	store := newFakeStore()
	userID := uuid.New()
	a := newJob(userID, "Google", "SWE", "NYC", 0)
	b := newJob(userID, "Google", "SWE", "NYC", 1)
	store.addJob(a)
	store.addJob(b)
	d := newDetector(store)

	_, err := d.FindPotentialDuplicates(context.Background(), userID, a.ID)
	require.NoError(t, err)
	_, err = d.FindPotentialDuplicates(context.Background(), userID, b.ID)
	require.NoError(t, err)

	// Canonical pair ordering: detection from either side resolves to
	// the same row.
	assert.Equal(t, 1, store.suggestionCount())
}

func TestFindPotentialDuplicates_DismissedPairStaysResolved(t *testing.T) {
	store := newFakeStore()
	userID := uuid.New()
	a := newJob(userID, "Google", "SWE", "NYC", 0)
	b := newJob(userID, "Google", "SWE", "NYC", 1)
	store.addJob(a)
	store.addJob(b)
	d := newDetector(store)

	got, err := d.FindPotentialDuplicates(context.Background(), userID, a.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)

	id1, id2 := dedup.CanonicalPair(a.ID, b.ID)
	s := store.suggestionByPair(id1, id2)
	require.NotNil(t, s)
	require.NoError(t, d.Dismiss(context.Background(), userID, s.ID))

	_, err = d.FindPotentialDuplicates(context.Background(), userID, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, store.suggestionCount())
	assert.Equal(t, string(constants.SuggestionDismissed), store.suggestionByPair(id1, id2).Status)
}

func TestListPending_JoinsJobsAndOrders(t *testing.T) {
	store := newFakeStore()
	userID := uuid.New()
	a := newJob(userID, "Google Inc", "Software Engineer", "Mountain View", 0)
	exact := newJob(userID, "Google Inc", "Software Engineer", "Mountain View", 0)
	near := newJob(userID, "Google", "Software Engineer", "Mountain View", 6)
	store.addJob(a)
	store.addJob(exact)
	store.addJob(near)
	d := newDetector(store)

	_, err := d.FindPotentialDuplicates(context.Background(), userID, a.ID)
	require.NoError(t, err)

	pending, err := d.ListPending(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.GreaterOrEqual(t, pending[0].Suggestion.SimilarityScore, pending[1].Suggestion.SimilarityScore)
	for _, p := range pending {
		require.NotNil(t, p.Job1)
		require.NotNil(t, p.Job2)
		assert.Equal(t, p.Suggestion.JobID1, p.Job1.ID)
		assert.Equal(t, p.Suggestion.JobID2, p.Job2.ID)
	}
}

func TestListPending_OtherUserSeesNothing(t *testing.T) {
	store := newFakeStore()
	userID := uuid.New()
	a := newJob(userID, "Google", "SWE", "NYC", 0)
	b := newJob(userID, "Google", "SWE", "NYC", 1)
	store.addJob(a)
	store.addJob(b)
	d := newDetector(store)

	_, err := d.FindPotentialDuplicates(context.Background(), userID, a.ID)
	require.NoError(t, err)

	pending, err := d.ListPending(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestDismiss_SetsStatusAndResolvedAt(t *testing.T) {
	store := newFakeStore()
	userID := uuid.New()
	a := newJob(userID, "Google", "SWE", "NYC", 0)
	b := newJob(userID, "Google", "SWE", "NYC", 1)
	store.addJob(a)
	store.addJob(b)
	d := newDetector(store)

	_, err := d.FindPotentialDuplicates(context.Background(), userID, a.ID)
	require.NoError(t, err)
	id1, id2 := dedup.CanonicalPair(a.ID, b.ID)
	s := store.suggestionByPair(id1, id2)
	require.NotNil(t, s)

	require.NoError(t, d.Dismiss(context.Background(), userID, s.ID))

	after := store.suggestionByPair(id1, id2)
	assert.Equal(t, string(constants.SuggestionDismissed), after.Status)
	require.NotNil(t, after.ResolvedAt)
}

func TestDismiss_AlreadyResolvedIsConflict(t *testing.T) {
	store := newFakeStore()
	userID := uuid.New()
	a := newJob(userID, "Google", "SWE", "NYC", 0)
	b := newJob(userID, "Google", "SWE", "NYC", 1)
	store.addJob(a)
	store.addJob(b)
	d := newDetector(store)

	_, err := d.FindPotentialDuplicates(context.Background(), userID, a.ID)
	require.NoError(t, err)
	id1, id2 := dedup.CanonicalPair(a.ID, b.ID)
	s := store.suggestionByPair(id1, id2)

	require.NoError(t, d.Dismiss(context.Background(), userID, s.ID))
	err = d.Dismiss(context.Background(), userID, s.ID)
	assert.ErrorIs(t, err, common.ErrConflict)
}

func TestDismiss_ConcurrentDismissalsOnlyOneWins(t *testing.T) {
	store := newFakeStore()
	userID := uuid.New()
	a := newJob(userID, "Google", "SWE", "NYC", 0)
	b := newJob(userID, "Google", "SWE", "NYC", 1)
	store.addJob(a)
	store.addJob(b)
	d := newDetector(store)

	_, err := d.FindPotentialDuplicates(context.Background(), userID, a.ID)
	require.NoError(t, err)
	id1, id2 := dedup.CanonicalPair(a.ID, b.ID)
	s := store.suggestionByPair(id1, id2)
	require.NotNil(t, s)

	// Resolution is conditional on pending status, so even if both
	// callers pass the read-side status check only one update applies.
	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = d.Dismiss(context.Background(), userID, s.ID)
		}()
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, common.ErrConflict)
		}
	}
	assert.Equal(t, 1, winners)
	assert.Equal(t, string(constants.SuggestionDismissed), store.suggestionByPair(id1, id2).Status)
}

func TestResolve_SecondResolutionIsConflict(t *testing.T) {
	store := newFakeStore()
	userID := uuid.New()
	a := newJob(userID, "Google", "SWE", "NYC", 0)
	b := newJob(userID, "Google", "SWE", "NYC", 1)
	store.addJob(a)
	store.addJob(b)
	d := newDetector(store)

	_, err := d.FindPotentialDuplicates(context.Background(), userID, a.ID)
	require.NoError(t, err)
	id1, id2 := dedup.CanonicalPair(a.ID, b.ID)
	s := store.suggestionByPair(id1, id2)
	require.NotNil(t, s)

	now := time.Now().UTC()
	require.NoError(t, store.Resolve(context.Background(), s.ID, constants.SuggestionDismissed, now))
	err = store.Resolve(context.Background(), s.ID, constants.SuggestionMerged, now)
	assert.ErrorIs(t, err, common.ErrConflict)
	assert.Equal(t, string(constants.SuggestionDismissed), store.suggestionByPair(id1, id2).Status)
}

func TestDismiss_WrongUserIsNotFound(t *testing.T) {
	store := newFakeStore()
	userID := uuid.New()
	a := newJob(userID, "Google", "SWE", "NYC", 0)
	b := newJob(userID, "Google", "SWE", "NYC", 1)
	store.addJob(a)
	store.addJob(b)
	d := newDetector(store)

	_, err := d.FindPotentialDuplicates(context.Background(), userID, a.ID)
	require.NoError(t, err)
	id1, id2 := dedup.CanonicalPair(a.ID, b.ID)
	s := store.suggestionByPair(id1, id2)

	err = d.Dismiss(context.Background(), uuid.New(), s.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestDismiss_UnknownSuggestion(t *testing.T) {
	store := newFakeStore()
	d := newDetector(store)
	err := d.Dismiss(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, common.ErrNotFound)
}
