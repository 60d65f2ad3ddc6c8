package dedup_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adeolu-ojo/applytrack/constants"
	"github.com/adeolu-ojo/applytrack/internal/common"
	"github.com/adeolu-ojo/applytrack/internal/dedup"
)

func newMerger(store *fakeStore) *dedup.Merger {
	return dedup.NewMerger(&fakeTxRunner{store: store}, nil, nil)
}

func TestMerge_RequiresDuplicates(t *testing.T) {
	m := newMerger(newFakeStore())
	_, err := m.Merge(context.Background(), uuid.New(), uuid.New(), nil)
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestMerge_MasterCannotBeDuplicateOfItself(t *testing.T) {
	m := newMerger(newFakeStore())
	master := uuid.New()
	_, err := m.Merge(context.Background(), uuid.New(), master, []uuid.UUID{master})
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestMerge_RejectsRepeatedDuplicateID(t *testing.T) {
	m := newMerger(newFakeStore())
	dup := uuid.New()
	_, err := m.Merge(context.Background(), uuid.New(), uuid.New(), []uuid.UUID{dup, dup})
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestMerge_MasterNotFound(t *testing.T) {
	store := newFakeStore()
	userID := uuid.New()
	dup := newJob(userID, "Google", "SWE", "", 0)
	store.addJob(dup)
	m := newMerger(store)

	_, err := m.Merge(context.Background(), userID, uuid.New(), []uuid.UUID{dup.ID})
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestMerge_CountMismatchOnForeignDuplicate(t *testing.T) {
	store := newFakeStore()
	userID := uuid.New()
	master := newJob(userID, "Google", "SWE", "", 0)
	foreign := newJob(uuid.New(), "Google", "SWE", "", 0)
	store.addJob(master)
	store.addJob(foreign)
	m := newMerger(store)

	// The foreign job exists but belongs to another user: the loaded
	// count mismatches the requested count and nothing is merged.
	_, err := m.Merge(context.Background(), userID, master.ID, []uuid.UUID{foreign.ID})
	assert.ErrorIs(t, err, common.ErrValidation)
	assert.False(t, store.job(foreign.ID).IsDuplicate)
}

func TestMerge_MasterAlreadyMerged(t *testing.T) {
	store := newFakeStore()
	userID := uuid.New()
	master := newJob(userID, "Google", "SWE", "", 0)
	other := uuid.New()
	master.IsDuplicate = true
	master.MergedIntoJobID = &other
	dup := newJob(userID, "Google", "SWE", "", 0)
	store.addJob(master)
	store.addJob(dup)
	m := newMerger(store)

	_, err := m.Merge(context.Background(), userID, master.ID, []uuid.UUID{dup.ID})
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestMerge_ReparentsAndDeduplicatesPlatforms(t *testing.T) {
	store := newFakeStore()
	userID := uuid.New()
	master := newJob(userID, "Google", "SWE", "NYC", 0)
	dup := newJob(userID, "Google Inc", "SWE", "NYC", 1)
	store.addJob(master)
	store.addJob(dup)
	store.addPlatform(master.ID, string(constants.LinkedIn))
	store.addPlatform(dup.ID, string(constants.LinkedIn)) // collides: master wins
	store.addPlatform(dup.ID, string(constants.Indeed))   // re-parented
	m := newMerger(store)

	summary, err := m.Merge(context.Background(), userID, master.ID, []uuid.UUID{dup.ID})
	require.NoError(t, err)

	assert.Equal(t, master.ID, summary.MasterJobID)
	assert.Equal(t, 2, summary.PlatformCount)
	assert.Equal(t, []string{"indeed", "linkedin"}, store.platformsOf(master.ID))
	assert.Empty(t, store.platformsOf(dup.ID))

	mergedDup := store.job(dup.ID)
	assert.True(t, mergedDup.IsDuplicate)
	require.NotNil(t, mergedDup.MergedIntoJobID)
	assert.Equal(t, master.ID, *mergedDup.MergedIntoJobID)

	assert.Equal(t, 2, store.job(master.ID).PlatformCount)
}

func TestMerge_ResolvesSuggestionsInBothDirections(t *testing.T) {
	store := newFakeStore()
	userID := uuid.New()
	master := newJob(userID, "Google", "SWE", "NYC", 0)
	dup := newJob(userID, "Google", "SWE", "NYC", 1)
	store.addJob(master)
	store.addJob(dup)
	d := newDetector(store)
	_, err := d.FindPotentialDuplicates(context.Background(), userID, master.ID)
	require.NoError(t, err)

	m := newMerger(store)
	_, err = m.Merge(context.Background(), userID, master.ID, []uuid.UUID{dup.ID})
	require.NoError(t, err)

	id1, id2 := dedup.CanonicalPair(master.ID, dup.ID)
	s := store.suggestionByPair(id1, id2)
	require.NotNil(t, s)
	assert.Equal(t, string(constants.SuggestionMerged), s.Status)
	require.NotNil(t, s.ResolvedAt)
}

func TestMerge_MultipleDuplicates(t *testing.T) {
	store := newFakeStore()
	userID := uuid.New()
	master := newJob(userID, "Stripe", "Backend Engineer", "Dublin", 0)
	dup1 := newJob(userID, "Stripe", "Backend Engineer", "Dublin", 1)
	dup2 := newJob(userID, "Stripe Inc", "Backend Engineer", "Dublin", 2)
	store.addJob(master)
	store.addJob(dup1)
	store.addJob(dup2)
	store.addPlatform(dup1.ID, string(constants.LinkedIn))
	store.addPlatform(dup2.ID, string(constants.LinkedIn)) // collides after dup1 is merged
	store.addPlatform(dup2.ID, string(constants.Greenhouse))
	m := newMerger(store)

	summary, err := m.Merge(context.Background(), userID, master.ID, []uuid.UUID{dup1.ID, dup2.ID})
	require.NoError(t, err)

	assert.Equal(t, 2, summary.PlatformCount)
	assert.Equal(t, []string{"greenhouse", "linkedin"}, store.platformsOf(master.ID))
	for _, id := range []uuid.UUID{dup1.ID, dup2.ID} {
		j := store.job(id)
		assert.True(t, j.IsDuplicate)
		require.NotNil(t, j.MergedIntoJobID)
		assert.Equal(t, master.ID, *j.MergedIntoJobID)
	}
}

func TestMerge_ConcurrentMergesForSameUser(t *testing.T) {
	store := newFakeStore()
	userID := uuid.New()
	master := newJob(userID, "Stripe", "Backend Engineer", "Dublin", 0)
	dup1 := newJob(userID, "Stripe", "Backend Engineer", "Dublin", 1)
	dup2 := newJob(userID, "Stripe Inc", "Backend Engineer", "Dublin", 2)
	store.addJob(master)
	store.addJob(dup1)
	store.addJob(dup2)
	store.addPlatform(dup1.ID, string(constants.LinkedIn))
	store.addPlatform(dup2.ID, string(constants.LinkedIn)) // collides with whichever merge lands first
	store.addPlatform(dup2.ID, string(constants.Greenhouse))
	m := newMerger(store)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, dupID := range []uuid.UUID{dup1.ID, dup2.ID} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = m.Merge(context.Background(), userID, master.ID, []uuid.UUID{dupID})
		}()
	}
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])

	// The per-user lock serializes the merges: regardless of which one
	// lands first, the colliding linkedin entry is dropped exactly once
	// and the stored platform count matches the surviving set.
	assert.Equal(t, []string{"greenhouse", "linkedin"}, store.platformsOf(master.ID))
	assert.Equal(t, 2, store.job(master.ID).PlatformCount)
	for _, id := range []uuid.UUID{dup1.ID, dup2.ID} {
		j := store.job(id)
		assert.True(t, j.IsDuplicate)
		require.NotNil(t, j.MergedIntoJobID)
		assert.Equal(t, master.ID, *j.MergedIntoJobID)
	}
}

func TestMerge_RollsBackOnFailure(t *testing.T) {
	store := newFakeStore()
	userID := uuid.New()
	master := newJob(userID, "Google", "SWE", "NYC", 0)
	dup := newJob(userID, "Google", "SWE", "NYC", 1)
	store.addJob(master)
	store.addJob(dup)
	store.addPlatform(dup.ID, string(constants.Indeed))
	store.failSetPlatformCount = errors.New("connection reset")
	m := newMerger(store)

	_, err := m.Merge(context.Background(), userID, master.ID, []uuid.UUID{dup.ID})
	require.ErrorIs(t, err, common.ErrMergeFailed)

	// Rolled back: nothing moved, nothing marked.
	assert.False(t, store.job(dup.ID).IsDuplicate)
	assert.Nil(t, store.job(dup.ID).MergedIntoJobID)
	assert.Equal(t, []string{"indeed"}, store.platformsOf(dup.ID))
	assert.Empty(t, store.platformsOf(master.ID))
}

func TestMerge_RetryAfterFailureSucceeds(t *testing.T) {
	store := newFakeStore()
	userID := uuid.New()
	master := newJob(userID, "Google", "SWE", "NYC", 0)
	dup := newJob(userID, "Google", "SWE", "NYC", 1)
	store.addJob(master)
	store.addJob(dup)
	store.addPlatform(dup.ID, string(constants.Indeed))
	store.failReparent = errors.New("timeout")
	m := newMerger(store)

	_, err := m.Merge(context.Background(), userID, master.ID, []uuid.UUID{dup.ID})
	require.ErrorIs(t, err, common.ErrMergeFailed)

	store.failReparent = nil
	summary, err := m.Merge(context.Background(), userID, master.ID, []uuid.UUID{dup.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.PlatformCount)
	assert.Equal(t, []string{"indeed"}, store.platformsOf(master.ID))
}
