package services

import (
	"context"
	"testing"

	"newsgrove/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedRankingFixture(t *testing.T) *Ranker {
	t.Helper()
	gdb := newTestDB(t)
	seedStory(t, gdb, 1, "Understanding the Rust borrow checker", 50, 100)
	seedStory(t, gdb, 2, "A Go tutorial", 10, 50)
	seedStory(t, gdb, 3, "Rust async patterns", 5, 10)
	return NewRanker(NewItemStore(gdb), DefaultWeights)
}

func TestRankFusedOrdering(t *testing.T) {
	ranker := seedRankingFixture(t)

	// Item 1: high score, 3 keyword matches. Item 3: closest distance, 1
	// match. Item 2: mid score but no matches and the farthest distance.
	candidates := []Candidate{
		{ItemID: 1, Distance: 0.2},
		{ItemID: 2, Distance: 0.9},
		{ItemID: 3, Distance: 0.1},
	}

	ranked, err := ranker.Rank(context.Background(), "rust borrow checker", candidates)
	require.NoError(t, err)
	require.Len(t, ranked, 3)

	assert.Equal(t, int64(1), ranked[0].ItemID)
	assert.Equal(t, int64(3), ranked[1].ItemID)
	assert.Equal(t, int64(2), ranked[2].ItemID)

	assert.Greater(t, ranked[0].Score, ranked[1].Score)
	assert.Greater(t, ranked[1].Score, ranked[2].Score)
}

func TestRankDeterministicWithTieBreak(t *testing.T) {
	gdb := newTestDB(t)
	// Identical signals everywhere: every vector degenerates, fused scores
	// are exactly equal, and only the id tie-break decides the order.
	seedStory(t, gdb, 10, "alpha beta", 5, 100)
	seedStory(t, gdb, 20, "alpha beta", 5, 100)
	ranker := NewRanker(NewItemStore(gdb), DefaultWeights)

	candidates := []Candidate{
		{ItemID: 10, Distance: 0.3},
		{ItemID: 20, Distance: 0.3},
	}

	first, err := ranker.Rank(context.Background(), "alpha", candidates)
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, int64(20), first[0].ItemID)
	assert.Equal(t, int64(10), first[1].ItemID)
	assert.Equal(t, first[0].Score, first[1].Score)

	second, err := ranker.Rank(context.Background(), "alpha", candidates)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRankDropsUntitledAndUnknown(t *testing.T) {
	gdb := newTestDB(t)
	seedStory(t, gdb, 1, "a titled story", 3, 10)
	seedComment(t, gdb, 2, "comments have no title")
	ranker := NewRanker(NewItemStore(gdb), DefaultWeights)

	candidates := []Candidate{
		{ItemID: 1, Distance: 0.5},
		{ItemID: 2, Distance: 0.1},
		{ItemID: 999, Distance: 0.2}, // not in the store at all
	}

	ranked, err := ranker.Rank(context.Background(), "story", candidates)
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, int64(1), ranked[0].ItemID)
}

func TestRankEmptyCandidates(t *testing.T) {
	gdb := newTestDB(t)
	ranker := NewRanker(NewItemStore(gdb), DefaultWeights)

	ranked, err := ranker.Rank(context.Background(), "anything", nil)
	require.NoError(t, err)
	assert.Empty(t, ranked)

	// All candidates filtered away must behave like an empty set, not crash
	// on undefined min/max.
	seedComment(t, gdb, 5, "untitled")
	ranked, err = ranker.Rank(context.Background(), "anything", []Candidate{{ItemID: 5, Distance: 0.4}})
	require.NoError(t, err)
	assert.Empty(t, ranked)
}

func TestRankMissingScoreAndAgeDefaults(t *testing.T) {
	gdb := newTestDB(t)
	// No score and no time on item 1: defaults (1 and 0) apply.
	seedItem(t, gdb, models.Item{ID: 1, Kind: models.KindStory, Title: strPtr("bare story")})
	seedStory(t, gdb, 2, "full story", 10, 100)
	ranker := NewRanker(NewItemStore(gdb), DefaultWeights)

	ranked, err := ranker.Rank(context.Background(), "story", []Candidate{
		{ItemID: 1, Distance: 0.5},
		{ItemID: 2, Distance: 0.5},
	})
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, int64(2), ranked[0].ItemID)
}
