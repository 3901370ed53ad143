package services

import (
	"testing"

	"student-platform/models"
	"student-platform/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedResult(t *testing.T, s store.Store, userID, quizID string, points int64) {
	t.Helper()
	require.NoError(t, s.CreateResult(&models.QuizResult{
		UserID:      userID,
		QuizID:      quizID,
		Score:       100,
		TotalPoints: points,
	}))
}

func TestLeaderboardService(t *testing.T) {
	mem := store.NewMemoryStore()
	svc := NewLeaderboardService(mem)

	alice := seedUser(t, mem, "alice")
	bob := seedUser(t, mem, "bob")
	carol := seedUser(t, mem, "carol")
	dave := seedUser(t, mem, "dave") // plays nothing

	seedResult(t, mem, alice.ID, "quiz-1", 100)
	seedResult(t, mem, alice.ID, "quiz-2", 200)
	seedResult(t, mem, bob.ID, "quiz-1", 200)
	seedResult(t, mem, carol.ID, "quiz-1", 100)

	t.Run("OrderedDescendingWithRanks", func(t *testing.T) {
		entries, err := svc.Leaderboard(50)
		require.NoError(t, err)
		require.Len(t, entries, 4)

		assert.Equal(t, []string{alice.ID, bob.ID, carol.ID, dave.ID},
			[]string{entries[0].UserID, entries[1].UserID, entries[2].UserID, entries[3].UserID})
		for i, e := range entries {
			assert.Equal(t, i+1, e.Rank)
		}
		assert.Equal(t, int64(300), entries[0].TotalPoints)
		assert.Equal(t, int64(2), entries[0].GamesPlayed)
	})

	t.Run("ZeroResultUserIncluded", func(t *testing.T) {
		entries, err := svc.Leaderboard(50)
		require.NoError(t, err)
		last := entries[len(entries)-1]
		assert.Equal(t, dave.ID, last.UserID)
		assert.Equal(t, int64(0), last.TotalPoints)
		assert.Equal(t, int64(0), last.GamesPlayed)
	})

	t.Run("GamesPlayedSumsToResultCount", func(t *testing.T) {
		entries, err := svc.Leaderboard(50)
		require.NoError(t, err)
		var sum int64
		for _, e := range entries {
			sum += e.GamesPlayed
		}
		assert.Equal(t, int64(4), sum)
	})

	t.Run("TruncationKeepsRankNumbers", func(t *testing.T) {
		entries, err := svc.Leaderboard(2)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, 1, entries[0].Rank)
		assert.Equal(t, 2, entries[1].Rank)
		assert.Equal(t, alice.ID, entries[0].UserID)
		assert.Equal(t, bob.ID, entries[1].UserID)
	})

	t.Run("TiesBreakByCreationOrder", func(t *testing.T) {
		// bob and a later tied user both have 200; bob registered first.
		erin := seedUser(t, mem, "erin")
		seedResult(t, mem, erin.ID, "quiz-1", 200)

		entries, err := svc.Leaderboard(50)
		require.NoError(t, err)
		assert.Equal(t, bob.ID, entries[1].UserID)
		assert.Equal(t, erin.ID, entries[2].UserID)
		assert.Equal(t, 2, entries[1].Rank)
		assert.Equal(t, 3, entries[2].Rank, "tied users get distinct consecutive ranks")
	})

	t.Run("FindUserRank", func(t *testing.T) {
		rank, found, err := svc.FindUserRank(alice.ID)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, 1, rank)

		_, found, err = svc.FindUserRank("no-such-user")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("AggregatesPerUser", func(t *testing.T) {
		total, err := svc.TotalPoints(alice.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(300), total)

		played, err := svc.GamesPlayed(alice.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), played)

		total, err = svc.TotalPoints(dave.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
	})
}
