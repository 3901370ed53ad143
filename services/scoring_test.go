package services

import (
	"fmt"
	"testing"

	"student-platform/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildQuiz(reward int64, correctAnswers ...string) *models.Quiz {
	quiz := &models.Quiz{ID: "quiz-1", PointsReward: reward}
	for i, answer := range correctAnswers {
		quiz.Questions = append(quiz.Questions, models.QuizQuestion{
			ID:            fmt.Sprintf("q%d", i+1),
			QuizID:        quiz.ID,
			QuestionText:  fmt.Sprintf("question %d", i+1),
			CorrectAnswer: answer,
			OrderIndex:    i,
		})
	}
	return quiz
}

func TestScoreQuiz(t *testing.T) {
	t.Run("PerfectScore", func(t *testing.T) {
		quiz := buildQuiz(100, "a", "b", "c", "d")
		score, points, err := ScoreQuiz(quiz, map[string]string{
			"q1": "a", "q2": "b", "q3": "c", "q4": "d",
		})
		require.NoError(t, err)
		assert.Equal(t, 100, score)
		assert.Equal(t, int64(100), points)
	})

	t.Run("ThreeOfFour", func(t *testing.T) {
		quiz := buildQuiz(100, "a", "b", "c", "d")
		score, points, err := ScoreQuiz(quiz, map[string]string{
			"q1": "a", "q2": "b", "q3": "c", "q4": "wrong",
		})
		require.NoError(t, err)
		assert.Equal(t, 75, score)
		assert.Equal(t, int64(75), points)
	})

	t.Run("NoMatchingAnswers", func(t *testing.T) {
		quiz := buildQuiz(100, "a", "b")
		score, points, err := ScoreQuiz(quiz, map[string]string{"q1": "x", "q2": "y"})
		require.NoError(t, err)
		assert.Equal(t, 0, score)
		assert.Equal(t, int64(0), points)
	})

	t.Run("EmptySubmission", func(t *testing.T) {
		quiz := buildQuiz(100, "a", "b")
		score, points, err := ScoreQuiz(quiz, nil)
		require.NoError(t, err)
		assert.Equal(t, 0, score)
		assert.Equal(t, int64(0), points)
	})

	t.Run("MissingAnswerCountsIncorrect", func(t *testing.T) {
		quiz := buildQuiz(100, "a", "b")
		score, _, err := ScoreQuiz(quiz, map[string]string{"q1": "a"})
		require.NoError(t, err)
		assert.Equal(t, 50, score)
	})

	t.Run("RoundsHalfUp", func(t *testing.T) {
		quiz := buildQuiz(100, "a", "b", "c")
		score, _, err := ScoreQuiz(quiz, map[string]string{"q1": "a"})
		require.NoError(t, err)
		assert.Equal(t, 33, score, "1 of 3 rounds to 33")

		score, _, err = ScoreQuiz(quiz, map[string]string{"q1": "a", "q2": "b"})
		require.NoError(t, err)
		assert.Equal(t, 67, score, "2 of 3 rounds to 67")
	})

	t.Run("PointsFloorFromPercent", func(t *testing.T) {
		// 33% of a 50-point quiz floors to 16.
		quiz := buildQuiz(50, "a", "b", "c")
		_, points, err := ScoreQuiz(quiz, map[string]string{"q1": "a"})
		require.NoError(t, err)
		assert.Equal(t, int64(16), points)
	})

	t.Run("ZeroQuestionsRejected", func(t *testing.T) {
		quiz := &models.Quiz{ID: "empty", PointsReward: 100}
		_, _, err := ScoreQuiz(quiz, nil)
		assert.ErrorIs(t, err, ErrQuizHasNoQuestions)
	})

	t.Run("ScoreAlwaysInRange", func(t *testing.T) {
		for n := 1; n <= 7; n++ {
			answers := make([]string, n)
			for i := range answers {
				answers[i] = "a"
			}
			quiz := buildQuiz(100, answers...)
			for correct := 0; correct <= n; correct++ {
				submitted := map[string]string{}
				for i := 0; i < correct; i++ {
					submitted[fmt.Sprintf("q%d", i+1)] = "a"
				}
				score, _, err := ScoreQuiz(quiz, submitted)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, score, 0)
				assert.LessOrEqual(t, score, 100)
			}
		}
	})
}
