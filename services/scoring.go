package services

import (
	"math"

	"student-platform/models"
)

// ScoreQuiz grades a set of submitted answers against a quiz's question set.
// answers maps question id to the raw answer value; missing answers count as
// incorrect, comparison is exact string equality. The returned percent is
// round(100 * correct / total); points are floor(percent/100 * reward).
//
// Pure function — persisting the result (and the one-attempt-per-user rule)
// is the caller's job.
func ScoreQuiz(quiz *models.Quiz, answers map[string]string) (scorePercent int, pointsEarned int64, err error) {
	total := len(quiz.Questions)
	if total == 0 {
		return 0, 0, ErrQuizHasNoQuestions
	}

	correct := 0
	for _, q := range quiz.Questions {
		if answers[q.ID] == q.CorrectAnswer {
			correct++
		}
	}

	scorePercent = int(math.Round(100 * float64(correct) / float64(total)))
	pointsEarned = int64(scorePercent) * quiz.PointsReward / 100
	return scorePercent, pointsEarned, nil
}
