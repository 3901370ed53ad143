package services

import (
	"errors"

	"student-platform/models"
	"student-platform/store"

	"github.com/gosimple/slug"
)

// QuizService owns quiz definitions and attempt submission.
type QuizService struct {
	store store.Store
}

func NewQuizService(s store.Store) *QuizService {
	return &QuizService{store: s}
}

// QuestionInput is one question of a new quiz, in display order.
type QuestionInput struct {
	QuestionText  string `json:"question_text"`
	QuestionType  string `json:"question_type"`
	Options       string `json:"options"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation"`
	OrderIndex    int    `json:"order_index"`
}

// QuizInput is the payload for creating a quiz with its question set.
type QuizInput struct {
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	QuizType     models.QuizType `json:"quiz_type"`
	PointsReward int64           `json:"points_reward"`
	Questions    []QuestionInput `json:"questions"`
}

// CreateQuiz persists a quiz with its ordered questions as one unit.
// Empty quizzes are rejected up front so that scoring never sees one.
func (s *QuizService) CreateQuiz(in QuizInput, createdBy string) (*models.Quiz, error) {
	switch {
	case in.Title == "":
		return nil, validationErr("title", "must not be empty")
	case in.PointsReward < 0:
		return nil, validationErr("points_reward", "must not be negative")
	case len(in.Questions) == 0:
		return nil, ErrQuizHasNoQuestions
	}
	for _, q := range in.Questions {
		if q.QuestionText == "" {
			return nil, validationErr("question_text", "must not be empty")
		}
		if q.CorrectAnswer == "" {
			return nil, validationErr("correct_answer", "must not be empty")
		}
	}

	quiz := &models.Quiz{
		Title:        in.Title,
		Slug:         slug.Make(in.Title),
		Description:  in.Description,
		QuizType:     in.QuizType,
		IsActive:     true,
		PointsReward: in.PointsReward,
		CreatedBy:    createdBy,
	}
	// A payload that never sets order_index is ordered by array position.
	// Once any question carries an explicit index, zero is a real position
	// and every index is kept as given.
	explicit := false
	for _, q := range in.Questions {
		if q.OrderIndex != 0 {
			explicit = true
			break
		}
	}
	for i, q := range in.Questions {
		order := q.OrderIndex
		if !explicit {
			order = i
		}
		quiz.Questions = append(quiz.Questions, models.QuizQuestion{
			QuestionText:  q.QuestionText,
			QuestionType:  q.QuestionType,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
			OrderIndex:    order,
		})
	}

	if err := s.store.CreateQuiz(quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

// ListQuizzes returns quiz summaries without questions.
func (s *QuizService) ListQuizzes(activeOnly bool) ([]models.Quiz, error) {
	return s.store.ListQuizzes(activeOnly)
}

// GetQuiz returns a quiz with its questions in display order.
func (s *QuizService) GetQuiz(id string) (*models.Quiz, error) {
	quiz, err := s.store.QuizByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, err
	}
	return quiz, nil
}

// SubmitAttempt grades and records one attempt. The first completion per
// (user, quiz) is authoritative: resubmitting returns the stored result
// unchanged and awards nothing.
func (s *QuizService) SubmitAttempt(userID, quizID string, answers map[string]string) (*models.QuizResult, error) {
	quiz, err := s.store.QuizByID(quizID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, err
	}
	if !quiz.IsActive {
		return nil, ErrQuizNotFound
	}

	if existing, err := s.store.ResultByUserAndQuiz(userID, quizID); err == nil {
		return existing, nil
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	score, points, err := ScoreQuiz(quiz, answers)
	if err != nil {
		return nil, err
	}

	result := &models.QuizResult{
		UserID:      userID,
		QuizID:      quizID,
		Score:       score,
		TotalPoints: points,
	}
	if err := s.store.CreateResult(result); err != nil {
		return nil, err
	}
	return result, nil
}
