package dto

import (
	"time"

	"github.com/google/uuid"

	identity "akademiku_backend/internals/features/identity/service"
	"akademiku_backend/internals/features/quizzes/model"
	reportService "akademiku_backend/internals/features/reports/service"
	sessionDTO "akademiku_backend/internals/features/sessions/dto"
)

type QuizAttemptResponse struct {
	ID          uuid.UUID              `json:"id"`
	Child       *sessionDTO.ChildBrief `json:"child"`
	Score       float64                `json:"score"`
	Passed      bool                   `json:"passed"`
	AttemptedAt time.Time              `json:"attempted_at"`
}

type QuizResponse struct {
	ID            uuid.UUID             `json:"id"`
	Title         string                `json:"title"`
	Category      string                `json:"category"`
	CourseID      *uuid.UUID            `json:"course_id"`
	PassingScore  float64               `json:"passing_score"`
	QuestionCount int                   `json:"question_count"`
	Attempts      []QuizAttemptResponse `json:"attempts"`
	BestScore     *float64              `json:"best_score"`
	PassRate      float64               `json:"pass_rate"`
}

// NewQuizResponse folds a quiz and its attempts into one DTO. The passing
// threshold falls back to the platform default when the quiz sets none.
func NewQuizResponse(quiz model.QuizModel, attempts []model.QuizAttemptModel, index identity.ChildIndex) QuizResponse {
	threshold := reportService.DefaultPassingScore
	if quiz.QuizPassingScore != nil {
		threshold = *quiz.QuizPassingScore
	}

	resp := QuizResponse{
		ID:            quiz.QuizID,
		Title:         quiz.QuizTitle,
		Category:      quiz.QuizCategory,
		CourseID:      quiz.QuizCourseID,
		PassingScore:  threshold,
		QuestionCount: quiz.QuizQuestionCount,
		Attempts:      make([]QuizAttemptResponse, 0, len(attempts)),
	}

	scores := make([]float64, 0, len(attempts))
	for _, a := range attempts {
		scores = append(scores, a.QuizAttemptScore)
		item := QuizAttemptResponse{
			ID:          a.QuizAttemptID,
			Score:       a.QuizAttemptScore,
			Passed:      a.QuizAttemptScore >= threshold,
			AttemptedAt: a.QuizAttemptAttemptedAt,
		}
		if ch := index.ByProfileKey(a.QuizAttemptStudentProfileID); ch != nil {
			item.Child = &sessionDTO.ChildBrief{
				ID:     ch.Identity.StudentProfileID,
				Name:   ch.DisplayName,
				Avatar: ch.AvatarURL,
			}
		}
		resp.Attempts = append(resp.Attempts, item)
		if resp.BestScore == nil || a.QuizAttemptScore > *resp.BestScore {
			score := a.QuizAttemptScore
			resp.BestScore = &score
		}
	}
	resp.PassRate = reportService.PassRate(scores, quiz.QuizPassingScore)
	return resp
}
