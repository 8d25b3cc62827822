package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type QuizModel struct {
	QuizID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:quiz_id" json:"quiz_id"`
	QuizAcademyID uuid.UUID `gorm:"type:uuid;not null;index;column:quiz_academy_id" json:"quiz_academy_id"`

	QuizTitle    string     `gorm:"not null;column:quiz_title" json:"quiz_title"`
	QuizCategory string     `gorm:"not null;column:quiz_category" json:"quiz_category"` // quran | academic | interactive
	QuizCourseID *uuid.UUID `gorm:"type:uuid;index;column:quiz_course_id" json:"quiz_course_id,omitempty"`

	// Nil means the grader falls back to the platform default threshold.
	QuizPassingScore  *float64       `gorm:"column:quiz_passing_score" json:"quiz_passing_score,omitempty"`
	QuizQuestionCount int            `gorm:"not null;default:0;column:quiz_question_count" json:"quiz_question_count"`
	QuizTags          pq.StringArray `gorm:"type:text[];column:quiz_tags" json:"quiz_tags,omitempty"`

	QuizCreatedAt time.Time      `gorm:"column:quiz_created_at;autoCreateTime" json:"quiz_created_at"`
	QuizDeletedAt gorm.DeletedAt `gorm:"column:quiz_deleted_at;index" json:"quiz_deleted_at,omitempty"`
}

func (QuizModel) TableName() string { return "quizzes" }

// QuizAttemptModel keys the student by STUDENT PROFILE id, same as the
// course enrollment tables quizzes hang off.
type QuizAttemptModel struct {
	QuizAttemptID               uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:quiz_attempt_id" json:"quiz_attempt_id"`
	QuizAttemptQuizID           uuid.UUID `gorm:"type:uuid;not null;index;column:quiz_attempt_quiz_id" json:"quiz_attempt_quiz_id"`
	QuizAttemptStudentProfileID uuid.UUID `gorm:"type:uuid;not null;index;column:quiz_attempt_student_profile_id" json:"quiz_attempt_student_profile_id"`

	QuizAttemptScore       float64   `gorm:"not null;column:quiz_attempt_score" json:"quiz_attempt_score"`
	QuizAttemptAttemptedAt time.Time `gorm:"not null;index;column:quiz_attempt_attempted_at" json:"quiz_attempt_attempted_at"`

	QuizAttemptCreatedAt time.Time      `gorm:"column:quiz_attempt_created_at;autoCreateTime" json:"quiz_attempt_created_at"`
	QuizAttemptDeletedAt gorm.DeletedAt `gorm:"column:quiz_attempt_deleted_at;index" json:"quiz_attempt_deleted_at,omitempty"`
}

func (QuizAttemptModel) TableName() string { return "quiz_attempts" }
