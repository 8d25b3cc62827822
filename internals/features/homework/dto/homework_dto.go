package dto

import (
	"time"

	"github.com/google/uuid"

	identity "akademiku_backend/internals/features/identity/service"
	sessionDTO "akademiku_backend/internals/features/sessions/dto"
)

// HomeworkResponse shares one key set across both homework-carrying
// session types; unused keys stay null.
type HomeworkResponse struct {
	StudentKey  uuid.UUID              `json:"-"`
	SessionID   uuid.UUID              `json:"session_id"`
	Type        string                 `json:"type"`
	Child       *sessionDTO.ChildBrief `json:"child"`
	SessionCode *string                `json:"session_code"`
	Title       string                 `json:"title"`
	AssignedAt  time.Time              `json:"assigned_at"`
	DueAt       *time.Time             `json:"due_at"`

	// Quran homework parts.
	Memorization *string `json:"memorization"`
	Recitation   *string `json:"recitation"`
	Review       *string `json:"review"`

	// Academic homework.
	Homework      *string  `json:"homework"`
	LessonContent *string  `json:"lesson_content"`
	TopicsCovered []string `json:"topics_covered"`

	TeacherName *string `json:"teacher_name"`
}

func WithChild(resp HomeworkResponse, child *identity.Child) HomeworkResponse {
	if child != nil {
		resp.Child = &sessionDTO.ChildBrief{
			ID:     child.Identity.StudentProfileID,
			Name:   child.DisplayName,
			Avatar: child.AvatarURL,
		}
	}
	return resp
}
