package dto

import (
	"time"

	"github.com/google/uuid"

	identity "akademiku_backend/internals/features/identity/service"
	"akademiku_backend/internals/features/sessions/adapter"
)

/* =========================================================
   LIST ITEM
   Every session type serializes with the same key set; keys
   a type does not use stay null instead of disappearing.
========================================================= */

type ChildBrief struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Avatar *string   `json:"avatar"`
}

type SessionEventResponse struct {
	ID              uuid.UUID   `json:"id"`
	Type            string      `json:"type"`
	Title           string      `json:"title"`
	Code            *string     `json:"code"`
	ScheduledAt     time.Time   `json:"scheduled_at"`
	DurationMinutes int         `json:"duration_minutes"`
	Status          string      `json:"status"`
	MeetingLink     *string     `json:"meeting_link"`
	CanJoin         bool        `json:"can_join"`
	TeacherName     *string     `json:"teacher_name"`
	TeacherAvatar   *string     `json:"teacher_avatar"`
	Child           *ChildBrief `json:"child"`
	CircleName      *string     `json:"circle_name"`
	CircleType      *string     `json:"circle_type"`
	Subject         *string     `json:"subject"`
	CourseName      *string     `json:"course_name"`
	SessionNumber   *int        `json:"session_number"`
}

// NewSessionEventResponse is a pure mapping: same event and child in,
// same response out.
func NewSessionEventResponse(ev adapter.SessionEvent, child *identity.Child) SessionEventResponse {
	resp := SessionEventResponse{
		ID:              ev.ID,
		Type:            ev.Type,
		Title:           ev.Title,
		Code:            ev.Code,
		ScheduledAt:     ev.ScheduledAt,
		DurationMinutes: ev.DurationMinutes,
		Status:          string(ev.Status),
		MeetingLink:     ev.MeetingLink,
		CanJoin:         ev.CanJoin,
		TeacherName:     ev.TeacherName,
		TeacherAvatar:   ev.TeacherAvatar,
		CircleName:      ev.CircleName,
		CircleType:      ev.CircleType,
		Subject:         ev.Subject,
		CourseName:      ev.CourseName,
		SessionNumber:   ev.SessionNumber,
	}
	if child != nil {
		resp.Child = &ChildBrief{
			ID:     child.Identity.StudentProfileID,
			Name:   child.DisplayName,
			Avatar: child.AvatarURL,
		}
	}
	return resp
}

func NewSessionEventResponses(events []adapter.SessionEvent, index identity.ChildIndex) []SessionEventResponse {
	out := make([]SessionEventResponse, 0, len(events))
	for _, ev := range events {
		out = append(out, NewSessionEventResponse(ev, index.ByAnyKey(ev.StudentKey)))
	}
	return out
}

/* =========================================================
   DETAIL
   The detail view adds per-type blocks on top of the list
   shape. Blocks for the other types stay null.
========================================================= */

type TeacherBrief struct {
	ID     *uuid.UUID `json:"id"`
	Name   *string    `json:"name"`
	Avatar *string    `json:"avatar"`
}

type CircleBlock struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Type string    `json:"type"`
}

type QuranHomeworkBlock struct {
	Memorization *string `json:"memorization"`
	Recitation   *string `json:"recitation"`
	Review       *string `json:"review"`
}

func (h QuranHomeworkBlock) Empty() bool {
	return h.Memorization == nil && h.Recitation == nil && h.Review == nil
}

type EvaluationBlock struct {
	AttendanceStatus *string  `json:"attendance_status"`
	Rating           *float64 `json:"rating"`
	Notes            *string  `json:"notes"`
}

type SubscriptionBrief struct {
	ID          uuid.UUID `json:"id"`
	PackageName *string   `json:"package_name"`
	Subject     *string   `json:"subject"`
	Status      string    `json:"status"`
}

type AcademicReportBlock struct {
	Rating *float64 `json:"rating"`
	Notes  *string  `json:"notes"`
}

type CourseBlock struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Thumbnail     *string   `json:"thumbnail"`
	TotalSessions int       `json:"total_sessions"`
}

type SessionDetailResponse struct {
	SessionEventResponse

	Teacher *TeacherBrief `json:"teacher"`

	// Quran block.
	Circle     *CircleBlock        `json:"circle"`
	Homework   *QuranHomeworkBlock `json:"homework"`
	Evaluation *EvaluationBlock    `json:"evaluation"`

	// Academic block.
	Subscription  *SubscriptionBrief   `json:"subscription"`
	LessonContent *string              `json:"lesson_content"`
	TopicsCovered []string             `json:"topics_covered"`
	Report        *AcademicReportBlock `json:"report"`

	// Interactive block.
	Course      *CourseBlock `json:"course"`
	Description *string      `json:"description"`
	Materials   []string     `json:"materials"`

	StartedAt *time.Time `json:"started_at"`
	EndedAt   *time.Time `json:"ended_at"`
}
