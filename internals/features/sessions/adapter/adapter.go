package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"akademiku_backend/internals/features/identity/service"
	"akademiku_backend/internals/features/sessions/model"
	helper "akademiku_backend/internals/helpers"
)

// Join window around the scheduled time. A session is joinable while it is
// ongoing, or from 15 minutes before until 60 minutes after its start.
const (
	joinBefore = 15 * time.Minute
	joinAfter  = 60 * time.Minute
)

// SessionEvent is the normalized shape every source adapter returns.
// StudentKey matches identity.StudentIdentity.SessionKey().
type SessionEvent struct {
	ID              uuid.UUID           `json:"id"`
	Type            string              `json:"type"`
	StudentKey      uuid.UUID           `json:"student_key"`
	Title           string              `json:"title"`
	Code            *string             `json:"code"`
	ScheduledAt     time.Time           `json:"scheduled_at"`
	DurationMinutes int                 `json:"duration_minutes"`
	Status          model.SessionStatus `json:"status"`
	MeetingLink     *string             `json:"meeting_link"`
	CanJoin         bool                `json:"can_join"`

	TeacherID     *uuid.UUID `json:"teacher_id"`
	TeacherName   *string    `json:"teacher_name"`
	TeacherAvatar *string    `json:"teacher_avatar"`

	// Type-specific context. Nil for the types that do not carry it.
	CircleName    *string    `json:"circle_name"`
	CircleType    *string    `json:"circle_type"`
	Subject       *string    `json:"subject"`
	CourseID      *uuid.UUID `json:"course_id"`
	CourseName    *string    `json:"course_name"`
	SessionNumber *int       `json:"session_number"`
}

// FetchOptions are shared by all adapters so the unified service can pass
// one filter set to every source in a single fan-out.
type FetchOptions struct {
	Range           *helper.DateRange
	Statuses        []model.SessionStatus
	ExcludeStatuses []model.SessionStatus
	Limit           int
	Descending      bool

	// Now anchors the can_join computation; the service fills it once per
	// request so every event in a response agrees on the clock.
	Now time.Time
}

func (o FetchOptions) Validate() error {
	if o.Range != nil {
		return o.Range.Validate()
	}
	return nil
}

// SourceAdapter is implemented by the quran, academic and interactive
// sources. One call per adapter per request, regardless of child count.
type SourceAdapter interface {
	Type() string
	FetchByKeys(ctx context.Context, academyID uuid.UUID, keys service.KeySet, opts FetchOptions) ([]SessionEvent, error)
}

// CanJoinAt implements the join window shared by every session type.
func CanJoinAt(status model.SessionStatus, scheduledAt, now time.Time) bool {
	if status == model.SessionOngoing {
		return true
	}
	if status != model.SessionScheduled && status != model.SessionReady {
		return false
	}
	return !now.Before(scheduledAt.Add(-joinBefore)) && !now.After(scheduledAt.Add(joinAfter))
}

func statusStrings(list []model.SessionStatus) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		out = append(out, string(s))
	}
	return out
}
