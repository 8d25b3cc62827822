package dto

import (
	"fmt"
	"time"

	identity "akademiku_backend/internals/features/identity/service"
	"akademiku_backend/internals/features/sessions/adapter"
	sessionDTO "akademiku_backend/internals/features/sessions/dto"
)

// CalendarEventResponse is the flat event shape calendar clients consume.
// The id is prefixed with the type so events from different session tables
// can never collide in one calendar.
type CalendarEventResponse struct {
	ID     string                 `json:"id"`
	Type   string                 `json:"type"`
	Title  string                 `json:"title"`
	Start  time.Time              `json:"start"`
	End    time.Time              `json:"end"`
	Status string                 `json:"status"`
	Child  *sessionDTO.ChildBrief `json:"child"`
}

func NewCalendarEventResponse(ev adapter.SessionEvent, child *identity.Child) CalendarEventResponse {
	resp := CalendarEventResponse{
		ID:     fmt.Sprintf("%s_%s", ev.Type, ev.ID),
		Type:   ev.Type,
		Title:  ev.Title,
		Start:  ev.ScheduledAt,
		End:    ev.ScheduledAt.Add(time.Duration(ev.DurationMinutes) * time.Minute),
		Status: string(ev.Status),
	}
	if child != nil {
		resp.Child = &sessionDTO.ChildBrief{
			ID:     child.Identity.StudentProfileID,
			Name:   child.DisplayName,
			Avatar: child.AvatarURL,
		}
	}
	return resp
}

func NewCalendarEventResponses(events []adapter.SessionEvent, index identity.ChildIndex) []CalendarEventResponse {
	out := make([]CalendarEventResponse, 0, len(events))
	for _, ev := range events {
		out = append(out, NewCalendarEventResponse(ev, index.ByAnyKey(ev.StudentKey)))
	}
	return out
}
