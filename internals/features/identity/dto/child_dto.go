package dto

import (
	"github.com/google/uuid"

	"akademiku_backend/internals/features/identity/service"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type LinkChildRequest struct {
	StudentCode      string `json:"student_code" validate:"required,min=4,max=32"`
	RelationshipType string `json:"relationship_type" validate:"required,oneof=father mother guardian other"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

// ChildResponse exposes both identity keys. user_id is null (never omitted)
// for profiles without a login account.
type ChildResponse struct {
	ID               uuid.UUID  `json:"id"`
	UserID           *uuid.UUID `json:"user_id"`
	Name             string     `json:"name"`
	Avatar           *string    `json:"avatar"`
	GradeLevel       *string    `json:"grade_level"`
	RelationshipType string     `json:"relationship_type"`
}

func NewChildResponse(ch service.Child) ChildResponse {
	return ChildResponse{
		ID:               ch.Identity.StudentProfileID,
		UserID:           ch.Identity.UserID,
		Name:             ch.DisplayName,
		Avatar:           ch.AvatarURL,
		GradeLevel:       ch.GradeLevel,
		RelationshipType: ch.RelationshipType,
	}
}

func NewChildResponses(children []service.Child) []ChildResponse {
	out := make([]ChildResponse, 0, len(children))
	for _, ch := range children {
		out = append(out, NewChildResponse(ch))
	}
	return out
}
