package dto

import (
	"time"

	"github.com/google/uuid"

	"akademiku_backend/internals/features/certificates/model"
	identity "akademiku_backend/internals/features/identity/service"
	sessionDTO "akademiku_backend/internals/features/sessions/dto"
)

type CertificateResponse struct {
	ID       uuid.UUID              `json:"id"`
	Number   string                 `json:"number"`
	Title    string                 `json:"title"`
	Category string                 `json:"category"`
	Child    *sessionDTO.ChildBrief `json:"child"`
	Grade    *string                `json:"grade"`
	FileURL  *string                `json:"file_url"`
	IssuedAt time.Time              `json:"issued_at"`
}

func NewCertificateResponse(m model.CertificateModel, child *identity.Child) CertificateResponse {
	resp := CertificateResponse{
		ID:       m.CertificateID,
		Number:   m.CertificateNumber,
		Title:    m.CertificateTitle,
		Category: m.CertificateCategory,
		Grade:    m.CertificateGrade,
		FileURL:  m.CertificateFileURL,
		IssuedAt: m.CertificateIssuedAt,
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

func NewCertificateResponses(items []model.CertificateModel, index identity.ChildIndex) []CertificateResponse {
	out := make([]CertificateResponse, 0, len(items))
	for _, m := range items {
		out = append(out, NewCertificateResponse(m, index.ByProfileKey(m.CertificateStudentProfileID)))
	}
	return out
}
