package controller

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"akademiku_backend/internals/features/identity/model"
)

// A student code that exists only in another academy must resolve exactly
// like a missing code.
func TestMatchStudentCodeTenantIsolation(t *testing.T) {
	academyA := uuid.New()
	academyB := uuid.New()

	other := model.StudentProfileModel{
		StudentProfileID:          uuid.New(),
		StudentProfileAcademyID:   academyB,
		StudentProfileStudentCode: "STD-2026-001",
		StudentProfileFullName:    "Bilal",
	}

	assert.Nil(t, matchStudentCode([]model.StudentProfileModel{other}, academyA))
	assert.Nil(t, matchStudentCode(nil, academyA))
}

func TestMatchStudentCodeSameTenant(t *testing.T) {
	academyA := uuid.New()
	academyB := uuid.New()

	// Both academies issued the same human-entered code.
	candidates := []model.StudentProfileModel{
		{
			StudentProfileID:          uuid.New(),
			StudentProfileAcademyID:   academyB,
			StudentProfileStudentCode: "STD-2026-001",
			StudentProfileFullName:    "Bilal",
		},
		{
			StudentProfileID:          uuid.New(),
			StudentProfileAcademyID:   academyA,
			StudentProfileStudentCode: "STD-2026-001",
			StudentProfileFullName:    "Aisyah",
		},
	}

	got := matchStudentCode(candidates, academyA)
	require.NotNil(t, got)
	assert.Equal(t, "Aisyah", got.StudentProfileFullName)
	assert.Equal(t, academyA, got.StudentProfileAcademyID)
}
