package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"akademiku_backend/internals/features/identity/model"
	helper "akademiku_backend/internals/helpers"
)

// Resolver turns a parent account into the set of linked children, each
// exposing both identity keys. Read-only.
type Resolver struct {
	DB *gorm.DB
}

func NewResolver(db *gorm.DB) *Resolver { return &Resolver{DB: db} }

// ParentProfile loads the parent profile for the authenticated user within
// the tenant, or fails with PARENT_PROFILE_NOT_FOUND.
func (r *Resolver) ParentProfile(ctx context.Context, userID, academyID uuid.UUID) (*model.ParentProfileModel, error) {
	var profile model.ParentProfileModel
	err := r.DB.WithContext(ctx).
		Where("parent_profile_user_id = ? AND parent_profile_academy_id = ?", userID, academyID).
		First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.ErrNotFound(helper.CodeParentProfileNotFound, "Parent profile not found")
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// ResolveChildren returns every linked child ordered by link time. An empty
// list is a valid result, not an error; downstream aggregations then produce
// zeroed output.
func (r *Resolver) ResolveChildren(ctx context.Context, parentUserID, academyID uuid.UUID) ([]Child, error) {
	profile, err := r.ParentProfile(ctx, parentUserID, academyID)
	if err != nil {
		return nil, err
	}

	var rels []model.ParentStudentRelationshipModel
	if err := r.DB.WithContext(ctx).
		Where("parent_student_relationship_parent_id = ? AND parent_student_relationship_academy_id = ?",
			profile.ParentProfileID, academyID).
		Order("parent_student_relationship_created_at ASC").
		Find(&rels).Error; err != nil {
		return nil, err
	}
	if len(rels) == 0 {
		return []Child{}, nil
	}

	studentIDs := make([]uuid.UUID, 0, len(rels))
	relTypeByStudent := make(map[uuid.UUID]string, len(rels))
	for _, rel := range rels {
		studentIDs = append(studentIDs, rel.ParentStudentRelationshipStudentID)
		relTypeByStudent[rel.ParentStudentRelationshipStudentID] = rel.ParentStudentRelationshipType
	}

	var profiles []model.StudentProfileModel
	if err := r.DB.WithContext(ctx).
		Where("student_profile_id IN ? AND student_profile_academy_id = ?", studentIDs, academyID).
		Find(&profiles).Error; err != nil {
		return nil, err
	}

	profileByID := make(map[uuid.UUID]model.StudentProfileModel, len(profiles))
	for _, p := range profiles {
		profileByID[p.StudentProfileID] = p
	}

	// Preserve link order from the relationship rows.
	children := make([]Child, 0, len(rels))
	for _, rel := range rels {
		p, ok := profileByID[rel.ParentStudentRelationshipStudentID]
		if !ok {
			continue // profile soft-deleted after linking
		}
		children = append(children, Child{
			Identity: StudentIdentity{
				StudentProfileID: p.StudentProfileID,
				UserID:           p.StudentProfileUserID,
			},
			DisplayName:      p.StudentProfileFullName,
			AvatarURL:        p.StudentProfileAvatar,
			GradeLevel:       p.StudentProfileGradeLevel,
			RelationshipType: relTypeByStudent[p.StudentProfileID],
		})
	}
	return children, nil
}

// ResolveChild returns a single linked child or CHILD_NOT_FOUND. Lookup is by
// student profile id — the key clients see in child DTOs.
func (r *Resolver) ResolveChild(ctx context.Context, parentUserID, academyID, studentProfileID uuid.UUID) (*Child, error) {
	children, err := r.ResolveChildren(ctx, parentUserID, academyID)
	if err != nil {
		return nil, err
	}
	for i := range children {
		if children[i].Identity.StudentProfileID == studentProfileID {
			return &children[i], nil
		}
	}
	return nil, helper.ErrNotFound(helper.CodeChildNotFound, "Child not found or not linked to this parent")
}
