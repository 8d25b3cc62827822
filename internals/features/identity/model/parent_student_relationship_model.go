package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ParentStudentRelationshipModel struct {
	ParentStudentRelationshipID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:parent_student_relationship_id" json:"parent_student_relationship_id"`
	ParentStudentRelationshipAcademyID uuid.UUID `gorm:"type:uuid;not null;index;column:parent_student_relationship_academy_id" json:"parent_student_relationship_academy_id"`

	// A student may be linked to a parent at most once; uniqueness is on the
	// (parent, student) pair regardless of relationship type.
	ParentStudentRelationshipParentID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_parent_student;column:parent_student_relationship_parent_id" json:"parent_student_relationship_parent_id"`
	ParentStudentRelationshipStudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_parent_student;column:parent_student_relationship_student_id" json:"parent_student_relationship_student_id"`

	ParentStudentRelationshipType string `gorm:"not null;column:parent_student_relationship_type" json:"parent_student_relationship_type"`

	ParentStudentRelationshipCreatedAt time.Time      `gorm:"column:parent_student_relationship_created_at;autoCreateTime" json:"parent_student_relationship_created_at"`
	ParentStudentRelationshipDeletedAt gorm.DeletedAt `gorm:"column:parent_student_relationship_deleted_at;index" json:"parent_student_relationship_deleted_at,omitempty"`
}

func (ParentStudentRelationshipModel) TableName() string { return "parent_student_relationships" }
