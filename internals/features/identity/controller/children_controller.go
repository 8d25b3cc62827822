package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"akademiku_backend/internals/features/identity/dto"
	"akademiku_backend/internals/features/identity/model"
	"akademiku_backend/internals/features/identity/service"
	helper "akademiku_backend/internals/helpers"
)

type ChildrenController struct {
	DB       *gorm.DB
	Resolver *service.Resolver
}

func NewChildrenController(db *gorm.DB) *ChildrenController {
	return &ChildrenController{DB: db, Resolver: service.NewResolver(db)}
}

// matchStudentCode picks the candidate belonging to the caller's academy.
// Nil means the code does not exist in this tenant.
func matchStudentCode(candidates []model.StudentProfileModel, academyID uuid.UUID) *model.StudentProfileModel {
	for i := range candidates {
		if candidates[i].StudentProfileAcademyID == academyID {
			return &candidates[i]
		}
	}
	return nil
}

/* ===================== LIST ===================== */
// GET /children
func (ctrl *ChildrenController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	children, err := ctrl.Resolver.ResolveChildren(c.UserContext(), userID, academyID)
	if err != nil {
		return err
	}

	return helper.JsonOK(c, "Children retrieved successfully", fiber.Map{
		"children": dto.NewChildResponses(children),
		"total":    len(children),
	})
}

/* ===================== DETAIL ===================== */
// GET /children/:id
func (ctrl *ChildrenController) Show(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}
	childID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.ErrBadRequest(helper.CodeInvalidParameters, "Invalid child id")
	}

	child, err := ctrl.Resolver.ResolveChild(c.UserContext(), userID, academyID, childID)
	if err != nil {
		return err
	}

	return helper.JsonOK(c, "Child retrieved successfully", fiber.Map{
		"child": dto.NewChildResponse(*child),
	})
}

/* ===================== LINK ===================== */
// POST /children/link
func (ctrl *ChildrenController) Link(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.LinkChildRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return err
	}

	profile, err := ctrl.Resolver.ParentProfile(c.UserContext(), userID, academyID)
	if err != nil {
		return err
	}

	// Student codes are only unique per academy. Candidates are matched to
	// the caller's tenant after the fetch, so a code that exists only in
	// another academy behaves exactly like a missing code.
	var candidates []model.StudentProfileModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("student_profile_student_code = ?", req.StudentCode).
		Find(&candidates).Error; err != nil {
		return err
	}
	student := matchStudentCode(candidates, academyID)
	if student == nil {
		return helper.ErrNotFound(helper.CodeStudentCodeNotFound, "Student code not found")
	}

	var existing model.ParentStudentRelationshipModel
	err = ctrl.DB.WithContext(c.UserContext()).
		Where("parent_student_relationship_parent_id = ? AND parent_student_relationship_student_id = ?",
			profile.ParentProfileID, student.StudentProfileID).
		First(&existing).Error
	if err == nil {
		return helper.ErrBadRequest(helper.CodeChildAlreadyLinked, "This child is already linked to your account")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	rel := model.ParentStudentRelationshipModel{
		ParentStudentRelationshipAcademyID: academyID,
		ParentStudentRelationshipParentID:  profile.ParentProfileID,
		ParentStudentRelationshipStudentID: student.StudentProfileID,
		ParentStudentRelationshipType:      req.RelationshipType,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&rel).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to link child")
	}

	child := service.Child{
		Identity: service.StudentIdentity{
			StudentProfileID: student.StudentProfileID,
			UserID:           student.StudentProfileUserID,
		},
		DisplayName:      student.StudentProfileFullName,
		AvatarURL:        student.StudentProfileAvatar,
		GradeLevel:       student.StudentProfileGradeLevel,
		RelationshipType: rel.ParentStudentRelationshipType,
	}
	return helper.JsonCreated(c, "Child linked successfully", fiber.Map{
		"child": dto.NewChildResponse(child),
	})
}

/* ===================== UNLINK ===================== */
// DELETE /children/:id
func (ctrl *ChildrenController) Unlink(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return err
	}
	childID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.ErrBadRequest(helper.CodeInvalidParameters, "Invalid child id")
	}

	profile, err := ctrl.Resolver.ParentProfile(c.UserContext(), userID, academyID)
	if err != nil {
		return err
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Where("parent_student_relationship_parent_id = ? AND parent_student_relationship_student_id = ? AND parent_student_relationship_academy_id = ?",
			profile.ParentProfileID, childID, academyID).
		Delete(&model.ParentStudentRelationshipModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return helper.ErrNotFound(helper.CodeChildNotFound, "Child not found or not linked to this parent")
	}

	return helper.JsonDeleted(c, "Child unlinked successfully", fiber.Map{
		"child_id": childID,
	})
}
