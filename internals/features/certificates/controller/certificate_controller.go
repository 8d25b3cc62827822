package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"akademiku_backend/internals/features/certificates/dto"
	"akademiku_backend/internals/features/certificates/model"
	identity "akademiku_backend/internals/features/identity/service"
	helper "akademiku_backend/internals/helpers"
)

type CertificateController struct {
	DB       *gorm.DB
	Resolver *identity.Resolver
}

func NewCertificateController(db *gorm.DB) *CertificateController {
	return &CertificateController{DB: db, Resolver: identity.NewResolver(db)}
}

func (ctl *CertificateController) resolveContext(c *fiber.Ctx) (uuid.UUID, []identity.Child, error) {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return uuid.Nil, nil, err
	}
	academyID, err := helper.GetAcademyIDFromToken(c)
	if err != nil {
		return uuid.Nil, nil, err
	}
	children, err := ctl.Resolver.ResolveChildren(c.Context(), userID, academyID)
	if err != nil {
		return uuid.Nil, nil, err
	}
	return academyID, children, nil
}

func (ctl *CertificateController) fetch(c *fiber.Ctx, academyID uuid.UUID, keys identity.ProfileKeys) ([]model.CertificateModel, error) {
	if len(keys) == 0 {
		return []model.CertificateModel{}, nil
	}
	var rows []model.CertificateModel
	err := ctl.DB.WithContext(c.Context()).
		Where("certificate_academy_id = ?", academyID).
		Where("certificate_student_profile_id IN ?", []uuid.UUID(keys)).
		Order("certificate_issued_at DESC").
		Find(&rows).Error
	return rows, err
}

// GET /parent/certificates
func (ctl *CertificateController) Index(c *fiber.Ctx) error {
	academyID, children, err := ctl.resolveContext(c)
	if err != nil {
		return helper.ErrorHandler(c, err)
	}
	keys := identity.BuildKeySet(children)
	rows, err := ctl.fetch(c, academyID, keys.Profile)
	if err != nil {
		return helper.ErrorHandler(c, err)
	}
	index := identity.IndexChildren(children)
	items := dto.NewCertificateResponses(rows, index)
	paging := helper.ResolvePaging(c, 20, 100)
	page, pagination := helper.PaginateSlice(items, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Certificates fetched successfully", "certificates", page, pagination)
}

// GET /parent/certificates/child/:childId
func (ctl *CertificateController) ByChild(c *fiber.Ctx) error {
	academyID, children, err := ctl.resolveContext(c)
	if err != nil {
		return helper.ErrorHandler(c, err)
	}
	childID, err := uuid.Parse(c.Params("childId"))
	if err != nil {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.CodeInvalidParameters, "childId must be a valid uuid")
	}
	var scoped []identity.Child
	for _, ch := range children {
		if ch.Identity.StudentProfileID == childID {
			scoped = []identity.Child{ch}
			break
		}
	}
	if scoped == nil {
		return helper.ErrorHandler(c, helper.ErrNotFound(helper.CodeChildNotFound, "Child not found"))
	}
	keys := identity.BuildKeySet(scoped)
	rows, err := ctl.fetch(c, academyID, keys.Profile)
	if err != nil {
		return helper.ErrorHandler(c, err)
	}
	index := identity.IndexChildren(scoped)
	items := dto.NewCertificateResponses(rows, index)
	paging := helper.ResolvePaging(c, 20, 100)
	page, pagination := helper.PaginateSlice(items, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Certificates fetched successfully", "certificates", page, pagination)
}

// GET /parent/certificates/:id
func (ctl *CertificateController) Show(c *fiber.Ctx) error {
	academyID, children, err := ctl.resolveContext(c)
	if err != nil {
		return helper.ErrorHandler(c, err)
	}
	certID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.CodeInvalidParameters, "id must be a valid uuid")
	}
	keys := identity.BuildKeySet(children)
	if len(keys.Profile) == 0 {
		return helper.ErrorHandler(c, helper.ErrNotFound(helper.CodeCertificateNotFound, "Certificate not found"))
	}

	var cert model.CertificateModel
	err = ctl.DB.WithContext(c.Context()).
		Where("certificate_academy_id = ?", academyID).
		Where("certificate_id = ?", certID).
		Where("certificate_student_profile_id IN ?", []uuid.UUID(keys.Profile)).
		Take(&cert).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.ErrorHandler(c, helper.ErrNotFound(helper.CodeCertificateNotFound, "Certificate not found"))
	}
	if err != nil {
		return helper.ErrorHandler(c, err)
	}

	index := identity.IndexChildren(children)
	resp := dto.NewCertificateResponse(cert, index.ByProfileKey(cert.CertificateStudentProfileID))
	return helper.JsonOK(c, "Certificate fetched successfully", fiber.Map{"certificate": resp})
}
