package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/academics/enrollments/dto"
	"schoolku_backend/internals/features/academics/enrollments/model"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/tenancy"
)

type EnrollmentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{DB: db, Validate: validator.New()}
}

func (ctrl *EnrollmentController) repo(c *fiber.Ctx) tenancy.Scoped[model.EnrollmentModel, *model.EnrollmentModel] {
	return tenancy.Scope[model.EnrollmentModel](c, ctrl.DB, "enrollment_school_id")
}

// POST /api/a/enrollments
func (ctrl *EnrollmentController) CreateEnrollment(c *fiber.Ctx) error {
	var req dto.CreateEnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	repo := ctrl.repo(c)

	// One active enrollment per student per academic year.
	dup, err := repo.Count("enrollment_student_id = ? AND enrollment_academic_year = ? AND enrollment_status = ?",
		req.EnrollmentStudentID, req.EnrollmentAcademicYear, "enrolled")
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create enrollment")
	}
	if dup > 0 {
		return helper.Error(c, fiber.StatusConflict, "Student is already enrolled for this academic year")
	}

	m := req.ToModel()
	if err := repo.Create(m); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create enrollment")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Enrollment created", m)
}

// GET /api/a/enrollments
func (ctrl *EnrollmentController) ListEnrollments(c *fiber.Ctx) error {
	var q dto.ListEnrollmentQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid query")
	}
	if err := ctrl.Validate.Struct(q); err != nil {
		return helper.ValidationError(c, err)
	}

	paging := helper.ResolvePaging(c, 20, 100)
	tx := ctrl.repo(c).Query()
	if q.StudentID != nil {
		tx = tx.Where("enrollment_student_id = ?", *q.StudentID)
	}
	if q.ClassID != nil {
		tx = tx.Where("enrollment_class_id = ?", *q.ClassID)
	}
	if q.AcademicYear != nil {
		tx = tx.Where("enrollment_academic_year = ?", *q.AcademicYear)
	}
	if q.Status != nil {
		tx = tx.Where("enrollment_status = ?", *q.Status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list enrollments")
	}
	var items []model.EnrollmentModel
	if err := tx.Order("enrollment_created_at DESC").Offset(paging.Offset).Limit(paging.Limit).Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list enrollments")
	}
	return helper.SuccessList(c, "Enrollments fetched", items, helper.BuildPagination(total, paging, len(items)))
}

// PUT /api/a/enrollments/:id
func (ctrl *EnrollmentController) UpdateEnrollment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid enrollment id")
	}
	var req dto.UpdateEnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	repo := ctrl.repo(c)
	var m model.EnrollmentModel
	if err := repo.First(&m, "enrollment_id = ?", id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Enrollment not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch enrollment")
	}

	if req.EnrollmentClassID != nil {
		m.EnrollmentClassID = *req.EnrollmentClassID
	}
	if req.EnrollmentStatus != nil {
		m.EnrollmentStatus = *req.EnrollmentStatus
	}
	if err := repo.Save(&m); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update enrollment")
	}
	return helper.Success(c, "Enrollment updated", m)
}

// DELETE /api/a/enrollments/:id
func (ctrl *EnrollmentController) DeleteEnrollment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid enrollment id")
	}
	n, err := ctrl.repo(c).Delete("enrollment_id = ?", id)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete enrollment")
	}
	if n == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Enrollment not found")
	}
	return helper.Success(c, "Enrollment deleted", nil)
}
