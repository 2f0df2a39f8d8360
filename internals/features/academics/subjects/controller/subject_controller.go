package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/academics/subjects/dto"
	"schoolku_backend/internals/features/academics/subjects/model"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/tenancy"
)

type SubjectController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{DB: db, Validate: validator.New()}
}

func (ctrl *SubjectController) repo(c *fiber.Ctx) tenancy.Scoped[model.SubjectModel, *model.SubjectModel] {
	return tenancy.Scope[model.SubjectModel](c, ctrl.DB, "subject_school_id")
}

// POST /api/a/subjects
func (ctrl *SubjectController) CreateSubject(c *fiber.Ctx) error {
	var req dto.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	repo := ctrl.repo(c)
	dup, err := repo.Count("subject_code = ?", req.SubjectCode)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create subject")
	}
	if dup > 0 {
		return helper.Error(c, fiber.StatusConflict, "Subject code already in use")
	}

	m := req.ToModel()
	if err := repo.Create(m); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create subject")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Subject created", m)
}

// GET /api/a/subjects
func (ctrl *SubjectController) ListSubjects(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)
	tx := ctrl.repo(c).Query()

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list subjects")
	}
	var items []model.SubjectModel
	if err := tx.Order("subject_code ASC").Offset(paging.Offset).Limit(paging.Limit).Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list subjects")
	}
	return helper.SuccessList(c, "Subjects fetched", items, helper.BuildPagination(total, paging, len(items)))
}

// GET /api/a/subjects/:id
func (ctrl *SubjectController) GetSubject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid subject id")
	}
	var m model.SubjectModel
	if err := ctrl.repo(c).First(&m, "subject_id = ?", id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Subject not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch subject")
	}
	return helper.Success(c, "Subject fetched", m)
}

// PUT /api/a/subjects/:id
func (ctrl *SubjectController) UpdateSubject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid subject id")
	}
	var req dto.UpdateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	repo := ctrl.repo(c)
	var m model.SubjectModel
	if err := repo.First(&m, "subject_id = ?", id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Subject not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch subject")
	}

	req.ApplyToModel(&m)
	if err := repo.Save(&m); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update subject")
	}
	return helper.Success(c, "Subject updated", m)
}

// DELETE /api/a/subjects/:id
func (ctrl *SubjectController) DeleteSubject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid subject id")
	}
	n, err := ctrl.repo(c).Delete("subject_id = ?", id)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete subject")
	}
	if n == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Subject not found")
	}
	return helper.Success(c, "Subject deleted", nil)
}
