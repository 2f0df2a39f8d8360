package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/academics/classes/dto"
	"schoolku_backend/internals/features/academics/classes/model"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/tenancy"
)

type ClassController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db, Validate: validator.New()}
}

func (ctrl *ClassController) repo(c *fiber.Ctx) tenancy.Scoped[model.ClassModel, *model.ClassModel] {
	return tenancy.Scope[model.ClassModel](c, ctrl.DB, "class_school_id")
}

// POST /api/a/classes
func (ctrl *ClassController) CreateClass(c *fiber.Ctx) error {
	var req dto.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctrl.repo(c).Create(m); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create class")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Class created", m)
}

// GET /api/a/classes
func (ctrl *ClassController) ListClasses(c *fiber.Ctx) error {
	var q dto.ListClassQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid query")
	}
	if err := ctrl.Validate.Struct(q); err != nil {
		return helper.ValidationError(c, err)
	}

	paging := helper.ResolvePaging(c, 20, 100)
	tx := ctrl.repo(c).Query()
	if q.GradeLevel != nil {
		tx = tx.Where("class_grade_level = ?", *q.GradeLevel)
	}
	if q.AcademicYear != nil {
		tx = tx.Where("class_academic_year = ?", *q.AcademicYear)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list classes")
	}
	var items []model.ClassModel
	if err := tx.Order("class_grade_level ASC, class_name ASC").Offset(paging.Offset).Limit(paging.Limit).Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list classes")
	}
	return helper.SuccessList(c, "Classes fetched", items, helper.BuildPagination(total, paging, len(items)))
}

// GET /api/a/classes/:id
func (ctrl *ClassController) GetClass(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid class id")
	}
	var m model.ClassModel
	if err := ctrl.repo(c).First(&m, "class_id = ?", id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Class not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch class")
	}
	return helper.Success(c, "Class fetched", m)
}

// PUT /api/a/classes/:id
func (ctrl *ClassController) UpdateClass(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid class id")
	}
	var req dto.UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	repo := ctrl.repo(c)
	var m model.ClassModel
	if err := repo.First(&m, "class_id = ?", id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Class not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch class")
	}

	req.ApplyToModel(&m)
	if err := repo.Save(&m); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update class")
	}
	return helper.Success(c, "Class updated", m)
}

// DELETE /api/a/classes/:id
func (ctrl *ClassController) DeleteClass(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid class id")
	}
	n, err := ctrl.repo(c).Delete("class_id = ?", id)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete class")
	}
	if n == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Class not found")
	}
	return helper.Success(c, "Class deleted", nil)
}
