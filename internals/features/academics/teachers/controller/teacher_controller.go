package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/academics/teachers/dto"
	"schoolku_backend/internals/features/academics/teachers/model"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/tenancy"
)

type TeacherController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTeacherController(db *gorm.DB) *TeacherController {
	return &TeacherController{DB: db, Validate: validator.New()}
}

func (ctrl *TeacherController) repo(c *fiber.Ctx) tenancy.Scoped[model.TeacherModel, *model.TeacherModel] {
	return tenancy.Scope[model.TeacherModel](c, ctrl.DB, "teacher_school_id")
}

// POST /api/a/teachers
func (ctrl *TeacherController) CreateTeacher(c *fiber.Ctx) error {
	var req dto.CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	repo := ctrl.repo(c)
	dup, err := repo.Count("teacher_staff_no = ?", req.TeacherStaffNo)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create teacher")
	}
	if dup > 0 {
		return helper.Error(c, fiber.StatusConflict, "Staff number already in use")
	}

	m := req.ToModel()
	if err := repo.Create(m); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create teacher")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Teacher created", m)
}

// GET /api/a/teachers
func (ctrl *TeacherController) ListTeachers(c *fiber.Ctx) error {
	var q dto.ListTeacherQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid query")
	}
	if err := ctrl.Validate.Struct(q); err != nil {
		return helper.ValidationError(c, err)
	}

	paging := helper.ResolvePaging(c, 20, 100)
	tx := ctrl.repo(c).Query()
	if q.EmploymentStatus != nil {
		tx = tx.Where("teacher_employment_status = ?", *q.EmploymentStatus)
	}
	if q.Search != nil && strings.TrimSpace(*q.Search) != "" {
		like := "%" + strings.TrimSpace(*q.Search) + "%"
		tx = tx.Where("teacher_full_name ILIKE ? OR teacher_staff_no ILIKE ?", like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list teachers")
	}
	var items []model.TeacherModel
	if err := tx.Order("teacher_created_at DESC").Offset(paging.Offset).Limit(paging.Limit).Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list teachers")
	}
	return helper.SuccessList(c, "Teachers fetched", items, helper.BuildPagination(total, paging, len(items)))
}

// GET /api/a/teachers/:id
func (ctrl *TeacherController) GetTeacher(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid teacher id")
	}
	var m model.TeacherModel
	if err := ctrl.repo(c).First(&m, "teacher_id = ?", id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Teacher not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch teacher")
	}
	return helper.Success(c, "Teacher fetched", m)
}

// PUT /api/a/teachers/:id
func (ctrl *TeacherController) UpdateTeacher(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid teacher id")
	}
	var req dto.UpdateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	repo := ctrl.repo(c)
	var m model.TeacherModel
	if err := repo.First(&m, "teacher_id = ?", id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Teacher not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch teacher")
	}

	req.ApplyToModel(&m)
	if err := repo.Save(&m); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update teacher")
	}
	return helper.Success(c, "Teacher updated", m)
}

// DELETE /api/a/teachers/:id
func (ctrl *TeacherController) DeleteTeacher(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid teacher id")
	}
	n, err := ctrl.repo(c).Delete("teacher_id = ?", id)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete teacher")
	}
	if n == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Teacher not found")
	}
	return helper.Success(c, "Teacher deleted", nil)
}
