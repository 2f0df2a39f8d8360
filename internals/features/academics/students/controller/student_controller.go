package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/academics/students/dto"
	"schoolku_backend/internals/features/academics/students/model"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/tenancy"
)

type StudentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db, Validate: validator.New()}
}

func (ctrl *StudentController) repo(c *fiber.Ctx) tenancy.Scoped[model.StudentModel, *model.StudentModel] {
	return tenancy.Scope[model.StudentModel](c, ctrl.DB, "student_school_id")
}

// POST /api/a/students
func (ctrl *StudentController) CreateStudent(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	repo := ctrl.repo(c)

	// Admission numbers are unique within a school, not globally.
	dup, err := repo.Count("student_admission_no = ?", req.StudentAdmissionNo)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create student")
	}
	if dup > 0 {
		return helper.Error(c, fiber.StatusConflict, "Admission number already in use")
	}

	m := req.ToModel()
	if err := repo.Create(m); err != nil {
		log.Printf("[STUDENT] create failed: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create student")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Student created", m)
}

// GET /api/a/students
func (ctrl *StudentController) ListStudents(c *fiber.Ctx) error {
	var q dto.ListStudentQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid query")
	}
	if err := ctrl.Validate.Struct(q); err != nil {
		return helper.ValidationError(c, err)
	}

	paging := helper.ResolvePaging(c, 20, 100)
	tx := ctrl.repo(c).Query()
	if q.ClassID != nil {
		tx = tx.Where("student_class_id = ?", *q.ClassID)
	}
	if q.Status != nil {
		tx = tx.Where("student_status = ?", *q.Status)
	}
	if q.Search != nil && strings.TrimSpace(*q.Search) != "" {
		like := "%" + strings.TrimSpace(*q.Search) + "%"
		tx = tx.Where("student_first_name ILIKE ? OR student_last_name ILIKE ? OR student_admission_no ILIKE ?",
			like, like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list students")
	}
	var items []model.StudentModel
	if err := tx.Order("student_created_at DESC").Offset(paging.Offset).Limit(paging.Limit).Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list students")
	}
	return helper.SuccessList(c, "Students fetched", items, helper.BuildPagination(total, paging, len(items)))
}

// GET /api/a/students/:id
func (ctrl *StudentController) GetStudent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid student id")
	}
	var m model.StudentModel
	if err := ctrl.repo(c).First(&m, "student_id = ?", id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch student")
	}
	return helper.Success(c, "Student fetched", m)
}

// PUT /api/a/students/:id
func (ctrl *StudentController) UpdateStudent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid student id")
	}
	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	repo := ctrl.repo(c)
	var m model.StudentModel
	if err := repo.First(&m, "student_id = ?", id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch student")
	}

	req.ApplyToModel(&m)
	if err := repo.Save(&m); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update student")
	}
	return helper.Success(c, "Student updated", m)
}

// DELETE /api/a/students/:id
func (ctrl *StudentController) DeleteStudent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid student id")
	}
	n, err := ctrl.repo(c).Delete("student_id = ?", id)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete student")
	}
	if n == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Student not found")
	}
	return helper.Success(c, "Student deleted", nil)
}
