package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/academics/exams/dto"
	"schoolku_backend/internals/features/academics/exams/model"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/tenancy"
)

type ExamController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewExamController(db *gorm.DB) *ExamController {
	return &ExamController{DB: db, Validate: validator.New()}
}

func (ctrl *ExamController) repo(c *fiber.Ctx) tenancy.Scoped[model.ExamModel, *model.ExamModel] {
	return tenancy.Scope[model.ExamModel](c, ctrl.DB, "exam_school_id")
}

// POST /api/a/exams
func (ctrl *ExamController) CreateExam(c *fiber.Ctx) error {
	var req dto.CreateExamRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctrl.repo(c).Create(m); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create exam")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Exam created", m)
}

// GET /api/a/exams
func (ctrl *ExamController) ListExams(c *fiber.Ctx) error {
	var q dto.ListExamQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid query")
	}
	if err := ctrl.Validate.Struct(q); err != nil {
		return helper.ValidationError(c, err)
	}

	paging := helper.ResolvePaging(c, 20, 100)
	tx := ctrl.repo(c).Query()
	if q.ClassID != nil {
		tx = tx.Where("exam_class_id = ?", *q.ClassID)
	}
	if q.SubjectID != nil {
		tx = tx.Where("exam_subject_id = ?", *q.SubjectID)
	}
	if q.Status != nil {
		tx = tx.Where("exam_status = ?", *q.Status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list exams")
	}
	var items []model.ExamModel
	if err := tx.Order("exam_date DESC").Offset(paging.Offset).Limit(paging.Limit).Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list exams")
	}
	return helper.SuccessList(c, "Exams fetched", items, helper.BuildPagination(total, paging, len(items)))
}

// GET /api/a/exams/:id
func (ctrl *ExamController) GetExam(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid exam id")
	}
	var m model.ExamModel
	if err := ctrl.repo(c).First(&m, "exam_id = ?", id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Exam not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch exam")
	}
	return helper.Success(c, "Exam fetched", m)
}

// PUT /api/a/exams/:id
func (ctrl *ExamController) UpdateExam(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid exam id")
	}
	var req dto.UpdateExamRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	repo := ctrl.repo(c)
	var m model.ExamModel
	if err := repo.First(&m, "exam_id = ?", id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Exam not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch exam")
	}

	req.ApplyToModel(&m)
	if err := repo.Save(&m); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update exam")
	}
	return helper.Success(c, "Exam updated", m)
}

// DELETE /api/a/exams/:id
func (ctrl *ExamController) DeleteExam(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid exam id")
	}
	n, err := ctrl.repo(c).Delete("exam_id = ?", id)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete exam")
	}
	if n == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Exam not found")
	}
	return helper.Success(c, "Exam deleted", nil)
}
