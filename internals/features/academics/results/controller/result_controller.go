package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	examModel "schoolku_backend/internals/features/academics/exams/model"
	"schoolku_backend/internals/features/academics/results/dto"
	"schoolku_backend/internals/features/academics/results/model"
	studentModel "schoolku_backend/internals/features/academics/students/model"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/tenancy"
)

type ResultController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewResultController(db *gorm.DB) *ResultController {
	return &ResultController{DB: db, Validate: validator.New()}
}

func (ctrl *ResultController) repo(c *fiber.Ctx) tenancy.Scoped[model.ResultModel, *model.ResultModel] {
	return tenancy.Scope[model.ResultModel](c, ctrl.DB, "result_school_id")
}

// POST /api/a/results — one row per exam+student, re-recording overwrites
func (ctrl *ResultController) RecordResult(c *fiber.Ctx) error {
	var req dto.RecordResultRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// Score is graded against the exam's max, so the exam must exist in this
	// school first.
	var exam examModel.ExamModel
	if err := tenancy.Scope[examModel.ExamModel](c, ctrl.DB, "exam_school_id").
		First(&exam, "exam_id = ?", req.ResultExamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Exam not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to record result")
	}
	if req.ResultScore > exam.ExamMaxScore {
		return helper.Error(c, fiber.StatusBadRequest, "Score exceeds the exam max score")
	}

	repo := ctrl.repo(c)
	grade := model.GradeFor(req.ResultScore, exam.ExamMaxScore)

	var existing model.ResultModel
	err := repo.First(&existing, "result_exam_id = ? AND result_student_id = ?",
		req.ResultExamID, req.ResultStudentID)
	switch {
	case err == nil:
		existing.ResultScore = req.ResultScore
		existing.ResultGrade = grade
		existing.ResultRemarks = req.ResultRemarks
		if err := repo.Save(&existing); err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to record result")
		}
		return helper.Success(c, "Result updated", existing)
	case errors.Is(err, gorm.ErrRecordNotFound):
		m := &model.ResultModel{
			ResultExamID:    req.ResultExamID,
			ResultStudentID: req.ResultStudentID,
			ResultScore:     req.ResultScore,
			ResultGrade:     grade,
			ResultRemarks:   req.ResultRemarks,
		}
		if err := repo.Create(m); err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to record result")
		}
		return helper.SuccessWithCode(c, fiber.StatusCreated, "Result recorded", m)
	default:
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to record result")
	}
}

// GET /api/a/results
func (ctrl *ResultController) ListResults(c *fiber.Ctx) error {
	var q dto.ListResultQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid query")
	}

	paging := helper.ResolvePaging(c, 50, 200)
	tx := ctrl.repo(c).Query()
	if q.ExamID != nil {
		tx = tx.Where("result_exam_id = ?", *q.ExamID)
	}
	if q.StudentID != nil {
		tx = tx.Where("result_student_id = ?", *q.StudentID)
	}
	if q.Published != nil {
		tx = tx.Where("result_published = ?", *q.Published)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list results")
	}
	var items []model.ResultModel
	if err := tx.Order("result_created_at DESC").Offset(paging.Offset).Limit(paging.Limit).Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list results")
	}
	return helper.SuccessList(c, "Results fetched", items, helper.BuildPagination(total, paging, len(items)))
}

// POST /api/a/results/publish/:examId — flips every result of the exam visible
func (ctrl *ResultController) PublishExamResults(c *fiber.Ctx) error {
	examID, err := uuid.Parse(c.Params("examId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid exam id")
	}

	n, err := ctrl.repo(c).Updates(map[string]interface{}{"result_published": true},
		"result_exam_id = ?", examID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to publish results")
	}
	return helper.Success(c, "Results published", fiber.Map{"published": n})
}

// DELETE /api/a/results/:id
func (ctrl *ResultController) DeleteResult(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid result id")
	}
	n, err := ctrl.repo(c).Delete("result_id = ?", id)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete result")
	}
	if n == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Result not found")
	}
	return helper.Success(c, "Result deleted", nil)
}

// GET /api/u/results/me — a student's own published results
func (ctrl *ResultController) MyResults(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var student studentModel.StudentModel
	if err := tenancy.Scope[studentModel.StudentModel](c, ctrl.DB, "student_school_id").
		First(&student, "student_user_id = ?", userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "No student profile linked to this account")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch results")
	}

	var items []model.ResultModel
	if err := ctrl.repo(c).Find(&items,
		"result_student_id = ? AND result_published = ?", student.StudentID, true); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch results")
	}
	return helper.Success(c, "Results fetched", items)
}
