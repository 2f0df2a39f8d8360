package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/academics/assessments/dto"
	"schoolku_backend/internals/features/academics/assessments/model"
	classModel "schoolku_backend/internals/features/academics/classes/model"
	subjectModel "schoolku_backend/internals/features/academics/subjects/model"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/tenancy"
)

type AssessmentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAssessmentController(db *gorm.DB) *AssessmentController {
	return &AssessmentController{DB: db, Validate: validator.New()}
}

func (ctrl *AssessmentController) repo(c *fiber.Ctx) tenancy.Scoped[model.AssessmentModel, *model.AssessmentModel] {
	return tenancy.Scope[model.AssessmentModel](c, ctrl.DB, "assessment_school_id")
}

func (ctrl *AssessmentController) marks(c *fiber.Ctx) tenancy.Scoped[model.MarkModel, *model.MarkModel] {
	return tenancy.Scope[model.MarkModel](c, ctrl.DB, "mark_school_id")
}

// POST /api/a/assessments
func (ctrl *AssessmentController) CreateAssessment(c *fiber.Ctx) error {
	var req dto.CreateAssessmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	subjects := tenancy.Scope[subjectModel.SubjectModel](c, ctrl.DB, "subject_school_id")
	if n, err := subjects.Count("subject_id = ?", req.AssessmentSubjectID); err != nil || n == 0 {
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to create assessment")
		}
		return helper.Error(c, fiber.StatusNotFound, "Subject not found")
	}
	classes := tenancy.Scope[classModel.ClassModel](c, ctrl.DB, "class_school_id")
	if n, err := classes.Count("class_id = ?", req.AssessmentClassID); err != nil || n == 0 {
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to create assessment")
		}
		return helper.Error(c, fiber.StatusNotFound, "Class not found")
	}

	m := req.ToModel()
	if err := ctrl.repo(c).Create(m); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create assessment")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Assessment created", m)
}

// GET /api/a/assessments
func (ctrl *AssessmentController) ListAssessments(c *fiber.Ctx) error {
	var q dto.ListAssessmentQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid query")
	}

	paging := helper.ResolvePaging(c, 20, 100)
	tx := ctrl.repo(c).Query()
	if q.ClassID != nil {
		tx = tx.Where("assessment_class_id = ?", *q.ClassID)
	}
	if q.SubjectID != nil {
		tx = tx.Where("assessment_subject_id = ?", *q.SubjectID)
	}
	if q.Term != nil {
		tx = tx.Where("assessment_term = ?", *q.Term)
	}
	if q.AcademicYear != nil {
		tx = tx.Where("assessment_academic_year = ?", *q.AcademicYear)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list assessments")
	}
	var items []model.AssessmentModel
	if err := tx.Order("assessment_created_at DESC").Offset(paging.Offset).Limit(paging.Limit).Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list assessments")
	}
	return helper.SuccessList(c, "Assessments fetched", items, helper.BuildPagination(total, paging, len(items)))
}

// GET /api/a/assessments/:id
func (ctrl *AssessmentController) GetAssessment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid assessment id")
	}
	var m model.AssessmentModel
	if err := ctrl.repo(c).First(&m, "assessment_id = ?", id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Assessment not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch assessment")
	}
	return helper.Success(c, "Assessment fetched", m)
}

// POST /api/a/assessments/:id/marks — records a batch of marks, one upsert
// per student so re-submitting a sheet corrects instead of duplicating.
func (ctrl *AssessmentController) RecordMarks(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid assessment id")
	}
	var req dto.RecordMarksRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var assessment model.AssessmentModel
	if err := ctrl.repo(c).First(&assessment, "assessment_id = ?", id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Assessment not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to record marks")
	}

	marks := ctrl.marks(c)
	saved := 0
	for _, entry := range req.Marks {
		if entry.MarkScore > assessment.AssessmentMaxMarks {
			log.Printf("[ASSESSMENT] ❌ score %.2f above max for student %s, skipped", entry.MarkScore, entry.MarkStudentID)
			continue
		}

		var m model.MarkModel
		err := marks.First(&m, "mark_assessment_id = ? AND mark_student_id = ?", id, entry.MarkStudentID)
		switch {
		case err == nil:
			m.MarkScore = entry.MarkScore
			m.MarkRemarks = entry.MarkRemarks
			if err := marks.Save(&m); err != nil {
				log.Printf("[ASSESSMENT] ❌ failed to update mark for student %s: %v", entry.MarkStudentID, err)
				continue
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			m = model.MarkModel{
				MarkAssessmentID: id,
				MarkStudentID:    entry.MarkStudentID,
				MarkScore:        entry.MarkScore,
				MarkRemarks:      entry.MarkRemarks,
			}
			if err := marks.Create(&m); err != nil {
				log.Printf("[ASSESSMENT] ❌ failed to save mark for student %s: %v", entry.MarkStudentID, err)
				continue
			}
		default:
			log.Printf("[ASSESSMENT] ❌ mark lookup failed for student %s: %v", entry.MarkStudentID, err)
			continue
		}
		saved++
	}

	return helper.Success(c, "Marks recorded", dto.RecordMarksResponse{
		Requested: len(req.Marks),
		Saved:     saved,
	})
}

// GET /api/a/assessments/:id/marks
func (ctrl *AssessmentController) ListMarks(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid assessment id")
	}

	if n, err := ctrl.repo(c).Count("assessment_id = ?", id); err != nil || n == 0 {
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to list marks")
		}
		return helper.Error(c, fiber.StatusNotFound, "Assessment not found")
	}

	var items []model.MarkModel
	if err := ctrl.marks(c).Find(&items, "mark_assessment_id = ?", id); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list marks")
	}
	return helper.Success(c, "Marks fetched", items)
}

// POST /api/a/assessments/:id/publish
func (ctrl *AssessmentController) PublishAssessment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid assessment id")
	}
	n, err := ctrl.repo(c).Updates(map[string]interface{}{"assessment_status": "published"},
		"assessment_id = ?", id)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to publish assessment")
	}
	if n == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Assessment not found")
	}
	return helper.Success(c, "Assessment published", nil)
}

// DELETE /api/a/assessments/:id
func (ctrl *AssessmentController) DeleteAssessment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid assessment id")
	}

	if _, err := ctrl.marks(c).Delete("mark_assessment_id = ?", id); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete assessment")
	}
	n, err := ctrl.repo(c).Delete("assessment_id = ?", id)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete assessment")
	}
	if n == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Assessment not found")
	}
	return helper.Success(c, "Assessment deleted", nil)
}
