package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/academics/attendance/dto"
	"schoolku_backend/internals/features/academics/attendance/model"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/tenancy"
)

type AttendanceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db, Validate: validator.New()}
}

func (ctrl *AttendanceController) repo(c *fiber.Ctx) tenancy.Scoped[model.AttendanceModel, *model.AttendanceModel] {
	return tenancy.Scope[model.AttendanceModel](c, ctrl.DB, "attendance_school_id")
}

func recordedBy(c *fiber.Ctx) *uuid.UUID {
	if id, err := helper.GetUserIDFromToken(c); err == nil {
		return &id
	}
	return nil
}

// POST /api/a/attendance
func (ctrl *AttendanceController) RecordAttendance(c *fiber.Ctx) error {
	var req dto.RecordAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	repo := ctrl.repo(c)

	// One record per student per day. Re-marking updates the existing row.
	var existing model.AttendanceModel
	err := repo.First(&existing, "attendance_student_id = ? AND attendance_date = ?",
		req.AttendanceStudentID, req.AttendanceDate)
	switch {
	case err == nil:
		existing.AttendanceStatus = req.AttendanceStatus
		existing.AttendanceRemarks = req.AttendanceRemarks
		existing.AttendanceRecordedBy = recordedBy(c)
		if err := repo.Save(&existing); err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to record attendance")
		}
		return helper.Success(c, "Attendance updated", existing)
	case errors.Is(err, gorm.ErrRecordNotFound):
		m := req.ToModel(recordedBy(c))
		if err := repo.Create(m); err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to record attendance")
		}
		return helper.SuccessWithCode(c, fiber.StatusCreated, "Attendance recorded", m)
	default:
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to record attendance")
	}
}

// POST /api/a/attendance/bulk
func (ctrl *AttendanceController) BulkRecordAttendance(c *fiber.Ctx) error {
	var req dto.BulkRecordAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	repo := ctrl.repo(c)
	by := recordedBy(c)

	saved := 0
	for _, e := range req.Entries {
		m := &model.AttendanceModel{
			AttendanceStudentID:  e.AttendanceStudentID,
			AttendanceClassID:    req.AttendanceClassID,
			AttendanceDate:       req.AttendanceDate,
			AttendanceStatus:     e.AttendanceStatus,
			AttendanceRemarks:    e.AttendanceRemarks,
			AttendanceRecordedBy: by,
		}

		var existing model.AttendanceModel
		err := repo.First(&existing, "attendance_student_id = ? AND attendance_date = ?",
			e.AttendanceStudentID, req.AttendanceDate)
		switch {
		case err == nil:
			existing.AttendanceStatus = e.AttendanceStatus
			existing.AttendanceRemarks = e.AttendanceRemarks
			existing.AttendanceRecordedBy = by
			if err := repo.Save(&existing); err != nil {
				log.Printf("[ATTENDANCE] bulk save failed for student %s: %v", e.AttendanceStudentID, err)
				continue
			}
			saved++
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := repo.Create(m); err != nil {
				log.Printf("[ATTENDANCE] bulk create failed for student %s: %v", e.AttendanceStudentID, err)
				continue
			}
			saved++
		default:
			log.Printf("[ATTENDANCE] bulk lookup failed for student %s: %v", e.AttendanceStudentID, err)
		}
	}

	return helper.Success(c, "Attendance recorded", fiber.Map{
		"requested": len(req.Entries),
		"saved":     saved,
	})
}

// GET /api/a/attendance
func (ctrl *AttendanceController) ListAttendance(c *fiber.Ctx) error {
	var q dto.ListAttendanceQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid query")
	}
	if err := ctrl.Validate.Struct(q); err != nil {
		return helper.ValidationError(c, err)
	}

	paging := helper.ResolvePaging(c, 50, 200)
	tx := ctrl.repo(c).Query()
	if q.StudentID != nil {
		tx = tx.Where("attendance_student_id = ?", *q.StudentID)
	}
	if q.ClassID != nil {
		tx = tx.Where("attendance_class_id = ?", *q.ClassID)
	}
	if q.DateFrom != nil {
		tx = tx.Where("attendance_date >= ?", *q.DateFrom)
	}
	if q.DateTo != nil {
		tx = tx.Where("attendance_date <= ?", *q.DateTo)
	}
	if q.Status != nil {
		tx = tx.Where("attendance_status = ?", *q.Status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list attendance")
	}
	var items []model.AttendanceModel
	if err := tx.Order("attendance_date DESC").Offset(paging.Offset).Limit(paging.Limit).Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list attendance")
	}
	return helper.SuccessList(c, "Attendance fetched", items, helper.BuildPagination(total, paging, len(items)))
}

// DELETE /api/a/attendance/:id
func (ctrl *AttendanceController) DeleteAttendance(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid attendance id")
	}
	n, err := ctrl.repo(c).Delete("attendance_id = ?", id)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete attendance record")
	}
	if n == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Attendance record not found")
	}
	return helper.Success(c, "Attendance record deleted", nil)
}
