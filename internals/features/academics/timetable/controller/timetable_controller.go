package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/academics/timetable/dto"
	"schoolku_backend/internals/features/academics/timetable/model"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/tenancy"
)

type TimetableController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTimetableController(db *gorm.DB) *TimetableController {
	return &TimetableController{DB: db, Validate: validator.New()}
}

func (ctrl *TimetableController) repo(c *fiber.Ctx) tenancy.Scoped[model.TimetableModel, *model.TimetableModel] {
	return tenancy.Scope[model.TimetableModel](c, ctrl.DB, "timetable_school_id")
}

// POST /api/a/timetable — a class cannot start two sessions at the same slot
func (ctrl *TimetableController) CreateEntry(c *fiber.Ctx) error {
	var req dto.CreateTimetableEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	repo := ctrl.repo(c)
	dup, err := repo.Count(
		"timetable_class_id = ? AND timetable_day_of_week = ? AND timetable_start_time = ?",
		req.TimetableClassID, req.TimetableDayOfWeek, req.TimetableStartTime)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create timetable entry")
	}
	if dup > 0 {
		return helper.Error(c, fiber.StatusConflict, "Class already has a session at this time")
	}

	m := req.ToModel()
	if err := repo.Create(m); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create timetable entry")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Timetable entry created", m)
}

// GET /api/a/timetable/class/:classId
func (ctrl *TimetableController) ListByClass(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Params("classId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid class id")
	}
	var items []model.TimetableModel
	if err := ctrl.repo(c).Find(&items, "timetable_class_id = ?", classID); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch timetable")
	}
	model.SortEntries(items)
	return helper.Success(c, "Timetable fetched", items)
}

// GET /api/a/timetable/teacher/:teacherId
func (ctrl *TimetableController) ListByTeacher(c *fiber.Ctx) error {
	teacherID, err := uuid.Parse(c.Params("teacherId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid teacher id")
	}
	var items []model.TimetableModel
	if err := ctrl.repo(c).Find(&items, "timetable_teacher_id = ?", teacherID); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch timetable")
	}
	model.SortEntries(items)
	return helper.Success(c, "Timetable fetched", items)
}

// DELETE /api/a/timetable/:id
func (ctrl *TimetableController) DeleteEntry(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid timetable entry id")
	}
	n, err := ctrl.repo(c).Delete("timetable_id = ?", id)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete timetable entry")
	}
	if n == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Timetable entry not found")
	}
	return helper.Success(c, "Timetable entry deleted", nil)
}
