package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/communications/calendar/dto"
	"schoolku_backend/internals/features/communications/calendar/model"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/tenancy"
)

type EventController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db, Validate: validator.New()}
}

func (ctrl *EventController) repo(c *fiber.Ctx) tenancy.Scoped[model.EventModel, *model.EventModel] {
	return tenancy.Scope[model.EventModel](c, ctrl.DB, "event_school_id")
}

// POST /api/a/calendar
func (ctrl *EventController) CreateEvent(c *fiber.Ctx) error {
	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctrl.repo(c).Create(m); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create event")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Event created", m)
}

// GET /api/u/calendar — every member of the school can read the calendar
func (ctrl *EventController) ListEvents(c *fiber.Ctx) error {
	tx := ctrl.repo(c).Query()
	if from := c.Query("from"); from != "" {
		tx = tx.Where("event_ends_at >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		tx = tx.Where("event_starts_at <= ?", to)
	}

	var items []model.EventModel
	if err := tx.Order("event_starts_at ASC").Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list events")
	}
	return helper.Success(c, "Events fetched", items)
}

// PUT /api/a/calendar/:id
func (ctrl *EventController) UpdateEvent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid event id")
	}
	var req dto.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	repo := ctrl.repo(c)
	var m model.EventModel
	if err := repo.First(&m, "event_id = ?", id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch event")
	}

	req.ApplyToModel(&m)
	if m.EventEndsAt.Before(m.EventStartsAt) {
		return helper.Error(c, fiber.StatusBadRequest, "Event cannot end before it starts")
	}
	if err := repo.Save(&m); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update event")
	}
	return helper.Success(c, "Event updated", m)
}

// DELETE /api/a/calendar/:id
func (ctrl *EventController) DeleteEvent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid event id")
	}
	n, err := ctrl.repo(c).Delete("event_id = ?", id)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete event")
	}
	if n == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Event not found")
	}
	return helper.Success(c, "Event deleted", nil)
}
