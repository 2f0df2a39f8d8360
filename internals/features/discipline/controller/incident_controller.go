package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/discipline/dto"
	"schoolku_backend/internals/features/discipline/model"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/tenancy"
)

type IncidentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewIncidentController(db *gorm.DB) *IncidentController {
	return &IncidentController{DB: db, Validate: validator.New()}
}

func (ctrl *IncidentController) repo(c *fiber.Ctx) tenancy.Scoped[model.IncidentModel, *model.IncidentModel] {
	return tenancy.Scope[model.IncidentModel](c, ctrl.DB, "incident_school_id")
}

// POST /api/a/discipline/incidents
func (ctrl *IncidentController) CreateIncident(c *fiber.Ctx) error {
	var req dto.CreateIncidentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var reportedBy *uuid.UUID
	if id, err := helper.GetUserIDFromToken(c); err == nil {
		reportedBy = &id
	}

	m := req.ToModel(reportedBy)
	if err := ctrl.repo(c).Create(m); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create incident")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Incident created", m)
}

// GET /api/a/discipline/incidents
func (ctrl *IncidentController) ListIncidents(c *fiber.Ctx) error {
	var q dto.ListIncidentQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid query")
	}
	if err := ctrl.Validate.Struct(q); err != nil {
		return helper.ValidationError(c, err)
	}

	paging := helper.ResolvePaging(c, 20, 100)
	tx := ctrl.repo(c).Query()
	if q.StudentID != nil {
		tx = tx.Where("incident_student_id = ?", *q.StudentID)
	}
	if q.Severity != nil {
		tx = tx.Where("incident_severity = ?", *q.Severity)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list incidents")
	}
	var items []model.IncidentModel
	if err := tx.Order("incident_date DESC").Offset(paging.Offset).Limit(paging.Limit).Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list incidents")
	}
	return helper.SuccessList(c, "Incidents fetched", items, helper.BuildPagination(total, paging, len(items)))
}

// GET /api/a/discipline/incidents/:id
func (ctrl *IncidentController) GetIncident(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid incident id")
	}
	var m model.IncidentModel
	if err := ctrl.repo(c).First(&m, "incident_id = ?", id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Incident not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch incident")
	}
	return helper.Success(c, "Incident fetched", m)
}

// PUT /api/a/discipline/incidents/:id
func (ctrl *IncidentController) UpdateIncident(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid incident id")
	}
	var req dto.UpdateIncidentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	repo := ctrl.repo(c)
	var m model.IncidentModel
	if err := repo.First(&m, "incident_id = ?", id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Incident not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch incident")
	}

	req.ApplyToModel(&m)
	if err := repo.Save(&m); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update incident")
	}
	return helper.Success(c, "Incident updated", m)
}

// DELETE /api/a/discipline/incidents/:id
func (ctrl *IncidentController) DeleteIncident(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid incident id")
	}
	n, err := ctrl.repo(c).Delete("incident_id = ?", id)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete incident")
	}
	if n == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Incident not found")
	}
	return helper.Success(c, "Incident deleted", nil)
}
