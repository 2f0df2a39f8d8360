package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/schools/dto"
	"schoolku_backend/internals/features/schools/service"
	helper "schoolku_backend/internals/helpers"
)

type SchoolController struct {
	Service  *service.SchoolService
	Validate *validator.Validate
}

func NewSchoolController(db *gorm.DB) *SchoolController {
	return &SchoolController{
		Service:  service.NewSchoolService(db),
		Validate: validator.New(),
	}
}

// POST /api/s/schools
func (ctrl *SchoolController) CreateSchool(c *fiber.Ctx) error {
	var req dto.CreateSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := ctrl.Service.Create(c.UserContext(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSubdomainTaken):
			return helper.Error(c, fiber.StatusConflict, "Subdomain already taken")
		case errors.Is(err, service.ErrEmailTaken):
			return helper.Error(c, fiber.StatusConflict, "Email already taken")
		default:
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to create school")
		}
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "School created", dto.NewSchoolResponse(m))
}

// GET /api/s/schools
func (ctrl *SchoolController) ListSchools(c *fiber.Ctx) error {
	var q dto.ListSchoolQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid query")
	}
	if err := ctrl.Validate.Struct(q); err != nil {
		return helper.ValidationError(c, err)
	}

	paging := helper.ResolvePaging(c, 20, 100)
	items, total, err := ctrl.Service.FindAll(c.UserContext(), service.ListFilters{
		SubscriptionStatus: q.SubscriptionStatus,
		IsActive:           q.IsActive,
		Search:             q.Search,
	}, paging)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list schools")
	}
	return helper.SuccessList(c, "Schools fetched", dto.NewSchoolResponses(items),
		helper.BuildPagination(total, paging, len(items)))
}

// GET /api/s/schools/:id
func (ctrl *SchoolController) GetSchool(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid school id")
	}
	m, err := ctrl.Service.FindByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "School not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch school")
	}
	return helper.Success(c, "School fetched", dto.NewSchoolResponse(m))
}

// GET /api/p/schools/subdomain/:subdomain — public tenant discovery for the
// frontend bootstrap.
func (ctrl *SchoolController) GetSchoolBySubdomain(c *fiber.Ctx) error {
	subdomain := c.Params("subdomain")
	m, err := ctrl.Service.FindBySubdomain(c.UserContext(), subdomain)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "School not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch school")
	}
	return helper.Success(c, "School fetched", dto.NewSchoolResponse(m))
}

// PUT /api/s/schools/:id
func (ctrl *SchoolController) UpdateSchool(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid school id")
	}
	var req dto.UpdateSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := ctrl.Service.Update(c.UserContext(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return helper.Error(c, fiber.StatusNotFound, "School not found")
		case errors.Is(err, service.ErrSubdomainTaken):
			return helper.Error(c, fiber.StatusConflict, "Subdomain already taken")
		case errors.Is(err, service.ErrEmailTaken):
			return helper.Error(c, fiber.StatusConflict, "Email already taken")
		default:
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to update school")
		}
	}
	return helper.Success(c, "School updated", dto.NewSchoolResponse(m))
}

// DELETE /api/s/schools/:id — deactivates, never drops the row
func (ctrl *SchoolController) DeleteSchool(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid school id")
	}
	if err := ctrl.Service.Remove(c.UserContext(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "School not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete school")
	}
	return helper.Success(c, "School deactivated", nil)
}

// PUT /api/s/schools/:id/subscription
func (ctrl *SchoolController) UpdateSubscription(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid school id")
	}
	var req dto.UpdateSubscriptionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := ctrl.Service.UpdateSubscription(c.UserContext(), id, &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "School not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update subscription")
	}
	return helper.Success(c, "Subscription updated", dto.NewSchoolResponse(m))
}

// POST /api/s/schools/:id/statistics
func (ctrl *SchoolController) RefreshStatistics(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid school id")
	}
	m, err := ctrl.Service.UpdateStatistics(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "School not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to refresh statistics")
	}
	return helper.Success(c, "Statistics refreshed", dto.NewSchoolResponse(m))
}
