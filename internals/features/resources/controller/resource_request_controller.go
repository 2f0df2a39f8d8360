package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	teacherModel "schoolku_backend/internals/features/academics/teachers/model"
	"schoolku_backend/internals/features/resources/dto"
	"schoolku_backend/internals/features/resources/model"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/tenancy"
)

type ResourceRequestController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewResourceRequestController(db *gorm.DB) *ResourceRequestController {
	return &ResourceRequestController{DB: db, Validate: validator.New()}
}

func (ctrl *ResourceRequestController) repo(c *fiber.Ctx) tenancy.Scoped[model.ResourceRequestModel, *model.ResourceRequestModel] {
	return tenancy.Scope[model.ResourceRequestModel](c, ctrl.DB, "request_school_id")
}

func (ctrl *ResourceRequestController) teacherForRequest(c *fiber.Ctx) (*teacherModel.TeacherModel, error) {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return nil, err
	}
	var teacher teacherModel.TeacherModel
	if err := tenancy.Scope[teacherModel.TeacherModel](c, ctrl.DB, "teacher_school_id").
		First(&teacher, "teacher_user_id = ?", userID); err != nil {
		return nil, err
	}
	return &teacher, nil
}

// POST /api/a/resources/requests — filed by the logged-in teacher
func (ctrl *ResourceRequestController) CreateRequest(c *fiber.Ctx) error {
	var req dto.CreateResourceRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	teacher, err := ctrl.teacherForRequest(c)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusForbidden, "Only teachers can file resource requests")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create resource request")
	}

	m := req.ToModel(teacher.TeacherID)
	if err := ctrl.repo(c).Create(m); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create resource request")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Resource request created", m)
}

// GET /api/a/resources/requests
func (ctrl *ResourceRequestController) ListRequests(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)
	tx := ctrl.repo(c).Query()
	if status := c.Query("status"); status != "" {
		tx = tx.Where("request_status = ?", status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list resource requests")
	}
	var items []model.ResourceRequestModel
	if err := tx.Order("request_created_at DESC").Offset(paging.Offset).Limit(paging.Limit).Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list resource requests")
	}
	return helper.SuccessList(c, "Resource requests fetched", items, helper.BuildPagination(total, paging, len(items)))
}

// GET /api/a/resources/requests/mine — the logged-in teacher's own requests
func (ctrl *ResourceRequestController) ListMyRequests(c *fiber.Ctx) error {
	teacher, err := ctrl.teacherForRequest(c)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Success(c, "Resource requests fetched", []model.ResourceRequestModel{})
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list resource requests")
	}

	var items []model.ResourceRequestModel
	if err := ctrl.repo(c).Find(&items, "request_teacher_id = ?", teacher.TeacherID); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list resource requests")
	}
	return helper.Success(c, "Resource requests fetched", items)
}

// PUT /api/a/resources/requests/:id/status — management decision
func (ctrl *ResourceRequestController) UpdateRequestStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid resource request id")
	}
	var req dto.UpdateResourceRequestStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	values := map[string]interface{}{"request_status": req.RequestStatus}
	if req.RequestAdminComment != nil {
		values["request_admin_comment"] = *req.RequestAdminComment
	}
	n, err := ctrl.repo(c).Updates(values, "request_id = ?", id)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update resource request")
	}
	if n == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Resource request not found")
	}
	return helper.Success(c, "Resource request updated", nil)
}
