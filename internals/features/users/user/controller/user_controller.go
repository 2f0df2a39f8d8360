package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/users/user/dto"
	"schoolku_backend/internals/features/users/user/model"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/tenancy"
)

type UserController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, Validate: validator.New()}
}

func (ctrl *UserController) repo(c *fiber.Ctx) tenancy.Scoped[model.UserModel, *model.UserModel] {
	return tenancy.Scope[model.UserModel](c, ctrl.DB, "user_school_id")
}

// GET /api/a/users
func (ctrl *UserController) ListUsers(c *fiber.Ctx) error {
	var q dto.ListUserQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid query")
	}
	if err := ctrl.Validate.Struct(q); err != nil {
		return helper.ValidationError(c, err)
	}

	repo := ctrl.repo(c)
	paging := helper.ResolvePaging(c, 20, 100)

	tx := repo.Query()
	if q.Role != nil {
		tx = tx.Where("user_role = ?", *q.Role)
	}
	if q.Search != nil && strings.TrimSpace(*q.Search) != "" {
		like := "%" + strings.TrimSpace(*q.Search) + "%"
		tx = tx.Where("user_full_name ILIKE ? OR user_email ILIKE ?", like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list users")
	}

	var items []model.UserModel
	if err := tx.Order("user_created_at DESC").Offset(paging.Offset).Limit(paging.Limit).Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list users")
	}
	return helper.SuccessList(c, "Users fetched", dto.NewUserResponses(items),
		helper.BuildPagination(total, paging, len(items)))
}

// GET /api/a/users/:id
func (ctrl *UserController) GetUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var m model.UserModel
	if err := ctrl.repo(c).First(&m, "user_id = ?", id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}
	return helper.Success(c, "User fetched", dto.NewUserResponse(&m))
}

// PUT /api/a/users/:id
func (ctrl *UserController) UpdateUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid user id")
	}
	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	repo := ctrl.repo(c)
	var m model.UserModel
	if err := repo.First(&m, "user_id = ?", id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}

	req.ApplyToModel(&m)
	if err := repo.Save(&m); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update user")
	}
	return helper.Success(c, "User updated", dto.NewUserResponse(&m))
}

// DELETE /api/a/users/:id — deactivate, keep the row for audit
func (ctrl *UserController) DeactivateUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid user id")
	}

	n, err := ctrl.repo(c).Updates(map[string]interface{}{"user_is_active": false}, "user_id = ?", id)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to deactivate user")
	}
	if n == 0 {
		return helper.Error(c, fiber.StatusNotFound, "User not found")
	}
	return helper.Success(c, "User deactivated", nil)
}
