package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/platform/dto"
	"schoolku_backend/internals/features/platform/model"
	helper "schoolku_backend/internals/helpers"
)

type SystemSettingController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSystemSettingController(db *gorm.DB) *SystemSettingController {
	return &SystemSettingController{DB: db, Validate: validator.New()}
}

// GET /api/s/settings
func (ctrl *SystemSettingController) ListSettings(c *fiber.Ctx) error {
	var items []model.SystemSettingModel
	if err := ctrl.DB.WithContext(c.UserContext()).Order("setting_key ASC").Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list settings")
	}
	return helper.Success(c, "Settings fetched", items)
}

// PUT /api/s/settings/:key — creates the row on first write
func (ctrl *SystemSettingController) UpsertSetting(c *fiber.Ctx) error {
	key := strings.TrimSpace(c.Params("key"))
	if key == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid setting key")
	}
	var req dto.UpsertSettingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	db := ctrl.DB.WithContext(c.UserContext())
	var m model.SystemSettingModel
	err := db.First(&m, "setting_key = ?", key).Error
	switch {
	case err == nil:
		m.SettingValue = req.SettingValue
		if req.SettingDescription != nil {
			m.SettingDescription = req.SettingDescription
		}
		if req.SettingIsPublic != nil {
			m.SettingIsPublic = *req.SettingIsPublic
		}
		if err := db.Save(&m).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to update setting")
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		m = model.SystemSettingModel{
			SettingKey:         key,
			SettingValue:       req.SettingValue,
			SettingDescription: req.SettingDescription,
		}
		if req.SettingIsPublic != nil {
			m.SettingIsPublic = *req.SettingIsPublic
		}
		if err := db.Create(&m).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to save setting")
		}
	default:
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save setting")
	}
	return helper.Success(c, "Setting saved", m)
}

// GET /api/p/settings — only rows flagged public (branding etc.)
func (ctrl *SystemSettingController) ListPublicSettings(c *fiber.Ctx) error {
	var items []model.SystemSettingModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("setting_is_public = ?", true).
		Order("setting_key ASC").Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list settings")
	}
	return helper.Success(c, "Settings fetched", items)
}
