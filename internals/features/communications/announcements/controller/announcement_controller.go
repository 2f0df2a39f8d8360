package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/communications/announcements/dto"
	"schoolku_backend/internals/features/communications/announcements/model"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/tenancy"
)

type AnnouncementController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAnnouncementController(db *gorm.DB) *AnnouncementController {
	return &AnnouncementController{DB: db, Validate: validator.New()}
}

func (ctrl *AnnouncementController) repo(c *fiber.Ctx) tenancy.Scoped[model.AnnouncementModel, *model.AnnouncementModel] {
	return tenancy.Scope[model.AnnouncementModel](c, ctrl.DB, "announcement_school_id")
}

// POST /api/a/announcements
func (ctrl *AnnouncementController) CreateAnnouncement(c *fiber.Ctx) error {
	var req dto.CreateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var createdBy *uuid.UUID
	if id, err := helper.GetUserIDFromToken(c); err == nil {
		createdBy = &id
	}

	m := req.ToModel(createdBy)
	if err := ctrl.repo(c).Create(m); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create announcement")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Announcement created", m)
}

// GET /api/a/announcements
func (ctrl *AnnouncementController) ListAnnouncements(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)
	tx := ctrl.repo(c).Query()

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list announcements")
	}
	var items []model.AnnouncementModel
	if err := tx.Order("announcement_published_at DESC").Offset(paging.Offset).Limit(paging.Limit).Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list announcements")
	}
	return helper.SuccessList(c, "Announcements fetched", items, helper.BuildPagination(total, paging, len(items)))
}

// GET /api/u/announcements — live announcements visible to the caller's role
func (ctrl *AnnouncementController) ListMyAnnouncements(c *fiber.Ctx) error {
	role := helper.GetRoleFromToken(c)
	now := time.Now()

	tx := ctrl.repo(c).Query().
		Where("announcement_published_at IS NOT NULL AND announcement_published_at <= ?", now).
		Where("announcement_expires_at IS NULL OR announcement_expires_at > ?", now)
	if role != "" {
		tx = tx.Where("announcement_audience IS NULL OR cardinality(announcement_audience) = 0 OR ? = ANY(announcement_audience)", role)
	}

	var items []model.AnnouncementModel
	if err := tx.Order("announcement_published_at DESC").Limit(50).Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list announcements")
	}
	return helper.Success(c, "Announcements fetched", items)
}

// PUT /api/a/announcements/:id
func (ctrl *AnnouncementController) UpdateAnnouncement(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid announcement id")
	}
	var req dto.UpdateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	repo := ctrl.repo(c)
	var m model.AnnouncementModel
	if err := repo.First(&m, "announcement_id = ?", id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Announcement not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch announcement")
	}

	req.ApplyToModel(&m)
	if err := repo.Save(&m); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update announcement")
	}
	return helper.Success(c, "Announcement updated", m)
}

// DELETE /api/a/announcements/:id
func (ctrl *AnnouncementController) DeleteAnnouncement(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid announcement id")
	}
	n, err := ctrl.repo(c).Delete("announcement_id = ?", id)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete announcement")
	}
	if n == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Announcement not found")
	}
	return helper.Success(c, "Announcement deleted", nil)
}
