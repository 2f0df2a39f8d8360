package controller

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/communications/notifications/dto"
	"schoolku_backend/internals/features/communications/notifications/model"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/tenancy"
)

type NotificationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db, Validate: validator.New()}
}

func (ctrl *NotificationController) repo(c *fiber.Ctx) tenancy.Scoped[model.NotificationModel, *model.NotificationModel] {
	return tenancy.Scope[model.NotificationModel](c, ctrl.DB, "notification_school_id")
}

// POST /api/a/notifications — fan out one message to many users
func (ctrl *NotificationController) SendNotification(c *fiber.Ctx) error {
	var req dto.SendNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	ntype := req.NotificationType
	if ntype == "" {
		ntype = "info"
	}

	repo := ctrl.repo(c)
	sent := 0
	for _, userID := range req.NotificationUserIDs {
		m := &model.NotificationModel{
			NotificationUserID: userID,
			NotificationType:   ntype,
			NotificationTitle:  req.NotificationTitle,
			NotificationBody:   req.NotificationBody,
		}
		if err := repo.Create(m); err != nil {
			log.Printf("[NOTIFICATION] create failed for user %s: %v", userID, err)
			continue
		}
		sent++
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Notifications sent", fiber.Map{
		"requested": len(req.NotificationUserIDs),
		"sent":      sent,
	})
}

// GET /api/u/notifications — the caller's inbox, newest first
func (ctrl *NotificationController) MyNotifications(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	paging := helper.ResolvePaging(c, 20, 100)
	tx := ctrl.repo(c).Query().Where("notification_user_id = ?", userID)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list notifications")
	}
	var items []model.NotificationModel
	if err := tx.Order("notification_created_at DESC").Offset(paging.Offset).Limit(paging.Limit).Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list notifications")
	}
	return helper.SuccessList(c, "Notifications fetched", items, helper.BuildPagination(total, paging, len(items)))
}

// POST /api/u/notifications/:id/read
func (ctrl *NotificationController) MarkAsRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid notification id")
	}

	now := time.Now()
	n, err := ctrl.repo(c).Updates(map[string]interface{}{
		"notification_is_read": true,
		"notification_read_at": now,
	}, "notification_id = ? AND notification_user_id = ?", id, userID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to mark notification")
	}
	if n == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Notification not found")
	}
	return helper.Success(c, "Notification marked as read", nil)
}

// POST /api/u/notifications/read-all
func (ctrl *NotificationController) MarkAllAsRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	now := time.Now()
	n, err := ctrl.repo(c).Updates(map[string]interface{}{
		"notification_is_read": true,
		"notification_read_at": now,
	}, "notification_user_id = ? AND notification_is_read = ?", userID, false)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to mark notifications")
	}
	return helper.Success(c, "Notifications marked as read", fiber.Map{"updated": n})
}
