package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	studentModel "schoolku_backend/internals/features/academics/students/model"
	"schoolku_backend/internals/features/finance/fees/dto"
	"schoolku_backend/internals/features/finance/fees/model"
	"schoolku_backend/internals/features/finance/fees/service"
	userModel "schoolku_backend/internals/features/users/user/model"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/tenancy"
)

// payerIdentity picks the name and email forwarded to the payment gateway:
// guardian name when known, the student's own otherwise, and the paying
// account's email.
func payerIdentity(student *studentModel.StudentModel, account *userModel.UserModel) (string, string) {
	name := "Guardian"
	if student != nil {
		name = strings.TrimSpace(student.StudentFirstName + " " + student.StudentLastName)
		if student.StudentGuardianName != nil && *student.StudentGuardianName != "" {
			name = *student.StudentGuardianName
		}
	}
	email := ""
	if account != nil {
		email = account.UserEmail
	}
	return name, email
}

type FeeController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewFeeController(db *gorm.DB) *FeeController {
	return &FeeController{DB: db, Validate: validator.New()}
}

func (ctrl *FeeController) repo(c *fiber.Ctx) tenancy.Scoped[model.FeeModel, *model.FeeModel] {
	return tenancy.Scope[model.FeeModel](c, ctrl.DB, "fee_school_id")
}

// POST /api/a/fees
func (ctrl *FeeController) CreateFee(c *fiber.Ctx) error {
	var req dto.CreateFeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := &model.FeeModel{
		FeeStudentID: req.FeeStudentID,
		FeeType:      req.FeeType,
		FeeLabel:     req.FeeLabel,
		FeeAmount:    req.FeeAmount,
		FeeDueDate:   req.FeeDueDate,
		FeeStatus:    "unpaid",
	}
	if err := ctrl.repo(c).Create(m); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create fee")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Fee created", m)
}

// GET /api/a/fees
func (ctrl *FeeController) ListFees(c *fiber.Ctx) error {
	var q dto.ListFeeQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid query")
	}
	if err := ctrl.Validate.Struct(q); err != nil {
		return helper.ValidationError(c, err)
	}

	paging := helper.ResolvePaging(c, 20, 100)
	tx := ctrl.repo(c).Query()
	if q.StudentID != nil {
		tx = tx.Where("fee_student_id = ?", *q.StudentID)
	}
	if q.Type != nil {
		tx = tx.Where("fee_type = ?", *q.Type)
	}
	if q.Status != nil {
		tx = tx.Where("fee_status = ?", *q.Status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list fees")
	}
	var items []model.FeeModel
	if err := tx.Order("fee_created_at DESC").Offset(paging.Offset).Limit(paging.Limit).Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list fees")
	}
	return helper.SuccessList(c, "Fees fetched", items, helper.BuildPagination(total, paging, len(items)))
}

// GET /api/a/fees/:id
func (ctrl *FeeController) GetFee(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid fee id")
	}
	var m model.FeeModel
	if err := ctrl.repo(c).First(&m, "fee_id = ?", id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Fee not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch fee")
	}
	return helper.Success(c, "Fee fetched", m)
}

// PUT /api/a/fees/:id
func (ctrl *FeeController) UpdateFee(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid fee id")
	}
	var req dto.UpdateFeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	repo := ctrl.repo(c)
	var m model.FeeModel
	if err := repo.First(&m, "fee_id = ?", id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Fee not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch fee")
	}

	if req.FeeLabel != nil {
		m.FeeLabel = *req.FeeLabel
	}
	if req.FeeAmount != nil {
		m.FeeAmount = *req.FeeAmount
	}
	if req.FeeDueDate != nil {
		m.FeeDueDate = req.FeeDueDate
	}
	if req.FeeStatus != nil {
		m.FeeStatus = *req.FeeStatus
		if *req.FeeStatus == "paid" && m.FeePaidAt == nil {
			now := time.Now()
			m.FeePaidAt = &now
		}
	}
	if err := repo.Save(&m); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update fee")
	}
	return helper.Success(c, "Fee updated", m)
}

// POST /api/u/fees/:id/pay — issues a Midtrans Snap token for an unpaid fee
func (ctrl *FeeController) PayFee(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid fee id")
	}

	repo := ctrl.repo(c)
	var m model.FeeModel
	if err := repo.First(&m, "fee_id = ?", id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Fee not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch fee")
	}
	if m.FeeStatus == "paid" {
		return helper.Error(c, fiber.StatusConflict, "Fee is already paid")
	}
	if m.FeeStatus == "cancelled" {
		return helper.Error(c, fiber.StatusConflict, "Fee is cancelled")
	}

	var payerStudent *studentModel.StudentModel
	var student studentModel.StudentModel
	if err := tenancy.Scope[studentModel.StudentModel](c, ctrl.DB, "student_school_id").
		First(&student, "student_id = ?", m.FeeStudentID); err == nil {
		payerStudent = &student
	}

	// The paying account is the logged-in user; its email goes to the gateway.
	var account *userModel.UserModel
	if uid, err := helper.GetUserIDFromToken(c); err == nil {
		var u userModel.UserModel
		if err := ctrl.DB.WithContext(c.UserContext()).First(&u, "user_id = ?", uid).Error; err == nil {
			account = &u
		}
	}

	payerName, payerEmail := payerIdentity(payerStudent, account)

	orderID := service.NewFeeOrderID(m.FeeID)
	token, redirectURL, err := service.GenerateSnapToken(orderID, m.FeeAmount, payerName, payerEmail)
	if err != nil {
		return helper.Error(c, fiber.StatusBadGateway, "Failed to create payment transaction")
	}

	m.FeeOrderID = &orderID
	m.FeeStatus = "pending"
	if err := repo.Save(&m); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update fee")
	}

	return helper.Success(c, "Payment transaction created", dto.PayFeeResponse{
		FeeID:      m.FeeID,
		OrderID:    orderID,
		SnapToken:  token,
		RedirectTo: redirectURL,
	})
}

// DELETE /api/a/fees/:id
func (ctrl *FeeController) DeleteFee(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid fee id")
	}
	n, err := ctrl.repo(c).Delete("fee_id = ? AND fee_status <> ?", id, "paid")
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete fee")
	}
	if n == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Fee not found or already paid")
	}
	return helper.Success(c, "Fee deleted", nil)
}
