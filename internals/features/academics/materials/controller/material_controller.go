package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/academics/materials/dto"
	"schoolku_backend/internals/features/academics/materials/model"
	teacherModel "schoolku_backend/internals/features/academics/teachers/model"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/tenancy"
)

type MaterialController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewMaterialController(db *gorm.DB) *MaterialController {
	return &MaterialController{DB: db, Validate: validator.New()}
}

func (ctrl *MaterialController) repo(c *fiber.Ctx) tenancy.Scoped[model.MaterialModel, *model.MaterialModel] {
	return tenancy.Scope[model.MaterialModel](c, ctrl.DB, "material_school_id")
}

// teacherForRequest resolves the teacher profile linked to the logged-in
// account. Materials are always filed under the uploading teacher.
func (ctrl *MaterialController) teacherForRequest(c *fiber.Ctx) (*teacherModel.TeacherModel, error) {
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

// POST /api/a/materials
func (ctrl *MaterialController) CreateMaterial(c *fiber.Ctx) error {
	var req dto.CreateMaterialRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	teacher, err := ctrl.teacherForRequest(c)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusForbidden, "Only teachers can upload materials")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create material")
	}

	m := req.ToModel(teacher.TeacherID)
	if err := ctrl.repo(c).Create(m); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create material")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Material created", m)
}

// GET /api/a/materials
func (ctrl *MaterialController) ListMaterials(c *fiber.Ctx) error {
	var q dto.ListMaterialQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid query")
	}
	if err := ctrl.Validate.Struct(q); err != nil {
		return helper.ValidationError(c, err)
	}

	paging := helper.ResolvePaging(c, 20, 100)
	tx := ctrl.repo(c).Query()
	if q.ClassID != nil {
		tx = tx.Where("material_class_id = ?", *q.ClassID)
	}
	if q.SubjectID != nil {
		tx = tx.Where("material_subject_id = ?", *q.SubjectID)
	}
	if q.TeacherID != nil {
		tx = tx.Where("material_teacher_id = ?", *q.TeacherID)
	}
	if q.Type != nil {
		tx = tx.Where("material_type = ?", *q.Type)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list materials")
	}
	var items []model.MaterialModel
	if err := tx.Order("material_created_at DESC").Offset(paging.Offset).Limit(paging.Limit).Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list materials")
	}
	return helper.SuccessList(c, "Materials fetched", items, helper.BuildPagination(total, paging, len(items)))
}

// GET /api/a/materials/mine — the logged-in teacher's own uploads
func (ctrl *MaterialController) ListMyMaterials(c *fiber.Ctx) error {
	teacher, err := ctrl.teacherForRequest(c)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Success(c, "Materials fetched", []model.MaterialModel{})
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list materials")
	}

	var items []model.MaterialModel
	if err := ctrl.repo(c).Find(&items, "material_teacher_id = ?", teacher.TeacherID); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list materials")
	}
	return helper.Success(c, "Materials fetched", items)
}

// DELETE /api/a/materials/:id
func (ctrl *MaterialController) DeleteMaterial(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid material id")
	}
	n, err := ctrl.repo(c).Delete("material_id = ?", id)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete material")
	}
	if n == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Material not found")
	}
	return helper.Success(c, "Material deleted", nil)
}
