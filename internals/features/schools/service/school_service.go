package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/schools/dto"
	"schoolku_backend/internals/features/schools/model"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/tenancy"
)

var (
	ErrSubdomainTaken = errors.New("subdomain already taken")
	ErrEmailTaken     = errors.New("email already taken")
)

// New tenants start on a trial window; the registry owns this policy.
const trialDays = 14

type SchoolService struct {
	DB *gorm.DB
}

func NewSchoolService(db *gorm.DB) *SchoolService {
	return &SchoolService{DB: db}
}

type ListFilters struct {
	SubscriptionStatus *string
	IsActive           *bool
	Search             *string
}

func (s *SchoolService) Create(ctx context.Context, req *dto.CreateSchoolRequest) (*model.SchoolModel, error) {
	db := s.DB.WithContext(ctx)

	if req.SchoolSubdomain != nil {
		taken, err := s.subdomainTaken(ctx, *req.SchoolSubdomain, uuid.Nil)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrSubdomainTaken
		}
	}

	var emailCount int64
	if err := db.Model(&model.SchoolModel{}).
		Where("LOWER(school_email) = LOWER(?)", req.SchoolEmail).
		Count(&emailCount).Error; err != nil {
		return nil, err
	}
	if emailCount > 0 {
		return nil, ErrEmailTaken
	}

	m := req.ToModel()

	code, err := s.uniqueCode(ctx, req.SchoolName)
	if err != nil {
		return nil, err
	}
	m.SchoolCode = code

	now := time.Now()
	expires := now.AddDate(0, 0, trialDays)
	m.SchoolSubscriptionStatus = tenancy.SubscriptionTrial
	m.SchoolSubscriptionPlan = tenancy.PlanFree
	if req.SchoolPlan != nil {
		m.SchoolSubscriptionPlan = *req.SchoolPlan
	}
	m.SchoolSubscriptionStartedAt = &now
	m.SchoolSubscriptionExpiresAt = &expires
	m.SchoolIsActive = true

	if err := db.Create(m).Error; err != nil {
		return nil, err
	}
	log.Printf("[SCHOOL] ✅ created %s (%s)", m.SchoolName, m.SchoolCode)
	return m, nil
}

// uniqueCode retries generation until the code is free. Collisions are rare
// (4 random digits) so a handful of attempts is plenty.
func (s *SchoolService) uniqueCode(ctx context.Context, name string) (string, error) {
	db := s.DB.WithContext(ctx)
	for i := 0; i < 10; i++ {
		code := helper.GenerateSchoolCode(name)
		var n int64
		if err := db.Model(&model.SchoolModel{}).
			Where("school_code = ?", code).
			Count(&n).Error; err != nil {
			return "", err
		}
		if n == 0 {
			return code, nil
		}
	}
	return "", errors.New("could not generate a unique school code")
}

func (s *SchoolService) subdomainTaken(ctx context.Context, subdomain string, excludeID uuid.UUID) (bool, error) {
	tx := s.DB.WithContext(ctx).Model(&model.SchoolModel{}).
		Where("LOWER(school_subdomain) = LOWER(?)", strings.TrimSpace(subdomain))
	if excludeID != uuid.Nil {
		tx = tx.Where("school_id <> ?", excludeID)
	}
	var n int64
	err := tx.Count(&n).Error
	return n > 0, err
}

func (s *SchoolService) FindAll(ctx context.Context, f ListFilters, p helper.Paging) ([]model.SchoolModel, int64, error) {
	tx := s.DB.WithContext(ctx).Model(&model.SchoolModel{})
	if f.SubscriptionStatus != nil {
		tx = tx.Where("school_subscription_status = ?", *f.SubscriptionStatus)
	}
	if f.IsActive != nil {
		tx = tx.Where("school_is_active = ?", *f.IsActive)
	}
	if f.Search != nil && strings.TrimSpace(*f.Search) != "" {
		like := "%" + strings.TrimSpace(*f.Search) + "%"
		tx = tx.Where("school_name ILIKE ? OR school_code ILIKE ? OR school_email ILIKE ?", like, like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []model.SchoolModel
	err := tx.Order("school_created_at DESC").Offset(p.Offset).Limit(p.Limit).Find(&items).Error
	return items, total, err
}

func (s *SchoolService) FindByID(ctx context.Context, id uuid.UUID) (*model.SchoolModel, error) {
	var m model.SchoolModel
	if err := s.DB.WithContext(ctx).First(&m, "school_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *SchoolService) FindByCode(ctx context.Context, code string) (*model.SchoolModel, error) {
	var m model.SchoolModel
	if err := s.DB.WithContext(ctx).First(&m, "school_code = ?", code).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *SchoolService) FindBySubdomain(ctx context.Context, subdomain string) (*model.SchoolModel, error) {
	var m model.SchoolModel
	if err := s.DB.WithContext(ctx).
		First(&m, "LOWER(school_subdomain) = LOWER(?)", subdomain).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *SchoolService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateSchoolRequest) (*model.SchoolModel, error) {
	m, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.SchoolSubdomain != nil {
		taken, err := s.subdomainTaken(ctx, *req.SchoolSubdomain, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrSubdomainTaken
		}
	}
	if req.SchoolEmail != nil {
		var n int64
		if err := s.DB.WithContext(ctx).Model(&model.SchoolModel{}).
			Where("LOWER(school_email) = LOWER(?) AND school_id <> ?", *req.SchoolEmail, id).
			Count(&n).Error; err != nil {
			return nil, err
		}
		if n > 0 {
			return nil, ErrEmailTaken
		}
	}

	req.ApplyToModel(m)
	if err := s.DB.WithContext(ctx).Save(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

// Remove deactivates; school rows are never hard-deleted.
func (s *SchoolService) Remove(ctx context.Context, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).Model(&model.SchoolModel{}).
		Where("school_id = ?", id).
		Update("school_is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *SchoolService) UpdateSubscription(ctx context.Context, id uuid.UUID, req *dto.UpdateSubscriptionRequest) (*model.SchoolModel, error) {
	m, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	m.SchoolSubscriptionStatus = req.SubscriptionStatus
	if req.SubscriptionPlan != nil {
		m.SchoolSubscriptionPlan = *req.SubscriptionPlan
	}
	if req.SubscriptionExpiresAt != nil {
		m.SchoolSubscriptionExpiresAt = req.SubscriptionExpiresAt
	}
	if req.SubscriptionStatus == tenancy.SubscriptionActive && m.SchoolSubscriptionStartedAt == nil {
		now := time.Now()
		m.SchoolSubscriptionStartedAt = &now
	}

	if err := s.DB.WithContext(ctx).Save(m).Error; err != nil {
		return nil, err
	}
	log.Printf("[SCHOOL] subscription of %s → %s", m.SchoolCode, m.SchoolSubscriptionStatus)
	return m, nil
}

// IsSubscriptionValid applies the entitlement rules and persists the expired
// status the first time a lapsed window is observed.
func (s *SchoolService) IsSubscriptionValid(ctx context.Context, m *model.SchoolModel) bool {
	valid, lapsed := tenancy.EvaluateSubscription(
		m.SchoolIsActive, m.SchoolSubscriptionStatus, m.SchoolSubscriptionExpiresAt, time.Now())
	if lapsed {
		m.SchoolSubscriptionStatus = tenancy.SubscriptionExpired
		if err := s.DB.WithContext(ctx).Model(&model.SchoolModel{}).
			Where("school_id = ?", m.SchoolID).
			Update("school_subscription_status", tenancy.SubscriptionExpired).Error; err != nil {
			log.Printf("[SCHOOL] ❌ lazy expiry persist failed for %s: %v", m.SchoolCode, err)
		}
	}
	return valid
}

// UpdateStatistics recomputes the denormalized counters with real COUNTs.
func (s *SchoolService) UpdateStatistics(ctx context.Context, id uuid.UUID) (*model.SchoolModel, error) {
	m, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	db := s.DB.WithContext(ctx)
	var students, teachers, classes int64
	if err := db.Table("students").Where("student_school_id = ?", id).Count(&students).Error; err != nil {
		return nil, err
	}
	if err := db.Table("teachers").Where("teacher_school_id = ?", id).Count(&teachers).Error; err != nil {
		return nil, err
	}
	if err := db.Table("classes").Where("class_school_id = ?", id).Count(&classes).Error; err != nil {
		return nil, err
	}

	m.SchoolStudentCount = int(students)
	m.SchoolTeacherCount = int(teachers)
	m.SchoolClassCount = int(classes)
	if err := db.Save(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}
