package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"schoolku_backend/internals/features/schools/model"
)

/* ========== REQUEST DTOs ========== */

type CreateSchoolRequest struct {
	SchoolName        string                `json:"school_name"      validate:"required,min=3,max=150"`
	SchoolEmail       string                `json:"school_email"     validate:"required,email"`
	SchoolSubdomain   *string               `json:"school_subdomain" validate:"omitempty,hostname_rfc1123,max=63"`
	SchoolPhone       *string               `json:"school_phone"     validate:"omitempty,max=20"`
	SchoolAddress     *string               `json:"school_address"`
	SchoolWebsite     *string               `json:"school_website" validate:"omitempty,url"`
	SchoolLogoURL     *string               `json:"school_logo_url" validate:"omitempty,url"`
	SchoolDescription *string               `json:"school_description"`
	SchoolPlan        *string               `json:"school_subscription_plan" validate:"omitempty,oneof=free basic premium enterprise"`
	SchoolSettings    *model.SchoolSettings `json:"school_settings"`
}

type UpdateSchoolRequest struct {
	SchoolName        *string               `json:"school_name"      validate:"omitempty,min=3,max=150"`
	SchoolEmail       *string               `json:"school_email"     validate:"omitempty,email"`
	SchoolSubdomain   *string               `json:"school_subdomain" validate:"omitempty,hostname_rfc1123,max=63"`
	SchoolPhone       *string               `json:"school_phone"     validate:"omitempty,max=20"`
	SchoolAddress     *string               `json:"school_address"`
	SchoolWebsite     *string               `json:"school_website" validate:"omitempty,url"`
	SchoolLogoURL     *string               `json:"school_logo_url" validate:"omitempty,url"`
	SchoolDescription *string               `json:"school_description"`
	SchoolSettings    *model.SchoolSettings `json:"school_settings"`
}

type UpdateSubscriptionRequest struct {
	SubscriptionStatus    string     `json:"school_subscription_status" validate:"required,oneof=trial active expired suspended"`
	SubscriptionPlan      *string    `json:"school_subscription_plan"   validate:"omitempty,oneof=free basic premium enterprise"`
	SubscriptionExpiresAt *time.Time `json:"school_subscription_expires_at"`
}

type ListSchoolQuery struct {
	SubscriptionStatus *string `query:"subscriptionStatus" validate:"omitempty,oneof=trial active expired suspended"`
	IsActive           *bool   `query:"isActive"`
	Search             *string `query:"search"`
}

/* ========== RESPONSE DTO ========== */

type SchoolResponse struct {
	SchoolID                    uuid.UUID             `json:"school_id"`
	SchoolCode                  string                `json:"school_code"`
	SchoolSubdomain             *string               `json:"school_subdomain,omitempty"`
	SchoolName                  string                `json:"school_name"`
	SchoolEmail                 string                `json:"school_email"`
	SchoolPhone                 *string               `json:"school_phone,omitempty"`
	SchoolAddress               *string               `json:"school_address,omitempty"`
	SchoolWebsite               *string               `json:"school_website,omitempty"`
	SchoolLogoURL               *string               `json:"school_logo_url,omitempty"`
	SchoolDescription           *string               `json:"school_description,omitempty"`
	SchoolSubscriptionStatus    string                `json:"school_subscription_status"`
	SchoolSubscriptionPlan      string                `json:"school_subscription_plan"`
	SchoolSubscriptionStartedAt *time.Time            `json:"school_subscription_started_at,omitempty"`
	SchoolSubscriptionExpiresAt *time.Time            `json:"school_subscription_expires_at,omitempty"`
	SchoolSettings              *model.SchoolSettings `json:"school_settings,omitempty"`
	SchoolStudentCount          int                   `json:"school_student_count"`
	SchoolTeacherCount          int                   `json:"school_teacher_count"`
	SchoolClassCount            int                   `json:"school_class_count"`
	SchoolIsActive              bool                  `json:"school_is_active"`
	SchoolCreatedAt             time.Time             `json:"school_created_at"`
	SchoolUpdatedAt             time.Time             `json:"school_updated_at"`
}

func NewSchoolResponse(s *model.SchoolModel) *SchoolResponse {
	if s == nil {
		return nil
	}
	settings := s.SchoolSettings.Data()
	return &SchoolResponse{
		SchoolID:                    s.SchoolID,
		SchoolCode:                  s.SchoolCode,
		SchoolSubdomain:             s.SchoolSubdomain,
		SchoolName:                  s.SchoolName,
		SchoolEmail:                 s.SchoolEmail,
		SchoolPhone:                 s.SchoolPhone,
		SchoolAddress:               s.SchoolAddress,
		SchoolWebsite:               s.SchoolWebsite,
		SchoolLogoURL:               s.SchoolLogoURL,
		SchoolDescription:           s.SchoolDescription,
		SchoolSubscriptionStatus:    s.SchoolSubscriptionStatus,
		SchoolSubscriptionPlan:      s.SchoolSubscriptionPlan,
		SchoolSubscriptionStartedAt: s.SchoolSubscriptionStartedAt,
		SchoolSubscriptionExpiresAt: s.SchoolSubscriptionExpiresAt,
		SchoolSettings:              &settings,
		SchoolStudentCount:          s.SchoolStudentCount,
		SchoolTeacherCount:          s.SchoolTeacherCount,
		SchoolClassCount:            s.SchoolClassCount,
		SchoolIsActive:              s.SchoolIsActive,
		SchoolCreatedAt:             s.SchoolCreatedAt,
		SchoolUpdatedAt:             s.SchoolUpdatedAt,
	}
}

func NewSchoolResponses(ms []model.SchoolModel) []SchoolResponse {
	out := make([]SchoolResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *NewSchoolResponse(&ms[i]))
	}
	return out
}

func (r *CreateSchoolRequest) ToModel() *model.SchoolModel {
	m := &model.SchoolModel{
		SchoolName:        r.SchoolName,
		SchoolEmail:       r.SchoolEmail,
		SchoolSubdomain:   r.SchoolSubdomain,
		SchoolPhone:       r.SchoolPhone,
		SchoolAddress:     r.SchoolAddress,
		SchoolWebsite:     r.SchoolWebsite,
		SchoolLogoURL:     r.SchoolLogoURL,
		SchoolDescription: r.SchoolDescription,
	}
	if r.SchoolSettings != nil {
		m.SchoolSettings = datatypes.NewJSONType(*r.SchoolSettings)
	}
	return m
}

func (r *UpdateSchoolRequest) ApplyToModel(m *model.SchoolModel) {
	if r.SchoolName != nil {
		m.SchoolName = *r.SchoolName
	}
	if r.SchoolEmail != nil {
		m.SchoolEmail = *r.SchoolEmail
	}
	if r.SchoolSubdomain != nil {
		m.SchoolSubdomain = r.SchoolSubdomain
	}
	if r.SchoolPhone != nil {
		m.SchoolPhone = r.SchoolPhone
	}
	if r.SchoolAddress != nil {
		m.SchoolAddress = r.SchoolAddress
	}
	if r.SchoolWebsite != nil {
		m.SchoolWebsite = r.SchoolWebsite
	}
	if r.SchoolLogoURL != nil {
		m.SchoolLogoURL = r.SchoolLogoURL
	}
	if r.SchoolDescription != nil {
		m.SchoolDescription = r.SchoolDescription
	}
	if r.SchoolSettings != nil {
		m.SchoolSettings = datatypes.NewJSONType(*r.SchoolSettings)
	}
}
