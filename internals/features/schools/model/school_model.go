package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SchoolSettings is the per-tenant configuration blob. The backend treats it
// as opaque apart from defaults; the dashboard owns its shape.
type SchoolSettings struct {
	AcademicYear   string          `json:"academic_year,omitempty"`
	Timezone       string          `json:"timezone,omitempty"`
	Currency       string          `json:"currency,omitempty"`
	FeatureToggles map[string]bool `json:"feature_toggles,omitempty"`
	MaxStudents    int             `json:"max_students,omitempty"`
	MaxTeachers    int             `json:"max_teachers,omitempty"`
}

type SchoolModel struct {
	SchoolID uuid.UUID `gorm:"column:school_id;type:uuid;default:gen_random_uuid();primaryKey" json:"school_id"`

	SchoolCode      string  `gorm:"column:school_code;type:varchar(20);uniqueIndex;not null" json:"school_code"`
	SchoolSubdomain *string `gorm:"column:school_subdomain;type:varchar(63);uniqueIndex" json:"school_subdomain,omitempty"`

	SchoolName        string  `gorm:"column:school_name;type:varchar(150);not null" json:"school_name"`
	SchoolEmail       string  `gorm:"column:school_email;type:varchar(255);uniqueIndex;not null" json:"school_email"`
	SchoolPhone       *string `gorm:"column:school_phone;type:varchar(20)" json:"school_phone,omitempty"`
	SchoolAddress     *string `gorm:"column:school_address;type:text" json:"school_address,omitempty"`
	SchoolWebsite     *string `gorm:"column:school_website;type:varchar(255)" json:"school_website,omitempty"`
	SchoolLogoURL     *string `gorm:"column:school_logo_url;type:text" json:"school_logo_url,omitempty"`
	SchoolDescription *string `gorm:"column:school_description;type:text" json:"school_description,omitempty"`

	// trial | active | expired | suspended
	SchoolSubscriptionStatus string `gorm:"column:school_subscription_status;type:varchar(20);default:'trial'" json:"school_subscription_status"`
	// free | basic | premium | enterprise
	SchoolSubscriptionPlan      string     `gorm:"column:school_subscription_plan;type:varchar(20);default:'free'" json:"school_subscription_plan"`
	SchoolSubscriptionStartedAt *time.Time `gorm:"column:school_subscription_started_at" json:"school_subscription_started_at,omitempty"`
	SchoolSubscriptionExpiresAt *time.Time `gorm:"column:school_subscription_expires_at" json:"school_subscription_expires_at,omitempty"`

	SchoolSettings datatypes.JSONType[SchoolSettings] `gorm:"column:school_settings" json:"school_settings"`

	// Refreshed on demand, not transactionally.
	SchoolStudentCount int `gorm:"column:school_student_count;default:0" json:"school_student_count"`
	SchoolTeacherCount int `gorm:"column:school_teacher_count;default:0" json:"school_teacher_count"`
	SchoolClassCount   int `gorm:"column:school_class_count;default:0" json:"school_class_count"`

	SchoolIsActive bool `gorm:"column:school_is_active;default:true" json:"school_is_active"`

	SchoolCreatedAt time.Time `gorm:"column:school_created_at;autoCreateTime" json:"school_created_at"`
	SchoolUpdatedAt time.Time `gorm:"column:school_updated_at;autoUpdateTime" json:"school_updated_at"`
}

func (SchoolModel) TableName() string { return "schools" }
