package model

import (
	"time"

	"gorm.io/datatypes"
)

// SystemSettingModel is a platform-wide key/value row (branding, feature
// toggles). Not tenant-owned: super admins write, public rows are readable
// by anyone.
type SystemSettingModel struct {
	SettingKey         string         `gorm:"column:setting_key;type:varchar(100);primaryKey" json:"setting_key"`
	SettingValue       datatypes.JSON `gorm:"column:setting_value;type:jsonb" json:"setting_value"`
	SettingDescription *string        `gorm:"column:setting_description;type:text" json:"setting_description,omitempty"`
	SettingIsPublic    bool           `gorm:"column:setting_is_public;not null;default:false" json:"setting_is_public"`

	SettingCreatedAt time.Time `gorm:"column:setting_created_at;autoCreateTime" json:"setting_created_at"`
	SettingUpdatedAt time.Time `gorm:"column:setting_updated_at;autoUpdateTime" json:"setting_updated_at"`
}

func (SystemSettingModel) TableName() string { return "system_settings" }
