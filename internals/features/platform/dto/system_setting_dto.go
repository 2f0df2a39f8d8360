package dto

import "gorm.io/datatypes"

type UpsertSettingRequest struct {
	SettingValue       datatypes.JSON `json:"setting_value"       validate:"required"`
	SettingDescription *string        `json:"setting_description"`
	SettingIsPublic    *bool          `json:"setting_is_public"`
}
