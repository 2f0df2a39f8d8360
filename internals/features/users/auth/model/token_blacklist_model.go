package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TokenBlacklist keeps revoked access tokens until the cleanup scheduler
// prunes them.
type TokenBlacklist struct {
	TokenBlacklistID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"token_blacklist_id"`

	Token     string    `gorm:"type:text;not null;index" json:"token"`
	ExpiredAt time.Time `gorm:"column:expired_at;not null" json:"expired_at"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (TokenBlacklist) TableName() string { return "token_blacklist" }
