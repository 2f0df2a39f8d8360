package seeds

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	userModel "schoolku_backend/internals/features/users/user/model"
)

// SeedSuperAdmin creates the platform operator account from env. Skipped
// when the email already exists or the env vars are missing.
func SeedSuperAdmin(db *gorm.DB) {
	email := os.Getenv("SUPER_ADMIN_EMAIL")
	password := os.Getenv("SUPER_ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ℹ️ SUPER_ADMIN_EMAIL/PASSWORD not set, skipping super admin seed")
		return
	}

	var n int64
	if err := db.Model(&userModel.UserModel{}).Where("user_email = ?", email).Count(&n).Error; err != nil {
		log.Printf("❌ super admin seed lookup failed: %v", err)
		return
	}
	if n > 0 {
		log.Printf("ℹ️ super admin '%s' already exists, skipped", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("❌ super admin password hash failed: %v", err)
		return
	}

	u := userModel.UserModel{
		UserFullName: "Platform Operator",
		UserEmail:    email,
		UserPassword: string(hash),
		UserRole:     constants.RoleSuperAdmin,
		UserIsActive: true,
	}
	if err := db.Create(&u).Error; err != nil {
		log.Printf("❌ super admin seed failed: %v", err)
		return
	}
	log.Printf("✅ super admin '%s' created", email)
}
