package seeds

import (
	"log"
	"os"
	"time"

	"gorm.io/gorm"

	schoolModel "schoolku_backend/internals/features/schools/model"
	"schoolku_backend/internals/tenancy"
)

// SeedDemoSchool provisions a sandbox tenant on the demo subdomain so the
// frontend has something to point at on a fresh install.
func SeedDemoSchool(db *gorm.DB) {
	if os.Getenv("SEED_DEMO_SCHOOL") != "true" {
		return
	}

	subdomain := "demo"
	var n int64
	if err := db.Model(&schoolModel.SchoolModel{}).
		Where("school_subdomain = ?", subdomain).Count(&n).Error; err != nil {
		log.Printf("❌ demo school seed lookup failed: %v", err)
		return
	}
	if n > 0 {
		log.Println("ℹ️ demo school already exists, skipped")
		return
	}

	now := time.Now()
	expires := now.AddDate(1, 0, 0)
	s := schoolModel.SchoolModel{
		SchoolCode:                  "DEM0001",
		SchoolSubdomain:             &subdomain,
		SchoolName:                  "Demo School",
		SchoolEmail:                 "demo@schoolku.dev",
		SchoolSubscriptionStatus:    tenancy.SubscriptionActive,
		SchoolSubscriptionPlan:      tenancy.PlanBasic,
		SchoolSubscriptionStartedAt: &now,
		SchoolSubscriptionExpiresAt: &expires,
		SchoolIsActive:              true,
	}
	if err := db.Create(&s).Error; err != nil {
		log.Printf("❌ demo school seed failed: %v", err)
		return
	}
	log.Printf("✅ demo school created (%s)", s.SchoolCode)
}
