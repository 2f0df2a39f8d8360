package seeds

import (
	"log"
	"os"

	"gorm.io/gorm"
)

// RunAllSeeds bootstraps the minimum data a fresh deployment needs. Every
// seed is idempotent, so running on each boot is safe.
func RunAllSeeds(db *gorm.DB) {
	if os.Getenv("SEED_ON_BOOT") != "true" {
		return
	}
	log.Println("🌱 Running seeds...")

	SeedSuperAdmin(db)
	SeedDemoSchool(db)

	log.Println("🌱 Seeds done")
}
