package submissions

import (
	"log"

	"github.com/DCNeighborhoods/DCN-Backend/internal/db"
)

func Init() {
	if err := db.EnsureSchema(db.DB, "neighborhoods"); err != nil {
		log.Fatal("Failed to create neighborhoods schema: ", err)
	}
	if err := db.EnsurePostGIS(db.DB); err != nil {
		log.Fatal("Failed to enable postgis extension: ", err)
	}

	if err := db.DB.AutoMigrate(&submissionRow{}); err != nil {
		log.Fatal("Failed to auto-migrate submissions: ", err)
	}

	// Covering index for the active-read path.
	if err := db.DB.Exec(`
		CREATE INDEX IF NOT EXISTS idx_submissions_active
		ON neighborhoods.submissions (is_flagged, submitted_at DESC, id DESC);
	`).Error; err != nil {
		log.Fatal("Failed to create idx_submissions_active: ", err)
	}

	log.Println("Submissions module initialized")
}
