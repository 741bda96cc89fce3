package neighborhoods

import (
	"errors"
	"io/fs"
	"log"

	"github.com/DCNeighborhoods/DCN-Backend/internal/db"
	"gorm.io/gorm"
)

// Init migrates the neighborhoods schema and loads the seed reference list.
// The returned slice is loaded once per process and treated as read-only; it
// is passed explicitly to the routes rather than held as a mutable global.
func Init(seedFile string) []NeighborhoodSeed {
	if err := db.EnsureSchema(db.DB, "neighborhoods"); err != nil {
		log.Fatal("Failed to create neighborhoods schema: ", err)
	}
	if err := db.EnsurePostGIS(db.DB); err != nil {
		log.Fatal("Failed to enable postgis extension: ", err)
	}
	if err := db.DB.AutoMigrate(&NeighborhoodSeed{}); err != nil {
		log.Fatal("Failed to auto-migrate neighborhood seeds: ", err)
	}

	seeds, err := LoadSeedFile(seedFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("Seed file not found: %s", seedFile)
			return nil
		}
		log.Fatal("Failed to load seed file: ", err)
	}

	if err := syncSeeds(seeds); err != nil {
		log.Fatal("Failed to sync neighborhood seeds: ", err)
	}

	log.Printf("Loaded %d neighborhood seeds", len(seeds))
	return seeds
}

// syncSeeds inserts file seeds that are not yet in the database. Existing
// rows are left untouched.
func syncSeeds(seeds []NeighborhoodSeed) error {
	for i := range seeds {
		var existing NeighborhoodSeed
		err := db.DB.First(&existing, "name = ?", seeds[i].Name).Error
		if err == nil {
			seeds[i].ID = existing.ID
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		if err := db.DB.Create(&seeds[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
