package neighborhoods

import (
	"github.com/lib/pq"
)

// NeighborhoodSeed is a canonical neighborhood name with known alternate
// spellings. Reference data only: submissions never link to seeds, the
// relationship is normalized-name equality.
type NeighborhoodSeed struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Name           string         `gorm:"size:255;index" json:"name"`
	AlternateNames pq.StringArray `gorm:"type:text[]" json:"alternate_names"`
	Jurisdiction   string         `gorm:"size:50" json:"jurisdiction"`
	Source         string         `gorm:"size:100" json:"-"`

	// Optional neighborhood center, WGS84. Populated by the seed loader when
	// the source file carries one.
	Centroid *string `gorm:"type:geometry(Point,4326)" json:"-"`
}

func (NeighborhoodSeed) TableName() string {
	return "neighborhoods.neighborhood_seeds"
}
