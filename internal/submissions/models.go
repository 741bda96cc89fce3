package submissions

import (
	"time"

	"github.com/DCNeighborhoods/DCN-Backend/internal/geo"
)

// SubmissionCandidate is the payload consumed from the drawing/geocoding
// collaborators: a resolved address, the submitter's chosen name, and the
// drawn boundary.
type SubmissionCandidate struct {
	AddressText      string               `json:"addressText"`
	AddressPoint     geo.Point            `json:"addressPoint"`
	NeighborhoodName string               `json:"neighborhoodName"`
	Boundary         *geo.PolygonGeometry `json:"boundary"`
}

// Submission is one accepted record. Immutable after insert except the flag
// fields, which belong to an out-of-scope moderation path. The ip hash and
// flag state never serialize.
type Submission struct {
	ID                         int                 `json:"id"`
	SessionID                  string              `json:"sessionId"`
	AddressText                string              `json:"addressText"`
	AddressPoint               geo.Point           `json:"addressPoint"`
	NeighborhoodName           string              `json:"neighborhoodName"`
	NeighborhoodNameNormalized string              `json:"neighborhoodNameNormalized"`
	Boundary                   geo.PolygonGeometry `json:"boundary"`
	IPHash                     string              `json:"-"`
	IsFlagged                  bool                `json:"-"`
	SubmittedAt                time.Time           `json:"submittedAt"`
}

// NewSubmission carries the service-prepared values into the store. The
// store assigns id, session token, and timestamp.
type NewSubmission struct {
	AddressText                string
	AddressPoint               geo.Point
	NeighborhoodName           string
	NeighborhoodNameNormalized string
	Boundary                   geo.PolygonGeometry
	IPHash                     string
}

// submissionRow is the persistence shape: geometry lives in PostGIS columns
// and crosses the boundary as GeoJSON via ST_GeomFromGeoJSON / ST_AsGeoJSON.
type submissionRow struct {
	ID                         int       `gorm:"primaryKey"`
	SessionID                  string    `gorm:"size:100"`
	AddressText                string    `gorm:"size:500"`
	AddressPoint               string    `gorm:"type:geometry(Point,4326)"`
	NeighborhoodName           string    `gorm:"size:255;index"`
	NeighborhoodNameNormalized string    `gorm:"size:255;index"`
	Boundary                   string    `gorm:"type:geometry(Polygon,4326)"`
	IPHash                     string    `gorm:"size:64"`
	IsFlagged                  bool      `gorm:"default:false"`
	FlagReason                 *string   `gorm:"size:255"`
	SubmittedAt                time.Time `gorm:"autoCreateTime"`
}

func (submissionRow) TableName() string {
	return "neighborhoods.submissions"
}
