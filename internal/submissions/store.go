package submissions

import (
	"context"
	"fmt"
	"time"

	"github.com/DCNeighborhoods/DCN-Backend/internal/geo"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store is the durable record of accepted submissions. Insert assigns id,
// session token, and timestamp; ListActive returns unflagged submissions
// newest first. No update or delete is exposed.
type Store interface {
	Insert(ctx context.Context, sub NewSubmission) (Submission, error)
	ListActive(ctx context.Context, normalizedName string) ([]Submission, error)
}

// GormStore persists submissions in PostGIS-backed Postgres.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(d *gorm.DB) *GormStore {
	return &GormStore{db: d}
}

// Insert re-validates geometry before touching the database so invalid
// geometry can never persist, regardless of what the caller checked.
func (s *GormStore) Insert(ctx context.Context, sub NewSubmission) (Submission, error) {
	if err := geo.ValidatePoint(sub.AddressPoint); err != nil {
		return Submission{}, &ValidationError{Reason: err}
	}
	if err := geo.ValidatePolygon(sub.Boundary); err != nil {
		return Submission{}, &ValidationError{Reason: err}
	}

	pointJSON, err := geo.PointGeoJSON(sub.AddressPoint)
	if err != nil {
		return Submission{}, err
	}
	boundaryJSON, err := geo.PolygonGeoJSON(sub.Boundary)
	if err != nil {
		return Submission{}, err
	}

	sessionID := uuid.NewString()

	row := s.db.WithContext(ctx).Raw(`
		INSERT INTO neighborhoods.submissions
			(session_id, address_text, address_point, neighborhood_name,
			 neighborhood_name_normalized, boundary, ip_hash, is_flagged, submitted_at)
		VALUES
			($1, $2, ST_SetSRID(ST_GeomFromGeoJSON($3), 4326), $4,
			 $5, ST_SetSRID(ST_GeomFromGeoJSON($6), 4326), $7, FALSE, NOW())
		RETURNING id, submitted_at
	`, sessionID, sub.AddressText, pointJSON, sub.NeighborhoodName,
		sub.NeighborhoodNameNormalized, boundaryJSON, sub.IPHash).Row()

	var (
		id          int
		submittedAt time.Time
	)
	if err := row.Scan(&id, &submittedAt); err != nil {
		return Submission{}, fmt.Errorf("insert submission: %w", err)
	}

	return Submission{
		ID:                         id,
		SessionID:                  sessionID,
		AddressText:                sub.AddressText,
		AddressPoint:               sub.AddressPoint,
		NeighborhoodName:           sub.NeighborhoodName,
		NeighborhoodNameNormalized: sub.NeighborhoodNameNormalized,
		Boundary:                   sub.Boundary,
		IPHash:                     sub.IPHash,
		SubmittedAt:                submittedAt,
	}, nil
}

// ListActive returns all unflagged submissions, optionally restricted to one
// normalized name, ordered submitted_at descending with id descending as the
// deterministic tie-break.
func (s *GormStore) ListActive(ctx context.Context, normalizedName string) ([]Submission, error) {
	query := `
		SELECT id, session_id, address_text, neighborhood_name,
		       neighborhood_name_normalized,
		       ST_AsGeoJSON(address_point), ST_AsGeoJSON(boundary), submitted_at
		FROM neighborhoods.submissions
		WHERE is_flagged = FALSE`
	args := []interface{}{}
	if normalizedName != "" {
		query += ` AND neighborhood_name_normalized = $1`
		args = append(args, normalizedName)
	}
	query += ` ORDER BY submitted_at DESC, id DESC`

	rows, err := s.db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	defer rows.Close()

	subs := []Submission{}
	for rows.Next() {
		var (
			sub          Submission
			pointJSON    string
			boundaryJSON string
		)
		if err := rows.Scan(&sub.ID, &sub.SessionID, &sub.AddressText,
			&sub.NeighborhoodName, &sub.NeighborhoodNameNormalized,
			&pointJSON, &boundaryJSON, &sub.SubmittedAt); err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		if sub.AddressPoint, err = geo.ParsePoint(pointJSON); err != nil {
			return nil, fmt.Errorf("submission %d: %w", sub.ID, err)
		}
		if sub.Boundary, err = geo.ParsePolygon(boundaryJSON); err != nil {
			return nil, fmt.Errorf("submission %d: %w", sub.ID, err)
		}
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	return subs, nil
}
