package submissions

import (
	"context"
	"strings"

	"github.com/DCNeighborhoods/DCN-Backend/internal/geo"
	"github.com/DCNeighborhoods/DCN-Backend/internal/neighborhoods"
)

// Service orchestrates ingestion: presence checks, geometry validation, name
// normalization, then persistence. Stateless and request-scoped.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Submit validates and persists one candidate. It never retries a failed
// insert, and a resubmission always creates a new record — double-submit
// deduplication is deliberately not provided.
func (s *Service) Submit(ctx context.Context, cand SubmissionCandidate, requestOrigin string) (Submission, error) {
	var missing []string
	if strings.TrimSpace(cand.AddressText) == "" {
		missing = append(missing, "addressText")
	}
	if len(cand.AddressPoint) == 0 {
		missing = append(missing, "addressPoint")
	}
	if strings.TrimSpace(cand.NeighborhoodName) == "" {
		missing = append(missing, "neighborhoodName")
	}
	if cand.Boundary == nil {
		missing = append(missing, "boundary")
	}
	if len(missing) > 0 {
		return Submission{}, &MissingFieldError{Fields: missing}
	}

	if err := geo.ValidatePoint(cand.AddressPoint); err != nil {
		return Submission{}, &InvalidGeometryError{Field: "addressPoint", Reason: err}
	}
	if err := geo.ValidatePolygon(*cand.Boundary); err != nil {
		return Submission{}, &InvalidGeometryError{Field: "boundary", Reason: err}
	}

	name := strings.TrimSpace(cand.NeighborhoodName)

	return s.store.Insert(ctx, NewSubmission{
		AddressText:                cand.AddressText,
		AddressPoint:               cand.AddressPoint,
		NeighborhoodName:           name,
		NeighborhoodNameNormalized: neighborhoods.Normalize(name),
		Boundary:                   *cand.Boundary,
		IPHash:                     HashOrigin(requestOrigin),
	})
}
