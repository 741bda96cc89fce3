package submissions_test

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/DCNeighborhoods/DCN-Backend/internal/geo"
	"github.com/DCNeighborhoods/DCN-Backend/internal/submissions"
)

func validSquare() *geo.PolygonGeometry {
	return &geo.PolygonGeometry{
		Type: "Polygon",
		Coordinates: [][][]float64{{
			{-77.05, 38.90},
			{-77.05, 38.91},
			{-77.04, 38.91},
			{-77.04, 38.90},
			{-77.05, 38.90},
		}},
	}
}

func validCandidate() submissions.SubmissionCandidate {
	return submissions.SubmissionCandidate{
		AddressText:      "1600 Pennsylvania Ave",
		AddressPoint:     geo.Point{-77.0365, 38.8977},
		NeighborhoodName: "  Downtown ",
		Boundary:         validSquare(),
	}
}

func TestSubmit_Valid(t *testing.T) {
	store := newMemStore()
	svc := submissions.NewService(store)

	sub, err := svc.Submit(context.Background(), validCandidate(), "203.0.113.7")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if sub.ID == 0 {
		t.Error("expected assigned id")
	}
	if sub.SessionID == "" {
		t.Error("expected assigned session id")
	}
	if sub.SubmittedAt.IsZero() {
		t.Error("expected assigned timestamp")
	}
	if sub.NeighborhoodName != "Downtown" {
		t.Errorf("expected trimmed name %q, got %q", "Downtown", sub.NeighborhoodName)
	}
	if sub.NeighborhoodNameNormalized != "downtown" {
		t.Errorf("expected normalized name %q, got %q", "downtown", sub.NeighborhoodNameNormalized)
	}
}

func TestSubmit_HashesOrigin(t *testing.T) {
	store := newMemStore()
	svc := submissions.NewService(store)

	sub, err := svc.Submit(context.Background(), validCandidate(), "203.0.113.7")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if sub.IPHash == "203.0.113.7" || strings.Contains(sub.IPHash, "203.0.113.7") {
		t.Error("raw origin leaked into ip hash")
	}
	if !regexp.MustCompile(`^[0-9a-f]{64}$`).MatchString(sub.IPHash) {
		t.Errorf("expected 64-char hex digest, got %q", sub.IPHash)
	}
	if sub.IPHash != submissions.HashOrigin("203.0.113.7") {
		t.Error("hash is not deterministic over the origin")
	}
}

func TestSubmit_FreshSessionPerSubmission(t *testing.T) {
	store := newMemStore()
	svc := submissions.NewService(store)

	first, err := svc.Submit(context.Background(), validCandidate(), "203.0.113.7")
	if err != nil {
		t.Fatal(err)
	}
	// Resubmission is allowed and creates a new record with its own session.
	second, err := svc.Submit(context.Background(), validCandidate(), "203.0.113.7")
	if err != nil {
		t.Fatal(err)
	}
	if first.ID == second.ID {
		t.Error("resubmission must create a new record")
	}
	if first.SessionID == second.SessionID {
		t.Error("each submission gets a fresh session token")
	}
}

func TestSubmit_MissingFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*submissions.SubmissionCandidate)
		field  string
	}{
		{"no address text", func(c *submissions.SubmissionCandidate) { c.AddressText = "" }, "addressText"},
		{"whitespace address text", func(c *submissions.SubmissionCandidate) { c.AddressText = "   " }, "addressText"},
		{"no address point", func(c *submissions.SubmissionCandidate) { c.AddressPoint = nil }, "addressPoint"},
		{"no name", func(c *submissions.SubmissionCandidate) { c.NeighborhoodName = "" }, "neighborhoodName"},
		{"whitespace name", func(c *submissions.SubmissionCandidate) { c.NeighborhoodName = " \t " }, "neighborhoodName"},
		{"no boundary", func(c *submissions.SubmissionCandidate) { c.Boundary = nil }, "boundary"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newMemStore()
			svc := submissions.NewService(store)

			cand := validCandidate()
			tc.mutate(&cand)

			_, err := svc.Submit(context.Background(), cand, "203.0.113.7")

			var missing *submissions.MissingFieldError
			if !errors.As(err, &missing) {
				t.Fatalf("expected MissingFieldError, got %v", err)
			}
			if !strings.Contains(missing.Error(), tc.field) {
				t.Errorf("expected %q named in %q", tc.field, missing.Error())
			}
			if store.insertCount() != 0 {
				t.Error("store must not be touched when fields are missing")
			}
		})
	}
}

func TestSubmit_AllFieldsMissing(t *testing.T) {
	store := newMemStore()
	svc := submissions.NewService(store)

	_, err := svc.Submit(context.Background(), submissions.SubmissionCandidate{}, "203.0.113.7")

	var missing *submissions.MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingFieldError, got %v", err)
	}
	if len(missing.Fields) != 4 {
		t.Errorf("expected all 4 fields reported, got %v", missing.Fields)
	}
}

func TestSubmit_InvalidGeometry(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*submissions.SubmissionCandidate)
		field  string
	}{
		{
			"open ring",
			func(c *submissions.SubmissionCandidate) {
				ring := c.Boundary.Coordinates[0]
				ring[len(ring)-1] = []float64{-76.99, 38.99}
			},
			"boundary",
		},
		{
			"three point ring",
			func(c *submissions.SubmissionCandidate) {
				c.Boundary.Coordinates[0] = c.Boundary.Coordinates[0][:3]
			},
			"boundary",
		},
		{
			"wrong geometry type",
			func(c *submissions.SubmissionCandidate) { c.Boundary.Type = "Point" },
			"boundary",
		},
		{
			"address point out of range",
			func(c *submissions.SubmissionCandidate) { c.AddressPoint = geo.Point{-200, 38.9} },
			"addressPoint",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newMemStore()
			svc := submissions.NewService(store)

			cand := validCandidate()
			tc.mutate(&cand)

			_, err := svc.Submit(context.Background(), cand, "203.0.113.7")

			var invalid *submissions.InvalidGeometryError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected InvalidGeometryError, got %v", err)
			}
			if invalid.Field != tc.field {
				t.Errorf("expected failing field %q, got %q", tc.field, invalid.Field)
			}
			if store.insertCount() != 0 {
				t.Error("store must not be touched for invalid geometry")
			}
		})
	}
}

func TestSubmit_StoreFailureSurfaced(t *testing.T) {
	store := newMemStore()
	store.failing = true
	svc := submissions.NewService(store)

	_, err := svc.Submit(context.Background(), validCandidate(), "203.0.113.7")
	if !errors.Is(err, errStoreDown) {
		t.Errorf("expected store failure to propagate, got %v", err)
	}

	// No retry: exactly one insert attempt.
	if store.insertCount() != 1 {
		t.Errorf("expected a single insert attempt, got %d", store.insertCount())
	}
}
