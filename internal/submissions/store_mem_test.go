package submissions_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/DCNeighborhoods/DCN-Backend/internal/geo"
	"github.com/DCNeighborhoods/DCN-Backend/internal/submissions"
	"github.com/google/uuid"
)

// memStore implements submissions.Store in memory with the same contract as
// the Postgres store: geometry re-check on insert, flagged rows invisible to
// reads, newest-first ordering with id as tie-break.
type memStore struct {
	mu      sync.Mutex
	nextID  int
	rows    []submissions.Submission
	inserts int
	failing bool
}

var errStoreDown = errors.New("store unavailable")

func newMemStore() *memStore {
	return &memStore{}
}

func (m *memStore) Insert(ctx context.Context, sub submissions.NewSubmission) (submissions.Submission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inserts++

	if m.failing {
		return submissions.Submission{}, errStoreDown
	}
	if err := geo.ValidatePoint(sub.AddressPoint); err != nil {
		return submissions.Submission{}, &submissions.ValidationError{Reason: err}
	}
	if err := geo.ValidatePolygon(sub.Boundary); err != nil {
		return submissions.Submission{}, &submissions.ValidationError{Reason: err}
	}

	m.nextID++
	rec := submissions.Submission{
		ID:                         m.nextID,
		SessionID:                  uuid.NewString(),
		AddressText:                sub.AddressText,
		AddressPoint:               sub.AddressPoint,
		NeighborhoodName:           sub.NeighborhoodName,
		NeighborhoodNameNormalized: sub.NeighborhoodNameNormalized,
		Boundary:                   sub.Boundary,
		IPHash:                     sub.IPHash,
		SubmittedAt:                time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC).Add(time.Duration(m.nextID) * time.Minute),
	}
	m.rows = append(m.rows, rec)
	return rec, nil
}

func (m *memStore) ListActive(ctx context.Context, normalizedName string) ([]submissions.Submission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failing {
		return nil, errStoreDown
	}

	out := []submissions.Submission{}
	for _, r := range m.rows {
		if r.IsFlagged {
			continue
		}
		if normalizedName != "" && r.NeighborhoodNameNormalized != normalizedName {
			continue
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].SubmittedAt.Equal(out[j].SubmittedAt) {
			return out[i].SubmittedAt.After(out[j].SubmittedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

// flag marks a row for exclusion, standing in for the out-of-scope
// moderation path.
func (m *memStore) flag(id int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.rows {
		if m.rows[i].ID == id {
			m.rows[i].IsFlagged = true
		}
	}
}

func (m *memStore) insertCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inserts
}
