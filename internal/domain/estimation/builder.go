// Package estimation keeps the estimating session list and merges it into
// per-material totals. The caller owns the list; nothing here holds state.
package estimation

import (
	"time"

	"drywall_estimator/internal/domain/entities"

	"github.com/google/uuid"
)

// Builder creates Estimation records.
type Builder struct {
	newID func() string
	now   func() time.Time
}

func NewBuilder() Builder {
	return Builder{
		newID: uuid.NewString,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// New creates an Estimation with a fresh id. Results are copied so later
// changes to the caller's slice do not leak into the record. Empty results
// are accepted.
func (b Builder) New(sessionID, description string, results []entities.MaterialResult) entities.Estimation {
	copied := make([]entities.MaterialResult, len(results))
	copy(copied, results)

	return entities.Estimation{
		ID:          b.newID(),
		SessionID:   sessionID,
		Description: description,
		Results:     copied,
		CreatedAt:   b.now(),
	}
}

// Add appends a new Estimation to list and returns the new list and record.
// The input list is not modified.
func (b Builder) Add(list []entities.Estimation, sessionID, description string, results []entities.MaterialResult) ([]entities.Estimation, entities.Estimation) {
	e := b.New(sessionID, description, results)
	out := make([]entities.Estimation, 0, len(list)+1)
	out = append(out, list...)
	return append(out, e), e
}

// Remove returns list without the Estimation with the given id.
func Remove(list []entities.Estimation, id string) ([]entities.Estimation, bool) {
	out := make([]entities.Estimation, 0, len(list))
	found := false
	for _, e := range list {
		if e.ID == id {
			found = true
			continue
		}
		out = append(out, e)
	}
	return out, found
}
