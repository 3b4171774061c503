package interfaces

import (
	"context"
	"drywall_estimator/internal/domain/entities"
)

// IEstimationRepository abstracts DynamoDB persistence for session estimations.
//
// The estimating session must be able to:
//   - append an estimation
//   - list a session's estimations in the order they were added
//   - remove one estimation or clear the whole session

type IEstimationRepository interface {
	Create(ctx context.Context, e entities.Estimation) (entities.Estimation, error)
	ListBySessionID(ctx context.Context, sessionID string) ([]entities.Estimation, error)
	Delete(ctx context.Context, sessionID, id string) (bool, error)
	DeleteBySessionID(ctx context.Context, sessionID string) (int, error)
}
