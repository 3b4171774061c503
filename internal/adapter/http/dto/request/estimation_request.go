package request

import (
	"errors"
	"strings"

	"drywall_estimator/internal/domain/calculator"
	"drywall_estimator/internal/domain/entities"
)

var (
	ErrAmbiguousEstimation = errors.New("send either kind or results, not both")
	ErrMissingEstimation   = errors.New("kind or results is required")
)

type MaterialResultRequest struct {
	Material string  `json:"material" binding:"required"`
	Quantity float64 `json:"quantity" binding:"gt=0"`
	Unit     string  `json:"unit" binding:"required"`
}

// AddEstimationRequest adds one estimation to a session. It either names a
// calculator kind with its dimensions, or carries already computed results.
type AddEstimationRequest struct {
	Description string                  `json:"description"`
	Kind        string                  `json:"kind" example:"grid_ceiling"`
	Results     []MaterialResultRequest `json:"results" binding:"omitempty,dive"`
	CalculateRequest
}

func (r AddEstimationRequest) ResolveKind() (calculator.Kind, error) {
	kind := strings.TrimSpace(r.Kind)
	switch {
	case kind != "" && len(r.Results) > 0:
		return "", ErrAmbiguousEstimation
	case kind == "" && len(r.Results) == 0:
		return "", ErrMissingEstimation
	}
	return calculator.Kind(kind), nil
}

func (r AddEstimationRequest) ToResults() []entities.MaterialResult {
	out := make([]entities.MaterialResult, 0, len(r.Results))
	for _, m := range r.Results {
		out = append(out, entities.MaterialResult{
			Material: strings.TrimSpace(m.Material),
			Quantity: m.Quantity,
			Unit:     strings.TrimSpace(m.Unit),
		})
	}
	return out
}
