package response

import (
	"time"

	"drywall_estimator/internal/domain/calculator"
	"drywall_estimator/internal/domain/entities"
)

type MaterialResultResponse struct {
	Material string  `json:"material" example:"نبشی L25"`
	Quantity float64 `json:"quantity" example:"8"`
	Unit     string  `json:"unit" example:"شاخه"`
}

type CalculationResponse struct {
	Kind        string                   `json:"kind"`
	Description string                   `json:"description"`
	Results     []MaterialResultResponse `json:"results"`
}

type EstimationResponse struct {
	ID          string                   `json:"id"`
	SessionID   string                   `json:"session_id"`
	Description string                   `json:"description"`
	Results     []MaterialResultResponse `json:"results"`
	CreatedAt   time.Time                `json:"created_at"`
}

type EstimationListResponse struct {
	SessionID   string               `json:"session_id"`
	Estimations []EstimationResponse `json:"estimations"`
}

type AggregateResponse struct {
	SessionID string                   `json:"session_id"`
	Materials []MaterialResultResponse `json:"materials"`
}

type ClearResponse struct {
	SessionID string `json:"session_id"`
	Removed   int    `json:"removed"`
}

func FromMaterialResults(results []entities.MaterialResult) []MaterialResultResponse {
	out := make([]MaterialResultResponse, 0, len(results))
	for _, r := range results {
		out = append(out, MaterialResultResponse{Material: r.Material, Quantity: r.Quantity, Unit: r.Unit})
	}
	return out
}

func FromCalculation(kind calculator.Kind, in calculator.Input, results []entities.MaterialResult) CalculationResponse {
	return CalculationResponse{
		Kind:        string(kind),
		Description: calculator.Describe(kind, in),
		Results:     FromMaterialResults(results),
	}
}

func FromEstimation(e entities.Estimation) EstimationResponse {
	return EstimationResponse{
		ID:          e.ID,
		SessionID:   e.SessionID,
		Description: e.Description,
		Results:     FromMaterialResults(e.Results),
		CreatedAt:   e.CreatedAt,
	}
}

func FromEstimations(sessionID string, list []entities.Estimation) EstimationListResponse {
	out := make([]EstimationResponse, 0, len(list))
	for _, e := range list {
		out = append(out, FromEstimation(e))
	}
	return EstimationListResponse{SessionID: sessionID, Estimations: out}
}

func FromAggregate(sessionID string, aggregated []entities.AggregatedResult) AggregateResponse {
	return AggregateResponse{SessionID: sessionID, Materials: FromMaterialResults(aggregated)}
}
