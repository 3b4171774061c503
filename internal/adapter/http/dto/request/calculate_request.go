package request

import (
	"strings"

	"drywall_estimator/internal/domain/calculator"
)

// CalculateRequest carries the dimensions (meters) of one assembly.
// Fields the chosen calculator does not use are ignored.
type CalculateRequest struct {
	Length     float64 `json:"length" example:"8"`
	Width      float64 `json:"width" example:"4"`
	Height     float64 `json:"height" example:"3"`
	WallType   string  `json:"wall_type" example:"partition" binding:"omitempty,oneof=partition lining"`
	Insulation bool    `json:"insulation"`
}

func (r CalculateRequest) ToInput() calculator.Input {
	return calculator.Input{
		Length:     r.Length,
		Width:      r.Width,
		Height:     r.Height,
		WallType:   calculator.WallType(strings.TrimSpace(r.WallType)),
		Insulation: r.Insulation,
	}
}
