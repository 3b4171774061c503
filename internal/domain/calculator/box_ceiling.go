package calculator

import (
	"math"

	"drywall_estimator/internal/domain/entities"
)

const (
	boxScrewsPerMeter = 2200.0 / 45.0
	boxScrewPackSize  = 1000.0
	boxPanelRun       = 4.5
)

// BoxCeiling estimates a box/cove ceiling along a linear run of length meters.
//
// The screw pack count is rounded to nearest, unlike every other discrete
// quantity, so a very short run can yield no screw line at all.
func BoxCeiling(length float64) []entities.MaterialResult {
	if !validDimension(length) {
		return []entities.MaterialResult{}
	}

	return collect(
		line(MaterialPanelScrew, math.Round(length*boxScrewsPerMeter/boxScrewPackSize), entities.UnitPack),
		line(MaterialWallAngleL24, math.Ceil(length), entities.UnitBranch),
		line(MaterialPanel, math.Ceil(length/boxPanelRun), entities.UnitSheet),
	)
}
