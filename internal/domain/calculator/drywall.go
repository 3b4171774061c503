package calculator

import (
	"math"

	"drywall_estimator/internal/domain/entities"
)

// WallType selects how many faces of the frame are boarded.
type WallType string

const (
	WallTypePartition WallType = "partition"
	WallTypeLining    WallType = "lining"
)

// Faces returns the number of boarded faces, or 0 for an unknown wall type.
// The zero value is a partition.
func (w WallType) Faces() float64 {
	switch w {
	case WallTypePartition, "":
		return 2
	case WallTypeLining:
		return 1
	default:
		return 0
	}
}

const (
	drywallRunnerLength   = 4.0
	drywallStudSpacing    = 0.6
	drywallStudLength     = 3.0
	drywallPanelArea      = 2.88
	drywallScrewPitch     = 0.2
	drywallScrewPackSize  = 1000.0
	drywallInsulationArea = 0.72
	drywallSheetsPerPack  = 6.0
)

// Drywall estimates a partition (two faces) or lining (one face) wall of
// length x height meters, optionally with mineral-wool insulation.
func Drywall(length, height float64, wallType WallType, insulation bool) []entities.MaterialResult {
	faces := wallType.Faces()
	if !validDimension(length) || !validDimension(height) || faces == 0 {
		return []entities.MaterialResult{}
	}

	wallArea := length * height
	studCount := math.Ceil(length / drywallStudSpacing)

	runners := math.Ceil(2*length/drywallRunnerLength) + math.Ceil(2*height/drywallRunnerLength)

	lines := []entities.MaterialResult{
		line(MaterialRunner, runners, entities.UnitBranch),
		line(MaterialStud, math.Ceil(studCount*height/drywallStudLength), entities.UnitBranch),
		line(MaterialPanel, math.Ceil(wallArea*faces/drywallPanelArea), entities.UnitSheet),
		line(MaterialPanelScrew, math.Ceil(studCount*height/drywallScrewPitch*faces/drywallScrewPackSize), entities.UnitPack),
	}

	if insulation {
		sheets := math.Ceil(wallArea / drywallInsulationArea)
		lines = append(lines,
			line(MaterialInsulation, sheets, entities.UnitInsulation),
			line(MaterialInsulation, math.Ceil(sheets/drywallSheetsPerPack), entities.UnitPack),
		)
	}

	return collect(lines...)
}
