package calculator

import (
	"math"

	"drywall_estimator/internal/domain/entities"
)

const (
	gridAngleLength   = 3.0
	gridMainSpacing   = 1.2
	gridMainLength    = 3.6
	gridCrossSpacing  = 0.6
	gridCrossLength   = 1.2
	gridT60Coverage   = 0.72
	gridTileArea      = 0.36
	gridTileWaste     = 1.03
	gridHangersPerM2  = 0.8
	gridFastenerPitch = 0.3
)

// GridCeiling estimates a 60x60 lay-in grid ceiling for a length x width room.
func GridCeiling(length, width float64) []entities.MaterialResult {
	if !validDimension(length) || !validDimension(width) {
		return []entities.MaterialResult{}
	}

	perimeter := 2 * (length + width)
	area := length * width
	longSide := math.Max(length, width)
	shortSide := math.Min(length, width)

	mainRows := math.Ceil(shortSide / gridMainSpacing)
	crossRows := math.Ceil(longSide/gridCrossSpacing) - 1

	return collect(
		line(MaterialWallAngleL25, math.Ceil(perimeter/gridAngleLength), entities.UnitBranch),
		line(MaterialMainTeeT360, math.Ceil(mainRows*longSide/gridMainLength), entities.UnitBranch),
		line(MaterialCrossTeeT120, math.Ceil(crossRows*shortSide/gridCrossLength), entities.UnitBranch),
		line(MaterialCrossTeeT60, math.Ceil(area/gridT60Coverage), entities.UnitBranch),
		line(MaterialTile, math.Ceil((area/gridTileArea)*gridTileWaste), entities.UnitPiece),
		line(MaterialHanger, math.Ceil(area*gridHangersPerM2), entities.UnitPiece),
		line(MaterialNailAnchor, math.Ceil(perimeter/gridFastenerPitch), entities.UnitPiece),
	)
}
