package calculator

import (
	"math"

	"drywall_estimator/internal/domain/entities"
)

const (
	flatChannelSpacing  = 0.6
	flatChannelLength   = 4.0
	flatHangerSpacing   = 0.6
	flatHangerDrop      = 0.30
	flatAngleLength     = 3.0
	flatClipsPerPack    = 100.0
	flatScrewsPerHanger = 2.0
	flatPanelScrewPitch = 0.2
	flatPanelArea       = 2.88
)

// FlatCeiling estimates a flat gypsum-board ceiling on F47 channels.
func FlatCeiling(length, width float64) []entities.MaterialResult {
	if !validDimension(length) || !validDimension(width) {
		return []entities.MaterialResult{}
	}

	area := length * width
	perimeter := 2 * (length + width)

	rows := math.Ceil(width / flatChannelSpacing)
	channelRun := rows * length
	hangers := rows * math.Ceil(length/flatHangerSpacing)
	dropRun := hangers * flatHangerDrop

	return collect(
		line(MaterialChannelF47, math.Ceil(channelRun/flatChannelLength), entities.UnitBranch),
		line(MaterialChannelU36, math.Ceil(dropRun/flatChannelLength), entities.UnitBranch),
		line(MaterialHanger, hangers, entities.UnitPiece),
		line(MaterialWallAngleL25, math.Ceil(perimeter/flatAngleLength), entities.UnitBranch),
		line(MaterialClip, clipPacks(hangers), entities.UnitPack),
		line(MaterialStructureScrew, math.Ceil(hangers*flatScrewsPerHanger), entities.UnitPiece),
		line(MaterialPanelScrew, math.Ceil((perimeter+channelRun)/flatPanelScrewPitch), entities.UnitPiece),
		line(MaterialPanel, math.Ceil(area/flatPanelArea), entities.UnitSheet),
	)
}

// clipPacks returns one pack for anything under a full pack.
func clipPacks(count float64) float64 {
	if count <= 0 {
		return 0
	}
	if count < flatClipsPerPack {
		return 1
	}
	return math.Ceil(count / flatClipsPerPack)
}
