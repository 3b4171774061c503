// Package calculator derives material quantities for the supported
// suspended-ceiling and drywall assemblies from their dimensions.
//
// Every calculator is a pure function. Invalid input (missing, zero,
// negative or non-finite dimensions) yields an empty list, never an error.
// Discrete quantities are rounded up, and zero quantities are never emitted.
package calculator

import (
	"errors"
	"math"

	"drywall_estimator/internal/domain/entities"
)

// Canonical material names. The resolver's alias table is keyed on these.
const (
	MaterialWallAngleL25   = "نبشی L25"
	MaterialWallAngleL24   = "نبشی L24"
	MaterialMainTeeT360    = "سازه T360"
	MaterialCrossTeeT120   = "سازه T120"
	MaterialCrossTeeT60    = "سازه T60"
	MaterialTile           = "تایل 60×60"
	MaterialHanger         = "آویز"
	MaterialNailAnchor     = "میخ و چاشنی"
	MaterialChannelF47     = "سازه F47"
	MaterialChannelU36     = "سازه U36"
	MaterialClip           = "کلیپس"
	MaterialStructureScrew = "پیچ سازه"
	MaterialPanelScrew     = "پیچ پنل"
	MaterialPanel          = "پنل والیز"
	MaterialRunner         = "سازه رانر"
	MaterialStud           = "سازه استاد"
	MaterialInsulation     = "پشم سنگ"
)

// Kind names an assembly type.
type Kind string

const (
	KindGridCeiling Kind = "grid_ceiling"
	KindBoxCeiling  Kind = "box_ceiling"
	KindFlatCeiling Kind = "flat_ceiling"
	KindDrywall     Kind = "drywall"
)

var ErrUnknownKind = errors.New("unknown assembly kind")

// Kinds lists the supported assemblies in display order.
func Kinds() []Kind {
	return []Kind{KindGridCeiling, KindBoxCeiling, KindFlatCeiling, KindDrywall}
}

// Input carries the dimensions (meters) and options for any calculator.
// Fields a calculator does not use are ignored.
type Input struct {
	Length     float64
	Width      float64
	Height     float64
	WallType   WallType
	Insulation bool
}

// Calculate dispatches to the calculator for kind.
func Calculate(kind Kind, in Input) ([]entities.MaterialResult, error) {
	switch kind {
	case KindGridCeiling:
		return GridCeiling(in.Length, in.Width), nil
	case KindBoxCeiling:
		return BoxCeiling(in.Length), nil
	case KindFlatCeiling:
		return FlatCeiling(in.Length, in.Width), nil
	case KindDrywall:
		return Drywall(in.Length, in.Height, in.WallType, in.Insulation), nil
	default:
		return nil, ErrUnknownKind
	}
}

func validDimension(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// collect drops non-positive quantities while keeping order.
func collect(lines ...entities.MaterialResult) []entities.MaterialResult {
	out := make([]entities.MaterialResult, 0, len(lines))
	for _, l := range lines {
		if l.Quantity > 0 {
			out = append(out, l)
		}
	}
	return out
}

func line(material string, quantity float64, unit string) entities.MaterialResult {
	return entities.MaterialResult{Material: material, Quantity: quantity, Unit: unit}
}
