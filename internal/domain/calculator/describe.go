package calculator

import (
	"fmt"
	"strconv"
)

var kindTitles = map[Kind]string{
	KindGridCeiling: "سقف کاذب مشبک",
	KindBoxCeiling:  "باکس و نورمخفی",
	KindFlatCeiling: "سقف کاذب یکپارچه",
	KindDrywall:     "دیوار خشک",
}

// Title returns the Persian display name of an assembly.
func (k Kind) Title() string {
	if t, ok := kindTitles[k]; ok {
		return t
	}
	return string(k)
}

// Describe summarises the inputs of one calculation for an Estimation.
func Describe(kind Kind, in Input) string {
	switch kind {
	case KindGridCeiling, KindFlatCeiling:
		return fmt.Sprintf("%s: %s × %s متر", kind.Title(), meters(in.Length), meters(in.Width))
	case KindBoxCeiling:
		return fmt.Sprintf("%s: %s متر طول", kind.Title(), meters(in.Length))
	case KindDrywall:
		s := fmt.Sprintf("%s (%s): %s × %s متر", kind.Title(), in.WallType.Title(), meters(in.Length), meters(in.Height))
		if in.Insulation {
			s += "، با عایق"
		}
		return s
	default:
		return kind.Title()
	}
}

// Title returns the Persian display name of a wall type.
func (w WallType) Title() string {
	if w == WallTypeLining {
		return "پوشش یک طرفه"
	}
	return "پارتیشن دو طرفه"
}

func meters(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
