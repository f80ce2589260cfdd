package reservoir

import (
	"fmt"
	"strings"
)

// Category classifies a geothermal reservoir by the state of the produced
// fluid. The literature review this model draws from groups every field into
// exactly four categories.
type Category uint8

const (
	HotWater Category = iota
	TwoPhaseLowEnthalpy
	TwoPhaseMediumEnthalpy
	TwoPhaseHighEnthalpy
)

const NumCategories = 4

var category_names = []string{
	"Hot Water",
	"2-Phase Low Enthalpy",
	"2-Phase Medium Enthalpy",
	"2-Phase High Enthalpy",
}

// String returns the category name as it appears in the source dataset.
func (cat Category) String() string {
	if int(cat) >= len(category_names) {
		return "Unknown"
	}
	return category_names[cat]
}

// CategoryNameMap provides a mapping from dataset spellings to Category.
// Keys are lowercase for case-insensitive matching.
var CategoryNameMap = map[string]Category{
	"hot water":                 HotWater,
	"hot-water":                 HotWater,
	"liquid":                    HotWater,
	"2-phase low enthalpy":      TwoPhaseLowEnthalpy,
	"two-phase low enthalpy":    TwoPhaseLowEnthalpy,
	"2-phase, low enthalpy":     TwoPhaseLowEnthalpy,
	"2-phase medium enthalpy":   TwoPhaseMediumEnthalpy,
	"two-phase medium enthalpy": TwoPhaseMediumEnthalpy,
	"2-phase, medium enthalpy":  TwoPhaseMediumEnthalpy,
	"2-phase high enthalpy":     TwoPhaseHighEnthalpy,
	"two-phase high enthalpy":   TwoPhaseHighEnthalpy,
	"2-phase, high enthalpy":    TwoPhaseHighEnthalpy,
}

// ParseCategory converts a reservoir category name to a Category. The
// matching is case-insensitive and trims whitespace.
func ParseCategory(name string) (cat Category, err error) {
	lowerName := strings.ToLower(strings.TrimSpace(name))
	var ok bool
	if cat, ok = CategoryNameMap[lowerName]; !ok {
		err = fmt.Errorf("unknown reservoir category: %q", name)
	}
	return
}

// Categories lists the four categories in dataset order, for sweeps and
// legends.
func Categories() []Category {
	return []Category{HotWater, TwoPhaseLowEnthalpy, TwoPhaseMediumEnthalpy, TwoPhaseHighEnthalpy}
}
