package reservoir

import "fmt"

// Scenario is one reinjection record from the literature table: a field
// label, its reservoir category, the reinjection rate and the reinjection
// temperature. Scenarios are read-only; the solver never mutates them.
type Scenario struct {
	Field       string
	Category    Category
	Rate        float64 // reinjection rate of geothermal fluid, tonne/hr
	Temperature float64 // reinjection temperature of geothermal fluid, degC
}

// Velocity converts the reinjection rate to a fluid velocity through the
// wellhead, Q = vA so v = Q/A. Fluid density is 1 t/m3, so tonne/hr and
// m3/hr are numerically equal; /3600 converts to m3/s.
func (sc Scenario) Velocity(wellArea float64) float64 {
	return sc.Rate / 3600. / wellArea
}

func (sc Scenario) String() string {
	return fmt.Sprintf("%s [%s]: rate = %8.2f tonne/hr, Tinj = %6.2f degC",
		sc.Field, sc.Category, sc.Rate, sc.Temperature)
}
