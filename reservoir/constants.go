package reservoir

// Constants are the physical parameters held fixed across all scenarios.
// The source review does not report conductivity, injection depth, thermal
// gradient or fluid density per field, so one set is shared by every run.
type Constants struct {
	Conductivity float64 // thermal conductivity of geothermal fluid, W/m/K
	Density      float64 // density of geothermal fluid, t/m3
	SpecificHeat float64 // specific heat of geothermal fluid, kJ/kg/K
	WellArea     float64 // average area of reinjection well head, m2
	DepthTop     float64 // top of the modeled interval, m
	DepthBottom  float64 // bottom of the modeled interval, m
	TTop         float64 // background temperature at DepthTop, degC
	TBottom      float64 // background temperature at DepthBottom, degC
}

// DefaultConstants returns the preset parameters. Pure water properties at
// reservoir conditions, a 500 m interval below the injection depth and a
// linear 150-250 degC background gradient.
func DefaultConstants() Constants {
	return Constants{
		Conductivity: 0.6,
		Density:      1.00,
		SpecificHeat: 4.186,
		WellArea:     0.5,
		DepthTop:     1000,
		DepthBottom:  1500,
		TTop:         150,
		TBottom:      250,
	}
}

// Diffusivity is the thermal diffusivity D/(rho*cT) entering the diffusive
// term of the update.
func (pc Constants) Diffusivity() float64 {
	return pc.Conductivity / (pc.Density * pc.SpecificHeat)
}

// BackgroundSlope is the background thermal gradient in degC/m.
func (pc Constants) BackgroundSlope() float64 {
	return (pc.TBottom - pc.TTop) / (pc.DepthBottom - pc.DepthTop)
}
