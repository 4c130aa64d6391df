package heat_transfer

import (
	"math"
)

// OperatingConditions are the per-evaluation inputs.
type OperatingConditions struct {
	AirTemperature   float64 // degree C
	WaterTemperature float64 // degree C
	WindSpeed        float64 // m/s
}

// DerivedCoefficients are the intermediate and final quantities of one
// convection evaluation.
type DerivedCoefficients struct {
	Pr   float64 // Prandtl number, -
	RaNC float64 // Rayleigh number of natural convection, -
	NuNC float64 // Nusselt number of natural convection, -
	HNC  float64 // natural convection film coefficient, W/m2 K
	ReFC float64 // Reynolds number of forced convection, -
	NuFC float64 // Nusselt number of forced convection, -
	HFC  float64 // forced convection film coefficient, W/m2 K
	H    float64 // combined film coefficient, W/m2 K
}

/*
Computes the combined convective heat transfer coefficient of the water surface.

	Args:
	    props: water properties at the air temperature
	    geom: reservoir geometry
	    cond: operating conditions
	    cfg: gravity and regime thresholds

	Returns:
	    the derived coefficients, or a *DomainError when an input or an
	    intermediate quantity is outside the domain of the correlations

	Notes:
	    each step only consumes the results of the previous ones:
	    Pr -> Ra_nc -> Nu_nc -> h_nc -> Re_fc -> Nu_fc -> h_fc -> h
*/
func EvaluateConvection(props PropertySet, geom Geometry, cond OperatingConditions, cfg Config) (DerivedCoefficients, error) {
	if err := validateInputs(props, geom, cond); err != nil {
		return DerivedCoefficients{}, err
	}

	var d DerivedCoefficients
	l := geom.CharacteristicLength

	d.Pr = prandtl(props)

	// natural convection
	d.RaNC = rayleigh(props, l, cond, cfg.Gravity)
	if d.RaNC < 0 {
		return DerivedCoefficients{}, &DomainError{Quantity: "Ra_nc", Value: d.RaNC, Reason: "negative Rayleigh number, check the thermal expansion coefficient"}
	}
	d.NuNC = nusseltNatural(d.RaNC, cfg.RayleighThreshold)
	d.HNC = filmCoefficient(d.NuNC, props.K, l)

	// forced convection
	d.ReFC = reynolds(props, l, cond.WindSpeed)
	d.NuFC = nusseltForced(d.ReFC, d.Pr, cfg.CriticalReynolds)
	if d.NuFC < 0 {
		return DerivedCoefficients{}, &DomainError{Quantity: "Nu_fc", Value: d.NuFC, Reason: "turbulent correlation is negative near the critical Reynolds number"}
	}
	d.HFC = filmCoefficient(d.NuFC, props.K, l)

	// combined convection
	d.H = combined(d.HNC, d.HFC)

	for _, q := range []struct {
		name string
		v    float64
	}{
		{"Pr", d.Pr}, {"Ra_nc", d.RaNC}, {"Nu_nc", d.NuNC}, {"h_nc", d.HNC},
		{"Re_fc", d.ReFC}, {"Nu_fc", d.NuFC}, {"h_fc", d.HFC}, {"h", d.H},
	} {
		if !isFinite(q.v) {
			return DerivedCoefficients{}, &DomainError{Quantity: q.name, Value: q.v, Reason: "not a finite number"}
		}
	}

	return d, nil
}

func validateInputs(props PropertySet, geom Geometry, cond OperatingConditions) error {
	for _, q := range []struct {
		name string
		v    float64
	}{
		{"air temperature", cond.AirTemperature},
		{"water temperature", cond.WaterTemperature},
		{"wind speed", cond.WindSpeed},
		{"beta", props.Beta},
	} {
		if !isFinite(q.v) {
			return &DomainError{Quantity: q.name, Value: q.v, Reason: "not a finite number"}
		}
	}
	if cond.WaterTemperature < cond.AirTemperature {
		return &DomainError{Quantity: "T_water - T_air", Value: cond.WaterTemperature - cond.AirTemperature, Reason: "water must not be colder than air"}
	}
	if cond.WindSpeed < 0 {
		return &DomainError{Quantity: "wind speed", Value: cond.WindSpeed, Reason: "must not be negative"}
	}
	for _, q := range []struct {
		name string
		v    float64
	}{
		{"nu", props.Nu},
		{"alpha", props.Alpha},
		{"k", props.K},
		{"L", geom.CharacteristicLength},
	} {
		if !(q.v > 0) || math.IsInf(q.v, 0) {
			return &DomainError{Quantity: q.name, Value: q.v, Reason: "must be positive"}
		}
	}
	return nil
}

// Pr = nu / alpha
func prandtl(props PropertySet) float64 {
	return props.Nu / props.Alpha
}

/*
Rayleigh number of the buoyancy driven flow above the water surface.

	Notes:
	    Ra_nc = g beta (T_water - T_air) L^3 / (nu alpha)
*/
func rayleigh(props PropertySet, l float64, cond OperatingConditions, g float64) float64 {
	dt := cond.WaterTemperature - cond.AirTemperature
	return g * props.Beta * dt * l * l * l / (props.Nu * props.Alpha)
}

/*
Nusselt number of natural convection from a heated horizontal surface.

	Notes:
	    Ra < threshold: Nu = 0.54 Ra^(1/4)
	    otherwise:      Nu = 0.15 Ra^(1/3)
*/
func nusseltNatural(ra, threshold float64) float64 {
	if ra < threshold {
		return 0.54 * math.Pow(ra, 1.0/4.0)
	}
	return 0.15 * math.Pow(ra, 1.0/3.0)
}

// Re_fc = u L / nu
func reynolds(props PropertySet, l, windSpeed float64) float64 {
	return windSpeed * l / props.Nu
}

/*
Nusselt number of forced convection over a flat plate.

	Notes:
	    Re < Re_c: Nu = 0.664 Re^(1/2) Pr^(1/3)          laminar
	    otherwise: Nu = (0.037 Re^(4/5) - 871) Pr^(1/3)  mixed laminar/turbulent
*/
func nusseltForced(re, pr, criticalReynolds float64) float64 {
	if re < criticalReynolds {
		return 0.664 * math.Pow(re, 1.0/2.0) * math.Pow(pr, 1.0/3.0)
	}
	return (0.037*math.Pow(re, 4.0/5.0) - 871) * math.Pow(pr, 1.0/3.0)
}

// h = Nu k / L, W/m2 K
func filmCoefficient(nu, k, l float64) float64 {
	return nu * k / l
}

// h = (h_nc^(7/2) + h_fc^(7/2))^(2/7)
func combined(hNC, hFC float64) float64 {
	return math.Pow(math.Pow(hNC, 7.0/2.0)+math.Pow(hFC, 7.0/2.0), 2.0/7.0)
}
