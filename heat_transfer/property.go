package heat_transfer

// water property held in a reference table
type Property string

// water property held in a reference table
const (
	PropertyNu    Property = "nu"    // kinematic viscosity, m2/s
	PropertyK     Property = "k"     // thermal conductivity, W/m K
	PropertyAlpha Property = "alpha" // thermal diffusivity, m2/s
	PropertyBeta  Property = "beta"  // thermal expansion coefficient, 1/K
)

// Properties lists every supported property in load order.
var Properties = []Property{PropertyNu, PropertyK, PropertyAlpha, PropertyBeta}

func (p Property) String() string {
	return string(p)
}

/*
Returns the property with the given column name.

	Args:
	    name: one of "nu", "k", "alpha", "beta"

	Returns:
	    the property, or an *UnknownPropertyError for any other name
*/
func ParseProperty(name string) (Property, error) {
	p, ok := map[string]Property{
		"nu":    PropertyNu,
		"k":     PropertyK,
		"alpha": PropertyAlpha,
		"beta":  PropertyBeta,
	}[name]
	if !ok {
		return "", &UnknownPropertyError{Name: name}
	}
	return p, nil
}

/*
Returns the unit multiplier applied to tabulated values.

	Notes:
	    the tables store nu and alpha in 1e-6 m2/s, k in 1e-3 W/m K and beta in 1e-3 1/K.
	    Calling Scale on an unknown property is a programming error and panics.
*/
func (p Property) Scale() float64 {
	switch p {
	case PropertyNu, PropertyAlpha:
		return 1e-6
	case PropertyK, PropertyBeta:
		return 1e-3
	default:
		panic(&UnknownPropertyError{Name: string(p)})
	}
}

// FileName returns the default file name of the property's reference table.
func (p Property) FileName() string {
	switch p {
	case PropertyNu:
		return "kinematic_viscosity_e-6.csv"
	case PropertyK:
		return "thermal_conductivity_e-3.csv"
	case PropertyAlpha:
		return "thermal_diffusivity_e-6.csv"
	case PropertyBeta:
		return "thermal_expansion_coefficient_e-3.csv"
	default:
		panic(&UnknownPropertyError{Name: string(p)})
	}
}
