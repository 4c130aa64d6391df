package heat_transfer

// gravitational acceleration, m/s2
const defaultGravity = 9.81

// Rayleigh number separating the two natural convection correlations.
// Kept as found in the reference correlation, see DESIGN.md.
const defaultRayleighThreshold = 1e-7

// critical Reynolds number of a flat plate
const defaultCriticalReynolds = 5e5

// reservoir side lengths, m
const (
	defaultSideA = 40.0
	defaultSideB = 60.0
)

// number of reservoirs
const defaultReservoirCount = 4

// electricity price, currency/kWh
const defaultCostPerKWh = 0.38

// hours in a year, h
const hoursPerYear = 24 * 365
