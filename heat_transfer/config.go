package heat_transfer

import (
	"fmt"
	"math"
)

// Config holds every constant of the model that a sensitivity analysis may
// want to change.
type Config struct {
	SideA             float64 // reservoir side length, m
	SideB             float64 // reservoir side length, m
	ReservoirCount    int     // number of identical reservoirs
	CostPerKWh        float64 // electricity price, currency/kWh
	Gravity           float64 // gravitational acceleration, m/s2
	RayleighThreshold float64 // natural convection correlation switch
	CriticalReynolds  float64 // forced convection laminar/turbulent switch
}

// DefaultConfig returns the reference configuration: four 40 m x 60 m
// reservoirs at 0.38 per kWh.
func DefaultConfig() Config {
	return Config{
		SideA:             defaultSideA,
		SideB:             defaultSideB,
		ReservoirCount:    defaultReservoirCount,
		CostPerKWh:        defaultCostPerKWh,
		Gravity:           defaultGravity,
		RayleighThreshold: defaultRayleighThreshold,
		CriticalReynolds:  defaultCriticalReynolds,
	}
}

// Validate checks that the configuration describes a physical system.
func (c Config) Validate() error {
	if _, err := NewGeometry(c.SideA, c.SideB); err != nil {
		return err
	}
	if c.ReservoirCount <= 0 {
		return fmt.Errorf("heat_transfer: reservoir count must be positive, got %d", c.ReservoirCount)
	}
	if !(c.CostPerKWh >= 0) || math.IsInf(c.CostPerKWh, 0) {
		return fmt.Errorf("heat_transfer: cost per kWh must be a non-negative number, got %g", c.CostPerKWh)
	}
	if !(c.Gravity > 0) || math.IsInf(c.Gravity, 0) {
		return fmt.Errorf("heat_transfer: gravity must be positive, got %g", c.Gravity)
	}
	if math.IsNaN(c.RayleighThreshold) || math.IsNaN(c.CriticalReynolds) {
		return fmt.Errorf("heat_transfer: regime thresholds must be numbers")
	}
	return nil
}
