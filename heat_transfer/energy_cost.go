package heat_transfer

// Result is the outcome of one evaluation.
type Result struct {
	Power        float64 // heat flow from water to air, W
	CostAnnually float64 // cost of supplying that heat for a year, currency/year
}

/*
Heat flow from the water surfaces of all reservoirs to the air.

	Args:
	    h: combined film coefficient, W/m2 K
	    geom: reservoir geometry
	    cond: operating conditions
	    reservoirCount: number of identical reservoirs

	Returns:
	    power, W
*/
func Power(h float64, geom Geometry, cond OperatingConditions, reservoirCount int) float64 {
	return h * geom.Area * (cond.WaterTemperature - cond.AirTemperature) * float64(reservoirCount)
}

// AnnualCost returns the cost of supplying powerWatts continuously for a year.
func AnnualCost(powerWatts, costPerKWh float64) float64 {
	return powerWatts / 1000 * hoursPerYear * costPerKWh
}
