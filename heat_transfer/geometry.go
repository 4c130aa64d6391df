package heat_transfer

import "math"

// Geometry is the plan of a rectangular reservoir.
type Geometry struct {
	SideA                float64 // m
	SideB                float64 // m
	Area                 float64 // m2
	Perimeter            float64 // m
	CharacteristicLength float64 // area / perimeter, m
}

/*
Computes the reservoir geometry.

	Args:
	    sideA: side length, m
	    sideB: side length, m

	Returns:
	    the geometry, or an *InvalidGeometryError if a side is not positive
*/
func NewGeometry(sideA, sideB float64) (Geometry, error) {
	if !(sideA > 0) || !(sideB > 0) || math.IsInf(sideA, 0) || math.IsInf(sideB, 0) {
		return Geometry{}, &InvalidGeometryError{SideA: sideA, SideB: sideB}
	}

	area := sideA * sideB
	perimeter := 2 * (sideA + sideB)

	return Geometry{
		SideA:                sideA,
		SideB:                sideB,
		Area:                 area,
		Perimeter:            perimeter,
		CharacteristicLength: area / perimeter,
	}, nil
}
