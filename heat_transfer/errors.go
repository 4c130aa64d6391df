package heat_transfer

import "fmt"

// DataLoadError is returned when a property table source is missing or malformed.
type DataLoadError struct {
	Path     string   // file path, empty for in-memory sources
	Property Property // property the table was loaded for
	Err      error
}

func (e *DataLoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("heat_transfer: loading %s table: %v", e.Property, e.Err)
	}
	return fmt.Sprintf("heat_transfer: loading %s table from `%s`: %v", e.Property, e.Path, e.Err)
}

func (e *DataLoadError) Unwrap() error { return e.Err }

// UnknownPropertyError is returned when a property name is not one of nu, k, alpha or beta.
type UnknownPropertyError struct {
	Name string
}

func (e *UnknownPropertyError) Error() string {
	return fmt.Sprintf("heat_transfer: unknown property %q", e.Name)
}

// InvalidGeometryError is returned when a reservoir side length is not positive.
type InvalidGeometryError struct {
	SideA, SideB float64
}

func (e *InvalidGeometryError) Error() string {
	return fmt.Sprintf("heat_transfer: invalid geometry %gx%g m, both sides must be positive", e.SideA, e.SideB)
}

// DomainError is returned when an input or intermediate quantity leaves the
// physical domain of the correlations, e.g. a negative Rayleigh number raised
// to a fractional power.
type DomainError struct {
	Quantity string
	Value    float64
	Reason   string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("heat_transfer: %s = %g: %s", e.Quantity, e.Value, e.Reason)
}
