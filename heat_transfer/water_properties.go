package heat_transfer

import (
	"fmt"
	"path/filepath"
)

// PropertySet holds the water properties interpolated at one temperature.
type PropertySet struct {
	Nu    float64 // kinematic viscosity, m2/s
	K     float64 // thermal conductivity, W/m K
	Alpha float64 // thermal diffusivity, m2/s
	Beta  float64 // thermal expansion coefficient, 1/K
}

// WaterProperties groups the four reference tables. Loaded once at startup
// and shared read-only by every evaluation.
type WaterProperties struct {
	tables map[Property]*PropertyTable
}

// NewWaterProperties assembles the reference tables. Every property must be
// given exactly once.
func NewWaterProperties(tables ...*PropertyTable) (*WaterProperties, error) {
	w := &WaterProperties{tables: make(map[Property]*PropertyTable, len(Properties))}
	for _, t := range tables {
		if _, ok := w.tables[t.property]; ok {
			return nil, fmt.Errorf("heat_transfer: %s table given twice", t.property)
		}
		w.tables[t.property] = t
	}
	for _, p := range Properties {
		if _, ok := w.tables[p]; !ok {
			return nil, &DataLoadError{Property: p, Err: fmt.Errorf("table not given")}
		}
	}
	return w, nil
}

/*
Loads the four reference tables from a directory.

	Args:
	    dir: directory holding the files named by Property.FileName

	Returns:
	    the tables, or the first *DataLoadError encountered
*/
func LoadWaterProperties(dir string) (*WaterProperties, error) {
	tables := make([]*PropertyTable, 0, len(Properties))
	for _, p := range Properties {
		t, err := LoadPropertyTable(filepath.Join(dir, p.FileName()), p)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return NewWaterProperties(tables...)
}

// Table returns the reference table of p.
func (w *WaterProperties) Table(p Property) (*PropertyTable, error) {
	t, ok := w.tables[p]
	if !ok {
		return nil, &UnknownPropertyError{Name: string(p)}
	}
	return t, nil
}

// At interpolates every property at the given temperature, degree C.
func (w *WaterProperties) At(temperature float64) PropertySet {
	return PropertySet{
		Nu:    w.tables[PropertyNu].At(temperature),
		K:     w.tables[PropertyK].At(temperature),
		Alpha: w.tables[PropertyAlpha].At(temperature),
		Beta:  w.tables[PropertyBeta].At(temperature),
	}
}
