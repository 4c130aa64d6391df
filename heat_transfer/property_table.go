package heat_transfer

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/gocarina/gocsv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"gonum.org/v1/gonum/interp"
)

// name of the temperature column of every property table
const temperatureColumn = "temperature"

// PropertySample is one point of a reference curve.
type PropertySample struct {
	Temperature float64 // degree C
	Value       float64 // tabulated value, before scaling
}

// PropertyTable is the reference curve of one water property. It is
// read-only after construction and can be shared between goroutines.
type PropertyTable struct {
	property Property
	samples  []PropertySample // sorted by temperature
	curve    interp.Predictor
}

/*
Builds a property table from in-memory samples.

	Args:
	    p: property the samples belong to
	    samples: reference points, sorted or unsorted

	Returns:
	    the table, or a *DataLoadError if the samples are empty, not finite
	    or contain the same temperature twice
*/
func NewPropertyTable(p Property, samples []PropertySample) (*PropertyTable, error) {
	if _, err := ParseProperty(string(p)); err != nil {
		return nil, err
	}
	curve, sorted, err := fitSamples(samples)
	if err != nil {
		return nil, &DataLoadError{Property: p, Err: err}
	}
	return &PropertyTable{property: p, samples: sorted, curve: curve}, nil
}

// LoadPropertyTable reads the table of p from a CSV file.
func LoadPropertyTable(path string, p Property) (*PropertyTable, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &DataLoadError{Path: path, Property: p, Err: err}
	}
	defer file.Close()

	t, err := ReadPropertyTable(file, p)
	if err != nil {
		var dle *DataLoadError
		if errors.As(err, &dle) {
			dle.Path = path
		}
		return nil, err
	}

	log.WithFields(log.Fields{
		"property": p,
		"path":     path,
		"samples":  len(t.samples),
	}).Info("loaded property table")
	return t, nil
}

/*
Reads a property table from CSV.

	Args:
	    r: CSV with a header row holding a "temperature" column and a column named
	       after the property ("nu", "k", "alpha" or "beta")
	    p: property to read

	Returns:
	    the table, or a *DataLoadError if a column is missing or a cell is not a number
*/
func ReadPropertyTable(r io.Reader, p Property) (*PropertyTable, error) {
	if _, err := ParseProperty(string(p)); err != nil {
		return nil, err
	}

	rows, err := gocsv.CSVToMaps(r)
	if err != nil {
		return nil, &DataLoadError{Property: p, Err: err}
	}

	samples := make([]PropertySample, 0, len(rows))
	for i, row := range rows {
		// header is line 1
		line := i + 2
		t, err := parseCell(row, temperatureColumn, line)
		if err != nil {
			return nil, &DataLoadError{Property: p, Err: err}
		}
		v, err := parseCell(row, string(p), line)
		if err != nil {
			return nil, &DataLoadError{Property: p, Err: err}
		}
		samples = append(samples, PropertySample{Temperature: t, Value: v})
	}

	return NewPropertyTable(p, samples)
}

func parseCell(row map[string]string, column string, line int) (float64, error) {
	s, ok := row[column]
	if !ok {
		return 0, fmt.Errorf("missing column %q", column)
	}
	v, err := cast.ToFloat64E(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("line %d, column %q: %v", line, column, err)
	}
	return v, nil
}

func fitSamples(samples []PropertySample) (interp.Predictor, []PropertySample, error) {
	if len(samples) == 0 {
		return nil, nil, errors.New("no samples")
	}

	sorted := make([]PropertySample, len(samples))
	copy(sorted, samples)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Temperature < sorted[j].Temperature
	})

	xs := make([]float64, len(sorted))
	ys := make([]float64, len(sorted))
	for i, s := range sorted {
		if !isFinite(s.Temperature) || !isFinite(s.Value) {
			return nil, nil, fmt.Errorf("sample %d is not finite: (%g, %g)", i, s.Temperature, s.Value)
		}
		if i > 0 && s.Temperature == sorted[i-1].Temperature {
			return nil, nil, fmt.Errorf("duplicate temperature %g", s.Temperature)
		}
		xs[i], ys[i] = s.Temperature, s.Value
	}

	if len(sorted) == 1 {
		return interp.Constant(ys[0]), sorted, nil
	}

	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, ys); err != nil {
		return nil, nil, err
	}
	return pl, sorted, nil
}

/*
Interpolates a reference curve.

	Args:
	    samples: reference points, sorted or unsorted
	    temperature: query temperature, degree C
	    scale: unit multiplier applied to the interpolated value

	Returns:
	    the scaled value. Outside the sampled range the nearest boundary value is
	    returned, the curve is never extrapolated.
*/
func Interpolate(samples []PropertySample, temperature, scale float64) (float64, error) {
	curve, _, err := fitSamples(samples)
	if err != nil {
		return 0, &DataLoadError{Err: err}
	}
	return curve.Predict(temperature) * scale, nil
}

// Property returns the property the table holds.
func (t *PropertyTable) Property() Property {
	return t.property
}

// Samples returns a copy of the reference points sorted by temperature.
func (t *PropertyTable) Samples() []PropertySample {
	s := make([]PropertySample, len(t.samples))
	copy(s, t.samples)
	return s
}

// At returns the scaled property value at the given temperature, clamped to
// the boundary values outside the sampled range.
func (t *PropertyTable) At(temperature float64) float64 {
	return t.curve.Predict(temperature) * t.property.Scale()
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
