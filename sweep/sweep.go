// Package sweep evaluates the heat loss model over a grid of air temperatures
// and wind speeds.
package sweep

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sync"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"reservoir_heat_loss/heat_transfer"
)

// Evaluator maps one set of conditions to a power and annual cost.
// *heat_transfer.Evaluator satisfies it.
type Evaluator interface {
	Evaluate(airTemperature, waterTemperature, windSpeed float64) (heat_transfer.Result, error)
}

// Grid is the set of conditions to evaluate.
type Grid struct {
	AirTemperatures  []float64 // degree C
	WindSpeeds       []float64 // m/s
	WaterTemperature float64   // degree C
}

/*
Builds an evenly spaced grid.

	Args:
	    airMin, airMax: air temperature range, degree C
	    nAir: number of air temperatures, at least 2
	    windMin, windMax: wind speed range, m/s
	    nWind: number of wind speeds, at least 2
	    water: water temperature, degree C
*/
func NewGrid(airMin, airMax float64, nAir int, windMin, windMax float64, nWind int, water float64) (Grid, error) {
	if nAir < 2 || nWind < 2 {
		return Grid{}, fmt.Errorf("sweep: grid needs at least 2 points per axis, got %dx%d", nAir, nWind)
	}
	return Grid{
		AirTemperatures:  floats.Span(make([]float64, nAir), airMin, airMax),
		WindSpeeds:       floats.Span(make([]float64, nWind), windMin, windMax),
		WaterTemperature: water,
	}, nil
}

// Sample is the outcome at one grid point. Err is set when the conditions
// were rejected by the model; Result is then zero.
type Sample struct {
	AirTemperature   float64
	WaterTemperature float64
	WindSpeed        float64
	Result           heat_transfer.Result
	Err              error
}

// Surface holds the outcome of a sweep. Rows follow the wind speeds and
// columns the air temperatures.
type Surface struct {
	grid    Grid
	samples []Sample
	cost    *mat.Dense
}

/*
Evaluates every grid point.

	Args:
	    ctx: cancels the sweep between rows
	    ev: model evaluator, must be safe for concurrent use
	    grid: conditions to evaluate
	    workers: number of goroutines, GOMAXPROCS when not positive

	Returns:
	    the surface. Rejected grid points are recorded on their sample and do
	    not stop the sweep.
*/
func Run(ctx context.Context, ev Evaluator, grid Grid, workers int) (*Surface, error) {
	nc, nr := len(grid.AirTemperatures), len(grid.WindSpeeds)
	if nc == 0 || nr == 0 {
		return nil, fmt.Errorf("sweep: empty grid")
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(-1)
	}

	s := &Surface{
		grid:    grid,
		samples: make([]Sample, nc*nr),
		cost:    mat.NewDense(nr, nc, nil),
	}

	rows := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for r := range rows {
				s.evaluateRow(ev, r)
			}
		}()
	}

	var err error
dispatch:
	for r := 0; r < nr; r++ {
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case rows <- r:
		case <-ctx.Done():
			err = ctx.Err()
			break dispatch
		}
	}
	close(rows)
	wg.Wait()
	if err != nil {
		return nil, fmt.Errorf("sweep: %w", err)
	}

	log.WithFields(log.Fields{
		"points":  len(s.samples),
		"failed":  s.Failed(),
		"workers": workers,
	}).Info("sweep finished")
	return s, nil
}

func (s *Surface) evaluateRow(ev Evaluator, r int) {
	nc := len(s.grid.AirTemperatures)
	u := s.grid.WindSpeeds[r]
	for c, air := range s.grid.AirTemperatures {
		res, err := ev.Evaluate(air, s.grid.WaterTemperature, u)
		sample := Sample{
			AirTemperature:   air,
			WaterTemperature: s.grid.WaterTemperature,
			WindSpeed:        u,
			Err:              err,
		}
		cost := math.NaN()
		if err == nil {
			sample.Result = res
			cost = res.CostAnnually
		}
		s.samples[r*nc+c] = sample
		// each row is written by a single worker
		s.cost.Set(r, c, cost)
	}
}

// Samples returns the grid points row by row.
func (s *Surface) Samples() []Sample {
	return s.samples
}

// Sample returns the grid point at column c (air temperature) and row r (wind speed).
func (s *Surface) Sample(c, r int) Sample {
	return s.samples[r*len(s.grid.AirTemperatures)+c]
}

// Failed returns the number of rejected grid points.
func (s *Surface) Failed() int {
	n := 0
	for _, sample := range s.samples {
		if sample.Err != nil {
			n++
		}
	}
	return n
}

// Cost returns the annual cost matrix, NaN where the model rejected the conditions.
func (s *Surface) Cost() mat.Matrix {
	return s.cost
}

// Dims, Z, X and Y implement plotter.GridXYZ over the annual cost.

func (s *Surface) Dims() (c, r int) {
	return len(s.grid.AirTemperatures), len(s.grid.WindSpeeds)
}

func (s *Surface) Z(c, r int) float64 {
	return s.cost.At(r, c)
}

func (s *Surface) X(c int) float64 {
	return s.grid.AirTemperatures[c]
}

func (s *Surface) Y(r int) float64 {
	return s.grid.WindSpeeds[r]
}

// Min returns the lowest annual cost, NaN when every point failed.
func (s *Surface) Min() float64 {
	v := s.valid()
	if len(v) == 0 {
		return math.NaN()
	}
	return floats.Min(v)
}

// Max returns the highest annual cost, NaN when every point failed.
func (s *Surface) Max() float64 {
	v := s.valid()
	if len(v) == 0 {
		return math.NaN()
	}
	return floats.Max(v)
}

func (s *Surface) valid() []float64 {
	v := make([]float64, 0, len(s.samples))
	for _, sample := range s.samples {
		if sample.Err == nil {
			v = append(v, sample.Result.CostAnnually)
		}
	}
	return v
}
