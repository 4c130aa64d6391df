package sweep

import (
	"fmt"
	"io"
	"math"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

type surfaceRow struct {
	AirTemperature   float64 `csv:"air_temperature"`
	WaterTemperature float64 `csv:"water_temperature"`
	WindSpeed        float64 `csv:"wind_speed"`
	Power            float64 `csv:"power_w"`
	CostAnnually     float64 `csv:"cost_annually"`
	Error            string  `csv:"error"`
}

// WriteCSV writes one line per grid point. Rejected points carry NaN power
// and cost and the rejection message.
func WriteCSV(w io.Writer, s *Surface) error {
	rows := make([]surfaceRow, 0, len(s.samples))
	for _, sample := range s.samples {
		row := surfaceRow{
			AirTemperature:   sample.AirTemperature,
			WaterTemperature: sample.WaterTemperature,
			WindSpeed:        sample.WindSpeed,
			Power:            sample.Result.Power,
			CostAnnually:     sample.Result.CostAnnually,
		}
		if sample.Err != nil {
			row.Power = math.NaN()
			row.CostAnnually = math.NaN()
			row.Error = sample.Err.Error()
		}
		rows = append(rows, row)
	}
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("sweep: writing csv: %w", err)
	}
	return nil
}

/*
Renders the annual cost surface as a heat map.

	Args:
	    s: sweep outcome
	    path: output image, the format follows the extension (.png, .svg, .pdf)
*/
func SaveHeatMap(s *Surface, path string) error {
	min, max := s.Min(), s.Max()
	if math.IsNaN(min) {
		return fmt.Errorf("sweep: no grid point could be evaluated")
	}
	if min == max {
		max = min + 1
	}

	p := plot.New()
	p.Title.Text = "Annual cost of convective heat loss"
	p.X.Label.Text = "Air temperature, degree C"
	p.Y.Label.Text = "Wind speed, m/s"

	hm := plotter.NewHeatMap(s, palette.Heat(12, 1))
	hm.Min, hm.Max = min, max
	p.Add(hm)

	if err := p.Save(16*vg.Centimeter, 12*vg.Centimeter, path); err != nil {
		return fmt.Errorf("sweep: saving heat map: %w", err)
	}
	return nil
}
