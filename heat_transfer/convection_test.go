package heat_transfer

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// water at 20 degree C, as tabulated in testdata
var water20 = PropertySet{
	Nu:    1.004e-6,
	K:     0.598,
	Alpha: 0.1433e-6,
	Beta:  0.195e-3,
}

func referenceGeometry(t *testing.T) Geometry {
	t.Helper()
	g, err := NewGeometry(40, 60)
	require.NoError(t, err)
	return g
}

func TestEvaluateConvection_Steps(t *testing.T) {
	geom := referenceGeometry(t)
	cond := OperatingConditions{AirTemperature: 20, WaterTemperature: 30, WindSpeed: 5}

	d, err := EvaluateConvection(water20, geom, cond, DefaultConfig())
	require.NoError(t, err)

	const l = 12.0
	pr := water20.Nu / water20.Alpha
	ra := 9.81 * water20.Beta * 10 * l * l * l / (water20.Nu * water20.Alpha)
	nuNC := 0.15 * math.Cbrt(ra)
	hNC := nuNC * water20.K / l
	re := 5 * l / water20.Nu
	nuFC := (0.037*math.Pow(re, 0.8) - 871) * math.Cbrt(pr)
	hFC := nuFC * water20.K / l
	h := math.Pow(math.Pow(hNC, 3.5)+math.Pow(hFC, 3.5), 1/3.5)

	assert.InEpsilon(t, pr, d.Pr, 1e-12)
	assert.InEpsilon(t, ra, d.RaNC, 1e-12)
	assert.InEpsilon(t, nuNC, d.NuNC, 1e-12)
	assert.InEpsilon(t, hNC, d.HNC, 1e-12)
	assert.InEpsilon(t, re, d.ReFC, 1e-12)
	assert.InEpsilon(t, nuFC, d.NuFC, 1e-12)
	assert.InEpsilon(t, hFC, d.HFC, 1e-12)
	assert.InEpsilon(t, h, d.H, 1e-12)

	// turbulent forced convection dominates at 5 m/s over 12 m
	assert.GreaterOrEqual(t, d.ReFC, 5e5)
	assert.Greater(t, d.HFC, d.HNC)
}

func TestNusseltNatural(t *testing.T) {
	// below the threshold
	assert.InDelta(t, 0.54*1e-2, nusseltNatural(1e-8, 1e-7), 1e-15)
	// at and above the threshold
	assert.InDelta(t, 0.15*math.Cbrt(1e-7), nusseltNatural(1e-7, 1e-7), 1e-15)
	assert.InDelta(t, 0.15*1e3, nusseltNatural(1e9, 1e-7), 1e-9)
	// a raised threshold selects the 1/4 power law
	assert.InDelta(t, 0.54*1e2, nusseltNatural(1e8, 1e9), 1e-9)
}

func TestNusseltForced(t *testing.T) {
	assert.InDelta(t, 0.664*100, nusseltForced(1e4, 1, 5e5), 1e-9)
	assert.InDelta(t, 0.664*100*2, nusseltForced(1e4, 8, 5e5), 1e-9)
	assert.InDelta(t, 0.037*math.Pow(1e6, 0.8)-871, nusseltForced(1e6, 1, 5e5), 1e-9)
	// exactly at the critical value the turbulent branch applies
	assert.InDelta(t, 0.037*math.Pow(5e5, 0.8)-871, nusseltForced(5e5, 1, 5e5), 1e-9)
}

func TestEvaluateConvection_NoWind(t *testing.T) {
	cond := OperatingConditions{AirTemperature: 20, WaterTemperature: 30, WindSpeed: 0}
	d, err := EvaluateConvection(water20, referenceGeometry(t), cond, DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, 0.0, d.ReFC)
	assert.Equal(t, 0.0, d.HFC)
	assert.InEpsilon(t, d.HNC, d.H, 1e-12)
}

func TestEvaluateConvection_EqualTemperatures(t *testing.T) {
	cond := OperatingConditions{AirTemperature: 20, WaterTemperature: 20, WindSpeed: 3}
	d, err := EvaluateConvection(water20, referenceGeometry(t), cond, DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, 0.0, d.RaNC)
	assert.Equal(t, 0.0, d.HNC)
	assert.InEpsilon(t, d.HFC, d.H, 1e-12)
}

func TestEvaluateConvection_DomainErrors(t *testing.T) {
	geom := referenceGeometry(t)
	cfg := DefaultConfig()

	negativeBeta := water20
	negativeBeta.Beta = -0.068e-3
	zeroNu := water20
	zeroNu.Nu = 0
	negativeAlpha := water20
	negativeAlpha.Alpha = -1e-7

	tests := []struct {
		name     string
		props    PropertySet
		cond     OperatingConditions
		quantity string
	}{
		{"water colder than air", water20, OperatingConditions{AirTemperature: 30, WaterTemperature: 20, WindSpeed: 5}, "T_water - T_air"},
		{"negative wind", water20, OperatingConditions{AirTemperature: 20, WaterTemperature: 30, WindSpeed: -1}, "wind speed"},
		{"nan air", water20, OperatingConditions{AirTemperature: math.NaN(), WaterTemperature: 30, WindSpeed: 1}, "air temperature"},
		{"inf wind", water20, OperatingConditions{AirTemperature: 20, WaterTemperature: 30, WindSpeed: math.Inf(1)}, "wind speed"},
		{"negative beta", negativeBeta, OperatingConditions{AirTemperature: 20, WaterTemperature: 30, WindSpeed: 5}, "Ra_nc"},
		{"zero nu", zeroNu, OperatingConditions{AirTemperature: 20, WaterTemperature: 30, WindSpeed: 5}, "nu"},
		{"negative alpha", negativeAlpha, OperatingConditions{AirTemperature: 20, WaterTemperature: 30, WindSpeed: 5}, "alpha"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EvaluateConvection(tt.props, geom, tt.cond, cfg)
			var de *DomainError
			require.True(t, errors.As(err, &de), "got %v", err)
			assert.Equal(t, tt.quantity, de.Quantity)
		})
	}
}

func TestEvaluateConvection_NegativeTurbulentNusselt(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CriticalReynolds = 1e4

	// Re = 1e5: 0.037 * 1e5^(4/5) - 871 = 370 - 871 < 0
	wind := 1e5 * water20.Nu / 12
	cond := OperatingConditions{AirTemperature: 20, WaterTemperature: 30, WindSpeed: wind}

	_, err := EvaluateConvection(water20, referenceGeometry(t), cond, cfg)
	var de *DomainError
	require.True(t, errors.As(err, &de), "got %v", err)
	assert.Equal(t, "Nu_fc", de.Quantity)
	assert.Less(t, de.Value, 0.0)
}

func TestEvaluateConvection_FiniteAndBounded(t *testing.T) {
	props := loadReferenceProperties(t)
	geom := referenceGeometry(t)
	cfg := DefaultConfig()
	upper := math.Pow(2, 2.0/7.0)

	for air := 5.0; air <= 95; air += 7.5 {
		for dt := 0.0; dt <= 30; dt += 2.5 {
			for wind := 0.0; wind <= 12; wind += 0.75 {
				cond := OperatingConditions{AirTemperature: air, WaterTemperature: air + dt, WindSpeed: wind}
				d, err := EvaluateConvection(props.At(air), geom, cond, cfg)
				require.NoError(t, err, "%+v", cond)

				for _, v := range []float64{d.Pr, d.RaNC, d.NuNC, d.HNC, d.ReFC, d.NuFC, d.HFC, d.H} {
					require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "%+v: %+v", cond, d)
				}

				hMax := math.Max(d.HNC, d.HFC)
				assert.GreaterOrEqual(t, d.H, hMax*(1-1e-12), "%+v", cond)
				assert.LessOrEqual(t, d.H, upper*hMax*(1+1e-12), "%+v", cond)
			}
		}
	}
}
