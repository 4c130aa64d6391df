package heat_transfer

import (
	"errors"

	"github.com/sirupsen/logrus"
)

/*
Evaluates the heat loss and its annual cost for one set of conditions.

	Args:
	    props: water property reference tables
	    cond: operating conditions
	    cfg: model configuration

	Returns:
	    the power and the annual cost, or the first error of the pipeline
*/
func Evaluate(props *WaterProperties, cond OperatingConditions, cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	geom, err := NewGeometry(cfg.SideA, cfg.SideB)
	if err != nil {
		return Result{}, err
	}
	_, r, err := evaluate(props, geom, cond, cfg)
	return r, err
}

func evaluate(props *WaterProperties, geom Geometry, cond OperatingConditions, cfg Config) (DerivedCoefficients, Result, error) {
	if props == nil {
		return DerivedCoefficients{}, Result{}, errors.New("heat_transfer: water properties not loaded")
	}

	// water properties at the air temperature
	set := props.At(cond.AirTemperature)

	d, err := EvaluateConvection(set, geom, cond, cfg)
	if err != nil {
		return DerivedCoefficients{}, Result{}, err
	}

	p := Power(d.H, geom, cond, cfg.ReservoirCount)
	return d, Result{
		Power:        p,
		CostAnnually: AnnualCost(p, cfg.CostPerKWh),
	}, nil
}

// Evaluator binds the reference tables and a validated configuration. It
// holds no mutable state and can be used from several goroutines.
type Evaluator struct {
	props *WaterProperties
	cfg   Config
	geom  Geometry

	// Log receives one debug entry per evaluation.
	Log logrus.FieldLogger
}

// NewEvaluator validates cfg and computes the geometry once.
func NewEvaluator(props *WaterProperties, cfg Config) (*Evaluator, error) {
	if props == nil {
		return nil, errors.New("heat_transfer: water properties not loaded")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	geom, err := NewGeometry(cfg.SideA, cfg.SideB)
	if err != nil {
		return nil, err
	}
	return &Evaluator{
		props: props,
		cfg:   cfg,
		geom:  geom,
		Log:   logrus.StandardLogger(),
	}, nil
}

// Config returns the configuration the evaluator was built with.
func (e *Evaluator) Config() Config {
	return e.cfg
}

// Geometry returns the reservoir geometry.
func (e *Evaluator) Geometry() Geometry {
	return e.geom
}

// Evaluate returns the power and annual cost for the given air temperature
// (degree C), water temperature (degree C) and wind speed (m/s).
func (e *Evaluator) Evaluate(airTemperature, waterTemperature, windSpeed float64) (Result, error) {
	_, r, err := e.EvaluateDetailed(OperatingConditions{
		AirTemperature:   airTemperature,
		WaterTemperature: waterTemperature,
		WindSpeed:        windSpeed,
	})
	return r, err
}

// EvaluateDetailed also returns the intermediate convection coefficients.
func (e *Evaluator) EvaluateDetailed(cond OperatingConditions) (DerivedCoefficients, Result, error) {
	d, r, err := evaluate(e.props, e.geom, cond, e.cfg)
	if err != nil {
		e.Log.WithFields(logrus.Fields{
			"air_temperature":   cond.AirTemperature,
			"water_temperature": cond.WaterTemperature,
			"wind_speed":        cond.WindSpeed,
		}).WithError(err).Debug("evaluation rejected")
		return d, r, err
	}
	e.Log.WithFields(logrus.Fields{
		"air_temperature":   cond.AirTemperature,
		"water_temperature": cond.WaterTemperature,
		"wind_speed":        cond.WindSpeed,
		"h_nc":              d.HNC,
		"h_fc":              d.HFC,
		"h":                 d.H,
		"power":             r.Power,
	}).Debug("evaluated")
	return d, r, nil
}
