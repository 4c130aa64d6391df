package main

import (
	"fmt"

	"github.com/spf13/pflag"
	"gopkg.in/ini.v1"

	"reservoir_heat_loss/heat_transfer"
)

// Config holds the settings of one run.
type Config struct {
	Model              heat_transfer.Config
	WaterPropertiesDir string
	WeatherFile        string
	WaterTemperature   float64 // degree C
}

func defaultConfig() Config {
	return Config{
		Model:              heat_transfer.DefaultConfig(),
		WaterPropertiesDir: "data/water_properties",
		WeatherFile:        "data/weather_2023.csv",
		WaterTemperature:   30,
	}
}

/*
Reads the configuration file.

	Args:
	    path: INI file, the defaults are returned when empty

	Notes:
	    missing or unreadable keys fall back to the defaults
*/
func loadConfig(path string) (Config, error) {
	if path == "" {
		return defaultConfig(), nil
	}
	file, err := ini.Load(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file `%s`: %w", path, err)
	}
	return loadCfg(file), nil
}

func loadCfg(file *ini.File) Config {
	def := defaultConfig()

	geometry := file.Section("geometry")
	cost := file.Section("cost")
	physics := file.Section("physics")
	data := file.Section("data")
	operating := file.Section("operating")

	return Config{
		Model: heat_transfer.Config{
			SideA:             geometry.Key("side_a").MustFloat64(def.Model.SideA),
			SideB:             geometry.Key("side_b").MustFloat64(def.Model.SideB),
			ReservoirCount:    cost.Key("reservoir_count").MustInt(def.Model.ReservoirCount),
			CostPerKWh:        cost.Key("cost_per_kwh").MustFloat64(def.Model.CostPerKWh),
			Gravity:           physics.Key("gravity").MustFloat64(def.Model.Gravity),
			RayleighThreshold: physics.Key("rayleigh_threshold").MustFloat64(def.Model.RayleighThreshold),
			CriticalReynolds:  physics.Key("critical_reynolds").MustFloat64(def.Model.CriticalReynolds),
		},
		WaterPropertiesDir: data.Key("water_properties_dir").MustString(def.WaterPropertiesDir),
		WeatherFile:        data.Key("weather_file").MustString(def.WeatherFile),
		WaterTemperature:   operating.Key("water_temperature").MustFloat64(def.WaterTemperature),
	}
}

// command line flags that override the configuration file
const (
	flagSideA              = "side-a"
	flagSideB              = "side-b"
	flagReservoirs         = "reservoirs"
	flagCostPerKWh         = "cost-per-kwh"
	flagWaterPropertiesDir = "water-properties"
	flagWeatherFile        = "weather"
	flagWaterTemperature   = "water"
)

func addConfigFlags(flags *pflag.FlagSet) {
	def := defaultConfig()
	flags.Float64(flagSideA, def.Model.SideA, "reservoir side a, m")
	flags.Float64(flagSideB, def.Model.SideB, "reservoir side b, m")
	flags.Int(flagReservoirs, def.Model.ReservoirCount, "number of reservoirs")
	flags.Float64(flagCostPerKWh, def.Model.CostPerKWh, "energy cost per kWh")
	flags.String(flagWaterPropertiesDir, def.WaterPropertiesDir, "directory of the water property tables")
	flags.String(flagWeatherFile, def.WeatherFile, "weather time series (.xlsx or .csv)")
	flags.Float64(flagWaterTemperature, def.WaterTemperature, "water temperature, degree C")
}

// applyFlags overwrites the fields whose flag was given on the command line.
func applyFlags(flags *pflag.FlagSet, cfg *Config) error {
	var err error
	set := func(name string, apply func() error) {
		if err == nil && flags.Changed(name) {
			err = apply()
		}
	}
	set(flagSideA, func() (e error) { cfg.Model.SideA, e = flags.GetFloat64(flagSideA); return })
	set(flagSideB, func() (e error) { cfg.Model.SideB, e = flags.GetFloat64(flagSideB); return })
	set(flagReservoirs, func() (e error) { cfg.Model.ReservoirCount, e = flags.GetInt(flagReservoirs); return })
	set(flagCostPerKWh, func() (e error) { cfg.Model.CostPerKWh, e = flags.GetFloat64(flagCostPerKWh); return })
	set(flagWaterPropertiesDir, func() (e error) { cfg.WaterPropertiesDir, e = flags.GetString(flagWaterPropertiesDir); return })
	set(flagWeatherFile, func() (e error) { cfg.WeatherFile, e = flags.GetString(flagWeatherFile); return })
	set(flagWaterTemperature, func() (e error) { cfg.WaterTemperature, e = flags.GetFloat64(flagWaterTemperature); return })
	return err
}
