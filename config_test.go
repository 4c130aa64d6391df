package main

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/ini.v1"

	"reservoir_heat_loss/heat_transfer"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
	assert.Equal(t, heat_transfer.DefaultConfig(), cfg.Model)

	// the shipped file restates the defaults
	cfg, err = loadConfig("conf/config.ini")
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}

func TestLoadConfig_File(t *testing.T) {
	cfg, err := loadConfig("testdata/config.ini")
	require.NoError(t, err)

	assert.Equal(t, 10.0, cfg.Model.SideA)
	assert.Equal(t, 10.0, cfg.Model.SideB)
	assert.Equal(t, 2, cfg.Model.ReservoirCount)
	assert.Equal(t, 0.5, cfg.Model.CostPerKWh)
	assert.Equal(t, 25.0, cfg.WaterTemperature)

	// keys absent from the file keep their defaults
	def := defaultConfig()
	assert.Equal(t, def.Model.Gravity, cfg.Model.Gravity)
	assert.Equal(t, def.Model.RayleighThreshold, cfg.Model.RayleighThreshold)
	assert.Equal(t, def.Model.CriticalReynolds, cfg.Model.CriticalReynolds)
	assert.Equal(t, def.WaterPropertiesDir, cfg.WaterPropertiesDir)
	assert.Equal(t, def.WeatherFile, cfg.WeatherFile)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := loadConfig("testdata/no_such_config.ini")
	assert.Error(t, err)
}

func TestLoadCfg_MalformedValue(t *testing.T) {
	file, err := ini.Load([]byte("[geometry]\nside_a = abc\nside_b = 12\n"))
	require.NoError(t, err)

	cfg := loadCfg(file)
	assert.Equal(t, 40.0, cfg.Model.SideA)
	assert.Equal(t, 12.0, cfg.Model.SideB)
}

func TestApplyFlags(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	addConfigFlags(flags)
	require.NoError(t, flags.Parse([]string{"--side-a=12", "--water=20", "--reservoirs=1", "--weather=other.xlsx"}))

	cfg, err := loadConfig("testdata/config.ini")
	require.NoError(t, err)
	require.NoError(t, applyFlags(flags, &cfg))

	assert.Equal(t, 12.0, cfg.Model.SideA)
	assert.Equal(t, 10.0, cfg.Model.SideB)
	assert.Equal(t, 1, cfg.Model.ReservoirCount)
	assert.Equal(t, 0.5, cfg.Model.CostPerKWh)
	assert.Equal(t, 20.0, cfg.WaterTemperature)
	assert.Equal(t, "other.xlsx", cfg.WeatherFile)
}
