package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reservoir_heat_loss/heat_transfer"
)

func execute(args ...string) (string, error) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEvaluateCmd(t *testing.T) {
	out, err := execute("evaluate", "--air", "20", "--wind", "5")
	require.NoError(t, err)

	props, err := heat_transfer.LoadWaterProperties("data/water_properties")
	require.NoError(t, err)
	want, err := heat_transfer.Evaluate(props, heat_transfer.OperatingConditions{
		AirTemperature:   20,
		WaterTemperature: 30,
		WindSpeed:        5,
	}, heat_transfer.DefaultConfig())
	require.NoError(t, err)

	assert.Contains(t, out, "40 x 60")
	assert.Contains(t, out, fmt.Sprintf("%.4e\tkW", want.Power/1000))
	assert.Contains(t, out, fmt.Sprintf("%.2f\tper year", want.CostAnnually))
}

func TestEvaluateCmd_Config(t *testing.T) {
	out, err := execute("evaluate", "--config", "testdata/config.ini", "--air", "20")
	require.NoError(t, err)
	assert.Contains(t, out, "10 x 10")
	assert.Contains(t, out, "25.00\tdegree C")
}

func TestEvaluateCmd_Errors(t *testing.T) {
	_, err := execute("evaluate", "--air", "40")
	var domainErr *heat_transfer.DomainError
	assert.True(t, errors.As(err, &domainErr))

	_, err = execute("evaluate", "--water-properties", "testdata/no_such_dir")
	var loadErr *heat_transfer.DataLoadError
	assert.True(t, errors.As(err, &loadErr))

	_, err = execute("evaluate", "--side-a", "0")
	var geomErr *heat_transfer.InvalidGeometryError
	assert.True(t, errors.As(err, &geomErr))

	_, err = execute("evaluate", "--log", "chatty")
	assert.Error(t, err)
}

func TestSeasonalCmd(t *testing.T) {
	out, err := execute("seasonal")
	require.NoError(t, err)
	for _, season := range []string{"spring:", "summer:", "fall:", "winter:"} {
		assert.Contains(t, out, season)
	}

	_, err = execute("seasonal", "--weather", "testdata/no_such_weather.csv")
	assert.Error(t, err)
}

func TestSweepCmd(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "surface.csv")
	plotPath := filepath.Join(dir, "surface.png")

	out, err := execute("sweep", "--air-min", "5", "--air-max", "25", "--air-n", "5", "--wind-n", "3", "--csv", csvPath, "--plot", plotPath)
	require.NoError(t, err)
	assert.Contains(t, out, "5 x 3")
	assert.Contains(t, out, "Rejected:\t0")

	for _, path := range []string{csvPath, plotPath} {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}

	_, err = execute("sweep", "--air-n", "1")
	assert.Error(t, err)
}
