package main

import (
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"reservoir_heat_loss/heat_transfer"
)

// app carries the state shared by the subcommands after start up.
type app struct {
	configFile string
	logLevel   string

	cfg Config
	ev  *heat_transfer.Evaluator
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "reservoir_heat_loss",
		Short: "Convective heat loss of open water reservoirs.",
		Long: `Estimates the power lost by heated open water reservoirs to the air
through natural and forced convection, and the annual cost of that power.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.startup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configFile, "config", "", "configuration file location (INI)")
	root.PersistentFlags().StringVar(&a.logLevel, "log", "error", "log level")
	addConfigFlags(root.PersistentFlags())

	root.AddCommand(
		newEvaluateCmd(a),
		newSeasonalCmd(a),
		newSweepCmd(a),
	)
	return root
}

/*
Prepares a run: log level, configuration and water property tables.

	Args:
	    cmd: the command being executed, its flags override the configuration file
*/
func (a *app) startup(cmd *cobra.Command) error {
	level, err := log.ParseLevel(a.logLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)

	cfg, err := loadConfig(a.configFile)
	if err != nil {
		return err
	}
	if err := applyFlags(cmd.Flags(), &cfg); err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"config":           a.configFile,
		"side_a":           cfg.Model.SideA,
		"side_b":           cfg.Model.SideB,
		"reservoirs":       cfg.Model.ReservoirCount,
		"cost_per_kwh":     cfg.Model.CostPerKWh,
		"water_properties": cfg.WaterPropertiesDir,
	}).Info("configuration loaded")

	props, err := heat_transfer.LoadWaterProperties(cfg.WaterPropertiesDir)
	if err != nil {
		return err
	}
	ev, err := heat_transfer.NewEvaluator(props, cfg.Model)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.ev = ev
	return nil
}

func main() {
	start := time.Now()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}

	log.Infof("elapsed_time: %v", time.Since(start))
}
