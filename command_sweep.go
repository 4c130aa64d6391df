package main

import (
	"fmt"
	"os"
	"os/signal"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"reservoir_heat_loss/sweep"
)

func newSweepCmd(a *app) *cobra.Command {
	var (
		airMin, airMax   float64
		windMin, windMax float64
		nAir, nWind      int
		workers          int
		csvPath          string
		plotPath         string
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Evaluate the annual cost over a grid of air temperatures and wind speeds.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := sweep.NewGrid(airMin, airMax, nAir, windMin, windMax, nWind, a.cfg.WaterTemperature)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			s, err := sweep.Run(ctx, a.ev, grid, workers)
			if err != nil {
				return err
			}

			if csvPath != "" {
				if err := writeSurfaceCSV(csvPath, s); err != nil {
					return err
				}
				log.WithField("path", csvPath).Info("saved sweep table")
			}
			if plotPath != "" {
				if err := sweep.SaveHeatMap(s, plotPath); err != nil {
					return err
				}
				log.WithField("path", plotPath).Info("saved heat map")
			}

			c, r := s.Dims()
			fmt.Fprintf(cmd.OutOrStdout(), "Grid points:\t%d x %d\n", c, r)
			fmt.Fprintf(cmd.OutOrStdout(), "Rejected:\t%d\n", s.Failed())
			fmt.Fprintf(cmd.OutOrStdout(), "Cost range:\t%.2f - %.2f\tper year\n", s.Min(), s.Max())
			return nil
		},
	}
	cmd.Flags().Float64Var(&airMin, "air-min", -20, "lowest air temperature, degree C")
	cmd.Flags().Float64Var(&airMax, "air-max", 30, "highest air temperature, degree C")
	cmd.Flags().IntVar(&nAir, "air-n", 100, "number of air temperatures")
	cmd.Flags().Float64Var(&windMin, "wind-min", 0, "lowest wind speed, m/s")
	cmd.Flags().Float64Var(&windMax, "wind-max", 10, "highest wind speed, m/s")
	cmd.Flags().IntVar(&nWind, "wind-n", 100, "number of wind speeds")
	cmd.Flags().IntVar(&workers, "workers", 0, "number of worker goroutines, all CPUs when 0")
	cmd.Flags().StringVar(&csvPath, "csv", "", "write every grid point to this CSV file")
	cmd.Flags().StringVar(&plotPath, "plot", "", "save a heat map of the annual cost to this image")
	return cmd
}

func writeSurfaceCSV(path string, s *sweep.Surface) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := sweep.WriteCSV(f, s); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
