package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"reservoir_heat_loss/heat_transfer"
)

func newEvaluateCmd(a *app) *cobra.Command {
	var air, wind float64

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate the heat loss for one air temperature and wind speed.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cond := heat_transfer.OperatingConditions{
				AirTemperature:   air,
				WaterTemperature: a.cfg.WaterTemperature,
				WindSpeed:        wind,
			}
			d, res, err := a.ev.EvaluateDetailed(cond)
			if err != nil {
				return err
			}

			geom := a.ev.Geometry()
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Air temperature:\t%.2f\tdegree C\n", cond.AirTemperature)
			fmt.Fprintf(w, "Water temperature:\t%.2f\tdegree C\n", cond.WaterTemperature)
			fmt.Fprintf(w, "Wind speed:\t%.2f\tm/s\n", cond.WindSpeed)
			fmt.Fprintf(w, "Reservoir:\t%g x %g\tm (L = %.3f m)\n", geom.SideA, geom.SideB, geom.CharacteristicLength)
			fmt.Fprintf(w, "Pr:\t\t%.4g\n", d.Pr)
			fmt.Fprintf(w, "Ra_nc:\t\t%.4e\n", d.RaNC)
			fmt.Fprintf(w, "Nu_nc:\t\t%.4e\n", d.NuNC)
			fmt.Fprintf(w, "h_nc:\t\t%.4f\tW/m2 K\n", d.HNC)
			fmt.Fprintf(w, "Re_fc:\t\t%.4e\n", d.ReFC)
			fmt.Fprintf(w, "Nu_fc:\t\t%.4e\n", d.NuFC)
			fmt.Fprintf(w, "h_fc:\t\t%.4f\tW/m2 K\n", d.HFC)
			fmt.Fprintf(w, "h:\t\t%.4f\tW/m2 K\n", d.H)
			fmt.Fprintf(w, "Power:\t\t%.4e\tkW\n", res.Power/1000)
			fmt.Fprintf(w, "Cost:\t\t%.2f\tper year\n", res.CostAnnually)
			return nil
		},
	}
	cmd.Flags().Float64Var(&air, "air", 20, "air temperature, degree C")
	cmd.Flags().Float64Var(&wind, "wind", 0, "wind speed, m/s")
	return cmd
}
