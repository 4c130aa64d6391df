package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"reservoir_heat_loss/weather"
)

func newSeasonalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seasonal",
		Short: "Report the heat loss for the mean weather of every season.",
		Long: `Averages the weather file per day, splits the days into seasons and
evaluates the heat loss for the mean air temperature and wind speed of
each season. Seasons the model rejects are reported and skipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := weather.Load(a.cfg.WeatherFile)
			if err != nil {
				return err
			}
			days, err := weather.DailyAverages(records)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, s := range weather.SeasonalAverages(days) {
				if s.Days == 0 {
					log.WithField("season", s.Season.String()).Warn("no observations")
					continue
				}
				fmt.Fprintf(w, "%s:\t\t%d\t\tdays\n", s.Season, s.Days)
				fmt.Fprintf(w, "Temperature:\t%.2f\t\tdegree C\n", s.Temperature)
				fmt.Fprintf(w, "Wind speed:\t%.2f\t\tm/s\n", s.WindSpeed)

				res, err := a.ev.Evaluate(s.Temperature, a.cfg.WaterTemperature, s.WindSpeed)
				if err != nil {
					log.WithField("season", s.Season.String()).WithError(err).Warn("season skipped")
					fmt.Fprintf(w, "Power:\t\tn/a\t\t%v\n\n", err)
					continue
				}
				fmt.Fprintf(w, "Power:\t\t%.2e\tkW\n", res.Power/1000)
				fmt.Fprintf(w, "Cost:\t\t%.2f\t\tper year\n\n", res.CostAnnually)
			}
			return nil
		},
	}
}
