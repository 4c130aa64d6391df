package weather

import (
	"gonum.org/v1/gonum/stat"
)

// season of the year
type Season int

// season of the year
const (
	Spring Season = iota
	Summer
	Fall
	Winter
)

// Seasons lists the seasons in reporting order.
var Seasons = []Season{Spring, Summer, Fall, Winter}

func (s Season) String() string {
	return [...]string{"spring", "summer", "fall", "winter"}[s]
}

func SeasonFromString(s string) (Season, bool) {
	season, ok := map[string]Season{
		"spring": Spring,
		"summer": Summer,
		"fall":   Fall,
		"winter": Winter,
	}[s]
	return season, ok
}

// positions in the daily series where spring, summer, fall and winter start
var seasonBoundaries = [4]int{62, 123, 241, 336}

// SeasonalAverage is the mean weather of one season.
type SeasonalAverage struct {
	Season      Season
	Days        int
	Temperature float64 // degree C
	WindSpeed   float64 // m/s
}

/*
Splits the daily series into seasons.

	Args:
	    days: daily averages sorted by Index

	Returns:
	    the days of each season. Positions in the series, not day indices, are
	    compared against the boundaries; winter wraps around the year end.
	    Boundaries beyond the end of the series are clamped.
*/
func SplitSeasons(days []Day) map[Season][]Day {
	clamp := func(i int) int {
		if i > len(days) {
			return len(days)
		}
		return i
	}
	b0, b1, b2, b3 := clamp(seasonBoundaries[0]), clamp(seasonBoundaries[1]), clamp(seasonBoundaries[2]), clamp(seasonBoundaries[3])

	winter := make([]Day, 0, b0+len(days)-b3)
	winter = append(winter, days[:b0]...)
	winter = append(winter, days[b3:]...)

	return map[Season][]Day{
		Spring: days[b0:b1],
		Summer: days[b1:b2],
		Fall:   days[b2:b3],
		Winter: winter,
	}
}

// SeasonalAverages returns the mean temperature and wind speed of every
// season, in the order of Seasons. A season without days has Days == 0.
func SeasonalAverages(days []Day) []SeasonalAverage {
	split := SplitSeasons(days)

	averages := make([]SeasonalAverage, 0, len(Seasons))
	for _, s := range Seasons {
		d := split[s]
		avg := SeasonalAverage{Season: s, Days: len(d)}
		if len(d) > 0 {
			temperatures := make([]float64, len(d))
			windSpeeds := make([]float64, len(d))
			for i, day := range d {
				temperatures[i] = day.Temperature
				windSpeeds[i] = day.WindSpeed
			}
			avg.Temperature = stat.Mean(temperatures, nil)
			avg.WindSpeed = stat.Mean(windSpeeds, nil)
		}
		averages = append(averages, avg)
	}
	return averages
}
