// Package weather turns a weather time series into the per-season mean air
// temperature and wind speed consumed by the heat loss model.
package weather

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/tealeg/xlsx"
	"gonum.org/v1/gonum/stat"
)

// column names of the weather files
const (
	columnDate        = "Date"
	columnTemperature = "T"
	columnWindSpeed   = "Ff"
)

// accepted layouts of the Date column, the first one is the station export format
var dateLayouts = []string{
	"02.01.2006 15:04",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// Record is one observation.
type Record struct {
	Time        time.Time
	Temperature float64 // air temperature, degree C
	WindSpeed   float64 // wind speed, m/s
}

// Day is the average of the observations of one day.
type Day struct {
	Index       int // whole days since the earliest observation
	Samples     int
	Temperature float64 // degree C
	WindSpeed   float64 // m/s
}

type weatherDataRow struct {
	Date        string `csv:"Date"`
	Temperature string `csv:"T"`
	WindSpeed   string `csv:"Ff"`
}

/*
Loads a weather time series.

	Args:
	    path: .xlsx (first sheet) or .csv file with the columns Date, T and Ff

	Returns:
	    the observations in file order. Rows with a blank temperature or wind
	    speed are skipped.
*/
func Load(path string) ([]Record, error) {
	var (
		rows []weatherDataRow
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		rows, err = readXLSX(path)
	case ".csv":
		rows, err = readCSV(path)
	default:
		return nil, fmt.Errorf("weather: unsupported file type `%s`", path)
	}
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(rows))
	skipped := 0
	for i, row := range rows {
		if strings.TrimSpace(row.Temperature) == "" || strings.TrimSpace(row.WindSpeed) == "" {
			skipped++
			continue
		}
		r, err := row.record()
		if err != nil {
			// header is line 1
			return nil, fmt.Errorf("weather: `%s` line %d: %w", path, i+2, err)
		}
		records = append(records, r)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("weather: `%s` holds no observations", path)
	}

	log.WithFields(log.Fields{
		"path":    path,
		"records": len(records),
		"skipped": skipped,
	}).Info("loaded weather data")
	return records, nil
}

func readCSV(path string) ([]weatherDataRow, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("weather: %w", err)
	}
	defer file.Close()

	var rows []weatherDataRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("weather: reading `%s`: %w", path, err)
	}
	return rows, nil
}

func readXLSX(path string) ([]weatherDataRow, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("weather: opening xlsx file: %w", err)
	}
	if len(f.Sheets) == 0 || len(f.Sheets[0].Rows) == 0 {
		return nil, fmt.Errorf("weather: `%s` has no data", path)
	}
	sheet := f.Sheets[0]

	columns := map[string]int{}
	for i, cell := range sheet.Rows[0].Cells {
		columns[strings.TrimSpace(cell.Value)] = i
	}
	for _, name := range []string{columnDate, columnTemperature, columnWindSpeed} {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("weather: `%s` has no %q column", path, name)
		}
	}

	value := func(row *xlsx.Row, name string) string {
		i := columns[name]
		if row == nil || i >= len(row.Cells) || row.Cells[i] == nil {
			return ""
		}
		return strings.TrimSpace(row.Cells[i].Value)
	}

	rows := make([]weatherDataRow, 0, len(sheet.Rows)-1)
	for _, row := range sheet.Rows[1:] {
		date := value(row, columnDate)
		if date == "" {
			continue
		}
		// dates stored as Excel serial numbers
		if serial, err := cast.ToFloat64E(date); err == nil {
			date = xlsx.TimeFromExcelTime(serial, f.Date1904).Format(dateLayouts[0])
		}
		rows = append(rows, weatherDataRow{
			Date:        date,
			Temperature: value(row, columnTemperature),
			WindSpeed:   value(row, columnWindSpeed),
		})
	}
	return rows, nil
}

func (row weatherDataRow) record() (Record, error) {
	t, err := parseDate(row.Date)
	if err != nil {
		return Record{}, err
	}
	temperature, err := cast.ToFloat64E(strings.TrimSpace(row.Temperature))
	if err != nil {
		return Record{}, fmt.Errorf("column %s: %v", columnTemperature, err)
	}
	windSpeed, err := cast.ToFloat64E(strings.TrimSpace(row.WindSpeed))
	if err != nil {
		return Record{}, fmt.Errorf("column %s: %v", columnWindSpeed, err)
	}
	return Record{Time: t, Temperature: temperature, WindSpeed: windSpeed}, nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("column %s: cannot parse %q", columnDate, s)
}

/*
Averages the observations of each day.

	Args:
	    records: observations in any order

	Returns:
	    one entry per observed day sorted by Index, where Index counts whole
	    days since the earliest observation
*/
func DailyAverages(records []Record) ([]Day, error) {
	if len(records) == 0 {
		return nil, errors.New("weather: no observations")
	}

	earliest := records[0].Time
	for _, r := range records[1:] {
		if r.Time.Before(earliest) {
			earliest = r.Time
		}
	}

	temperatures := map[int][]float64{}
	windSpeeds := map[int][]float64{}
	for _, r := range records {
		idx := int(math.Floor(r.Time.Sub(earliest).Hours() / 24))
		temperatures[idx] = append(temperatures[idx], r.Temperature)
		windSpeeds[idx] = append(windSpeeds[idx], r.WindSpeed)
	}

	days := make([]Day, 0, len(temperatures))
	for idx, ts := range temperatures {
		days = append(days, Day{
			Index:       idx,
			Samples:     len(ts),
			Temperature: stat.Mean(ts, nil),
			WindSpeed:   stat.Mean(windSpeeds[idx], nil),
		})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Index < days[j].Index })
	return days, nil
}
