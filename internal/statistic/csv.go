package statistic

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"bevlog/internal/models"
)

const (
	csvHeader       = "Beverage,Date,Time,Timestamp"
	csvHeaderLiters = "Beverage,Date,Time,Liters,Timestamp"
)

// WriteCSV renders the log collection as CSV: one row per log, beverage
// quoted with internal quotes doubled, date as the UTC calendar date,
// time as a 12-hour local string, timestamp as raw epoch milliseconds.
// The extended variant adds an estimated-liters column per row.
func WriteCSV(w io.Writer, logs []models.BeverageLog, withLiters bool) error {
	header := csvHeader
	if withLiters {
		header = csvHeaderLiters
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}

	for _, log := range logs {
		t := time.UnixMilli(log.Timestamp)
		beverage := `"` + strings.ReplaceAll(log.Beverage, `"`, `""`) + `"`
		dateStr := t.UTC().Format(dateLayout)
		timeStr := t.Format("03:04 PM")

		var err error
		if withLiters {
			liters := strconv.FormatFloat(VolumePerServing(log.Beverage), 'f', 2, 64)
			_, err = fmt.Fprintf(w, "%s,%s,%s,%s,%d\n", beverage, dateStr, timeStr, liters, log.Timestamp)
		} else {
			_, err = fmt.Fprintf(w, "%s,%s,%s,%d\n", beverage, dateStr, timeStr, log.Timestamp)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// ExportFileName names a CSV download after the current UTC date.
func ExportFileName(now time.Time) string {
	return "beverage_tracker_" + now.UTC().Format(dateLayout) + ".csv"
}
