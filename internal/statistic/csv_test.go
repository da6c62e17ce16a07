package statistic

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bevlog/internal/models"
)

func TestWriteCSV_Header(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, WriteCSV(&buf, nil, false))
	assert.Equal(t, "Beverage,Date,Time,Timestamp\n", buf.String())
}

func TestWriteCSV_HeaderWithLiters(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, WriteCSV(&buf, nil, true))
	assert.Equal(t, "Beverage,Date,Time,Liters,Timestamp\n", buf.String())
}

func TestWriteCSV_Row(t *testing.T) {
	at := time.Date(2025, 6, 1, 14, 5, 0, 0, time.UTC)
	logs := []models.BeverageLog{logAt("Beer - Pint", at)}

	var buf strings.Builder
	require.NoError(t, WriteCSV(&buf, logs, false))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)

	// time column renders in local time, 12-hour clock
	expected := fmt.Sprintf(`"Beer - Pint",2025-06-01,%s,%d`,
		time.UnixMilli(at.UnixMilli()).Format("03:04 PM"), at.UnixMilli())
	assert.Equal(t, expected, lines[1])
}

func TestWriteCSV_QuotesAreDoubled(t *testing.T) {
	at := time.Date(2025, 6, 1, 14, 5, 0, 0, time.UTC)
	logs := []models.BeverageLog{logAt(`The "Black Stuff"`, at)}

	var buf strings.Builder
	require.NoError(t, WriteCSV(&buf, logs, false))
	assert.Contains(t, buf.String(), `"The ""Black Stuff"""`)
}

func TestWriteCSV_LitersColumn(t *testing.T) {
	at := time.Date(2025, 6, 1, 14, 5, 0, 0, time.UTC)
	logs := []models.BeverageLog{logAt("Beer", at)}

	var buf strings.Builder
	require.NoError(t, WriteCSV(&buf, logs, true))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	fields := strings.Split(lines[1], ",")
	require.Len(t, fields, 5)
	assert.Equal(t, "0.33", fields[3])
}

func TestWriteCSV_DateIsUTC(t *testing.T) {
	// 01:30 in UTC+3 is still the previous UTC day
	loc := time.FixedZone("UTC+3", 3*60*60)
	at := time.Date(2025, 6, 2, 1, 30, 0, 0, loc)
	logs := []models.BeverageLog{logAt("Wine", at)}

	var buf strings.Builder
	require.NoError(t, WriteCSV(&buf, logs, false))
	assert.Contains(t, buf.String(), ",2025-06-01,")
}

func TestExportFileName(t *testing.T) {
	now := time.Date(2025, 6, 1, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "beverage_tracker_2025-06-01.csv", ExportFileName(now))
}
