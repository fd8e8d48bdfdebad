package metrics_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/rpggio/sala/internal/domain/attendance"
	"github.com/rpggio/sala/internal/domain/metrics"
	"github.com/rpggio/sala/internal/domain/theme"
)

var now = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func rec(date, clock, themeID string) attendance.Record {
	return attendance.Record{StartDate: date, StartTime: clock, Theme: themeID}
}

func TestCompute_Empty(t *testing.T) {
	d := metrics.Compute(nil, theme.Defaults(), now)
	require.True(t, d.Empty)
	require.Zero(t, d.Total)
	require.Nil(t, d.TopCategory)
	require.Empty(t, d.Categories)
}

func TestCompute_DailyAverage(t *testing.T) {
	dates := []string{"01/03/2025", "01/03/2025", "01/03/2025", "02/03/2025", "02/03/2025", "02/03/2025", "03/03/2025", "03/03/2025", "04/03/2025", "04/03/2025"}
	var records []attendance.Record
	for _, d := range dates {
		records = append(records, rec(d, "09:00", "mei"))
	}

	d := metrics.Compute(records, theme.Defaults(), now)
	require.Equal(t, 10, d.Total)
	require.InDelta(t, 2.5, d.DailyAverage, 1e-9)
}

func TestCompute_DailyAverageRoundsToOneDecimal(t *testing.T) {
	records := []attendance.Record{
		rec("01/03/2025", "09:00", "mei"),
		rec("01/03/2025", "09:00", "mei"),
		rec("02/03/2025", "09:00", "mei"),
		rec("02/03/2025", "09:00", "mei"),
		rec("03/03/2025", "09:00", "mei"),
		rec("03/03/2025", "09:00", "mei"),
		rec("03/03/2025", "09:00", "mei"),
	}
	d := metrics.Compute(records, theme.Defaults(), now)
	require.InDelta(t, 2.3, d.DailyAverage, 1e-9)
}

func TestCompute_MonthlyKeepsLatestTwelveAscending(t *testing.T) {
	// 14 months: 01/2024 .. 02/2025
	var records []attendance.Record
	for i := range 14 {
		month := time.Date(2024, time.January+time.Month(i), 5, 0, 0, 0, 0, time.UTC)
		records = append(records, rec(month.Format(attendance.DateLayout), "10:00", "mei"))
	}

	d := metrics.Compute(records, theme.Defaults(), now)
	require.Len(t, d.Monthly, 12)

	var labels []string
	for _, m := range d.Monthly {
		labels = append(labels, m.Label)
	}
	want := []string{
		"03/2024", "04/2024", "05/2024", "06/2024", "07/2024", "08/2024",
		"09/2024", "10/2024", "11/2024", "12/2024", "01/2025", "02/2025",
	}
	if diff := cmp.Diff(want, labels); diff != "" {
		t.Fatalf("monthly labels mismatch (-want +got):\n%s", diff)
	}
}

func TestCompute_MalformedDateCountedButNotBucketed(t *testing.T) {
	records := []attendance.Record{
		rec("31-12-2024", "10:00", "mei"),
		rec("15/01/2025", "10:00", "mei"),
	}

	d := metrics.Compute(records, theme.Defaults(), now)
	require.Equal(t, 2, d.Total)

	want := []metrics.MonthBucket{{Label: "01/2025", Month: 1, Year: 2025, Count: 1}}
	if diff := cmp.Diff(want, d.Monthly); diff != "" {
		t.Fatalf("monthly mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]metrics.YearBucket{{Year: "2025", Count: 1}}, d.Yearly); diff != "" {
		t.Fatalf("yearly mismatch (-want +got):\n%s", diff)
	}
}

func TestCompute_YearlyNumericDescending(t *testing.T) {
	records := []attendance.Record{
		rec("01/01/999", "10:00", "mei"),
		rec("01/01/2023", "10:00", "mei"),
		rec("01/01/2025", "10:00", "mei"),
		rec("02/01/2025", "10:00", "mei"),
	}

	d := metrics.Compute(records, theme.Defaults(), now)
	want := []metrics.YearBucket{
		{Year: "2025", Count: 2},
		{Year: "2023", Count: 1},
		{Year: "999", Count: 1},
	}
	if diff := cmp.Diff(want, d.Yearly); diff != "" {
		t.Fatalf("yearly mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, 2, d.CurrentYear)
}

func TestCompute_CategoriesIncludeZeroCountThemes(t *testing.T) {
	themes := []theme.Theme{
		{ID: "mei", Label: "MEI"},
		{ID: "credito", Label: "Crédito"},
		{ID: "nf", Label: "Nota Fiscal"},
	}
	records := []attendance.Record{
		rec("01/03/2025", "10:00", "credito"),
		rec("01/03/2025", "10:00", "credito"),
		rec("01/03/2025", "10:00", "credito"),
		rec("01/03/2025", "10:00", "mei"),
		// dangling theme reference still counts toward the total
		rec("01/03/2025", "10:00", "removed"),
	}

	d := metrics.Compute(records, themes, now)
	want := []metrics.CategoryShare{
		{ID: "credito", Label: "Crédito", Count: 3, Percentage: 60},
		{ID: "mei", Label: "MEI", Count: 1, Percentage: 20},
		{ID: "nf", Label: "Nota Fiscal", Count: 0, Percentage: 0},
	}
	if diff := cmp.Diff(want, d.Categories); diff != "" {
		t.Fatalf("categories mismatch (-want +got):\n%s", diff)
	}
	require.NotNil(t, d.TopCategory)
	require.Equal(t, "credito", d.TopCategory.ID)
}

func TestCompute_HourlyRelativeToPeak(t *testing.T) {
	var records []attendance.Record
	add := func(n int, clock string) {
		for range n {
			records = append(records, rec("01/03/2025", clock, "mei"))
		}
	}
	add(3, "08:15")
	add(3, "09:40")
	add(6, "10:05")
	// outside business hours; counted in total only
	add(20, "20:00")

	d := metrics.Compute(records, theme.Defaults(), now)
	require.Len(t, d.Hourly, 11)
	require.Equal(t, "08", d.Hourly[0].Hour)
	require.Equal(t, "18", d.Hourly[10].Hour)

	got := map[string]float64{}
	for _, h := range d.Hourly {
		got[h.Hour] = h.Percentage
	}
	require.InDelta(t, 50.0, got["08"], 1e-9)
	require.InDelta(t, 50.0, got["09"], 1e-9)
	require.InDelta(t, 100.0, got["10"], 1e-9)
	require.InDelta(t, 0.0, got["11"], 1e-9)
}

func TestCompute_HourlyAllZeroOutsideBusinessHours(t *testing.T) {
	records := []attendance.Record{rec("01/03/2025", "07:59", "mei"), rec("01/03/2025", "", "mei")}

	d := metrics.Compute(records, theme.Defaults(), now)
	for _, h := range d.Hourly {
		require.Zero(t, h.Count, fmt.Sprintf("hour %s", h.Hour))
		require.Zero(t, h.Percentage)
	}
}
