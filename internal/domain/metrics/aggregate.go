package metrics

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rpggio/sala/internal/domain/attendance"
	"github.com/rpggio/sala/internal/domain/theme"
)

const (
	// monthWindow is how many of the latest populated months are kept.
	monthWindow = 12
	firstHour   = 8
	lastHour    = 18
)

// Compute derives the dashboard from the full attendance and theme
// collections. It is pure: now only selects the year for CurrentYear.
func Compute(records []attendance.Record, themes []theme.Theme, now time.Time) Dashboard {
	total := len(records)
	if total == 0 {
		return Dashboard{
			Empty:      true,
			Monthly:    []MonthBucket{},
			Yearly:     []YearBucket{},
			Categories: []CategoryShare{},
			Hourly:     []HourBucket{},
		}
	}

	dates := make(map[string]struct{}, total)
	monthCounts := make(map[[2]int]int)
	yearCounts := make(map[int]int)
	themeCounts := make(map[string]int)
	hourCounts := make(map[string]int)

	for _, rec := range records {
		dates[rec.StartDate] = struct{}{}
		themeCounts[rec.Theme]++
		hourCounts[strings.Split(rec.StartTime, ":")[0]]++

		month, year, ok := parseMonthYear(rec.StartDate)
		if !ok {
			continue
		}
		monthCounts[[2]int{year, month}]++
		yearCounts[year]++
	}

	days := max(len(dates), 1)

	return Dashboard{
		Total:        total,
		DailyAverage: roundTenth(float64(total) / float64(days)),
		Monthly:      monthly(monthCounts),
		Yearly:       yearly(yearCounts),
		Categories:   categories(themes, themeCounts, total),
		Hourly:       hourly(hourCounts),
		CurrentYear:  yearCounts[now.Year()],
		TopCategory:  topCategory(themes, themeCounts, total),
	}
}

// parseMonthYear extracts month and year from a DD/MM/YYYY string. The day
// part is not inspected.
func parseMonthYear(date string) (int, int, bool) {
	parts := strings.Split(date, "/")
	if len(parts) != 3 {
		return 0, 0, false
	}
	month, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || month < 1 || month > 12 {
		return 0, 0, false
	}
	year, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return 0, 0, false
	}
	return month, year, true
}

func monthly(counts map[[2]int]int) []MonthBucket {
	out := make([]MonthBucket, 0, len(counts))
	for key, count := range counts {
		year, month := key[0], key[1]
		out = append(out, MonthBucket{
			Label: fmt.Sprintf("%02d/%d", month, year),
			Month: month,
			Year:  year,
			Count: count,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Month < out[j].Month
	})
	if len(out) > monthWindow {
		out = out[len(out)-monthWindow:]
	}
	return out
}

func yearly(counts map[int]int) []YearBucket {
	years := make([]int, 0, len(counts))
	for year := range counts {
		years = append(years, year)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))

	out := make([]YearBucket, 0, len(years))
	for _, year := range years {
		out = append(out, YearBucket{Year: strconv.Itoa(year), Count: counts[year]})
	}
	return out
}

func categories(themes []theme.Theme, counts map[string]int, total int) []CategoryShare {
	out := make([]CategoryShare, 0, len(themes))
	for _, t := range themes {
		count := counts[t.ID]
		out = append(out, CategoryShare{
			ID:         t.ID,
			Label:      t.Label,
			Count:      count,
			Percentage: float64(count) / float64(total) * 100,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

func topCategory(themes []theme.Theme, counts map[string]int, total int) *CategoryShare {
	cats := categories(themes, counts, total)
	if len(cats) == 0 {
		return nil
	}
	top := cats[0]
	return &top
}

func hourly(counts map[string]int) []HourBucket {
	out := make([]HourBucket, 0, lastHour-firstHour+1)
	peak := 0
	for h := firstHour; h <= lastHour; h++ {
		hour := fmt.Sprintf("%02d", h)
		count := counts[hour]
		peak = max(peak, count)
		out = append(out, HourBucket{Hour: hour, Count: count})
	}
	if peak == 0 {
		return out
	}
	for i := range out {
		out[i].Percentage = float64(out[i].Count) / float64(peak) * 100
	}
	return out
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
