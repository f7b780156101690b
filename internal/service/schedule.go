package service

import (
	"fmt"
	"strings"
	"time"
)

// Sundays returns every Sunday of the year as YYYY-MM-DD. Dates are formatted
// from local calendar fields; converting through UTC can shift a Sunday into
// Saturday for zones east of Greenwich.
func Sundays(year int) []string {
	var sundays []string
	d := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
	for d.Weekday() != time.Sunday {
		d = d.AddDate(0, 0, 1)
	}
	for d.Year() == year {
		sundays = append(sundays, fmt.Sprintf("%04d-%02d-%02d", d.Year(), int(d.Month()), d.Day()))
		d = d.AddDate(0, 0, 7)
	}
	return sundays
}

// ClosestSunday picks the entry nearest to now, with now's month and day
// projected onto the sequence's year. Ties go to the first minimum in scan
// order.
func ClosestSunday(now time.Time, sundays []string) string {
	if len(sundays) == 0 {
		return ""
	}
	year, _ := yearOf(sundays[0])
	target := time.Date(year, now.Month(), now.Day(), 0, 0, 0, 0, time.Local)

	closest := sundays[0]
	minDiff := time.Duration(1<<63 - 1)
	for _, s := range sundays {
		d, err := time.ParseInLocation("2006-01-02", s, time.Local)
		if err != nil {
			continue
		}
		diff := d.Sub(target)
		if diff < 0 {
			diff = -diff
		}
		if diff < minDiff {
			minDiff = diff
			closest = s
		}
	}
	return closest
}

// MonthDates filters the sequence down to one YYYY-MM month.
func MonthDates(sundays []string, month string) []string {
	var dates []string
	for _, s := range sundays {
		if strings.HasPrefix(s, month+"-") {
			dates = append(dates, s)
		}
	}
	return dates
}

func yearOf(date string) (int, error) {
	t, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return 0, err
	}
	return t.Year(), nil
}
