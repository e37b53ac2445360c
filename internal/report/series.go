package report

import (
	"time"

	"github.com/alexanderramin/contrib/internal/domain"
)

const monthsPerYear = 12

// BuildBarSeries turns buckets into chart bars whose value is the number of
// contributing projects. For yearly series every bar covers 12 months, except
// that with more than one bar the first and last are trimmed to the part of
// the year inside [start, end]. A single yearly bar keeps 12.
func BuildBarSeries(buckets []domain.TimeBucket, isYear bool, start, end time.Time) []domain.BarDatum {
	data := make([]domain.BarDatum, 0, len(buckets))
	for _, b := range buckets {
		d := domain.BarDatum{Label: b.TimeRange, Value: len(b.ProjectsOfTime)}
		if isYear {
			d.Months = intPtr(monthsPerYear)
		}
		data = append(data, d)
	}

	if isYear && len(data) > 1 {
		startMonth := int(start.Month()) - 1
		endMonth := int(end.Month()) - 1
		data[0].Months = intPtr(monthsPerYear - startMonth)
		data[len(data)-1].Months = intPtr(endMonth + 1)
	}
	return data
}

func intPtr(n int) *int {
	return &n
}
