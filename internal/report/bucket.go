package report

import (
	"errors"
	"fmt"
	"sort"

	"github.com/alexanderramin/contrib/internal/domain"
)

// ErrInvalidGranularity is returned when a bucket size other than month or
// year is requested.
var ErrInvalidGranularity = errors.New("invalid granularity")

// BucketKey derives the bucket key of a YYYY-MM-DD date.
func BucketKey(g domain.Granularity, date string) (string, error) {
	switch g {
	case domain.GranularityMonth:
		return domain.MonthKey(date), nil
	case domain.GranularityYear:
		return domain.YearKey(date), nil
	default:
		return "", invalidGranularity(g)
	}
}

func invalidGranularity(g domain.Granularity) error {
	return fmt.Errorf("%w: %q (expected %q or %q)", ErrInvalidGranularity, g, domain.GranularityMonth, domain.GranularityYear)
}

// Bucket partitions entries by month or year and runs aggregation and the
// contribution filter within each bucket. Buckets come back in the order
// their keys were first seen; use SortBuckets for chronological order.
func Bucket(entries []domain.TimeEntry, g domain.Granularity) ([]domain.TimeBucket, error) {
	if !g.Valid() {
		return nil, invalidGranularity(g)
	}

	var keys []string
	grouped := make(map[string][]domain.TimeEntry)
	for _, e := range entries {
		key, err := BucketKey(g, e.Date)
		if err != nil {
			return nil, err
		}
		if _, seen := grouped[key]; !seen {
			keys = append(keys, key)
		}
		grouped[key] = append(grouped[key], e)
	}

	buckets := make([]domain.TimeBucket, 0, len(keys))
	for _, key := range keys {
		buckets = append(buckets, domain.TimeBucket{
			TimeRange:      key,
			ProjectsOfTime: FilterContributions(Aggregate(grouped[key]).Values()),
		})
	}
	return buckets, nil
}

// SortBuckets orders buckets by key. For YYYY and YYYY-MM keys this is
// chronological.
func SortBuckets(buckets []domain.TimeBucket) {
	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].TimeRange < buckets[j].TimeRange
	})
}
