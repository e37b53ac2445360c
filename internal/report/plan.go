package report

import "time"

// bucketMonth is the span that counts as "one month" when deciding which
// trend charts to show.
const bucketMonth = 31 * 24 * time.Hour

// BucketPlan says which bucketed series a date range warrants.
type BucketPlan struct {
	Bucketed    bool `json:"bucketed" yaml:"bucketed"`
	ShowMonthly bool `json:"showMonthly" yaml:"showMonthly"`
	ShowYearly  bool `json:"showYearly" yaml:"showYearly"`
}

// PlanBuckets applies the display policy: buckets only for spans longer than
// a month, monthly bars only up to twelve months, yearly bars only when the
// range crosses a calendar year.
func PlanBuckets(start, end time.Time) BucketPlan {
	span := end.Sub(start)
	if span <= bucketMonth {
		return BucketPlan{}
	}
	return BucketPlan{
		Bucketed:    true,
		ShowMonthly: span <= 12*bucketMonth,
		ShowYearly:  start.Year() != end.Year(),
	}
}
