package importer

import (
	"fmt"

	"github.com/alexanderramin/contrib/internal/domain"
)

// ValidatePayload reports every structural problem in a payload. Problems are
// informational: normalization skips the affected records instead of failing.
func ValidatePayload(p *Payload) []error {
	var errs []error
	for i, e := range p.Entries {
		errs = append(errs, validateEntry(i, e)...)
	}
	return errs
}

func validateEntry(i int, e RawTimeEntry) []error {
	var errs []error

	date := domain.CoalesceStr(e.DateOfWork, e.Date)
	if date == "" {
		errs = append(errs, fmt.Errorf("entries[%d].dateOfWork is required", i))
	} else if _, ok := domain.ParseWorkDate(date); !ok {
		errs = append(errs, fmt.Errorf("entries[%d].dateOfWork: invalid date format %q (expected YYYY-MM-DD)", i, date))
	}

	if e.Hours == nil && e.Minutes == nil {
		errs = append(errs, fmt.Errorf("entries[%d]: hours or minutes is required", i))
	}
	if e.Hours != nil && domain.ParseNumber(e.Hours).Fallback {
		errs = append(errs, fmt.Errorf("entries[%d].hours: not a number: %v", i, e.Hours))
	}
	if e.Minutes != nil && domain.ParseNumber(e.Minutes).Fallback {
		errs = append(errs, fmt.Errorf("entries[%d].minutes: not a number: %v", i, e.Minutes))
	}

	return errs
}
