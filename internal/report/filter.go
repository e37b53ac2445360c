package report

import (
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/alexanderramin/contrib/internal/domain"
)

// ContributionThresholdHours is the minimum combined time, in decimal hours,
// a project needs within a window to appear in a report.
const ContributionThresholdHours = 1.0

// FilterContributions keeps projects with at least ContributionThresholdHours
// of total time and renders their totals to two decimals. Order is preserved.
func FilterContributions(aggs []domain.ProjectAggregate) []domain.ProjectSummary {
	out := make([]domain.ProjectSummary, 0, len(aggs))
	for _, a := range aggs {
		total := a.TotalDecimal()
		if total < ContributionThresholdHours {
			continue
		}
		out = append(out, domain.ProjectSummary{
			ProjectID:    a.ProjectID,
			ProjectName:  a.ProjectName,
			TotalTime:    formatHours(total),
			TangibleTime: formatHours(a.TangibleDecimal()),
		})
	}
	return out
}

var (
	hundred = big.NewFloat(100)
	half    = big.NewFloat(0.5)
)

// formatHours renders h with two decimals. Values lying exactly halfway
// between two cents round away from zero; everything else rounds to nearest.
func formatHours(h float64) string {
	if h < 0 || math.IsInf(h, 0) || math.IsNaN(h) {
		return strconv.FormatFloat(h, 'f', 2, 64)
	}
	// 53 mantissa bits times 100 fits in 128 bits, so the product is exact.
	scaled := new(big.Float).SetPrec(128).SetFloat64(h)
	scaled.Mul(scaled, hundred)
	cents, _ := scaled.Int(nil)
	frac := new(big.Float).SetPrec(128).Sub(scaled, new(big.Float).SetInt(cents))
	if frac.Cmp(half) != 0 {
		return strconv.FormatFloat(h, 'f', 2, 64)
	}
	cents.Add(cents, big.NewInt(1))
	whole, rem := new(big.Int).QuoRem(cents, big.NewInt(100), new(big.Int))
	return fmt.Sprintf("%s.%02d", whole, rem.Int64())
}
