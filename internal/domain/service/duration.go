package service

import (
	"github.com/shopspring/decimal"

	"github.com/sajinavi2006/julomvp-sub044/internal/domain/model"
)

// EnumerateDurations produces the ascending list of candidate whole-month
// durations between the resolved tenure bounds.
//
// Requests at or below the micro-loan threshold collapse to a single short
// tenure regardless of the matrix bounds; pricing a stub loan across many
// tenures is not worth the schedule complexity.
func EnumerateDurations(
	requested decimal.Decimal,
	minTenure, maxTenure int,
	cfg model.PricingConfig,
) []int {
	if requested.LessThanOrEqual(cfg.MicroLoanThreshold) {
		return []int{cfg.MicroLoanTenure}
	}

	if minTenure < 1 {
		minTenure = 1
	}
	if maxTenure < minTenure {
		return nil
	}

	durations := make([]int, 0, maxTenure-minTenure+1)
	for d := minTenure; d <= maxTenure; d++ {
		durations = append(durations, d)
	}
	return durations
}
