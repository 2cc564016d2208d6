package service

import (
	"github.com/shopspring/decimal"
)

// rate arithmetic keeps 8 fractional digits; adjusted rates round toward
// zero so the re-derived composition can never creep back over the cap.
const ratePrecision = 8

var thirty = decimal.NewFromInt(30)

// ---------------------------------------------------------------------------
// FeeCapAdjuster – regulatory total fee cap enforcement
// ---------------------------------------------------------------------------

// CapCheckInput carries the nominal rates of one composed duration.
type CapCheckInput struct {
	Duration              int
	FirstPaymentDeltaDays int

	MonthlyInterestRate     decimal.Decimal
	ProvisionRate           decimal.Decimal
	InsuranceRate           decimal.Decimal
	DelayedDisbursementRate decimal.Decimal

	// MaxFeeRate is the total fee ceiling for this duration. A repeat-card
	// tenor threshold may override the global ceiling.
	MaxFeeRate decimal.Decimal

	// MinPricing floors the monthly interest rate (repeat matrix policy).
	// Zero means no floor.
	MinPricing decimal.Decimal
}

// CapCheckResult reports whether the cap was breached and the rates the
// composition must be re-derived with. AdjustedMonthlyRate and
// AdjustedProvisionRate always hold the effective values, adjusted or not.
type CapCheckResult struct {
	Exceeded              bool
	EffectiveFeeRate      decimal.Decimal
	AdjustedMonthlyRate   decimal.Decimal
	AdjustedProvisionRate decimal.Decimal
}

// RatesChanged reports whether the composition must be re-run.
func (r CapCheckResult) RatesChanged(in CapCheckInput) bool {
	return !r.AdjustedMonthlyRate.Equal(in.MonthlyInterestRate) ||
		!r.AdjustedProvisionRate.Equal(in.ProvisionRate)
}

// FeeCapAdjuster checks a composed duration against the total fee ceiling
// and, when breached, re-derives a compliant interest rate algebraically.
// The adjustment converges in a single pass: the residual interest budget
// is what remains of the cap after the fixed fee rates are subtracted, so
// no fixed-point iteration is needed. The check is re-entrant and may run
// once per candidate duration.
type FeeCapAdjuster struct{}

// NewFeeCapAdjuster returns a new adjuster instance.
func NewFeeCapAdjuster() *FeeCapAdjuster {
	return &FeeCapAdjuster{}
}

// Check computes the effective total fee rate for the duration and adjusts
// the interest (and, in the extreme, provision) rate when it exceeds the
// ceiling.
//
// Interest accrues over durationFactor months, where the stub first period
// counts as deltaDays/30 of a month rather than a full one:
//
//	durationFactor = (duration - 1) + deltaDays/30
//	effective      = rate*durationFactor + provision + insurance + dd
//
// On breach, the residual interest budget (cap minus the fee rates) is
// converted back to a monthly rate through the same durationFactor. When
// even a zero interest rate cannot satisfy the cap, the provision rate
// absorbs the remainder.
func (a *FeeCapAdjuster) Check(in CapCheckInput) CapCheckResult {
	factor := durationFactor(in.Duration, in.FirstPaymentDeltaDays)

	rate := in.MonthlyInterestRate
	if in.MinPricing.IsPositive() && rate.LessThan(in.MinPricing) {
		rate = in.MinPricing
	}

	fixedFees := in.ProvisionRate.Add(in.InsuranceRate).Add(in.DelayedDisbursementRate)
	effective := rate.Mul(factor).Add(fixedFees)

	if effective.LessThanOrEqual(in.MaxFeeRate) {
		return CapCheckResult{
			EffectiveFeeRate:      effective,
			AdjustedMonthlyRate:   rate,
			AdjustedProvisionRate: in.ProvisionRate,
		}
	}

	budget := in.MaxFeeRate.Sub(fixedFees)

	adjustedRate := decimal.Zero
	adjustedProvision := in.ProvisionRate
	if budget.IsPositive() {
		adjustedRate = budget.Div(factor).RoundDown(ratePrecision)
	} else {
		// Fixed fees alone exceed the cap: interest drops to zero and the
		// provision rate shrinks to whatever the cap leaves room for.
		adjustedProvision = in.MaxFeeRate.Sub(in.InsuranceRate).Sub(in.DelayedDisbursementRate)
		if adjustedProvision.IsNegative() {
			adjustedProvision = decimal.Zero
		}
	}

	return CapCheckResult{
		Exceeded:              true,
		EffectiveFeeRate:      effective,
		AdjustedMonthlyRate:   adjustedRate,
		AdjustedProvisionRate: adjustedProvision,
	}
}

// durationFactor converts a duration with a stub first period into the
// number of months interest accrues over.
func durationFactor(duration, deltaDays int) decimal.Decimal {
	if duration < 1 {
		duration = 1
	}
	if deltaDays < 1 {
		deltaDays = 1
	}
	fullMonths := decimal.NewFromInt(int64(duration - 1))
	stub := decimal.NewFromInt(int64(deltaDays)).Div(thirty)
	return fullMonths.Add(stub)
}
