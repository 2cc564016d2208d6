package adapter

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/sajinavi2006/julomvp-sub044/internal/domain/model"
)

// Stub quote adapters for environments without the external insurance and
// delayed-disbursement vendors (local development, CI). Production wiring
// replaces these with the real HTTP clients.

// StubInsuranceQuoter returns a fixed premium rate for every account.
type StubInsuranceQuoter struct {
	PremiumRate decimal.Decimal
}

// NewStubInsuranceQuoter creates a quoter with the given rate. A zero rate
// quotes as ineligible.
func NewStubInsuranceQuoter(premiumRate decimal.Decimal) *StubInsuranceQuoter {
	return &StubInsuranceQuoter{PremiumRate: premiumRate}
}

// Quote implements port.InsuranceQuoter.
func (q *StubInsuranceQuoter) Quote(_ context.Context, _ string, _ decimal.Decimal) (model.InsuranceQuote, error) {
	return model.InsuranceQuote{
		Eligible:    q.PremiumRate.IsPositive(),
		PremiumRate: q.PremiumRate,
	}, nil
}

// StubDelayedDisbursementQuoter quotes a fixed premium amount.
type StubDelayedDisbursementQuoter struct {
	Premium decimal.Decimal
}

// NewStubDelayedDisbursementQuoter creates a quoter with the given premium.
// A zero premium quotes as ineligible.
func NewStubDelayedDisbursementQuoter(premium decimal.Decimal) *StubDelayedDisbursementQuoter {
	return &StubDelayedDisbursementQuoter{Premium: premium}
}

// Quote implements port.DelayedDisbursementQuoter.
func (q *StubDelayedDisbursementQuoter) Quote(_ context.Context, _ decimal.Decimal, _ int64) (model.DelayedDisbursementQuote, error) {
	return model.DelayedDisbursementQuote{
		Eligible: q.Premium.IsPositive(),
		Premium:  q.Premium,
	}, nil
}
