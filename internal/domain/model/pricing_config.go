package model

import (
	"errors"

	"github.com/shopspring/decimal"
)

// PricingConfig carries every threshold the calculation engine consults.
// It is assembled by the caller and passed in per request, so the engine
// stays a pure function of its inputs.
type PricingConfig struct {
	// MaxFeeRate caps the effective total fee rate of one loan: interest
	// accrued over the tenure plus provision, insurance, and delayed
	// disbursement rates.
	MaxFeeRate decimal.Decimal

	// MicroLoanThreshold collapses tiny requests to a single short tenure.
	MicroLoanThreshold decimal.Decimal
	MicroLoanTenure    int

	// MaxDuration bounds the forward-walk search past the matrix max tenure.
	MaxDuration int

	// MaxFallbackOffers caps how many offers the forward walk may collect.
	MaxFallbackOffers int

	// DefaultDurationIndex suggests which offer a UI should pre-select.
	DefaultDurationIndex int

	TaxRate         decimal.Decimal
	DigisignFee     decimal.Decimal
	RegistrationFee decimal.Decimal

	ZeroInterest ZeroInterestCampaign
}

// DefaultPricingConfig returns the production defaults.
func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		MaxFeeRate:           decimal.RequireFromString("0.5"),
		MicroLoanThreshold:   decimal.NewFromInt(100_000),
		MicroLoanTenure:      1,
		MaxDuration:          12,
		MaxFallbackOffers:    4,
		DefaultDurationIndex: 0,
		TaxRate:              decimal.RequireFromString("0.11"),
	}
}

// Validate checks the thresholds the engine divides or iterates by.
func (c PricingConfig) Validate() error {
	if c.MaxFeeRate.LessThanOrEqual(decimal.Zero) {
		return errors.New("max fee rate must be positive")
	}
	if c.MicroLoanTenure <= 0 {
		return errors.New("micro loan tenure must be positive")
	}
	if c.MaxDuration <= 0 {
		return errors.New("max duration must be positive")
	}
	if c.MaxFallbackOffers <= 0 {
		return errors.New("max fallback offers must be positive")
	}
	if c.TaxRate.IsNegative() {
		return errors.New("tax rate must not be negative")
	}
	return nil
}
