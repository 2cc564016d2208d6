package model

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sajinavi2006/julomvp-sub044/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// QuoteRequest – ephemeral, request-scoped calculation input
// ---------------------------------------------------------------------------

// QuoteRequest describes one loan offer calculation. It lives only for the
// duration of a single request and is never persisted.
type QuoteRequest struct {
	TenantID         string
	AccountID        string
	TransactionKind  valueobject.TransactionKind
	RequestedAmount  decimal.Decimal
	DisbursementDate time.Time
	FirstPaymentDate time.Time
	WantZeroInterest bool
	WantInsurance    bool
	ShowSavingAmount bool
}

// Validate checks the request fields the engine depends on.
func (q QuoteRequest) Validate() error {
	if q.AccountID == "" {
		return errors.New("account ID is required")
	}
	if q.TransactionKind.IsZero() {
		return errors.New("transaction kind is required")
	}
	if q.RequestedAmount.LessThanOrEqual(decimal.Zero) {
		return errors.New("requested amount must be positive")
	}
	if q.FirstPaymentDate.Before(q.DisbursementDate) {
		return errors.New("first payment date must not precede disbursement date")
	}
	return nil
}

// FirstPaymentDeltaDays returns the day count of the stub first period, the
// gap between disbursement and the first due date. Clamped to at least one
// day so prorated interest never degenerates to zero on same-day setups.
func (q QuoteRequest) FirstPaymentDeltaDays() int {
	days := int(q.FirstPaymentDate.Sub(q.DisbursementDate).Hours() / 24)
	if days < 1 {
		return 1
	}
	return days
}

// ---------------------------------------------------------------------------
// External read-only inputs
// ---------------------------------------------------------------------------

// AccountLimitSnapshot is the account's credit limit at calculation time.
type AccountLimitSnapshot struct {
	AvailableLimit decimal.Decimal
	SetLimit       decimal.Decimal
}

// Validate enforces the snapshot invariant.
func (s AccountLimitSnapshot) Validate() error {
	if s.AvailableLimit.IsNegative() {
		return errors.New("available limit must not be negative")
	}
	return nil
}

// DBRSetting is the externally supplied debt-burden-ratio ceiling.
type DBRSetting struct {
	Enabled            bool
	MaxRatio           decimal.Decimal
	MonthlyIncome      decimal.Decimal
	MonthlyObligations decimal.Decimal
}

// InsuranceQuote is the device-protection premium quote fetched once per
// request and applied per duration as a rate on the gross loan amount.
type InsuranceQuote struct {
	Eligible    bool
	PremiumRate decimal.Decimal
}

// DelayedDisbursementQuote is the delayed-disbursement cover premium,
// quoted externally as a fixed amount for the request.
type DelayedDisbursementQuote struct {
	Eligible bool
	Premium  decimal.Decimal
}

// ZeroInterestCampaign describes the promotional zero-interest override.
type ZeroInterestCampaign struct {
	Enabled               bool
	MaxAmount             decimal.Decimal
	MaxTenure             int
	ProvisionRateOverride decimal.Decimal
}

// AppliesTo reports whether the campaign covers the requested amount and
// duration. A zero MaxAmount or MaxTenure means unbounded.
func (z ZeroInterestCampaign) AppliesTo(requested decimal.Decimal, duration int) bool {
	if !z.Enabled {
		return false
	}
	if !z.MaxAmount.IsZero() && requested.GreaterThan(z.MaxAmount) {
		return false
	}
	if z.MaxTenure > 0 && duration > z.MaxTenure {
		return false
	}
	return true
}
