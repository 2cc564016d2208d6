package model

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Rate cards (credit matrix rows)
// ---------------------------------------------------------------------------

// RateCard is one immutable row of the versioned credit matrix: the pricing
// terms that apply to a product line for a given transaction method.
type RateCard struct {
	ProductLineID       int64
	MonthlyInterestRate decimal.Decimal
	ProvisionRate       decimal.Decimal
	CashbackRate        decimal.Decimal
	MinTenure           int
	MaxTenure           int
}

// Validate checks the card's internal consistency.
func (c RateCard) Validate() error {
	if c.MinTenure <= 0 {
		return errors.New("min tenure must be positive")
	}
	if c.MaxTenure < c.MinTenure {
		return fmt.Errorf("max tenure %d below min tenure %d", c.MaxTenure, c.MinTenure)
	}
	one := decimal.NewFromInt(1)
	if c.MonthlyInterestRate.IsNegative() || c.MonthlyInterestRate.GreaterThanOrEqual(one) {
		return errors.New("monthly interest rate must be in [0, 1)")
	}
	if c.ProvisionRate.IsNegative() || c.ProvisionRate.GreaterThanOrEqual(one) {
		return errors.New("provision rate must be in [0, 1)")
	}
	if c.CashbackRate.IsNegative() {
		return errors.New("cashback rate must not be negative")
	}
	return nil
}

// TenorPricing carries per-tenor pricing bounds from the repeat matrix:
// MinPricing floors the monthly interest rate and Threshold, when positive,
// overrides the total fee cap for that tenor.
type TenorPricing struct {
	Tenor      int
	MinPricing decimal.Decimal
	Threshold  decimal.Decimal
}

// RepeatRateCard is the returning-customer override of a RateCard. It is
// scoped to a customer segment (and optionally a partner) and may restrict
// how many tenure options are displayed.
type RepeatRateCard struct {
	RateCard
	CustomerSegment string
	PartnerID       string
	ShowTenureLimit int
	TenorPricing    []TenorPricing
}

// PricingFor returns the tenor pricing entry for the given duration.
func (r RepeatRateCard) PricingFor(duration int) (TenorPricing, bool) {
	for _, tp := range r.TenorPricing {
		if tp.Tenor == duration {
			return tp, true
		}
	}
	return TenorPricing{}, false
}

// AppliesTo reports whether the repeat card is in scope for the profile.
// A card scoped to a different segment or partner must not leak across.
func (r RepeatRateCard) AppliesTo(p CustomerProfile) bool {
	if !p.IsRepeatCustomer {
		return false
	}
	if r.CustomerSegment != "" && r.CustomerSegment != p.CustomerSegment {
		return false
	}
	if r.PartnerID != "" && r.PartnerID != p.PartnerID {
		return false
	}
	return true
}

// CustomerProfile carries the application/account attributes the resolver
// needs to pick between the repeat and base matrices.
type CustomerProfile struct {
	AccountID        string
	CustomerSegment  string
	PartnerID        string
	IsRepeatCustomer bool
}

// ResolvedRate is the outcome of credit matrix resolution: the effective
// rate card plus repeat-specific policy when the repeat matrix won.
type ResolvedRate struct {
	RateCard
	FromRepeat      bool
	ShowTenureLimit int
	tenorPricing    []TenorPricing
}

// NewResolvedRate builds a ResolvedRate from a base card.
func NewResolvedRate(card RateCard) ResolvedRate {
	return ResolvedRate{RateCard: card}
}

// NewResolvedRepeatRate builds a ResolvedRate from a repeat card.
func NewResolvedRepeatRate(card RepeatRateCard) ResolvedRate {
	return ResolvedRate{
		RateCard:        card.RateCard,
		FromRepeat:      true,
		ShowTenureLimit: card.ShowTenureLimit,
		tenorPricing:    card.TenorPricing,
	}
}

// PricingFor returns the per-tenor pricing bounds, if any.
func (r ResolvedRate) PricingFor(duration int) (TenorPricing, bool) {
	for _, tp := range r.tenorPricing {
		if tp.Tenor == duration {
			return tp, true
		}
	}
	return TenorPricing{}, false
}
