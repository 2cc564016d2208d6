package service

import (
	"fmt"

	"github.com/sajinavi2006/julomvp-sub044/internal/domain/model"
)

// ---------------------------------------------------------------------------
// RateResolver – domain service for credit matrix resolution
// ---------------------------------------------------------------------------

// RateResolver picks the most specific rate card for a customer: the
// repeat-customer matrix when it is in scope, otherwise the product-line
// base matrix. Both rows are supplied already fetched; resolution itself
// performs no I/O.
type RateResolver struct{}

// NewRateResolver returns a new resolver instance.
func NewRateResolver() *RateResolver {
	return &RateResolver{}
}

// Resolve returns the effective rate for the profile. A repeat card scoped
// to a different segment or partner is ignored rather than misapplied.
// When no base card exists either, the request fails with ErrRateNotFound:
// there is deliberately no default rate to fall back on.
func (r *RateResolver) Resolve(
	repeat *model.RepeatRateCard,
	base *model.RateCard,
	profile model.CustomerProfile,
) (model.ResolvedRate, error) {
	if repeat != nil && repeat.AppliesTo(profile) {
		if err := repeat.Validate(); err != nil {
			return model.ResolvedRate{}, fmt.Errorf("repeat rate card: %w", err)
		}
		return model.NewResolvedRepeatRate(*repeat), nil
	}

	if base == nil {
		return model.ResolvedRate{}, model.ErrRateNotFound
	}
	if err := base.Validate(); err != nil {
		return model.ResolvedRate{}, fmt.Errorf("rate card: %w", err)
	}

	return model.NewResolvedRate(*base), nil
}
