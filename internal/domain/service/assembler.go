package service

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sajinavi2006/julomvp-sub044/internal/domain/model"
)

// ---------------------------------------------------------------------------
// OfferAssembler – per-request orchestration of the pricing pipeline
// ---------------------------------------------------------------------------

// AssembleInput is everything one quote calculation consumes. All fields
// are immutable snapshots for the lifetime of the call, which makes the
// assembler a pure function of its input (token generation aside).
type AssembleInput struct {
	Request             model.QuoteRequest
	Rate                model.ResolvedRate
	Limit               model.AccountLimitSnapshot
	DBR                 model.DBRSetting
	Insurance           model.InsuranceQuote
	DelayedDisbursement model.DelayedDisbursementQuote
	Config              model.PricingConfig
}

// AssembleResult is the ordered offer list plus the index a UI should
// pre-select.
type AssembleResult struct {
	Offers       []model.LoanOffer
	DefaultIndex int

	// UsedFallbackWalk is set when the forward-walk search past the matrix
	// max tenure produced the offers.
	UsedFallbackWalk bool
}

// OfferAssembler iterates candidate durations in ascending order and runs
// each through composition, fee-cap adjustment, installment calculation,
// and the limit and DBR gates.
type OfferAssembler struct {
	composer *FeeComposer
	adjuster *FeeCapAdjuster
	logger   *slog.Logger
}

// NewOfferAssembler wires the engine components.
func NewOfferAssembler(logger *slog.Logger) *OfferAssembler {
	return &OfferAssembler{
		composer: NewFeeComposer(),
		adjuster: NewFeeCapAdjuster(),
		logger:   logger,
	}
}

// Assemble produces the final ordered offer list.
//
// Durations whose gross principal exceeds the available limit are dropped
// silently; durations failing DBR are skipped, and when DBR filtered out
// every candidate the search walks forward one duration at a time past the
// matrix max tenure (bounded by the config max) until it has collected up
// to MaxFallbackOffers passing offers. Only an empty final list is an
// error.
func (a *OfferAssembler) Assemble(in AssembleInput) (AssembleResult, error) {
	if err := in.Request.Validate(); err != nil {
		return AssembleResult{}, fmt.Errorf("quote request: %w", err)
	}
	if err := in.Limit.Validate(); err != nil {
		return AssembleResult{}, fmt.Errorf("account limit: %w", err)
	}
	if err := in.Config.Validate(); err != nil {
		return AssembleResult{}, fmt.Errorf("pricing config: %w", err)
	}

	durations := EnumerateDurations(
		in.Request.RequestedAmount, in.Rate.MinTenure, in.Rate.MaxTenure, in.Config,
	)
	if len(durations) == 0 {
		return AssembleResult{}, model.ErrNoOffersAvailable
	}

	gate := NewDBRGate(in.DBR)

	var offers []model.LoanOffer
	dbrFiltered := false
	for _, d := range durations {
		offer, ok := a.price(d, in, gate, &dbrFiltered)
		if ok {
			offers = append(offers, offer)
		}
	}

	usedWalk := false
	if len(offers) == 0 && dbrFiltered {
		// Escape hatch: prefer showing some affordable choice over none.
		// Longer tenures shrink the installment, so walk forward until one
		// passes or the global bound is hit.
		usedWalk = true
		a.logger.Info("all durations filtered by DBR, walking forward",
			"account_id", in.Request.AccountID,
			"last_duration", durations[len(durations)-1],
			"max_duration", in.Config.MaxDuration,
		)
		for d := durations[len(durations)-1] + 1; d <= in.Config.MaxDuration; d++ {
			if len(offers) >= in.Config.MaxFallbackOffers {
				break
			}
			offer, ok := a.price(d, in, gate, &dbrFiltered)
			if ok {
				offers = append(offers, offer)
			}
		}
	}

	if len(offers) == 0 {
		return AssembleResult{}, model.ErrNoOffersAvailable
	}

	if in.Rate.FromRepeat && in.Rate.ShowTenureLimit > 0 && len(offers) > in.Rate.ShowTenureLimit {
		offers = offers[:in.Rate.ShowTenureLimit]
	}

	for i := range offers {
		offers[i].Token = uuid.New().String()
	}

	defaultIdx := in.Config.DefaultDurationIndex
	if defaultIdx < 0 {
		defaultIdx = 0
	}
	if defaultIdx >= len(offers) {
		defaultIdx = len(offers) - 1
	}

	return AssembleResult{
		Offers:           offers,
		DefaultIndex:     defaultIdx,
		UsedFallbackWalk: usedWalk,
	}, nil
}

// price runs the full per-duration pipeline. The second return value is
// false when the duration was filtered by the limit or DBR gates.
func (a *OfferAssembler) price(
	duration int,
	in AssembleInput,
	gate DBRGate,
	dbrFiltered *bool,
) (model.LoanOffer, bool) {
	composeIn := ComposeInput{
		Kind:                in.Request.TransactionKind,
		RequestedAmount:     in.Request.RequestedAmount,
		MonthlyInterestRate: in.Rate.MonthlyInterestRate,
		ProvisionRate:       in.Rate.ProvisionRate,
		CashbackRate:        in.Rate.CashbackRate,
		WantZeroInterest:    in.Request.WantZeroInterest,
		ZeroInterest:        in.Config.ZeroInterest,
		WantInsurance:       in.Request.WantInsurance,
		Insurance:           in.Insurance,
		DelayedDisbursement: in.DelayedDisbursement,
		TaxRate:             in.Config.TaxRate,
		DigisignFee:         in.Config.DigisignFee,
		RegistrationFee:     in.Config.RegistrationFee,
	}

	comp := a.composer.Compose(duration, composeIn)

	insuranceRate := decimal.Zero
	if comp.InsurancePremium.IsPositive() {
		insuranceRate = in.Insurance.PremiumRate
	}
	ddRate := decimal.Zero
	if comp.DelayedDisbursementPremium.IsPositive() && comp.LoanAmount.IsPositive() {
		ddRate = comp.DelayedDisbursementPremium.Div(comp.LoanAmount).RoundDown(ratePrecision)
	}

	maxFeeRate := in.Config.MaxFeeRate
	minPricing := decimal.Zero
	if tp, ok := in.Rate.PricingFor(duration); ok {
		if tp.Threshold.IsPositive() {
			maxFeeRate = tp.Threshold
		}
		minPricing = tp.MinPricing
	}

	capIn := CapCheckInput{
		Duration:                duration,
		FirstPaymentDeltaDays:   in.Request.FirstPaymentDeltaDays(),
		MonthlyInterestRate:     comp.MonthlyInterestRate,
		ProvisionRate:           comp.ProvisionRate,
		InsuranceRate:           insuranceRate,
		DelayedDisbursementRate: ddRate,
		MaxFeeRate:              maxFeeRate,
		MinPricing:              minPricing,
	}
	capRes := a.adjuster.Check(capIn)

	zeroApplied := comp.ZeroInterestApplied
	if capRes.RatesChanged(capIn) {
		if capRes.Exceeded {
			a.logger.Info("total fee rate exceeds cap, re-deriving interest rate",
				"account_id", in.Request.AccountID,
				"duration", duration,
				"effective_rate", capRes.EffectiveFeeRate.String(),
				"max_fee_rate", maxFeeRate.String(),
				"adjusted_monthly_rate", capRes.AdjustedMonthlyRate.String(),
			)
		}
		// Re-run composition so every dependent amount stays consistent
		// with the adjusted rates.
		adjusted := composeIn
		adjusted.MonthlyInterestRate = capRes.AdjustedMonthlyRate
		adjusted.ProvisionRate = capRes.AdjustedProvisionRate
		adjusted.WantZeroInterest = false
		comp = a.composer.Compose(duration, adjusted)
	}

	monthly := ComputeMonthlyInstallment(comp.LoanAmount, duration, comp.MonthlyInterestRate)
	first := ComputeFirstInstallment(
		comp.LoanAmount, duration, comp.MonthlyInterestRate, in.Request.FirstPaymentDeltaDays(),
	)
	displayed := DisplayInstallment(in.Request.TransactionKind, duration, monthly, first)

	if comp.LoanAmount.GreaterThan(in.Limit.AvailableLimit) {
		return model.LoanOffer{}, false
	}
	if !comp.DisbursementAmount.IsPositive() {
		return model.LoanOffer{}, false
	}
	if gate.IsExceeded(displayed, first) {
		*dbrFiltered = true
		return model.LoanOffer{}, false
	}

	saving := decimal.Zero
	if in.Request.ShowSavingAmount {
		baseline := ComputeMonthlyInstallment(comp.LoanAmount, duration, in.Rate.MonthlyInterestRate)
		if baseline.GreaterThan(displayed) {
			saving = baseline.Sub(displayed)
		}
	}

	return model.LoanOffer{
		Duration:                   duration,
		MonthlyInterestRate:        comp.MonthlyInterestRate,
		ProvisionRate:              comp.ProvisionRate,
		LoanAmount:                 comp.LoanAmount,
		ProvisionFee:               comp.ProvisionFee,
		DisbursementAmount:         comp.DisbursementAmount,
		InsurancePremium:           comp.InsurancePremium,
		DelayedDisbursementPremium: comp.DelayedDisbursementPremium,
		DigisignFee:                comp.DigisignFee,
		RegistrationFee:            comp.RegistrationFee,
		Tax:                        comp.Tax,
		Cashback:                   comp.Cashback,
		MonthlyInstallment:         displayed,
		FirstInstallment:           first,
		AvailableLimitAfter:        in.Limit.AvailableLimit.Sub(comp.LoanAmount),
		SavingAmount:               saving,
		FeeCapAdjusted:             capRes.Exceeded,
		ZeroInterestApplied:        zeroApplied,
	}, true
}
