package service

import (
	"github.com/shopspring/decimal"

	"github.com/sajinavi2006/julomvp-sub044/internal/domain/model"
	"github.com/sajinavi2006/julomvp-sub044/internal/domain/valueobject"
)

var one = decimal.NewFromInt(1)

// roundAmount rounds to whole currency units. All monetary outputs of the
// engine are whole rupiah.
func roundAmount(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}

// ---------------------------------------------------------------------------
// FeeComposer – per-duration fee and premium composition
// ---------------------------------------------------------------------------

// ComposeInput groups everything the composer needs for one duration. All
// externally quoted values (insurance, delayed disbursement) are fetched
// once per request by the caller and passed in as plain values.
type ComposeInput struct {
	Kind            valueobject.TransactionKind
	RequestedAmount decimal.Decimal

	MonthlyInterestRate decimal.Decimal
	ProvisionRate       decimal.Decimal
	CashbackRate        decimal.Decimal

	WantZeroInterest bool
	ZeroInterest     model.ZeroInterestCampaign

	WantInsurance bool
	Insurance     model.InsuranceQuote

	DelayedDisbursement model.DelayedDisbursementQuote

	TaxRate         decimal.Decimal
	DigisignFee     decimal.Decimal
	RegistrationFee decimal.Decimal
}

// Composition is the offer skeleton for one duration: amounts and the
// nominal rates that produced them, before installments are computed.
type Composition struct {
	Duration int

	MonthlyInterestRate decimal.Decimal
	ProvisionRate       decimal.Decimal

	LoanAmount         decimal.Decimal
	ProvisionFee       decimal.Decimal
	DisbursementAmount decimal.Decimal

	InsurancePremium           decimal.Decimal
	DelayedDisbursementPremium decimal.Decimal
	DigisignFee                decimal.Decimal
	RegistrationFee            decimal.Decimal
	Tax                        decimal.Decimal
	Cashback                   decimal.Decimal

	ZeroInterestApplied bool
}

// FeeComposer layers provision fee, optional premiums, signing fees, and tax
// onto a requested amount. It is a pure function of its input: the resolved
// rate card is never mutated, and composing the same input twice yields the
// same amounts.
type FeeComposer struct{}

// NewFeeComposer returns a new composer instance.
func NewFeeComposer() *FeeComposer {
	return &FeeComposer{}
}

// Compose prices one duration. Components are layered in fixed order:
//
//  1. zero-interest campaign override (interest and provision rates)
//  2. provision fee fold
//  3. insurance premium fold
//  4. delayed-disbursement premium fold
//  5. signing fees and tax fold
//
// The fold direction follows the transaction kind: self-bank-account
// transactions deduct every component from the disbursement, all other
// kinds stack components onto the gross loan amount so the payee receives
// the exact requested amount. Either way the identity
// disbursement + provision + signing fees + tax == gross holds exactly.
func (c *FeeComposer) Compose(duration int, in ComposeInput) Composition {
	rate := in.MonthlyInterestRate
	provisionRate := in.ProvisionRate
	zeroApplied := false

	if in.WantZeroInterest && in.ZeroInterest.AppliesTo(in.RequestedAmount, duration) {
		rate = decimal.Zero
		if !in.ZeroInterest.ProvisionRateOverride.IsZero() {
			provisionRate = in.ZeroInterest.ProvisionRateOverride
		}
		zeroApplied = true
	}

	deduct := in.Kind.DeductsFees()

	var gross, provisionFee, disbursement decimal.Decimal
	if deduct {
		gross = in.RequestedAmount
		provisionFee = roundAmount(gross.Mul(provisionRate))
		disbursement = gross.Sub(provisionFee)
	} else {
		// Gross is grossed-up so that gross - provision == requested.
		gross = in.RequestedAmount.Div(one.Sub(provisionRate)).Ceil()
		provisionFee = gross.Sub(in.RequestedAmount)
		disbursement = in.RequestedAmount
	}

	var insurancePremium decimal.Decimal
	if in.WantInsurance && in.Insurance.Eligible && in.Insurance.PremiumRate.IsPositive() {
		insurancePremium = roundAmount(gross.Mul(in.Insurance.PremiumRate))
		provisionFee = provisionFee.Add(insurancePremium)
		if deduct {
			disbursement = disbursement.Sub(insurancePremium)
		} else {
			gross = gross.Add(insurancePremium)
		}
	}

	var ddPremium decimal.Decimal
	if in.DelayedDisbursement.Eligible && in.DelayedDisbursement.Premium.IsPositive() {
		ddPremium = roundAmount(in.DelayedDisbursement.Premium)
		provisionFee = provisionFee.Add(ddPremium)
		if deduct {
			disbursement = disbursement.Sub(ddPremium)
		} else {
			gross = gross.Add(ddPremium)
		}
	}

	signingFees := in.DigisignFee.Add(in.RegistrationFee)
	tax := roundAmount(in.TaxRate.Mul(provisionFee.Add(signingFees)))
	if deduct {
		disbursement = disbursement.Sub(signingFees).Sub(tax)
	} else {
		gross = gross.Add(signingFees).Add(tax)
	}

	return Composition{
		Duration:                   duration,
		MonthlyInterestRate:        rate,
		ProvisionRate:              provisionRate,
		LoanAmount:                 gross,
		ProvisionFee:               provisionFee,
		DisbursementAmount:         disbursement,
		InsurancePremium:           insurancePremium,
		DelayedDisbursementPremium: ddPremium,
		DigisignFee:                in.DigisignFee,
		RegistrationFee:            in.RegistrationFee,
		Tax:                        tax,
		Cashback:                   roundAmount(gross.Mul(in.CashbackRate)),
		ZeroInterestApplied:        zeroApplied,
	}
}
