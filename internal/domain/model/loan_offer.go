package model

import (
	"github.com/shopspring/decimal"
)

// LoanOffer is one priced tenure choice produced by the calculation engine.
// Offers exist only for the lifetime of a quote response; the token is an
// opaque handle a caller presents to redeem the offer later.
type LoanOffer struct {
	Token    string
	Duration int

	MonthlyInterestRate decimal.Decimal
	ProvisionRate       decimal.Decimal

	// LoanAmount is the gross principal. DisbursementAmount is what the
	// borrower (or payee) actually receives after fee folding.
	LoanAmount         decimal.Decimal
	ProvisionFee       decimal.Decimal
	DisbursementAmount decimal.Decimal

	InsurancePremium           decimal.Decimal
	DelayedDisbursementPremium decimal.Decimal
	DigisignFee                decimal.Decimal
	RegistrationFee            decimal.Decimal
	Tax                        decimal.Decimal
	Cashback                   decimal.Decimal

	MonthlyInstallment decimal.Decimal
	FirstInstallment   decimal.Decimal

	AvailableLimitAfter decimal.Decimal
	SavingAmount        decimal.Decimal

	FeeCapAdjusted      bool
	ZeroInterestApplied bool
}

// UpfrontFees is everything withheld from (or stacked onto) the principal:
// provision fee, signing fees, and tax. The insurance and delayed
// disbursement premiums are already folded into the provision fee.
func (o LoanOffer) UpfrontFees() decimal.Decimal {
	return o.ProvisionFee.Add(o.DigisignFee).Add(o.RegistrationFee).Add(o.Tax)
}

// ConservesAmount verifies the core accounting identity: the disbursed
// amount plus all upfront fees equals the gross principal.
func (o LoanOffer) ConservesAmount() bool {
	return o.DisbursementAmount.Add(o.UpfrontFees()).Equal(o.LoanAmount)
}
