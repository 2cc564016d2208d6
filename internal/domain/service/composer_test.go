package service_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sajinavi2006/julomvp-sub044/internal/domain/model"
	"github.com/sajinavi2006/julomvp-sub044/internal/domain/service"
	"github.com/sajinavi2006/julomvp-sub044/internal/domain/valueobject"
)

func deductInput() service.ComposeInput {
	return service.ComposeInput{
		Kind:                valueobject.TransactionKindSelfBankAccount,
		RequestedAmount:     decimal.NewFromInt(5_000_000),
		MonthlyInterestRate: decimal.RequireFromString("0.04"),
		ProvisionRate:       decimal.RequireFromString("0.05"),
	}
}

// conserves asserts the exact identity
// disbursement + provision + signing fees + tax == gross.
func conserves(t *testing.T, comp service.Composition) {
	t.Helper()
	total := comp.DisbursementAmount.
		Add(comp.ProvisionFee).
		Add(comp.DigisignFee).
		Add(comp.RegistrationFee).
		Add(comp.Tax)
	assert.True(t, total.Equal(comp.LoanAmount),
		"disbursement %s + fees != gross %s", comp.DisbursementAmount, comp.LoanAmount)
}

func TestFeeComposer_DeductMode(t *testing.T) {
	composer := service.NewFeeComposer()

	comp := composer.Compose(3, deductInput())

	assert.True(t, comp.LoanAmount.Equal(decimal.NewFromInt(5_000_000)))
	assert.True(t, comp.ProvisionFee.Equal(decimal.NewFromInt(250_000)))
	assert.True(t, comp.DisbursementAmount.Equal(decimal.NewFromInt(4_750_000)))
	assert.False(t, comp.ZeroInterestApplied)
	conserves(t, comp)
}

func TestFeeComposer_DeductModeWithSigningFeesAndTax(t *testing.T) {
	composer := service.NewFeeComposer()
	in := deductInput()
	in.TaxRate = decimal.RequireFromString("0.11")
	in.DigisignFee = decimal.NewFromInt(5_000)
	in.RegistrationFee = decimal.NewFromInt(2_000)

	comp := composer.Compose(3, in)

	// tax = 11% of provision plus signing fees: 0.11 * 257_000.
	assert.True(t, comp.Tax.Equal(decimal.NewFromInt(28_270)))
	assert.True(t, comp.DisbursementAmount.Equal(decimal.NewFromInt(4_714_730)))
	conserves(t, comp)
}

func TestFeeComposer_AddOnModeDeliversExactAmount(t *testing.T) {
	composer := service.NewFeeComposer()
	in := service.ComposeInput{
		Kind:                valueobject.TransactionKindOtherBankAccount,
		RequestedAmount:     decimal.NewFromInt(1_000_000),
		MonthlyInterestRate: decimal.RequireFromString("0.04"),
		ProvisionRate:       decimal.RequireFromString("0.05"),
		TaxRate:             decimal.RequireFromString("0.11"),
	}

	comp := composer.Compose(3, in)

	// Gross is grossed-up: ceil(1_000_000 / 0.95) = 1_052_632, then tax on top.
	assert.True(t, comp.DisbursementAmount.Equal(decimal.NewFromInt(1_000_000)))
	assert.True(t, comp.ProvisionFee.Equal(decimal.NewFromInt(52_632)))
	assert.True(t, comp.Tax.Equal(decimal.NewFromInt(5_790)))
	assert.True(t, comp.LoanAmount.Equal(decimal.NewFromInt(1_058_422)))
	conserves(t, comp)
}

func TestFeeComposer_InsurancePremiumFoldsIntoProvision(t *testing.T) {
	composer := service.NewFeeComposer()
	in := deductInput()
	in.WantInsurance = true
	in.Insurance = model.InsuranceQuote{
		Eligible:    true,
		PremiumRate: decimal.RequireFromString("0.005"),
	}

	comp := composer.Compose(3, in)

	assert.True(t, comp.InsurancePremium.Equal(decimal.NewFromInt(25_000)))
	assert.True(t, comp.ProvisionFee.Equal(decimal.NewFromInt(275_000)))
	assert.True(t, comp.DisbursementAmount.Equal(decimal.NewFromInt(4_725_000)))
	conserves(t, comp)
}

func TestFeeComposer_InsuranceIgnoredWhenNotWanted(t *testing.T) {
	composer := service.NewFeeComposer()
	in := deductInput()
	in.Insurance = model.InsuranceQuote{
		Eligible:    true,
		PremiumRate: decimal.RequireFromString("0.005"),
	}

	comp := composer.Compose(3, in)

	assert.True(t, comp.InsurancePremium.IsZero())
	assert.True(t, comp.ProvisionFee.Equal(decimal.NewFromInt(250_000)))
}

func TestFeeComposer_DelayedDisbursementPremium(t *testing.T) {
	composer := service.NewFeeComposer()
	in := deductInput()
	in.DelayedDisbursement = model.DelayedDisbursementQuote{
		Eligible: true,
		Premium:  decimal.NewFromInt(3_500),
	}

	comp := composer.Compose(3, in)

	assert.True(t, comp.DelayedDisbursementPremium.Equal(decimal.NewFromInt(3_500)))
	assert.True(t, comp.ProvisionFee.Equal(decimal.NewFromInt(253_500)))
	assert.True(t, comp.DisbursementAmount.Equal(decimal.NewFromInt(4_746_500)))
	conserves(t, comp)
}

func TestFeeComposer_ZeroInterestCampaign(t *testing.T) {
	composer := service.NewFeeComposer()
	in := deductInput()
	in.WantZeroInterest = true
	in.ZeroInterest = model.ZeroInterestCampaign{
		Enabled:               true,
		MaxAmount:             decimal.NewFromInt(10_000_000),
		MaxTenure:             3,
		ProvisionRateOverride: decimal.RequireFromString("0.07"),
	}

	t.Run("within campaign bounds", func(t *testing.T) {
		comp := composer.Compose(3, in)

		assert.True(t, comp.ZeroInterestApplied)
		assert.True(t, comp.MonthlyInterestRate.IsZero())
		assert.True(t, comp.ProvisionRate.Equal(decimal.RequireFromString("0.07")))
		assert.True(t, comp.ProvisionFee.Equal(decimal.NewFromInt(350_000)))
		conserves(t, comp)
	})

	t.Run("tenure past campaign max", func(t *testing.T) {
		comp := composer.Compose(4, in)

		assert.False(t, comp.ZeroInterestApplied)
		assert.True(t, comp.MonthlyInterestRate.Equal(decimal.RequireFromString("0.04")))
	})

	t.Run("amount past campaign max", func(t *testing.T) {
		over := in
		over.RequestedAmount = decimal.NewFromInt(10_000_001)
		comp := composer.Compose(3, over)

		assert.False(t, comp.ZeroInterestApplied)
	})
}

func TestFeeComposer_Cashback(t *testing.T) {
	composer := service.NewFeeComposer()
	in := deductInput()
	in.CashbackRate = decimal.RequireFromString("0.01")

	comp := composer.Compose(3, in)

	assert.True(t, comp.Cashback.Equal(decimal.NewFromInt(50_000)))
}

func TestFeeComposer_SameInputSameAmounts(t *testing.T) {
	composer := service.NewFeeComposer()
	in := deductInput()
	in.TaxRate = decimal.RequireFromString("0.11")

	first := composer.Compose(5, in)
	second := composer.Compose(5, in)

	assert.True(t, first.DisbursementAmount.Equal(second.DisbursementAmount))
	assert.True(t, first.ProvisionFee.Equal(second.ProvisionFee))
	assert.True(t, first.Tax.Equal(second.Tax))
}
