package service

import (
	"github.com/shopspring/decimal"

	"github.com/sajinavi2006/julomvp-sub044/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Installment calculation (flat monthly accrual)
// ---------------------------------------------------------------------------

// ComputeMonthlyInstallment returns the standard installment for a full
// month: an even principal split plus flat interest on the gross amount.
func ComputeMonthlyInstallment(loanAmount decimal.Decimal, duration int, monthlyRate decimal.Decimal) decimal.Decimal {
	if duration < 1 {
		duration = 1
	}
	principal := loanAmount.Div(decimal.NewFromInt(int64(duration)))
	interest := loanAmount.Mul(monthlyRate)
	return roundAmount(principal.Add(interest))
}

// ComputeFirstInstallment returns the stub first-period installment. The
// period between disbursement and the first due date is usually not a full
// month, so its interest is prorated by deltaDays/30.
func ComputeFirstInstallment(loanAmount decimal.Decimal, duration int, monthlyRate decimal.Decimal, deltaDays int) decimal.Decimal {
	if duration < 1 {
		duration = 1
	}
	if deltaDays < 1 {
		deltaDays = 1
	}
	principal := loanAmount.Div(decimal.NewFromInt(int64(duration)))
	interest := loanAmount.Mul(monthlyRate).
		Mul(decimal.NewFromInt(int64(deltaDays))).Div(thirty)
	return roundAmount(principal.Add(interest))
}

// DisplayInstallment applies the single-month display override: biller-style
// transactions (payment point, QRIS, e-commerce) with a one-month tenure
// show the first-period installment as the monthly installment, since that
// is the only installment the borrower will ever pay.
func DisplayInstallment(
	kind valueobject.TransactionKind,
	duration int,
	monthly, first decimal.Decimal,
) decimal.Decimal {
	if duration == 1 && kind.UsesFirstInstallmentDisplay() {
		return first
	}
	return monthly
}
