package service

import (
	"github.com/shopspring/decimal"

	"github.com/sajinavi2006/julomvp-sub044/internal/domain/model"
)

// ---------------------------------------------------------------------------
// DBRGate – debt-burden-ratio affordability filter
// ---------------------------------------------------------------------------

// DBRGate filters durations whose installment would push the borrower's
// debt burden past the configured ceiling. Gate failures never raise; the
// assembler treats them as "skip this duration".
type DBRGate struct {
	setting model.DBRSetting
}

// NewDBRGate creates a gate from the externally supplied setting.
func NewDBRGate(setting model.DBRSetting) DBRGate {
	return DBRGate{setting: setting}
}

// IsExceeded reports whether adding the worse of the two installments to the
// borrower's existing monthly obligations breaches MaxRatio of income. A
// disabled gate or unknown income never filters.
func (g DBRGate) IsExceeded(monthlyInstallment, firstInstallment decimal.Decimal) bool {
	if !g.setting.Enabled || !g.setting.MonthlyIncome.IsPositive() {
		return false
	}

	installment := monthlyInstallment
	if firstInstallment.GreaterThan(installment) {
		installment = firstInstallment
	}

	ceiling := g.setting.MonthlyIncome.Mul(g.setting.MaxRatio)
	return g.setting.MonthlyObligations.Add(installment).GreaterThan(ceiling)
}
