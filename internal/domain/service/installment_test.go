package service_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sajinavi2006/julomvp-sub044/internal/domain/service"
	"github.com/sajinavi2006/julomvp-sub044/internal/domain/valueobject"
)

func TestComputeMonthlyInstallment(t *testing.T) {
	loan := decimal.NewFromInt(5_000_000)
	rate := decimal.RequireFromString("0.04")

	t.Run("even principal plus flat interest", func(t *testing.T) {
		got := service.ComputeMonthlyInstallment(loan, 5, rate)
		// 1_000_000 + 200_000
		assert.True(t, got.Equal(decimal.NewFromInt(1_200_000)))
	})

	t.Run("uneven split rounds to whole units", func(t *testing.T) {
		got := service.ComputeMonthlyInstallment(loan, 3, rate)
		// 1_666_666.67 + 200_000 rounds to 1_866_667
		assert.True(t, got.Equal(decimal.NewFromInt(1_866_667)))
	})

	t.Run("decreases as duration grows", func(t *testing.T) {
		prev := service.ComputeMonthlyInstallment(loan, 1, rate)
		for d := 2; d <= 12; d++ {
			cur := service.ComputeMonthlyInstallment(loan, d, rate)
			assert.True(t, cur.LessThan(prev), "installment for %d months not below %d months", d, d-1)
			prev = cur
		}
	})

	t.Run("zero rate is pure principal", func(t *testing.T) {
		got := service.ComputeMonthlyInstallment(loan, 5, decimal.Zero)
		assert.True(t, got.Equal(decimal.NewFromInt(1_000_000)))
	})
}

func TestComputeFirstInstallment_ProratesStubPeriod(t *testing.T) {
	loan := decimal.NewFromInt(1_000_000)
	rate := decimal.RequireFromString("0.03")

	got := service.ComputeFirstInstallment(loan, 3, rate, 15)

	// 333_333.33 principal + 15_000 prorated interest rounds to 348_333.
	assert.True(t, got.Equal(decimal.NewFromInt(348_333)))
}

func TestComputeFirstInstallment_FullMonthMatchesMonthly(t *testing.T) {
	loan := decimal.NewFromInt(5_000_000)
	rate := decimal.RequireFromString("0.04")

	monthly := service.ComputeMonthlyInstallment(loan, 4, rate)
	first := service.ComputeFirstInstallment(loan, 4, rate, 30)

	assert.True(t, first.Equal(monthly))
}

func TestComputeFirstInstallment_ClampsDeltaDays(t *testing.T) {
	loan := decimal.NewFromInt(3_000_000)
	rate := decimal.RequireFromString("0.04")

	sameDay := service.ComputeFirstInstallment(loan, 3, rate, 0)
	oneDay := service.ComputeFirstInstallment(loan, 3, rate, 1)

	assert.True(t, sameDay.Equal(oneDay))
	assert.True(t, sameDay.GreaterThan(loan.Div(decimal.NewFromInt(3)).Round(0).Sub(decimal.NewFromInt(1))))
}

func TestDisplayInstallment_SingleMonthBillerOverride(t *testing.T) {
	monthly := decimal.NewFromInt(1_040_000)
	first := decimal.NewFromInt(1_020_000)

	t.Run("payment point single month shows first installment", func(t *testing.T) {
		got := service.DisplayInstallment(valueobject.TransactionKindPaymentPoint, 1, monthly, first)
		assert.True(t, got.Equal(first))
	})

	t.Run("qris single month shows first installment", func(t *testing.T) {
		got := service.DisplayInstallment(valueobject.TransactionKindQRIS, 1, monthly, first)
		assert.True(t, got.Equal(first))
	})

	t.Run("multi month keeps monthly", func(t *testing.T) {
		got := service.DisplayInstallment(valueobject.TransactionKindPaymentPoint, 2, monthly, first)
		assert.True(t, got.Equal(monthly))
	})

	t.Run("self bank single month keeps monthly", func(t *testing.T) {
		got := service.DisplayInstallment(valueobject.TransactionKindSelfBankAccount, 1, monthly, first)
		assert.True(t, got.Equal(monthly))
	})
}
