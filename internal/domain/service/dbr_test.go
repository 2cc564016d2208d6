package service_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sajinavi2006/julomvp-sub044/internal/domain/model"
	"github.com/sajinavi2006/julomvp-sub044/internal/domain/service"
)

func dbrSetting() model.DBRSetting {
	return model.DBRSetting{
		Enabled:            true,
		MaxRatio:           decimal.RequireFromString("0.3"),
		MonthlyIncome:      decimal.NewFromInt(10_000_000),
		MonthlyObligations: decimal.NewFromInt(2_000_000),
	}
}

func TestDBRGate_IsExceeded(t *testing.T) {
	t.Run("installment at the ceiling passes", func(t *testing.T) {
		gate := service.NewDBRGate(dbrSetting())
		// ceiling = 3_000_000, obligations 2_000_000: exactly 1_000_000 fits.
		exceeded := gate.IsExceeded(decimal.NewFromInt(1_000_000), decimal.NewFromInt(900_000))
		assert.False(t, exceeded)
	})

	t.Run("installment past the ceiling filters", func(t *testing.T) {
		gate := service.NewDBRGate(dbrSetting())
		exceeded := gate.IsExceeded(decimal.NewFromInt(1_000_001), decimal.NewFromInt(900_000))
		assert.True(t, exceeded)
	})

	t.Run("worse first installment counts", func(t *testing.T) {
		gate := service.NewDBRGate(dbrSetting())
		exceeded := gate.IsExceeded(decimal.NewFromInt(900_000), decimal.NewFromInt(1_200_000))
		assert.True(t, exceeded)
	})

	t.Run("disabled gate never filters", func(t *testing.T) {
		setting := dbrSetting()
		setting.Enabled = false
		gate := service.NewDBRGate(setting)
		exceeded := gate.IsExceeded(decimal.NewFromInt(99_000_000), decimal.Zero)
		assert.False(t, exceeded)
	})

	t.Run("unknown income never filters", func(t *testing.T) {
		setting := dbrSetting()
		setting.MonthlyIncome = decimal.Zero
		gate := service.NewDBRGate(setting)
		exceeded := gate.IsExceeded(decimal.NewFromInt(99_000_000), decimal.Zero)
		assert.False(t, exceeded)
	})
}
