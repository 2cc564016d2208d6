package model_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sajinavi2006/julomvp-sub044/internal/domain/model"
)

func validRateCard() model.RateCard {
	return model.RateCard{
		ProductLineID:       10,
		MonthlyInterestRate: decimal.RequireFromString("0.04"),
		ProvisionRate:       decimal.RequireFromString("0.05"),
		MinTenure:           1,
		MaxTenure:           6,
	}
}

func TestRateCard_Validate(t *testing.T) {
	assert.NoError(t, validRateCard().Validate())

	t.Run("min tenure must be positive", func(t *testing.T) {
		card := validRateCard()
		card.MinTenure = 0
		assert.Error(t, card.Validate())
	})

	t.Run("max tenure below min", func(t *testing.T) {
		card := validRateCard()
		card.MaxTenure = 0
		assert.Error(t, card.Validate())
	})

	t.Run("interest rate must stay below one", func(t *testing.T) {
		card := validRateCard()
		card.MonthlyInterestRate = decimal.NewFromInt(1)
		assert.Error(t, card.Validate())
	})

	t.Run("negative provision rejected", func(t *testing.T) {
		card := validRateCard()
		card.ProvisionRate = decimal.RequireFromString("-0.01")
		assert.Error(t, card.Validate())
	})
}

func TestResolvedRate_PricingFor(t *testing.T) {
	resolved := model.NewResolvedRepeatRate(model.RepeatRateCard{
		RateCard:        validRateCard(),
		CustomerSegment: "activeus_a",
		TenorPricing: []model.TenorPricing{
			{Tenor: 3, MinPricing: decimal.RequireFromString("0.06"), Threshold: decimal.RequireFromString("0.3")},
		},
	})

	tp, ok := resolved.PricingFor(3)
	assert.True(t, ok)
	assert.True(t, tp.MinPricing.Equal(decimal.RequireFromString("0.06")))

	_, ok = resolved.PricingFor(4)
	assert.False(t, ok)
}

func TestNewResolvedRate_BaseCardCarriesNoRepeatPolicy(t *testing.T) {
	resolved := model.NewResolvedRate(validRateCard())

	assert.False(t, resolved.FromRepeat)
	assert.Zero(t, resolved.ShowTenureLimit)
	_, ok := resolved.PricingFor(3)
	assert.False(t, ok)
}
