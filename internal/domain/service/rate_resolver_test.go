package service_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sajinavi2006/julomvp-sub044/internal/domain/model"
	"github.com/sajinavi2006/julomvp-sub044/internal/domain/service"
)

func baseCard() model.RateCard {
	return model.RateCard{
		ProductLineID:       10,
		MonthlyInterestRate: decimal.RequireFromString("0.04"),
		ProvisionRate:       decimal.RequireFromString("0.05"),
		MinTenure:           1,
		MaxTenure:           6,
	}
}

func repeatCard() model.RepeatRateCard {
	card := baseCard()
	card.MonthlyInterestRate = decimal.RequireFromString("0.03")
	return model.RepeatRateCard{
		RateCard:        card,
		CustomerSegment: "activeus_a",
		ShowTenureLimit: 4,
	}
}

func TestRateResolver_RepeatCardWinsForMatchingProfile(t *testing.T) {
	resolver := service.NewRateResolver()
	repeat := repeatCard()
	base := baseCard()

	resolved, err := resolver.Resolve(&repeat, &base, model.CustomerProfile{
		AccountID:        "acc-001",
		CustomerSegment:  "activeus_a",
		IsRepeatCustomer: true,
	})

	require.NoError(t, err)
	assert.True(t, resolved.FromRepeat)
	assert.Equal(t, 4, resolved.ShowTenureLimit)
	assert.True(t, resolved.MonthlyInterestRate.Equal(decimal.RequireFromString("0.03")))
}

func TestRateResolver_SegmentMismatchFallsBackToBase(t *testing.T) {
	resolver := service.NewRateResolver()
	repeat := repeatCard()
	base := baseCard()

	resolved, err := resolver.Resolve(&repeat, &base, model.CustomerProfile{
		AccountID:        "acc-001",
		CustomerSegment:  "activeus_b",
		IsRepeatCustomer: true,
	})

	require.NoError(t, err)
	assert.False(t, resolved.FromRepeat)
	assert.True(t, resolved.MonthlyInterestRate.Equal(decimal.RequireFromString("0.04")))
}

func TestRateResolver_FirstTimeCustomerIgnoresRepeatCard(t *testing.T) {
	resolver := service.NewRateResolver()
	repeat := repeatCard()
	base := baseCard()

	resolved, err := resolver.Resolve(&repeat, &base, model.CustomerProfile{
		AccountID:       "acc-001",
		CustomerSegment: "activeus_a",
	})

	require.NoError(t, err)
	assert.False(t, resolved.FromRepeat)
}

func TestRateResolver_PartnerScopedCard(t *testing.T) {
	resolver := service.NewRateResolver()
	repeat := repeatCard()
	repeat.PartnerID = "partner-7"
	base := baseCard()

	t.Run("matching partner applies", func(t *testing.T) {
		resolved, err := resolver.Resolve(&repeat, &base, model.CustomerProfile{
			AccountID:        "acc-001",
			CustomerSegment:  "activeus_a",
			PartnerID:        "partner-7",
			IsRepeatCustomer: true,
		})
		require.NoError(t, err)
		assert.True(t, resolved.FromRepeat)
	})

	t.Run("different partner falls back", func(t *testing.T) {
		resolved, err := resolver.Resolve(&repeat, &base, model.CustomerProfile{
			AccountID:        "acc-001",
			CustomerSegment:  "activeus_a",
			PartnerID:        "partner-9",
			IsRepeatCustomer: true,
		})
		require.NoError(t, err)
		assert.False(t, resolved.FromRepeat)
	})
}

func TestRateResolver_NoCardAtAll(t *testing.T) {
	resolver := service.NewRateResolver()

	_, err := resolver.Resolve(nil, nil, model.CustomerProfile{AccountID: "acc-001"})

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrRateNotFound)
}

func TestRateResolver_InvalidBaseCardRejected(t *testing.T) {
	resolver := service.NewRateResolver()
	base := baseCard()
	base.MaxTenure = 0

	_, err := resolver.Resolve(nil, &base, model.CustomerProfile{AccountID: "acc-001"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "max tenure")
}
