package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sajinavi2006/julomvp-sub044/internal/application/dto"
	"github.com/sajinavi2006/julomvp-sub044/internal/application/usecase"
	"github.com/sajinavi2006/julomvp-sub044/internal/domain/model"
	"github.com/sajinavi2006/julomvp-sub044/internal/domain/service"
	"github.com/sajinavi2006/julomvp-sub044/internal/domain/valueobject"
)

func TestGetRateCard_Execute(t *testing.T) {
	validRequest := dto.GetRateCardRequest{
		TenantID:        "tenant-001",
		AccountID:       "acc-001",
		ProductLineID:   10,
		TransactionKind: "SELF_BANK_ACCOUNT",
	}

	t.Run("returns the base card for a first-time customer", func(t *testing.T) {
		rateRepo := &mockRateCardRepository{}
		profileRepo := &mockCustomerProfileRepository{}
		uc := usecase.NewGetRateCardUseCase(rateRepo, profileRepo, service.NewRateResolver())

		resp, err := uc.Execute(context.Background(), validRequest)

		require.NoError(t, err)
		assert.Equal(t, int64(10), resp.ProductLineID)
		assert.False(t, resp.FromRepeat)
		assert.True(t, resp.MonthlyInterestRate.Equal(decimal.RequireFromString("0.04")))
		assert.Equal(t, 1, resp.MinTenure)
		assert.Equal(t, 6, resp.MaxTenure)
	})

	t.Run("returns the repeat card for a matching repeat customer", func(t *testing.T) {
		rateRepo := &mockRateCardRepository{
			findRepeatFunc: func(_ context.Context, _ string, _ valueobject.TransactionKind) (*model.RepeatRateCard, error) {
				return &model.RepeatRateCard{
					RateCard: model.RateCard{
						ProductLineID:       10,
						MonthlyInterestRate: decimal.RequireFromString("0.03"),
						ProvisionRate:       decimal.RequireFromString("0.04"),
						MinTenure:           2,
						MaxTenure:           8,
					},
					CustomerSegment: "activeus_a",
				}, nil
			},
		}
		profileRepo := &mockCustomerProfileRepository{
			findFunc: func(_ context.Context, accountID string) (model.CustomerProfile, error) {
				return model.CustomerProfile{
					AccountID:        accountID,
					CustomerSegment:  "activeus_a",
					IsRepeatCustomer: true,
				}, nil
			},
		}
		uc := usecase.NewGetRateCardUseCase(rateRepo, profileRepo, service.NewRateResolver())

		resp, err := uc.Execute(context.Background(), validRequest)

		require.NoError(t, err)
		assert.True(t, resp.FromRepeat)
		assert.True(t, resp.MonthlyInterestRate.Equal(decimal.RequireFromString("0.03")))
	})

	t.Run("fails when no card matches", func(t *testing.T) {
		rateRepo := &mockRateCardRepository{
			findBaseFunc: func(_ context.Context, _ int64, _ valueobject.TransactionKind) (*model.RateCard, error) {
				return nil, nil
			},
		}
		profileRepo := &mockCustomerProfileRepository{}
		uc := usecase.NewGetRateCardUseCase(rateRepo, profileRepo, service.NewRateResolver())

		_, err := uc.Execute(context.Background(), validRequest)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrRateNotFound)
	})

	t.Run("rejects an unknown transaction kind", func(t *testing.T) {
		uc := usecase.NewGetRateCardUseCase(
			&mockRateCardRepository{}, &mockCustomerProfileRepository{}, service.NewRateResolver(),
		)

		req := validRequest
		req.TransactionKind = "CASH"
		_, err := uc.Execute(context.Background(), req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse transaction kind")
	})
}
