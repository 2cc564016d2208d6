package usecase

import (
	"context"
	"fmt"

	"github.com/sajinavi2006/julomvp-sub044/internal/application/dto"
	"github.com/sajinavi2006/julomvp-sub044/internal/domain/port"
	"github.com/sajinavi2006/julomvp-sub044/internal/domain/service"
	"github.com/sajinavi2006/julomvp-sub044/internal/domain/valueobject"
)

// GetRateCardUseCase resolves the rate card an account would be priced with,
// for display purposes.
type GetRateCardUseCase struct {
	rateRepo    port.RateCardRepository
	profileRepo port.CustomerProfileRepository
	resolver    *service.RateResolver
}

// NewGetRateCardUseCase wires dependencies.
func NewGetRateCardUseCase(
	rateRepo port.RateCardRepository,
	profileRepo port.CustomerProfileRepository,
	resolver *service.RateResolver,
) *GetRateCardUseCase {
	return &GetRateCardUseCase{
		rateRepo:    rateRepo,
		profileRepo: profileRepo,
		resolver:    resolver,
	}
}

// Execute resolves and returns the applicable rate card.
func (uc *GetRateCardUseCase) Execute(
	ctx context.Context,
	req dto.GetRateCardRequest,
) (dto.RateCardResponse, error) {
	kind, err := valueobject.NewTransactionKind(req.TransactionKind)
	if err != nil {
		return dto.RateCardResponse{}, fmt.Errorf("parse transaction kind: %w", err)
	}

	profile, err := uc.profileRepo.FindByAccountID(ctx, req.AccountID)
	if err != nil {
		return dto.RateCardResponse{}, fmt.Errorf("fetch customer profile: %w", err)
	}

	repeat, err := uc.rateRepo.FindRepeat(ctx, req.AccountID, kind)
	if err != nil {
		return dto.RateCardResponse{}, fmt.Errorf("fetch repeat rate card: %w", err)
	}
	base, err := uc.rateRepo.FindBase(ctx, req.ProductLineID, kind)
	if err != nil {
		return dto.RateCardResponse{}, fmt.Errorf("fetch rate card: %w", err)
	}

	resolved, err := uc.resolver.Resolve(repeat, base, profile)
	if err != nil {
		return dto.RateCardResponse{}, fmt.Errorf("resolve rate: %w", err)
	}

	return dto.RateCardResponse{
		ProductLineID:       resolved.ProductLineID,
		MonthlyInterestRate: resolved.MonthlyInterestRate,
		ProvisionRate:       resolved.ProvisionRate,
		CashbackRate:        resolved.CashbackRate,
		MinTenure:           resolved.MinTenure,
		MaxTenure:           resolved.MaxTenure,
		FromRepeat:          resolved.FromRepeat,
	}, nil
}
