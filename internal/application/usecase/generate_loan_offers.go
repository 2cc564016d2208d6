package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sajinavi2006/julomvp-sub044/internal/application/dto"
	"github.com/sajinavi2006/julomvp-sub044/internal/domain/event"
	"github.com/sajinavi2006/julomvp-sub044/internal/domain/model"
	"github.com/sajinavi2006/julomvp-sub044/internal/domain/port"
	"github.com/sajinavi2006/julomvp-sub044/internal/domain/service"
	"github.com/sajinavi2006/julomvp-sub044/internal/domain/valueobject"
	"github.com/sajinavi2006/julomvp-sub044/pkg/observability"
)

// GenerateLoanOffersUseCase orchestrates one pricing request: it gathers the
// rate rows, limit snapshot, DBR setting, and external premium quotes, then
// runs the calculation engine and publishes the outcome.
type GenerateLoanOffersUseCase struct {
	rateRepo    port.RateCardRepository
	limitRepo   port.AccountLimitRepository
	profileRepo port.CustomerProfileRepository
	dbrRepo     port.DBRSettingRepository
	insurance   port.InsuranceQuoter
	delayedDisb port.DelayedDisbursementQuoter
	publisher   port.EventPublisher
	resolver    *service.RateResolver
	assembler   *service.OfferAssembler
	config      model.PricingConfig
	logger      *slog.Logger
}

// NewGenerateLoanOffersUseCase wires dependencies.
func NewGenerateLoanOffersUseCase(
	rateRepo port.RateCardRepository,
	limitRepo port.AccountLimitRepository,
	profileRepo port.CustomerProfileRepository,
	dbrRepo port.DBRSettingRepository,
	insurance port.InsuranceQuoter,
	delayedDisb port.DelayedDisbursementQuoter,
	publisher port.EventPublisher,
	resolver *service.RateResolver,
	assembler *service.OfferAssembler,
	config model.PricingConfig,
	logger *slog.Logger,
) *GenerateLoanOffersUseCase {
	return &GenerateLoanOffersUseCase{
		rateRepo:    rateRepo,
		limitRepo:   limitRepo,
		profileRepo: profileRepo,
		dbrRepo:     dbrRepo,
		insurance:   insurance,
		delayedDisb: delayedDisb,
		publisher:   publisher,
		resolver:    resolver,
		assembler:   assembler,
		config:      config,
		logger:      logger,
	}
}

// Execute prices the requested transaction and returns the ordered offers.
func (uc *GenerateLoanOffersUseCase) Execute(
	ctx context.Context,
	req dto.GenerateOffersRequest,
) (dto.GenerateOffersResponse, error) {
	kind, err := valueobject.NewTransactionKind(req.TransactionKind)
	if err != nil {
		return dto.GenerateOffersResponse{}, fmt.Errorf("parse transaction kind: %w", err)
	}

	// 1. Customer profile drives matrix resolution.
	profile, err := uc.profileRepo.FindByAccountID(ctx, req.AccountID)
	if err != nil {
		return dto.GenerateOffersResponse{}, fmt.Errorf("fetch customer profile: %w", err)
	}

	// 2. Fetch both matrix rows; the resolver decides which one applies.
	repeat, err := uc.rateRepo.FindRepeat(ctx, req.AccountID, kind)
	if err != nil {
		return dto.GenerateOffersResponse{}, fmt.Errorf("fetch repeat rate card: %w", err)
	}
	base, err := uc.rateRepo.FindBase(ctx, req.ProductLineID, kind)
	if err != nil {
		return dto.GenerateOffersResponse{}, fmt.Errorf("fetch rate card: %w", err)
	}

	resolved, err := uc.resolver.Resolve(repeat, base, profile)
	if err != nil {
		if errors.Is(err, model.ErrRateNotFound) {
			uc.reject(ctx, req, kind, "rate_not_found")
		}
		return dto.GenerateOffersResponse{}, fmt.Errorf("resolve rate: %w", err)
	}

	// 3. Read-only snapshots for the lifetime of this calculation.
	limit, err := uc.limitRepo.Snapshot(ctx, req.AccountID)
	if err != nil {
		return dto.GenerateOffersResponse{}, fmt.Errorf("fetch account limit: %w", err)
	}
	dbrSetting, err := uc.dbrRepo.FindByAccountID(ctx, req.AccountID)
	if err != nil {
		return dto.GenerateOffersResponse{}, fmt.Errorf("fetch dbr setting: %w", err)
	}

	// 4. External quotes, once per request.
	insuranceQuote := model.InsuranceQuote{}
	if req.WantInsurance {
		insuranceQuote, err = uc.insurance.Quote(ctx, req.AccountID, req.RequestedAmount)
		if err != nil {
			return dto.GenerateOffersResponse{}, fmt.Errorf("fetch insurance quote: %w", err)
		}
	}
	ddQuote, err := uc.delayedDisb.Quote(ctx, req.RequestedAmount, req.ProductLineID)
	if err != nil {
		return dto.GenerateOffersResponse{}, fmt.Errorf("fetch delayed disbursement quote: %w", err)
	}

	// 5. Run the engine.
	result, err := uc.assembler.Assemble(service.AssembleInput{
		Request: model.QuoteRequest{
			TenantID:         req.TenantID,
			AccountID:        req.AccountID,
			TransactionKind:  kind,
			RequestedAmount:  req.RequestedAmount,
			DisbursementDate: req.DisbursementDate,
			FirstPaymentDate: req.FirstPaymentDate,
			WantZeroInterest: req.WantZeroInterest,
			WantInsurance:    req.WantInsurance,
			ShowSavingAmount: req.ShowSavingAmount,
		},
		Rate:                resolved,
		Limit:               limit,
		DBR:                 dbrSetting,
		Insurance:           insuranceQuote,
		DelayedDisbursement: ddQuote,
		Config:              uc.config,
	})
	if err != nil {
		if errors.Is(err, model.ErrNoOffersAvailable) {
			uc.reject(ctx, req, kind, "no_surviving_duration")
		}
		return dto.GenerateOffersResponse{}, fmt.Errorf("assemble offers: %w", err)
	}

	// 6. Observability and the generated event.
	observability.QuotesGenerated.WithLabelValues(kind.String()).Inc()
	if result.UsedFallbackWalk {
		observability.DBRFallbackWalks.Inc()
	}
	for _, offer := range result.Offers {
		if offer.FeeCapAdjusted {
			observability.FeeCapAdjustments.Inc()
		}
	}

	generated := event.NewQuoteGenerated(
		req.TenantID, req.AccountID, kind.String(),
		req.RequestedAmount,
		len(result.Offers),
		result.Offers[result.DefaultIndex].Duration,
		result.UsedFallbackWalk,
	)
	if err := uc.publisher.Publish(ctx, generated); err != nil {
		// The quote itself is valid; a publish failure must not fail it.
		uc.logger.WarnContext(ctx, "failed to publish quote event",
			"account_id", req.AccountID, "error", err)
	}

	return toOffersResponse(result), nil
}

// reject publishes the rejection event and counts it. Best effort.
func (uc *GenerateLoanOffersUseCase) reject(
	ctx context.Context,
	req dto.GenerateOffersRequest,
	kind valueobject.TransactionKind,
	reason string,
) {
	observability.QuotesRejected.WithLabelValues(reason).Inc()
	evt := event.NewQuoteRejected(req.TenantID, req.AccountID, kind.String(), req.RequestedAmount, reason)
	if err := uc.publisher.Publish(ctx, evt); err != nil {
		uc.logger.WarnContext(ctx, "failed to publish rejection event",
			"account_id", req.AccountID, "error", err)
	}
}

func toOffersResponse(result service.AssembleResult) dto.GenerateOffersResponse {
	offers := make([]dto.LoanOfferResponse, 0, len(result.Offers))
	for _, o := range result.Offers {
		offers = append(offers, dto.LoanOfferResponse{
			Token:                      o.Token,
			Duration:                   o.Duration,
			MonthlyInterestRate:        o.MonthlyInterestRate,
			ProvisionRate:              o.ProvisionRate,
			LoanAmount:                 o.LoanAmount,
			ProvisionFee:               o.ProvisionFee,
			DisbursementAmount:         o.DisbursementAmount,
			InsurancePremium:           o.InsurancePremium,
			DelayedDisbursementPremium: o.DelayedDisbursementPremium,
			Tax:                        o.Tax,
			Cashback:                   o.Cashback,
			MonthlyInstallment:         o.MonthlyInstallment,
			FirstInstallment:           o.FirstInstallment,
			AvailableLimitAfter:        o.AvailableLimitAfter,
			SavingAmount:               o.SavingAmount,
			FeeCapAdjusted:             o.FeeCapAdjusted,
			ZeroInterestApplied:        o.ZeroInterestApplied,
		})
	}
	return dto.GenerateOffersResponse{
		Offers:       offers,
		DefaultIndex: result.DefaultIndex,
	}
}
