package grpc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/sajinavi2006/julomvp-sub044/internal/application/dto"
	"github.com/sajinavi2006/julomvp-sub044/internal/application/usecase"
	"github.com/sajinavi2006/julomvp-sub044/internal/domain/model"
)

const dateLayout = "2006-01-02"

// PricingHandler implements the gRPC pricing service handler.
type PricingHandler struct {
	UnimplementedPricingServiceServer

	generateOffers *usecase.GenerateLoanOffersUseCase
	getRateCard    *usecase.GetRateCardUseCase
}

// NewPricingHandler creates a new gRPC pricing handler.
func NewPricingHandler(
	generateOffers *usecase.GenerateLoanOffersUseCase,
	getRateCard *usecase.GetRateCardUseCase,
) *PricingHandler {
	return &PricingHandler{
		generateOffers: generateOffers,
		getRateCard:    getRateCard,
	}
}

// GenerateOffersRequest represents the gRPC request for generating loan offers.
type GenerateOffersRequest struct {
	TenantID         string `json:"tenant_id"`
	AccountID        string `json:"account_id"`
	ProductLineID    int64  `json:"product_line_id"`
	TransactionKind  string `json:"transaction_kind"`
	RequestedAmount  string `json:"requested_amount"`
	DisbursementDate string `json:"disbursement_date"`
	FirstPaymentDate string `json:"first_payment_date"`
	WantZeroInterest bool   `json:"want_zero_interest"`
	WantInsurance    bool   `json:"want_insurance"`
	ShowSavingAmount bool   `json:"show_saving_amount"`
}

// LoanOffer represents one priced tenure choice on the wire.
type LoanOffer struct {
	Token                      string `json:"token"`
	Duration                   int32  `json:"duration"`
	MonthlyInterestRate        string `json:"monthly_interest_rate"`
	ProvisionRate              string `json:"provision_rate"`
	LoanAmount                 string `json:"loan_amount"`
	ProvisionFee               string `json:"provision_fee"`
	DisbursementAmount         string `json:"disbursement_amount"`
	InsurancePremium           string `json:"insurance_premium"`
	DelayedDisbursementPremium string `json:"delayed_disbursement_premium"`
	Tax                        string `json:"tax"`
	Cashback                   string `json:"cashback"`
	MonthlyInstallment         string `json:"monthly_installment"`
	FirstInstallment           string `json:"first_monthly_installment"`
	AvailableLimitAfter        string `json:"available_limit_after_transaction"`
	SavingAmount               string `json:"saving_amount"`
	FeeCapAdjusted             bool   `json:"fee_cap_adjusted"`
	ZeroInterestApplied        bool   `json:"zero_interest_applied"`
}

// GenerateOffersResponse represents the gRPC response with the ordered offers.
type GenerateOffersResponse struct {
	Offers       []*LoanOffer `json:"offers"`
	DefaultIndex int32        `json:"default_index"`
}

// GetRateCardRequest represents the gRPC request for the applicable rate card.
type GetRateCardRequest struct {
	TenantID        string `json:"tenant_id"`
	AccountID       string `json:"account_id"`
	ProductLineID   int64  `json:"product_line_id"`
	TransactionKind string `json:"transaction_kind"`
}

// GetRateCardResponse represents the gRPC response with the resolved rate card.
type GetRateCardResponse struct {
	ProductLineID       int64  `json:"product_line_id"`
	MonthlyInterestRate string `json:"monthly_interest_rate"`
	ProvisionRate       string `json:"provision_rate"`
	CashbackRate        string `json:"cashback_rate"`
	MinTenure           int32  `json:"min_tenure"`
	MaxTenure           int32  `json:"max_tenure"`
	FromRepeat          bool   `json:"from_repeat"`
}

// GenerateOffers handles the gRPC GenerateOffers request.
func (h *PricingHandler) GenerateOffers(ctx context.Context, req *GenerateOffersRequest) (*GenerateOffersResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	amount, err := decimal.NewFromString(req.RequestedAmount)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("invalid requested_amount: %v", err))
	}
	disbursementDate, err := time.Parse(dateLayout, req.DisbursementDate)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("invalid disbursement_date: %v", err))
	}
	firstPaymentDate, err := time.Parse(dateLayout, req.FirstPaymentDate)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("invalid first_payment_date: %v", err))
	}

	result, err := h.generateOffers.Execute(ctx, dto.GenerateOffersRequest{
		TenantID:         req.TenantID,
		AccountID:        req.AccountID,
		ProductLineID:    req.ProductLineID,
		TransactionKind:  req.TransactionKind,
		RequestedAmount:  amount,
		DisbursementDate: disbursementDate,
		FirstPaymentDate: firstPaymentDate,
		WantZeroInterest: req.WantZeroInterest,
		WantInsurance:    req.WantInsurance,
		ShowSavingAmount: req.ShowSavingAmount,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	offers := make([]*LoanOffer, 0, len(result.Offers))
	for _, o := range result.Offers {
		offers = append(offers, toLoanOffer(o))
	}

	return &GenerateOffersResponse{
		Offers:       offers,
		DefaultIndex: int32(result.DefaultIndex),
	}, nil
}

// GetRateCard handles the gRPC GetRateCard request.
func (h *PricingHandler) GetRateCard(ctx context.Context, req *GetRateCardRequest) (*GetRateCardResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.getRateCard.Execute(ctx, dto.GetRateCardRequest{
		TenantID:        req.TenantID,
		AccountID:       req.AccountID,
		ProductLineID:   req.ProductLineID,
		TransactionKind: req.TransactionKind,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &GetRateCardResponse{
		ProductLineID:       result.ProductLineID,
		MonthlyInterestRate: result.MonthlyInterestRate.String(),
		ProvisionRate:       result.ProvisionRate.String(),
		CashbackRate:        result.CashbackRate.String(),
		MinTenure:           int32(result.MinTenure),
		MaxTenure:           int32(result.MaxTenure),
		FromRepeat:          result.FromRepeat,
	}, nil
}

// toStatusError maps domain sentinels onto gRPC status codes.
func toStatusError(err error) error {
	switch {
	case errors.Is(err, model.ErrRateNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, model.ErrNoOffersAvailable):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func toLoanOffer(o dto.LoanOfferResponse) *LoanOffer {
	return &LoanOffer{
		Token:                      o.Token,
		Duration:                   int32(o.Duration),
		MonthlyInterestRate:        o.MonthlyInterestRate.String(),
		ProvisionRate:              o.ProvisionRate.String(),
		LoanAmount:                 o.LoanAmount.String(),
		ProvisionFee:               o.ProvisionFee.String(),
		DisbursementAmount:         o.DisbursementAmount.String(),
		InsurancePremium:           o.InsurancePremium.String(),
		DelayedDisbursementPremium: o.DelayedDisbursementPremium.String(),
		Tax:                        o.Tax.String(),
		Cashback:                   o.Cashback.String(),
		MonthlyInstallment:         o.MonthlyInstallment.String(),
		FirstInstallment:           o.FirstInstallment.String(),
		AvailableLimitAfter:        o.AvailableLimitAfter.String(),
		SavingAmount:               o.SavingAmount.String(),
		FeeCapAdjusted:             o.FeeCapAdjusted,
		ZeroInterestApplied:        o.ZeroInterestApplied,
	}
}
