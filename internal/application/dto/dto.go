package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Requests
// ---------------------------------------------------------------------------

// GenerateOffersRequest asks for the priced tenure choices for one
// transaction.
type GenerateOffersRequest struct {
	TenantID         string
	AccountID        string
	ProductLineID    int64
	TransactionKind  string
	RequestedAmount  decimal.Decimal
	DisbursementDate time.Time
	FirstPaymentDate time.Time
	WantZeroInterest bool
	WantInsurance    bool
	ShowSavingAmount bool
}

// GetRateCardRequest asks for the rate card that would apply to an account.
type GetRateCardRequest struct {
	TenantID        string
	AccountID       string
	ProductLineID   int64
	TransactionKind string
}

// ---------------------------------------------------------------------------
// Responses
// ---------------------------------------------------------------------------

// LoanOfferResponse is one priced tenure choice.
type LoanOfferResponse struct {
	Token                      string          `json:"token"`
	Duration                   int             `json:"duration"`
	MonthlyInterestRate        decimal.Decimal `json:"monthly_interest_rate"`
	ProvisionRate              decimal.Decimal `json:"provision_rate"`
	LoanAmount                 decimal.Decimal `json:"loan_amount"`
	ProvisionFee               decimal.Decimal `json:"provision_fee"`
	DisbursementAmount         decimal.Decimal `json:"disbursement_amount"`
	InsurancePremium           decimal.Decimal `json:"insurance_premium"`
	DelayedDisbursementPremium decimal.Decimal `json:"delayed_disbursement_premium"`
	Tax                        decimal.Decimal `json:"tax"`
	Cashback                   decimal.Decimal `json:"cashback"`
	MonthlyInstallment         decimal.Decimal `json:"monthly_installment"`
	FirstInstallment           decimal.Decimal `json:"first_monthly_installment"`
	AvailableLimitAfter        decimal.Decimal `json:"available_limit_after_transaction"`
	SavingAmount               decimal.Decimal `json:"saving_amount"`
	FeeCapAdjusted             bool            `json:"fee_cap_adjusted"`
	ZeroInterestApplied        bool            `json:"zero_interest_applied"`
}

// GenerateOffersResponse is the ordered offer list plus the UI pre-select
// index.
type GenerateOffersResponse struct {
	Offers       []LoanOfferResponse `json:"offers"`
	DefaultIndex int                 `json:"default_index"`
}

// RateCardResponse describes the resolved rate card.
type RateCardResponse struct {
	ProductLineID       int64           `json:"product_line_id"`
	MonthlyInterestRate decimal.Decimal `json:"monthly_interest_rate"`
	ProvisionRate       decimal.Decimal `json:"provision_rate"`
	CashbackRate        decimal.Decimal `json:"cashback_rate"`
	MinTenure           int             `json:"min_tenure"`
	MaxTenure           int             `json:"max_tenure"`
	FromRepeat          bool            `json:"from_repeat"`
}
