package event

import (
	"github.com/shopspring/decimal"

	"github.com/sajinavi2006/julomvp-sub044/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

// ---------------------------------------------------------------------------
// Quote events
// ---------------------------------------------------------------------------

// QuoteGenerated is raised when a pricing request produced at least one
// loan offer.
type QuoteGenerated struct {
	events.BaseEvent
	AccountID        string          `json:"account_id"`
	TransactionKind  string          `json:"transaction_kind"`
	RequestedAmount  decimal.Decimal `json:"requested_amount"`
	OfferCount       int             `json:"offer_count"`
	DefaultDuration  int             `json:"default_duration"`
	UsedFallbackWalk bool            `json:"used_fallback_walk"`
}

// NewQuoteGenerated builds a QuoteGenerated event.
func NewQuoteGenerated(
	tenantID, accountID, transactionKind string,
	requestedAmount decimal.Decimal,
	offerCount, defaultDuration int,
	usedFallbackWalk bool,
) QuoteGenerated {
	return QuoteGenerated{
		BaseEvent:        events.NewBaseEvent("pricing.quote.generated", accountID, "LoanQuote", tenantID),
		AccountID:        accountID,
		TransactionKind:  transactionKind,
		RequestedAmount:  requestedAmount,
		OfferCount:       offerCount,
		DefaultDuration:  defaultDuration,
		UsedFallbackWalk: usedFallbackWalk,
	}
}

// QuoteRejected is raised when no duration survived the limit and DBR
// gates, or when no rate card matched.
type QuoteRejected struct {
	events.BaseEvent
	AccountID       string          `json:"account_id"`
	TransactionKind string          `json:"transaction_kind"`
	RequestedAmount decimal.Decimal `json:"requested_amount"`
	Reason          string          `json:"reason"`
}

// NewQuoteRejected builds a QuoteRejected event.
func NewQuoteRejected(
	tenantID, accountID, transactionKind string,
	requestedAmount decimal.Decimal,
	reason string,
) QuoteRejected {
	return QuoteRejected{
		BaseEvent:       events.NewBaseEvent("pricing.quote.rejected", accountID, "LoanQuote", tenantID),
		AccountID:       accountID,
		TransactionKind: transactionKind,
		RequestedAmount: requestedAmount,
		Reason:          reason,
	}
}
