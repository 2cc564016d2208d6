package port

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/sajinavi2006/julomvp-sub044/internal/domain/event"
	"github.com/sajinavi2006/julomvp-sub044/internal/domain/model"
	"github.com/sajinavi2006/julomvp-sub044/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// RateCardRepository fetches credit matrix rows. A nil row with a nil error
// means "no matching row"; the resolver decides whether that is fatal.
type RateCardRepository interface {
	FindBase(ctx context.Context, productLineID int64, kind valueobject.TransactionKind) (*model.RateCard, error)
	FindRepeat(ctx context.Context, accountID string, kind valueobject.TransactionKind) (*model.RepeatRateCard, error)
}

// AccountLimitRepository reads the account's credit limit snapshot.
type AccountLimitRepository interface {
	Snapshot(ctx context.Context, accountID string) (model.AccountLimitSnapshot, error)
}

// CustomerProfileRepository reads the attributes credit matrix resolution
// keys on.
type CustomerProfileRepository interface {
	FindByAccountID(ctx context.Context, accountID string) (model.CustomerProfile, error)
}

// DBRSettingRepository reads the debt-burden-ratio configuration for an
// account.
type DBRSettingRepository interface {
	FindByAccountID(ctx context.Context, accountID string) (model.DBRSetting, error)
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}

// ---------------------------------------------------------------------------
// External quote ports
// ---------------------------------------------------------------------------

// InsuranceQuoter fetches a device-protection premium quote. Called once
// per pricing request, never per duration.
type InsuranceQuoter interface {
	Quote(ctx context.Context, accountID string, requestedAmount decimal.Decimal) (model.InsuranceQuote, error)
}

// DelayedDisbursementQuoter fetches the delayed-disbursement cover premium.
// Called once per pricing request, never per duration.
type DelayedDisbursementQuoter interface {
	Quote(ctx context.Context, requestedAmount decimal.Decimal, productLineID int64) (model.DelayedDisbursementQuote, error)
}
