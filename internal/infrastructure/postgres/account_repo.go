package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sajinavi2006/julomvp-sub044/internal/domain/model"
)

// AccountLimitRepo implements port.AccountLimitRepository.
type AccountLimitRepo struct {
	pool *pgxpool.Pool
}

// NewAccountLimitRepo creates a PostgreSQL-backed account limit repository.
func NewAccountLimitRepo(pool *pgxpool.Pool) *AccountLimitRepo {
	return &AccountLimitRepo{pool: pool}
}

// Snapshot returns the account's current limit. A missing row is an error:
// pricing without a limit snapshot could overcommit the account.
func (r *AccountLimitRepo) Snapshot(ctx context.Context, accountID string) (model.AccountLimitSnapshot, error) {
	query := `
		SELECT available_limit, set_limit
		FROM account_limits
		WHERE account_id = $1
	`
	var snap model.AccountLimitSnapshot
	err := r.pool.QueryRow(ctx, query, accountID).Scan(&snap.AvailableLimit, &snap.SetLimit)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.AccountLimitSnapshot{}, fmt.Errorf("account limit for %s not found", accountID)
	}
	if err != nil {
		return model.AccountLimitSnapshot{}, fmt.Errorf("query account limit: %w", err)
	}
	return snap, nil
}

// CustomerProfileRepo implements port.CustomerProfileRepository.
type CustomerProfileRepo struct {
	pool *pgxpool.Pool
}

// NewCustomerProfileRepo creates a PostgreSQL-backed profile repository.
func NewCustomerProfileRepo(pool *pgxpool.Pool) *CustomerProfileRepo {
	return &CustomerProfileRepo{pool: pool}
}

// FindByAccountID returns the account's matrix-resolution attributes. A
// missing profile resolves as a first-time customer rather than an error.
func (r *CustomerProfileRepo) FindByAccountID(ctx context.Context, accountID string) (model.CustomerProfile, error) {
	query := `
		SELECT account_id, customer_segment, partner_id, is_repeat
		FROM customer_profiles
		WHERE account_id = $1
	`
	var p model.CustomerProfile
	err := r.pool.QueryRow(ctx, query, accountID).Scan(
		&p.AccountID, &p.CustomerSegment, &p.PartnerID, &p.IsRepeatCustomer,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.CustomerProfile{AccountID: accountID}, nil
	}
	if err != nil {
		return model.CustomerProfile{}, fmt.Errorf("query customer profile: %w", err)
	}
	return p, nil
}

// DBRSettingRepo implements port.DBRSettingRepository.
type DBRSettingRepo struct {
	pool *pgxpool.Pool
}

// NewDBRSettingRepo creates a PostgreSQL-backed DBR setting repository.
func NewDBRSettingRepo(pool *pgxpool.Pool) *DBRSettingRepo {
	return &DBRSettingRepo{pool: pool}
}

// FindByAccountID returns the account's DBR configuration. A missing row
// disables the gate for that account.
func (r *DBRSettingRepo) FindByAccountID(ctx context.Context, accountID string) (model.DBRSetting, error) {
	query := `
		SELECT enabled, max_ratio, monthly_income, monthly_obligations
		FROM dbr_settings
		WHERE account_id = $1
	`
	var s model.DBRSetting
	err := r.pool.QueryRow(ctx, query, accountID).Scan(
		&s.Enabled, &s.MaxRatio, &s.MonthlyIncome, &s.MonthlyObligations,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.DBRSetting{}, nil
	}
	if err != nil {
		return model.DBRSetting{}, fmt.Errorf("query dbr setting: %w", err)
	}
	return s, nil
}
