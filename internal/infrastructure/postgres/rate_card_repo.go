package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sajinavi2006/julomvp-sub044/internal/domain/model"
	"github.com/sajinavi2006/julomvp-sub044/internal/domain/valueobject"
	pkgpostgres "github.com/sajinavi2006/julomvp-sub044/pkg/postgres"
)

// RateCardRepo implements port.RateCardRepository against the versioned
// credit matrix tables. Rows referenced by an issued loan are immutable;
// re-pricing happens by inserting a higher version, so lookups always take
// the newest active row.
type RateCardRepo struct {
	pool *pgxpool.Pool
}

// NewRateCardRepo creates a PostgreSQL-backed rate card repository.
func NewRateCardRepo(pool *pgxpool.Pool) *RateCardRepo {
	return &RateCardRepo{pool: pool}
}

// FindBase returns the newest active base matrix row for the product line
// and transaction kind, or nil when none matches.
func (r *RateCardRepo) FindBase(
	ctx context.Context,
	productLineID int64,
	kind valueobject.TransactionKind,
) (*model.RateCard, error) {
	query := `
		SELECT product_line_id, monthly_interest_rate, provision_rate,
		       cashback_rate, min_tenure, max_tenure
		FROM credit_matrix
		WHERE product_line_id = $1 AND transaction_kind = $2 AND active
		ORDER BY version DESC
		LIMIT 1
	`
	var card model.RateCard
	err := r.pool.QueryRow(ctx, query, productLineID, kind.String()).Scan(
		&card.ProductLineID, &card.MonthlyInterestRate, &card.ProvisionRate,
		&card.CashbackRate, &card.MinTenure, &card.MaxTenure,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query credit matrix: %w", err)
	}
	return &card, nil
}

// FindRepeat returns the newest active repeat matrix row in scope for the
// account's customer segment, or nil when none matches. The repeat row and
// its tenor pricing bounds are read in one transaction so the pair always
// comes from the same snapshot.
func (r *RateCardRepo) FindRepeat(
	ctx context.Context,
	accountID string,
	kind valueobject.TransactionKind,
) (*model.RepeatRateCard, error) {
	query := `
		SELECT m.id, m.product_line_id, m.monthly_interest_rate, m.provision_rate,
		       m.cashback_rate, m.min_tenure, m.max_tenure,
		       m.customer_segment, m.partner_id, m.show_tenure_limit
		FROM credit_matrix_repeat m
		JOIN customer_profiles p
		  ON (m.customer_segment = p.customer_segment OR m.customer_segment = '')
		WHERE p.account_id = $1 AND m.transaction_kind = $2 AND m.active
		ORDER BY m.customer_segment DESC, m.version DESC
		LIMIT 1
	`
	var card *model.RepeatRateCard
	err := pkgpostgres.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		var (
			rowID int64
			row   model.RepeatRateCard
		)
		err := tx.QueryRow(ctx, query, accountID, kind.String()).Scan(
			&rowID, &row.ProductLineID, &row.MonthlyInterestRate, &row.ProvisionRate,
			&row.CashbackRate, &row.MinTenure, &row.MaxTenure,
			&row.CustomerSegment, &row.PartnerID, &row.ShowTenureLimit,
		)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("query repeat credit matrix: %w", err)
		}

		pricing, err := loadTenorPricing(ctx, tx, rowID)
		if err != nil {
			return err
		}
		row.TenorPricing = pricing
		card = &row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return card, nil
}

func loadTenorPricing(ctx context.Context, q pkgpostgres.Querier, repeatID int64) ([]model.TenorPricing, error) {
	query := `
		SELECT tenor, min_pricing, threshold
		FROM repeat_tenor_pricing
		WHERE repeat_matrix_id = $1
		ORDER BY tenor
	`
	rows, err := q.Query(ctx, query, repeatID)
	if err != nil {
		return nil, fmt.Errorf("query tenor pricing: %w", err)
	}
	defer rows.Close()

	var pricing []model.TenorPricing
	for rows.Next() {
		var tp model.TenorPricing
		if err := rows.Scan(&tp.Tenor, &tp.MinPricing, &tp.Threshold); err != nil {
			return nil, fmt.Errorf("scan tenor pricing: %w", err)
		}
		pricing = append(pricing, tp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tenor pricing: %w", err)
	}
	return pricing, nil
}
