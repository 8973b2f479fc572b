package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/iho/gobudget/internal/domain"
	"github.com/iho/gobudget/internal/infrastructure/postgres/generated"
	"github.com/iho/gobudget/internal/usecase"
)

// AccountRepository implements usecase.AccountRepository.
type AccountRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create inserts a new account.
func (r *AccountRepository) Create(ctx context.Context, account domain.Account) error {
	return r.queries.CreateAccount(ctx, generated.CreateAccountParams{
		ID:           account.ID,
		GroupID:      account.GroupID(),
		Name:         account.Name,
		Currency:     account.Balance.Currency().String(),
		Balance:      decimalToNumeric(account.Balance.Amount()),
		Version:      account.Version,
		CreatedBy:    account.CreatedInfo.UserID,
		CreatedAt:    timeToPgTimestamptz(account.CreatedInfo.At),
		UpdatedBy:    account.UpdatedInfo.UserID,
		UpdatedGroup: account.UpdatedInfo.GroupID,
		UpdatedAt:    timeToPgTimestamptz(account.UpdatedInfo.At),
		Deleted:      account.Tombstone.Deleted,
		DeletedAt:    timePtrToPgTimestamptz(account.Tombstone.DeletedAt),
	})
}

// GetByID retrieves a non-deleted account scoped to a group.
func (r *AccountRepository) GetByID(ctx context.Context, id, groupID string) (domain.Account, error) {
	row, err := r.queries.GetAccountByID(ctx, generated.GetAccountByIDParams{ID: id, GroupID: groupID})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Account{}, domain.ErrAccountNotFound
		}

		return domain.Account{}, err
	}

	return rowToAccount(row)
}

// GetByIDIncludingDeleted retrieves an account regardless of its tombstone.
func (r *AccountRepository) GetByIDIncludingDeleted(ctx context.Context, id, groupID string) (domain.Account, error) {
	row, err := r.queries.GetAccountByIDIncludingDeleted(ctx, generated.GetAccountByIDIncludingDeletedParams{ID: id, GroupID: groupID})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Account{}, domain.ErrAccountNotFound
		}

		return domain.Account{}, err
	}

	return rowToAccount(row)
}

// GetByNameAndCurrency retrieves a non-deleted account by its unique
// name+currency pair within a group.
func (r *AccountRepository) GetByNameAndCurrency(ctx context.Context, name string, currency domain.Currency, groupID string) (domain.Account, error) {
	row, err := r.queries.GetAccountByNameAndCurrency(ctx, generated.GetAccountByNameAndCurrencyParams{
		Name:     name,
		Currency: currency.String(),
		GroupID:  groupID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Account{}, domain.ErrAccountNotFound
		}

		return domain.Account{}, err
	}

	return rowToAccount(row)
}

// GetByIDsForUpdate retrieves accounts with FOR UPDATE row locks, in
// ascending id order.
func (r *AccountRepository) GetByIDsForUpdate(ctx context.Context, tx usecase.Transaction, ids []string, groupID string) ([]domain.Account, error) {
	queries := r.queries.WithTx(tx.(*Tx).PgxTx())

	rows, err := queries.GetAccountsByIDsForUpdate(ctx, generated.GetAccountsByIDsForUpdateParams{
		Ids:     ids,
		GroupID: groupID,
	})
	if err != nil {
		return nil, err
	}

	accounts := make([]domain.Account, 0, len(rows))
	for _, row := range rows {
		account, err := rowToAccount(row)
		if err != nil {
			return nil, err
		}

		accounts = append(accounts, account)
	}

	return accounts, nil
}

// Update writes the mutable fields of an account. The write is version
// checked: no row is touched when the version moved since the read, and the
// conflict is surfaced for the caller to retry.
func (r *AccountRepository) Update(ctx context.Context, tx usecase.Transaction, account domain.Account) error {
	queries := r.queries.WithTx(tx.(*Tx).PgxTx())

	affected, err := queries.UpdateAccount(ctx, generated.UpdateAccountParams{
		Name:         account.Name,
		Balance:      decimalToNumeric(account.Balance.Amount()),
		UpdatedBy:    account.UpdatedInfo.UserID,
		UpdatedGroup: account.UpdatedInfo.GroupID,
		UpdatedAt:    timeToPgTimestamptz(account.UpdatedInfo.At),
		Deleted:      account.Tombstone.Deleted,
		DeletedAt:    timePtrToPgTimestamptz(account.Tombstone.DeletedAt),
		ID:           account.ID,
		Version:      account.Version,
	})
	if err != nil {
		return err
	}

	if affected == 0 {
		return domain.ErrVersionConflict
	}

	return nil
}

// List lists a group's accounts, optionally including tombstoned ones.
func (r *AccountRepository) List(ctx context.Context, groupID string, includeDeleted bool) ([]domain.Account, error) {
	rows, err := r.queries.ListAccounts(ctx, generated.ListAccountsParams{
		GroupID:        groupID,
		IncludeDeleted: includeDeleted,
	})
	if err != nil {
		return nil, err
	}

	accounts := make([]domain.Account, 0, len(rows))
	for _, row := range rows {
		account, err := rowToAccount(row)
		if err != nil {
			return nil, err
		}

		accounts = append(accounts, account)
	}

	return accounts, nil
}

// HardDelete physically removes an account row. Test and migration paths
// only; normal deletion is tombstoning.
func (r *AccountRepository) HardDelete(ctx context.Context, id string) error {
	return r.queries.DeleteAccount(ctx, id)
}

func rowToAccount(row generated.Account) (domain.Account, error) {
	currency, err := domain.ParseCurrency(row.Currency)
	if err != nil {
		return domain.Account{}, err
	}

	balance, err := domain.NewMoney(numericToDecimal(row.Balance), currency)
	if err != nil {
		return domain.Account{}, err
	}

	return domain.Account{
		ID:          row.ID,
		Name:        row.Name,
		Balance:     balance,
		Version:     row.Version,
		CreatedInfo: domain.NewAuditInfo(row.CreatedBy, row.GroupID, row.CreatedAt.Time),
		UpdatedInfo: domain.NewAuditInfo(row.UpdatedBy, row.UpdatedGroup, row.UpdatedAt.Time),
		Tombstone:   rowToTombstone(row.Deleted, row.DeletedAt),
	}, nil
}

func rowToTombstone(deleted bool, deletedAt pgtype.Timestamptz) domain.Tombstone {
	if !deleted {
		return domain.ActiveTombstone()
	}

	return domain.DeletedTombstone(deletedAt.Time)
}

// Type conversion helpers.
func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}

func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func timePtrToPgTimestamptz(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{}
	}

	return pgtype.Timestamptz{Time: *t, Valid: true}
}
