package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/gobudget/internal/domain"
	"github.com/iho/gobudget/internal/infrastructure/postgres/generated"
	"github.com/iho/gobudget/internal/usecase"
)

// TransferRepository implements usecase.TransferRepository.
type TransferRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewTransferRepository creates a new TransferRepository.
func NewTransferRepository(pool *pgxpool.Pool) *TransferRepository {
	return &TransferRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create inserts a transfer inside the orchestrating transaction.
func (r *TransferRepository) Create(ctx context.Context, tx usecase.Transaction, transfer domain.Transfer) error {
	queries := r.queries.WithTx(tx.(*Tx).PgxTx())

	return queries.CreateTransfer(ctx, generated.CreateTransferParams{
		ID:              transfer.ID,
		GroupID:         transfer.GroupID(),
		SourceAccountID: transfer.SourceAccountID,
		TargetAccountID: transfer.TargetAccountID,
		SourceAmount:    decimalToNumeric(transfer.SourceAmount.Amount()),
		SourceCurrency:  transfer.SourceAmount.Currency().String(),
		TargetAmount:    decimalToNumeric(transfer.TargetAmount.Amount()),
		TargetCurrency:  transfer.TargetAmount.Currency().String(),
		Rate:            decimalToNumeric(transfer.Rate.Rate()),
		Description:     transfer.Description,
		CreatedBy:       transfer.CreatedInfo.UserID,
		CreatedAt:       timeToPgTimestamptz(transfer.CreatedInfo.At),
		UpdatedBy:       transfer.UpdatedInfo.UserID,
		UpdatedGroup:    transfer.UpdatedInfo.GroupID,
		UpdatedAt:       timeToPgTimestamptz(transfer.UpdatedInfo.At),
		Deleted:         transfer.Tombstone.Deleted,
		DeletedAt:       timePtrToPgTimestamptz(transfer.Tombstone.DeletedAt),
	})
}

// GetByID retrieves a transfer scoped to a group.
func (r *TransferRepository) GetByID(ctx context.Context, id, groupID string) (domain.Transfer, error) {
	row, err := r.queries.GetTransferByID(ctx, generated.GetTransferByIDParams{ID: id, GroupID: groupID})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Transfer{}, domain.ErrTransferNotFound
		}

		return domain.Transfer{}, err
	}

	return rowToTransfer(row)
}

// List lists a group's transfers, newest first.
func (r *TransferRepository) List(ctx context.Context, groupID string, limit, offset int) ([]domain.Transfer, error) {
	rows, err := r.queries.ListTransfers(ctx, generated.ListTransfersParams{
		GroupID: groupID,
		Limit:   int32(limit),
		Offset:  int32(offset),
	})
	if err != nil {
		return nil, err
	}

	transfers := make([]domain.Transfer, 0, len(rows))
	for _, row := range rows {
		transfer, err := rowToTransfer(row)
		if err != nil {
			return nil, err
		}

		transfers = append(transfers, transfer)
	}

	return transfers, nil
}

// ExistsForAccount reports whether any non-deleted transfer references the
// account on either side.
func (r *TransferRepository) ExistsForAccount(ctx context.Context, accountID string) (bool, error) {
	count, err := r.queries.CountTransfersForAccount(ctx, accountID)
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func rowToTransfer(row generated.Transfer) (domain.Transfer, error) {
	sourceCurrency, err := domain.ParseCurrency(row.SourceCurrency)
	if err != nil {
		return domain.Transfer{}, err
	}

	targetCurrency, err := domain.ParseCurrency(row.TargetCurrency)
	if err != nil {
		return domain.Transfer{}, err
	}

	sourceAmount, err := domain.NewMoney(numericToDecimal(row.SourceAmount), sourceCurrency)
	if err != nil {
		return domain.Transfer{}, err
	}

	targetAmount, err := domain.NewMoney(numericToDecimal(row.TargetAmount), targetCurrency)
	if err != nil {
		return domain.Transfer{}, err
	}

	rate, err := domain.NewExchangeRate(numericToDecimal(row.Rate), sourceCurrency, targetCurrency)
	if err != nil {
		return domain.Transfer{}, err
	}

	return domain.Transfer{
		ID:              row.ID,
		SourceAccountID: row.SourceAccountID,
		TargetAccountID: row.TargetAccountID,
		SourceAmount:    sourceAmount,
		TargetAmount:    targetAmount,
		Rate:            rate,
		Description:     row.Description,
		CreatedInfo:     domain.NewAuditInfo(row.CreatedBy, row.GroupID, row.CreatedAt.Time),
		UpdatedInfo:     domain.NewAuditInfo(row.UpdatedBy, row.UpdatedGroup, row.UpdatedAt.Time),
		Tombstone:       rowToTombstone(row.Deleted, row.DeletedAt),
	}, nil
}
