package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gobudget/internal/domain"
	"github.com/iho/gobudget/internal/infrastructure/metrics"
)

// TransferUseCase orchestrates moving money between two accounts of the same
// group. It is the only component that touches two Account aggregates and
// one Transfer aggregate in a single unit of work: the transfer record and
// both balance mutations commit together or not at all.
type TransferUseCase struct {
	txManager    TransactionManager
	accountRepo  AccountRepository
	transferRepo TransferRepository
	groups       GroupResolver
	idGen        IDGenerator
	cache        Cache
	metrics      *metrics.Metrics
}

// NewTransferUseCase creates a new TransferUseCase. The cache and metrics are
// optional.
func NewTransferUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	transferRepo TransferRepository,
	groups GroupResolver,
	idGen IDGenerator,
	cache Cache,
	m *metrics.Metrics,
) *TransferUseCase {
	return &TransferUseCase{
		txManager:    txManager,
		accountRepo:  accountRepo,
		transferRepo: transferRepo,
		groups:       groups,
		idGen:        idGen,
		cache:        cache,
		metrics:      m,
	}
}

// CreateTransferInput represents input for creating a transfer. The caller
// supplies magnitudes only; each amount is denominated in the owning
// account's currency. A nil TargetAmount defaults to the source magnitude.
type CreateTransferInput struct {
	UserID          string
	SourceAccountID string
	TargetAccountID string
	SourceAmount    decimal.Decimal
	TargetAmount    *decimal.Decimal
	Description     string
}

// CreateTransfer moves money between two accounts atomically, deriving the
// exchange rate from the two amounts when the currencies differ.
func (uc *TransferUseCase) CreateTransfer(ctx context.Context, input CreateTransferInput) (domain.Transfer, error) {
	transfer, err := uc.createTransfer(ctx, input)
	if err != nil && uc.metrics != nil {
		uc.metrics.TransferErrors.WithLabelValues(transferErrorType(err)).Inc()
	}

	return transfer, err
}

func (uc *TransferUseCase) createTransfer(ctx context.Context, input CreateTransferInput) (domain.Transfer, error) {
	if input.SourceAccountID == input.TargetAccountID {
		return domain.Transfer{}, domain.ErrSameAccount
	}

	groupID, err := uc.groups.Resolve(ctx, input.UserID)
	if err != nil {
		return domain.Transfer{}, err
	}

	// Lock both accounts in sorted order (deadlock prevention).
	ids := []string{input.SourceAccountID, input.TargetAccountID}
	sort.Strings(ids)

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return domain.Transfer{}, err
	}
	defer tx.Rollback(ctx)

	accounts, err := uc.accountRepo.GetByIDsForUpdate(ctx, tx, ids, groupID)
	if err != nil {
		return domain.Transfer{}, err
	}

	if len(accounts) != 2 {
		return domain.Transfer{}, domain.ErrAccountNotFound
	}

	var source, target domain.Account
	for _, account := range accounts {
		switch account.ID {
		case input.SourceAccountID:
			source = account
		case input.TargetAccountID:
			target = account
		}
	}

	if source.ID == "" || target.ID == "" {
		return domain.Transfer{}, domain.ErrAccountNotFound
	}

	// Wrap the magnitudes in each account's own currency.
	sourceAmount, err := domain.NewMoney(input.SourceAmount, source.Balance.Currency())
	if err != nil {
		return domain.Transfer{}, err
	}

	targetMagnitude := input.SourceAmount
	if input.TargetAmount != nil {
		targetMagnitude = *input.TargetAmount
	}

	targetAmount, err := domain.NewMoney(targetMagnitude, target.Balance.Currency())
	if err != nil {
		return domain.Transfer{}, err
	}

	rate, err := uc.determineRate(sourceAmount, targetAmount)
	if err != nil {
		return domain.Transfer{}, err
	}

	now := time.Now().UTC()
	audit := domain.NewAuditInfo(input.UserID, groupID, now)

	transfer, err := domain.NewTransfer(
		uc.idGen.Generate(),
		source.ID, target.ID,
		sourceAmount, targetAmount,
		rate,
		input.Description,
		audit,
	)
	if err != nil {
		return domain.Transfer{}, err
	}

	if err := uc.transferRepo.Create(ctx, tx, transfer); err != nil {
		return domain.Transfer{}, err
	}

	source, err = source.Withdraw(sourceAmount, audit)
	if err != nil {
		return domain.Transfer{}, err
	}

	if err := uc.accountRepo.Update(ctx, tx, source); err != nil {
		uc.recordConflict(err)
		return domain.Transfer{}, err
	}

	target, err = target.Deposit(targetAmount, audit)
	if err != nil {
		return domain.Transfer{}, err
	}

	if err := uc.accountRepo.Update(ctx, tx, target); err != nil {
		uc.recordConflict(err)
		return domain.Transfer{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Transfer{}, err
	}

	uc.invalidateAccounts(ctx, source.ID, target.ID)

	if uc.metrics != nil {
		uc.metrics.TransfersCreated.Inc()
		uc.metrics.TransferDuration.Observe(time.Since(now).Seconds())
	}

	return transfer, nil
}

func transferErrorType(err error) string {
	switch {
	case errors.Is(err, domain.ErrSameAccount):
		return "same_account"
	case errors.Is(err, domain.ErrAccountNotFound):
		return "account_not_found"
	case errors.Is(err, domain.ErrVersionConflict):
		return "version_conflict"
	case errors.Is(err, domain.ErrInvalidExchangeRate):
		return "invalid_exchange_rate"
	case errors.Is(err, domain.ErrCurrencyMismatch):
		return "currency_mismatch"
	case errors.Is(err, domain.ErrInvalidDescription):
		return "invalid_description"
	case errors.Is(err, domain.ErrInvalidCurrency):
		return "invalid_currency"
	default:
		return "internal"
	}
}

func (uc *TransferUseCase) recordConflict(err error) {
	if uc.metrics != nil && errors.Is(err, domain.ErrVersionConflict) {
		uc.metrics.VersionConflicts.Inc()
	}
}

// determineRate picks the identity rate for same-currency transfers and the
// derived rate otherwise.
func (uc *TransferUseCase) determineRate(source, target domain.Money) (domain.ExchangeRate, error) {
	if source.Currency() == target.Currency() {
		return domain.IdentityRate(source.Currency()), nil
	}

	return domain.CalculateRate(source, target)
}

// GetTransfer retrieves a transfer scoped to the caller's group.
func (uc *TransferUseCase) GetTransfer(ctx context.Context, userID, transferID string) (domain.Transfer, error) {
	groupID, err := uc.groups.Resolve(ctx, userID)
	if err != nil {
		return domain.Transfer{}, err
	}

	return uc.transferRepo.GetByID(ctx, transferID, groupID)
}

// ListTransfersInput represents input for listing transfers.
type ListTransfersInput struct {
	UserID string
	Limit  int
	Offset int
}

// ListTransfers lists the transfers of the caller's group.
func (uc *TransferUseCase) ListTransfers(ctx context.Context, input ListTransfersInput) ([]domain.Transfer, error) {
	groupID, err := uc.groups.Resolve(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Limit <= 0 {
		input.Limit = defaultPageSize
	}

	if input.Limit > maxPageSize {
		input.Limit = maxPageSize
	}

	return uc.transferRepo.List(ctx, groupID, input.Limit, input.Offset)
}

func (uc *TransferUseCase) invalidateAccounts(ctx context.Context, ids ...string) {
	if uc.cache == nil {
		return
	}

	for _, id := range ids {
		_ = uc.cache.Delete(ctx, accountCacheKeyPrefix+id)
	}
}
