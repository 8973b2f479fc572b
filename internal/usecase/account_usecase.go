package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/iho/gobudget/internal/domain"
	"github.com/iho/gobudget/internal/infrastructure/metrics"
)

// AccountUseCase handles account business logic. Every mutation runs in its
// own unit of work with the account row locked, so concurrent operations on
// the same account serialize instead of losing updates.
type AccountUseCase struct {
	txManager    TransactionManager
	accountRepo  AccountRepository
	transferRepo TransferRepository
	groups       GroupResolver
	idGen        IDGenerator
	cache        Cache
	metrics      *metrics.Metrics
}

// NewAccountUseCase creates a new AccountUseCase. The cache and metrics are
// optional.
func NewAccountUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	transferRepo TransferRepository,
	groups GroupResolver,
	idGen IDGenerator,
	cache Cache,
	m *metrics.Metrics,
) *AccountUseCase {
	return &AccountUseCase{
		txManager:    txManager,
		accountRepo:  accountRepo,
		transferRepo: transferRepo,
		groups:       groups,
		idGen:        idGen,
		cache:        cache,
		metrics:      m,
	}
}

// CreateAccountInput represents input for creating an account.
type CreateAccountInput struct {
	UserID   string
	Name     string
	Currency string
}

// CreateAccount creates a new account with a zero balance in the caller's
// group. A duplicate name within the same currency and group is rejected.
func (uc *AccountUseCase) CreateAccount(ctx context.Context, input CreateAccountInput) (domain.Account, error) {
	groupID, err := uc.groups.Resolve(ctx, input.UserID)
	if err != nil {
		return domain.Account{}, err
	}

	currency, err := domain.ParseCurrency(input.Currency)
	if err != nil {
		return domain.Account{}, err
	}

	_, err = uc.accountRepo.GetByNameAndCurrency(ctx, input.Name, currency, groupID)
	if err == nil {
		return domain.Account{}, domain.ErrAccountAlreadyExists
	}

	if !errors.Is(err, domain.ErrAccountNotFound) {
		return domain.Account{}, err
	}

	now := time.Now().UTC()

	account, err := domain.NewAccount(uc.idGen.Generate(), input.Name, currency, domain.NewAuditInfo(input.UserID, groupID, now))
	if err != nil {
		return domain.Account{}, err
	}

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return domain.Account{}, err
	}

	if uc.metrics != nil {
		uc.metrics.AccountsCreated.Inc()
	}

	return account, nil
}

// GetAccountInput represents input for fetching an account.
type GetAccountInput struct {
	UserID         string
	AccountID      string
	IncludeDeleted bool
}

// GetAccount retrieves an account scoped to the caller's group. Tombstoned
// accounts are only visible when IncludeDeleted is set.
func (uc *AccountUseCase) GetAccount(ctx context.Context, input GetAccountInput) (domain.Account, error) {
	groupID, err := uc.groups.Resolve(ctx, input.UserID)
	if err != nil {
		return domain.Account{}, err
	}

	if input.IncludeDeleted {
		return uc.accountRepo.GetByIDIncludingDeleted(ctx, input.AccountID, groupID)
	}

	if account, ok := uc.cachedAccount(ctx, input.AccountID, groupID); ok {
		return account, nil
	}

	account, err := uc.accountRepo.GetByID(ctx, input.AccountID, groupID)
	if err != nil {
		return domain.Account{}, err
	}

	uc.cacheAccount(ctx, account)

	return account, nil
}

// ListAccountsInput represents input for listing accounts.
type ListAccountsInput struct {
	UserID         string
	IncludeDeleted bool
}

// ListAccounts lists the accounts of the caller's group.
func (uc *AccountUseCase) ListAccounts(ctx context.Context, input ListAccountsInput) ([]domain.Account, error) {
	groupID, err := uc.groups.Resolve(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	return uc.accountRepo.List(ctx, groupID, input.IncludeDeleted)
}

// RenameAccountInput represents input for renaming an account.
type RenameAccountInput struct {
	UserID    string
	AccountID string
	Name      string
}

// RenameAccount changes an account's name.
func (uc *AccountUseCase) RenameAccount(ctx context.Context, input RenameAccountInput) (domain.Account, error) {
	return uc.mutateAccount(ctx, input.UserID, input.AccountID, "rename", func(account domain.Account, updated domain.AuditInfo) (domain.Account, error) {
		return account.Rename(input.Name, updated)
	})
}

// BalanceChangeInput represents input for a deposit or withdrawal.
type BalanceChangeInput struct {
	UserID    string
	AccountID string
	Amount    domain.Money
}

// Deposit adds the amount to the account balance.
func (uc *AccountUseCase) Deposit(ctx context.Context, input BalanceChangeInput) (domain.Account, error) {
	return uc.mutateAccount(ctx, input.UserID, input.AccountID, "deposit", func(account domain.Account, updated domain.AuditInfo) (domain.Account, error) {
		return account.Deposit(input.Amount, updated)
	})
}

// Withdraw subtracts the amount from the account balance. Balances may go
// negative; no overdraft check is applied.
func (uc *AccountUseCase) Withdraw(ctx context.Context, input BalanceChangeInput) (domain.Account, error) {
	return uc.mutateAccount(ctx, input.UserID, input.AccountID, "withdraw", func(account domain.Account, updated domain.AuditInfo) (domain.Account, error) {
		return account.Withdraw(input.Amount, updated)
	})
}

// DeleteAccountInput represents input for soft-deleting an account.
type DeleteAccountInput struct {
	UserID    string
	AccountID string
}

// DeleteAccount tombstones an account. Rejected when any transfer still
// references it.
func (uc *AccountUseCase) DeleteAccount(ctx context.Context, input DeleteAccountInput) (domain.Account, error) {
	account, err := uc.mutateAccount(ctx, input.UserID, input.AccountID, "delete", func(account domain.Account, updated domain.AuditInfo) (domain.Account, error) {
		hasTransfers, err := uc.transferRepo.ExistsForAccount(ctx, account.ID)
		if err != nil {
			return domain.Account{}, err
		}

		if hasTransfers {
			return domain.Account{}, domain.ErrAccountHasTransfers
		}

		return account.MarkDeleted(updated.At, updated), nil
	})
	if err != nil {
		return domain.Account{}, err
	}

	if uc.metrics != nil {
		uc.metrics.AccountsDeleted.Inc()
	}

	return account, nil
}

// mutateAccount runs a single-account mutation inside one unit of work with
// the row locked. The mutation either commits as a whole or not at all.
func (uc *AccountUseCase) mutateAccount(
	ctx context.Context,
	userID, accountID, operation string,
	mutate func(domain.Account, domain.AuditInfo) (domain.Account, error),
) (domain.Account, error) {
	groupID, err := uc.groups.Resolve(ctx, userID)
	if err != nil {
		return domain.Account{}, err
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return domain.Account{}, err
	}
	defer tx.Rollback(ctx)

	accounts, err := uc.accountRepo.GetByIDsForUpdate(ctx, tx, []string{accountID}, groupID)
	if err != nil {
		return domain.Account{}, err
	}

	if len(accounts) != 1 {
		return domain.Account{}, domain.ErrAccountNotFound
	}

	now := time.Now().UTC()

	updated, err := mutate(accounts[0], domain.NewAuditInfo(userID, groupID, now))
	if err != nil {
		return domain.Account{}, err
	}

	if err := uc.accountRepo.Update(ctx, tx, updated); err != nil {
		if uc.metrics != nil && errors.Is(err, domain.ErrVersionConflict) {
			uc.metrics.VersionConflicts.Inc()
		}

		return domain.Account{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Account{}, err
	}

	updated.Version++
	uc.invalidateAccount(ctx, updated.ID)

	if uc.metrics != nil {
		uc.metrics.AccountOperations.WithLabelValues(operation).Inc()
	}

	return updated, nil
}

func (uc *AccountUseCase) cachedAccount(ctx context.Context, accountID, groupID string) (domain.Account, bool) {
	if uc.cache == nil {
		return domain.Account{}, false
	}

	data, err := uc.cache.Get(ctx, accountCacheKeyPrefix+accountID)
	if err != nil || data == nil {
		if uc.metrics != nil {
			uc.metrics.CacheMisses.Inc()
		}

		return domain.Account{}, false
	}

	var account domain.Account
	if err := json.Unmarshal(data, &account); err != nil {
		return domain.Account{}, false
	}

	// Never serve another group's account from cache.
	if account.GroupID() != groupID {
		return domain.Account{}, false
	}

	if uc.metrics != nil {
		uc.metrics.CacheHits.Inc()
	}

	return account, true
}

func (uc *AccountUseCase) cacheAccount(ctx context.Context, account domain.Account) {
	if uc.cache == nil {
		return
	}

	data, err := json.Marshal(account)
	if err != nil {
		return
	}

	_ = uc.cache.Set(ctx, accountCacheKeyPrefix+account.ID, data, accountCacheTTL)
}

func (uc *AccountUseCase) invalidateAccount(ctx context.Context, accountID string) {
	if uc.cache == nil {
		return
	}

	_ = uc.cache.Delete(ctx, accountCacheKeyPrefix+accountID)
}
