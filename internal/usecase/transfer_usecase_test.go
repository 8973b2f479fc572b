package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/iho/gobudget/internal/domain"
	"github.com/iho/gobudget/internal/infrastructure/metrics"
	"github.com/iho/gobudget/internal/usecase"
	"github.com/iho/gobudget/internal/usecase/mocks"
)

type transferFixture struct {
	accountUC    *usecase.AccountUseCase
	transferUC   *usecase.TransferUseCase
	accountRepo  *mocks.MockAccountRepository
	transferRepo *mocks.MockTransferRepository
	txManager    *mocks.MockTransactionManager
}

func newTransferFixture(t *testing.T) *transferFixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	groups := mocks.NewMockGroupResolver(ctrl)
	groups.EXPECT().Resolve(gomock.Any(), "user-1").Return("group-1", nil).AnyTimes()

	accountRepo := mocks.NewMockAccountRepository()
	transferRepo := mocks.NewMockTransferRepository()
	txManager := mocks.NewMockTransactionManager()
	idGen := mocks.NewMockIDGenerator()

	return &transferFixture{
		accountUC:    usecase.NewAccountUseCase(txManager, accountRepo, transferRepo, groups, idGen, nil, nil),
		transferUC:   usecase.NewTransferUseCase(txManager, accountRepo, transferRepo, groups, idGen, nil, nil),
		accountRepo:  accountRepo,
		transferRepo: transferRepo,
		txManager:    txManager,
	}
}

// seedAccount creates an account and funds it.
func (f *transferFixture) seedAccount(t *testing.T, name, currency, balance string) domain.Account {
	t.Helper()

	ctx := context.Background()

	account, err := f.accountUC.CreateAccount(ctx, usecase.CreateAccountInput{
		UserID: "user-1", Name: name, Currency: currency,
	})
	require.NoError(t, err)

	if balance == "" || balance == "0.00" {
		return account
	}

	account, err = f.accountUC.Deposit(ctx, usecase.BalanceChangeInput{
		UserID: "user-1", AccountID: account.ID,
		Amount: mustMoney(t, balance, domain.Currency(currency)),
	})
	require.NoError(t, err)

	return account
}

func (f *transferFixture) storedBalance(t *testing.T, accountID string) string {
	t.Helper()

	account, ok := f.accountRepo.Stored(accountID)
	require.True(t, ok)

	return account.Balance.Amount().StringFixed(2)
}

func TestTransferUseCase_CrossCurrency(t *testing.T) {
	f := newTransferFixture(t)
	ctx := context.Background()

	source := f.seedAccount(t, "Salary", "PLN", "100.00")
	target := f.seedAccount(t, "Vacation", "EUR", "0.00")

	targetAmount := mustAmount(t, "25.00")

	transfer, err := f.transferUC.CreateTransfer(ctx, usecase.CreateTransferInput{
		UserID:          "user-1",
		SourceAccountID: source.ID,
		TargetAccountID: target.ID,
		SourceAmount:    mustAmount(t, "100.00"),
		TargetAmount:    &targetAmount,
		Description:     "holiday budget",
	})
	require.NoError(t, err)

	require.Equal(t, "0.250000", transfer.Rate.Rate().StringFixed(6))
	require.Equal(t, domain.CurrencyPLN, transfer.Rate.From())
	require.Equal(t, domain.CurrencyEUR, transfer.Rate.To())
	require.Equal(t, "100.00", transfer.SourceAmount.Amount().StringFixed(2))
	require.Equal(t, "25.00", transfer.TargetAmount.Amount().StringFixed(2))

	require.Equal(t, "0.00", f.storedBalance(t, source.ID))
	require.Equal(t, "25.00", f.storedBalance(t, target.ID))

	stored, err := f.transferUC.GetTransfer(ctx, "user-1", transfer.ID)
	require.NoError(t, err)
	require.Equal(t, transfer.ID, stored.ID)

	require.True(t, f.txManager.Last().Committed)
}

func TestTransferUseCase_SameCurrencyDefaultsTargetAmount(t *testing.T) {
	f := newTransferFixture(t)
	ctx := context.Background()

	source := f.seedAccount(t, "Checking", "PLN", "80.00")
	target := f.seedAccount(t, "Savings", "PLN", "0.00")

	transfer, err := f.transferUC.CreateTransfer(ctx, usecase.CreateTransferInput{
		UserID:          "user-1",
		SourceAccountID: source.ID,
		TargetAccountID: target.ID,
		SourceAmount:    mustAmount(t, "30.00"),
	})
	require.NoError(t, err)

	// Same currency means the identity rate, never a derived one.
	require.Equal(t, "1.000000", transfer.Rate.Rate().StringFixed(6))
	require.Equal(t, transfer.Rate.From(), transfer.Rate.To())
	require.Equal(t, "30.00", transfer.TargetAmount.Amount().StringFixed(2))

	require.Equal(t, "50.00", f.storedBalance(t, source.ID))
	require.Equal(t, "30.00", f.storedBalance(t, target.ID))
}

func TestTransferUseCase_SameAccount(t *testing.T) {
	f := newTransferFixture(t)
	ctx := context.Background()

	account := f.seedAccount(t, "Checking", "PLN", "100.00")

	_, err := f.transferUC.CreateTransfer(ctx, usecase.CreateTransferInput{
		UserID:          "user-1",
		SourceAccountID: account.ID,
		TargetAccountID: account.ID,
		SourceAmount:    mustAmount(t, "10.00"),
	})
	require.ErrorIs(t, err, domain.ErrSameAccount)

	require.Equal(t, "100.00", f.storedBalance(t, account.ID))
}

func TestTransferUseCase_AccountNotFound(t *testing.T) {
	f := newTransferFixture(t)
	ctx := context.Background()

	source := f.seedAccount(t, "Checking", "PLN", "100.00")

	_, err := f.transferUC.CreateTransfer(ctx, usecase.CreateTransferInput{
		UserID:          "user-1",
		SourceAccountID: source.ID,
		TargetAccountID: "missing",
		SourceAmount:    mustAmount(t, "10.00"),
	})
	require.ErrorIs(t, err, domain.ErrAccountNotFound)

	require.Equal(t, "100.00", f.storedBalance(t, source.ID))
	require.False(t, f.txManager.Last().Committed)
}

func TestTransferUseCase_ZeroSourceCrossCurrency(t *testing.T) {
	f := newTransferFixture(t)
	ctx := context.Background()

	source := f.seedAccount(t, "Checking", "PLN", "100.00")
	target := f.seedAccount(t, "Vacation", "EUR", "0.00")

	targetAmount := mustAmount(t, "25.00")

	_, err := f.transferUC.CreateTransfer(ctx, usecase.CreateTransferInput{
		UserID:          "user-1",
		SourceAccountID: source.ID,
		TargetAccountID: target.ID,
		SourceAmount:    decimal.Zero,
		TargetAmount:    &targetAmount,
	})
	require.ErrorIs(t, err, domain.ErrInvalidExchangeRate)

	require.Equal(t, "100.00", f.storedBalance(t, source.ID))
	require.Equal(t, "0.00", f.storedBalance(t, target.ID))
}

func TestTransferUseCase_InvalidDescription(t *testing.T) {
	f := newTransferFixture(t)
	ctx := context.Background()

	source := f.seedAccount(t, "Checking", "PLN", "100.00")
	target := f.seedAccount(t, "Savings", "PLN", "0.00")

	_, err := f.transferUC.CreateTransfer(ctx, usecase.CreateTransferInput{
		UserID:          "user-1",
		SourceAccountID: source.ID,
		TargetAccountID: target.ID,
		SourceAmount:    mustAmount(t, "10.00"),
		Description:     "rent; --",
	})
	require.ErrorIs(t, err, domain.ErrInvalidDescription)

	// Rejected before any mutation.
	require.Equal(t, "100.00", f.storedBalance(t, source.ID))
	require.Equal(t, "0.00", f.storedBalance(t, target.ID))
	require.False(t, f.txManager.Last().Committed)
}

// A failure while persisting the transfer record must leave the whole unit
// of work uncommitted: no transfer, no balance change.
func TestTransferUseCase_AbortsUnitOfWorkOnFailure(t *testing.T) {
	f := newTransferFixture(t)
	ctx := context.Background()

	source := f.seedAccount(t, "Checking", "PLN", "100.00")
	target := f.seedAccount(t, "Savings", "PLN", "0.00")

	storeErr := errors.New("connection reset")
	f.transferRepo.CreateFunc = func(ctx context.Context, tx usecase.Transaction, transfer domain.Transfer) (err error) {
		return storeErr
	}

	_, err := f.transferUC.CreateTransfer(ctx, usecase.CreateTransferInput{
		UserID:          "user-1",
		SourceAccountID: source.ID,
		TargetAccountID: target.ID,
		SourceAmount:    mustAmount(t, "10.00"),
	})
	require.ErrorIs(t, err, storeErr)

	require.Equal(t, "100.00", f.storedBalance(t, source.ID))
	require.Equal(t, "0.00", f.storedBalance(t, target.ID))
	require.False(t, f.txManager.Last().Committed)
	require.True(t, f.txManager.Last().RolledBack)
}

func TestTransferUseCase_VersionConflictSurfaces(t *testing.T) {
	f := newTransferFixture(t)
	ctx := context.Background()

	source := f.seedAccount(t, "Checking", "PLN", "100.00")
	target := f.seedAccount(t, "Savings", "PLN", "0.00")

	f.accountRepo.UpdateFunc = func(ctx context.Context, tx usecase.Transaction, account domain.Account) error {
		return domain.ErrVersionConflict
	}

	_, err := f.transferUC.CreateTransfer(ctx, usecase.CreateTransferInput{
		UserID:          "user-1",
		SourceAccountID: source.ID,
		TargetAccountID: target.ID,
		SourceAmount:    mustAmount(t, "10.00"),
	})

	// The conflict is reported as-is; retrying is the caller's call.
	require.ErrorIs(t, err, domain.ErrVersionConflict)
	require.False(t, f.txManager.Last().Committed)
}

func TestTransferUseCase_ListTransfers(t *testing.T) {
	f := newTransferFixture(t)
	ctx := context.Background()

	source := f.seedAccount(t, "Checking", "PLN", "100.00")
	target := f.seedAccount(t, "Savings", "PLN", "0.00")

	for range 3 {
		_, err := f.transferUC.CreateTransfer(ctx, usecase.CreateTransferInput{
			UserID:          "user-1",
			SourceAccountID: source.ID,
			TargetAccountID: target.ID,
			SourceAmount:    mustAmount(t, "5.00"),
		})
		require.NoError(t, err)
	}

	transfers, err := f.transferUC.ListTransfers(ctx, usecase.ListTransfersInput{UserID: "user-1"})
	require.NoError(t, err)
	require.Len(t, transfers, 3)

	page, err := f.transferUC.ListTransfers(ctx, usecase.ListTransfersInput{UserID: "user-1", Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, page, 1)
}

func TestTransferUseCase_FailureIncrementsErrorCounter(t *testing.T) {
	registry := prometheus.NewRegistry()

	// Replace global default registry to allow test inspection.
	prometheus.DefaultRegisterer = registry
	prometheus.DefaultGatherer = registry

	m := metrics.New()

	ctrl := gomock.NewController(t)
	groups := mocks.NewMockGroupResolver(ctrl)
	groups.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return("group-1", nil).AnyTimes()

	uc := usecase.NewTransferUseCase(
		mocks.NewMockTransactionManager(),
		mocks.NewMockAccountRepository(),
		mocks.NewMockTransferRepository(),
		groups,
		mocks.NewMockIDGenerator(),
		nil,
		m,
	)

	_, err := uc.CreateTransfer(context.Background(), usecase.CreateTransferInput{
		UserID:          "user-1",
		SourceAccountID: "acc-1",
		TargetAccountID: "acc-1",
		SourceAmount:    mustAmount(t, "10.00"),
	})
	require.ErrorIs(t, err, domain.ErrSameAccount)

	require.Equal(t, 1.0, testutil.ToFloat64(m.TransferErrors.WithLabelValues("same_account")))
}
