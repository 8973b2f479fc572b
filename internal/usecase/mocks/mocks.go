package mocks

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/iho/gobudget/internal/domain"
	"github.com/iho/gobudget/internal/usecase"
)

// MockAccountRepository is an in-memory implementation of
// usecase.AccountRepository. Balance writes are version-checked, so
// concurrency tests observe the same conflict behavior as the postgres
// adapter.
type MockAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]domain.Account

	CreateFunc            func(ctx context.Context, account domain.Account) error
	GetByIDFunc           func(ctx context.Context, id, groupID string) (domain.Account, error)
	GetByIDsForUpdateFunc func(ctx context.Context, tx usecase.Transaction, ids []string, groupID string) ([]domain.Account, error)
	UpdateFunc            func(ctx context.Context, tx usecase.Transaction, account domain.Account) error
}

func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{
		accounts: make(map[string]domain.Account),
	}
}

func (m *MockAccountRepository) Create(ctx context.Context, account domain.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.ID] = account

	return nil
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id, groupID string) (domain.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id, groupID)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	account, ok := m.accounts[id]
	if !ok || account.GroupID() != groupID || account.Tombstone.Deleted {
		return domain.Account{}, domain.ErrAccountNotFound
	}

	return account, nil
}

func (m *MockAccountRepository) GetByIDIncludingDeleted(ctx context.Context, id, groupID string) (domain.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	account, ok := m.accounts[id]
	if !ok || account.GroupID() != groupID {
		return domain.Account{}, domain.ErrAccountNotFound
	}

	return account, nil
}

func (m *MockAccountRepository) GetByNameAndCurrency(ctx context.Context, name string, currency domain.Currency, groupID string) (domain.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, account := range m.accounts {
		if account.Name == name && account.Balance.Currency() == currency &&
			account.GroupID() == groupID && !account.Tombstone.Deleted {
			return account, nil
		}
	}

	return domain.Account{}, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) GetByIDsForUpdate(ctx context.Context, tx usecase.Transaction, ids []string, groupID string) ([]domain.Account, error) {
	if m.GetByIDsForUpdateFunc != nil {
		return m.GetByIDsForUpdateFunc(ctx, tx, ids, groupID)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	accounts := make([]domain.Account, 0, len(ids))
	for _, id := range ids {
		account, ok := m.accounts[id]
		if !ok || account.GroupID() != groupID || account.Tombstone.Deleted {
			continue
		}

		accounts = append(accounts, account)
	}

	sort.Slice(accounts, func(i, j int) bool { return accounts[i].ID < accounts[j].ID })

	return accounts, nil
}

func (m *MockAccountRepository) Update(ctx context.Context, tx usecase.Transaction, account domain.Account) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, tx, account)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.accounts[account.ID]
	if !ok {
		return domain.ErrAccountNotFound
	}

	if stored.Version != account.Version {
		return domain.ErrVersionConflict
	}

	account.Version++
	m.accounts[account.ID] = account

	return nil
}

func (m *MockAccountRepository) List(ctx context.Context, groupID string, includeDeleted bool) ([]domain.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var accounts []domain.Account
	for _, account := range m.accounts {
		if account.GroupID() != groupID {
			continue
		}

		if account.Tombstone.Deleted && !includeDeleted {
			continue
		}

		accounts = append(accounts, account)
	}

	sort.Slice(accounts, func(i, j int) bool { return accounts[i].ID < accounts[j].ID })

	return accounts, nil
}

func (m *MockAccountRepository) HardDelete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.accounts, id)

	return nil
}

// Stored returns the current stored state of an account, bypassing group
// scoping. Test helper.
func (m *MockAccountRepository) Stored(id string) (domain.Account, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	account, ok := m.accounts[id]

	return account, ok
}

// MockTransferRepository is an in-memory implementation of
// usecase.TransferRepository.
type MockTransferRepository struct {
	mu        sync.RWMutex
	transfers map[string]domain.Transfer

	CreateFunc           func(ctx context.Context, tx usecase.Transaction, transfer domain.Transfer) error
	ExistsForAccountFunc func(ctx context.Context, accountID string) (bool, error)
}

func NewMockTransferRepository() *MockTransferRepository {
	return &MockTransferRepository{
		transfers: make(map[string]domain.Transfer),
	}
}

func (m *MockTransferRepository) Create(ctx context.Context, tx usecase.Transaction, transfer domain.Transfer) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, transfer)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.transfers[transfer.ID] = transfer

	return nil
}

func (m *MockTransferRepository) GetByID(ctx context.Context, id, groupID string) (domain.Transfer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	transfer, ok := m.transfers[id]
	if !ok || transfer.GroupID() != groupID || transfer.Tombstone.Deleted {
		return domain.Transfer{}, domain.ErrTransferNotFound
	}

	return transfer, nil
}

func (m *MockTransferRepository) List(ctx context.Context, groupID string, limit, offset int) ([]domain.Transfer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var transfers []domain.Transfer
	for _, transfer := range m.transfers {
		if transfer.GroupID() == groupID && !transfer.Tombstone.Deleted {
			transfers = append(transfers, transfer)
		}
	}

	sort.Slice(transfers, func(i, j int) bool { return transfers[i].ID < transfers[j].ID })

	if offset >= len(transfers) {
		return nil, nil
	}

	transfers = transfers[offset:]
	if limit < len(transfers) {
		transfers = transfers[:limit]
	}

	return transfers, nil
}

func (m *MockTransferRepository) ExistsForAccount(ctx context.Context, accountID string) (bool, error) {
	if m.ExistsForAccountFunc != nil {
		return m.ExistsForAccountFunc(ctx, accountID)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, transfer := range m.transfers {
		if transfer.Tombstone.Deleted {
			continue
		}

		if transfer.SourceAccountID == accountID || transfer.TargetAccountID == accountID {
			return true, nil
		}
	}

	return false, nil
}

// MockTransactionManager hands out MockTransactions and remembers the last
// one, so tests can assert commit/rollback behavior.
type MockTransactionManager struct {
	mu   sync.Mutex
	last *MockTransaction

	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}

	tx := &MockTransaction{}

	m.mu.Lock()
	m.last = tx
	m.mu.Unlock()

	return tx, nil
}

// Last returns the most recently started transaction.
func (m *MockTransactionManager) Last() *MockTransaction {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.last
}

// MockTransaction records whether it was committed or rolled back.
type MockTransaction struct {
	mu         sync.Mutex
	Committed  bool
	RolledBack bool
}

func (t *MockTransaction) Commit(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.Committed = true

	return nil
}

func (t *MockTransaction) Rollback(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.Committed {
		t.RolledBack = true
	}

	return nil
}

// MockIDGenerator generates sequential IDs.
type MockIDGenerator struct {
	mu   sync.Mutex
	next int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++

	return fmt.Sprintf("id-%d", m.next)
}

// MockCache is an in-memory usecase.Cache.
type MockCache struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{entries: make(map[string][]byte)}
}

func (c *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.entries[key], nil
}

func (c *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value

	return nil
}

func (c *MockCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)

	return nil
}
