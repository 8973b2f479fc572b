package usecase

import (
	"context"
	"time"

	"github.com/iho/gobudget/internal/domain"
)

// AccountRepository defines data access for accounts. Lookups are scoped to
// the caller's owning group and exclude tombstoned accounts unless stated
// otherwise.
type AccountRepository interface {
	Create(ctx context.Context, account domain.Account) error
	GetByID(ctx context.Context, id, groupID string) (domain.Account, error)
	GetByIDIncludingDeleted(ctx context.Context, id, groupID string) (domain.Account, error)
	GetByNameAndCurrency(ctx context.Context, name string, currency domain.Currency, groupID string) (domain.Account, error)
	// GetByIDsForUpdate locks the accounts for the duration of the
	// transaction, in ascending id order.
	GetByIDsForUpdate(ctx context.Context, tx Transaction, ids []string, groupID string) ([]domain.Account, error)
	// Update persists name, balance, audit and tombstone fields. The write is
	// version-checked; a stale version yields domain.ErrVersionConflict.
	Update(ctx context.Context, tx Transaction, account domain.Account) error
	List(ctx context.Context, groupID string, includeDeleted bool) ([]domain.Account, error)
	// HardDelete physically removes a row. Test and migration paths only.
	HardDelete(ctx context.Context, id string) error
}

// TransferRepository defines data access for transfers.
type TransferRepository interface {
	Create(ctx context.Context, tx Transaction, transfer domain.Transfer) error
	GetByID(ctx context.Context, id, groupID string) (domain.Transfer, error)
	List(ctx context.Context, groupID string, limit, offset int) ([]domain.Transfer, error)
	// ExistsForAccount reports whether any non-deleted transfer references
	// the account. Gates account deletion.
	ExistsForAccount(ctx context.Context, accountID string) (bool, error)
}

// GroupResolver resolves the owning group for a caller identity.
type GroupResolver interface {
	Resolve(ctx context.Context, userID string) (string, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
