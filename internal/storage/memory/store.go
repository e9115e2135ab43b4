package memory

import (
	"context"
	"sync"

	"github.com/farhanaly/account-transfer-service/internal/interfaces"
	"github.com/farhanaly/account-transfer-service/internal/models"
)

// AccountStore is the in-memory implementation of interfaces.AccountStore.
// The map itself is guarded by an RWMutex; the balances inside the records it
// hands out are guarded by the transfer engine's pairwise locks, not by this
// store.
type AccountStore struct {
	mu       sync.RWMutex
	accounts map[string]*models.Account
}

// NewAccountStore creates an empty account store.
func NewAccountStore() *AccountStore {
	return &AccountStore{
		accounts: make(map[string]*models.Account),
	}
}

// Create inserts a new account. The existence check and the insert happen
// under the same write lock, so concurrent creates of one id race to exactly
// one winner.
func (s *AccountStore) Create(ctx context.Context, account *models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[account.AccountID]; exists {
		return &interfaces.DuplicateAccountError{AccountID: account.AccountID}
	}
	s.accounts[account.AccountID] = account
	return nil
}

// Get returns the live account record, or nil when the id is unknown.
func (s *AccountStore) Get(accountID string) *models.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.accounts[accountID]
}

// Save is a no-op here: Get hands out live references and transfers mutate
// them in place. It exists so a store with explicit persistence can satisfy
// the same contract.
func (s *AccountStore) Save(ctx context.Context, account *models.Account) error {
	return nil
}

// Compile-time check: AccountStore implements the store contract.
var _ interfaces.AccountStore = (*AccountStore)(nil)
