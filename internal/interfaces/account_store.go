package interfaces

import (
	"context"
	"fmt"

	"github.com/farhanaly/account-transfer-service/internal/models"
)

// AccountStore owns all account records. Get hands out the live record, not a
// defensive copy; callers synchronize balance access through the transfer
// engine's pairwise lock.
type AccountStore interface {
	// Create adds a new account. It is atomic with respect to concurrent
	// creates of the same id: at most one succeeds, the rest get a
	// *DuplicateAccountError.
	Create(ctx context.Context, account *models.Account) error

	// Get returns the account for the given id, or nil when absent.
	Get(accountID string) *models.Account

	// Save persists an account's current state. Both sides of a transfer must
	// be saved before the pairwise lock is released.
	Save(ctx context.Context, account *models.Account) error
}

// DuplicateAccountError is returned by Create when the id is already taken.
type DuplicateAccountError struct {
	AccountID string
}

func (e *DuplicateAccountError) Error() string {
	return fmt.Sprintf("Account id %s already exists!", e.AccountID)
}
