package transfer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farhanaly/account-transfer-service/internal/interfaces"
	"github.com/farhanaly/account-transfer-service/internal/models"
	"github.com/farhanaly/account-transfer-service/internal/models/events"
)

// Engine moves funds between two accounts held in a shared store. Transfers
// touching a common account serialize on an interned pairwise lock; transfers
// between disjoint pairs run fully concurrent. The store and publisher are
// injected, so the engine works the same against any store implementation and
// any notification sink.
type Engine struct {
	store     interfaces.AccountStore
	publisher interfaces.EventPublisher
	topic     string
	locks     *pairLocks
	logger    *slog.Logger
}

// NewEngine creates a transfer engine publishing notifications to topic.
func NewEngine(store interfaces.AccountStore, publisher interfaces.EventPublisher, topic string) *Engine {
	return &Engine{
		store:     store,
		publisher: publisher,
		topic:     topic,
		locks:     newPairLocks(),
		logger:    slog.Default(),
	}
}

// Transfer validates the request, then atomically debits the source and
// credits the destination under the pairwise lock. On success it emits a
// credit and a debit notification after the lock is released; notification
// failures are logged and swallowed. Validation failures come back as
// *ValidationError with the reason and its exact message; the balances are
// untouched on any error.
func (e *Engine) Transfer(ctx context.Context, req models.TransferRequest) error {
	if req.FromAccountID == req.ToAccountID {
		return errSameAccount()
	}

	from := e.store.Get(req.FromAccountID)
	if from == nil {
		return errSourceNotFound()
	}
	to := e.store.Get(req.ToAccountID)
	if to == nil {
		return errDestinationNotFound()
	}

	mu := e.locks.lockFor(req.FromAccountID, req.ToAccountID)
	mu.Lock()

	// The funds check must happen under the pair lock: a stale read here
	// would let two concurrent transfers drain the same source.
	if from.Balance.Cmp(req.Amount) < 0 {
		mu.Unlock()
		return errInsufficientFunds(req.FromAccountID)
	}

	from.Balance = from.Balance.Sub(req.Amount)
	to.Balance = to.Balance.Add(req.Amount)

	// Both saves complete before the lock is released. If the second one
	// fails there is no partial commit: the mutation is undone while the
	// lock is still held.
	if err := e.store.Save(ctx, from); err != nil {
		e.rollback(from, to, req.Amount)
		mu.Unlock()
		return fmt.Errorf("persist source account: %w", err)
	}
	if err := e.store.Save(ctx, to); err != nil {
		e.rollback(from, to, req.Amount)
		mu.Unlock()
		return fmt.Errorf("persist destination account: %w", err)
	}

	mu.Unlock()

	e.logger.InfoContext(ctx, "transfer committed",
		slog.String("from_account_id", req.FromAccountID),
		slog.String("to_account_id", req.ToAccountID),
		slog.String("amount", req.Amount.String()),
	)

	e.notify(ctx, req)
	return nil
}

func (e *Engine) rollback(from, to *models.Account, amount decimal.Decimal) {
	from.Balance = from.Balance.Add(amount)
	to.Balance = to.Balance.Sub(amount)
}

// notify emits the credit and debit events for a committed transfer. It runs
// outside the critical section so a slow or failing sink cannot extend the
// lock hold time, and errors never surface to the transfer caller.
func (e *Engine) notify(ctx context.Context, req models.TransferRequest) {
	now := time.Now()

	credit := events.TransferCompleted{
		EventID:        uuid.New().String(),
		AccountID:      req.ToAccountID,
		CounterpartyID: req.FromAccountID,
		Direction:      events.DirectionCredit,
		Amount:         req.Amount,
		Description:    fmt.Sprintf("Successfully received amount %s from Account %s", req.Amount, req.FromAccountID),
		OccurredAt:     now,
	}
	debit := events.TransferCompleted{
		EventID:        uuid.New().String(),
		AccountID:      req.FromAccountID,
		CounterpartyID: req.ToAccountID,
		Direction:      events.DirectionDebit,
		Amount:         req.Amount,
		Description:    fmt.Sprintf("Successfully transferred amount %s to Account %s", req.Amount, req.ToAccountID),
		OccurredAt:     now,
	}

	for _, event := range []events.TransferCompleted{credit, debit} {
		if err := e.publisher.Publish(ctx, e.topic, event); err != nil {
			e.logger.WarnContext(ctx, "transfer notification dropped",
				slog.String("account_id", event.AccountID),
				slog.String("direction", string(event.Direction)),
				slog.Any("error", err),
			)
		}
	}
}
