package events

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction marks which side of a transfer an event describes.
type Direction string

const (
	DirectionCredit Direction = "credit"
	DirectionDebit  Direction = "debit"
)

// TransferCompleted notifies one account about a committed transfer. Every
// transfer emits two of these: a credit for the destination and a debit for
// the source.
type TransferCompleted struct {
	EventID        string          `json:"event_id"`
	AccountID      string          `json:"account_id"`
	CounterpartyID string          `json:"counterparty_id"`
	Direction      Direction       `json:"direction"`
	Amount         decimal.Decimal `json:"amount"`
	Description    string          `json:"description"`
	OccurredAt     time.Time       `json:"occurred_at"`
}
