package models

import "github.com/shopspring/decimal"

// Account is a single ledger record. The id is immutable and unique for the
// lifetime of the store; the balance is only mutated while the pairwise
// transfer lock covering this account is held.
type Account struct {
	AccountID string          `json:"accountId"`
	Balance   decimal.Decimal `json:"balance"`
}
