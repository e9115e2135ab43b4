package models

import "github.com/shopspring/decimal"

// TransferRequest is the intent to move Amount from one account to another.
// It is a short-lived value consumed by a single engine invocation; the
// boundary layer guarantees non-empty ids and a positive amount before the
// engine sees it.
type TransferRequest struct {
	FromAccountID string          `json:"fromAccountId"`
	ToAccountID   string          `json:"toAccountId"`
	Amount        decimal.Decimal `json:"amount"`
}
