package transfer

import "fmt"

// Reason classifies a transfer validation failure. All reasons are
// client-input errors; the boundary maps them to a 400, never a 500.
type Reason string

const (
	ReasonSameAccount         Reason = "same_account"
	ReasonSourceNotFound      Reason = "source_not_found"
	ReasonDestinationNotFound Reason = "destination_not_found"
	ReasonInsufficientFunds   Reason = "insufficient_funds"
)

// ValidationError is returned by Transfer when the request fails a business
// rule. The message strings are an observable contract; callers match on them
// verbatim.
type ValidationError struct {
	Reason  Reason
	message string
}

func (e *ValidationError) Error() string { return e.message }

func errSameAccount() *ValidationError {
	return &ValidationError{
		Reason:  ReasonSameAccount,
		message: "fromAccountId and toAccountId cannot be same.",
	}
}

func errSourceNotFound() *ValidationError {
	return &ValidationError{
		Reason:  ReasonSourceNotFound,
		message: "No account found for given fromAccountId.",
	}
}

func errDestinationNotFound() *ValidationError {
	return &ValidationError{
		Reason:  ReasonDestinationNotFound,
		message: "No account found for given toAccountId.",
	}
}

func errInsufficientFunds(fromAccountID string) *ValidationError {
	return &ValidationError{
		Reason: ReasonInsufficientFunds,
		// Existing clients match on this exact string, including the missing
		// space before "does".
		message: fmt.Sprintf("Given Account id: %sdoes not have sufficient funds to initiate transfer.", fromAccountID),
	}
}
