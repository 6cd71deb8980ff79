package service

import "errors"

var (
	// ErrUnknownCategory is returned for a category outside the fixed set.
	ErrUnknownCategory = errors.New("unknown menu category")
	// ErrItemNotFound is returned when a catalog key or cart line does not exist.
	ErrItemNotFound = errors.New("item not found")
	// ErrItemUnavailable is returned when ordering an item marked unavailable.
	ErrItemUnavailable = errors.New("item is unavailable")
	// ErrInvalidItem wraps catalog entry and cart line validation failures.
	ErrInvalidItem = errors.New("invalid item")
	// ErrInvalidSize is returned for a size outside P, M and G.
	ErrInvalidSize = errors.New("invalid pizza size")
	// ErrInvalidOption is returned for an unknown configurator option.
	ErrInvalidOption = errors.New("invalid pizza option")
	// ErrEmptyCart is returned when submitting a checkout without items.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrNotFinalStep is returned when submitting before the last checkout step.
	ErrNotFinalStep = errors.New("checkout is not on its final step")
	// ErrSubmitInProgress is returned while an earlier submit is still running.
	ErrSubmitInProgress = errors.New("order submission already in progress")
	// ErrOrderNotFound is returned by the tracker for unknown order ids.
	ErrOrderNotFound = errors.New("order not found")
	// ErrInvalidCredentials is returned on a failed admin login.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken is returned for malformed, expired or forged admin tokens.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// ValidationError carries field level failures. Values are i18n message keys.
type ValidationError struct {
	Step   int
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "checkout validation failed"
}
