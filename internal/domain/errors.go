package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrSelfTransfer       = errors.New("sender and receiver are the same account")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrItemNotFound       = errors.New("shop item not found")
	ErrItemInactive       = errors.New("shop item is inactive")
	ErrAlreadyOwned       = errors.New("item already owned")
	ErrUnknownKind        = errors.New("unknown cooldown kind")
	ErrServiceUnavailable = errors.New("service unavailable")
)

// CooldownActiveError reports a reward claim made before the cooldown
// window for its kind has elapsed.
type CooldownActiveError struct {
	Kind      CooldownKind
	Remaining time.Duration
}

func (e *CooldownActiveError) Error() string {
	return fmt.Sprintf("cooldown active for %s: %s remaining", e.Kind, e.Remaining)
}

// AsCooldownActive unwraps err into a CooldownActiveError if it is one.
func AsCooldownActive(err error) (*CooldownActiveError, bool) {
	var cerr *CooldownActiveError
	if errors.As(err, &cerr) {
		return cerr, true
	}
	return nil, false
}
