package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrItemNotFound indicates a cart operation referenced an item absent
	// from the current stock snapshot.
	ErrItemNotFound = errors.New("item not found in stock snapshot")
	// ErrOutOfStock indicates an add was attempted for an item with zero
	// stock on hand.
	ErrOutOfStock = errors.New("item out of stock")
	// ErrInsufficientStock indicates the requested quantity exceeds the live
	// stock bound.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrEmptyCart blocks checkout of a cart with no lines.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrMissingRecipient blocks checkout without a recipient.
	ErrMissingRecipient = errors.New("recipient required")
	// ErrConfirmNotPending indicates a confirm/cancel outside the states
	// that allow it.
	ErrConfirmNotPending = errors.New("no checkout pending")
	// ErrCheckoutInProgress indicates beginCheckout while a checkout is
	// already pending or failed.
	ErrCheckoutInProgress = errors.New("checkout already in progress")
	// ErrInvalidCredentials indicates the upstream API rejected the login or
	// the presented token.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// FaultKind classifies a failed upstream call.
type FaultKind int

const (
	// FaultValidation: the upstream rejected the request (4xx), typically
	// stock drifted below what the client believed. Refresh before retry.
	FaultValidation FaultKind = iota
	// FaultServer: upstream fault (5xx). Transient, safe to retry though the
	// checkout batch itself is not idempotent.
	FaultServer
	// FaultConnectivity: the upstream could not be reached at all.
	FaultConnectivity
)

func (k FaultKind) String() string {
	switch k {
	case FaultValidation:
		return "validation"
	case FaultServer:
		return "server"
	case FaultConnectivity:
		return "connectivity"
	default:
		return "unknown"
	}
}

// Fault is a classified upstream call failure.
type Fault struct {
	Kind   FaultKind
	Detail string
	Err    error
}

func (f *Fault) Error() string {
	if f.Detail != "" {
		return fmt.Sprintf("upstream %s fault: %s", f.Kind, f.Detail)
	}
	return fmt.Sprintf("upstream %s fault", f.Kind)
}

func (f *Fault) Unwrap() error { return f.Err }

// CheckoutError is the single failure surfaced for a whole checkout
// submission. It does not report which lines had already been recorded.
type CheckoutError struct {
	Fault *Fault
}

func (e *CheckoutError) Error() string {
	return fmt.Sprintf("checkout failed: %v", e.Fault)
}

func (e *CheckoutError) Unwrap() error { return e.Fault }
