// Package pos implements the point-of-sale cart engine: stock-bound cart
// mutation against a live snapshot and the sequential checkout submission
// protocol against the transaction recorder.
package pos

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"

	"gudang-gateway/internal/domain"
)

// StockProvider supplies the live stock snapshot.
type StockProvider interface {
	FetchStock(ctx context.Context) ([]domain.StockItem, error)
}

// Recorder durably records one outbound-stock event per call. It is the
// system of record for stock truth; the engine never decrements locally.
type Recorder interface {
	RecordOut(ctx context.Context, out domain.StockOut) error
}

// SignalKind names the engine's user-visible events.
type SignalKind int

const (
	SignalItemAdded SignalKind = iota
	SignalCheckoutSucceeded
	SignalCheckoutFailed
)

// Signal is one user-visible event emitted by the engine. Mutation faults
// are returned as errors to the caller instead; signals cover the
// confirmation toast and the checkout outcome.
type Signal struct {
	Kind     SignalKind
	ItemName string
	Fault    *domain.Fault
}

// Listener receives engine signals. Called synchronously on the caller's
// goroutine.
type Listener func(Signal)

// Engine owns one cart session. It is single-owner and not safe for
// concurrent use; callers serialize access (see Sessions).
type Engine struct {
	provider StockProvider
	recorder Recorder
	listener Listener
	log      *logrus.Entry

	snapshot map[int64]domain.StockItem
	cart     domain.Cart
	state    domain.CheckoutState
}

// Option configures an Engine.
type Option func(*Engine)

// WithListener registers a signal listener.
func WithListener(l Listener) Option {
	return func(e *Engine) { e.listener = l }
}

// NewEngine builds an empty, idle engine. Call RefreshSnapshot before the
// first mutation.
func NewEngine(provider StockProvider, recorder Recorder, log *logrus.Entry, opts ...Option) *Engine {
	e := &Engine{
		provider: provider,
		recorder: recorder,
		log:      log,
		snapshot: map[int64]domain.StockItem{},
		state:    domain.StateIdle,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RefreshSnapshot replaces the engine's stock snapshot with the provider's
// current view. On error the previous snapshot is kept.
func (e *Engine) RefreshSnapshot(ctx context.Context) error {
	items, err := e.provider.FetchStock(ctx)
	if err != nil {
		return errors.Wrap(err, "refresh stock snapshot")
	}
	snapshot := make(map[int64]domain.StockItem, len(items))
	for _, item := range items {
		snapshot[item.ID] = item
	}
	e.snapshot = snapshot
	return nil
}

// AddItem puts one unit of the item into the cart, merging into an existing
// line. Quantities never exceed the snapshot bound at the moment of the call.
func (e *Engine) AddItem(itemID int64) error {
	item, ok := e.snapshot[itemID]
	if !ok {
		return domain.ErrItemNotFound
	}
	if item.QuantityOnHand <= 0 {
		return domain.ErrOutOfStock
	}

	if line := e.findLine(itemID); line != nil {
		if line.Quantity+1 > item.QuantityOnHand {
			return domain.ErrInsufficientStock
		}
		line.Quantity++
	} else {
		e.cart.Lines = append(e.cart.Lines, domain.CartLine{
			ItemID:    item.ID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  1,
		})
	}

	e.emit(Signal{Kind: SignalItemAdded, ItemName: item.Name})
	return nil
}

// AdjustQuantity changes a line's quantity by delta, re-checked against the
// latest fetched snapshot. Dropping below 1 is a no-op, as is a missing line;
// removal is explicit via RemoveItem.
func (e *Engine) AdjustQuantity(itemID int64, delta int) error {
	line := e.findLine(itemID)
	if line == nil {
		return nil
	}

	// An item that has vanished from the snapshot has a live bound of zero.
	bound := 0
	if item, ok := e.snapshot[itemID]; ok {
		bound = item.QuantityOnHand
	}

	newQuantity := line.Quantity + delta
	if newQuantity > bound {
		return domain.ErrInsufficientStock
	}
	if newQuantity < 1 {
		return nil
	}
	line.Quantity = newQuantity
	return nil
}

// RemoveItem deletes the line for itemID if present. Idempotent.
func (e *Engine) RemoveItem(itemID int64) {
	for i, line := range e.cart.Lines {
		if line.ItemID == itemID {
			e.cart.Lines = append(e.cart.Lines[:i], e.cart.Lines[i+1:]...)
			return
		}
	}
}

// Lines returns a copy of the cart lines in insertion order.
func (e *Engine) Lines() []domain.CartLine {
	lines := make([]domain.CartLine, len(e.cart.Lines))
	copy(lines, e.cart.Lines)
	return lines
}

// Total is the sum of unitPrice*quantity over all lines.
func (e *Engine) Total() int64 { return e.cart.Total() }

// Recipient returns the recipient set by BeginCheckout.
func (e *Engine) Recipient() string { return e.cart.Recipient }

// State returns the checkout lifecycle state.
func (e *Engine) State() domain.CheckoutState { return e.state }

// BeginCheckout validates the cart and recipient and moves the engine to
// PendingConfirmation. No recorder contact happens yet.
func (e *Engine) BeginCheckout(recipient string) error {
	if e.state != domain.StateIdle {
		return domain.ErrCheckoutInProgress
	}
	if len(e.cart.Lines) == 0 {
		return domain.ErrEmptyCart
	}
	recipient = strings.TrimSpace(recipient)
	if recipient == "" {
		return domain.ErrMissingRecipient
	}
	e.cart.Recipient = recipient
	e.state = domain.StatePendingConfirmation
	return nil
}

// CancelCheckout returns to Idle without contacting the recorder. The cart
// contents are preserved. Valid from PendingConfirmation and Failed.
func (e *Engine) CancelCheckout() error {
	if e.state != domain.StatePendingConfirmation && e.state != domain.StateFailed {
		return domain.ErrConfirmNotPending
	}
	e.state = domain.StateIdle
	return nil
}

// ConfirmCheckout submits one recorder request per cart line, sequentially in
// insertion order, each awaited before the next. The first failure halts the
// sequence: earlier lines are already durably recorded, later ones are never
// attempted, and the whole checkout surfaces a single classified failure.
// A retry from Failed re-submits every line, including ones already recorded.
// The snapshot is refreshed after the attempt regardless of outcome.
func (e *Engine) ConfirmCheckout(ctx context.Context) error {
	if e.state != domain.StatePendingConfirmation && e.state != domain.StateFailed {
		return domain.ErrConfirmNotPending
	}

	for _, line := range e.cart.Lines {
		err := e.recorder.RecordOut(ctx, domain.StockOut{
			ItemID:    line.ItemID,
			Quantity:  line.Quantity,
			Recipient: e.cart.Recipient,
		})
		if err == nil {
			continue
		}

		fault := classifyFault(err)
		e.state = domain.StateFailed
		e.log.WithFields(logrus.Fields{
			"item_id": line.ItemID,
			"fault":   fault.Kind.String(),
		}).Warn("checkout halted at failed line")
		e.refreshAfterAttempt(ctx)
		e.emit(Signal{Kind: SignalCheckoutFailed, Fault: fault})
		return &domain.CheckoutError{Fault: fault}
	}

	e.cart = domain.Cart{}
	e.state = domain.StateIdle
	e.refreshAfterAttempt(ctx)
	e.emit(Signal{Kind: SignalCheckoutSucceeded})
	return nil
}

func (e *Engine) findLine(itemID int64) *domain.CartLine {
	for i := range e.cart.Lines {
		if e.cart.Lines[i].ItemID == itemID {
			return &e.cart.Lines[i]
		}
	}
	return nil
}

// refreshAfterAttempt reflects whatever state the recorder ended up in. A
// refresh failure here is logged, not surfaced: the checkout outcome already
// has an owner.
func (e *Engine) refreshAfterAttempt(ctx context.Context) {
	if err := e.RefreshSnapshot(ctx); err != nil {
		e.log.WithError(err).Warn("post-checkout snapshot refresh failed")
	}
}

func (e *Engine) emit(sig Signal) {
	if e.listener != nil {
		e.listener(sig)
	}
}

// classifyFault coerces any recorder error into the fault taxonomy.
func classifyFault(err error) *domain.Fault {
	var fault *domain.Fault
	if errors.As(err, &fault) {
		return fault
	}
	return &domain.Fault{Kind: domain.FaultServer, Detail: err.Error(), Err: err}
}
