package services

import (
	"fmt"
	"sync"

	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/core/domain/model/order"
	"shipment/internal/pkg/errs"
)

// OrderAggregator is a domain service that collects individual order items
// and bundles them into per-customer orders on demand.
//
// Items are held in a pending pool until AggregateOrder succeeds for their
// customer. Aggregation is all-or-nothing: an order is produced only if the
// customer's entire pending set fits the caller-supplied quantity and volume
// ceilings; a partial fill is never attempted.
//
// The select/test/remove sequence inside AggregateOrder runs as one exclusive
// critical section per aggregator instance, so concurrent callers cannot
// double-count or double-remove the same items.
//
// Example usage:
//
//	aggregator := services.NewOrderAggregator()
//	_ = aggregator.AddItem(item)
//
//	customerOrder, err := aggregator.AggregateOrder("alice", 5, 10)
//	if err != nil {
//	    return err
//	}
//	if customerOrder == nil {
//	    // nothing pending for alice, or the pending set exceeds a ceiling
//	}
type OrderAggregator struct {
	mu sync.Mutex

	// pendingItems is the pool of items not yet bundled into an order,
	// in insertion order
	pendingItems []*order.OrderItem
}

// NewOrderAggregator creates an OrderAggregator with an empty pending pool.
func NewOrderAggregator() *OrderAggregator {
	return &OrderAggregator{}
}

// AddItem appends an item to the pending pool.
//
// Returns a validation error if the item was not properly constructed;
// the pool only ever holds valid items.
func (a *OrderAggregator) AddItem(item *order.OrderItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.pendingItems = append(a.pendingItems, item)
	return nil
}

// PendingItems returns the items currently in the pending pool in insertion
// order. The returned slice is a copy to prevent external modification.
func (a *OrderAggregator) PendingItems() []*order.OrderItem {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]*order.OrderItem, len(a.pendingItems))
	copy(out, a.pendingItems)
	return out
}

// RemoveItems removes the given items from the pending pool.
//
// The operation is atomic: every item is first checked for presence (by
// identity), and only then is the pool rebuilt without them in a single pass.
// If any item is not present, an errs.ObjectNotFoundError is returned and the
// pool is left untouched. Callers must only pass items previously returned
// as present.
func (a *OrderAggregator) RemoveItems(items []*order.OrderItem) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.removeItems(items)
}

// AggregateOrder bundles the entire pending set of the given customer into an
// Order, if that set fits both ceilings.
//
// The customer's pending items are selected in pool insertion order and their
// aggregate quantity and volume computed. If the aggregate quantity is within
// maxItemsQuantity and the aggregate volume within maxVolume, an Order owning
// exactly those items is constructed and the items leave the pool. Otherwise
// the pool is left completely unmodified.
//
// Parameters:
//   - customer: Customer identifier to aggregate for (must be non-empty)
//   - maxItemsQuantity: Maximum total quantity of the order (must not be negative)
//   - maxVolume: Maximum total volume of the order (must not be negative)
//
// Returns:
//   - *order.Order: The aggregated order, or nil when no order was produced
//     (no pending items for the customer, or a ceiling would be exceeded)
//   - error: Validation error for invalid arguments
//
// A nil order with a nil error is the "no order produced" outcome and is not
// a failure.
func (a *OrderAggregator) AggregateOrder(customer string, maxItemsQuantity int, maxVolume int) (*order.Order, error) {
	if customer == "" {
		return nil, errs.NewValueIsRequiredError("customer is required")
	}
	if maxItemsQuantity < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"maxItemsQuantity is invalid",
			fmt.Errorf("%d is negative", maxItemsQuantity),
		)
	}
	if maxVolume < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"maxVolume is invalid",
			fmt.Errorf("%d is negative", maxVolume),
		)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	var (
		selected      []*order.OrderItem
		totalQuantity int
		totalVolume   int
	)
	for _, item := range a.pendingItems {
		if item.Customer() != customer {
			continue
		}

		selected = append(selected, item)
		totalQuantity += item.Quantity()
		totalVolume += item.TotalVolume()
	}

	// No pending items for this customer: no order is produced. An empty
	// order would trivially satisfy any ceiling but carries nothing.
	if len(selected) == 0 {
		return nil, nil //nolint:nilnil // absent result, not a failure
	}

	// All-or-nothing: either the whole pending set fits, or the pool
	// stays as it was.
	if totalQuantity > maxItemsQuantity || totalVolume > maxVolume {
		return nil, nil //nolint:nilnil // absent result, not a failure
	}

	aggregated, err := order.NewOrder(kernel.NewUUID(), selected)
	if err != nil {
		return nil, err
	}

	if err = a.removeItems(selected); err != nil {
		return nil, err
	}

	return aggregated, nil
}

// removeItems verifies that every given item is present in the pool and then
// rebuilds the pool without them in one pass. Rebuilding instead of removing
// in place avoids mutating the pool while iterating it.
// Callers must hold a.mu.
func (a *OrderAggregator) removeItems(items []*order.OrderItem) error {
	remove := make(map[kernel.UUID]bool, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}

		if !a.contains(item) {
			return errs.NewObjectNotFoundError("orderItem", item.ID())
		}
		remove[item.ID()] = true
	}

	kept := make([]*order.OrderItem, 0, len(a.pendingItems)-len(remove))
	for _, item := range a.pendingItems {
		if !remove[item.ID()] {
			kept = append(kept, item)
		}
	}

	a.pendingItems = kept
	return nil
}

// contains reports whether an item with the same identity is in the pool.
// Callers must hold a.mu.
func (a *OrderAggregator) contains(item *order.OrderItem) bool {
	for _, pending := range a.pendingItems {
		if pending.IsEqual(item) {
			return true
		}
	}
	return false
}
