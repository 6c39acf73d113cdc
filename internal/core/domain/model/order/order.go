package order

import (
	"errors"

	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created through
// the NewOrder factory method. This ensures all orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order represents an aggregated bundle of one customer's order items,
// optionally tagged with a shipping destination.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Must contain at least one valid item
//   - All items conceptually belong to one customer; this is guaranteed by the
//     aggregation logic that builds orders, not enforced here
//
// The destination may be unset at construction and assigned later via
// AssignDestination; container packing requires it to be set.
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// items is the ordered sequence of items bundled into the order
	items []*OrderItem

	// destination is the shipping destination (nil if not yet assigned)
	destination *kernel.Destination

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a new Order instance with validation. This is the only way to create
// a valid Order, ensuring all business invariants are maintained.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - items: Items bundled into the order (at least one, all valid)
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
//
// The order is created without a destination; use AssignDestination to tag it
// before handing it to container packing.
func NewOrder(id kernel.UUID, items []*OrderItem) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
// Orders are considered equal if they have the same ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Items returns the items bundled into the order.
// The returned slice is a copy to prevent external modification.
func (o *Order) Items() []*OrderItem {
	out := make([]*OrderItem, len(o.items))
	copy(out, o.items)
	return out
}

// Customer returns the identifier of the customer the order belongs to.
// All items in an order belong to the same customer by construction.
// Returns an empty string for an order that bypassed NewOrder.
func (o *Order) Customer() string {
	if len(o.items) == 0 {
		return ""
	}
	return o.items[0].Customer()
}

// Destination returns the shipping destination of the order.
// Returns nil if no destination has been assigned yet.
func (o *Order) Destination() *kernel.Destination {
	return o.destination
}

// TotalQuantity returns the sum of quantities of all items in the order.
func (o *Order) TotalQuantity() int {
	total := 0
	for _, item := range o.items {
		total += item.Quantity()
	}
	return total
}

// TotalVolume returns the total volume of all items in the order.
func (o *Order) TotalVolume() int {
	total := 0
	for _, item := range o.items {
		total += item.TotalVolume()
	}
	return total
}

// AssignDestination tags the order with a shipping destination.
// Reassignment is allowed; the last assigned destination wins.
//
// Returns a validation error if the destination is a zero value.
func (o *Order) AssignDestination(destination kernel.Destination) error {
	if err := destination.Validate(); err != nil {
		return err
	}

	o.destination = &destination
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	o.id = id
	return nil
}

func (o *Order) setItems(items []*OrderItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items are required")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]*OrderItem, len(items))
	copy(o.items, items)
	return nil
}
