package order

import (
	"errors"
	"fmt"

	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/pkg/errs"
	"shipment/internal/pkg/guard"
)

// ErrOrderItemIsNotConstructed is returned when an OrderItem instance was not
// created through the NewOrderItem factory method.
var ErrOrderItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem constructor")

// OrderItem represents one customer's request for a quantity of a single
// product. It is an immutable value: once constructed, none of its attributes
// change. Items live in the aggregator's pending pool until they are bundled
// into an Order, which then owns them.
//
// Invariants enforced at construction:
//   - customer and product name are non-empty
//   - quantity is greater than 0
//   - per-unit volume is not negative
type OrderItem struct {
	// id uniquely identifies the item
	id kernel.UUID

	// customer identifies the customer who requested the item
	customer string

	// name is the product name
	name string

	// quantity is the requested number of units (always positive)
	quantity int

	// oneItemVolume is the volume of a single unit
	oneItemVolume int

	// guard ensures the item was created via NewOrderItem
	guard guard.ConstructorGuard
}

// NewOrderItem creates an OrderItem with validation. This is the only way to
// create a valid OrderItem, ensuring degenerate items (zero quantity, negative
// volume, anonymous customer) never enter the system.
//
// Parameters:
//   - id: Unique identifier for the item (must be valid UUID)
//   - customer: Owning customer identifier (must be non-empty)
//   - name: Product name (must be non-empty)
//   - quantity: Number of units (must be greater than 0)
//   - oneItemVolume: Volume of a single unit (must not be negative)
//
// Returns:
//   - *OrderItem: The created item if all validations pass
//   - error: Aggregated validation errors if any parameter is invalid
//
// Example:
//
//	item, err := order.NewOrderItem(kernel.NewUUID(), "alice", "chair", 2, 3)
//	if err != nil {
//	    return fmt.Errorf("invalid order item: %w", err)
//	}
func NewOrderItem(id kernel.UUID, customer string, name string, quantity int, oneItemVolume int) (*OrderItem, error) {
	item := &OrderItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setCustomer(customer),
		item.setName(name),
		item.setQuantity(quantity),
		item.setOneItemVolume(oneItemVolume),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// IsEqual compares two items by their unique identifiers.
// Items are considered equal if they have the same ID.
func (i *OrderItem) IsEqual(other *OrderItem) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the item's unique identifier.
func (i *OrderItem) ID() kernel.UUID {
	return i.id
}

// Customer returns the identifier of the customer who requested the item.
func (i *OrderItem) Customer() string {
	return i.customer
}

// Name returns the product name.
func (i *OrderItem) Name() string {
	return i.name
}

// Quantity returns the requested number of units.
func (i *OrderItem) Quantity() int {
	return i.quantity
}

// OneItemVolume returns the volume of a single unit.
func (i *OrderItem) OneItemVolume() int {
	return i.oneItemVolume
}

// TotalVolume returns the volume of all requested units together,
// quantity * oneItemVolume.
func (i *OrderItem) TotalVolume() int {
	return i.quantity * i.oneItemVolume
}

// Validate ensures the OrderItem was properly constructed through NewOrderItem.
func (i *OrderItem) Validate() error {
	if i == nil {
		return ErrOrderItemIsNotConstructed
	}
	return i.guard.Validate(ErrOrderItemIsNotConstructed)
}

func (i *OrderItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	i.id = id
	return nil
}

func (i *OrderItem) setCustomer(customer string) error {
	if customer == "" {
		return errs.NewValueIsRequiredError("customer is required")
	}

	i.customer = customer
	return nil
}

func (i *OrderItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name is required")
	}

	i.name = name
	return nil
}

func (i *OrderItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	i.quantity = quantity
	return nil
}

func (i *OrderItem) setOneItemVolume(oneItemVolume int) error {
	if oneItemVolume < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"oneItemVolume is invalid",
			fmt.Errorf("%d is negative", oneItemVolume),
		)
	}

	i.oneItemVolume = oneItemVolume
	return nil
}
