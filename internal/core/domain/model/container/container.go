package container

import (
	"errors"
	"fmt"

	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/core/domain/model/order"
	"shipment/internal/pkg/errs"
	"shipment/internal/pkg/guard"
)

var (
	// ErrCannotStoreOrderInThisContainer indicates that an order cannot be stored
	// in the container because its remaining volume is insufficient.
	ErrCannotStoreOrderInThisContainer = errors.New("cannot store order in this container")

	// ErrContainerIsNotConstructed indicates that the Container was not
	// properly initialized through the NewContainer constructor function.
	ErrContainerIsNotConstructed = errors.New("Container must be created via NewContainer constructor")
)

// Container represents a fixed-capacity transport unit holding zero or more
// orders bound for a single destination. It is a domain entity that
// encapsulates the packing constraint of the shipment system.
//
// A Container has a fixed total volume capacity and accumulates orders until
// its remaining volume runs out. Orders are only appended, never removed, so
// the remaining volume is monotonically decreasing.
//
// Key business rules:
//   - Must be constructed through NewContainer
//   - Capacity is positive and never shrinks
//   - VolumeLeft never goes negative: Store refuses orders that do not fit
//
// Example usage:
//
//	c, err := container.NewContainer(kernel.NewUUID(), 10)
//	if err != nil {
//	    return err
//	}
//
//	canStore, err := c.CanStore(anOrder.TotalVolume())
//	if err != nil {
//	    return err
//	}
//	if canStore {
//	    err = c.Store(anOrder)
//	}
type Container struct {
	// id uniquely identifies the container
	id kernel.UUID

	// volume is the total volume capacity of the container
	volume int

	// orders are the orders currently packed into the container
	orders []*order.Order

	// guard ensures the container was created via NewContainer
	guard guard.ConstructorGuard
}

// NewContainer creates an empty Container with the specified capacity.
// This is the only way to create a properly initialized Container instance.
//
// Parameters:
//   - id: Unique identifier for the container (must be valid UUID)
//   - volume: Total volume capacity (must be greater than 0)
//
// Returns:
//   - *Container: Properly initialized container entity
//   - error: Aggregated validation errors, if any
func NewContainer(id kernel.UUID, volume int) (*Container, error) {
	container := &Container{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(container.setID(id), container.setVolume(volume)); err != nil {
		return nil, err
	}

	return container, nil
}

// IsEqual compares two containers by their unique identifiers.
// Containers are considered equal if they have the same ID.
func (c *Container) IsEqual(other *Container) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the unique identifier of the container.
func (c *Container) ID() kernel.UUID {
	return c.id
}

// Volume returns the total volume capacity of the container.
func (c *Container) Volume() int {
	return c.volume
}

// Orders returns the orders currently packed into the container.
// The returned slice is a copy to prevent external modification.
func (c *Container) Orders() []*order.Order {
	out := make([]*order.Order, len(c.orders))
	copy(out, c.orders)
	return out
}

// VolumeLeft returns the remaining volume in the container: the total
// capacity minus the summed volume of every packed order. For a container
// filled exclusively through Store, the result is never negative.
func (c *Container) VolumeLeft() int {
	used := 0
	for _, o := range c.orders {
		used += o.TotalVolume()
	}
	return c.volume - used
}

// CanStore determines whether an order with the specified volume fits into
// the remaining capacity of this container.
//
// Parameters:
//   - volume: The total volume of the order to be stored (must not be negative)
//
// Returns:
//   - bool: True if the order fits, false otherwise
//   - error: Validation error if volume is negative
func (c *Container) CanStore(volume int) (bool, error) {
	if volume < 0 {
		return false, errs.NewValueIsInvalidErrorWithCause(
			"volume is invalid",
			fmt.Errorf("%d is negative", volume),
		)
	}

	return c.VolumeLeft() >= volume, nil
}

// Store packs an order into this container. The order is appended to the
// container's order list only after a successful fit check, which keeps the
// VolumeLeft invariant intact.
//
// Parameters:
//   - o: The order to pack (must be valid and fit into the remaining volume)
//
// Returns:
//   - error: Validation error if the order is invalid, or
//     ErrCannotStoreOrderInThisContainer if it does not fit
func (c *Container) Store(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	canStore, err := c.CanStore(o.TotalVolume())
	if err != nil {
		return err
	}

	if !canStore {
		return ErrCannotStoreOrderInThisContainer
	}

	c.orders = append(c.orders, o)
	return nil
}

// Validate checks if the Container entity is in a valid state.
// This method ensures the entity was properly constructed through the
// NewContainer constructor function.
func (c *Container) Validate() error {
	if c == nil {
		return ErrContainerIsNotConstructed
	}
	return c.guard.Validate(ErrContainerIsNotConstructed)
}

func (c *Container) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}

func (c *Container) setVolume(volume int) error {
	if volume <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"volume is invalid",
			fmt.Errorf("%d is not greater than 0", volume),
		)
	}

	c.volume = volume
	return nil
}
