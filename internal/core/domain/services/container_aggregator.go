package services

import (
	"fmt"
	"sync"

	"shipment/internal/core/domain/model/container"
	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/core/domain/model/order"
	"shipment/internal/pkg/errs"
)

// ContainerAggregator is a domain service that packs destination-tagged
// orders into fixed-capacity containers using greedy first-fit placement.
//
// Every container created by one aggregator instance has the same configured
// volume. Orders are processed in the sequence supplied to PrepareContainers;
// packing is not commutative, so callers that rely on stable results must
// control input ordering.
//
// Orders whose total volume exceeds the configured container volume can never
// fit any container. Instead of creating a container that would immediately
// violate the no-negative-remaining-volume invariant, such orders are
// recorded and exposed through NotUsedOrders for reporting.
//
// Example usage:
//
//	aggregator, err := services.NewContainerAggregator(10)
//	if err != nil {
//	    return err
//	}
//
//	manifest, err := aggregator.PrepareContainers(orders)
//	if err != nil {
//	    return err
//	}
//	for _, destination := range manifest.Destinations() {
//	    fmt.Println(destination, len(manifest.Containers(destination)))
//	}
//	rejected := aggregator.NotUsedOrders()
type ContainerAggregator struct {
	mu sync.Mutex

	// containerVolume is the capacity applied to every container this
	// instance creates
	containerVolume int

	// notUsedOrders holds the orders rejected as oversized during the last
	// PrepareContainers call
	notUsedOrders []*order.Order
}

// NewContainerAggregator creates a ContainerAggregator whose containers all
// have the given volume.
//
// Parameters:
//   - containerVolume: Capacity of every container created by this instance
//     (must be greater than 0)
//
// Returns:
//   - *ContainerAggregator: The configured aggregator
//   - error: Validation error if containerVolume is not positive
func NewContainerAggregator(containerVolume int) (*ContainerAggregator, error) {
	if containerVolume <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"containerVolume is invalid",
			fmt.Errorf("%d is not greater than 0", containerVolume),
		)
	}

	return &ContainerAggregator{
		containerVolume: containerVolume,
	}, nil
}

// ContainerVolume returns the capacity applied to every container created by
// this aggregator.
func (a *ContainerAggregator) ContainerVolume() int {
	return a.containerVolume
}

// NotUsedOrders returns the orders that could not be placed during the last
// PrepareContainers call because their volume exceeds the container volume.
// The list is rebuilt on every call to PrepareContainers.
// The returned slice is a copy to prevent external modification.
func (a *ContainerAggregator) NotUsedOrders() []*order.Order {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]*order.Order, len(a.notUsedOrders))
	copy(out, a.notUsedOrders)
	return out
}

// PrepareContainers packs the given orders into containers grouped by
// destination and returns the resulting manifest.
//
// Orders are processed in the sequence supplied. For each order, the existing
// containers are scanned linearly — destinations in first-seen order,
// containers within a destination in creation order — and the order lands in
// the first container with a matching destination and enough remaining
// volume (first-fit, not best-fit). When no container qualifies, a new one
// with the configured volume is created and registered at the end of the
// order's destination bucket. When the order cannot fit even an empty
// container, it is recorded in NotUsedOrders instead.
//
// Every order must be valid and destination-tagged.
//
// Parameters:
//   - orders: The orders to pack, in packing order
//
// Returns:
//   - *container.Manifest: Destination-keyed containers holding every placed order
//   - error: Validation error if an order is invalid or lacks a destination
//
// The scan-then-place step for each order runs under the instance lock, so
// two concurrent orders cannot race past the same remaining-volume check.
func (a *ContainerAggregator) PrepareContainers(orders []*order.Order) (*container.Manifest, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.notUsedOrders = nil

	manifest := container.NewManifest()
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return nil, err
		}
		if o.Destination() == nil {
			return nil, errs.NewValueIsRequiredError("order destination is required")
		}

		if err := a.place(manifest, o); err != nil {
			return nil, err
		}
	}

	return manifest, nil
}

// place puts one order into the first qualifying container of the manifest,
// creating a new container when none qualifies. Oversized orders go to
// notUsedOrders. Callers must hold a.mu.
func (a *ContainerAggregator) place(manifest *container.Manifest, o *order.Order) error {
	destination := *o.Destination()

	// Direct linear scan over every destination bucket, even though only
	// the order's own destination can ever match.
	for _, d := range manifest.Destinations() {
		for _, c := range manifest.Containers(d) {
			canStore, err := c.CanStore(o.TotalVolume())
			if err != nil {
				return err
			}

			if canStore && d.IsEqual(destination) {
				return c.Store(o)
			}
		}
	}

	if o.TotalVolume() > a.containerVolume {
		a.notUsedOrders = append(a.notUsedOrders, o)
		return nil
	}

	c, err := container.NewContainer(kernel.NewUUID(), a.containerVolume)
	if err != nil {
		return err
	}

	if err = c.Store(o); err != nil {
		return err
	}

	return manifest.Register(destination, c)
}
