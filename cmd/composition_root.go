package cmd

import (
	"shipment/internal/core/domain/services"
)

// CompositionRoot wires the domain services together for the application
// entrypoint. Callers obtain fully constructed aggregators from it instead of
// assembling them by hand.
type CompositionRoot struct {
	orderAggregator     *services.OrderAggregator
	containerAggregator *services.ContainerAggregator
}

// NewCompositionRoot builds the aggregation services from the given config.
func NewCompositionRoot(config Config) (CompositionRoot, error) {
	containerAggregator, err := services.NewContainerAggregator(config.ContainerVolume)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		orderAggregator:     services.NewOrderAggregator(),
		containerAggregator: containerAggregator,
	}, nil
}

// OrderAggregator returns the order aggregation service.
func (c CompositionRoot) OrderAggregator() *services.OrderAggregator {
	return c.orderAggregator
}

// ContainerAggregator returns the container packing service.
func (c CompositionRoot) ContainerAggregator() *services.ContainerAggregator {
	return c.containerAggregator
}
