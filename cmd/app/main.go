// Command app runs a small end-to-end scenario through the aggregation
// services: items are collected per customer, bundled into orders, tagged
// with destinations, and packed into containers.
package main

import (
	"fmt"
	"os"

	"shipment/cmd"
	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/core/domain/model/order"
	"shipment/internal/core/domain/services"
	"shipment/internal/pkg/logging"

	"go.uber.org/zap"
)

func main() {
	logger, err := logging.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to build logger:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	root, err := cmd.NewCompositionRoot(cmd.DefaultConfig())
	if err != nil {
		logger.Fatal("failed to build composition root", zap.Error(err))
	}

	if err := run(root, logger); err != nil {
		logger.Fatal("scenario failed", zap.Error(err))
	}
}

func run(root cmd.CompositionRoot, logger *zap.Logger) error {
	orderAggregator := root.OrderAggregator()

	items := []struct {
		customer string
		product  string
		quantity int
		volume   int
	}{
		{"alice", "chair", 2, 3},
		{"alice", "lamp", 1, 4},
		{"bob", "desk", 1, 6},
		{"bob", "shelf", 1, 6},
		{"carol", "piano", 1, 25},
	}
	for _, it := range items {
		item, err := order.NewOrderItem(kernel.NewUUID(), it.customer, it.product, it.quantity, it.volume)
		if err != nil {
			return err
		}
		if err = orderAggregator.AddItem(item); err != nil {
			return err
		}
	}

	destinations := map[string]string{
		"alice": "Tallinn",
		"bob":   "Tallinn",
		"carol": "Tartu",
	}

	var orders []*order.Order
	for _, customer := range []string{"alice", "bob", "carol"} {
		aggregated, err := orderAggregator.AggregateOrder(customer, 10, 30)
		if err != nil {
			return err
		}
		if aggregated == nil {
			logger.Info("no order produced", zap.String("customer", customer))
			continue
		}

		destination, err := kernel.NewDestination(destinations[customer])
		if err != nil {
			return err
		}
		if err = aggregated.AssignDestination(destination); err != nil {
			return err
		}

		logger.Info("order aggregated",
			zap.String("orderId", aggregated.ID().String()),
			zap.String("customer", customer),
			zap.String("destination", destination.Name()),
			zap.Int("totalQuantity", aggregated.TotalQuantity()),
			zap.Int("totalVolume", aggregated.TotalVolume()),
		)
		orders = append(orders, aggregated)
	}

	return packOrders(root.ContainerAggregator(), orders, logger)
}

func packOrders(aggregator *services.ContainerAggregator, orders []*order.Order, logger *zap.Logger) error {
	manifest, err := aggregator.PrepareContainers(orders)
	if err != nil {
		return err
	}

	for _, destination := range manifest.Destinations() {
		for i, c := range manifest.Containers(destination) {
			logger.Info("container packed",
				zap.String("destination", destination.Name()),
				zap.Int("position", i),
				zap.String("containerId", c.ID().String()),
				zap.Int("orders", len(c.Orders())),
				zap.Int("volumeLeft", c.VolumeLeft()),
			)
		}
	}

	for _, rejected := range aggregator.NotUsedOrders() {
		logger.Warn("order exceeds container volume",
			zap.String("orderId", rejected.ID().String()),
			zap.String("customer", rejected.Customer()),
			zap.Int("totalVolume", rejected.TotalVolume()),
			zap.Int("containerVolume", aggregator.ContainerVolume()),
		)
	}

	return nil
}
