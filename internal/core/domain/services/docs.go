// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the shipment system. It implements the
// aggregation workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - OrderAggregator: Bundles a customer's pending order items into an order
//     when the whole pending set fits the given quantity and volume ceilings
//   - ContainerAggregator: Packs destination-tagged orders into fixed-capacity
//     containers per destination using greedy first-fit placement
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
