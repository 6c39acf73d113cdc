// Package order provides domain entities for order management in the shipment
// system. It implements the order item value and the Order aggregate built
// from one customer's items.
//
// The package includes:
//   - OrderItem: An immutable value describing one customer's request for a
//     quantity of a single product, with a derived total volume
//   - Order: The aggregate bundling one customer's items, with derived
//     quantity and volume totals and an optional shipping destination
//
// Key business rules:
//   - Items must have a non-empty customer, a non-empty product name,
//     a positive quantity, and a non-negative per-unit volume
//   - Orders must contain at least one item; empty orders are never created
//   - All items of an order belong to one customer (guaranteed by the
//     aggregation service that constructs orders)
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
