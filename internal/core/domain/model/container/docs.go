// Package container provides the transport side of the shipment domain.
//
// The package includes:
//   - Container: A fixed-capacity transport unit accumulating orders for one
//     destination, guarding the no-negative-remaining-volume invariant
//   - Manifest: An ordered destination-to-containers mapping preserving
//     first-seen destination order and container creation order, which keeps
//     first-fit packing deterministic
//
// Containers never shrink and orders are never removed from them; once
// packed, an order stays in its container for the lifetime of the manifest.
package container
