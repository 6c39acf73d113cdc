package container

import (
	"shipment/internal/core/domain/model/kernel"
)

// Manifest is an ordered mapping from destination to the containers packed
// for it. Destinations are kept in the order they were first registered and
// containers within a destination in creation order, so the first-fit scan of
// the packing algorithm is deterministic. A plain map would not preserve
// either ordering.
type Manifest struct {
	// destinations records the first-seen order of destination buckets
	destinations []kernel.Destination

	// containers holds the per-destination container lists in creation order
	containers map[kernel.Destination][]*Container
}

// NewManifest creates an empty Manifest.
func NewManifest() *Manifest {
	return &Manifest{
		containers: make(map[kernel.Destination][]*Container),
	}
}

// Register appends a container to the destination's bucket, creating the
// bucket at the end of the destination order if this is the first container
// for that destination.
//
// Returns a validation error if the destination is a zero value or the
// container was not properly constructed.
func (m *Manifest) Register(destination kernel.Destination, container *Container) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	if err := container.Validate(); err != nil {
		return err
	}

	if _, ok := m.containers[destination]; !ok {
		m.destinations = append(m.destinations, destination)
	}
	m.containers[destination] = append(m.containers[destination], container)
	return nil
}

// Destinations returns every registered destination in first-seen order.
// The returned slice is a copy to prevent external modification.
func (m *Manifest) Destinations() []kernel.Destination {
	out := make([]kernel.Destination, len(m.destinations))
	copy(out, m.destinations)
	return out
}

// Containers returns the containers registered for the given destination in
// creation order. The returned slice is a copy; it shares the container
// pointers with the manifest. Returns nil for an unknown destination.
func (m *Manifest) Containers(destination kernel.Destination) []*Container {
	bucket, ok := m.containers[destination]
	if !ok {
		return nil
	}

	out := make([]*Container, len(bucket))
	copy(out, bucket)
	return out
}

// TotalContainers returns the number of containers across all destinations.
func (m *Manifest) TotalContainers() int {
	total := 0
	for _, bucket := range m.containers {
		total += len(bucket)
	}
	return total
}

// TotalOrders returns the number of orders packed across all containers.
func (m *Manifest) TotalOrders() int {
	total := 0
	for _, bucket := range m.containers {
		for _, c := range bucket {
			total += len(c.Orders())
		}
	}
	return total
}
