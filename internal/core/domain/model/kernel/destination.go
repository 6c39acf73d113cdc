package kernel

import (
	"shipment/internal/pkg/errs"
	"shipment/internal/pkg/guard"
)

// ErrDestinationIsNotConstructed indicates that a Destination was not created
// through the NewDestination constructor. Validating a zero-value Destination
// returns this error.
var ErrDestinationIsNotConstructed = errs.NewValueIsRequiredError("Destination must be created via NewDestination constructor")

// Destination is a value object that identifies where a group of orders is
// shipped to. It wraps a non-empty human-readable label (e.g. a city or a
// warehouse code) and is used as the bucket key when packing orders into
// containers.
//
// Destination is immutable and comparable, so it can serve as a map key.
// The zero value is invalid and must be constructed via NewDestination.
type Destination struct {
	name string

	guard guard.ConstructorGuard
}

// NewDestination creates a Destination from a non-empty label.
//
// Returns an errs.ValueIsRequiredError if the label is empty.
func NewDestination(name string) (Destination, error) {
	if name == "" {
		return Destination{}, errs.NewValueIsRequiredError("destination name is required")
	}

	return Destination{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Name returns the destination label.
func (d Destination) Name() string {
	return d.name
}

// String implements fmt.Stringer.
func (d Destination) String() string {
	return d.name
}

// IsEqual compares two destinations by label.
func (d Destination) IsEqual(other Destination) bool {
	return d.name == other.name
}

// Validate checks that the Destination was created via NewDestination.
func (d Destination) Validate() error {
	return d.guard.Validate(ErrDestinationIsNotConstructed)
}
