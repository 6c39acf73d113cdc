// Package errs defines the error types shared by the shipment domain model
// and services.
//
// Three error shapes cover the domain's failure modes:
//   - ValueIsRequiredError: a mandatory value (customer, destination name,
//     order items) is missing
//   - ValueIsInvalidError: a value is present but violates a rule (quantity,
//     volume, aggregation limits)
//   - ObjectNotFoundError: a referenced object (a pending order item) does
//     not exist
//
// Each shape pairs a sentinel (ErrValueIsRequired, ErrValueIsInvalid,
// ErrObjectNotFound) with a struct carrying the details, constructors with
// and without a cause, and an Unwrap that resolves to the sentinel so callers
// can classify with errors.Is.
//
// Errors are reserved for rule violations. An absent result is not an error:
// aggregation that produces no order reports (nil, nil) and leaves the
// pending pool untouched.
package errs
