// Package errs provides the standardized error types used across the shipment
// platform. It implements a consistent pattern for error creation, formatting,
// and unwrapping.
//
// The package covers the application's error taxonomy:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     validation failures, surfaced as client errors at the HTTP boundary
//   - ObjectNotFoundError: unknown identifiers and tracking numbers
//   - ObjectAlreadyExistsError: uniqueness conflicts (duplicate tracking
//     numbers, duplicate identity records)
//   - VersionIsInvalidError: aggregate version failures
//
// Each error type follows the same pattern: a sentinel error variable, a struct
// with fields for error details, constructors with and without cause, an
// Error() method, and an Unwrap() method pointing at the sentinel so callers
// can classify errors with errors.Is.
package errs
