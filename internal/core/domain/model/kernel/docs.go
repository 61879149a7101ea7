// Package kernel provides the shared value objects used across the shipment
// domain: UUID identifiers, tracking numbers, normalized emails, phones, and
// free-text places.
//
// All types follow the same discipline: private fields, constructor functions
// that normalize and validate input, and a Validate method that rejects zero
// values. This keeps invariants (emails lowercased, places trimmed, tracking
// numbers prefixed) enforced at construction instead of scattered through the
// application layer.
package kernel
