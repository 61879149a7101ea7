// Package services provides domain services for the shipment platform:
// business operations that do not naturally belong to a single aggregate.
//
// The package includes:
//   - RateCalculator: pure, deterministic quoting of parcel and freight
//     shipments from billable weight
//
// Domain services here never perform I/O; anything touching storage or
// external collaborators lives in the application layer instead.
package services
