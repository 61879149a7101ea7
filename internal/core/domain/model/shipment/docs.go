// Package shipment provides the domain model for bookings and tracking in the
// shipping platform. It implements the Shipment aggregate root together with
// its supporting value objects.
//
// The package includes:
//   - Shipment: the aggregate root owning identity, route, contacts, the quote
//     snapshot, and the status timeline
//   - Status: the lifecycle code set with input normalization and display labels
//   - TimelineEntry: one immutable event in the append-only audit log
//   - Parcel / Freight: the per-service-type physical details
//   - Contact and Quote value objects
//
// Key business rules:
//   - Shipments always carry a unique tracking number and a recipient email
//   - Parcel shipments require a normalized recipient address of at least
//     6 characters; freight shipments do not
//   - The timeline is append-only; the shipment status always matches the most
//     recent timeline entry
//   - Status transitions are unrestricted among valid codes: operators may
//     correct mistakes in any direction
package shipment
