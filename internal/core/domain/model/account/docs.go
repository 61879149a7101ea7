// Package account provides the user identity consumed by the shipment domain.
// The shipment core only creates lightweight "prospect" users during guest
// bookings; the full account lifecycle (registration, credentials, sessions)
// belongs to the auth collaborator.
package account
