package shipment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"globaledge/internal/core/domain/model/kernel"
	"globaledge/internal/pkg/errs"
)

// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
// created through NewShipment or RestoreShipment.
var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment")

// minRecipientAddressLen is the shortest normalized recipient address accepted
// for parcel shipments.
const minRecipientAddressLen = 6

// Shipment is the aggregate root of the booking and tracking domain. It owns
// the booking identity, the route, party contacts, the immutable quote
// snapshot, and the status timeline.
//
// Invariants:
//   - The tracking number is globally unique (backed by a storage index).
//   - Parcel shipments carry a normalized recipient address of at least 6 chars.
//   - The recipient always has an email address.
//   - The timeline is append-only, non-empty after creation, and the current
//     status always equals the most recent timeline entry's status.
//   - The quote snapshot (currency, price, billable) never changes after
//     creation; only the ETA display fields may be amended by operators.
//
// Shipments are never deleted by core logic and statuses may move freely
// between any valid codes: operator flexibility is preferred over a strict
// forward-only workflow.
type Shipment struct {
	id               kernel.UUID
	trackingNumber   kernel.TrackingNumber
	userID           *kernel.UUID
	serviceType      ServiceType
	from             kernel.Place
	to               kernel.Place
	shipper          Contact
	recipient        Contact
	recipientAddress string
	parcel           *Parcel
	freight          *Freight
	quote            Quote
	etaText          string
	etaAt            *time.Time
	status           Status
	lastLocation     string
	timeline         []TimelineEntry
	createdAt        time.Time
	updatedAt        time.Time

	isConstructed bool
}

// NewShipment creates a booked shipment with a seeded CREATED timeline entry.
//
// Validation covers the creation rules: route endpoints present, a recipient
// email present, the service-type payload present, and (for parcels) a usable
// recipient address. The quote must already be priced; shipments are never
// created unpriced.
func NewShipment(
	id kernel.UUID,
	trackingNumber kernel.TrackingNumber,
	userID *kernel.UUID,
	serviceType ServiceType,
	from kernel.Place,
	to kernel.Place,
	shipper Contact,
	recipient Contact,
	recipientAddress string,
	parcel *Parcel,
	freight *Freight,
	quote Quote,
	now time.Time,
) (*Shipment, error) {
	s := &Shipment{
		status:        StatusCreated,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setTrackingNumber(trackingNumber),
		s.setUserID(userID),
		s.setServiceType(serviceType),
		s.setRoute(from, to),
		s.setContacts(shipper, recipient),
		s.setDetail(serviceType, parcel, freight),
		s.setRecipientAddress(serviceType, recipientAddress),
		s.setQuote(quote),
	); err != nil {
		return nil, err
	}

	if now.IsZero() {
		now = time.Now()
	}
	created, err := NewTimelineEntry(StatusCreated, now, "Booking created")
	if err != nil {
		return nil, err
	}
	s.timeline = []TimelineEntry{created}
	s.createdAt = now
	s.updatedAt = now

	return s, nil
}

// RestoreShipment reconstructs a shipment from persistence. Field combinations
// are trusted to the extent the constructor enforced them at creation; only
// structural invariants (identity, status validity, non-empty timeline) are
// re-checked.
func RestoreShipment(
	id kernel.UUID,
	trackingNumber kernel.TrackingNumber,
	userID *kernel.UUID,
	serviceType ServiceType,
	from kernel.Place,
	to kernel.Place,
	shipper Contact,
	recipient Contact,
	recipientAddress string,
	parcel *Parcel,
	freight *Freight,
	quote Quote,
	etaText string,
	etaAt *time.Time,
	status Status,
	lastLocation string,
	timeline []TimelineEntry,
	createdAt time.Time,
	updatedAt time.Time,
) (*Shipment, error) {
	if err := errors.Join(
		id.Validate(),
		trackingNumber.Validate(),
		serviceType.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if len(timeline) == 0 {
		return nil, errs.NewValueIsRequiredError("timeline")
	}

	return &Shipment{
		id:               id,
		trackingNumber:   trackingNumber,
		userID:           userID,
		serviceType:      serviceType,
		from:             from,
		to:               to,
		shipper:          shipper,
		recipient:        recipient,
		recipientAddress: recipientAddress,
		parcel:           parcel,
		freight:          freight,
		quote:            quote,
		etaText:          etaText,
		etaAt:            etaAt,
		status:           status,
		lastLocation:     lastLocation,
		timeline:         timeline,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
		isConstructed:    true,
	}, nil
}

// Validate ensures the Shipment instance came through a constructor.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// ID returns the shipment's internal identifier.
func (s *Shipment) ID() kernel.UUID { return s.id }

// TrackingNumber returns the public tracking identifier.
func (s *Shipment) TrackingNumber() kernel.TrackingNumber { return s.trackingNumber }

// UserID returns the owning user's ID, or nil for guest shipments.
func (s *Shipment) UserID() *kernel.UUID { return s.userID }

// ServiceType returns parcel or freight.
func (s *Shipment) ServiceType() ServiceType { return s.serviceType }

// From returns the origin place.
func (s *Shipment) From() kernel.Place { return s.from }

// To returns the destination place.
func (s *Shipment) To() kernel.Place { return s.to }

// Shipper returns the sending party's contact block.
func (s *Shipment) Shipper() Contact { return s.shipper }

// Recipient returns the receiving party's contact block.
func (s *Shipment) Recipient() Contact { return s.recipient }

// RecipientEmail returns the recipient's email, kept in lockstep with the
// recipient contact block.
func (s *Shipment) RecipientEmail() kernel.Email { return s.recipient.Email() }

// RecipientAddress returns the normalized delivery address.
func (s *Shipment) RecipientAddress() string { return s.recipientAddress }

// Parcel returns the parcel detail, nil for freight shipments.
func (s *Shipment) Parcel() *Parcel { return s.parcel }

// Freight returns the freight detail, nil for parcel shipments.
func (s *Shipment) Freight() *Freight { return s.freight }

// Quote returns the immutable commercial snapshot.
func (s *Shipment) Quote() Quote { return s.quote }

// ETAText returns the current ETA label shown to customers.
func (s *Shipment) ETAText() string { return s.etaText }

// ETAAt returns the exact ETA datetime when an operator has set one.
func (s *Shipment) ETAAt() *time.Time { return s.etaAt }

// Status returns the current lifecycle status.
func (s *Shipment) Status() Status { return s.status }

// LastLocation returns the most recent free-text location, possibly empty.
func (s *Shipment) LastLocation() string { return s.lastLocation }

// Timeline returns a copy of the append-only event log.
func (s *Shipment) Timeline() []TimelineEntry {
	out := make([]TimelineEntry, len(s.timeline))
	copy(out, s.timeline)
	return out
}

// CreatedAt returns the booking time.
func (s *Shipment) CreatedAt() time.Time { return s.createdAt }

// UpdatedAt returns the last mutation time.
func (s *Shipment) UpdatedAt() time.Time { return s.updatedAt }

// AttachOwner links the shipment to a resolved user. Used when identity
// resolution completes after construction.
func (s *Shipment) AttachOwner(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	s.userID = &userID
	return nil
}

// ChangeStatus sets the current status. Any valid code is accepted from any
// current status; the change only becomes visible in the timeline once
// RecordUpdate appends the corresponding entry.
func (s *Shipment) ChangeStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}

// SetLastLocation updates the free-text location. An empty string clears it.
func (s *Shipment) SetLastLocation(location string) {
	s.lastLocation = strings.TrimSpace(location)
}

// SetETAText replaces the ETA display label.
func (s *Shipment) SetETAText(eta string) {
	s.etaText = eta
}

// SetETAAt sets the exact ETA datetime.
func (s *Shipment) SetETAAt(at time.Time) {
	s.etaAt = &at
}

// ChangeRoute amends the origin and/or destination. Either argument may be nil
// to leave that endpoint untouched. Returns human-readable descriptions of the
// endpoints that actually changed, for timeline notes.
func (s *Shipment) ChangeRoute(from, to *kernel.Place) []string {
	var changes []string

	if from != nil && !s.from.IsEqual(*from) {
		changes = append(changes, fmt.Sprintf("Origin: %q → %q", s.from.String(), from.String()))
		s.from = *from
	}
	if to != nil && !s.to.IsEqual(*to) {
		changes = append(changes, fmt.Sprintf("Destination: %q → %q", s.to.String(), to.String()))
		s.to = *to
	}

	return changes
}

// RecordUpdate appends one timeline entry carrying the current status. Every
// successful mutation of the shipment must end with exactly one RecordUpdate
// so the timeline stays a complete audit log.
func (s *Shipment) RecordUpdate(note string, at time.Time) error {
	if at.IsZero() {
		at = time.Now()
	}
	entry, err := NewTimelineEntry(s.status, at, note)
	if err != nil {
		return err
	}
	s.timeline = append(s.timeline, entry)
	s.updatedAt = at
	return nil
}

// NormalizeAddress collapses whitespace runs in a free-text address.
func NormalizeAddress(raw string) string {
	return strings.Join(strings.Fields(raw), " ")
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setTrackingNumber(trackingNumber kernel.TrackingNumber) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}
	s.trackingNumber = trackingNumber
	return nil
}

func (s *Shipment) setUserID(userID *kernel.UUID) error {
	if userID != nil {
		if err := userID.Validate(); err != nil {
			return err
		}
	}
	s.userID = userID
	return nil
}

func (s *Shipment) setServiceType(serviceType ServiceType) error {
	if err := serviceType.Validate(); err != nil {
		return err
	}
	s.serviceType = serviceType
	return nil
}

func (s *Shipment) setRoute(from, to kernel.Place) error {
	if err := from.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("from", err)
	}
	if err := to.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("to", err)
	}
	s.from = from
	s.to = to
	return nil
}

func (s *Shipment) setContacts(shipper, recipient Contact) error {
	if !recipient.HasEmail() {
		return errs.NewValueIsRequiredError("recipientEmail")
	}
	s.shipper = shipper
	s.recipient = recipient
	return nil
}

func (s *Shipment) setDetail(serviceType ServiceType, parcel *Parcel, freight *Freight) error {
	switch serviceType {
	case ServiceTypeParcel:
		if parcel == nil {
			return errs.NewValueIsRequiredError("parcel payload")
		}
	case ServiceTypeFreight:
		if freight == nil {
			return errs.NewValueIsRequiredError("freight payload")
		}
	}
	s.parcel = parcel
	s.freight = freight
	return nil
}

func (s *Shipment) setRecipientAddress(serviceType ServiceType, address string) error {
	normalized := NormalizeAddress(address)
	if serviceType == ServiceTypeParcel && len(normalized) < minRecipientAddressLen {
		return errs.NewValueIsInvalidErrorWithCause(
			"recipientAddress",
			fmt.Errorf("parcel shipments require a delivery address of at least %d characters", minRecipientAddressLen),
		)
	}
	s.recipientAddress = normalized
	return nil
}

func (s *Shipment) setQuote(quote Quote) error {
	if err := quote.Validate(); err != nil {
		return err
	}
	s.quote = quote
	s.etaText = quote.ETA()
	return nil
}
