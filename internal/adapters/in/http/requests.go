package http

import (
	"strings"

	"globaledge/internal/core/application/usecases/commands"
)

// contactRequest is the shipper/recipient block of a booking request.
type contactRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type parcelRequest struct {
	Weight   float64 `json:"weight"`
	Length   float64 `json:"length"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Value    float64 `json:"value"`
	Contents string  `json:"contents"`
	Level    string  `json:"level"`
}

type freightRequest struct {
	Mode     string  `json:"mode"`
	Pallets  int     `json:"pallets"`
	Length   float64 `json:"length"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Weight   float64 `json:"weight"`
	Incoterm string  `json:"incoterm"`
	Notes    string  `json:"notes"`
}

// createShipmentRequest is the booking payload. Clients may send the route
// as from/to or as origin/destination; from/to win when both are present.
// The flat recipientEmail and top-level serviceLevel fields are kept for
// older clients.
type createShipmentRequest struct {
	ServiceType      string          `json:"serviceType"`
	ServiceLevel     string          `json:"serviceLevel"`
	From             string          `json:"from"`
	To               string          `json:"to"`
	Origin           string          `json:"origin"`
	Destination      string          `json:"destination"`
	Shipper          contactRequest  `json:"shipperContact"`
	Recipient        contactRequest  `json:"recipientContact"`
	RecipientEmail   string          `json:"recipientEmail"`
	RecipientAddress string          `json:"recipientAddress"`
	Parcel           *parcelRequest  `json:"parcel"`
	Freight          *freightRequest `json:"freight"`
}

// quoteRequest prices a shipment without booking it.
type quoteRequest struct {
	ServiceType  string          `json:"serviceType"`
	ServiceLevel string          `json:"serviceLevel"`
	Parcel       *parcelRequest  `json:"parcel"`
	Freight      *freightRequest `json:"freight"`
}

// updateShipmentRequest is the operator patch payload. Absent fields stay
// untouched; the same origin/destination aliasing as booking applies.
type updateShipmentRequest struct {
	Status       *string `json:"status"`
	LastLocation *string `json:"lastLocation"`
	Note         *string `json:"note"`
	ETA          *string `json:"eta"`
	ETAAt        *string `json:"etaAt"`
	From         *string `json:"from"`
	To           *string `json:"to"`
	Origin       *string `json:"origin"`
	Destination  *string `json:"destination"`
}

// notifyRecipientRequest optionally redirects or rewords the notification.
type notifyRecipientRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// resolveRoute collapses the from/origin and to/destination aliases to one
// canonical pair. Done once at the boundary so nothing downstream deals
// with alternate spellings.
func resolveRoute(from, origin, to, destination string) (string, string) {
	resolvedFrom := strings.TrimSpace(from)
	if resolvedFrom == "" {
		resolvedFrom = strings.TrimSpace(origin)
	}
	resolvedTo := strings.TrimSpace(to)
	if resolvedTo == "" {
		resolvedTo = strings.TrimSpace(destination)
	}
	return resolvedFrom, resolvedTo
}

// resolveRoutePatch applies the same aliasing to optional patch fields.
// A nil primary falls back to the alias; both nil means no change.
func resolveRoutePatch(primary, alias *string) *string {
	if primary != nil {
		return primary
	}
	return alias
}

// resolveServiceLevel applies the top-level serviceLevel alias. The alias
// wins over the nested parcel level when both are sent.
func resolveServiceLevel(alias, parcelLevel string) string {
	if trimmed := strings.TrimSpace(alias); trimmed != "" {
		return trimmed
	}
	return parcelLevel
}

// resolveRecipientEmail merges the flat recipientEmail field into the nested
// recipient contact; the nested email wins when both are sent.
func resolveRecipientEmail(nested, flat string) string {
	if strings.TrimSpace(nested) != "" {
		return nested
	}
	return strings.TrimSpace(flat)
}

func (r createShipmentRequest) toCommandInput() (commands.ContactInput, commands.ContactInput, *commands.ParcelInput, *commands.FreightInput) {
	shipper := commands.ContactInput{
		Name:  r.Shipper.Name,
		Email: r.Shipper.Email,
		Phone: r.Shipper.Phone,
	}
	recipient := commands.ContactInput{
		Name:  r.Recipient.Name,
		Email: resolveRecipientEmail(r.Recipient.Email, r.RecipientEmail),
		Phone: r.Recipient.Phone,
	}

	parcel := r.Parcel.toInput()
	if parcel != nil {
		parcel.Level = resolveServiceLevel(r.ServiceLevel, parcel.Level)
	}

	return shipper, recipient, parcel, r.Freight.toInput()
}

func (p *parcelRequest) toInput() *commands.ParcelInput {
	if p == nil {
		return nil
	}
	return &commands.ParcelInput{
		Weight:   p.Weight,
		Length:   p.Length,
		Width:    p.Width,
		Height:   p.Height,
		Value:    p.Value,
		Contents: p.Contents,
		Level:    p.Level,
	}
}

func (f *freightRequest) toInput() *commands.FreightInput {
	if f == nil {
		return nil
	}
	return &commands.FreightInput{
		Mode:     f.Mode,
		Pallets:  f.Pallets,
		Length:   f.Length,
		Width:    f.Width,
		Height:   f.Height,
		Weight:   f.Weight,
		Incoterm: f.Incoterm,
		Notes:    f.Notes,
	}
}
