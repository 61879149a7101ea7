package shipment

import (
	"strings"

	"globaledge/internal/core/domain/model/kernel"
)

// Contact holds the party information attached to a shipment: who sends it and
// who receives it. All fields are optional at this level; whether an email is
// required depends on the role (recipients must have one, shippers need not).
type Contact struct {
	name  string
	email kernel.Email
	phone kernel.Phone
}

// NewContact builds a contact from raw form input. The email is normalized but
// only validated when present: a blank email yields a contact without one.
func NewContact(name, email, phone string) (Contact, error) {
	contact := Contact{
		name:  strings.TrimSpace(name),
		phone: kernel.NewPhone(phone),
	}

	if kernel.NormalizeEmail(email) != "" {
		parsed, err := kernel.NewEmail(email)
		if err != nil {
			return Contact{}, err
		}
		contact.email = parsed
	}

	return contact, nil
}

// Name returns the contact's display name, possibly empty.
func (c Contact) Name() string {
	return c.name
}

// Email returns the contact's normalized email; check IsZero before use.
func (c Contact) Email() kernel.Email {
	return c.email
}

// Phone returns the contact's normalized phone; check IsZero before use.
func (c Contact) Phone() kernel.Phone {
	return c.phone
}

// HasEmail reports whether the contact carries an email address.
func (c Contact) HasEmail() bool {
	return !c.email.IsZero()
}
