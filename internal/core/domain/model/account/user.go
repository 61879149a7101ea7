package account

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"globaledge/internal/core/domain/model/kernel"
	"globaledge/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through NewProspect or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewProspect or RestoreUser")

// Role classifies how a user record came to exist.
type Role string

const (
	// RoleProspect marks a lightweight record created automatically to link a
	// guest booking to an identity. Prospects have no usable credential; they
	// can claim the account later through the auth collaborator.
	RoleProspect Role = "prospect"

	// RoleCustomer marks a self-registered user (owned by the auth
	// collaborator; this core only reads it).
	RoleCustomer Role = "customer"

	// RoleAdmin marks back-office staff.
	RoleAdmin Role = "admin"
)

// User is the identity a shipment links to. This core creates prospect users
// lazily during guest bookings and otherwise only reads user records; full
// account lifecycle belongs to the auth collaborator.
type User struct {
	id         kernel.UUID
	name       string
	email      kernel.Email
	phone      kernel.Phone
	role       Role
	credential string
	createdAt  time.Time

	isConstructed bool
}

// NewProspect creates the lightweight user record that links a guest booking
// to an identity. An email is mandatory: without one the booking stays
// ownerless instead. The credential is a random placeholder that satisfies
// storage constraints but can never be logged in with.
func NewProspect(id kernel.UUID, name string, email kernel.Email, phone kernel.Phone, now time.Time) (*User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := email.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("email", err)
	}

	if name == "" {
		name = email.LocalPart()
	}
	if now.IsZero() {
		now = time.Now()
	}

	return &User{
		id:            id,
		name:          name,
		email:         email,
		phone:         phone,
		role:          RoleProspect,
		credential:    randomCredential(),
		createdAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreUser reconstructs a user from persistence.
func RestoreUser(id kernel.UUID, name string, email kernel.Email, phone kernel.Phone, role Role, credential string, createdAt time.Time) (*User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &User{
		id:            id,
		name:          name,
		email:         email,
		phone:         phone,
		role:          role,
		credential:    credential,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the User instance came through a constructor.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user's identifier.
func (u *User) ID() kernel.UUID { return u.id }

// Name returns the display name.
func (u *User) Name() string { return u.name }

// Email returns the normalized email; may be zero for phone-only records
// created by other collaborators.
func (u *User) Email() kernel.Email { return u.email }

// Phone returns the normalized phone; may be zero.
func (u *User) Phone() kernel.Phone { return u.phone }

// Role returns the user's role.
func (u *User) Role() Role { return u.role }

// Credential returns the stored credential placeholder.
func (u *User) Credential() string { return u.credential }

// CreatedAt returns when the record was created.
func (u *User) CreatedAt() time.Time { return u.createdAt }

// randomCredential produces an unguessable placeholder for prospect records.
func randomCredential() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		// entropy failure leaves an empty credential, which still cannot be
		// used to authenticate
		return ""
	}
	return hex.EncodeToString(buf)
}
