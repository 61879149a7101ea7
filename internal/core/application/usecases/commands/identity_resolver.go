package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"globaledge/internal/core/domain/model/account"
	"globaledge/internal/core/domain/model/kernel"
	"globaledge/internal/core/domain/model/shipment"
	"globaledge/internal/core/ports"
	"globaledge/internal/pkg/errs"
)

// IdentityResolver maps a booking contact to an account.
// Looks up by normalized email first, then by normalized phone, and creates
// a prospect account when the contact has an email but no match.
//
// Resolution is best-effort: any failure logs a warning and yields no owner,
// so a broken lookup never blocks a booking. The shipment proceeds ownerless.
type IdentityResolver struct {
	log *slog.Logger
}

// NewIdentityResolver creates a resolver that logs failures to the given logger.
func NewIdentityResolver(log *slog.Logger) IdentityResolver {
	return IdentityResolver{
		log: log.With("component", "identity-resolver"),
	}
}

// Resolve returns the account ID for the contact, or nil when the contact
// cannot be matched or created. Never returns an error.
func (r IdentityResolver) Resolve(
	ctx context.Context,
	users ports.UserRepository,
	contact shipment.Contact,
) *kernel.UUID {
	if contact.HasEmail() {
		user, err := users.GetByEmail(ctx, contact.Email())
		if err == nil {
			id := user.ID()
			return &id
		}
		if !errors.Is(err, errs.ErrObjectNotFound) {
			r.log.WarnContext(ctx, "email lookup failed", "email", contact.Email().String(), "error", err)
			return nil
		}
	}

	if !contact.Phone().IsZero() {
		user, err := users.GetByPhone(ctx, contact.Phone())
		if err == nil {
			id := user.ID()
			return &id
		}
		if !errors.Is(err, errs.ErrObjectNotFound) {
			r.log.WarnContext(ctx, "phone lookup failed", "phone", contact.Phone().String(), "error", err)
			return nil
		}
	}

	if !contact.HasEmail() {
		return nil
	}

	prospect, err := account.NewProspect(
		kernel.NewUUID(),
		contact.Name(),
		contact.Email(),
		contact.Phone(),
		time.Now(),
	)
	if err != nil {
		r.log.WarnContext(ctx, "prospect creation failed", "email", contact.Email().String(), "error", err)
		return nil
	}

	if err = users.Add(ctx, prospect); err != nil {
		// Lost a race on the email uniqueness constraint: someone else
		// created the account between lookup and insert.
		if errors.Is(err, errs.ErrObjectAlreadyExists) {
			if user, lookupErr := users.GetByEmail(ctx, contact.Email()); lookupErr == nil {
				id := user.ID()
				return &id
			}
		}

		r.log.WarnContext(ctx, "prospect persistence failed", "email", contact.Email().String(), "error", err)
		return nil
	}

	id := prospect.ID()
	return &id
}
