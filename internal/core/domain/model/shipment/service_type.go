package shipment

import (
	"fmt"
	"strings"

	"globaledge/internal/pkg/errs"
)

// ServiceType classifies a shipment as a parcel or a freight booking.
type ServiceType string

const (
	// ServiceTypeParcel covers single-package shipments priced by billable weight.
	ServiceTypeParcel ServiceType = "parcel"

	// ServiceTypeFreight covers palletized cargo moved by air, sea, or road.
	ServiceTypeFreight ServiceType = "freight"
)

// ParseServiceType maps an explicit service type string to its canonical form.
// When declared is empty, the type is inferred from the presence of a freight
// payload: freight detail means freight, anything else is parcel.
func ParseServiceType(declared string, hasFreight bool) (ServiceType, error) {
	switch strings.ToLower(strings.TrimSpace(declared)) {
	case "":
		if hasFreight {
			return ServiceTypeFreight, nil
		}
		return ServiceTypeParcel, nil
	case string(ServiceTypeParcel):
		return ServiceTypeParcel, nil
	case string(ServiceTypeFreight):
		return ServiceTypeFreight, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause(
			"serviceType",
			fmt.Errorf("%q is not a valid service type", declared),
		)
	}
}

// Validate checks whether the service type is one of the known values.
func (t ServiceType) Validate() error {
	if t != ServiceTypeParcel && t != ServiceTypeFreight {
		return errs.NewValueIsInvalidErrorWithCause(
			"serviceType",
			fmt.Errorf("%q is not a valid service type", string(t)),
		)
	}
	return nil
}

// String returns the lowercase wire form.
func (t ServiceType) String() string {
	return string(t)
}
