package shipment

import (
	"fmt"
	"strings"

	"globaledge/internal/pkg/errs"
)

// ServiceLevel is the parcel service tier. Only the literal "express" level
// selects express pricing; every other label prices as standard.
type ServiceLevel string

const (
	// LevelStandard is the default parcel tier.
	LevelStandard ServiceLevel = "standard"

	// LevelExpress is the premium parcel tier with faster ETA and higher rates.
	LevelExpress ServiceLevel = "express"

	// LevelPriority is accepted as a label but prices as standard.
	LevelPriority ServiceLevel = "priority"
)

// ParseServiceLevel normalizes a level label, defaulting blanks to standard.
// Unknown labels are kept verbatim (lowercased): they display as given and
// price as standard.
func ParseServiceLevel(raw string) ServiceLevel {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return LevelStandard
	}
	return ServiceLevel(normalized)
}

// IsExpress reports whether this level triggers express pricing.
func (l ServiceLevel) IsExpress() bool {
	return l == LevelExpress
}

// String returns the lowercase label.
func (l ServiceLevel) String() string {
	return string(l)
}

// Parcel describes a single-package shipment: physical dimensions in
// centimeters, weights in kilograms, and a declared value.
type Parcel struct {
	weight   float64
	length   float64
	width    float64
	height   float64
	value    float64
	contents string
	level    ServiceLevel
}

// NewParcel builds a parcel detail. Negative measurements are rejected;
// zero dimensions are allowed and simply disable volumetric pricing.
func NewParcel(weight, length, width, height, value float64, contents string, level ServiceLevel) (Parcel, error) {
	for name, v := range map[string]float64{
		"weight": weight,
		"length": length,
		"width":  width,
		"height": height,
		"value":  value,
	} {
		if v < 0 {
			return Parcel{}, errs.NewValueIsInvalidErrorWithCause(
				name, fmt.Errorf("%v must not be negative", v),
			)
		}
	}

	if level == "" {
		level = LevelStandard
	}

	return Parcel{
		weight:   weight,
		length:   length,
		width:    width,
		height:   height,
		value:    value,
		contents: strings.TrimSpace(contents),
		level:    level,
	}, nil
}

// Weight returns the actual weight in kg.
func (p Parcel) Weight() float64 { return p.weight }

// Length returns the length in cm.
func (p Parcel) Length() float64 { return p.length }

// Width returns the width in cm.
func (p Parcel) Width() float64 { return p.width }

// Height returns the height in cm.
func (p Parcel) Height() float64 { return p.height }

// Value returns the declared value.
func (p Parcel) Value() float64 { return p.value }

// Contents returns the free-text contents description.
func (p Parcel) Contents() string { return p.contents }

// Level returns the service tier.
func (p Parcel) Level() ServiceLevel { return p.level }

// HasDimensions reports whether all three dimensions are present, which is the
// precondition for volumetric weight.
func (p Parcel) HasDimensions() bool {
	return p.length > 0 && p.width > 0 && p.height > 0
}

// FreightMode is the transport mode for freight shipments.
type FreightMode string

const (
	// ModeAir is air freight, the default mode.
	ModeAir FreightMode = "air"

	// ModeSea is ocean freight.
	ModeSea FreightMode = "sea"

	// ModeRoad is road freight.
	ModeRoad FreightMode = "road"
)

// ParseFreightMode normalizes a mode label, defaulting blanks to air.
func ParseFreightMode(raw string) (FreightMode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", string(ModeAir):
		return ModeAir, nil
	case string(ModeSea):
		return ModeSea, nil
	case string(ModeRoad):
		return ModeRoad, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause(
			"freight.mode",
			fmt.Errorf("%q is not a valid freight mode", raw),
		)
	}
}

// String returns the lowercase mode label.
func (m FreightMode) String() string {
	return string(m)
}

// Freight describes palletized cargo. Dimensions and weight are per pallet.
type Freight struct {
	mode     FreightMode
	pallets  int
	length   float64
	width    float64
	height   float64
	weight   float64
	incoterm string
	notes    string
}

// NewFreight builds a freight detail. Pallet count defaults to 1, the incoterm
// defaults to DAP, and negative measurements are rejected.
func NewFreight(mode FreightMode, pallets int, length, width, height, weight float64, incoterm, notes string) (Freight, error) {
	if pallets <= 0 {
		pallets = 1
	}

	for name, v := range map[string]float64{
		"freight.length": length,
		"freight.width":  width,
		"freight.height": height,
		"freight.weight": weight,
	} {
		if v < 0 {
			return Freight{}, errs.NewValueIsInvalidErrorWithCause(
				name, fmt.Errorf("%v must not be negative", v),
			)
		}
	}

	if mode == "" {
		mode = ModeAir
	}

	trimmedIncoterm := strings.ToUpper(strings.TrimSpace(incoterm))
	if trimmedIncoterm == "" {
		trimmedIncoterm = "DAP"
	}

	return Freight{
		mode:     mode,
		pallets:  pallets,
		length:   length,
		width:    width,
		height:   height,
		weight:   weight,
		incoterm: trimmedIncoterm,
		notes:    strings.TrimSpace(notes),
	}, nil
}

// Mode returns the transport mode.
func (f Freight) Mode() FreightMode { return f.mode }

// Pallets returns the pallet count, always at least 1.
func (f Freight) Pallets() int { return f.pallets }

// Length returns the per-pallet length in cm.
func (f Freight) Length() float64 { return f.length }

// Width returns the per-pallet width in cm.
func (f Freight) Width() float64 { return f.width }

// Height returns the per-pallet height in cm.
func (f Freight) Height() float64 { return f.height }

// Weight returns the per-pallet weight in kg.
func (f Freight) Weight() float64 { return f.weight }

// Incoterm returns the agreed incoterm, DAP by default.
func (f Freight) Incoterm() string { return f.incoterm }

// Notes returns free-text handling notes.
func (f Freight) Notes() string { return f.notes }

// HasDimensions reports whether all three per-pallet dimensions are present.
func (f Freight) HasDimensions() bool {
	return f.length > 0 && f.width > 0 && f.height > 0
}
