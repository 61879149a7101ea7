package services

import (
	"math"

	"globaledge/internal/core/domain/model/shipment"
	"globaledge/internal/pkg/errs"
)

// quoteCurrency is the single currency all quotes are issued in.
const quoteCurrency = "EUR"

// Parcel pricing constants. Volumetric weight uses the standard courier
// divisor of 5000 (cm³ → kg).
const (
	parcelVolumetricDivisor = 5000.0
	parcelMinPrice          = 9

	parcelStandardBase  = 10.0
	parcelStandardPerKg = 4.0
	parcelStandardETA   = "2–5 business days"

	parcelExpressBase  = 18.0
	parcelExpressPerKg = 6.0
	parcelExpressETA   = "24–72 hours"
)

// Freight pricing constants. Air cargo uses the IATA divisor of 6000;
// sea and road use 5000.
const (
	freightAirDivisor     = 6000.0
	freightSurfaceDivisor = 5000.0
	freightMinPrice       = 25
)

// freightRate holds the per-mode pricing parameters.
type freightRate struct {
	base  float64
	perKg float64
	eta   string
}

func freightRates() map[shipment.FreightMode]freightRate {
	return map[shipment.FreightMode]freightRate{
		shipment.ModeAir:  {base: 150, perKg: 2.2, eta: "2–7 days door-to-door"},
		shipment.ModeSea:  {base: 90, perKg: 1.0, eta: "12–35 days port-to-door"},
		shipment.ModeRoad: {base: 120, perKg: 1.4, eta: "2–10 days door-to-door"},
	}
}

// RateCalculator is a pure domain service that prices shipments. It performs
// no I/O and is deterministic: the same detail always yields the same quote.
//
// Billable weight is max(actual weight, volumetric weight); volumetric weight
// only applies when all three dimensions are present. Prices are rounded up to
// whole currency units and floored at a per-service minimum.
//
// Example:
//
//	calc := services.NewRateCalculator()
//	parcel, _ := shipment.NewParcel(5, 30, 20, 10, 0, "", shipment.LevelStandard)
//	quote, _ := calc.QuoteParcel(parcel)
//	// quote.Price() == 30, quote.Billable() == 5
type RateCalculator struct{}

// NewRateCalculator creates a RateCalculator instance.
func NewRateCalculator() RateCalculator {
	return RateCalculator{}
}

// Quote prices a shipment of the given service type. Exactly the payload
// matching the service type must be present; a missing payload is the caller's
// validation error.
func (RateCalculator) Quote(serviceType shipment.ServiceType, parcel *shipment.Parcel, freight *shipment.Freight) (shipment.Quote, error) {
	switch serviceType {
	case shipment.ServiceTypeFreight:
		if freight == nil {
			return shipment.Quote{}, errs.NewValueIsRequiredError("freight payload")
		}
		return RateCalculator{}.QuoteFreight(*freight)
	case shipment.ServiceTypeParcel:
		if parcel == nil {
			return shipment.Quote{}, errs.NewValueIsRequiredError("parcel payload")
		}
		return RateCalculator{}.QuoteParcel(*parcel)
	default:
		return shipment.Quote{}, serviceType.Validate()
	}
}

// QuoteParcel prices a single-package shipment.
//
// billable = max(weight, L×W×H/5000); the express level uses base 18 and
// 6.0/kg, every other level prices as standard (base 10, 4.0/kg). The price is
// ceil(base + billable×perKg) with a floor of 9.
func (RateCalculator) QuoteParcel(parcel shipment.Parcel) (shipment.Quote, error) {
	var volumetric float64
	if parcel.HasDimensions() {
		volumetric = parcel.Length() * parcel.Width() * parcel.Height() / parcelVolumetricDivisor
	}
	billable := math.Max(parcel.Weight(), volumetric)

	base, perKg, eta := parcelStandardBase, parcelStandardPerKg, parcelStandardETA
	if parcel.Level().IsExpress() {
		base, perKg, eta = parcelExpressBase, parcelExpressPerKg, parcelExpressETA
	}

	price := int(math.Ceil(base + billable*perKg))
	if price < parcelMinPrice {
		price = parcelMinPrice
	}

	return shipment.NewQuote(quoteCurrency, price, eta, billable)
}

// QuoteFreight prices palletized cargo.
//
// billable = max(weight×pallets, volumetric-per-pallet×pallets) with the
// divisor depending on mode (6000 air, 5000 sea/road). The price is
// ceil(base + billable×perKg) with a floor of 25.
func (RateCalculator) QuoteFreight(freight shipment.Freight) (shipment.Quote, error) {
	rate, ok := freightRates()[freight.Mode()]
	if !ok {
		return shipment.Quote{}, errs.NewValueIsInvalidError("freight.mode")
	}

	divisor := freightSurfaceDivisor
	if freight.Mode() == shipment.ModeAir {
		divisor = freightAirDivisor
	}

	var volumetricPerPallet float64
	if freight.HasDimensions() {
		volumetricPerPallet = freight.Length() * freight.Width() * freight.Height() / divisor
	}

	pallets := float64(freight.Pallets())
	actual := freight.Weight() * pallets
	billable := math.Max(actual, volumetricPerPallet*pallets)

	price := int(math.Ceil(rate.base + billable*rate.perKg))
	if price < freightMinPrice {
		price = freightMinPrice
	}

	return shipment.NewQuote(quoteCurrency, price, rate.eta, billable)
}
