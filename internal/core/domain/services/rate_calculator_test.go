package services_test

import (
	"testing"

	"globaledge/internal/core/domain/model/shipment"
	"globaledge/internal/core/domain/services"
	"globaledge/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParcel(t *testing.T, weight, length, width, height float64, level shipment.ServiceLevel) shipment.Parcel {
	t.Helper()
	parcel, err := shipment.NewParcel(weight, length, width, height, 0, "", level)
	require.NoError(t, err)
	return parcel
}

func mustFreight(t *testing.T, mode shipment.FreightMode, pallets int, length, width, height, weight float64) shipment.Freight {
	t.Helper()
	freight, err := shipment.NewFreight(mode, pallets, length, width, height, weight, "", "")
	require.NoError(t, err)
	return freight
}

func TestRateCalculator_QuoteParcel_Standard(t *testing.T) {
	calc := services.NewRateCalculator()
	parcel := mustParcel(t, 5, 30, 20, 10, shipment.LevelStandard)

	quote, err := calc.QuoteParcel(parcel)
	require.NoError(t, err)

	// volumetric = 30*20*10/5000 = 1.2, billable = max(5, 1.2) = 5
	assert.Equal(t, "EUR", quote.Currency())
	assert.InDelta(t, 5.0, quote.Billable(), 1e-9)
	assert.Equal(t, 30, quote.Price()) // ceil(10 + 5*4.0)
	assert.Equal(t, "2–5 business days", quote.ETA())
}

func TestRateCalculator_QuoteParcel_Express(t *testing.T) {
	calc := services.NewRateCalculator()
	parcel := mustParcel(t, 5, 30, 20, 10, shipment.LevelExpress)

	quote, err := calc.QuoteParcel(parcel)
	require.NoError(t, err)

	assert.Equal(t, 48, quote.Price()) // ceil(18 + 5*6.0)
	assert.Equal(t, "24–72 hours", quote.ETA())
}

func TestRateCalculator_QuoteParcel_OnlyLiteralExpressTriggersExpress(t *testing.T) {
	calc := services.NewRateCalculator()

	for _, level := range []shipment.ServiceLevel{shipment.LevelStandard, shipment.LevelPriority, "premium"} {
		quote, err := calc.QuoteParcel(mustParcel(t, 5, 0, 0, 0, level))
		require.NoError(t, err)
		assert.Equal(t, 30, quote.Price(), "level %q must price as standard", level)
		assert.Equal(t, "2–5 business days", quote.ETA())
	}
}

func TestRateCalculator_QuoteParcel_VolumetricDominates(t *testing.T) {
	calc := services.NewRateCalculator()
	// volumetric = 50*40*30/5000 = 12kg > actual 2kg
	parcel := mustParcel(t, 2, 50, 40, 30, shipment.LevelStandard)

	quote, err := calc.QuoteParcel(parcel)
	require.NoError(t, err)

	assert.InDelta(t, 12.0, quote.Billable(), 1e-9)
	assert.Equal(t, 58, quote.Price()) // ceil(10 + 12*4.0)
}

func TestRateCalculator_QuoteParcel_MissingDimensionDisablesVolumetric(t *testing.T) {
	calc := services.NewRateCalculator()
	parcel := mustParcel(t, 3, 50, 40, 0, shipment.LevelStandard)

	quote, err := calc.QuoteParcel(parcel)
	require.NoError(t, err)

	assert.InDelta(t, 3.0, quote.Billable(), 1e-9)
}

func TestRateCalculator_QuoteParcel_MinimumPrice(t *testing.T) {
	calc := services.NewRateCalculator()
	quote, err := calc.QuoteParcel(mustParcel(t, 0, 0, 0, 0, shipment.LevelStandard))
	require.NoError(t, err)

	// ceil(10 + 0) = 10 still above the floor of 9
	assert.Equal(t, 10, quote.Price())
}

func TestRateCalculator_QuoteFreight_Air(t *testing.T) {
	calc := services.NewRateCalculator()
	freight := mustFreight(t, shipment.ModeAir, 2, 0, 0, 0, 100)

	quote, err := calc.QuoteFreight(freight)
	require.NoError(t, err)

	// billable = 100*2 = 200, price = ceil(150 + 200*2.2) = 590
	assert.InDelta(t, 200.0, quote.Billable(), 1e-9)
	assert.Equal(t, 590, quote.Price())
	assert.Equal(t, "2–7 days door-to-door", quote.ETA())
}

func TestRateCalculator_QuoteFreight_SeaAndRoad(t *testing.T) {
	calc := services.NewRateCalculator()

	sea, err := calc.QuoteFreight(mustFreight(t, shipment.ModeSea, 1, 0, 0, 0, 50))
	require.NoError(t, err)
	assert.Equal(t, 140, sea.Price()) // ceil(90 + 50*1.0)
	assert.Equal(t, "12–35 days port-to-door", sea.ETA())

	road, err := calc.QuoteFreight(mustFreight(t, shipment.ModeRoad, 1, 0, 0, 0, 50))
	require.NoError(t, err)
	assert.Equal(t, 190, road.Price()) // ceil(120 + 50*1.4)
	assert.Equal(t, "2–10 days door-to-door", road.ETA())
}

func TestRateCalculator_QuoteFreight_VolumetricPerPallet(t *testing.T) {
	calc := services.NewRateCalculator()
	// air volumetric = 120*100*100/6000 = 200/pallet; 2 pallets = 400 > 100*2
	freight := mustFreight(t, shipment.ModeAir, 2, 120, 100, 100, 100)

	quote, err := calc.QuoteFreight(freight)
	require.NoError(t, err)

	assert.InDelta(t, 400.0, quote.Billable(), 1e-9)
	assert.Equal(t, 1030, quote.Price()) // ceil(150 + 400*2.2)
}

func TestRateCalculator_QuoteFreight_SurfaceDivisor(t *testing.T) {
	calc := services.NewRateCalculator()
	// sea volumetric = 100*100*100/5000 = 200/pallet
	freight := mustFreight(t, shipment.ModeSea, 1, 100, 100, 100, 0)

	quote, err := calc.QuoteFreight(freight)
	require.NoError(t, err)

	assert.InDelta(t, 200.0, quote.Billable(), 1e-9)
}

func TestRateCalculator_Quote_Determinism(t *testing.T) {
	calc := services.NewRateCalculator()
	parcel := mustParcel(t, 5, 30, 20, 10, shipment.LevelStandard)

	first, err := calc.QuoteParcel(parcel)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, quoteErr := calc.QuoteParcel(parcel)
		require.NoError(t, quoteErr)
		assert.Equal(t, first, again)
	}
}

func TestRateCalculator_Quote_MissingPayload(t *testing.T) {
	calc := services.NewRateCalculator()

	_, err := calc.Quote(shipment.ServiceTypeParcel, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = calc.Quote(shipment.ServiceTypeFreight, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
