package commands_test

import (
	"testing"
	"time"

	"globaledge/internal/core/application/usecases/commands"
	"globaledge/internal/core/domain/model/kernel"
	"globaledge/internal/core/domain/model/shipment"
	"globaledge/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNewUpdateShipmentCommand_NormalizesStatus(t *testing.T) {
	cmd, err := commands.NewUpdateShipmentCommand(kernel.NewUUID(), commands.UpdateShipmentPatch{
		Status: strPtr("out for delivery"),
	})
	require.NoError(t, err)
	require.NotNil(t, cmd.Status())
	require.Equal(t, shipment.StatusOutForDelivery, *cmd.Status())
}

func TestNewUpdateShipmentCommand_RejectsUnknownStatus(t *testing.T) {
	_, err := commands.NewUpdateShipmentCommand(kernel.NewUUID(), commands.UpdateShipmentPatch{
		Status: strPtr("teleported"),
	})
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewUpdateShipmentCommand_ParsesETAAt(t *testing.T) {
	cmd, err := commands.NewUpdateShipmentCommand(kernel.NewUUID(), commands.UpdateShipmentPatch{
		ETAAt: strPtr("2024-06-01T12:00:00Z"),
	})
	require.NoError(t, err)
	require.NotNil(t, cmd.ETAAt())
	require.Equal(t, time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), cmd.ETAAt().UTC())
}

func TestNewUpdateShipmentCommand_RejectsMalformedETAAt(t *testing.T) {
	_, err := commands.NewUpdateShipmentCommand(kernel.NewUUID(), commands.UpdateShipmentPatch{
		ETAAt: strPtr("next tuesday"),
	})
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewUpdateShipmentCommand_EmptyPatchIsValid(t *testing.T) {
	cmd, err := commands.NewUpdateShipmentCommand(kernel.NewUUID(), commands.UpdateShipmentPatch{})
	require.NoError(t, err)
	require.Nil(t, cmd.Status())
	require.Nil(t, cmd.ETAAt())
	require.Nil(t, cmd.Note())
}

func TestUpdateShipmentCommand_ZeroValueFailsValidation(t *testing.T) {
	var cmd commands.UpdateShipmentCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrUpdateShipmentCommandIsNotConstructed)
}
