package account_test

import (
	"testing"
	"time"

	"globaledge/internal/core/domain/model/account"
	"globaledge/internal/core/domain/model/kernel"
	"globaledge/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProspect(t *testing.T) {
	email, err := kernel.NewEmail("Ada.Obi@Example.com")
	require.NoError(t, err)

	user, err := account.NewProspect(kernel.NewUUID(), "Ada Obi", email, kernel.NewPhone("07700 900123"), time.Now())
	require.NoError(t, err)

	assert.Equal(t, "Ada Obi", user.Name())
	assert.Equal(t, "ada.obi@example.com", user.Email().String())
	assert.Equal(t, account.RoleProspect, user.Role())
	assert.NotEmpty(t, user.Credential())
	require.NoError(t, user.Validate())
}

func TestNewProspect_DerivesNameFromEmail(t *testing.T) {
	email, err := kernel.NewEmail("ada.obi@example.com")
	require.NoError(t, err)

	user, err := account.NewProspect(kernel.NewUUID(), "", email, kernel.Phone{}, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "ada.obi", user.Name())
}

func TestNewProspect_RequiresEmail(t *testing.T) {
	_, err := account.NewProspect(kernel.NewUUID(), "Ada", kernel.Email{}, kernel.Phone{}, time.Now())
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewProspect_CredentialsDiffer(t *testing.T) {
	email, err := kernel.NewEmail("ada@example.com")
	require.NoError(t, err)

	first, err := account.NewProspect(kernel.NewUUID(), "", email, kernel.Phone{}, time.Now())
	require.NoError(t, err)
	second, err := account.NewProspect(kernel.NewUUID(), "", email, kernel.Phone{}, time.Now())
	require.NoError(t, err)

	assert.NotEqual(t, first.Credential(), second.Credential())
}

func TestUser_Validate(t *testing.T) {
	var zero account.User
	require.ErrorIs(t, zero.Validate(), account.ErrUserIsNotConstructed)
}
