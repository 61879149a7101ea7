package kernel_test

import (
	"strings"
	"testing"
	"time"

	"globaledge/internal/core/domain/model/kernel"
	"globaledge/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrackingNumber(t *testing.T) {
	t.Run("should generate GE-prefixed code", func(t *testing.T) {
		tn := kernel.NewTrackingNumber()

		assert.True(t, strings.HasPrefix(tn.String(), "GE-"))
		assert.Len(t, tn.String(), len("GE-")+8)
		require.NoError(t, tn.Validate())
	})

	t.Run("should avoid ambiguous characters", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			code := strings.TrimPrefix(kernel.NewTrackingNumber().String(), "GE-")
			assert.NotContains(t, code, "I")
			assert.NotContains(t, code, "O")
			assert.NotContains(t, code, "0")
			assert.NotContains(t, code, "1")
		}
	})

	t.Run("should be unique across many generations", func(t *testing.T) {
		seen := make(map[string]struct{})
		for i := 0; i < 1000; i++ {
			tn := kernel.NewTrackingNumber()
			_, dup := seen[tn.String()]
			require.False(t, dup, "duplicate tracking number %s", tn)
			seen[tn.String()] = struct{}{}
		}
	})
}

func TestFallbackTrackingNumber(t *testing.T) {
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	tn := kernel.FallbackTrackingNumber(at)

	assert.True(t, strings.HasPrefix(tn.String(), "GE"))
	assert.Equal(t, strings.ToUpper(tn.String()), tn.String())
	// deterministic for a fixed timestamp
	assert.Equal(t, tn.String(), kernel.FallbackTrackingNumber(at).String())
}

func TestTrackingNumberFromString(t *testing.T) {
	t.Run("should accept stored values", func(t *testing.T) {
		tn, err := kernel.TrackingNumberFromString("GE-8K3F1Q2Z")
		require.NoError(t, err)
		assert.Equal(t, "GE-8K3F1Q2Z", tn.String())
	})

	t.Run("should uppercase and trim", func(t *testing.T) {
		tn, err := kernel.TrackingNumberFromString("  ge-abcd2345 ")
		require.NoError(t, err)
		assert.Equal(t, "GE-ABCD2345", tn.String())
	})

	t.Run("should reject empty input", func(t *testing.T) {
		_, err := kernel.TrackingNumberFromString("   ")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject foreign prefixes", func(t *testing.T) {
		_, err := kernel.TrackingNumberFromString("XX-ABCD2345")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestTrackingNumber_Validate(t *testing.T) {
	var zero kernel.TrackingNumber
	require.Error(t, zero.Validate())
	assert.ErrorIs(t, zero.Validate(), errs.ErrValueIsRequired)
}
