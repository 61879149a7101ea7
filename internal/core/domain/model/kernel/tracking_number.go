package kernel

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"globaledge/internal/pkg/errs"
)

// trackingAlphabet excludes characters that are easy to misread (I, O, 0, 1).
const trackingAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// trackingPrefix is the brand prefix carried by every tracking number.
const trackingPrefix = "GE"

// trackingCodeLength is the number of random characters in a generated code.
const trackingCodeLength = 8

// ErrTrackingNumberIsRequired is returned when validating an empty tracking number.
var ErrTrackingNumberIsRequired = errs.NewValueIsRequiredError("tracking number")

// TrackingNumber is the public identifier customers use to look up a shipment.
//
// Generated numbers take the form "GE-XXXXXXXX" over a restricted alphabet.
// When generation cannot find a free code, a timestamp-derived fallback of the
// form "GE<base36 millis>" guarantees forward progress. Both shapes, plus
// legacy "GE<base36 timestamp><4 random>" values, are accepted on parse.
type TrackingNumber struct {
	value string
}

// NewTrackingNumber generates a random candidate tracking number.
// Uniqueness is the caller's concern: generation is retried against storage
// and backed by a unique index.
func NewTrackingNumber() TrackingNumber {
	var sb strings.Builder
	sb.WriteString(trackingPrefix)
	sb.WriteByte('-')
	for i := 0; i < trackingCodeLength; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(trackingAlphabet))))
		if err != nil {
			// crypto/rand only fails when the platform entropy source is
			// broken; fall back to the timestamp form.
			return FallbackTrackingNumber(time.Now())
		}
		sb.WriteByte(trackingAlphabet[n.Int64()])
	}
	return TrackingNumber{value: sb.String()}
}

// FallbackTrackingNumber derives a tracking number from a timestamp. Used as
// the last resort when random generation keeps colliding.
func FallbackTrackingNumber(at time.Time) TrackingNumber {
	return TrackingNumber{
		value: trackingPrefix + strings.ToUpper(strconv.FormatInt(at.UnixMilli(), 36)),
	}
}

// TrackingNumberFromString restores a tracking number from its stored form.
func TrackingNumberFromString(s string) (TrackingNumber, error) {
	trimmed := strings.ToUpper(strings.TrimSpace(s))
	if trimmed == "" {
		return TrackingNumber{}, ErrTrackingNumberIsRequired
	}
	if !strings.HasPrefix(trimmed, trackingPrefix) {
		return TrackingNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"tracking number",
			fmt.Errorf("%q does not carry the %s prefix", s, trackingPrefix),
		)
	}
	return TrackingNumber{value: trimmed}, nil
}

// String returns the customer-facing tracking number.
func (t TrackingNumber) String() string {
	return t.value
}

// IsEqual compares two tracking numbers for equality.
func (t TrackingNumber) IsEqual(other TrackingNumber) bool {
	return t.value == other.value
}

// Validate returns ErrTrackingNumberIsRequired for the zero value.
func (t TrackingNumber) Validate() error {
	if t.value == "" {
		return ErrTrackingNumberIsRequired
	}
	return nil
}
