package types

import (
	"encoding/json"

	"cosmossdk.io/math"
)

const (
	// BufferSize is the number of observation slots per pool. Slots are
	// indexed by timestamp modulo BufferSize, so the buffer spans a little
	// over 18 hours of per-second observations before wrapping.
	BufferSize = 65535

	// DefaultTWAPWindow is the lookback used by the plain TWAP query, in
	// seconds.
	DefaultTWAPWindow = 3600
)

// SlotIndex maps a timestamp to its observation slot
func SlotIndex(timestamp int64) uint16 {
	return uint16(timestamp % BufferSize)
}

// Observation is one slot of a pool's circular price buffer. CumulativePrice
// is the time-weighted price integral up to Timestamp; a TWAP over [t0, t1]
// is (cumulative(t1) - cumulative(t0)) / (t1 - t0).
type Observation struct {
	Timestamp       int64          `json:"timestamp"`
	CumulativePrice math.LegacyDec `json:"cumulative_price"`
}

// Validate performs basic observation validation
func (o Observation) Validate() error {
	if o.Timestamp < 0 {
		return ErrInvalidTimestamp.Wrap("timestamp cannot be negative")
	}
	if o.CumulativePrice.IsNil() || o.CumulativePrice.IsNegative() {
		return ErrInvalidObservation.Wrap("cumulative price must be non-negative")
	}
	return nil
}

// Marshal serializes the observation to bytes
func (o Observation) Marshal() ([]byte, error) {
	return json.Marshal(o)
}

// Unmarshal deserializes the observation from bytes
func (o *Observation) Unmarshal(bz []byte) error {
	return json.Unmarshal(bz, o)
}

// Accumulator is a pool's running price integral. Each update extends
// CumulativePrice by Price held over the elapsed interval, then replaces
// Price and Timestamp with the new spot observation.
type Accumulator struct {
	Timestamp       int64          `json:"timestamp"`
	Price           math.LegacyDec `json:"price"`
	CumulativePrice math.LegacyDec `json:"cumulative_price"`
}

// Validate performs basic accumulator validation
func (a Accumulator) Validate() error {
	if a.Timestamp < 0 {
		return ErrInvalidTimestamp.Wrap("timestamp cannot be negative")
	}
	if a.Price.IsNil() || a.Price.IsNegative() {
		return ErrInvalidPrice.Wrap("price must be non-negative")
	}
	if a.CumulativePrice.IsNil() || a.CumulativePrice.IsNegative() {
		return ErrInvalidObservation.Wrap("cumulative price must be non-negative")
	}
	return nil
}

// Marshal serializes the accumulator to bytes
func (a Accumulator) Marshal() ([]byte, error) {
	return json.Marshal(a)
}

// Unmarshal deserializes the accumulator from bytes
func (a *Accumulator) Unmarshal(bz []byte) error {
	return json.Unmarshal(bz, a)
}
