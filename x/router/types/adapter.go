package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// DeliveryStatus is a relay's view of an in-flight message
type DeliveryStatus uint8

const (
	DeliveryPending DeliveryStatus = iota
	DeliveryConfirmed
	DeliveryFailed
)

func (s DeliveryStatus) String() string {
	switch s {
	case DeliveryPending:
		return "PENDING"
	case DeliveryConfirmed:
		return "CONFIRMED"
	case DeliveryFailed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

// RelayAdapter abstracts an at-least-once cross-chain message relay. One
// adapter serves one destination chain; the router holds a registry of them.
//
// Dispatch returns an opaque message handle once the relay accepts the
// message; delivery happens asynchronously and is reported back through the
// router's delivery callback or polled via QueryDelivery. Retries, if any,
// are the relay's own concern.
type RelayAdapter interface {
	// EstimateFee quotes the relay cost for carrying payload to the chain
	// this adapter serves.
	EstimateFee(ctx sdk.Context, payload []byte) (sdk.Coin, error)

	// Dispatch hands the payload to the relay. The returned handle
	// identifies the message for delivery tracking.
	Dispatch(ctx sdk.Context, recipient string, payload []byte) (string, error)

	// QueryDelivery reports the relay's best-effort view of a dispatched
	// message.
	QueryDelivery(ctx sdk.Context, handle string) (DeliveryStatus, error)
}
