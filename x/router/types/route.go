package types

import (
	"encoding/json"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RouteStatus tracks a cross-chain route's saga state. Routes advance
// Pending -> LocalSwapped -> Dispatched and terminate in Delivered, Failed,
// or Refunded. There is no cross-chain atomicity: each transition is marked
// by a local call, and an undelivered message simply never advances.
type RouteStatus uint8

const (
	RoutePending RouteStatus = iota
	RouteLocalSwapped
	RouteDispatched
	RouteDelivered
	RouteFailed
	RouteRefunded
)

func (s RouteStatus) String() string {
	switch s {
	case RoutePending:
		return "PENDING"
	case RouteLocalSwapped:
		return "LOCAL_SWAPPED"
	case RouteDispatched:
		return "DISPATCHED"
	case RouteDelivered:
		return "DELIVERED"
	case RouteFailed:
		return "FAILED"
	case RouteRefunded:
		return "REFUNDED"
	default:
		return "UNKNOWN"
	}
}

// Hop is one cross-chain leg of a multi-path route
type Hop struct {
	ChainId string `json:"chain_id"`
	Handle  string `json:"handle,omitempty"`
}

// Route records one cross-chain swap saga. EscrowToken/EscrowAmount hold
// what the module account carries for this route: the local swap proceeds
// once dispatched, or the untouched input if the local leg was skipped.
type Route struct {
	Id           uint64      `json:"id"`
	Sender       string      `json:"sender"`
	TokenIn      string      `json:"token_in"`
	TokenOut     string      `json:"token_out"`
	AmountIn     math.Int    `json:"amount_in"`
	AmountOutMin math.Int    `json:"amount_out_min"`
	Recipient    string      `json:"recipient"`
	SrcChain     string      `json:"src_chain"`
	DstChain     string      `json:"dst_chain"`
	Hops         []Hop       `json:"hops,omitempty"`
	EscrowToken  string      `json:"escrow_token"`
	EscrowAmount math.Int    `json:"escrow_amount"`
	FeePaid      sdk.Coin    `json:"fee_paid"`
	Status       RouteStatus `json:"status"`
	CreatedAt    int64       `json:"created_at"`
}

// Validate performs basic route validation
func (r Route) Validate() error {
	if _, err := sdk.AccAddressFromBech32(r.Sender); err != nil {
		return ErrZeroAddress.Wrapf("sender %q: %v", r.Sender, err)
	}
	if r.Recipient == "" {
		return ErrZeroAddress.Wrap("recipient")
	}
	if r.AmountIn.IsNil() || !r.AmountIn.IsPositive() {
		return ErrInvalidInput.Wrap("amount in must be positive")
	}
	if r.EscrowAmount.IsNil() || r.EscrowAmount.IsNegative() {
		return ErrInvalidInput.Wrap("escrow amount must be non-negative")
	}
	if r.SrcChain == "" || r.DstChain == "" {
		return ErrInvalidInput.Wrap("chain ids cannot be empty")
	}
	return nil
}

// Marshal serializes the route to bytes
func (r Route) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

// Unmarshal deserializes the route from bytes
func (r *Route) Unmarshal(bz []byte) error {
	return json.Unmarshal(bz, r)
}

// SwapPayload is the message carried to the destination chain. The remote
// side owes the recipient at least AmountOutMin of TokenOut; how it sources
// that is its own business.
type SwapPayload struct {
	RouteId      uint64   `json:"route_id"`
	TokenOut     string   `json:"token_out"`
	AmountOutMin math.Int `json:"amount_out_min"`
	Recipient    string   `json:"recipient"`
}

// Validate performs basic payload validation
func (p SwapPayload) Validate() error {
	if p.TokenOut == "" {
		return ErrInvalidPayload.Wrap("token out cannot be empty")
	}
	if p.AmountOutMin.IsNil() || p.AmountOutMin.IsNegative() {
		return ErrInvalidPayload.Wrap("amount out min must be non-negative")
	}
	if p.Recipient == "" {
		return ErrInvalidPayload.Wrap("recipient cannot be empty")
	}
	return nil
}

// Marshal serializes the payload to bytes
func (p SwapPayload) Marshal() ([]byte, error) {
	return json.Marshal(p)
}

// Unmarshal deserializes the payload from bytes
func (p *SwapPayload) Unmarshal(bz []byte) error {
	return json.Unmarshal(bz, p)
}
