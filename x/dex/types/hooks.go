package types

import (
	"encoding/json"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// HookPoint identifies one of the eight pool lifecycle extension points.
type HookPoint uint8

const (
	HookBeforeInitialize HookPoint = iota
	HookAfterInitialize
	HookBeforeModifyPosition
	HookAfterModifyPosition
	HookBeforeSwap
	HookAfterSwap
	HookBeforeDonate
	HookAfterDonate
)

func (h HookPoint) String() string {
	switch h {
	case HookBeforeInitialize:
		return "before_initialize"
	case HookAfterInitialize:
		return "after_initialize"
	case HookBeforeModifyPosition:
		return "before_modify_position"
	case HookAfterModifyPosition:
		return "after_modify_position"
	case HookBeforeSwap:
		return "before_swap"
	case HookAfterSwap:
		return "after_swap"
	case HookBeforeDonate:
		return "before_donate"
	case HookAfterDonate:
		return "after_donate"
	}
	return "unknown"
}

// HookPermissions declares which lifecycle points a hook subscribes to.
// The dispatcher consults the registry copy of this struct, never the hook
// itself, and denies on any lookup failure.
type HookPermissions struct {
	BeforeInitialize     bool `json:"before_initialize"`
	AfterInitialize      bool `json:"after_initialize"`
	BeforeModifyPosition bool `json:"before_modify_position"`
	AfterModifyPosition  bool `json:"after_modify_position"`
	BeforeSwap           bool `json:"before_swap"`
	AfterSwap            bool `json:"after_swap"`
	BeforeDonate         bool `json:"before_donate"`
	AfterDonate          bool `json:"after_donate"`
}

// Allows reports whether the permission set covers the given point.
func (p HookPermissions) Allows(point HookPoint) bool {
	switch point {
	case HookBeforeInitialize:
		return p.BeforeInitialize
	case HookAfterInitialize:
		return p.AfterInitialize
	case HookBeforeModifyPosition:
		return p.BeforeModifyPosition
	case HookAfterModifyPosition:
		return p.AfterModifyPosition
	case HookBeforeSwap:
		return p.BeforeSwap
	case HookAfterSwap:
		return p.AfterSwap
	case HookBeforeDonate:
		return p.BeforeDonate
	case HookAfterDonate:
		return p.AfterDonate
	}
	return false
}

// Marshal encodes the permission set for state storage.
func (p *HookPermissions) Marshal() ([]byte, error) {
	return json.Marshal(p)
}

// Unmarshal decodes a permission set from state.
func (p *HookPermissions) Unmarshal(bz []byte) error {
	return json.Unmarshal(bz, p)
}

// StateDelta carries the result of a pool operation to after-point hooks.
// Before-point hooks receive a nil delta.
type StateDelta struct {
	PoolId      uint64
	TokenIn     string
	TokenOut    string
	AmountIn    math.Int
	AmountOut   math.Int
	DeltaA      math.Int
	DeltaB      math.Int
	SharesDelta math.Int
}

// PoolHook is the extension-point callback. A non-nil error from a before
// point vetoes the enclosing operation; an error from an after point aborts
// it as well, since an unexpected acknowledgement leaves the pool and the
// hook's own state out of sync.
type PoolHook interface {
	OnPoolEvent(ctx sdk.Context, point HookPoint, pool Pool, delta *StateDelta) error
}
