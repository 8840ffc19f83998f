package types

import (
	"encoding/json"
)

// Params holds the feegov module parameters. All durations are in seconds.
type Params struct {
	VotingPeriod   int64  `json:"voting_period"`
	ExecutionDelay int64  `json:"execution_delay"`
	ExecutionGrace int64  `json:"execution_grace"`
	QuorumBps      uint64 `json:"quorum_bps"`
}

// DefaultParams returns the default feegov parameters
func DefaultParams() Params {
	return Params{
		VotingPeriod:   259200,  // 3 days
		ExecutionDelay: 86400,   // 1 day
		ExecutionGrace: 1209600, // 14 days
		QuorumBps:      2000,    // 20%
	}
}

// Validate performs basic parameter validation
func (p Params) Validate() error {
	if p.VotingPeriod <= 0 {
		return ErrInvalidInput.Wrap("voting period must be positive")
	}
	if p.ExecutionDelay < 0 {
		return ErrInvalidInput.Wrap("execution delay cannot be negative")
	}
	if p.ExecutionGrace <= 0 {
		return ErrInvalidInput.Wrap("execution grace must be positive")
	}
	if p.QuorumBps == 0 || p.QuorumBps > MaxTotalBps {
		return ErrInvalidInput.Wrapf("quorum %d bps outside (0, %d]", p.QuorumBps, MaxTotalBps)
	}
	return nil
}

// Marshal serializes the params to bytes
func (p Params) Marshal() ([]byte, error) {
	return json.Marshal(p)
}

// Unmarshal deserializes the params from bytes
func (p *Params) Unmarshal(bz []byte) error {
	return json.Unmarshal(bz, p)
}
