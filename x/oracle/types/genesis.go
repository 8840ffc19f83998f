package types

import (
	"fmt"
)

// PoolAccumulator pairs a pool ID with its latest accumulator for export.
type PoolAccumulator struct {
	PoolId      uint64      `json:"pool_id"`
	Accumulator Accumulator `json:"accumulator"`
}

// PoolObservation pairs a pool ID with one occupied buffer slot for export.
type PoolObservation struct {
	PoolId      uint64      `json:"pool_id"`
	Observation Observation `json:"observation"`
}

// GenesisState is the oracle module's exported state.
type GenesisState struct {
	Accumulators []PoolAccumulator `json:"accumulators"`
	Observations []PoolObservation `json:"observations"`
}

// DefaultGenesis returns the default genesis state for the oracle module
func DefaultGenesis() *GenesisState {
	return &GenesisState{}
}

// Validate performs basic genesis state validation
func (gs GenesisState) Validate() error {
	seen := make(map[uint64]struct{}, len(gs.Accumulators))
	for _, acc := range gs.Accumulators {
		if _, ok := seen[acc.PoolId]; ok {
			return fmt.Errorf("duplicate accumulator for pool %d", acc.PoolId)
		}
		if err := acc.Accumulator.Validate(); err != nil {
			return fmt.Errorf("pool %d accumulator: %w", acc.PoolId, err)
		}
		seen[acc.PoolId] = struct{}{}
	}

	for _, obs := range gs.Observations {
		if _, ok := seen[obs.PoolId]; !ok {
			return fmt.Errorf("observation references pool %d without an accumulator", obs.PoolId)
		}
		if err := obs.Observation.Validate(); err != nil {
			return fmt.Errorf("pool %d observation: %w", obs.PoolId, err)
		}
	}

	return nil
}
