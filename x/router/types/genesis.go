package types

import (
	"fmt"
)

// GenesisState is the router module's exported state.
type GenesisState struct {
	PortId      string  `json:"port_id"`
	NextRouteId uint64  `json:"next_route_id"`
	Routes      []Route `json:"routes"`
}

// DefaultGenesis returns the default genesis state for the router module
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		PortId:      PortID,
		NextRouteId: 1,
	}
}

// Validate performs basic genesis state validation
func (gs GenesisState) Validate() error {
	if gs.PortId == "" {
		return ErrInvalidInput.Wrap("port id cannot be empty")
	}
	if gs.NextRouteId == 0 {
		return ErrInvalidInput.Wrap("next route id must be positive")
	}

	seen := make(map[uint64]struct{}, len(gs.Routes))
	for _, route := range gs.Routes {
		if err := route.Validate(); err != nil {
			return fmt.Errorf("route %d: %w", route.Id, err)
		}
		if _, ok := seen[route.Id]; ok {
			return ErrInvalidInput.Wrapf("duplicate route id %d in genesis", route.Id)
		}
		if route.Id >= gs.NextRouteId {
			return ErrInvalidInput.Wrapf("route id %d not below next id %d", route.Id, gs.NextRouteId)
		}
		seen[route.Id] = struct{}{}
	}

	return nil
}
