package types

import (
	"encoding/binary"
)

const (
	// ModuleName defines the router module name
	ModuleName = "router"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// PortID is the default IBC port the router binds to
	PortID = "meridianrouter"

	// IBCVersion is the channel version router channels negotiate
	IBCVersion = "meridianrouter-1"

	// RelayBaseFeePpm is the reference rate fed to the fee keeper when
	// scaling relay fees by route volume.
	RelayBaseFeePpm = 1000
)

// KVStore key prefixes
var (
	RouteKeyPrefix         = []byte{0x01}
	RouteCountKey          = []byte{0x02}
	RouteByHandleKeyPrefix = []byte{0x03}
	PortKey                = []byte{0x04}
)

// RouteKey returns the store key for a route
func RouteKey(routeID uint64) []byte {
	key := make([]byte, 0, len(RouteKeyPrefix)+8)
	key = append(key, RouteKeyPrefix...)
	return binary.BigEndian.AppendUint64(key, routeID)
}

// RouteByHandleKey returns the index key mapping a relay message handle to
// its route.
func RouteByHandleKey(handle string) []byte {
	return append(RouteByHandleKeyPrefix, []byte(handle)...)
}
