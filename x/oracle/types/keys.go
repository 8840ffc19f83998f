package types

import (
	"encoding/binary"
)

const (
	// ModuleName defines the oracle module name
	ModuleName = "oracle"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName
)

// KVStore key prefixes
var (
	ObservationKeyPrefix = []byte{0x01}
	LatestKeyPrefix      = []byte{0x02}
)

// ObservationKey returns the store key for a pool's observation slot
func ObservationKey(poolID uint64, slot uint16) []byte {
	key := make([]byte, 0, len(ObservationKeyPrefix)+10)
	key = append(key, ObservationKeyPrefix...)
	key = binary.BigEndian.AppendUint64(key, poolID)
	key = binary.BigEndian.AppendUint16(key, slot)
	return key
}

// ObservationKeyByPoolPrefix returns the store prefix covering all of a
// pool's observation slots.
func ObservationKeyByPoolPrefix(poolID uint64) []byte {
	key := make([]byte, 0, len(ObservationKeyPrefix)+8)
	key = append(key, ObservationKeyPrefix...)
	return binary.BigEndian.AppendUint64(key, poolID)
}

// LatestKey returns the store key for a pool's latest accumulator record
func LatestKey(poolID uint64) []byte {
	key := make([]byte, 0, len(LatestKeyPrefix)+8)
	key = append(key, LatestKeyPrefix...)
	return binary.BigEndian.AppendUint64(key, poolID)
}
