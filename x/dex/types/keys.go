package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "dex"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName
)

// Store key prefixes
var (
	PoolKeyPrefix         = []byte{0x01} // prefix for pools by ID
	PoolCountKey          = []byte{0x02} // key for the next pool ID counter
	LiquidityKeyPrefix    = []byte{0x03} // prefix for liquidity provider shares
	PoolByTokensKeyPrefix = []byte{0x04} // prefix for pool lookup by token pair
	PoolLockKeyPrefix     = []byte{0x05} // prefix for per-pool reentrancy locks
	ParamsKey             = []byte{0x06} // key for module parameters
)

// PoolKey returns the store key for a pool
func PoolKey(poolID uint64) []byte {
	return append(PoolKeyPrefix, sdk.Uint64ToBigEndian(poolID)...)
}

// LiquidityKey returns the store key for a provider's shares in a pool
func LiquidityKey(poolID uint64, provider sdk.AccAddress) []byte {
	return append(LiquidityKeyByPoolPrefix(poolID), provider.Bytes()...)
}

// LiquidityKeyByPoolPrefix returns the prefix under which all positions of a
// pool are stored
func LiquidityKeyByPoolPrefix(poolID uint64) []byte {
	return append(LiquidityKeyPrefix, sdk.Uint64ToBigEndian(poolID)...)
}

// PoolByTokensKey returns the store key for pool lookup by token pair.
// Tokens are sorted so lookups are order-independent.
func PoolByTokensKey(tokenA, tokenB string) []byte {
	if tokenA > tokenB {
		tokenA, tokenB = tokenB, tokenA
	}
	key := append(PoolByTokensKeyPrefix, []byte(tokenA)...)
	key = append(key, []byte("/")...)
	return append(key, []byte(tokenB)...)
}

// PoolLockKey returns the store key for a pool's reentrancy lock flag
func PoolLockKey(poolID uint64) []byte {
	return append(PoolLockKeyPrefix, sdk.Uint64ToBigEndian(poolID)...)
}
