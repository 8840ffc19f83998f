package types

import (
	"cosmossdk.io/errors"
)

// DEX module sentinel errors
var (
	ErrPoolNotFound                = errors.Register(ModuleName, 2, "pool not found")
	ErrPoolAlreadyExists           = errors.Register(ModuleName, 3, "pool already exists")
	ErrIdenticalTokens             = errors.Register(ModuleName, 4, "token denominations must differ")
	ErrInvalidToken                = errors.Register(ModuleName, 5, "token not in pool")
	ErrInvalidAmountIn             = errors.Register(ModuleName, 6, "swap input amount must be positive")
	ErrZeroAddress                 = errors.Register(ModuleName, 7, "recipient address cannot be empty")
	ErrInsufficientLiquidity       = errors.Register(ModuleName, 8, "insufficient liquidity in pool")
	ErrInsufficientLiquidityMinted = errors.Register(ModuleName, 9, "insufficient liquidity minted")
	ErrInsufficientLiquidityBurned = errors.Register(ModuleName, 10, "insufficient liquidity burned")
	ErrInsufficientShares          = errors.Register(ModuleName, 11, "insufficient liquidity shares")
	ErrInvalidFee                  = errors.Register(ModuleName, 12, "invalid fee")
	ErrOverflow                    = errors.Register(ModuleName, 13, "arithmetic overflow")
	ErrKInvariant                  = errors.Register(ModuleName, 14, "constant product invariant violated")
	ErrPoolLocked                  = errors.Register(ModuleName, 15, "pool is locked")
	ErrPoolNotInitialized          = errors.Register(ModuleName, 16, "pool has no liquidity")
	ErrInvalidInput                = errors.Register(ModuleName, 17, "invalid input")
	ErrHookNotRegistered           = errors.Register(ModuleName, 18, "hook not registered")
	ErrHookExists                  = errors.Register(ModuleName, 19, "hook already registered")
	ErrHookFailed                  = errors.Register(ModuleName, 20, "hook rejected operation")
	ErrInvalidAddress              = errors.Register(ModuleName, 21, "invalid address")
	ErrInvalidPoolState            = errors.Register(ModuleName, 22, "invalid pool state")
	ErrMinAmountOut                = errors.Register(ModuleName, 23, "output amount below minimum")
)
