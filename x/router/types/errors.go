package types

import (
	"cosmossdk.io/errors"
)

// Router module sentinel errors
var (
	ErrInvalidPath           = errors.Register(ModuleName, 2, "invalid swap path")
	ErrDeadlineExpired       = errors.Register(ModuleName, 3, "deadline expired")
	ErrInvalidSrcChain       = errors.Register(ModuleName, 4, "unrecognized source chain")
	ErrInvalidDstChain       = errors.Register(ModuleName, 5, "unrecognized destination chain")
	ErrInsufficientFee       = errors.Register(ModuleName, 6, "relay fee below estimate")
	ErrBridgeOperationFailed = errors.Register(ModuleName, 7, "relay dispatch failed")
	ErrInvalidPayload        = errors.Register(ModuleName, 8, "invalid relay payload")
	ErrRouteNotFound         = errors.Register(ModuleName, 9, "route not found")
	ErrInvalidRouteState     = errors.Register(ModuleName, 10, "route not in expected state")
	ErrAdapterExists         = errors.Register(ModuleName, 11, "relay adapter already registered")
	ErrInsufficientOutput    = errors.Register(ModuleName, 12, "output below minimum")
	ErrZeroAddress           = errors.Register(ModuleName, 13, "address cannot be empty")
	ErrInvalidInput          = errors.Register(ModuleName, 14, "invalid input")
)
