package types

import (
	"cosmossdk.io/errors"
)

// Oracle module sentinel errors
var (
	ErrNoObservations     = errors.Register(ModuleName, 2, "no observations for pool")
	ErrStaleObservation   = errors.Register(ModuleName, 3, "observation slot holds a stale era")
	ErrInvalidPrice       = errors.Register(ModuleName, 4, "invalid price")
	ErrInvalidTimestamp   = errors.Register(ModuleName, 5, "invalid timestamp")
	ErrInvalidWindow      = errors.Register(ModuleName, 6, "invalid time window")
	ErrInvalidObservation = errors.Register(ModuleName, 7, "invalid observation")
)
