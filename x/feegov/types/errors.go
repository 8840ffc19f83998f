package types

import (
	"cosmossdk.io/errors"
)

// Feegov module sentinel errors
var (
	ErrInvalidFee              = errors.Register(ModuleName, 2, "fee outside tier bounds or step")
	ErrFeeTierExists           = errors.Register(ModuleName, 3, "fee tier already exists")
	ErrFeeTierNotFound         = errors.Register(ModuleName, 4, "fee tier not found")
	ErrInvalidTickSpacing      = errors.Register(ModuleName, 5, "invalid tick spacing")
	ErrZeroAmount              = errors.Register(ModuleName, 6, "amount must be positive")
	ErrZeroAddress             = errors.Register(ModuleName, 7, "address cannot be empty")
	ErrInvalidShares           = errors.Register(ModuleName, 8, "revenue shares exceed 10000 bps")
	ErrShareNotFound           = errors.Register(ModuleName, 9, "revenue share not found")
	ErrDistributionPaused      = errors.Register(ModuleName, 10, "revenue distribution is paused")
	ErrDistributionLocked      = errors.Register(ModuleName, 11, "revenue distribution in progress")
	ErrProposalNotFound        = errors.Register(ModuleName, 12, "proposal not found")
	ErrProposalNotActive       = errors.Register(ModuleName, 13, "proposal not in voting window")
	ErrAlreadyVoted            = errors.Register(ModuleName, 14, "address already voted on proposal")
	ErrProposalNotSucceeded    = errors.Register(ModuleName, 15, "proposal did not succeed")
	ErrProposalAlreadyExecuted = errors.Register(ModuleName, 16, "proposal already executed")
	ErrExecutionDelayNotMet    = errors.Register(ModuleName, 17, "execution delay not met")
	ErrProposalExpired         = errors.Register(ModuleName, 18, "proposal execution window expired")
	ErrProposalCanceled        = errors.Register(ModuleName, 19, "proposal canceled")
	ErrInsufficientVotingPower = errors.Register(ModuleName, 20, "insufficient voting power")
	ErrUnauthorized            = errors.Register(ModuleName, 21, "unauthorized")
	ErrInvalidProposal         = errors.Register(ModuleName, 22, "invalid proposal")
	ErrInvalidVote             = errors.Register(ModuleName, 23, "invalid vote option")
	ErrInvalidInput            = errors.Register(ModuleName, 24, "invalid input")
	ErrInvalidScore            = errors.Register(ModuleName, 25, "activity score out of bounds")
)
