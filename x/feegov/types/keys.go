package types

import (
	"encoding/binary"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// ModuleName defines the feegov module name
	ModuleName = "feegov"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName
)

// KVStore key prefixes
var (
	FeeTierKeyPrefix          = []byte{0x01}
	RevenueShareKeyPrefix     = []byte{0x02}
	ProposalKeyPrefix         = []byte{0x03}
	ProposalCountKey          = []byte{0x04}
	VoteKeyPrefix             = []byte{0x05}
	VotingPowerKeyPrefix      = []byte{0x06}
	TotalVotingPowerKey       = []byte{0x07}
	TotalDistributedKeyPrefix = []byte{0x08}
	DistributionPausedKey     = []byte{0x09}
	DistributionLockKey       = []byte{0x0A}
	ParamsKey                 = []byte{0x0B}
	ActivityScoreKey          = []byte{0x0C}
)

// FeeTierKey returns the store key for a fee tier
func FeeTierKey(feePpm uint64) []byte {
	key := make([]byte, 0, len(FeeTierKeyPrefix)+8)
	key = append(key, FeeTierKeyPrefix...)
	return binary.BigEndian.AppendUint64(key, feePpm)
}

// RevenueShareKey returns the store key for a recipient's revenue share
func RevenueShareKey(recipient sdk.AccAddress) []byte {
	return append(RevenueShareKeyPrefix, recipient.Bytes()...)
}

// ProposalKey returns the store key for a proposal
func ProposalKey(proposalID uint64) []byte {
	key := make([]byte, 0, len(ProposalKeyPrefix)+8)
	key = append(key, ProposalKeyPrefix...)
	return binary.BigEndian.AppendUint64(key, proposalID)
}

// VoteKey returns the store key for a voter's vote on a proposal
func VoteKey(proposalID uint64, voter sdk.AccAddress) []byte {
	key := make([]byte, 0, len(VoteKeyPrefix)+8+len(voter))
	key = append(key, VoteKeyPrefix...)
	key = binary.BigEndian.AppendUint64(key, proposalID)
	return append(key, voter.Bytes()...)
}

// VoteKeyByProposalPrefix returns the store prefix covering all votes on a
// proposal.
func VoteKeyByProposalPrefix(proposalID uint64) []byte {
	key := make([]byte, 0, len(VoteKeyPrefix)+8)
	key = append(key, VoteKeyPrefix...)
	return binary.BigEndian.AppendUint64(key, proposalID)
}

// VotingPowerKey returns the store key for an address's voting power
func VotingPowerKey(addr sdk.AccAddress) []byte {
	return append(VotingPowerKeyPrefix, addr.Bytes()...)
}

// TotalDistributedKey returns the store key for a denom's distribution total
func TotalDistributedKey(denom string) []byte {
	return append(TotalDistributedKeyPrefix, []byte(denom)...)
}
