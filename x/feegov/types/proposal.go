package types

import (
	"encoding/json"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// ProposalStatus is derived from a proposal's stored flags, its voting
// window, and the clock; only Executed and Canceled are persisted.
type ProposalStatus uint8

const (
	StatusPending ProposalStatus = iota
	StatusActive
	StatusDefeated
	StatusSucceeded
	StatusExecuted
	StatusExpired
	StatusCanceled
)

func (s ProposalStatus) String() string {
	switch s {
	case StatusPending:
		return "PENDING"
	case StatusActive:
		return "ACTIVE"
	case StatusDefeated:
		return "DEFEATED"
	case StatusSucceeded:
		return "SUCCEEDED"
	case StatusExecuted:
		return "EXECUTED"
	case StatusExpired:
		return "EXPIRED"
	case StatusCanceled:
		return "CANCELED"
	default:
		return "UNKNOWN"
	}
}

// Proposal types
const (
	ProposalTypeAddFeeTier      = "add_fee_tier"
	ProposalTypeSetRevenueShare = "set_revenue_share"
)

// VoteOption is a single ballot choice
type VoteOption uint8

const (
	VoteOptionYes VoteOption = iota + 1
	VoteOptionNo
	VoteOptionAbstain
)

// Validate checks the vote option is one of the three ballot choices
func (v VoteOption) Validate() error {
	switch v {
	case VoteOptionYes, VoteOptionNo, VoteOptionAbstain:
		return nil
	default:
		return ErrInvalidVote.Wrapf("option %d", v)
	}
}

// Vote records one address's ballot on a proposal, weighted by the voting
// power held when the vote was cast.
type Vote struct {
	ProposalId uint64     `json:"proposal_id"`
	Voter      string     `json:"voter"`
	Option     VoteOption `json:"option"`
	Power      math.Int   `json:"power"`
}

// Marshal serializes the vote to bytes
func (v Vote) Marshal() ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal deserializes the vote from bytes
func (v *Vote) Unmarshal(bz []byte) error {
	return json.Unmarshal(bz, v)
}

// ProposalPayload carries the change a proposal enacts. Exactly one field is
// set, matching the proposal's type.
type ProposalPayload struct {
	AddFeeTier      *FeeTier      `json:"add_fee_tier,omitempty"`
	SetRevenueShare *RevenueShare `json:"set_revenue_share,omitempty"`
}

// Proposal is a governed change to the fee catalog or revenue table.
type Proposal struct {
	Id           uint64          `json:"id"`
	Proposer     string          `json:"proposer"`
	Type         string          `json:"type"`
	Payload      ProposalPayload `json:"payload"`
	VotingStart  int64           `json:"voting_start"`
	VotingEnd    int64           `json:"voting_end"`
	ForVotes     math.Int        `json:"for_votes"`
	AgainstVotes math.Int        `json:"against_votes"`
	AbstainVotes math.Int        `json:"abstain_votes"`
	Executed     bool            `json:"executed"`
	Canceled     bool            `json:"canceled"`
}

// Validate performs basic proposal validation
func (p Proposal) Validate() error {
	if _, err := sdk.AccAddressFromBech32(p.Proposer); err != nil {
		return ErrZeroAddress.Wrapf("proposer %q: %v", p.Proposer, err)
	}
	if p.VotingEnd <= p.VotingStart {
		return ErrInvalidProposal.Wrapf("voting window [%d, %d] is empty", p.VotingStart, p.VotingEnd)
	}

	switch p.Type {
	case ProposalTypeAddFeeTier:
		if p.Payload.AddFeeTier == nil {
			return ErrInvalidProposal.Wrap("add_fee_tier proposal missing payload")
		}
		return p.Payload.AddFeeTier.Validate()
	case ProposalTypeSetRevenueShare:
		if p.Payload.SetRevenueShare == nil {
			return ErrInvalidProposal.Wrap("set_revenue_share proposal missing payload")
		}
		return p.Payload.SetRevenueShare.Validate()
	default:
		return ErrInvalidProposal.Wrapf("unknown type %q", p.Type)
	}
}

// TotalVotes returns the sum of all ballots cast on the proposal
func (p Proposal) TotalVotes() math.Int {
	return p.ForVotes.Add(p.AgainstVotes).Add(p.AbstainVotes)
}

// Status derives the proposal's lifecycle state at the given time.
//
// A closed proposal succeeds only when for-votes strictly exceed
// against-votes AND total turnout meets the quorum fraction of total voting
// power. A succeeded proposal becomes executable after ExecutionDelay and
// expires if not executed within ExecutionGrace after that.
func (p Proposal) Status(now int64, params Params, totalVotingPower math.Int) ProposalStatus {
	if p.Canceled {
		return StatusCanceled
	}
	if p.Executed {
		return StatusExecuted
	}
	if now < p.VotingStart {
		return StatusPending
	}
	if now <= p.VotingEnd {
		return StatusActive
	}

	quorum := totalVotingPower.MulRaw(int64(params.QuorumBps)).QuoRaw(MaxTotalBps)
	if !p.ForVotes.GT(p.AgainstVotes) || p.TotalVotes().LT(quorum) {
		return StatusDefeated
	}

	if now > p.VotingEnd+params.ExecutionDelay+params.ExecutionGrace {
		return StatusExpired
	}
	return StatusSucceeded
}

// Marshal serializes the proposal to bytes
func (p Proposal) Marshal() ([]byte, error) {
	return json.Marshal(p)
}

// Unmarshal deserializes the proposal from bytes
func (p *Proposal) Unmarshal(bz []byte) error {
	return json.Unmarshal(bz, p)
}
