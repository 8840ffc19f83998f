package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// VotingPowerEntry pairs an address with its voting power for export.
type VotingPowerEntry struct {
	Address string   `json:"address"`
	Power   math.Int `json:"power"`
}

// DistributionTotal records the lifetime distributed amount of one denom.
type DistributionTotal struct {
	Denom  string   `json:"denom"`
	Amount math.Int `json:"amount"`
}

// GenesisState is the feegov module's exported state.
type GenesisState struct {
	Params             Params              `json:"params"`
	FeeTiers           []FeeTier           `json:"fee_tiers"`
	RevenueShares      []RevenueShare      `json:"revenue_shares"`
	NextProposalId     uint64              `json:"next_proposal_id"`
	Proposals          []Proposal          `json:"proposals"`
	Votes              []Vote              `json:"votes"`
	VotingPower        []VotingPowerEntry  `json:"voting_power"`
	DistributionTotals []DistributionTotal `json:"distribution_totals"`
	DistributionPaused bool                `json:"distribution_paused"`
	ActivityScoreBps   uint64              `json:"activity_score_bps"`
}

// DefaultGenesis returns the default genesis state for the feegov module.
// The catalog starts with the three classic tiers.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:           DefaultParams(),
		NextProposalId:   1,
		ActivityScoreBps: NeutralScoreBps,
		FeeTiers: []FeeTier{
			{FeePpm: 500, TickSpacing: 10, Active: true, Description: "stable pairs"},
			{FeePpm: 3000, TickSpacing: 60, Active: true, Description: "standard pairs"},
			{FeePpm: 10000, TickSpacing: 200, Active: true, Description: "exotic pairs"},
		},
	}
}

// Validate performs basic genesis state validation
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}
	if gs.NextProposalId == 0 {
		return ErrInvalidInput.Wrap("next proposal id must be positive")
	}
	// Zero means unset; the keeper reads it as neutral.
	if gs.ActivityScoreBps != 0 {
		if err := ValidateScoreBps(gs.ActivityScoreBps); err != nil {
			return err
		}
	}

	seenTiers := make(map[uint64]struct{}, len(gs.FeeTiers))
	for _, tier := range gs.FeeTiers {
		if err := tier.Validate(); err != nil {
			return fmt.Errorf("fee tier %d: %w", tier.FeePpm, err)
		}
		if _, ok := seenTiers[tier.FeePpm]; ok {
			return ErrFeeTierExists.Wrapf("duplicate tier %d in genesis", tier.FeePpm)
		}
		seenTiers[tier.FeePpm] = struct{}{}
	}

	totalBps := uint64(0)
	seenRecipients := make(map[string]struct{}, len(gs.RevenueShares))
	for _, share := range gs.RevenueShares {
		if err := share.Validate(); err != nil {
			return fmt.Errorf("revenue share %s: %w", share.Recipient, err)
		}
		if _, ok := seenRecipients[share.Recipient]; ok {
			return ErrInvalidShares.Wrapf("duplicate recipient %s in genesis", share.Recipient)
		}
		seenRecipients[share.Recipient] = struct{}{}
		if share.Active {
			totalBps += share.PercentageBps
		}
	}
	if totalBps > MaxTotalBps {
		return ErrInvalidShares.Wrapf("active shares total %d bps", totalBps)
	}

	seenProposals := make(map[uint64]struct{}, len(gs.Proposals))
	for _, proposal := range gs.Proposals {
		if err := proposal.Validate(); err != nil {
			return fmt.Errorf("proposal %d: %w", proposal.Id, err)
		}
		if _, ok := seenProposals[proposal.Id]; ok {
			return ErrInvalidProposal.Wrapf("duplicate proposal id %d in genesis", proposal.Id)
		}
		if proposal.Id >= gs.NextProposalId {
			return ErrInvalidProposal.Wrapf("proposal id %d not below next id %d", proposal.Id, gs.NextProposalId)
		}
		seenProposals[proposal.Id] = struct{}{}
	}

	for _, vote := range gs.Votes {
		if _, ok := seenProposals[vote.ProposalId]; !ok {
			return ErrProposalNotFound.Wrapf("vote references unknown proposal %d", vote.ProposalId)
		}
		if _, err := sdk.AccAddressFromBech32(vote.Voter); err != nil {
			return ErrZeroAddress.Wrapf("voter %q: %v", vote.Voter, err)
		}
		if err := vote.Option.Validate(); err != nil {
			return err
		}
		if vote.Power.IsNil() || vote.Power.IsNegative() {
			return ErrInvalidInput.Wrap("vote power must be non-negative")
		}
	}

	for _, entry := range gs.VotingPower {
		if _, err := sdk.AccAddressFromBech32(entry.Address); err != nil {
			return ErrZeroAddress.Wrapf("voting power address %q: %v", entry.Address, err)
		}
		if entry.Power.IsNil() || !entry.Power.IsPositive() {
			return ErrInvalidInput.Wrap("voting power must be positive")
		}
	}

	for _, total := range gs.DistributionTotals {
		if err := sdk.ValidateDenom(total.Denom); err != nil {
			return ErrInvalidInput.Wrapf("distribution denom: %v", err)
		}
		if total.Amount.IsNil() || total.Amount.IsNegative() {
			return ErrInvalidInput.Wrap("distribution total must be non-negative")
		}
	}

	return nil
}
