package keeper

import (
	"context"
	"encoding/binary"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-chain/meridian/x/feegov/types"
)

// GetNextProposalID returns the next proposal ID and increments the counter
func (k Keeper) GetNextProposalID(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	bz := store.Get(types.ProposalCountKey)

	var proposalID uint64
	if bz == nil {
		proposalID = 1
	} else {
		proposalID = binary.BigEndian.Uint64(bz)
	}

	next := make([]byte, 8)
	binary.BigEndian.PutUint64(next, proposalID+1)
	store.Set(types.ProposalCountKey, next)

	return proposalID
}

// PeekNextProposalID returns the next proposal ID without consuming it.
func (k Keeper) PeekNextProposalID(ctx context.Context) uint64 {
	bz := k.getStore(ctx).Get(types.ProposalCountKey)
	if bz == nil {
		return 1
	}
	return binary.BigEndian.Uint64(bz)
}

// SetNextProposalID sets the proposal ID counter, used on genesis import
func (k Keeper) SetNextProposalID(ctx context.Context, proposalID uint64) {
	store := k.getStore(ctx)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, proposalID)
	store.Set(types.ProposalCountKey, bz)
}

// GetProposal retrieves a proposal by ID
func (k Keeper) GetProposal(ctx context.Context, proposalID uint64) (*types.Proposal, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.ProposalKey(proposalID))
	if bz == nil {
		return nil, types.ErrProposalNotFound.Wrapf("proposal %d", proposalID)
	}

	var proposal types.Proposal
	if err := proposal.Unmarshal(bz); err != nil {
		return nil, fmt.Errorf("GetProposal: unmarshal proposal %d: %w", proposalID, err)
	}
	return &proposal, nil
}

// SetProposal stores a proposal
func (k Keeper) SetProposal(ctx context.Context, proposal *types.Proposal) error {
	bz, err := proposal.Marshal()
	if err != nil {
		return fmt.Errorf("SetProposal: marshal proposal %d: %w", proposal.Id, err)
	}
	k.getStore(ctx).Set(types.ProposalKey(proposal.Id), bz)
	return nil
}

// IterateProposals iterates over all proposals
func (k Keeper) IterateProposals(ctx context.Context, cb func(proposal types.Proposal) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.ProposalKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var proposal types.Proposal
		if err := proposal.Unmarshal(iterator.Value()); err != nil {
			return err
		}
		if cb(proposal) {
			break
		}
	}
	return nil
}

// ProposalStatus derives a proposal's current lifecycle state
func (k Keeper) ProposalStatus(ctx context.Context, proposal *types.Proposal) (types.ProposalStatus, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return types.StatusPending, err
	}
	totalPower, err := k.GetTotalVotingPower(ctx)
	if err != nil {
		return types.StatusPending, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return proposal.Status(sdkCtx.BlockTime().Unix(), params, totalPower), nil
}

// SubmitProposal opens a proposal with the voting window starting now.
// Proposers must hold voting power; this keeps spam off the ledger without a
// deposit mechanism.
//
// Errors: ErrInvalidProposal, ErrInsufficientVotingPower.
func (k Keeper) SubmitProposal(ctx context.Context, proposer sdk.AccAddress, proposalType string, payload types.ProposalPayload) (uint64, error) {
	power, err := k.GetVotingPower(ctx, proposer)
	if err != nil {
		return 0, err
	}
	if !power.IsPositive() {
		return 0, types.ErrInsufficientVotingPower.Wrapf("proposer %s holds no voting power", proposer)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return 0, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime().Unix()

	proposal := types.Proposal{
		Id:           k.GetNextProposalID(ctx),
		Proposer:     proposer.String(),
		Type:         proposalType,
		Payload:      payload,
		VotingStart:  now,
		VotingEnd:    now + params.VotingPeriod,
		ForVotes:     math.ZeroInt(),
		AgainstVotes: math.ZeroInt(),
		AbstainVotes: math.ZeroInt(),
	}
	if err := proposal.Validate(); err != nil {
		return 0, err
	}

	if err := k.SetProposal(ctx, &proposal); err != nil {
		return 0, err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeProposalCreated,
			sdk.NewAttribute(types.AttributeKeyProposalID, fmt.Sprintf("%d", proposal.Id)),
			sdk.NewAttribute(types.AttributeKeyProposer, proposal.Proposer),
			sdk.NewAttribute(types.AttributeKeyType, proposal.Type),
		),
	)

	return proposal.Id, nil
}

// Vote casts a ballot on an active proposal, weighted by the voter's current
// voting power. One ballot per address per proposal.
//
// Errors: ErrProposalNotFound, ErrProposalNotActive, ErrAlreadyVoted,
// ErrInsufficientVotingPower, ErrInvalidVote.
func (k Keeper) Vote(ctx context.Context, voter sdk.AccAddress, proposalID uint64, option types.VoteOption) error {
	if err := option.Validate(); err != nil {
		return err
	}

	proposal, err := k.GetProposal(ctx, proposalID)
	if err != nil {
		return err
	}

	status, err := k.ProposalStatus(ctx, proposal)
	if err != nil {
		return err
	}
	if status != types.StatusActive {
		return types.ErrProposalNotActive.Wrapf("proposal %d is %s", proposalID, status)
	}

	store := k.getStore(ctx)
	voteKey := types.VoteKey(proposalID, voter)
	if store.Has(voteKey) {
		return types.ErrAlreadyVoted.Wrapf("proposal %d, voter %s", proposalID, voter)
	}

	power, err := k.GetVotingPower(ctx, voter)
	if err != nil {
		return err
	}
	if !power.IsPositive() {
		return types.ErrInsufficientVotingPower.Wrapf("voter %s holds no voting power", voter)
	}

	switch option {
	case types.VoteOptionYes:
		proposal.ForVotes = proposal.ForVotes.Add(power)
	case types.VoteOptionNo:
		proposal.AgainstVotes = proposal.AgainstVotes.Add(power)
	case types.VoteOptionAbstain:
		proposal.AbstainVotes = proposal.AbstainVotes.Add(power)
	}

	vote := types.Vote{
		ProposalId: proposalID,
		Voter:      voter.String(),
		Option:     option,
		Power:      power,
	}
	bz, err := vote.Marshal()
	if err != nil {
		return err
	}
	store.Set(voteKey, bz)

	if err := k.SetProposal(ctx, proposal); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeProposalVoted,
			sdk.NewAttribute(types.AttributeKeyProposalID, fmt.Sprintf("%d", proposalID)),
			sdk.NewAttribute(types.AttributeKeyVoter, voter.String()),
			sdk.NewAttribute(types.AttributeKeyOption, fmt.Sprintf("%d", option)),
		),
	)
	return nil
}

// IterateVotes iterates over all ballots on a proposal
func (k Keeper) IterateVotes(ctx context.Context, proposalID uint64, cb func(vote types.Vote) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.VoteKeyByProposalPrefix(proposalID))
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var vote types.Vote
		if err := vote.Unmarshal(iterator.Value()); err != nil {
			return err
		}
		if cb(vote) {
			break
		}
	}
	return nil
}

// ExecuteProposal enacts a succeeded proposal's payload. Anyone may execute
// once the delay has elapsed; the grace window bounds how long a succeeded
// proposal stays executable.
//
// Errors: ErrProposalNotFound, ErrProposalNotSucceeded,
// ErrProposalAlreadyExecuted, ErrProposalExpired, ErrProposalCanceled,
// ErrExecutionDelayNotMet.
func (k Keeper) ExecuteProposal(ctx context.Context, proposalID uint64) error {
	proposal, err := k.GetProposal(ctx, proposalID)
	if err != nil {
		return err
	}

	status, err := k.ProposalStatus(ctx, proposal)
	if err != nil {
		return err
	}
	switch status {
	case types.StatusExecuted:
		return types.ErrProposalAlreadyExecuted.Wrapf("proposal %d", proposalID)
	case types.StatusCanceled:
		return types.ErrProposalCanceled.Wrapf("proposal %d", proposalID)
	case types.StatusExpired:
		return types.ErrProposalExpired.Wrapf("proposal %d", proposalID)
	case types.StatusSucceeded:
	default:
		return types.ErrProposalNotSucceeded.Wrapf("proposal %d is %s", proposalID, status)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime().Unix()
	if now < proposal.VotingEnd+params.ExecutionDelay {
		return types.ErrExecutionDelayNotMet.Wrapf(
			"executable at %d, now %d", proposal.VotingEnd+params.ExecutionDelay, now)
	}

	switch proposal.Type {
	case types.ProposalTypeAddFeeTier:
		if err := k.AddFeeTier(ctx, *proposal.Payload.AddFeeTier); err != nil {
			return err
		}
	case types.ProposalTypeSetRevenueShare:
		if err := k.SetRevenueShare(ctx, *proposal.Payload.SetRevenueShare); err != nil {
			return err
		}
	default:
		return types.ErrInvalidProposal.Wrapf("unknown type %q", proposal.Type)
	}

	proposal.Executed = true
	if err := k.SetProposal(ctx, proposal); err != nil {
		return err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeProposalExecuted,
			sdk.NewAttribute(types.AttributeKeyProposalID, fmt.Sprintf("%d", proposalID)),
		),
	)
	return nil
}

// CancelProposal marks a non-executed proposal canceled. Only the module
// authority or the original proposer may cancel.
//
// Errors: ErrProposalNotFound, ErrProposalAlreadyExecuted, ErrUnauthorized.
func (k Keeper) CancelProposal(ctx context.Context, signer sdk.AccAddress, proposalID uint64) error {
	proposal, err := k.GetProposal(ctx, proposalID)
	if err != nil {
		return err
	}
	if proposal.Executed {
		return types.ErrProposalAlreadyExecuted.Wrapf("proposal %d", proposalID)
	}
	if signer.String() != k.authority && signer.String() != proposal.Proposer {
		return types.ErrUnauthorized.Wrapf("signer %s may not cancel proposal %d", signer, proposalID)
	}

	proposal.Canceled = true
	if err := k.SetProposal(ctx, proposal); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeProposalCanceled,
			sdk.NewAttribute(types.AttributeKeyProposalID, fmt.Sprintf("%d", proposalID)),
		),
	)
	return nil
}

// GetVotingPower returns an address's voting power, zero if unset
func (k Keeper) GetVotingPower(ctx context.Context, addr sdk.AccAddress) (math.Int, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.VotingPowerKey(addr))
	if bz == nil {
		return math.ZeroInt(), nil
	}

	var power math.Int
	if err := power.Unmarshal(bz); err != nil {
		return math.ZeroInt(), err
	}
	return power, nil
}

// SetVotingPower sets an address's voting power and keeps the running total
// consistent. Power flows from the authority, standing in for a staking or
// token-weight source.
func (k Keeper) SetVotingPower(ctx context.Context, addr sdk.AccAddress, power math.Int) error {
	if power.IsNil() || power.IsNegative() {
		return types.ErrInvalidInput.Wrap("voting power must be non-negative")
	}

	current, err := k.GetVotingPower(ctx, addr)
	if err != nil {
		return err
	}
	total, err := k.GetTotalVotingPower(ctx)
	if err != nil {
		return err
	}

	store := k.getStore(ctx)
	if power.IsZero() {
		store.Delete(types.VotingPowerKey(addr))
	} else {
		bz, err := power.Marshal()
		if err != nil {
			return err
		}
		store.Set(types.VotingPowerKey(addr), bz)
	}

	newTotal := total.Sub(current).Add(power)
	bz, err := newTotal.Marshal()
	if err != nil {
		return err
	}
	store.Set(types.TotalVotingPowerKey, bz)
	return nil
}

// GetTotalVotingPower returns the sum of all voting power
func (k Keeper) GetTotalVotingPower(ctx context.Context) (math.Int, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.TotalVotingPowerKey)
	if bz == nil {
		return math.ZeroInt(), nil
	}

	var total math.Int
	if err := total.Unmarshal(bz); err != nil {
		return math.ZeroInt(), err
	}
	return total, nil
}
