package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-chain/meridian/x/feegov/types"
)

// InitGenesis initializes the feegov module state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("invalid feegov genesis: %w", err)
	}

	if err := k.SetParams(ctx, genState.Params); err != nil {
		return err
	}
	k.SetNextProposalID(ctx, genState.NextProposalId)
	k.SetDistributionPaused(ctx, genState.DistributionPaused)
	if genState.ActivityScoreBps != 0 {
		if err := k.SetActivityScore(ctx, genState.ActivityScoreBps); err != nil {
			return err
		}
	}

	for _, tier := range genState.FeeTiers {
		if err := k.SetFeeTier(ctx, tier); err != nil {
			return err
		}
	}

	store := k.getStore(ctx)
	for _, share := range genState.RevenueShares {
		recipient, err := sdk.AccAddressFromBech32(share.Recipient)
		if err != nil {
			return err
		}
		bz, err := share.Marshal()
		if err != nil {
			return err
		}
		store.Set(types.RevenueShareKey(recipient), bz)
	}

	for i := range genState.Proposals {
		proposal := genState.Proposals[i]
		if err := k.SetProposal(ctx, &proposal); err != nil {
			return err
		}
	}

	for _, vote := range genState.Votes {
		voter, err := sdk.AccAddressFromBech32(vote.Voter)
		if err != nil {
			return err
		}
		bz, err := vote.Marshal()
		if err != nil {
			return err
		}
		store.Set(types.VoteKey(vote.ProposalId, voter), bz)
	}

	for _, entry := range genState.VotingPower {
		addr, err := sdk.AccAddressFromBech32(entry.Address)
		if err != nil {
			return err
		}
		if err := k.SetVotingPower(ctx, addr, entry.Power); err != nil {
			return err
		}
	}

	for _, total := range genState.DistributionTotals {
		if err := k.SetDistributedTotal(ctx, total.Denom, total.Amount); err != nil {
			return err
		}
	}

	return nil
}

// ExportGenesis returns the feegov module's exported state
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}

	genState := &types.GenesisState{
		Params:             params,
		NextProposalId:     k.PeekNextProposalID(ctx),
		DistributionPaused: k.IsDistributionPaused(ctx),
		ActivityScoreBps:   k.GetActivityScore(ctx),
	}

	err = k.IterateFeeTiers(ctx, func(tier types.FeeTier) bool {
		genState.FeeTiers = append(genState.FeeTiers, tier)
		return false
	})
	if err != nil {
		return nil, err
	}

	err = k.IterateRevenueShares(ctx, func(share types.RevenueShare) bool {
		genState.RevenueShares = append(genState.RevenueShares, share)
		return false
	})
	if err != nil {
		return nil, err
	}

	err = k.IterateProposals(ctx, func(proposal types.Proposal) bool {
		genState.Proposals = append(genState.Proposals, proposal)
		return false
	})
	if err != nil {
		return nil, err
	}

	for _, proposal := range genState.Proposals {
		err = k.IterateVotes(ctx, proposal.Id, func(vote types.Vote) bool {
			genState.Votes = append(genState.Votes, vote)
			return false
		})
		if err != nil {
			return nil, err
		}
	}

	store := k.getStore(ctx)
	powerIter := storetypes.KVStorePrefixIterator(store, types.VotingPowerKeyPrefix)
	defer powerIter.Close()
	for ; powerIter.Valid(); powerIter.Next() {
		var power math.Int
		if err := power.Unmarshal(powerIter.Value()); err != nil {
			return nil, err
		}
		addr := sdk.AccAddress(powerIter.Key()[len(types.VotingPowerKeyPrefix):])
		genState.VotingPower = append(genState.VotingPower, types.VotingPowerEntry{
			Address: addr.String(),
			Power:   power,
		})
	}

	totalIter := storetypes.KVStorePrefixIterator(store, types.TotalDistributedKeyPrefix)
	defer totalIter.Close()
	for ; totalIter.Valid(); totalIter.Next() {
		var amount math.Int
		if err := amount.Unmarshal(totalIter.Value()); err != nil {
			return nil, err
		}
		denom := string(totalIter.Key()[len(types.TotalDistributedKeyPrefix):])
		genState.DistributionTotals = append(genState.DistributionTotals, types.DistributionTotal{
			Denom:  denom,
			Amount: amount,
		})
	}

	return genState, nil
}
