package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-chain/meridian/x/feegov/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the feegov MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

func (s msgServer) AddFeeTier(goCtx context.Context, msg *types.MsgAddFeeTier) (*types.MsgAddFeeTierResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := s.checkAuthority(msg.Authority); err != nil {
		return nil, err
	}

	tier := types.FeeTier{
		FeePpm:      msg.FeePpm,
		TickSpacing: msg.TickSpacing,
		Active:      true,
		Description: msg.Description,
	}
	if err := s.Keeper.AddFeeTier(goCtx, tier); err != nil {
		return nil, err
	}

	return &types.MsgAddFeeTierResponse{}, nil
}

func (s msgServer) SetActivityScore(goCtx context.Context, msg *types.MsgSetActivityScore) (*types.MsgSetActivityScoreResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := s.checkAuthority(msg.Authority); err != nil {
		return nil, err
	}

	if err := s.Keeper.SetActivityScore(goCtx, msg.ScoreBps); err != nil {
		return nil, err
	}

	return &types.MsgSetActivityScoreResponse{}, nil
}

func (s msgServer) SetRevenueShare(goCtx context.Context, msg *types.MsgSetRevenueShare) (*types.MsgSetRevenueShareResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := s.checkAuthority(msg.Authority); err != nil {
		return nil, err
	}

	share := types.RevenueShare{
		Recipient:     msg.Recipient,
		PercentageBps: msg.PercentageBps,
		Active:        msg.Active,
		TotalClaimed:  math.ZeroInt(),
	}
	if err := s.Keeper.SetRevenueShare(goCtx, share); err != nil {
		return nil, err
	}

	return &types.MsgSetRevenueShareResponse{}, nil
}

func (s msgServer) DistributeRevenue(goCtx context.Context, msg *types.MsgDistributeRevenue) (*types.MsgDistributeRevenueResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	payer, err := sdk.AccAddressFromBech32(msg.Payer)
	if err != nil {
		return nil, types.ErrZeroAddress.Wrapf("payer: %v", err)
	}

	if err := s.Keeper.DistributeRevenue(goCtx, payer, msg.Denom, msg.Amount); err != nil {
		return nil, err
	}

	return &types.MsgDistributeRevenueResponse{}, nil
}

func (s msgServer) SubmitProposal(goCtx context.Context, msg *types.MsgSubmitProposal) (*types.MsgSubmitProposalResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	proposer, err := sdk.AccAddressFromBech32(msg.Proposer)
	if err != nil {
		return nil, types.ErrZeroAddress.Wrapf("proposer: %v", err)
	}

	proposalID, err := s.Keeper.SubmitProposal(goCtx, proposer, msg.ProposalType, msg.Payload)
	if err != nil {
		return nil, err
	}

	return &types.MsgSubmitProposalResponse{ProposalId: proposalID}, nil
}

func (s msgServer) Vote(goCtx context.Context, msg *types.MsgVote) (*types.MsgVoteResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	voter, err := sdk.AccAddressFromBech32(msg.Voter)
	if err != nil {
		return nil, types.ErrZeroAddress.Wrapf("voter: %v", err)
	}

	if err := s.Keeper.Vote(goCtx, voter, msg.ProposalId, msg.Option); err != nil {
		return nil, err
	}

	return &types.MsgVoteResponse{}, nil
}

func (s msgServer) ExecuteProposal(goCtx context.Context, msg *types.MsgExecuteProposal) (*types.MsgExecuteProposalResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	if err := s.Keeper.ExecuteProposal(goCtx, msg.ProposalId); err != nil {
		return nil, err
	}

	return &types.MsgExecuteProposalResponse{}, nil
}

func (s msgServer) CancelProposal(goCtx context.Context, msg *types.MsgCancelProposal) (*types.MsgCancelProposalResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	signer, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		return nil, types.ErrZeroAddress.Wrapf("authority: %v", err)
	}

	if err := s.Keeper.CancelProposal(goCtx, signer, msg.ProposalId); err != nil {
		return nil, err
	}

	return &types.MsgCancelProposalResponse{}, nil
}
