package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-chain/meridian/x/dex/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the dex MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

func (s msgServer) CreatePool(goCtx context.Context, msg *types.MsgCreatePool) (*types.MsgCreatePoolResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("creator: %v", err)
	}

	pool, err := s.Keeper.CreatePool(goCtx, creator, msg.TokenA, msg.TokenB, msg.FeePpm, "")
	if err != nil {
		return nil, err
	}

	return &types.MsgCreatePoolResponse{PoolId: pool.Id}, nil
}

func (s msgServer) AddLiquidity(goCtx context.Context, msg *types.MsgAddLiquidity) (*types.MsgAddLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("provider: %v", err)
	}

	shares, err := s.Keeper.AddLiquidity(goCtx, provider, msg.PoolId, msg.AmountA, msg.AmountB)
	if err != nil {
		return nil, err
	}

	return &types.MsgAddLiquidityResponse{Shares: shares}, nil
}

func (s msgServer) RemoveLiquidity(goCtx context.Context, msg *types.MsgRemoveLiquidity) (*types.MsgRemoveLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("provider: %v", err)
	}

	amountA, amountB, err := s.Keeper.RemoveLiquidity(goCtx, provider, msg.PoolId, msg.Shares)
	if err != nil {
		return nil, err
	}

	return &types.MsgRemoveLiquidityResponse{AmountA: amountA, AmountB: amountB}, nil
}

func (s msgServer) Swap(goCtx context.Context, msg *types.MsgSwap) (*types.MsgSwapResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("trader: %v", err)
	}

	recipient := trader
	if msg.Recipient != "" {
		recipient, err = sdk.AccAddressFromBech32(msg.Recipient)
		if err != nil {
			return nil, types.ErrInvalidAddress.Wrapf("recipient: %v", err)
		}
	}

	amountOut, err := s.Keeper.Swap(goCtx, trader, msg.PoolId, msg.TokenIn, msg.AmountIn, msg.MinAmountOut, recipient)
	if err != nil {
		return nil, err
	}

	return &types.MsgSwapResponse{AmountOut: amountOut}, nil
}

func (s msgServer) Donate(goCtx context.Context, msg *types.MsgDonate) (*types.MsgDonateResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	donor, err := sdk.AccAddressFromBech32(msg.Donor)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("donor: %v", err)
	}

	if err := s.Keeper.Donate(goCtx, donor, msg.PoolId, msg.AmountA, msg.AmountB); err != nil {
		return nil, err
	}

	return &types.MsgDonateResponse{}, nil
}
