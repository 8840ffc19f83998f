package types

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgSwap{}

// MsgSwap defines a message to swap tokens against a pool
type MsgSwap struct {
	Trader       string   `json:"trader"`
	PoolId       uint64   `json:"pool_id"`
	TokenIn      string   `json:"token_in"`
	AmountIn     math.Int `json:"amount_in"`
	MinAmountOut math.Int `json:"min_amount_out"`
	Recipient    string   `json:"recipient"`
}

// NewMsgSwap creates a new MsgSwap instance
func NewMsgSwap(trader string, poolID uint64, tokenIn string, amountIn, minAmountOut math.Int, recipient string) *MsgSwap {
	return &MsgSwap{
		Trader:       trader,
		PoolId:       poolID,
		TokenIn:      tokenIn,
		AmountIn:     amountIn,
		MinAmountOut: minAmountOut,
		Recipient:    recipient,
	}
}

func (msg *MsgSwap) Reset()         { *msg = MsgSwap{} }
func (msg *MsgSwap) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgSwap) ProtoMessage()      {}

func (msg *MsgSwap) Route() string { return RouterKey }
func (msg *MsgSwap) Type() string  { return "swap" }

// GetSigners returns the expected signers for MsgSwap
func (msg *MsgSwap) GetSigners() []sdk.AccAddress {
	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{trader}
}

// ValidateBasic performs stateless validation of MsgSwap
func (msg *MsgSwap) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Trader); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid trader address: %s", err)
	}

	if msg.Recipient == "" {
		return ErrZeroAddress
	}

	if _, err := sdk.AccAddressFromBech32(msg.Recipient); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid recipient address: %s", err)
	}

	if msg.PoolId == 0 {
		return ErrInvalidInput.Wrap("pool id must be positive")
	}

	if msg.TokenIn == "" {
		return ErrInvalidToken.Wrap("input token cannot be empty")
	}

	if msg.AmountIn.IsNil() || !msg.AmountIn.IsPositive() {
		return ErrInvalidAmountIn
	}

	if msg.MinAmountOut.IsNil() || msg.MinAmountOut.IsNegative() {
		return ErrInvalidInput.Wrap("min amount out cannot be negative")
	}

	return nil
}
