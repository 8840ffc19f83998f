package types

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgAddLiquidity{}

// MsgAddLiquidity defines a message to provide liquidity to a pool
type MsgAddLiquidity struct {
	Provider string   `json:"provider"`
	PoolId   uint64   `json:"pool_id"`
	AmountA  math.Int `json:"amount_a"`
	AmountB  math.Int `json:"amount_b"`
}

// NewMsgAddLiquidity creates a new MsgAddLiquidity instance
func NewMsgAddLiquidity(provider string, poolID uint64, amountA, amountB math.Int) *MsgAddLiquidity {
	return &MsgAddLiquidity{
		Provider: provider,
		PoolId:   poolID,
		AmountA:  amountA,
		AmountB:  amountB,
	}
}

func (msg *MsgAddLiquidity) Reset()         { *msg = MsgAddLiquidity{} }
func (msg *MsgAddLiquidity) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgAddLiquidity) ProtoMessage()      {}

func (msg *MsgAddLiquidity) Route() string { return RouterKey }
func (msg *MsgAddLiquidity) Type() string  { return "add_liquidity" }

// GetSigners returns the expected signers for MsgAddLiquidity
func (msg *MsgAddLiquidity) GetSigners() []sdk.AccAddress {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{provider}
}

// ValidateBasic performs stateless validation of MsgAddLiquidity
func (msg *MsgAddLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid provider address: %s", err)
	}

	if msg.PoolId == 0 {
		return ErrInvalidInput.Wrap("pool id must be positive")
	}

	if msg.AmountA.IsNil() || !msg.AmountA.IsPositive() {
		return ErrInvalidInput.Wrap("amount A must be positive")
	}

	if msg.AmountB.IsNil() || !msg.AmountB.IsPositive() {
		return ErrInvalidInput.Wrap("amount B must be positive")
	}

	return nil
}
