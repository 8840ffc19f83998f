package types

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgCreatePool{}

// MsgCreatePool defines a message to create a new liquidity pool
type MsgCreatePool struct {
	Creator string `json:"creator"`
	TokenA  string `json:"token_a"`
	TokenB  string `json:"token_b"`
	FeePpm  uint64 `json:"fee_ppm"`
}

// NewMsgCreatePool creates a new MsgCreatePool instance
func NewMsgCreatePool(creator, tokenA, tokenB string, feePpm uint64) *MsgCreatePool {
	return &MsgCreatePool{
		Creator: creator,
		TokenA:  tokenA,
		TokenB:  tokenB,
		FeePpm:  feePpm,
	}
}

func (msg *MsgCreatePool) Reset()         { *msg = MsgCreatePool{} }
func (msg *MsgCreatePool) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgCreatePool) ProtoMessage()      {}

// Route implements the legacy routing interface
func (msg *MsgCreatePool) Route() string { return RouterKey }

// Type implements the legacy routing interface
func (msg *MsgCreatePool) Type() string { return "create_pool" }

// GetSigners returns the expected signers for MsgCreatePool
func (msg *MsgCreatePool) GetSigners() []sdk.AccAddress {
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{creator}
}

// ValidateBasic performs stateless validation of MsgCreatePool
func (msg *MsgCreatePool) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid creator address: %s", err)
	}

	if msg.TokenA == "" || msg.TokenB == "" {
		return ErrInvalidInput.Wrap("token denominations cannot be empty")
	}

	if msg.TokenA == msg.TokenB {
		return ErrIdenticalTokens.Wrap("token denominations must be different")
	}

	if err := sdk.ValidateDenom(msg.TokenA); err != nil {
		return ErrInvalidInput.Wrapf("invalid denom for token A: %s", err)
	}

	if err := sdk.ValidateDenom(msg.TokenB); err != nil {
		return ErrInvalidInput.Wrapf("invalid denom for token B: %s", err)
	}

	if msg.FeePpm >= FeeDenominator {
		return ErrInvalidFee.Wrapf("fee %d ppm exceeds denominator", msg.FeePpm)
	}

	return nil
}
