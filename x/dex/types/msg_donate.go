package types

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgDonate{}

// MsgDonate defines a message that adds reserves to a pool without minting
// shares. The donation accrues to existing share holders.
type MsgDonate struct {
	Donor   string   `json:"donor"`
	PoolId  uint64   `json:"pool_id"`
	AmountA math.Int `json:"amount_a"`
	AmountB math.Int `json:"amount_b"`
}

// NewMsgDonate creates a new MsgDonate instance
func NewMsgDonate(donor string, poolID uint64, amountA, amountB math.Int) *MsgDonate {
	return &MsgDonate{
		Donor:   donor,
		PoolId:  poolID,
		AmountA: amountA,
		AmountB: amountB,
	}
}

func (msg *MsgDonate) Reset()         { *msg = MsgDonate{} }
func (msg *MsgDonate) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgDonate) ProtoMessage()      {}

func (msg *MsgDonate) Route() string { return RouterKey }
func (msg *MsgDonate) Type() string  { return "donate" }

// GetSigners returns the expected signers for MsgDonate
func (msg *MsgDonate) GetSigners() []sdk.AccAddress {
	donor, err := sdk.AccAddressFromBech32(msg.Donor)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{donor}
}

// ValidateBasic performs stateless validation of MsgDonate
func (msg *MsgDonate) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Donor); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid donor address: %s", err)
	}

	if msg.PoolId == 0 {
		return ErrInvalidInput.Wrap("pool id must be positive")
	}

	if msg.AmountA.IsNil() || msg.AmountB.IsNil() {
		return ErrInvalidInput.Wrap("donation amounts cannot be nil")
	}

	if msg.AmountA.IsNegative() || msg.AmountB.IsNegative() {
		return ErrInvalidInput.Wrap("donation amounts cannot be negative")
	}

	if msg.AmountA.IsZero() && msg.AmountB.IsZero() {
		return ErrInvalidInput.Wrap("donation must include at least one token")
	}

	return nil
}
