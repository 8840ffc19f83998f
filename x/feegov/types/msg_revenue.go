package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgSetRevenueShare{}
	_ sdk.Msg = &MsgDistributeRevenue{}
)

// MsgSetRevenueShare defines a message setting a recipient's revenue share.
// Only the module authority may submit it directly.
type MsgSetRevenueShare struct {
	Authority     string `json:"authority"`
	Recipient     string `json:"recipient"`
	PercentageBps uint64 `json:"percentage_bps"`
	Active        bool   `json:"active"`
}

// NewMsgSetRevenueShare creates a new MsgSetRevenueShare instance
func NewMsgSetRevenueShare(authority, recipient string, percentageBps uint64, active bool) *MsgSetRevenueShare {
	return &MsgSetRevenueShare{
		Authority:     authority,
		Recipient:     recipient,
		PercentageBps: percentageBps,
		Active:        active,
	}
}

func (msg *MsgSetRevenueShare) Reset()         { *msg = MsgSetRevenueShare{} }
func (msg *MsgSetRevenueShare) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgSetRevenueShare) ProtoMessage()      {}

// Route implements the legacy routing interface
func (msg *MsgSetRevenueShare) Route() string { return RouterKey }

// Type implements the legacy routing interface
func (msg *MsgSetRevenueShare) Type() string { return "set_revenue_share" }

// GetSigners returns the expected signers for MsgSetRevenueShare
func (msg *MsgSetRevenueShare) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// ValidateBasic performs stateless validation of MsgSetRevenueShare
func (msg *MsgSetRevenueShare) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrZeroAddress.Wrapf("invalid authority address: %s", err)
	}

	share := RevenueShare{
		Recipient:     msg.Recipient,
		PercentageBps: msg.PercentageBps,
		Active:        msg.Active,
		TotalClaimed:  math.ZeroInt(),
	}
	return share.Validate()
}

// MsgDistributeRevenue defines a message pulling revenue from the payer and
// splitting it across active revenue shares.
type MsgDistributeRevenue struct {
	Payer  string   `json:"payer"`
	Denom  string   `json:"denom"`
	Amount math.Int `json:"amount"`
}

// NewMsgDistributeRevenue creates a new MsgDistributeRevenue instance
func NewMsgDistributeRevenue(payer, denom string, amount math.Int) *MsgDistributeRevenue {
	return &MsgDistributeRevenue{
		Payer:  payer,
		Denom:  denom,
		Amount: amount,
	}
}

func (msg *MsgDistributeRevenue) Reset()         { *msg = MsgDistributeRevenue{} }
func (msg *MsgDistributeRevenue) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgDistributeRevenue) ProtoMessage()      {}

// Route implements the legacy routing interface
func (msg *MsgDistributeRevenue) Route() string { return RouterKey }

// Type implements the legacy routing interface
func (msg *MsgDistributeRevenue) Type() string { return "distribute_revenue" }

// GetSigners returns the expected signers for MsgDistributeRevenue
func (msg *MsgDistributeRevenue) GetSigners() []sdk.AccAddress {
	payer, err := sdk.AccAddressFromBech32(msg.Payer)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{payer}
}

// ValidateBasic performs stateless validation of MsgDistributeRevenue
func (msg *MsgDistributeRevenue) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Payer); err != nil {
		return ErrZeroAddress.Wrapf("invalid payer address: %s", err)
	}

	if err := sdk.ValidateDenom(msg.Denom); err != nil {
		return ErrInvalidInput.Wrapf("invalid denom: %s", err)
	}

	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return ErrZeroAmount
	}

	return nil
}
