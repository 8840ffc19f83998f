package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgAddFeeTier{}

// MsgAddFeeTier defines a message adding a fee tier to the catalog. Only the
// module authority may submit it directly; everyone else goes through a
// proposal.
type MsgAddFeeTier struct {
	Authority   string `json:"authority"`
	FeePpm      uint64 `json:"fee_ppm"`
	TickSpacing uint64 `json:"tick_spacing"`
	Description string `json:"description"`
}

// NewMsgAddFeeTier creates a new MsgAddFeeTier instance
func NewMsgAddFeeTier(authority string, feePpm, tickSpacing uint64, description string) *MsgAddFeeTier {
	return &MsgAddFeeTier{
		Authority:   authority,
		FeePpm:      feePpm,
		TickSpacing: tickSpacing,
		Description: description,
	}
}

func (msg *MsgAddFeeTier) Reset()         { *msg = MsgAddFeeTier{} }
func (msg *MsgAddFeeTier) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgAddFeeTier) ProtoMessage()      {}

// Route implements the legacy routing interface
func (msg *MsgAddFeeTier) Route() string { return RouterKey }

// Type implements the legacy routing interface
func (msg *MsgAddFeeTier) Type() string { return "add_fee_tier" }

// GetSigners returns the expected signers for MsgAddFeeTier
func (msg *MsgAddFeeTier) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// ValidateBasic performs stateless validation of MsgAddFeeTier
func (msg *MsgAddFeeTier) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrZeroAddress.Wrapf("invalid authority address: %s", err)
	}

	tier := FeeTier{
		FeePpm:      msg.FeePpm,
		TickSpacing: msg.TickSpacing,
		Active:      true,
		Description: msg.Description,
	}
	return tier.Validate()
}
