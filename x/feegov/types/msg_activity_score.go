package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgSetActivityScore{}

// MsgSetActivityScore defines a message setting the market activity score
// that scales dynamic fees. Authority-only.
type MsgSetActivityScore struct {
	Authority string `json:"authority"`
	ScoreBps  uint64 `json:"score_bps"`
}

// NewMsgSetActivityScore creates a new MsgSetActivityScore instance
func NewMsgSetActivityScore(authority string, scoreBps uint64) *MsgSetActivityScore {
	return &MsgSetActivityScore{
		Authority: authority,
		ScoreBps:  scoreBps,
	}
}

func (msg *MsgSetActivityScore) Reset()         { *msg = MsgSetActivityScore{} }
func (msg *MsgSetActivityScore) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgSetActivityScore) ProtoMessage()      {}

// Route implements the legacy routing interface
func (msg *MsgSetActivityScore) Route() string { return RouterKey }

// Type implements the legacy routing interface
func (msg *MsgSetActivityScore) Type() string { return "set_activity_score" }

// GetSigners returns the expected signers for MsgSetActivityScore
func (msg *MsgSetActivityScore) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// ValidateBasic performs stateless validation of MsgSetActivityScore
func (msg *MsgSetActivityScore) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrZeroAddress.Wrapf("invalid authority address: %s", err)
	}
	return ValidateScoreBps(msg.ScoreBps)
}
