package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgSubmitProposal{}
	_ sdk.Msg = &MsgVote{}
	_ sdk.Msg = &MsgExecuteProposal{}
	_ sdk.Msg = &MsgCancelProposal{}
)

// MsgSubmitProposal defines a message opening a governance proposal
type MsgSubmitProposal struct {
	Proposer     string          `json:"proposer"`
	ProposalType string          `json:"proposal_type"`
	Payload      ProposalPayload `json:"payload"`
}

// NewMsgSubmitProposal creates a new MsgSubmitProposal instance
func NewMsgSubmitProposal(proposer, proposalType string, payload ProposalPayload) *MsgSubmitProposal {
	return &MsgSubmitProposal{
		Proposer:     proposer,
		ProposalType: proposalType,
		Payload:      payload,
	}
}

func (msg *MsgSubmitProposal) Reset()         { *msg = MsgSubmitProposal{} }
func (msg *MsgSubmitProposal) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgSubmitProposal) ProtoMessage()      {}

// Route implements the legacy routing interface
func (msg *MsgSubmitProposal) Route() string { return RouterKey }

// Type implements the legacy routing interface
func (msg *MsgSubmitProposal) Type() string { return "submit_proposal" }

// GetSigners returns the expected signers for MsgSubmitProposal
func (msg *MsgSubmitProposal) GetSigners() []sdk.AccAddress {
	proposer, err := sdk.AccAddressFromBech32(msg.Proposer)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{proposer}
}

// ValidateBasic performs stateless validation of MsgSubmitProposal
func (msg *MsgSubmitProposal) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Proposer); err != nil {
		return ErrZeroAddress.Wrapf("invalid proposer address: %s", err)
	}

	// Window fields are filled at submission; validate type and payload with
	// a placeholder window.
	proposal := Proposal{
		Proposer:  msg.Proposer,
		Type:      msg.ProposalType,
		Payload:   msg.Payload,
		VotingEnd: 1,
	}
	return proposal.Validate()
}

// MsgVote defines a message casting a vote on an active proposal
type MsgVote struct {
	Voter      string     `json:"voter"`
	ProposalId uint64     `json:"proposal_id"`
	Option     VoteOption `json:"option"`
}

// NewMsgVote creates a new MsgVote instance
func NewMsgVote(voter string, proposalID uint64, option VoteOption) *MsgVote {
	return &MsgVote{
		Voter:      voter,
		ProposalId: proposalID,
		Option:     option,
	}
}

func (msg *MsgVote) Reset()         { *msg = MsgVote{} }
func (msg *MsgVote) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgVote) ProtoMessage()      {}

// Route implements the legacy routing interface
func (msg *MsgVote) Route() string { return RouterKey }

// Type implements the legacy routing interface
func (msg *MsgVote) Type() string { return "vote" }

// GetSigners returns the expected signers for MsgVote
func (msg *MsgVote) GetSigners() []sdk.AccAddress {
	voter, err := sdk.AccAddressFromBech32(msg.Voter)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{voter}
}

// ValidateBasic performs stateless validation of MsgVote
func (msg *MsgVote) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Voter); err != nil {
		return ErrZeroAddress.Wrapf("invalid voter address: %s", err)
	}
	return msg.Option.Validate()
}

// MsgExecuteProposal defines a message enacting a succeeded proposal
type MsgExecuteProposal struct {
	Executor   string `json:"executor"`
	ProposalId uint64 `json:"proposal_id"`
}

// NewMsgExecuteProposal creates a new MsgExecuteProposal instance
func NewMsgExecuteProposal(executor string, proposalID uint64) *MsgExecuteProposal {
	return &MsgExecuteProposal{
		Executor:   executor,
		ProposalId: proposalID,
	}
}

func (msg *MsgExecuteProposal) Reset()         { *msg = MsgExecuteProposal{} }
func (msg *MsgExecuteProposal) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgExecuteProposal) ProtoMessage()      {}

// Route implements the legacy routing interface
func (msg *MsgExecuteProposal) Route() string { return RouterKey }

// Type implements the legacy routing interface
func (msg *MsgExecuteProposal) Type() string { return "execute_proposal" }

// GetSigners returns the expected signers for MsgExecuteProposal
func (msg *MsgExecuteProposal) GetSigners() []sdk.AccAddress {
	executor, err := sdk.AccAddressFromBech32(msg.Executor)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{executor}
}

// ValidateBasic performs stateless validation of MsgExecuteProposal
func (msg *MsgExecuteProposal) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Executor); err != nil {
		return ErrZeroAddress.Wrapf("invalid executor address: %s", err)
	}
	return nil
}

// MsgCancelProposal defines a message canceling a non-executed proposal
type MsgCancelProposal struct {
	Authority  string `json:"authority"`
	ProposalId uint64 `json:"proposal_id"`
}

// NewMsgCancelProposal creates a new MsgCancelProposal instance
func NewMsgCancelProposal(authority string, proposalID uint64) *MsgCancelProposal {
	return &MsgCancelProposal{
		Authority:  authority,
		ProposalId: proposalID,
	}
}

func (msg *MsgCancelProposal) Reset()         { *msg = MsgCancelProposal{} }
func (msg *MsgCancelProposal) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgCancelProposal) ProtoMessage()      {}

// Route implements the legacy routing interface
func (msg *MsgCancelProposal) Route() string { return RouterKey }

// Type implements the legacy routing interface
func (msg *MsgCancelProposal) Type() string { return "cancel_proposal" }

// GetSigners returns the expected signers for MsgCancelProposal
func (msg *MsgCancelProposal) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// ValidateBasic performs stateless validation of MsgCancelProposal
func (msg *MsgCancelProposal) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrZeroAddress.Wrapf("invalid authority address: %s", err)
	}
	return nil
}
