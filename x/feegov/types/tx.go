package types

import (
	"context"
)

// MsgServer defines the feegov message server interface
type MsgServer interface {
	AddFeeTier(context.Context, *MsgAddFeeTier) (*MsgAddFeeTierResponse, error)
	SetActivityScore(context.Context, *MsgSetActivityScore) (*MsgSetActivityScoreResponse, error)
	SetRevenueShare(context.Context, *MsgSetRevenueShare) (*MsgSetRevenueShareResponse, error)
	DistributeRevenue(context.Context, *MsgDistributeRevenue) (*MsgDistributeRevenueResponse, error)
	SubmitProposal(context.Context, *MsgSubmitProposal) (*MsgSubmitProposalResponse, error)
	Vote(context.Context, *MsgVote) (*MsgVoteResponse, error)
	ExecuteProposal(context.Context, *MsgExecuteProposal) (*MsgExecuteProposalResponse, error)
	CancelProposal(context.Context, *MsgCancelProposal) (*MsgCancelProposalResponse, error)
}

// MsgAddFeeTierResponse defines the response for AddFeeTier
type MsgAddFeeTierResponse struct{}

// MsgSetActivityScoreResponse defines the response for SetActivityScore
type MsgSetActivityScoreResponse struct{}

// MsgSetRevenueShareResponse defines the response for SetRevenueShare
type MsgSetRevenueShareResponse struct{}

// MsgDistributeRevenueResponse defines the response for DistributeRevenue
type MsgDistributeRevenueResponse struct{}

// MsgSubmitProposalResponse defines the response for SubmitProposal
type MsgSubmitProposalResponse struct {
	ProposalId uint64 `json:"proposal_id"`
}

// MsgVoteResponse defines the response for Vote
type MsgVoteResponse struct{}

// MsgExecuteProposalResponse defines the response for ExecuteProposal
type MsgExecuteProposalResponse struct{}

// MsgCancelProposalResponse defines the response for CancelProposal
type MsgCancelProposalResponse struct{}
