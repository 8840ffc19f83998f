package types

// Feegov module event types
const (
	EventTypeFeeUpdated         = "fee_updated"
	EventTypeFeeTierAdded       = "fee_tier_added"
	EventTypeRevenueShareSet    = "revenue_share_set"
	EventTypeRevenueDistributed = "revenue_distributed"
	EventTypeProposalCreated    = "proposal_created"
	EventTypeProposalVoted      = "proposal_voted"
	EventTypeProposalExecuted   = "proposal_executed"
	EventTypeProposalCanceled   = "proposal_canceled"
)

// Feegov module event attribute keys
const (
	AttributeKeyFeePpm     = "fee_ppm"
	AttributeKeyRecipient  = "recipient"
	AttributeKeyBps        = "percentage_bps"
	AttributeKeyDenom      = "denom"
	AttributeKeyAmount     = "amount"
	AttributeKeyProposalID = "proposal_id"
	AttributeKeyProposer   = "proposer"
	AttributeKeyVoter      = "voter"
	AttributeKeyOption     = "option"
	AttributeKeyType       = "proposal_type"
	AttributeKeyScoreBps   = "score_bps"
)
