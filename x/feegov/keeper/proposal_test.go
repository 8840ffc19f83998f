package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/meridian-chain/meridian/testutil/keeper"
	"github.com/meridian-chain/meridian/x/feegov/types"
)

func tierPayload(feePpm uint64) types.ProposalPayload {
	return types.ProposalPayload{
		AddFeeTier: &types.FeeTier{FeePpm: feePpm, TickSpacing: 400, Active: true, Description: "governed tier"},
	}
}

// governanceFixture seeds three voters: alice 60, bob 40, carol 5. Total
// power 105, so the 20% quorum is 21.
func governanceFixture(t *testing.T) (*keepertest.TestKeepers, sdk.AccAddress, sdk.AccAddress, sdk.AccAddress) {
	t.Helper()
	tk := keepertest.NewTestKeepers(t)

	alice := tk.FundedAccount(1, sdk.NewCoins())
	bob := tk.FundedAccount(2, sdk.NewCoins())
	carol := tk.FundedAccount(3, sdk.NewCoins())

	require.NoError(t, tk.FeeGov.SetVotingPower(tk.Ctx, alice, math.NewInt(60)))
	require.NoError(t, tk.FeeGov.SetVotingPower(tk.Ctx, bob, math.NewInt(40)))
	require.NoError(t, tk.FeeGov.SetVotingPower(tk.Ctx, carol, math.NewInt(5)))

	return tk, alice, bob, carol
}

func advance(tk *keepertest.TestKeepers, seconds int64) {
	tk.Ctx = tk.Ctx.WithBlockTime(tk.Ctx.BlockTime().Add(time.Duration(seconds) * time.Second))
}

func TestSubmitProposalMessage(t *testing.T) {
	_, alice, _, _ := governanceFixture(t)

	msg := types.NewMsgSubmitProposal(alice.String(), types.ProposalTypeAddFeeTier, tierPayload(20_000))
	require.NoError(t, msg.ValidateBasic())
	require.Equal(t, types.ProposalTypeAddFeeTier, msg.ProposalType)
	require.Equal(t, "submit_proposal", msg.Type())
	require.Equal(t, []sdk.AccAddress{alice}, msg.GetSigners())

	bad := types.NewMsgSubmitProposal(alice.String(), "rename_chain", tierPayload(20_000))
	require.ErrorIs(t, bad.ValidateBasic(), types.ErrInvalidProposal)
}

func TestSubmitProposalRequiresPower(t *testing.T) {
	tk, alice, _, _ := governanceFixture(t)

	nobody := tk.FundedAccount(9, sdk.NewCoins())
	_, err := tk.FeeGov.SubmitProposal(tk.Ctx, nobody, types.ProposalTypeAddFeeTier, tierPayload(20_000))
	require.ErrorIs(t, err, types.ErrInsufficientVotingPower)

	id, err := tk.FeeGov.SubmitProposal(tk.Ctx, alice, types.ProposalTypeAddFeeTier, tierPayload(20_000))
	require.NoError(t, err)

	proposal, err := tk.FeeGov.GetProposal(tk.Ctx, id)
	require.NoError(t, err)

	status, err := tk.FeeGov.ProposalStatus(tk.Ctx, proposal)
	require.NoError(t, err)
	require.Equal(t, types.StatusActive, status)

	params := types.DefaultParams()
	require.Equal(t, proposal.VotingStart+params.VotingPeriod, proposal.VotingEnd)
}

func TestVoteOncePerAddress(t *testing.T) {
	tk, alice, bob, _ := governanceFixture(t)

	id, err := tk.FeeGov.SubmitProposal(tk.Ctx, alice, types.ProposalTypeAddFeeTier, tierPayload(20_000))
	require.NoError(t, err)

	require.NoError(t, tk.FeeGov.Vote(tk.Ctx, alice, id, types.VoteOptionYes))
	require.ErrorIs(t, tk.FeeGov.Vote(tk.Ctx, alice, id, types.VoteOptionNo), types.ErrAlreadyVoted)
	require.NoError(t, tk.FeeGov.Vote(tk.Ctx, bob, id, types.VoteOptionNo))

	proposal, err := tk.FeeGov.GetProposal(tk.Ctx, id)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(60), proposal.ForVotes)
	require.Equal(t, math.NewInt(40), proposal.AgainstVotes)

	// Voting closes with the window.
	advance(tk, types.DefaultParams().VotingPeriod+1)
	carol := tk.FundedAccount(3, sdk.NewCoins())
	require.ErrorIs(t, tk.FeeGov.Vote(tk.Ctx, carol, id, types.VoteOptionYes), types.ErrProposalNotActive)
}

func TestProposalDefeatedOnQuorumMiss(t *testing.T) {
	tk, alice, _, carol := governanceFixture(t)

	id, err := tk.FeeGov.SubmitProposal(tk.Ctx, alice, types.ProposalTypeAddFeeTier, tierPayload(20_000))
	require.NoError(t, err)

	// Only carol turns out: 5 of 105 power, under the 20% quorum.
	require.NoError(t, tk.FeeGov.Vote(tk.Ctx, carol, id, types.VoteOptionYes))
	advance(tk, types.DefaultParams().VotingPeriod+1)

	proposal, err := tk.FeeGov.GetProposal(tk.Ctx, id)
	require.NoError(t, err)
	status, err := tk.FeeGov.ProposalStatus(tk.Ctx, proposal)
	require.NoError(t, err)
	require.Equal(t, types.StatusDefeated, status)

	require.ErrorIs(t, tk.FeeGov.ExecuteProposal(tk.Ctx, id), types.ErrProposalNotSucceeded)
}

func TestProposalExecution(t *testing.T) {
	tk, alice, _, _ := governanceFixture(t)
	params := types.DefaultParams()

	id, err := tk.FeeGov.SubmitProposal(tk.Ctx, alice, types.ProposalTypeAddFeeTier, tierPayload(20_000))
	require.NoError(t, err)
	require.NoError(t, tk.FeeGov.Vote(tk.Ctx, alice, id, types.VoteOptionYes))

	// Succeeded, but inside the timelock.
	advance(tk, params.VotingPeriod+1)
	require.ErrorIs(t, tk.FeeGov.ExecuteProposal(tk.Ctx, id), types.ErrExecutionDelayNotMet)

	advance(tk, params.ExecutionDelay)
	require.NoError(t, tk.FeeGov.ExecuteProposal(tk.Ctx, id))

	_, found, err := tk.FeeGov.GetFeeTier(tk.Ctx, 20_000)
	require.NoError(t, err)
	require.True(t, found)

	require.ErrorIs(t, tk.FeeGov.ExecuteProposal(tk.Ctx, id), types.ErrProposalAlreadyExecuted)
}

func TestProposalExpiresPastGrace(t *testing.T) {
	tk, alice, _, _ := governanceFixture(t)
	params := types.DefaultParams()

	id, err := tk.FeeGov.SubmitProposal(tk.Ctx, alice, types.ProposalTypeAddFeeTier, tierPayload(20_000))
	require.NoError(t, err)
	require.NoError(t, tk.FeeGov.Vote(tk.Ctx, alice, id, types.VoteOptionYes))

	advance(tk, params.VotingPeriod+params.ExecutionDelay+params.ExecutionGrace+1)
	require.ErrorIs(t, tk.FeeGov.ExecuteProposal(tk.Ctx, id), types.ErrProposalExpired)
}

func TestCancelProposal(t *testing.T) {
	tk, alice, bob, _ := governanceFixture(t)

	id, err := tk.FeeGov.SubmitProposal(tk.Ctx, alice, types.ProposalTypeAddFeeTier, tierPayload(20_000))
	require.NoError(t, err)

	// Neither another voter nor a stranger may cancel.
	require.ErrorIs(t, tk.FeeGov.CancelProposal(tk.Ctx, bob, id), types.ErrUnauthorized)

	require.NoError(t, tk.FeeGov.CancelProposal(tk.Ctx, alice, id))

	require.ErrorIs(t, tk.FeeGov.Vote(tk.Ctx, bob, id, types.VoteOptionYes), types.ErrProposalNotActive)
	require.ErrorIs(t, tk.FeeGov.ExecuteProposal(tk.Ctx, id), types.ErrProposalCanceled)
}

func TestCancelProposalByAuthority(t *testing.T) {
	tk, alice, _, _ := governanceFixture(t)

	id, err := tk.FeeGov.SubmitProposal(tk.Ctx, alice, types.ProposalTypeAddFeeTier, tierPayload(20_000))
	require.NoError(t, err)

	authority := sdk.MustAccAddressFromBech32(tk.Authority)
	require.NoError(t, tk.FeeGov.CancelProposal(tk.Ctx, authority, id))

	proposal, err := tk.FeeGov.GetProposal(tk.Ctx, id)
	require.NoError(t, err)
	status, err := tk.FeeGov.ProposalStatus(tk.Ctx, proposal)
	require.NoError(t, err)
	require.Equal(t, types.StatusCanceled, status)
}

func TestSetRevenueShareProposal(t *testing.T) {
	tk, alice, _, _ := governanceFixture(t)
	params := types.DefaultParams()

	treasury := tk.FundedAccount(7, sdk.NewCoins())
	payload := types.ProposalPayload{SetRevenueShare: &types.RevenueShare{
		Recipient:     treasury.String(),
		PercentageBps: 2500,
		Active:        true,
		TotalClaimed:  math.ZeroInt(),
	}}

	id, err := tk.FeeGov.SubmitProposal(tk.Ctx, alice, types.ProposalTypeSetRevenueShare, payload)
	require.NoError(t, err)
	require.NoError(t, tk.FeeGov.Vote(tk.Ctx, alice, id, types.VoteOptionYes))

	advance(tk, params.VotingPeriod+params.ExecutionDelay+1)
	require.NoError(t, tk.FeeGov.ExecuteProposal(tk.Ctx, id))

	share, found, err := tk.FeeGov.GetRevenueShare(tk.Ctx, treasury)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, uint64(2500), share.PercentageBps)
}
