package cli

import (
	"fmt"
	"strconv"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/meridian-chain/meridian/x/feegov/types"
)

// GetTxCmd returns the transaction commands for the feegov module
func GetTxCmd() *cobra.Command {
	feegovTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Fee governance transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	feegovTxCmd.AddCommand(
		CmdDistributeRevenue(),
		CmdSubmitProposal(),
		CmdVote(),
		CmdExecuteProposal(),
	)

	return feegovTxCmd
}

// CmdDistributeRevenue returns a CLI command handler for distributing revenue
func CmdDistributeRevenue() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "distribute-revenue [denom] [amount]",
		Short: "Distribute revenue across active revenue shares",
		Long: `Pull tokens from your account and split them across the active revenue
share table by basis points.

Example:
  $ meridiand tx feegov distribute-revenue umrd 1000000 --from treasury`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			amount, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid amount: %s (must be integer)", args[1])
			}

			msg := &types.MsgDistributeRevenue{
				Payer:  clientCtx.GetFromAddress().String(),
				Denom:  args[0],
				Amount: amount,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSubmitProposal returns a CLI command handler for submitting a fee tier
// proposal
func CmdSubmitProposal() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit-fee-tier-proposal [fee-ppm] [tick-spacing] [description]",
		Short: "Propose adding a fee tier to the catalog",
		Long: `Open a governance proposal to add a fee tier. The voting window starts
immediately and runs for the module's voting period.

Example:
  $ meridiand tx feegov submit-fee-tier-proposal 1000 20 "low-fee tier" --from mykey`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			feePpm, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid fee-ppm: %w", err)
			}

			tickSpacing, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid tick-spacing: %w", err)
			}

			msg := &types.MsgSubmitProposal{
				Proposer:     clientCtx.GetFromAddress().String(),
				ProposalType: types.ProposalTypeAddFeeTier,
				Payload: types.ProposalPayload{
					AddFeeTier: &types.FeeTier{
						FeePpm:      feePpm,
						TickSpacing: tickSpacing,
						Active:      true,
						Description: args[2],
					},
				},
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdVote returns a CLI command handler for voting on a proposal
func CmdVote() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vote [proposal-id] [yes|no|abstain]",
		Short: "Cast a vote on an active proposal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			proposalID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid proposal ID: %w", err)
			}

			var option types.VoteOption
			switch args[1] {
			case "yes":
				option = types.VoteOptionYes
			case "no":
				option = types.VoteOptionNo
			case "abstain":
				option = types.VoteOptionAbstain
			default:
				return fmt.Errorf("invalid vote option: %s", args[1])
			}

			msg := &types.MsgVote{
				Voter:      clientCtx.GetFromAddress().String(),
				ProposalId: proposalID,
				Option:     option,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdExecuteProposal returns a CLI command handler for executing a succeeded
// proposal
func CmdExecuteProposal() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "execute-proposal [proposal-id]",
		Short: "Execute a succeeded proposal after its delay",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			proposalID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid proposal ID: %w", err)
			}

			msg := &types.MsgExecuteProposal{
				Executor:   clientCtx.GetFromAddress().String(),
				ProposalId: proposalID,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
