package cli

import (
	"fmt"
	"strconv"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/meridian-chain/meridian/x/dex/types"
)

// GetTxCmd returns the transaction commands for the dex module
func GetTxCmd() *cobra.Command {
	dexTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "DEX transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	dexTxCmd.AddCommand(
		CmdCreatePool(),
		CmdAddLiquidity(),
		CmdRemoveLiquidity(),
		CmdSwap(),
		CmdDonate(),
	)

	return dexTxCmd
}

// CmdCreatePool returns a CLI command handler for creating a liquidity pool
func CmdCreatePool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-pool [token-a] [token-b] [fee-ppm]",
		Short: "Create a new liquidity pool",
		Long: `Create a new, empty liquidity pool for a token pair.

A fee of 0 selects the module's default fee. Fund the pool afterwards with
add-liquidity.

Example:
  $ meridiand tx dex create-pool umrd uusdt 3000 --from mykey
  $ meridiand tx dex create-pool umrd uatom 0 --from mykey`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			tokenA := args[0]
			tokenB := args[1]
			if tokenA == tokenB {
				return fmt.Errorf("tokens must be different")
			}

			feePpm, err := strconv.ParseUint(args[2], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid fee-ppm: %w", err)
			}

			msg := &types.MsgCreatePool{
				Creator: clientCtx.GetFromAddress().String(),
				TokenA:  tokenA,
				TokenB:  tokenB,
				FeePpm:  feePpm,
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

// CmdAddLiquidity returns a CLI command handler for adding liquidity to a pool
func CmdAddLiquidity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-liquidity [pool-id] [amount-a] [amount-b]",
		Short: "Add liquidity to an existing pool",
		Long: `Add liquidity to an existing pool by depositing both tokens.

The deposit is trimmed to the current pool ratio; excess on either side stays
with the provider. The first deposit into an empty pool sets the price.

Example:
  $ meridiand tx dex add-liquidity 1 1000000 2000000 --from mykey`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}

			amountA, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid amount-a: %s (must be integer)", args[1])
			}

			amountB, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid amount-b: %s (must be integer)", args[2])
			}

			msg := &types.MsgAddLiquidity{
				Provider: clientCtx.GetFromAddress().String(),
				PoolId:   poolID,
				AmountA:  amountA,
				AmountB:  amountB,
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

// CmdRemoveLiquidity returns a CLI command handler for removing liquidity
func CmdRemoveLiquidity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove-liquidity [pool-id] [shares]",
		Short: "Remove liquidity from a pool",
		Long: `Burn liquidity shares for a proportional amount of both pool tokens.

Example:
  $ meridiand tx dex remove-liquidity 1 500000 --from mykey`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}

			shares, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid shares: %s (must be integer)", args[1])
			}

			msg := &types.MsgRemoveLiquidity{
				Provider: clientCtx.GetFromAddress().String(),
				PoolId:   poolID,
				Shares:   shares,
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

// CmdSwap returns a CLI command handler for swapping tokens
func CmdSwap() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap [pool-id] [token-in] [amount-in] [min-amount-out]",
		Short: "Swap an exact amount of tokens through a pool",
		Long: `Swap an exact input amount for the pool's other token.

The transaction fails if the output would be below min-amount-out. Pass an
optional recipient with --recipient to send the output elsewhere.

Example:
  $ meridiand tx dex swap 1 umrd 1000000 990000 --from mykey`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}

			amountIn, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid amount-in: %s (must be integer)", args[2])
			}

			minAmountOut, ok := math.NewIntFromString(args[3])
			if !ok {
				return fmt.Errorf("invalid min-amount-out: %s (must be integer)", args[3])
			}

			recipient, err := cmd.Flags().GetString(flagRecipient)
			if err != nil {
				return err
			}

			msg := &types.MsgSwap{
				Trader:       clientCtx.GetFromAddress().String(),
				PoolId:       poolID,
				TokenIn:      args[1],
				AmountIn:     amountIn,
				MinAmountOut: minAmountOut,
				Recipient:    recipient,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(flagRecipient, "", "Optional recipient for the swap output")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

const flagRecipient = "recipient"

// CmdDonate returns a CLI command handler for donating to a pool's reserves
func CmdDonate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "donate [pool-id] [amount-a] [amount-b]",
		Short: "Donate tokens to a pool's reserves",
		Long: `Transfer tokens into a pool's reserves without minting shares.

The donation accrues to existing share holders. Either amount may be zero.

Example:
  $ meridiand tx dex donate 1 1000000 0 --from mykey`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}

			amountA, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid amount-a: %s (must be integer)", args[1])
			}

			amountB, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid amount-b: %s (must be integer)", args[2])
			}

			msg := &types.MsgDonate{
				Donor:   clientCtx.GetFromAddress().String(),
				PoolId:  poolID,
				AmountA: amountA,
				AmountB: amountB,
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
