package cli

import (
	"fmt"
	"strconv"
	"strings"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-chain/meridian/x/router/types"
)

const (
	flagTo       = "to"
	flagDeadline = "deadline"
)

// GetTxCmd returns the transaction commands for the router module
func GetTxCmd() *cobra.Command {
	routerTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Router transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	routerTxCmd.AddCommand(
		CmdSwapExactTokensForTokens(),
		CmdAddLiquidity(),
		CmdRemoveLiquidity(),
		CmdExecuteCrossChainRoute(),
		CmdExecuteMultiPathRoute(),
		CmdRefundRoute(),
	)

	return routerTxCmd
}

// CmdSwapExactTokensForTokens returns a CLI command handler for a multi-hop
// local swap
func CmdSwapExactTokensForTokens() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap-path [amount-in] [min-amount-out] [path]",
		Short: "Swap an exact input along a comma-separated denom path",
		Long: `Swap an exact input amount through a path of local pools, each hop's
output feeding the next hop's input. Only the final output is checked against
min-amount-out.

Example:
  $ meridiand tx router swap-path 1000000 990000 umrd,uusdt,uatom --from mykey
  $ meridiand tx router swap-path 1000000 0 umrd,uusdt --to cosmos1... --deadline 1700000000 --from mykey`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			amountIn, ok := math.NewIntFromString(args[0])
			if !ok {
				return fmt.Errorf("invalid amount-in: %s (must be integer)", args[0])
			}

			minAmountOut, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid min-amount-out: %s (must be integer)", args[1])
			}

			path := strings.Split(args[2], ",")

			to, err := cmd.Flags().GetString(flagTo)
			if err != nil {
				return err
			}
			deadline, err := cmd.Flags().GetInt64(flagDeadline)
			if err != nil {
				return err
			}

			msg := &types.MsgSwapExactTokensForTokens{
				Trader:       clientCtx.GetFromAddress().String(),
				AmountIn:     amountIn,
				AmountOutMin: minAmountOut,
				Path:         path,
				To:           to,
				Deadline:     deadline,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(flagTo, "", "Optional recipient for the final swap output")
	cmd.Flags().Int64(flagDeadline, 0, "Unix time after which the swap fails (0 for none)")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdAddLiquidity returns a CLI command handler for a deadline-bound deposit
func CmdAddLiquidity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-liquidity [pool-id] [amount-a] [amount-b]",
		Short: "Deposit into a pool, failing after the deadline",
		Long: `Provide liquidity to a pool through the router so the deposit fails
once the deadline passes instead of landing at a stale price.

Example:
  $ meridiand tx router add-liquidity 1 1000000 1000000 --deadline 1700000000 --from mykey`,
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

			deadline, err := cmd.Flags().GetInt64(flagDeadline)
			if err != nil {
				return err
			}

			msg := &types.MsgAddLiquidity{
				Provider: clientCtx.GetFromAddress().String(),
				PoolId:   poolID,
				AmountA:  amountA,
				AmountB:  amountB,
				Deadline: deadline,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().Int64(flagDeadline, 0, "Unix time after which the deposit fails (0 for none)")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdRemoveLiquidity returns a CLI command handler for a deadline-bound
// withdrawal
func CmdRemoveLiquidity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove-liquidity [pool-id] [shares]",
		Short: "Burn pool shares, failing after the deadline",
		Args:  cobra.ExactArgs(2),
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

			deadline, err := cmd.Flags().GetInt64(flagDeadline)
			if err != nil {
				return err
			}

			msg := &types.MsgRemoveLiquidity{
				Provider: clientCtx.GetFromAddress().String(),
				PoolId:   poolID,
				Shares:   shares,
				Deadline: deadline,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().Int64(flagDeadline, 0, "Unix time after which the withdrawal fails (0 for none)")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdExecuteCrossChainRoute returns a CLI command handler for a single-hop
// cross-chain swap
func CmdExecuteCrossChainRoute() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cross-chain-swap [token-in] [amount-in] [token-out] [min-amount-out] [recipient] [src-chain] [dst-chain] [fee]",
		Short: "Swap locally and dispatch the proceeds to another chain",
		Long: `Execute a cross-chain swap: the input is swapped through a local pool
when one serves the pair, the proceeds are escrowed, and a swap instruction is
dispatched to the destination chain. The fee must cover the relay's estimate
or the call fails before any token moves.

Example:
  $ meridiand tx router cross-chain-swap umrd 1000000 uosmo 990000 osmo1... meridian-1 osmosis-1 5000umrd --from mykey`,
		Args: cobra.ExactArgs(8),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			amountIn, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid amount-in: %s (must be integer)", args[1])
			}

			minAmountOut, ok := math.NewIntFromString(args[3])
			if !ok {
				return fmt.Errorf("invalid min-amount-out: %s (must be integer)", args[3])
			}

			fee, err := sdk.ParseCoinNormalized(args[7])
			if err != nil {
				return fmt.Errorf("invalid fee: %w", err)
			}

			deadline, err := cmd.Flags().GetInt64(flagDeadline)
			if err != nil {
				return err
			}

			msg := &types.MsgExecuteCrossChainRoute{
				Sender:       clientCtx.GetFromAddress().String(),
				TokenIn:      args[0],
				TokenOut:     args[2],
				AmountIn:     amountIn,
				AmountOutMin: minAmountOut,
				Recipient:    args[4],
				SrcChain:     args[5],
				DstChain:     args[6],
				Fee:          fee,
				Deadline:     deadline,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().Int64(flagDeadline, 0, "Unix time after which the route fails (0 for none)")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdExecuteMultiPathRoute returns a CLI command handler for a multi-chain
// route
func CmdExecuteMultiPathRoute() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "multi-path-swap [token-in] [amount-in] [hops] [recipient] [fee]",
		Short: "Dispatch a swap across an ordered path of chains",
		Long: `Execute a route spanning several chains. Hops are given as a
comma-separated list of chain-id:token-out:min-amount-out triples, dispatched
in order with each hop's output feeding the next.

Example:
  $ meridiand tx router multi-path-swap umrd 1000000 osmosis-1:uosmo:0,injective-1:inj:990000 inj1... 10000umrd --from mykey`,
		Args: cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			amountIn, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid amount-in: %s (must be integer)", args[1])
			}

			hops, err := parseHops(args[2])
			if err != nil {
				return err
			}

			fee, err := sdk.ParseCoinNormalized(args[4])
			if err != nil {
				return fmt.Errorf("invalid fee: %w", err)
			}

			deadline, err := cmd.Flags().GetInt64(flagDeadline)
			if err != nil {
				return err
			}

			msg := &types.MsgExecuteMultiPathRoute{
				Sender:    clientCtx.GetFromAddress().String(),
				TokenIn:   args[0],
				AmountIn:  amountIn,
				Hops:      hops,
				Recipient: args[3],
				Fee:       fee,
				Deadline:  deadline,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().Int64(flagDeadline, 0, "Unix time after which the route fails (0 for none)")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdRefundRoute returns a CLI command handler for refunding a failed route
func CmdRefundRoute() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refund-route [route-id]",
		Short: "Refund the escrow of a failed route",
		Long: `Claim back the escrowed funds of a route whose delivery failed. Only
the route's original sender may claim, and only once.

Example:
  $ meridiand tx router refund-route 7 --from mykey`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			routeID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid route ID: %w", err)
			}

			msg := &types.MsgRefundRoute{
				Sender:  clientCtx.GetFromAddress().String(),
				RouteId: routeID,
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

func parseHops(arg string) ([]types.ChainHop, error) {
	parts := strings.Split(arg, ",")
	hops := make([]types.ChainHop, 0, len(parts))
	for i, part := range parts {
		fields := strings.Split(part, ":")
		if len(fields) != 3 {
			return nil, fmt.Errorf("hop %d: expected chain-id:token-out:min-amount-out, got %q", i, part)
		}
		minOut, ok := math.NewIntFromString(fields[2])
		if !ok {
			return nil, fmt.Errorf("hop %d: invalid min-amount-out %q", i, fields[2])
		}
		hops = append(hops, types.ChainHop{
			ChainId:      fields[0],
			TokenOut:     fields[1],
			AmountOutMin: minOut,
		})
	}
	return hops, nil
}
