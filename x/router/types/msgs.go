package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgSwapExactTokensForTokens{}
	_ sdk.Msg = &MsgAddLiquidity{}
	_ sdk.Msg = &MsgRemoveLiquidity{}
	_ sdk.Msg = &MsgExecuteCrossChainRoute{}
	_ sdk.Msg = &MsgExecuteMultiPathRoute{}
	_ sdk.Msg = &MsgRefundRoute{}
)

// MsgSwapExactTokensForTokens defines a multi-hop local swap along a denom
// path
type MsgSwapExactTokensForTokens struct {
	Trader       string   `json:"trader"`
	AmountIn     math.Int `json:"amount_in"`
	AmountOutMin math.Int `json:"amount_out_min"`
	Path         []string `json:"path"`
	To           string   `json:"to"`
	Deadline     int64    `json:"deadline"`
}

func (msg *MsgSwapExactTokensForTokens) Reset()         { *msg = MsgSwapExactTokensForTokens{} }
func (msg *MsgSwapExactTokensForTokens) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgSwapExactTokensForTokens) ProtoMessage()      {}

// Route implements the legacy routing interface
func (msg *MsgSwapExactTokensForTokens) Route() string { return RouterKey }

// Type implements the legacy routing interface
func (msg *MsgSwapExactTokensForTokens) Type() string { return "swap_exact_tokens_for_tokens" }

// GetSigners returns the expected signers for MsgSwapExactTokensForTokens
func (msg *MsgSwapExactTokensForTokens) GetSigners() []sdk.AccAddress {
	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{trader}
}

// ValidateBasic performs stateless validation of MsgSwapExactTokensForTokens
func (msg *MsgSwapExactTokensForTokens) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Trader); err != nil {
		return ErrZeroAddress.Wrapf("invalid trader address: %s", err)
	}
	if msg.To != "" {
		if _, err := sdk.AccAddressFromBech32(msg.To); err != nil {
			return ErrZeroAddress.Wrapf("invalid recipient address: %s", err)
		}
	}
	if msg.AmountIn.IsNil() || !msg.AmountIn.IsPositive() {
		return ErrInvalidInput.Wrap("amount in must be positive")
	}
	if msg.AmountOutMin.IsNil() || msg.AmountOutMin.IsNegative() {
		return ErrInvalidInput.Wrap("amount out min must be non-negative")
	}
	return ValidatePath(msg.Path)
}

// ValidatePath checks a swap path has at least two distinct consecutive
// denoms
func ValidatePath(path []string) error {
	if len(path) < 2 {
		return ErrInvalidPath.Wrap("path needs at least two denoms")
	}
	for i, denom := range path {
		if err := sdk.ValidateDenom(denom); err != nil {
			return ErrInvalidPath.Wrapf("denom %d: %v", i, err)
		}
		if i > 0 && denom == path[i-1] {
			return ErrInvalidPath.Wrapf("consecutive identical denoms at %d", i)
		}
	}
	return nil
}

// MsgAddLiquidity defines a deadline-bound liquidity deposit. The deposit
// itself runs through the dex module; the router only enforces the deadline.
type MsgAddLiquidity struct {
	Provider string   `json:"provider"`
	PoolId   uint64   `json:"pool_id"`
	AmountA  math.Int `json:"amount_a"`
	AmountB  math.Int `json:"amount_b"`
	Deadline int64    `json:"deadline"`
}

func (msg *MsgAddLiquidity) Reset()         { *msg = MsgAddLiquidity{} }
func (msg *MsgAddLiquidity) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgAddLiquidity) ProtoMessage()      {}

// Route implements the legacy routing interface
func (msg *MsgAddLiquidity) Route() string { return RouterKey }

// Type implements the legacy routing interface
func (msg *MsgAddLiquidity) Type() string { return "add_liquidity" }

// GetSigners returns the expected signers for MsgAddLiquidity
func (msg *MsgAddLiquidity) GetSigners() []sdk.AccAddress {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{provider}
}

// ValidateBasic performs stateless validation of MsgAddLiquidity
func (msg *MsgAddLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return ErrZeroAddress.Wrapf("invalid provider address: %s", err)
	}
	if msg.PoolId == 0 {
		return ErrInvalidInput.Wrap("pool id must be positive")
	}
	if msg.AmountA.IsNil() || !msg.AmountA.IsPositive() {
		return ErrInvalidInput.Wrap("amount A must be positive")
	}
	if msg.AmountB.IsNil() || !msg.AmountB.IsPositive() {
		return ErrInvalidInput.Wrap("amount B must be positive")
	}
	return nil
}

// MsgRemoveLiquidity defines a deadline-bound share burn. The withdrawal
// itself runs through the dex module; the router only enforces the deadline.
type MsgRemoveLiquidity struct {
	Provider string   `json:"provider"`
	PoolId   uint64   `json:"pool_id"`
	Shares   math.Int `json:"shares"`
	Deadline int64    `json:"deadline"`
}

func (msg *MsgRemoveLiquidity) Reset()         { *msg = MsgRemoveLiquidity{} }
func (msg *MsgRemoveLiquidity) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgRemoveLiquidity) ProtoMessage()      {}

// Route implements the legacy routing interface
func (msg *MsgRemoveLiquidity) Route() string { return RouterKey }

// Type implements the legacy routing interface
func (msg *MsgRemoveLiquidity) Type() string { return "remove_liquidity" }

// GetSigners returns the expected signers for MsgRemoveLiquidity
func (msg *MsgRemoveLiquidity) GetSigners() []sdk.AccAddress {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{provider}
}

// ValidateBasic performs stateless validation of MsgRemoveLiquidity
func (msg *MsgRemoveLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return ErrZeroAddress.Wrapf("invalid provider address: %s", err)
	}
	if msg.PoolId == 0 {
		return ErrInvalidInput.Wrap("pool id must be positive")
	}
	if msg.Shares.IsNil() || !msg.Shares.IsPositive() {
		return ErrInvalidInput.Wrap("shares must be positive")
	}
	return nil
}

// MsgExecuteCrossChainRoute defines a single-hop cross-chain swap
type MsgExecuteCrossChainRoute struct {
	Sender       string   `json:"sender"`
	TokenIn      string   `json:"token_in"`
	TokenOut     string   `json:"token_out"`
	AmountIn     math.Int `json:"amount_in"`
	AmountOutMin math.Int `json:"amount_out_min"`
	Recipient    string   `json:"recipient"`
	SrcChain     string   `json:"src_chain"`
	DstChain     string   `json:"dst_chain"`
	Fee          sdk.Coin `json:"fee"`
	Deadline     int64    `json:"deadline"`
}

func (msg *MsgExecuteCrossChainRoute) Reset()         { *msg = MsgExecuteCrossChainRoute{} }
func (msg *MsgExecuteCrossChainRoute) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgExecuteCrossChainRoute) ProtoMessage()      {}

// Route implements the legacy routing interface
func (msg *MsgExecuteCrossChainRoute) Route() string { return RouterKey }

// Type implements the legacy routing interface
func (msg *MsgExecuteCrossChainRoute) Type() string { return "execute_cross_chain_route" }

// GetSigners returns the expected signers for MsgExecuteCrossChainRoute
func (msg *MsgExecuteCrossChainRoute) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// ValidateBasic performs stateless validation of MsgExecuteCrossChainRoute
func (msg *MsgExecuteCrossChainRoute) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return ErrZeroAddress.Wrapf("invalid sender address: %s", err)
	}
	if msg.Recipient == "" {
		return ErrZeroAddress.Wrap("recipient")
	}
	if err := sdk.ValidateDenom(msg.TokenIn); err != nil {
		return ErrInvalidInput.Wrapf("token in: %v", err)
	}
	if msg.TokenOut == "" {
		return ErrInvalidInput.Wrap("token out cannot be empty")
	}
	if msg.AmountIn.IsNil() || !msg.AmountIn.IsPositive() {
		return ErrInvalidInput.Wrap("amount in must be positive")
	}
	if msg.AmountOutMin.IsNil() || msg.AmountOutMin.IsNegative() {
		return ErrInvalidInput.Wrap("amount out min must be non-negative")
	}
	if msg.SrcChain == "" || msg.DstChain == "" {
		return ErrInvalidInput.Wrap("chain ids cannot be empty")
	}
	if err := msg.Fee.Validate(); err != nil {
		return ErrInvalidInput.Wrapf("fee: %v", err)
	}
	return nil
}

// ChainHop is one destination leg of a multi-path route
type ChainHop struct {
	ChainId      string   `json:"chain_id"`
	TokenOut     string   `json:"token_out"`
	AmountOutMin math.Int `json:"amount_out_min"`
}

// MsgExecuteMultiPathRoute defines a cross-chain swap spanning an ordered
// chain path
type MsgExecuteMultiPathRoute struct {
	Sender    string     `json:"sender"`
	TokenIn   string     `json:"token_in"`
	AmountIn  math.Int   `json:"amount_in"`
	Hops      []ChainHop `json:"hops"`
	Recipient string     `json:"recipient"`
	Fee       sdk.Coin   `json:"fee"`
	Deadline  int64      `json:"deadline"`
}

func (msg *MsgExecuteMultiPathRoute) Reset()         { *msg = MsgExecuteMultiPathRoute{} }
func (msg *MsgExecuteMultiPathRoute) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgExecuteMultiPathRoute) ProtoMessage()      {}

// Route implements the legacy routing interface
func (msg *MsgExecuteMultiPathRoute) Route() string { return RouterKey }

// Type implements the legacy routing interface
func (msg *MsgExecuteMultiPathRoute) Type() string { return "execute_multi_path_route" }

// GetSigners returns the expected signers for MsgExecuteMultiPathRoute
func (msg *MsgExecuteMultiPathRoute) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// ValidateBasic performs stateless validation of MsgExecuteMultiPathRoute
func (msg *MsgExecuteMultiPathRoute) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return ErrZeroAddress.Wrapf("invalid sender address: %s", err)
	}
	if msg.Recipient == "" {
		return ErrZeroAddress.Wrap("recipient")
	}
	if err := sdk.ValidateDenom(msg.TokenIn); err != nil {
		return ErrInvalidInput.Wrapf("token in: %v", err)
	}
	if msg.AmountIn.IsNil() || !msg.AmountIn.IsPositive() {
		return ErrInvalidInput.Wrap("amount in must be positive")
	}
	if len(msg.Hops) == 0 {
		return ErrInvalidPath.Wrap("multi-path route needs at least one hop")
	}
	for i, hop := range msg.Hops {
		if hop.ChainId == "" {
			return ErrInvalidPath.Wrapf("hop %d missing chain id", i)
		}
		if hop.TokenOut == "" {
			return ErrInvalidPath.Wrapf("hop %d missing token out", i)
		}
		if hop.AmountOutMin.IsNil() || hop.AmountOutMin.IsNegative() {
			return ErrInvalidPath.Wrapf("hop %d amount out min must be non-negative", i)
		}
	}
	if err := msg.Fee.Validate(); err != nil {
		return ErrInvalidInput.Wrapf("fee: %v", err)
	}
	return nil
}

// MsgRefundRoute defines a message refunding a failed route's escrow
type MsgRefundRoute struct {
	Sender  string `json:"sender"`
	RouteId uint64 `json:"route_id"`
}

func (msg *MsgRefundRoute) Reset()         { *msg = MsgRefundRoute{} }
func (msg *MsgRefundRoute) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgRefundRoute) ProtoMessage()      {}

// Route implements the legacy routing interface
func (msg *MsgRefundRoute) Route() string { return RouterKey }

// Type implements the legacy routing interface
func (msg *MsgRefundRoute) Type() string { return "refund_route" }

// GetSigners returns the expected signers for MsgRefundRoute
func (msg *MsgRefundRoute) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// ValidateBasic performs stateless validation of MsgRefundRoute
func (msg *MsgRefundRoute) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return ErrZeroAddress.Wrapf("invalid sender address: %s", err)
	}
	return nil
}
