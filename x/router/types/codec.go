package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterCodec registers the module's concrete message types on the amino codec
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgSwapExactTokensForTokens{}, "router/MsgSwapExactTokensForTokens", nil)
	cdc.RegisterConcrete(&MsgAddLiquidity{}, "router/MsgAddLiquidity", nil)
	cdc.RegisterConcrete(&MsgRemoveLiquidity{}, "router/MsgRemoveLiquidity", nil)
	cdc.RegisterConcrete(&MsgExecuteCrossChainRoute{}, "router/MsgExecuteCrossChainRoute", nil)
	cdc.RegisterConcrete(&MsgExecuteMultiPathRoute{}, "router/MsgExecuteMultiPathRoute", nil)
	cdc.RegisterConcrete(&MsgRefundRoute{}, "router/MsgRefundRoute", nil)
}

// RegisterInterfaces registers the module's messages with the interface registry
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgSwapExactTokensForTokens{},
		&MsgAddLiquidity{},
		&MsgRemoveLiquidity{},
		&MsgExecuteCrossChainRoute{},
		&MsgExecuteMultiPathRoute{},
		&MsgRefundRoute{},
	)
}

var ModuleCdc = codec.NewLegacyAmino()

func init() {
	RegisterCodec(ModuleCdc)
	ModuleCdc.Seal()
}
