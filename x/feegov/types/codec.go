package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterCodec registers the module's concrete message types on the amino codec
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgAddFeeTier{}, "feegov/MsgAddFeeTier", nil)
	cdc.RegisterConcrete(&MsgSetActivityScore{}, "feegov/MsgSetActivityScore", nil)
	cdc.RegisterConcrete(&MsgSetRevenueShare{}, "feegov/MsgSetRevenueShare", nil)
	cdc.RegisterConcrete(&MsgDistributeRevenue{}, "feegov/MsgDistributeRevenue", nil)
	cdc.RegisterConcrete(&MsgSubmitProposal{}, "feegov/MsgSubmitProposal", nil)
	cdc.RegisterConcrete(&MsgVote{}, "feegov/MsgVote", nil)
	cdc.RegisterConcrete(&MsgExecuteProposal{}, "feegov/MsgExecuteProposal", nil)
	cdc.RegisterConcrete(&MsgCancelProposal{}, "feegov/MsgCancelProposal", nil)
}

// RegisterInterfaces registers the module's messages with the interface registry
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgAddFeeTier{},
		&MsgSetActivityScore{},
		&MsgSetRevenueShare{},
		&MsgDistributeRevenue{},
		&MsgSubmitProposal{},
		&MsgVote{},
		&MsgExecuteProposal{},
		&MsgCancelProposal{},
	)
}

var ModuleCdc = codec.NewLegacyAmino()

func init() {
	RegisterCodec(ModuleCdc)
	ModuleCdc.Seal()
}
