package router

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	capabilitykeeper "github.com/cosmos/ibc-go/modules/capability/keeper"
	capabilitytypes "github.com/cosmos/ibc-go/modules/capability/types"
	channeltypes "github.com/cosmos/ibc-go/v8/modules/core/04-channel/types"
	porttypes "github.com/cosmos/ibc-go/v8/modules/core/05-port/types"
	host "github.com/cosmos/ibc-go/v8/modules/core/24-host"
	ibcexported "github.com/cosmos/ibc-go/v8/modules/core/exported"

	"github.com/meridian-chain/meridian/x/router/keeper"
	"github.com/meridian-chain/meridian/x/router/types"
)

var _ porttypes.IBCModule = (*IBCModule)(nil)

// IBCModule implements the ICS26 interface for the router module. Outbound
// packets are sent by the IBC relay adapter; this module closes the saga
// loop when their acknowledgements and timeouts come back, and accepts
// inbound swap payloads from counterpart routers.
type IBCModule struct {
	keeper       keeper.Keeper
	scopedKeeper capabilitykeeper.ScopedKeeper
}

// NewIBCModule creates a new IBCModule given the keeper and scoped capability keeper
func NewIBCModule(k keeper.Keeper, scopedKeeper capabilitykeeper.ScopedKeeper) IBCModule {
	return IBCModule{
		keeper:       k,
		scopedKeeper: scopedKeeper,
	}
}

// OnChanOpenInit implements the IBCModule interface
func (im IBCModule) OnChanOpenInit(
	ctx sdk.Context,
	order channeltypes.Order,
	connectionHops []string,
	portID string,
	channelID string,
	chanCap *capabilitytypes.Capability,
	counterparty channeltypes.Counterparty,
	version string,
) (string, error) {
	if order != channeltypes.UNORDERED {
		return "", errorsmod.Wrapf(channeltypes.ErrInvalidChannelOrdering,
			"expected %s channel, got %s", channeltypes.UNORDERED, order)
	}
	if version != types.IBCVersion {
		return "", errorsmod.Wrapf(types.ErrInvalidPayload,
			"expected version %s, got %s", types.IBCVersion, version)
	}
	if portID != types.PortID {
		return "", errorsmod.Wrapf(porttypes.ErrInvalidPort,
			"expected port %s, got %s", types.PortID, portID)
	}

	if err := im.scopedKeeper.ClaimCapability(ctx, chanCap, host.ChannelCapabilityPath(portID, channelID)); err != nil {
		return "", errorsmod.Wrap(err, "failed to claim channel capability")
	}

	im.emitChannelEvent(ctx, types.EventTypeChannelOpen, portID, channelID)
	return version, nil
}

// OnChanOpenTry implements the IBCModule interface
func (im IBCModule) OnChanOpenTry(
	ctx sdk.Context,
	order channeltypes.Order,
	connectionHops []string,
	portID,
	channelID string,
	chanCap *capabilitytypes.Capability,
	counterparty channeltypes.Counterparty,
	counterpartyVersion string,
) (string, error) {
	if order != channeltypes.UNORDERED {
		return "", errorsmod.Wrapf(channeltypes.ErrInvalidChannelOrdering,
			"expected %s channel, got %s", channeltypes.UNORDERED, order)
	}
	if counterpartyVersion != types.IBCVersion {
		return "", errorsmod.Wrapf(types.ErrInvalidPayload,
			"invalid counterparty version: expected %s, got %s", types.IBCVersion, counterpartyVersion)
	}

	if err := im.scopedKeeper.ClaimCapability(ctx, chanCap, host.ChannelCapabilityPath(portID, channelID)); err != nil {
		return "", errorsmod.Wrap(err, "failed to claim channel capability")
	}

	im.emitChannelEvent(ctx, types.EventTypeChannelOpen, portID, channelID)
	return types.IBCVersion, nil
}

// OnChanOpenAck implements the IBCModule interface
func (im IBCModule) OnChanOpenAck(
	ctx sdk.Context,
	portID,
	channelID string,
	counterpartyChannelID string,
	counterpartyVersion string,
) error {
	if counterpartyVersion != types.IBCVersion {
		return errorsmod.Wrapf(types.ErrInvalidPayload,
			"invalid counterparty version: expected %s, got %s", types.IBCVersion, counterpartyVersion)
	}
	im.emitChannelEvent(ctx, types.EventTypeChannelOpen, portID, channelID)
	return nil
}

// OnChanOpenConfirm implements the IBCModule interface
func (im IBCModule) OnChanOpenConfirm(ctx sdk.Context, portID, channelID string) error {
	im.emitChannelEvent(ctx, types.EventTypeChannelOpen, portID, channelID)
	return nil
}

// OnChanCloseInit implements the IBCModule interface
func (im IBCModule) OnChanCloseInit(ctx sdk.Context, portID, channelID string) error {
	// Routes in flight depend on the channel staying open
	return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "user cannot close channel")
}

// OnChanCloseConfirm implements the IBCModule interface
func (im IBCModule) OnChanCloseConfirm(ctx sdk.Context, portID, channelID string) error {
	im.emitChannelEvent(ctx, types.EventTypeChannelClose, portID, channelID)
	return nil
}

// OnRecvPacket implements the IBCModule interface. Inbound packets carry a
// counterpart router's swap payload for this chain.
func (im IBCModule) OnRecvPacket(
	ctx sdk.Context,
	packet channeltypes.Packet,
	relayer sdk.AccAddress,
) ibcexported.Acknowledgement {
	var payload types.SwapPayload
	if err := payload.Unmarshal(packet.Data); err != nil {
		return channeltypes.NewErrorAcknowledgement(
			errorsmod.Wrapf(types.ErrInvalidPayload, "failed to parse packet data: %s", err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return channeltypes.NewErrorAcknowledgement(
			errorsmod.Wrap(types.ErrInvalidPayload, err.Error()))
	}

	if err := im.keeper.OnRecvSwapPayload(ctx, payload); err != nil {
		return channeltypes.NewErrorAcknowledgement(err)
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePacketReceive,
			sdk.NewAttribute(types.AttributeKeyChannelID, packet.DestinationChannel),
			sdk.NewAttribute(types.AttributeKeySequence, fmt.Sprintf("%d", packet.Sequence)),
			sdk.NewAttribute(types.AttributeKeyRouteID, fmt.Sprintf("%d", payload.RouteId)),
		),
	)
	return channeltypes.NewResultAcknowledgement([]byte(`{"success":true}`))
}

// OnAcknowledgementPacket implements the IBCModule interface. A successful
// acknowledgement marks the route Delivered; an error acknowledgement marks
// it Failed and leaves the escrow refundable.
func (im IBCModule) OnAcknowledgementPacket(
	ctx sdk.Context,
	packet channeltypes.Packet,
	acknowledgement []byte,
	relayer sdk.AccAddress,
) error {
	var ack channeltypes.Acknowledgement
	if err := channeltypes.SubModuleCdc.UnmarshalJSON(acknowledgement, &ack); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrUnknownRequest,
			"cannot unmarshal packet acknowledgement: %v", err)
	}

	handle := keeper.PacketHandle(packet.SourceChannel, packet.Sequence)
	if err := im.keeper.OnDeliveryResult(ctx, handle, ack.Success()); err != nil {
		// Packets without a tracked route are not ours to settle.
		if types.ErrRouteNotFound.Is(err) {
			return nil
		}
		return err
	}
	return nil
}

// OnTimeoutPacket implements the IBCModule interface. A timed-out packet is
// a failed delivery.
func (im IBCModule) OnTimeoutPacket(
	ctx sdk.Context,
	packet channeltypes.Packet,
	relayer sdk.AccAddress,
) error {
	handle := keeper.PacketHandle(packet.SourceChannel, packet.Sequence)
	if err := im.keeper.OnDeliveryResult(ctx, handle, false); err != nil {
		if types.ErrRouteNotFound.Is(err) {
			return nil
		}
		return err
	}
	return nil
}

func (im IBCModule) emitChannelEvent(ctx sdk.Context, eventType, portID, channelID string) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			eventType,
			sdk.NewAttribute(types.AttributeKeyPortID, portID),
			sdk.NewAttribute(types.AttributeKeyChannelID, channelID),
		),
	)
}
