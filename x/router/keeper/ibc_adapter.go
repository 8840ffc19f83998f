package keeper

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	capabilitytypes "github.com/cosmos/ibc-go/modules/capability/types"
	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"
	host "github.com/cosmos/ibc-go/v8/modules/core/24-host"

	"github.com/meridian-chain/meridian/x/router/types"
)

// DefaultPacketTimeout bounds how long a dispatched packet may stay in
// flight before the counterparty must reject it.
const DefaultPacketTimeout = 10 * time.Minute

// ChannelKeeper is the subset of the IBC channel keeper the adapter needs.
type ChannelKeeper interface {
	SendPacket(
		ctx sdk.Context,
		chanCap *capabilitytypes.Capability,
		sourcePort string,
		sourceChannel string,
		timeoutHeight clienttypes.Height,
		timeoutTimestamp uint64,
		data []byte,
	) (uint64, error)
	GetPacketCommitment(ctx sdk.Context, portID, channelID string, sequence uint64) []byte
}

// ScopedKeeper is the subset of the capability keeper the adapter needs.
type ScopedKeeper interface {
	GetCapability(ctx sdk.Context, name string) (*capabilitytypes.Capability, bool)
}

// IBCRelayAdapter relays router payloads over an established IBC channel.
// One adapter serves the one counterparty chain behind its channel. The
// message handle is "<channel>/<sequence>", which the channel callbacks
// reproduce when the acknowledgement or timeout comes back.
type IBCRelayAdapter struct {
	channelKeeper ChannelKeeper
	scopedKeeper  ScopedKeeper
	channelID     string
	relayFee      sdk.Coin
}

var _ types.RelayAdapter = IBCRelayAdapter{}

// NewIBCRelayAdapter creates an adapter bound to channelID. relayFee is the
// flat per-message quote returned by EstimateFee.
func NewIBCRelayAdapter(channelKeeper ChannelKeeper, scopedKeeper ScopedKeeper, channelID string, relayFee sdk.Coin) IBCRelayAdapter {
	return IBCRelayAdapter{
		channelKeeper: channelKeeper,
		scopedKeeper:  scopedKeeper,
		channelID:     channelID,
		relayFee:      relayFee,
	}
}

// EstimateFee quotes a flat relay fee regardless of payload size.
func (a IBCRelayAdapter) EstimateFee(ctx sdk.Context, payload []byte) (sdk.Coin, error) {
	return a.relayFee, nil
}

// Dispatch sends the payload as an IBC packet on the adapter's channel.
func (a IBCRelayAdapter) Dispatch(ctx sdk.Context, recipient string, payload []byte) (string, error) {
	chanCap, ok := a.scopedKeeper.GetCapability(ctx, host.ChannelCapabilityPath(types.PortID, a.channelID))
	if !ok {
		return "", types.ErrBridgeOperationFailed.Wrapf("no capability for channel %s", a.channelID)
	}

	timeoutTimestamp := uint64(ctx.BlockTime().Add(DefaultPacketTimeout).UnixNano())
	sequence, err := a.channelKeeper.SendPacket(
		ctx,
		chanCap,
		types.PortID,
		a.channelID,
		clienttypes.ZeroHeight(),
		timeoutTimestamp,
		payload,
	)
	if err != nil {
		return "", types.ErrBridgeOperationFailed.Wrapf("send packet on %s: %v", a.channelID, err)
	}

	handle := PacketHandle(a.channelID, sequence)
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePacketSent,
			sdk.NewAttribute(types.AttributeKeyChannelID, a.channelID),
			sdk.NewAttribute(types.AttributeKeySequence, fmt.Sprintf("%d", sequence)),
			sdk.NewAttribute(types.AttributeKeyHandle, handle),
		),
	)
	return handle, nil
}

// QueryDelivery reads the packet commitment for a handle. A live commitment
// means the packet is still in flight. A cleared commitment means the
// lifecycle completed; the terminal success or failure is what the channel
// callbacks already reported, so the poll answers confirmed.
func (a IBCRelayAdapter) QueryDelivery(ctx sdk.Context, handle string) (types.DeliveryStatus, error) {
	channelID, sequence, err := ParsePacketHandle(handle)
	if err != nil {
		return types.DeliveryPending, err
	}
	if commitment := a.channelKeeper.GetPacketCommitment(ctx, types.PortID, channelID, sequence); len(commitment) > 0 {
		return types.DeliveryPending, nil
	}
	return types.DeliveryConfirmed, nil
}

// PacketHandle builds the "<channel>/<sequence>" handle for a sent packet.
func PacketHandle(channelID string, sequence uint64) string {
	return fmt.Sprintf("%s/%d", channelID, sequence)
}

// ParsePacketHandle splits a packet handle back into channel and sequence.
func ParsePacketHandle(handle string) (string, uint64, error) {
	idx := strings.LastIndexByte(handle, '/')
	if idx <= 0 || idx == len(handle)-1 {
		return "", 0, types.ErrInvalidInput.Wrapf("malformed packet handle %q", handle)
	}
	sequence, err := strconv.ParseUint(handle[idx+1:], 10, 64)
	if err != nil {
		return "", 0, types.ErrInvalidInput.Wrapf("malformed packet handle %q: %v", handle, err)
	}
	return handle[:idx], sequence, nil
}
