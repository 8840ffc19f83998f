package types

// Router module event types
const (
	EventTypePathSwap       = "path_swap"
	EventTypeRouteCreated   = "route_created"
	EventTypeRouteSwapped   = "route_local_swapped"
	EventTypeRouteDispatch  = "route_dispatched"
	EventTypeRouteDelivered = "route_delivered"
	EventTypeRouteFailed    = "route_failed"
	EventTypeRouteRefunded  = "route_refunded"
	EventTypeChannelOpen    = "router_channel_open"
	EventTypeChannelClose   = "router_channel_close"
	EventTypePacketReceive  = "router_packet_receive"
	EventTypePacketSent     = "router_packet_sent"
)

// Router module event attribute keys
const (
	AttributeKeyRouteID   = "route_id"
	AttributeKeySender    = "sender"
	AttributeKeyRecipient = "recipient"
	AttributeKeyTokenIn   = "token_in"
	AttributeKeyTokenOut  = "token_out"
	AttributeKeyAmountIn  = "amount_in"
	AttributeKeyAmountOut = "amount_out"
	AttributeKeySrcChain  = "src_chain"
	AttributeKeyDstChain  = "dst_chain"
	AttributeKeyHandle    = "handle"
	AttributeKeyStatus    = "status"
	AttributeKeyChannelID = "channel_id"
	AttributeKeyPortID    = "port_id"
	AttributeKeySequence  = "sequence"
)
