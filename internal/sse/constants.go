package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 100

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 50

	// ClientChannelBuffer is the buffer size for register/unregister channels
	ClientChannelBuffer = 10
)

// SSE connection settings
const (
	// KeepaliveInterval is how often to send keepalive pings
	KeepaliveInterval = 30 * time.Second
)

// Event types for SSE beyond the engine's change signals
const (
	// EventTypeConnected is sent once when a client attaches
	EventTypeConnected = "connected"

	// EventTypeKeepalive is the keepalive ping event type
	EventTypeKeepalive = "keepalive"
)

// Query parameter listing the event types a client wants
const QueryParamTypes = "types"

// Log messages
const (
	LogMsgClientConnected     = "SSE client connected"
	LogMsgClientDisconnected  = "SSE client disconnected"
	LogMsgBroadcastDropped    = "SSE broadcast buffer full, event dropped"
	LogMsgWriteError          = "Failed to write SSE event"
	LogMsgSubscriberAttached  = "SSE subscriber registered for event types"
	LogMsgInvalidSignal       = "Invalid change signal payload"
	ErrMsgStreamingNotSupport = "SSE not supported"
)
