// Package requests holds the wire-level shapes of Bayeux client requests.
// Every request serializes itself to the camelCase JSON object the protocol
// expects; optional fields are omitted when absent.
package requests

import "encoding/json"

// Protocol constants negotiated with every server.
// See: https://docs.cometd.org/current7/reference/#_bayeux_versions
const (
	BayeuxVersion  = "1.0"
	ConnectionType = "long-polling"

	ChannelHandshake   = "/meta/handshake"
	ChannelConnect     = "/meta/connect"
	ChannelDisconnect  = "/meta/disconnect"
	ChannelSubscribe   = "/meta/subscribe"
	ChannelUnsubscribe = "/meta/unsubscribe"
)

// Request is a single Bayeux request payload.
type Request interface {
	json.Marshaler

	// Channel returns the meta or application channel the request targets.
	Channel() string
}
