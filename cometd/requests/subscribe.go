package requests

import "encoding/json"

// SubscribeRequest represents subscription request for a single channel.
// See: https://docs.cometd.org/current7/reference/#_subscribe_request
type SubscribeRequest struct {
	ClientID     string
	Subscription string
}

func (r SubscribeRequest) Channel() string {
	return ChannelSubscribe
}

func (r SubscribeRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"channel":      ChannelSubscribe,
		"clientId":     r.ClientID,
		"subscription": r.Subscription,
	})
}
