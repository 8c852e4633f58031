package requests

import "encoding/json"

// UnsubscribeRequest represents unsubscription request for a single channel.
// See: https://docs.cometd.org/current7/reference/#_unsubscribe_request
type UnsubscribeRequest struct {
	ClientID     string
	Subscription string
}

func (r UnsubscribeRequest) Channel() string {
	return ChannelUnsubscribe
}

func (r UnsubscribeRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"channel":      ChannelUnsubscribe,
		"clientId":     r.ClientID,
		"subscription": r.Subscription,
	})
}
