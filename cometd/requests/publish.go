package requests

import "encoding/json"

// PublishRequest represents an application message published to a channel.
// Data is an opaque payload passed through unexamined.
// See: https://docs.cometd.org/current7/reference/#_publish_request
type PublishRequest struct {
	ClientID       string
	PublishChannel string
	Data           interface{}
}

func (r PublishRequest) Channel() string {
	return r.PublishChannel
}

func (r PublishRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"channel":  r.PublishChannel,
		"clientId": r.ClientID,
		"data":     r.Data,
	})
}
