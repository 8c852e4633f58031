package requests

import "encoding/json"

// HandshakeRequest represents handshake request.
// See: https://docs.cometd.org/current7/reference/#_handshake_request
type HandshakeRequest struct {
	Ext map[string]interface{}
	ID  string
}

func (r HandshakeRequest) Channel() string {
	return ChannelHandshake
}

func (r HandshakeRequest) MarshalJSON() ([]byte, error) {
	payload := map[string]interface{}{
		"channel":        ChannelHandshake,
		"version":        BayeuxVersion,
		"minimumVersion": BayeuxVersion,
		"supportedConnectionTypes": []string{
			ConnectionType,
		},
	}

	if r.Ext != nil {
		payload["ext"] = r.Ext
	}

	if r.ID != "" {
		payload["id"] = r.ID
	}

	return json.Marshal(payload)
}
