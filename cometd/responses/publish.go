package responses

import "encoding/json"

// Publish represents the acknowledgement of a published message.
// See: https://docs.cometd.org/current7/reference/#_publish_response
type Publish struct {
	Channel    string          `json:"channel"`
	ClientID   string          `json:"clientId"`
	Successful bool            `json:"successful"`
	Error      string          `json:"error,omitempty"`
	Advice     *Advice         `json:"advice,omitempty"`
	Data       json.RawMessage `json:"data"`
	ID         string          `json:"id,omitempty"`
}

func (r *Publish) GetChannel() string { return r.Channel }

func (r *Publish) GetAdvice() *Advice { return r.Advice }

func (r *Publish) IsSuccessful() bool { return r.Successful }

func (r *Publish) ErrorMessage() string { return r.Error }
