package responses

import "encoding/json"

// Delivery represents a server-pushed message on a subscribed channel. It is
// not a reply to any client request and carries no success flag.
// See: https://docs.cometd.org/current7/reference/#_delivery
type Delivery struct {
	Channel string          `json:"channel"`
	Data    json.RawMessage `json:"data"`
	Advice  *Advice         `json:"advice,omitempty"`
	Ext     Ext             `json:"ext,omitempty"`
	ID      string          `json:"id,omitempty"`
}

func (r *Delivery) GetChannel() string { return r.Channel }

func (r *Delivery) GetAdvice() *Advice { return r.Advice }

// IsSuccessful always reports true; deliveries cannot fail.
func (r *Delivery) IsSuccessful() bool { return true }

func (r *Delivery) ErrorMessage() string { return "" }
