package responses

// Handshake represents the handshake response, successful or not.
// See: https://docs.cometd.org/current7/reference/#_handshake_response
type Handshake struct {
	Channel                  string   `json:"channel"`
	Successful               bool     `json:"successful"`
	Error                    string   `json:"error,omitempty"`
	Version                  string   `json:"version"`
	MinimumVersion           string   `json:"minimumVersion,omitempty"`
	ClientID                 string   `json:"clientId"`
	SupportedConnectionTypes []string `json:"supportedConnectionTypes"`
	Advice                   *Advice  `json:"advice,omitempty"`
	Ext                      Ext      `json:"ext,omitempty"`
	ID                       string   `json:"id,omitempty"`
	AuthSuccessful           *bool    `json:"authSuccessful,omitempty"`
}

func (r *Handshake) GetChannel() string { return r.Channel }

func (r *Handshake) GetAdvice() *Advice { return r.Advice }

func (r *Handshake) IsSuccessful() bool { return r.Successful }

func (r *Handshake) ErrorMessage() string { return r.Error }
