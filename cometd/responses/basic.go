// Copyright © 2025 Miquido
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package responses

// Basic represents the plain acknowledgement shape shared by connect,
// disconnect, subscribe and unsubscribe responses. It is the classification
// fallback for anything carrying a channel and a success flag.
type Basic struct {
	Channel      string  `json:"channel"`
	Successful   bool    `json:"successful"`
	Error        string  `json:"error,omitempty"`
	Advice       *Advice `json:"advice,omitempty"`
	ClientID     string  `json:"clientId,omitempty"`
	Subscription string  `json:"subscription,omitempty"`
	ID           string  `json:"id,omitempty"`
}

func (r *Basic) GetChannel() string { return r.Channel }

func (r *Basic) GetAdvice() *Advice { return r.Advice }

func (r *Basic) IsSuccessful() bool { return r.Successful }

func (r *Basic) ErrorMessage() string { return r.Error }
