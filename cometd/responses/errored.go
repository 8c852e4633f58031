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

// Errored represents a response that explicitly carries a failure reason.
// It is classified before every other shape so that the laxer Basic shape
// cannot swallow the error detail.
type Errored struct {
	Channel      string  `json:"channel"`
	Successful   bool    `json:"successful"`
	Error        string  `json:"error"`
	ClientID     string  `json:"clientId,omitempty"`
	Subscription string  `json:"subscription,omitempty"`
	Advice       *Advice `json:"advice,omitempty"`
	ID           string  `json:"id,omitempty"`
}

func (r *Errored) GetChannel() string { return r.Channel }

func (r *Errored) GetAdvice() *Advice { return r.Advice }

func (r *Errored) IsSuccessful() bool { return false }

func (r *Errored) ErrorMessage() string { return r.Error }
