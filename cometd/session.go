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

package cometd

// Session holds the state negotiated with the server: the server-assigned
// client id, the cookies that have to accompany every subsequent request, and
// the retry counter of the operation currently in flight.
//
// A session is owned by exactly one client instance and is mutated in two
// places only: Bind on a successful handshake and Reset by the owner. The
// retry counter lives for one logical operation and never carries across
// independent calls.
type Session struct {
	clientID string
	cookies  []string
	retries  int
}

func NewSession() *Session {
	return &Session{}
}

// Bind commits the outcome of a successful handshake. Cookies are replaced
// wholesale, never merged; a new handshake implies a new server-side session
// and invalidates everything the previous one issued.
func (s *Session) Bind(clientID string, cookies []string) {
	s.clientID = clientID
	s.cookies = append([]string(nil), cookies...)
}

// Bound reports whether a handshake has assigned a client id.
func (s *Session) Bound() bool {
	return s.clientID != ""
}

// ClientID returns the server-assigned client identifier, or an empty string
// before the first successful handshake.
func (s *Session) ClientID() string {
	return s.clientID
}

// Cookies returns a copy of the cookies to attach to outgoing requests.
func (s *Session) Cookies() []string {
	return append([]string(nil), s.cookies...)
}

// Reset discards the negotiated state for a fresh handshake cycle.
func (s *Session) Reset() {
	s.clientID = ""
	s.cookies = nil
	s.retries = 0
}

// beginOperation and endOperation bracket the retry counter scope of one
// logical top-level operation.
func (s *Session) beginOperation() {
	s.retries = 0
}

func (s *Session) endOperation() {
	s.retries = 0
}

func (s *Session) recordRetry() {
	s.retries++
}

func (s *Session) retryCount() int {
	return s.retries
}
