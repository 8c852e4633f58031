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

import (
	"fmt"

	"github.com/miquido/cometd-client/cometd/responses"
)

// Synthetic failure reasons used when the server supplied no error message.
const (
	msgReconnectDeclined = "server declined reconnection"
	msgRetriesExhausted  = "maximum retries reached"
)

// TransportError reports that a request could not be exchanged with the
// server at all. It is always terminal; this layer never retries it.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure: %s", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ParseError reports that a response batch could not be classified. The whole
// exchange is rejected; there are no partial results.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unprocessable response: %s", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// SessionError reports an operation that requires a negotiated session being
// called before a successful handshake. No transport call is attempted.
type SessionError struct {
	Op string
}

func (e *SessionError) Error() string {
	return fmt.Sprintf("no session established for %s request", e.Op)
}

// ProtocolError reports a response the server explicitly marked as failed,
// together with any reconnection advice it attached.
type ProtocolError struct {
	Channel string
	Message string
	Advice  *responses.Advice
}

func (e *ProtocolError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request on %q failed", e.Channel)
	}

	return e.Message
}

// RetryExhausted reports a protocol failure that survived every permitted
// retry. The last server-reported error is preserved and reachable through
// Unwrap.
type RetryExhausted struct {
	Attempts int
	Last     *ProtocolError
}

func (e *RetryExhausted) Error() string {
	return fmt.Sprintf("%s after %d attempts: %s", msgRetriesExhausted, e.Attempts, e.Last.Error())
}

func (e *RetryExhausted) Unwrap() error {
	return e.Last
}
