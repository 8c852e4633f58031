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
	"context"
	"net/http"

	"github.com/miquido/cometd-client/cometd/requests"
	"github.com/miquido/cometd-client/cometd/responses"
)

// operation is one logical client call the engine can re-issue on retry.
// build constructs a fresh request per attempt so a re-handshake's new client
// id is always picked up.
type operation struct {
	name        string
	build       func() requests.Request
	rehandshake func() requests.Request // handshake injected on reconnect=handshake advice
	handshake   bool                    // the operation itself is a handshake
	single      bool                    // one attempt, advice is never followed (disconnect)
}

// engine drives handshake/connect/retry sequencing. It is sequential by
// design: one exchange in flight at a time, retries as blocking continuations
// of the same call, suspension only at the transport boundary.
type engine struct {
	url        string
	token      string
	maxRetries int
	session    *Session
	transport  Transport
	codec      Codec
	observer   Observer
}

// run sends the operation and follows server advice until it succeeds, the
// retry budget is spent, or the server declines reconnection.
//
// The loop is bounded: every iteration either terminates or spends one unit
// of the retry budget, so the budget also bounds stack and loop depth. A
// re-handshake and the operation retry it enables share a single unit; the
// effective sequence is handshake-1, op-1, handshake-2, op-2, and so on.
//
// Returns error when:
// * The operation needs a session and none is bound (SessionError)
// * The transport fails or the batch cannot be classified (terminal)
// * The server declines reconnection or the budget is spent.
func (e *engine) run(ctx context.Context, op operation) ([]responses.Response, error) {
	if !op.handshake && !e.session.Bound() {
		return nil, &SessionError{Op: op.name}
	}

	e.session.beginOperation()
	defer e.session.endOperation()

	var (
		accumulated  []responses.Response
		request      = op.build()
		midHandshake = false // current request is a re-handshake injected mid-operation
	)

	for {
		batch, cookies, err := e.exchange(ctx, request, e.session.retryCount())
		if err != nil {
			return nil, err
		}

		kept, failed := splitFailure(batch)
		if failed == nil {
			if op.handshake || midHandshake {
				e.commit(batch, cookies)
			}

			if midHandshake {
				// Session is fresh again; re-issue the operation without
				// spending another budget unit.
				request, midHandshake = op.build(), false

				continue
			}

			return append(accumulated, batch...), nil
		}

		accumulated = append(accumulated, kept...)

		if op.single {
			return nil, terminal(failed)
		}

		e.session.recordRetry()

		decision := decide(failed.Advice, e.session.retryCount(), e.maxRetries)
		e.observer.RetryDecision(ctx, op.name, decision, e.session.retryCount())

		switch decision {
		case FollowRetry:
			// A failed mid-operation handshake is re-sent as-is.
			if !midHandshake {
				request = op.build()
			}

		case FollowHandshake:
			// For a failed handshake the re-handshake IS the retried
			// operation.
			if op.handshake {
				request = op.build()
			} else {
				request, midHandshake = op.rehandshake(), true
			}

		default:
			if failed.Advice != nil && failed.Advice.Reconnect.Retryable() {
				return nil, &RetryExhausted{
					Attempts: e.session.retryCount(),
					Last:     failed,
				}
			}

			return nil, terminal(failed)
		}
	}
}

// exchange performs one encode/send/classify round trip.
func (e *engine) exchange(ctx context.Context, request requests.Request, attempt int) ([]responses.Response, []string, error) {
	e.observer.ExchangeStart(ctx, request.Channel(), attempt)

	body, err := e.codec.Encode(request)
	if err != nil {
		failure := &ParseError{Err: err}
		e.observer.ExchangeResult(ctx, request.Channel(), nil, failure)

		return nil, nil, failure
	}

	headers := http.Header{}
	headers.Set("Authorization", "OAuth "+e.token)

	for _, cookie := range e.session.Cookies() {
		headers.Add("Cookie", cookie)
	}

	result, err := e.transport.Send(ctx, e.url, headers, body)
	if err != nil {
		failure := &TransportError{Err: err}
		e.observer.ExchangeResult(ctx, request.Channel(), nil, failure)

		return nil, nil, failure
	}

	batch, err := e.codec.DecodeBatch(result.Body)
	if err != nil {
		failure := &ParseError{Err: err}
		e.observer.ExchangeResult(ctx, request.Channel(), nil, failure)

		return nil, nil, failure
	}

	e.observer.ExchangeResult(ctx, request.Channel(), batch, nil)

	return batch, result.Cookies, nil
}

// commit binds the session to the handshake contained in the batch. Cookies
// replace whatever the previous handshake left behind.
func (e *engine) commit(batch []responses.Response, cookies []string) {
	for _, response := range batch {
		if handshake, ok := response.(*responses.Handshake); ok {
			e.session.Bind(handshake.ClientID, cookies)

			return
		}
	}
}

// splitFailure walks the batch element by element and stops at the first
// failed response. It returns the deliveries seen before the failure, to be
// carried over into the next attempt, and the failure itself; both are nil
// when every element is acceptable.
func splitFailure(batch []responses.Response) ([]responses.Response, *ProtocolError) {
	for i, response := range batch {
		if response.IsSuccessful() {
			continue
		}

		var kept []responses.Response

		for _, earlier := range batch[:i] {
			if delivery, ok := earlier.(*responses.Delivery); ok {
				kept = append(kept, delivery)
			}
		}

		return kept, &ProtocolError{
			Channel: response.GetChannel(),
			Message: response.ErrorMessage(),
			Advice:  response.GetAdvice(),
		}
	}

	return nil, nil
}

// terminal fills in the synthetic failure reason when the server supplied
// none.
func terminal(failed *ProtocolError) *ProtocolError {
	if failed.Message == "" {
		failed.Message = msgReconnectDeclined
	}

	return failed
}
