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

	"github.com/rs/zerolog"

	"github.com/miquido/cometd-client/cometd/responses"
)

// Observer receives diagnostics from the engine at its three extension
// points. Implementations must not alter control flow; whatever an observer
// does with a callback has no bearing on retries or errors.
type Observer interface {
	// ExchangeStart is invoked before a request is handed to the transport.
	ExchangeStart(ctx context.Context, channel string, attempt int)

	// ExchangeResult is invoked with the classified batch, or the terminal
	// error, of one transport round trip.
	ExchangeResult(ctx context.Context, channel string, batch []responses.Response, err error)

	// RetryDecision is invoked with the outcome of consulting the server
	// advice after a failed exchange.
	RetryDecision(ctx context.Context, channel string, decision Decision, retryCount int)
}

// NopObserver discards every callback.
type NopObserver struct{}

func (NopObserver) ExchangeStart(context.Context, string, int) {}

func (NopObserver) ExchangeResult(context.Context, string, []responses.Response, error) {}

func (NopObserver) RetryDecision(context.Context, string, Decision, int) {}

// LogObserver traces engine activity through the zerolog logger carried by
// the context.
type LogObserver struct{}

func (LogObserver) ExchangeStart(ctx context.Context, channel string, attempt int) {
	zerolog.Ctx(ctx).Debug().
		Str("channel", channel).
		Int("attempt", attempt).
		Msg("bayeux exchange started")
}

func (LogObserver) ExchangeResult(ctx context.Context, channel string, batch []responses.Response, err error) {
	zerolog.Ctx(ctx).Debug().
		Str("channel", channel).
		Int("responses", len(batch)).
		Err(err).
		Msg("bayeux exchange finished")
}

func (LogObserver) RetryDecision(ctx context.Context, channel string, decision Decision, retryCount int) {
	zerolog.Ctx(ctx).Info().
		Str("channel", channel).
		Stringer("decision", decision).
		Int("retry", retryCount).
		Msg("following server advice")
}
