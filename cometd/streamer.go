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
	"time"

	"github.com/go-errors/errors"
	"github.com/jpillora/backoff"
	"gopkg.in/tomb.v2"

	"github.com/miquido/cometd-client/cometd/responses"
)

const teardownTimeout = 2 * time.Second

// Streamer drives a continuous long-poll loop on top of a Client: it
// negotiates the session, subscribes to the configured channels and then
// keeps connecting, pushing every server-pushed message into the events
// channel. The server's advice.interval sets the poll cadence when present;
// otherwise quiet polls back off exponentially.
type Streamer struct {
	client   Client
	channels []string
	events   chan *responses.Delivery
	t        *tomb.Tomb
}

func NewStreamer(client Client, channels ...string) *Streamer {
	return &Streamer{
		client:   client,
		channels: channels,
		events:   make(chan *responses.Delivery),
	}
}

// Start negotiates the session, subscribes to every configured channel and
// launches the poll loop.
// Returns error when:
// * Session negotiation fails
// * Any subscription is refused.
func (s *Streamer) Start(ctx context.Context) error {
	if err := s.client.Init(ctx); err != nil {
		return errors.Errorf("failed to initialize session: %w", err)
	}

	for _, channel := range s.channels {
		if _, err := s.client.Subscribe(ctx, channel); err != nil {
			return errors.Errorf("failed to subscribe to %q: %w", channel, err)
		}
	}

	s.t, _ = tomb.WithContext(ctx)
	s.t.Go(s.poll)

	return nil
}

// Events returns the delivery channel. It is closed when the poll loop dies;
// Err explains why.
func (s *Streamer) Events() <-chan *responses.Delivery {
	return s.events
}

// Err returns the reason the poll loop stopped, if it has.
func (s *Streamer) Err() error {
	if s.t == nil {
		return nil
	}

	if err := s.t.Err(); err != nil && !errors.Is(err, tomb.ErrStillAlive) {
		return err
	}

	return nil
}

// Stop kills the poll loop and waits for it to exit, bounded first by the
// teardown timeout and then by the caller's context.
func (s *Streamer) Stop(ctx context.Context) error {
	if s.t == nil {
		return nil
	}

	s.t.Kill(nil)

	select {
	case <-time.After(teardownTimeout):
	case <-s.t.Dead():
		return nil
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.t.Dead():
		return nil
	}
}

func (s *Streamer) poll() error {
	defer close(s.events)

	ctx := s.t.Context(nil) //nolint:staticcheck // tomb expects nil when the parent context is set.

	quiet := &backoff.Backoff{
		Min:    250 * time.Millisecond,
		Max:    30 * time.Second,
		Factor: 2,
		Jitter: true,
	}

	for {
		select {
		case <-s.t.Dying():
			return tomb.ErrDying
		default:
		}

		batch, err := s.client.Connect(ctx)
		if err != nil {
			return errors.Errorf("long poll failed: %w", err)
		}

		var (
			delivered int
			interval  time.Duration
		)

		for _, response := range batch {
			if advice := response.GetAdvice(); advice != nil && advice.Interval > 0 {
				interval = time.Duration(advice.Interval) * time.Millisecond
			}

			delivery, ok := response.(*responses.Delivery)
			if !ok {
				continue
			}

			select {
			case s.events <- delivery:
				delivered++
			case <-s.t.Dying():
				return tomb.ErrDying
			}
		}

		switch {
		case interval > 0:
			// The server sets the cadence.
			quiet.Reset()

		case delivered > 0:
			quiet.Reset()

			continue

		default:
			interval = quiet.Duration()
		}

		select {
		case <-time.After(interval):
		case <-s.t.Dying():
			return tomb.ErrDying
		}
	}
}
