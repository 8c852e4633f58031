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

// Package cometd implements a Bayeux/CometD long-polling client: session
// negotiation, the meta operations, structural classification of server
// responses, and the advice-driven retry state machine.
package cometd

import (
	"context"
	"net/url"

	"github.com/go-errors/errors"

	"github.com/miquido/cometd-client/cometd/requests"
	"github.com/miquido/cometd-client/cometd/responses"
)

const defaultMaxRetries = 10

// Client is the public surface of the engine. It manages exactly one session
// and issues one outstanding request at a time; callers needing concurrent
// sessions instantiate multiple clients.
type Client interface {
	// Handshake negotiates a session and binds the client id and cookies
	// the server assigns.
	Handshake(ctx context.Context) ([]responses.Response, error)

	// Connect opens a long poll; the response batch carries any pending
	// deliveries.
	Connect(ctx context.Context) ([]responses.Response, error)

	// Disconnect ends the session. It is attempted exactly once; Bayeux
	// disconnects are never retried.
	Disconnect(ctx context.Context) ([]responses.Response, error)

	// Subscribe registers interest in a channel.
	Subscribe(ctx context.Context, subscription string) ([]responses.Response, error)

	// Unsubscribe removes interest in a channel.
	Unsubscribe(ctx context.Context, subscription string) ([]responses.Response, error)

	// Publish sends an opaque application payload to a channel.
	Publish(ctx context.Context, channel string, data interface{}) ([]responses.Response, error)

	// Init composes Handshake and Connect.
	Init(ctx context.Context) error

	// Session exposes the negotiated session state.
	Session() *Session
}

// Option adjusts the client configuration.
type Option func(*client)

// WithMaxRetries sets the retry budget: a failed operation makes at most
// n+1 attempts in total. Negative values are treated as zero.
func WithMaxRetries(n int) Option {
	return func(c *client) {
		if n < 0 {
			n = 0
		}

		c.maxRetries = n
	}
}

// WithTransport replaces the default HTTP long-polling transport.
func WithTransport(transport Transport) Option {
	return func(c *client) {
		c.transport = transport
	}
}

// WithCodec replaces the default JSON codec.
func WithCodec(codec Codec) Option {
	return func(c *client) {
		c.codec = codec
	}
}

// WithObserver installs a diagnostics sink for exchange and retry events.
func WithObserver(observer Observer) Option {
	return func(c *client) {
		c.observer = observer
	}
}

// WithHandshakeExt attaches extension data to every handshake request.
func WithHandshakeExt(ext map[string]interface{}) Option {
	return func(c *client) {
		c.ext = ext
	}
}

type client struct {
	engine

	ext map[string]interface{}
}

// NewClient builds a client for the Bayeux endpoint at serverURL. The access
// token is sent as an OAuth Authorization header on every request.
// Returns error when:
// * The server URL cannot be parsed
// * The default transport cannot be initialized.
func NewClient(serverURL, accessToken string, opts ...Option) (Client, error) {
	if _, err := url.ParseRequestURI(serverURL); err != nil {
		return nil, errors.Errorf("failed to parse server url: %w", err)
	}

	c := &client{
		engine: engine{
			url:        serverURL,
			token:      accessToken,
			maxRetries: defaultMaxRetries,
			session:    NewSession(),
			codec:      jsonCodec{},
			observer:   NopObserver{},
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.transport == nil {
		transport, err := NewHTTPTransport(nil)
		if err != nil {
			return nil, err
		}

		c.transport = transport
	}

	return c, nil
}

func (c *client) handshakeRequest() requests.Request {
	return requests.HandshakeRequest{Ext: c.ext}
}

func (c *client) Handshake(ctx context.Context) ([]responses.Response, error) {
	return c.run(ctx, operation{
		name:      "handshake",
		handshake: true,
		build:     c.handshakeRequest,
	})
}

func (c *client) Connect(ctx context.Context) ([]responses.Response, error) {
	return c.run(ctx, operation{
		name:        "connect",
		rehandshake: c.handshakeRequest,
		build: func() requests.Request {
			return requests.ConnectRequest{ClientID: c.session.ClientID()}
		},
	})
}

func (c *client) Disconnect(ctx context.Context) ([]responses.Response, error) {
	return c.run(ctx, operation{
		name:   "disconnect",
		single: true,
		build: func() requests.Request {
			return requests.DisconnectRequest{ClientID: c.session.ClientID()}
		},
	})
}

func (c *client) Subscribe(ctx context.Context, subscription string) ([]responses.Response, error) {
	return c.run(ctx, operation{
		name:        "subscribe",
		rehandshake: c.handshakeRequest,
		build: func() requests.Request {
			return requests.SubscribeRequest{
				ClientID:     c.session.ClientID(),
				Subscription: subscription,
			}
		},
	})
}

func (c *client) Unsubscribe(ctx context.Context, subscription string) ([]responses.Response, error) {
	return c.run(ctx, operation{
		name:        "unsubscribe",
		rehandshake: c.handshakeRequest,
		build: func() requests.Request {
			return requests.UnsubscribeRequest{
				ClientID:     c.session.ClientID(),
				Subscription: subscription,
			}
		},
	})
}

func (c *client) Publish(ctx context.Context, channel string, data interface{}) ([]responses.Response, error) {
	return c.run(ctx, operation{
		name:        "publish",
		rehandshake: c.handshakeRequest,
		build: func() requests.Request {
			return requests.PublishRequest{
				ClientID:       c.session.ClientID(),
				PublishChannel: channel,
				Data:           data,
			}
		},
	})
}

func (c *client) Init(ctx context.Context) error {
	if _, err := c.Handshake(ctx); err != nil {
		return errors.Errorf("failed to handshake: %w", err)
	}

	if _, err := c.Connect(ctx); err != nil {
		return errors.Errorf("failed to connect: %w", err)
	}

	return nil
}

func (c *client) Session() *Session {
	return c.session
}
